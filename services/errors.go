package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart          = errors.New("your cart is empty")
	ErrInvalidOrderType   = errors.New("order type must be dine-in or takeaway")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrLineNotFound       = errors.New("cart line not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrUnknownExtra       = errors.New("unknown extra")
	ErrExtraNotAllowed    = errors.New("extra not allowed for this product")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoSalesData        = errors.New("no sales recorded yet")
	ErrReceiptExhausted   = errors.New("could not allocate a unique receipt number")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a validation rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrInvalidOrderType) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrUnknownExtra) ||
		errors.Is(err, ErrExtraNotAllowed) ||
		errors.Is(err, ErrProductUnavailable)
}
