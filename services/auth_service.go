package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB      *gorm.DB
	IDs     IDGenerator
	Cost    int
	Compare func(hashed, password []byte) error

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(db *gorm.DB, ids IDGenerator) *AuthService {
	return &AuthService{
		DB:      db,
		IDs:     ids,
		Cost:    bcrypt.DefaultCost,
		Compare: bcrypt.CompareHashAndPassword,
	}
}

// unknownUserHash is compared against when the email does not exist, so both
// login failures cost one bcrypt comparison at the configured cost.
func (s *AuthService) unknownUserHash() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("no-such-user"), s.Cost)
		if err != nil {
			hash, _ = bcrypt.GenerateFromPassword([]byte("no-such-user"), bcrypt.DefaultCost)
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login checks the credentials. Unknown email and wrong password produce the
// same error.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = s.Compare(s.unknownUserHash(), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.Compare([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Register creates a client account.
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	if email == "" {
		return nil, invalid("email", "is required")
	}
	if password == "" {
		return nil, invalid("password", "is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	var user models.User
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		user = models.User{
			ID:       s.IDs.NewID("u"),
			Name:     name,
			Email:    email,
			Password: string(hashed),
			Role:     models.RoleClient,
		}
		return tx.Create(&user).Error
	})
	if errors.Is(err, ErrEmailTaken) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	}).Info("New client registered")
	return &user, nil
}

func (s *AuthService) GetUser(id string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &user, nil
}
