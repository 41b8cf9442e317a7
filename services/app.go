package services

import (
	"time"

	"github.com/ShakirChaya0/IPP-Prototype/notify"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"gorm.io/gorm"
)

// App bundles every state container of one café instance. Tests build their
// own App over a private database.
type App struct {
	Catalog       *CatalogService
	Auth          *AuthService
	Orders        *OrderService
	Sessions      *SessionStore
	Notifications *notify.Center
	Tokens        *utils.TokenIssuer
}

type Options struct {
	IDs             IDGenerator
	Receipts        ReceiptGenerator
	Now             func() time.Time
	JWTSecret       string
	TokenTTL        time.Duration
	NotificationTTL time.Duration
}

func NewApp(db *gorm.DB, opts Options) *App {
	if opts.IDs == nil {
		opts.IDs = UUIDGenerator{}
	}
	if opts.Receipts == nil {
		opts.Receipts = RandomReceipts{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.NotificationTTL <= 0 {
		opts.NotificationTTL = 3 * time.Second
	}

	tokens := utils.NewTokenIssuer(opts.JWTSecret, opts.TokenTTL)
	tokens.Now = opts.Now
	notifications := notify.NewCenter(opts.NotificationTTL)
	notifications.Now = opts.Now

	return &App{
		Catalog:       NewCatalogService(db, opts.IDs),
		Auth:          NewAuthService(db, opts.IDs),
		Orders:        NewOrderService(db, opts.IDs, opts.Receipts, opts.Now),
		Sessions:      NewSessionStore(opts.IDs),
		Notifications: notifications,
		Tokens:        tokens,
	}
}
