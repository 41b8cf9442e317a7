package services_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ShakirChaya0/IPP-Prototype/database"
	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	utils.SilenceLoggers()
	os.Exit(m.Run())
}

type testClock struct {
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// setupTestDB opens a private seeded in-memory database for one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(database.InMemoryDSN(name))
	require.NoError(t, err)
	require.NoError(t, database.Seed(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupTestApp(t *testing.T, receipts services.ReceiptGenerator) (*services.App, *testClock) {
	t.Helper()
	if receipts == nil {
		receipts = services.NewSequenceReceipts(1)
	}
	clock := newTestClock()
	app := services.NewApp(setupTestDB(t), services.Options{
		IDs:       services.NewSequenceGenerator(100),
		Receipts:  receipts,
		Now:       clock.Now,
		JWTSecret: "test-secret",
	})
	app.Auth.Cost = bcrypt.MinCost
	return app, clock
}

// mockProduct returns a seeded product without touching a database.
func mockProduct(t *testing.T, id string) models.Product {
	t.Helper()
	for _, p := range database.MockProducts() {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("no mock product %s", id)
	return models.Product{}
}

func mockUser(t *testing.T, id string) *models.User {
	t.Helper()
	for _, u := range database.MockUsers() {
		if u.ID == id {
			return &u
		}
	}
	t.Fatalf("no mock user %s", id)
	return nil
}

func extrasOf(t *testing.T, product models.Product, ids ...string) []models.Extra {
	t.Helper()
	extras, err := services.SelectExtras(product, ids)
	require.NoError(t, err)
	return extras
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}
