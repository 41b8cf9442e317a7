package database

import (
	"testing"

	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedIsIdempotent(t *testing.T) {
	utils.SilenceLoggers()
	db, err := Open(InMemoryDSN("seed_test"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var products, extras, users int64
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Extra{}).Count(&extras)
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(5), products)
	assert.Equal(t, int64(6), extras)
	assert.Equal(t, int64(3), users)

	var latte models.Product
	require.NoError(t, db.Preload("AllowedExtras").First(&latte, "id = ?", "p2").Error)
	assert.Len(t, latte.AllowedExtras, 4)

	var admin models.User
	require.NoError(t, db.First(&admin, "email = ?", "admin@mail.com").Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(seedPassword)))
}
