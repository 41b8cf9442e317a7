package database

import (
	"fmt"

	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const seedPassword = "123"

func MockExtras() []models.Extra {
	return []models.Extra{
		{ID: "e1", Name: "Almond Milk", Price: decimal.Zero},
		{ID: "e2", Name: "Lactose-Free Milk", Price: decimal.Zero},
		{ID: "e3", Name: "Caramel Syrup", Price: decimal.Zero},
		{ID: "e4", Name: "Whipped Cream", Price: decimal.Zero},
		{ID: "e5", Name: "No Onion", Price: decimal.Zero},
		{ID: "e6", Name: "Extra Cheese", Price: decimal.Zero},
	}
}

func MockProducts() []models.Product {
	e := MockExtras()
	return []models.Product{
		{
			ID:            "p1",
			Name:          "Espresso",
			Description:   "Short and intense, the base of everything.",
			Price:         decimal.RequireFromString("2.50"),
			ImageURL:      "https://placehold.co/600x400/D29961/FFF?text=Espresso",
			Category:      "Drinks",
			PrepTime:      3,
			Available:     true,
			AllowedExtras: []models.Extra{e[1]},
			Position:      1,
		},
		{
			ID:            "p2",
			Name:          "Latte",
			Description:   "Smooth espresso with steamed milk.",
			Price:         decimal.RequireFromString("3.50"),
			ImageURL:      "https://placehold.co/600x400/A56A49/FFF?text=Latte",
			Category:      "Drinks",
			PrepTime:      5,
			Available:     true,
			AllowedExtras: []models.Extra{e[0], e[1], e[2], e[3]},
			Position:      2,
		},
		{
			ID:          "p3",
			Name:        "Butter Croissant",
			Description: "Crispy and tender puff pastry.",
			Price:       decimal.RequireFromString("2.00"),
			ImageURL:    "https://placehold.co/600x400/E8B478/FFF?text=Croissant",
			Category:    "Pastry",
			PrepTime:    1,
			Available:   true,
			Position:    3,
		},
		{
			ID:            "p4",
			Name:          "Ham & Cheese Sandwich",
			Description:   "Classic toasted sandwich.",
			Price:         decimal.RequireFromString("4.50"),
			ImageURL:      "https://placehold.co/600x400/F0A868/FFF?text=Sandwich",
			Category:      "Food",
			PrepTime:      8,
			Available:     true,
			AllowedExtras: []models.Extra{e[4], e[5]},
			Position:      4,
		},
		{
			ID:          "p5",
			Name:        "Orange Juice",
			Description: "Freshly squeezed, 100% natural.",
			Price:       decimal.RequireFromString("3.00"),
			ImageURL:    "https://placehold.co/600x400/FFA500/FFF?text=Juice",
			Category:    "Drinks",
			PrepTime:    4,
			Available:   false,
			Position:    5,
		},
	}
}

func MockUsers() []models.User {
	return []models.User{
		{ID: "u1", Email: "client@mail.com", Name: "Juan Client", Role: models.RoleClient},
		{ID: "u2", Email: "staff@mail.com", Name: "Ana Staff", Role: models.RoleStaff},
		{ID: "u3", Email: "admin@mail.com", Name: "Manager Admin", Role: models.RoleAdmin},
	}
}

// Seed loads the mock catalog and accounts. It does nothing when the catalog
// already has products.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		extras := MockExtras()
		if err := tx.Create(&extras).Error; err != nil {
			return err
		}
		products := MockProducts()
		if err := tx.Create(&products).Error; err != nil {
			return err
		}
		users := MockUsers()
		for i := range users {
			users[i].Password = string(hashed)
		}
		return tx.Create(&users).Error
	})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	utils.InfoLogger.Println("Mock catalog and accounts seeded.")
	return nil
}
