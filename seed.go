package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lapak/internal/models"
)

// seedSampleData wipes the store and repopulates it with a small fixture set
// for manual testing: three products, three customers, three orders, an
// admin account (admin/admin) and a regular account (user/user).
func seedSampleData(db *gorm.DB) error {
	wipe := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := db.Exec("DELETE FROM order_products").Error; err != nil {
		return fmt.Errorf("failed to clear order products: %w", err)
	}
	for _, model := range []interface{}{&models.Order{}, &models.Product{}, &models.Customer{}, &models.User{}} {
		if err := wipe.Unscoped().Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}

	gloves := models.Product{Name: "Racing Gloves", Price: decimal.RequireFromString("19.99"), Available: true}
	suit := models.Product{Name: "Racing Suit", Price: decimal.RequireFromString("199.99"), Available: true}
	helmet := models.Product{Name: "Helmet", Price: decimal.RequireFromString("59.99"), Available: false}
	for _, p := range []*models.Product{&gloves, &suit, &helmet} {
		p.ID = uuid.New().String()
		if err := db.Create(p).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
	}

	lando := models.Customer{Name: "Lando Norris", Address: "McLaren Technology Centre"}
	carlos := models.Customer{Name: "Carlos Sainz", Address: "Ferrari S.p.A. Via Abetone Inferiore n. 4"}
	lewis := models.Customer{Name: "Lewis Hamilton", Address: "Mercedes AMG Petronas F1 Operations Centre"}
	for _, c := range []*models.Customer{&lando, &carlos, &lewis} {
		c.ID = uuid.New().String()
		if err := db.Create(c).Error; err != nil {
			return fmt.Errorf("failed to seed customer %s: %w", c.Name, err)
		}
	}

	orders := []models.Order{
		{CustomerID: lando.ID, Status: models.StatusNew, Products: []models.Product{gloves}},
		{CustomerID: carlos.ID, Status: models.StatusInProcess, Products: []models.Product{suit}},
		{CustomerID: lando.ID, Status: models.StatusCompleted, Products: []models.Product{gloves, helmet}},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			return fmt.Errorf("failed to seed order for customer %s: %w", orders[i].CustomerID, err)
		}
	}

	accounts := []struct {
		username, email, password, role string
	}{
		{"admin", "admin@example.com", "admin", models.RoleAdmin},
		{"user", "user@example.com", "user", models.RoleUser},
	}
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", a.username, err)
		}
		user := models.User{
			ID:       uuid.New().String(),
			Username: a.username,
			Email:    a.email,
			Password: string(hash),
			Role:     a.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", a.username, err)
		}
	}

	return nil
}
