package repositories_test

import (
	"fmt"
	"strings"
	"testing"

	"lapak/internal/models"
	"lapak/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Customer{}, &models.Order{}))
	return db
}

func TestGORMProductRepository_Update(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	gloves := &models.Product{Name: "Racing Gloves", Price: decimal.RequireFromString("19.99"), Available: true}
	require.NoError(t, repo.Create(gloves))

	// Zero values survive the update: available flips to false.
	gloves.Name = "Racing Gloves Pro"
	gloves.Available = false
	require.NoError(t, repo.Update(gloves))

	got, err := repo.GetByID(gloves.ID)
	require.NoError(t, err)
	assert.Equal(t, "Racing Gloves Pro", got.Name)
	assert.False(t, got.Available)
}

func TestGORMProductRepository_UpdateMissingDoesNotInsert(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	ghost := &models.Product{ID: "ghost", Name: "Ghost", Price: decimal.RequireFromString("9.99"), Available: true}
	assert.ErrorIs(t, repo.Update(ghost), repositories.ErrNotFound)

	// The failed update must not have upserted a row.
	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGORMCustomerRepository_Update(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMCustomerRepository(db)

	lando := &models.Customer{Name: "Lando Norris", Address: "McLaren Technology Centre"}
	require.NoError(t, repo.Create(lando))

	lando.Address = "Woking, Surrey"
	require.NoError(t, repo.Update(lando))

	got, err := repo.GetByID(lando.ID)
	require.NoError(t, err)
	assert.Equal(t, "Woking, Surrey", got.Address)
}

func TestGORMCustomerRepository_UpdateMissingDoesNotInsert(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMCustomerRepository(db)

	ghost := &models.Customer{ID: "ghost", Name: "Ghost", Address: "Nowhere"}
	assert.ErrorIs(t, repo.Update(ghost), repositories.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Zero(t, count)
}
