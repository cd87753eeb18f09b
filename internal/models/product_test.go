package models_test

import (
	"strings"
	"testing"

	"lapak/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validProduct() models.Product {
	return models.Product{
		Name:      "Racing Gloves",
		Price:     decimal.RequireFromString("19.99"),
		Available: true,
	}
}

func TestProductValidate_Price(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		wantErr bool
	}{
		{"positive price", "19.99", false},
		{"smallest positive price", "0.01", false},
		{"single decimal place accepted", "19.9", false},
		{"whole number accepted", "20", false},
		{"zero price", "0.00", true},
		{"negative price", "-4.99", true},
		{"three decimal places rejected", "1.999", true},
		{"trailing zero third place rejected", "1.990", true},
		{"ten digits accepted", "99999999.99", false},
		{"eleven digits rejected", "100000000.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			p.Price = decimal.RequireFromString(tt.price)
			err := p.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			var errs models.FieldErrors
			assert.ErrorAs(t, err, &errs)
			assert.Len(t, errs, 1)
			assert.Equal(t, "price", errs[0].Field)
		})
	}
}

func TestProductValidate_NameBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		nameLen int
		wantErr bool
	}{
		{"blank name rejected", 0, true},
		{"single character accepted", 1, false},
		{"max length accepted", 255, false},
		{"over max length rejected", 256, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			p.Name = strings.Repeat("a", tt.nameLen)
			err := p.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var errs models.FieldErrors
			assert.ErrorAs(t, err, &errs)
			assert.Equal(t, "name", errs[0].Field)
		})
	}
}

func TestProductValidate_ReportsEveryField(t *testing.T) {
	p := models.Product{Name: "", Price: decimal.Zero}
	err := p.Validate()

	var errs models.FieldErrors
	assert.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
	fields := []string{errs[0].Field, errs[1].Field}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")
}

func TestProductBeforeSave_RejectsInvalidPrice(t *testing.T) {
	// The persistence hook must reject the write itself, independent of the
	// explicit validation step.
	p := validProduct()
	p.Price = decimal.NewFromInt(-1)
	assert.Error(t, p.BeforeSave(nil))
}
