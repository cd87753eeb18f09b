package models

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a sellable product in the catalog.
type Product struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string          `json:"name" gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Available bool            `json:"available" gorm:"not null"`
	Orders    []Order         `json:"-" gorm:"many2many:order_products"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// priceIntegerLimit caps the integer part of a price: the column is
// decimal(10,2), so at most 8 digits remain before the point.
var priceIntegerLimit = decimal.New(1, 8)

// Validate checks the product invariants and reports every violated field.
func (p *Product) Validate() error {
	var errs FieldErrors
	nameLen := utf8.RuneCountInString(p.Name)
	if nameLen == 0 {
		errs.Add("name", "this field cannot be blank")
	} else if nameLen > 255 {
		errs.Add("name", "ensure this value has at most 255 characters")
	}
	if !p.Price.IsPositive() {
		errs.Add("price", "the price must be a positive value")
	}
	if p.Price.Exponent() < -2 {
		errs.Add("price", "ensure that there are no more than 2 decimal places")
	}
	if p.Price.Abs().GreaterThanOrEqual(priceIntegerLimit) {
		errs.Add("price", "ensure that there are no more than 10 digits in total")
	}
	return errs.OrNil()
}

// BeforeSave re-runs validation at the point of persistence, so no code path
// can write an invalid product by skipping the explicit validation step.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	return p.Validate()
}
