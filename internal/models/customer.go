package models

import (
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

// Customer represents a customer that orders belong to.
// Deleting a customer deletes their orders as well.
type Customer struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Address   string    `json:"address" gorm:"type:varchar(255);not null"`
	Orders    []Order   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the customer invariants and reports every violated field.
func (c *Customer) Validate() error {
	var errs FieldErrors
	nameLen := utf8.RuneCountInString(c.Name)
	if nameLen == 0 {
		errs.Add("name", "this field cannot be blank")
	} else if nameLen > 100 {
		errs.Add("name", "ensure this value has at most 100 characters")
	}
	addrLen := utf8.RuneCountInString(c.Address)
	if addrLen == 0 {
		errs.Add("address", "this field cannot be blank")
	} else if addrLen > 255 {
		errs.Add("address", "ensure this value has at most 255 characters")
	}
	return errs.OrNil()
}

func (c *Customer) BeforeSave(tx *gorm.DB) error {
	return c.Validate()
}
