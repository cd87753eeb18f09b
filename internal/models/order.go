package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusNew       OrderStatus = "New"
	StatusInProcess OrderStatus = "In Process"
	StatusSent      OrderStatus = "Sent"
	StatusCompleted OrderStatus = "Completed"
)

// OrderStatuses lists every allowed status, in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusNew, StatusInProcess, StatusSent, StatusCompleted}
}

// Valid reports whether s is a member of the status enum.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProcess, StatusSent, StatusCompleted:
		return true
	}
	return false
}

// Validate returns a field error naming the allowed enum values when s is
// not a member of the status enum.
func (s OrderStatus) Validate() error {
	if s.Valid() {
		return nil
	}
	allowed := make([]string, 0, 4)
	for _, v := range OrderStatuses() {
		allowed = append(allowed, string(v))
	}
	var errs FieldErrors
	errs.Add("status", fmt.Sprintf("invalid status value: '%s'. Allowed values are: %s",
		s, strings.Join(allowed, ", ")))
	return errs
}

// Order represents a customer order holding a set of products.
// DateCreated is write-once; GORM never touches it after creation.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID  string      `json:"customer_id" gorm:"type:varchar(36);not null;index"`
	Customer    *Customer   `json:"customer,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(20);not null"`
	Products    []Product   `json:"products" gorm:"many2many:order_products;constraint:OnDelete:CASCADE"`
	DateCreated time.Time   `json:"date_created" gorm:"<-:create"`
}

// Validate checks the order invariants and reports every violated field.
func (o *Order) Validate() error {
	var errs FieldErrors
	if o.CustomerID == "" {
		errs.Add("customer_id", "this field is required")
	}
	if err := o.Status.Validate(); err != nil {
		var serrs FieldErrors
		errors.As(err, &serrs)
		errs = append(errs, serrs...)
	}
	return errs.OrNil()
}

// BeforeCreate assigns defaults and validates the order before it is persisted.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Status == "" {
		o.Status = StatusNew
	}
	if o.DateCreated.IsZero() {
		o.DateCreated = time.Now()
	}
	return o.Validate()
}

// TotalPrice is the exact decimal sum of the prices of the order's current
// product set. It is zero for an empty set and recomputed on every call.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Price)
	}
	return total
}

// Fulfillable reports whether every product in the order is currently
// available. An order with no products is vacuously fulfillable.
func (o *Order) Fulfillable() bool {
	for _, p := range o.Products {
		if !p.Available {
			return false
		}
	}
	return true
}
