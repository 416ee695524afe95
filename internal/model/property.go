package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property represents a rentable listing.
type Property struct {
	ID          uint            `json:"id" gorm:"column:property_id;primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"size:255;not null;index"`
	Description string          `json:"description" gorm:"type:text"`
	Type        string          `json:"type" gorm:"size:100"`
	Size        string          `json:"size" gorm:"size:100"`
	Location    string          `json:"location" gorm:"size:255;index"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName keeps the table name used by the existing rental schema.
func (Property) TableName() string { return "Properties" }

// PropertyFields are the writable columns of a property.
type PropertyFields struct {
	Name        string
	Description string
	Type        string
	Size        string
	Location    string
	Price       decimal.Decimal
}
