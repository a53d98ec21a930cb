// Package newcustomerrepo persists the new-customer log in PostgreSQL.
// Each order started for a customer missing from the directory adds one row.
package newcustomerrepo

import (
	"time"

	"github.com/google/uuid"
)

// NewCustomerDTO is one recorded customer name. Rows are never updated.
type NewCustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default naming to use "new_customers".
func (NewCustomerDTO) TableName() string {
	return "new_customers"
}
