package newcustomerrepo

import (
	"context"
	"strings"
	"time"

	"orderbot/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNewCustomerRepository implements ports.NewCustomerLog using GORM.
type GormNewCustomerRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormNewCustomerRepository creates a new GORM new-customer repository.
func NewGormNewCustomerRepository(db *gorm.DB, now func() time.Time) *GormNewCustomerRepository {
	return &GormNewCustomerRepository{
		db:  db,
		now: now,
	}
}

// Migrate creates or updates the new_customers table.
func (r *GormNewCustomerRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&NewCustomerDTO{})
}

// Append records formattedName. Duplicates are stored as separate rows.
func (r *GormNewCustomerRepository) Append(ctx context.Context, formattedName string) error {
	if strings.TrimSpace(formattedName) == "" {
		return errs.NewValueIsRequiredError("formattedName")
	}

	dto := NewCustomerDTO{
		ID:        uuid.New(),
		Name:      formattedName,
		CreatedAt: r.now().UTC(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// List returns the recorded names, oldest first.
func (r *GormNewCustomerRepository) List(ctx context.Context) ([]string, error) {
	var dtos []NewCustomerDTO
	if err := r.db.WithContext(ctx).Order("created_at ASC, name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	names := make([]string, 0, len(dtos))
	for _, dto := range dtos {
		names = append(names, dto.Name)
	}
	return names, nil
}
