package repository

import (
	"context"

	"gorm.io/gorm"

	"rental/internal/model"
)

// PropertyRepository defines property persistence operations.
type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	FindByID(ctx context.Context, id uint) (*model.Property, error)
	List(ctx context.Context) ([]model.Property, error)
	Update(ctx context.Context, id uint, fields model.PropertyFields) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Create creates a new property and fills in its id.
func (r *propertyRepository) Create(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

// FindByID finds a property by ID.
func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*model.Property, error) {
	var property model.Property
	if err := r.db.WithContext(ctx).Where("property_id = ?", id).Take(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// List lists all properties.
func (r *propertyRepository) List(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	if err := r.db.WithContext(ctx).Order("property_id").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Update rewrites every writable column and returns the matched row count.
func (r *propertyRepository) Update(ctx context.Context, id uint, fields model.PropertyFields) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Property{}).
		Where("property_id = ?", id).
		Updates(map[string]interface{}{
			"name":        fields.Name,
			"description": fields.Description,
			"type":        fields.Type,
			"size":        fields.Size,
			"location":    fields.Location,
			"price":       fields.Price,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Delete removes a property and returns the deleted row count.
func (r *propertyRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("property_id = ?", id).Delete(&model.Property{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
