package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "rental/internal/errors"
	"rental/internal/model"
	"rental/internal/repository"
)

// PropertyService handles property listings.
type PropertyService interface {
	CreateProperty(ctx context.Context, fields model.PropertyFields) (*model.Property, error)
	GetProperty(ctx context.Context, id uint) (*model.Property, error)
	ListProperties(ctx context.Context) ([]model.Property, error)
	UpdateProperty(ctx context.Context, id uint, fields model.PropertyFields) (*model.Property, error)
	DeleteProperty(ctx context.Context, id uint) error
}

type propertyService struct {
	repo repository.PropertyRepository
}

// NewPropertyService creates a new property service.
func NewPropertyService(repo repository.PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

func validateProperty(fields *model.PropertyFields) error {
	fields.Name = strings.TrimSpace(fields.Name)
	if fields.Name == "" {
		return apperrors.Validation("name is required")
	}
	if fields.Price.LessThan(decimal.Zero) {
		return apperrors.Validation("price must not be negative")
	}
	return nil
}

// CreateProperty validates and stores a new property.
func (s *propertyService) CreateProperty(ctx context.Context, fields model.PropertyFields) (*model.Property, error) {
	if err := validateProperty(&fields); err != nil {
		return nil, err
	}

	property := &model.Property{
		Name:        fields.Name,
		Description: fields.Description,
		Type:        fields.Type,
		Size:        fields.Size,
		Location:    fields.Location,
		Price:       fields.Price,
	}
	if err := s.repo.Create(ctx, property); err != nil {
		return nil, apperrors.Internal(err, "create property")
	}
	return property, nil
}

// GetProperty retrieves a property by ID.
func (s *propertyService) GetProperty(ctx context.Context, id uint) (*model.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrPropertyNotFound, "find property")
	}
	return property, nil
}

// ListProperties lists every property.
func (s *propertyService) ListProperties(ctx context.Context) ([]model.Property, error) {
	properties, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "list properties")
	}
	return properties, nil
}

// UpdateProperty rewrites a property and returns the stored result.
func (s *propertyService) UpdateProperty(ctx context.Context, id uint, fields model.PropertyFields) (*model.Property, error) {
	if err := validateProperty(&fields); err != nil {
		return nil, err
	}

	affected, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, apperrors.Internal(err, "update property")
	}
	if affected == 0 {
		return nil, apperrors.ErrPropertyNotFound
	}
	return s.GetProperty(ctx, id)
}

// DeleteProperty removes a property.
func (s *propertyService) DeleteProperty(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Internal(err, "delete property")
	}
	if affected == 0 {
		return apperrors.ErrPropertyNotFound
	}
	return nil
}
