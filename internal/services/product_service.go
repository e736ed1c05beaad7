// internal/services/product_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/models"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/store"
)

// ProductService owns the product catalog: identity, descriptive and pricing
// attributes, and the cascade into the inventory ledger on delete.
type ProductService struct {
	store   store.Store
	history *HistoryService
}

type CreateProductRequest struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Weight      float64            `json:"weight" validate:"min=0"`
	Price       *float64           `json:"price,omitempty" validate:"omitempty,min=0"`
	Currency    string             `json:"currency,omitempty"`
	Supplier    string             `json:"supplier,omitempty"`
	Attributes  []models.Attribute `json:"attributes,omitempty"`
}

// UpdateProductRequest carries partial field changes. Nil fields are left
// unchanged; they are never reset to defaults.
type UpdateProductRequest struct {
	Name        *string            `json:"name,omitempty"`
	Description *string            `json:"description,omitempty"`
	Weight      *float64           `json:"weight,omitempty"`
	Price       *float64           `json:"price,omitempty"`
	Currency    *string            `json:"currency,omitempty"`
	Supplier    *string            `json:"supplier,omitempty"`
	Attributes  []models.Attribute `json:"attributes,omitempty"`
}

func NewProductService(st store.Store, history *HistoryService) *ProductService {
	return &ProductService{store: st, history: history}
}

func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("product name must not be empty")
	}
	if req.Weight < 0 {
		return nil, NewValidationError("weight must be >= 0")
	}

	price := 0.0
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, NewValidationError("price must be >= 0")
		}
		price = *req.Price
	}

	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = models.DefaultCurrency
	}

	if err := validateAttributes(req.Attributes); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Weight:      req.Weight,
		Price:       price,
		Currency:    currency,
		Supplier:    strings.TrimSpace(req.Supplier),
		Attributes:  req.Attributes,
	}

	id, err := s.store.Insert(ctx, store.CollectionProducts, product)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product.ID = id

	s.history.Record(ctx, models.EntityKindProduct, models.EventActionCreated, id, "",
		fmt.Sprintf("Product '%s' created.", name))
	return product, nil
}

// Get looks up a product. Absence is not an error: found reports whether the
// product exists.
func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, bool, error) {
	var product models.Product
	found, err := s.store.FindByID(ctx, store.CollectionProducts, id, &product)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch product: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	return &product, true, nil
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.store.FindAll(ctx, store.CollectionProducts, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Update(ctx context.Context, id string, req *UpdateProductRequest) (*models.Product, error) {
	existing, found, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, NewNotFoundError("product '%s' not found", id)
	}

	changes := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("product name must not be empty")
		}
		changes["name"] = name
	}
	if req.Description != nil {
		changes["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Weight != nil {
		if *req.Weight < 0 {
			return nil, NewValidationError("weight must be >= 0")
		}
		changes["weight"] = *req.Weight
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, NewValidationError("price must be >= 0")
		}
		changes["price"] = *req.Price
	}
	if req.Currency != nil {
		currency := strings.TrimSpace(*req.Currency)
		if currency == "" {
			return nil, NewValidationError("currency must not be empty")
		}
		changes["currency"] = currency
	}
	if req.Supplier != nil {
		changes["supplier"] = strings.TrimSpace(*req.Supplier)
	}
	if req.Attributes != nil {
		if err := validateAttributes(req.Attributes); err != nil {
			return nil, err
		}
		changes["attributes"] = req.Attributes
	}

	if len(changes) == 0 {
		return existing, nil
	}

	if _, err := s.store.Update(ctx, store.CollectionProducts, id, changes); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updated, _, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.history.Record(ctx, models.EntityKindProduct, models.EventActionUpdated, id, "",
		fmt.Sprintf("Product '%s' updated.", updated.Name))
	return updated, nil
}

// Delete removes a product and cascades to every inventory entry referencing
// it. The cascade runs first so no entry is left pointing at a missing
// product.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	existing, found, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return NewNotFoundError("product '%s' not found", id)
	}

	if _, err := s.store.DeleteInventoryByProduct(ctx, id); err != nil {
		return fmt.Errorf("failed to remove inventory entries for product: %w", err)
	}
	if _, err := s.store.Delete(ctx, store.CollectionProducts, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.history.Record(ctx, models.EntityKindProduct, models.EventActionDeleted, id, "",
		fmt.Sprintf("Product '%s' deleted.", existing.Name))
	return nil
}

func validateAttributes(attrs []models.Attribute) error {
	seen := make(map[string]struct{}, len(attrs))
	for _, attr := range attrs {
		key := strings.TrimSpace(attr.Key)
		if key == "" {
			return NewValidationError("attribute key must not be empty")
		}
		if _, dup := seen[key]; dup {
			return NewValidationError("duplicate attribute key '%s'", key)
		}
		seen[key] = struct{}{}

		switch attr.Type {
		case models.AttributeTypeString, models.AttributeTypeNumber, models.AttributeTypeBoolean:
		default:
			return NewValidationError("attribute '%s' has unknown type '%s'", key, attr.Type)
		}
	}
	return nil
}
