// internal/services/product_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/models"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/store"
)

type ProductServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	store     *store.MemoryStore
	history   *HistoryService
	products  *ProductService
	inventory *InventoryService
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = store.NewMemoryStore()
	suite.history = NewHistoryService(suite.store)
	suite.products = NewProductService(suite.store, suite.history)
	suite.inventory = NewInventoryService(suite.store, suite.history)
}

func (suite *ProductServiceTestSuite) TestCreateAndGetRoundTrip() {
	created, err := suite.products.Create(suite.ctx, &CreateProductRequest{
		Name:        "  Hammer  ",
		Description: "Claw hammer",
		Weight:      1.2,
	})
	suite.Require().NoError(err)
	suite.NotEmpty(created.ID)
	suite.Equal("Hammer", created.Name)

	fetched, found, err := suite.products.Get(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal("Hammer", fetched.Name)
	suite.Equal(1.2, fetched.Weight)
	suite.Equal(models.DefaultCurrency, fetched.Currency)
}

func (suite *ProductServiceTestSuite) TestCreateRejectsInvalidInput() {
	cases := []struct {
		name string
		req  CreateProductRequest
	}{
		{"empty name", CreateProductRequest{Name: "   ", Weight: 1.0}},
		{"negative weight", CreateProductRequest{Name: "Shelf", Weight: -1.0}},
		{"negative price", CreateProductRequest{Name: "Shelf", Weight: 1.0, Price: floatPtr(-5.0)}},
	}

	for _, tc := range cases {
		_, err := suite.products.Create(suite.ctx, &tc.req)
		suite.Require().Error(err, tc.name)
		suite.True(IsValidation(err), tc.name)
	}

	// Failed creates must not reach the store.
	products, err := suite.products.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(products)
}

func (suite *ProductServiceTestSuite) TestCreateStoresPriceSupplierAndAttributes() {
	created, err := suite.products.Create(suite.ctx, &CreateProductRequest{
		Name:     "Chair",
		Weight:   8.5,
		Price:    floatPtr(129.99),
		Currency: "USD",
		Supplier: "OfficeWorld",
		Attributes: []models.Attribute{
			{Key: "color", Type: models.AttributeTypeString, Text: "black"},
			{Key: "max_load", Type: models.AttributeTypeNumber, Number: 120},
			{Key: "foldable", Type: models.AttributeTypeBoolean, Boolean: true},
		},
	})
	suite.Require().NoError(err)

	fetched, found, err := suite.products.Get(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(129.99, fetched.Price)
	suite.Equal("USD", fetched.Currency)
	suite.Equal("OfficeWorld", fetched.Supplier)
	suite.Require().Len(fetched.Attributes, 3)
	suite.Equal("color", fetched.Attributes[0].Key)
	suite.Equal(120.0, fetched.Attributes[1].Number)
	suite.True(fetched.Attributes[2].Boolean)
}

func (suite *ProductServiceTestSuite) TestCreateRejectsDuplicateAttributeKeys() {
	_, err := suite.products.Create(suite.ctx, &CreateProductRequest{
		Name:   "Lamp",
		Weight: 0.8,
		Attributes: []models.Attribute{
			{Key: "color", Type: models.AttributeTypeString, Text: "white"},
			{Key: "color", Type: models.AttributeTypeString, Text: "black"},
		},
	})
	suite.Require().Error(err)
	suite.True(IsValidation(err))
}

func (suite *ProductServiceTestSuite) TestCreateRejectsUnknownAttributeType() {
	_, err := suite.products.Create(suite.ctx, &CreateProductRequest{
		Name:   "Lamp",
		Weight: 0.8,
		Attributes: []models.Attribute{
			{Key: "color", Type: "list", Text: "white"},
		},
	})
	suite.Require().Error(err)
	suite.True(IsValidation(err))
}

func (suite *ProductServiceTestSuite) TestGetUnknownIDReportsNotFound() {
	_, found, err := suite.products.Get(suite.ctx, "missing")
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *ProductServiceTestSuite) TestUpdatePartialLeavesOtherFieldsUntouched() {
	created, err := suite.products.Create(suite.ctx, &CreateProductRequest{
		Name:        "Desk",
		Description: "Standing desk",
		Weight:      30.0,
		Price:       floatPtr(499.0),
	})
	suite.Require().NoError(err)

	updated, err := suite.products.Update(suite.ctx, created.ID, &UpdateProductRequest{
		Weight: floatPtr(28.5),
	})
	suite.Require().NoError(err)
	suite.Equal(28.5, updated.Weight)
	suite.Equal("Desk", updated.Name)
	suite.Equal("Standing desk", updated.Description)
	suite.Equal(499.0, updated.Price)
}

func (suite *ProductServiceTestSuite) TestUpdateWithEmptyChangeSetIsIdempotent() {
	created, err := suite.products.Create(suite.ctx, &CreateProductRequest{
		Name: "Desk", Weight: 30.0,
	})
	suite.Require().NoError(err)

	updated, err := suite.products.Update(suite.ctx, created.ID, &UpdateProductRequest{})
	suite.Require().NoError(err)
	suite.Equal(created, updated)
}

func (suite *ProductServiceTestSuite) TestUpdateRejectsInvalidFields() {
	created, err := suite.products.Create(suite.ctx, &CreateProductRequest{
		Name: "Desk", Weight: 30.0,
	})
	suite.Require().NoError(err)

	_, err = suite.products.Update(suite.ctx, created.ID, &UpdateProductRequest{Name: strPtr("   ")})
	suite.True(IsValidation(err))

	_, err = suite.products.Update(suite.ctx, created.ID, &UpdateProductRequest{Weight: floatPtr(-2)})
	suite.True(IsValidation(err))
}

func (suite *ProductServiceTestSuite) TestUpdateUnknownIDFails() {
	_, err := suite.products.Update(suite.ctx, "missing", &UpdateProductRequest{Name: strPtr("X")})
	suite.Require().Error(err)
	suite.True(IsNotFound(err))
}

func (suite *ProductServiceTestSuite) TestDeleteCascadesToInventory() {
	product, err := suite.products.Create(suite.ctx, &CreateProductRequest{Name: "Hammer", Weight: 1.2})
	suite.Require().NoError(err)

	warehouses := NewWarehouseService(suite.store, suite.history)
	warehouse, err := warehouses.Create(suite.ctx, &CreateWarehouseRequest{Name: "Depot A", Capacity: 100})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.inventory.AddStock(suite.ctx, warehouse.ID, product.ID, 10))

	suite.Require().NoError(suite.products.Delete(suite.ctx, product.ID))

	_, found, err := suite.products.Get(suite.ctx, product.ID)
	suite.Require().NoError(err)
	suite.False(found)

	entry, err := suite.store.FindInventoryEntry(suite.ctx, warehouse.ID, product.ID)
	suite.Require().NoError(err)
	suite.Nil(entry)
}

func (suite *ProductServiceTestSuite) TestDeleteUnknownIDFails() {
	err := suite.products.Delete(suite.ctx, "missing")
	suite.Require().Error(err)
	suite.True(IsNotFound(err))
}

func TestProductServiceSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
