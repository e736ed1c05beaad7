// internal/services/warehouse_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/store"
)

type WarehouseServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	store      *store.MemoryStore
	history    *HistoryService
	warehouses *WarehouseService
	products   *ProductService
	inventory  *InventoryService
}

func (suite *WarehouseServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = store.NewMemoryStore()
	suite.history = NewHistoryService(suite.store)
	suite.warehouses = NewWarehouseService(suite.store, suite.history)
	suite.products = NewProductService(suite.store, suite.history)
	suite.inventory = NewInventoryService(suite.store, suite.history)
}

func (suite *WarehouseServiceTestSuite) TestCreateAndGetRoundTrip() {
	created, err := suite.warehouses.Create(suite.ctx, &CreateWarehouseRequest{
		Name:     "  Depot A  ",
		Address:  "Main Street 1",
		Capacity: 100,
	})
	suite.Require().NoError(err)
	suite.Equal("Depot A", created.Name)

	fetched, found, err := suite.warehouses.Get(suite.ctx, created.ID)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal("Depot A", fetched.Name)
	suite.Equal(100, fetched.Capacity)
}

func (suite *WarehouseServiceTestSuite) TestCreateRejectsInvalidInput() {
	_, err := suite.warehouses.Create(suite.ctx, &CreateWarehouseRequest{Name: "  ", Capacity: 10})
	suite.True(IsValidation(err))

	_, err = suite.warehouses.Create(suite.ctx, &CreateWarehouseRequest{Name: "Depot", Capacity: 0})
	suite.True(IsValidation(err))

	_, err = suite.warehouses.Create(suite.ctx, &CreateWarehouseRequest{Name: "Depot", Capacity: -5})
	suite.True(IsValidation(err))
}

func (suite *WarehouseServiceTestSuite) TestCreateRejectsDuplicateName() {
	_, err := suite.warehouses.Create(suite.ctx, &CreateWarehouseRequest{Name: "Depot A", Capacity: 100})
	suite.Require().NoError(err)

	_, err = suite.warehouses.Create(suite.ctx, &CreateWarehouseRequest{Name: "Depot A", Capacity: 50})
	suite.Require().Error(err)
	suite.True(IsValidation(err))

	warehouses, err := suite.warehouses.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(warehouses, 1)
}

func (suite *WarehouseServiceTestSuite) TestUpdatePartial() {
	created, err := suite.warehouses.Create(suite.ctx, &CreateWarehouseRequest{
		Name: "Depot A", Address: "Main Street 1", Capacity: 100,
	})
	suite.Require().NoError(err)

	updated, err := suite.warehouses.Update(suite.ctx, created.ID, &UpdateWarehouseRequest{
		Address: strPtr("Side Street 2"),
	})
	suite.Require().NoError(err)
	suite.Equal("Side Street 2", updated.Address)
	suite.Equal("Depot A", updated.Name)
	suite.Equal(100, updated.Capacity)
}

func (suite *WarehouseServiceTestSuite) TestUpdateRejectsRenameToExistingName() {
	_, err := suite.warehouses.Create(suite.ctx, &CreateWarehouseRequest{Name: "Depot A", Capacity: 100})
	suite.Require().NoError(err)
	second, err := suite.warehouses.Create(suite.ctx, &CreateWarehouseRequest{Name: "Depot B", Capacity: 100})
	suite.Require().NoError(err)

	_, err = suite.warehouses.Update(suite.ctx, second.ID, &UpdateWarehouseRequest{Name: strPtr("Depot A")})
	suite.Require().Error(err)
	suite.True(IsValidation(err))
}

func (suite *WarehouseServiceTestSuite) TestUpdateRejectsCapacityBelowStockedUnits() {
	warehouse, err := suite.warehouses.Create(suite.ctx, &CreateWarehouseRequest{Name: "Depot A", Capacity: 100})
	suite.Require().NoError(err)
	product, err := suite.products.Create(suite.ctx, &CreateProductRequest{Name: "Hammer", Weight: 1.2})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.inventory.AddStock(suite.ctx, warehouse.ID, product.ID, 40))

	_, err = suite.warehouses.Update(suite.ctx, warehouse.ID, &UpdateWarehouseRequest{Capacity: intPtr(30)})
	suite.Require().Error(err)
	suite.True(IsValidation(err))

	// Reducing to exactly the stocked amount is allowed.
	updated, err := suite.warehouses.Update(suite.ctx, warehouse.ID, &UpdateWarehouseRequest{Capacity: intPtr(40)})
	suite.Require().NoError(err)
	suite.Equal(40, updated.Capacity)
}

func (suite *WarehouseServiceTestSuite) TestUpdateUnknownIDFails() {
	_, err := suite.warehouses.Update(suite.ctx, "missing", &UpdateWarehouseRequest{Name: strPtr("X")})
	suite.True(IsNotFound(err))
}

func (suite *WarehouseServiceTestSuite) TestDeleteCascadesToInventory() {
	warehouse, err := suite.warehouses.Create(suite.ctx, &CreateWarehouseRequest{Name: "Depot A", Capacity: 100})
	suite.Require().NoError(err)

	for _, name := range []string{"Hammer", "Saw", "Drill"} {
		product, err := suite.products.Create(suite.ctx, &CreateProductRequest{Name: name, Weight: 1.0})
		suite.Require().NoError(err)
		suite.Require().NoError(suite.inventory.AddStock(suite.ctx, warehouse.ID, product.ID, 5))
	}

	entries, err := suite.store.FindInventoryByWarehouse(suite.ctx, warehouse.ID)
	suite.Require().NoError(err)
	suite.Len(entries, 3)

	suite.Require().NoError(suite.warehouses.Delete(suite.ctx, warehouse.ID))

	entries, err = suite.store.FindInventoryByWarehouse(suite.ctx, warehouse.ID)
	suite.Require().NoError(err)
	suite.Empty(entries)

	// The ledger listing now fails because the warehouse itself is gone.
	_, err = suite.inventory.List(suite.ctx, warehouse.ID)
	suite.Require().Error(err)
	suite.True(IsNotFound(err))
}

func (suite *WarehouseServiceTestSuite) TestDeleteUnknownIDFails() {
	err := suite.warehouses.Delete(suite.ctx, "missing")
	suite.True(IsNotFound(err))
}

func TestWarehouseServiceSuite(t *testing.T) {
	suite.Run(t, new(WarehouseServiceTestSuite))
}
