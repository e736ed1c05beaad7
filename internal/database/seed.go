// internal/database/seed.go
package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/models"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/store"
)

// SeedInitialData populates the store with a small set of realistic
// warehouses and products so a fresh installation has something to show.
// Idempotent: it does nothing once any warehouse exists.
func SeedInitialData(ctx context.Context, st store.Store) error {
	var existing []models.Warehouse
	if err := st.FindAll(ctx, store.CollectionWarehouses, &existing); err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	logrus.Info("Seeding initial data...")

	warehouses := []models.Warehouse{
		{Name: "Hauptlager Wien", Address: "Wiener Straße 1, 1010 Wien", Capacity: 500},
		{Name: "Nebenlager Graz", Address: "Grazer Gasse 22, 8010 Graz", Capacity: 300},
		{Name: "Außenlager Linz", Address: "Linzer Allee 7, 4020 Linz", Capacity: 200},
	}

	warehouseIDs := make([]string, 0, len(warehouses))
	for _, w := range warehouses {
		id, err := st.Insert(ctx, store.CollectionWarehouses, w)
		if err != nil {
			return fmt.Errorf("failed to seed warehouse %s: %w", w.Name, err)
		}
		warehouseIDs = append(warehouseIDs, id)
	}

	products := []models.Product{
		{Name: "Bürostuhl Ergonomisch", Description: "Höhenverstellbarer Drehstuhl", Weight: 12.5, Price: 249.90, Currency: models.DefaultCurrency},
		{Name: "Schreibtisch Eck", Description: "Eckschreibtisch 160x120", Weight: 42.0, Price: 399.00, Currency: models.DefaultCurrency},
		{Name: "Monitor 27-Zoll", Description: "QHD IPS Panel", Weight: 5.4, Price: 219.00, Currency: models.DefaultCurrency},
		{Name: "Tastatur Mechanisch", Description: "Kabelgebunden, DE-Layout", Weight: 0.9, Price: 89.90, Currency: models.DefaultCurrency},
		{Name: "Kabel USB-C", Description: "2 m, geflochten", Weight: 0.1, Price: 12.50, Currency: models.DefaultCurrency},
	}

	productIDs := make([]string, 0, len(products))
	for _, p := range products {
		id, err := st.Insert(ctx, store.CollectionProducts, p)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.Name, err)
		}
		productIDs = append(productIDs, id)
	}

	// Spread some stock across the warehouses.
	quantities := []int{40, 25, 60, 15, 120}
	for i, productID := range productIDs {
		entry := models.InventoryEntry{
			WarehouseID: warehouseIDs[i%len(warehouseIDs)],
			ProductID:   productID,
			Quantity:    quantities[i%len(quantities)],
		}
		if _, err := st.Insert(ctx, store.CollectionInventory, entry); err != nil {
			return fmt.Errorf("failed to seed inventory entry: %w", err)
		}
	}

	logrus.Info("Initial data seeding completed")
	return nil
}
