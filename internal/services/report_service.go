// internal/services/report_service.go
package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/models"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/store"
)

// ReportService derives read-only reports from catalog, registry and ledger
// state. Every call recomputes from the store; nothing is cached.
type ReportService struct {
	store store.Store
}

// InventoryReportRow is one line of the per-warehouse stock report, sorted by
// product name ascending (case-insensitive) with the product ID as tiebreak.
type InventoryReportRow struct {
	WarehouseID        string `json:"warehouse_id"`
	WarehouseName      string `json:"warehouse_name"`
	ProductID          string `json:"product_id"`
	ProductName        string `json:"product_name"`
	ProductDescription string `json:"product_description"`
	Quantity           int    `json:"quantity"`
}

// WarehouseUtilization reports how much of a warehouse's unit capacity is in
// use.
type WarehouseUtilization struct {
	WarehouseID string  `json:"warehouse_id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	Units       int     `json:"units"`
	Utilization float64 `json:"utilization"`
}

// Statistics aggregates global KPIs across all warehouses and products.
// CapacityUtilization is total units divided by total capacity; the
// per-warehouse figures are reported alongside so callers can reconstruct
// any other reduction.
type Statistics struct {
	TotalProducts       int                    `json:"total_products"`
	TotalWarehouses     int                    `json:"total_warehouses"`
	TotalUnits          int                    `json:"total_units"`
	TotalWeight         float64                `json:"total_weight"`
	TotalValue          float64                `json:"total_value"`
	CapacityUtilization float64                `json:"capacity_utilization"`
	Warehouses          []WarehouseUtilization `json:"warehouses"`
}

func NewReportService(st store.Store) *ReportService {
	return &ReportService{store: st}
}

func (s *ReportService) InventoryReport(ctx context.Context, warehouseID string) ([]InventoryReportRow, error) {
	var warehouse models.Warehouse
	found, err := s.store.FindByID(ctx, store.CollectionWarehouses, warehouseID, &warehouse)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch warehouse: %w", err)
	}
	if !found {
		return nil, NewNotFoundError("warehouse '%s' not found", warehouseID)
	}

	entries, err := s.store.FindInventoryByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("failed to read warehouse inventory: %w", err)
	}

	rows := make([]InventoryReportRow, 0, len(entries))
	for _, entry := range entries {
		row := InventoryReportRow{
			WarehouseID:   warehouseID,
			WarehouseName: warehouse.Name,
			ProductID:     entry.ProductID,
			ProductName:   "?",
			Quantity:      entry.Quantity,
		}

		var product models.Product
		found, err := s.store.FindByID(ctx, store.CollectionProducts, entry.ProductID, &product)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch product for report: %w", err)
		}
		if found {
			row.ProductName = product.Name
			row.ProductDescription = product.Description
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		ni, nj := strings.ToLower(rows[i].ProductName), strings.ToLower(rows[j].ProductName)
		if ni != nj {
			return ni < nj
		}
		return rows[i].ProductID < rows[j].ProductID
	})
	return rows, nil
}

func (s *ReportService) Statistics(ctx context.Context) (*Statistics, error) {
	var products []models.Product
	if err := s.store.FindAll(ctx, store.CollectionProducts, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	var warehouses []models.Warehouse
	if err := s.store.FindAll(ctx, store.CollectionWarehouses, &warehouses); err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	var inventory []models.InventoryEntry
	if err := s.store.FindAll(ctx, store.CollectionInventory, &inventory); err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	weightByID := make(map[string]float64, len(products))
	priceByID := make(map[string]float64, len(products))
	for _, p := range products {
		weightByID[p.ID] = p.Weight
		priceByID[p.ID] = p.Price
	}

	unitsByWarehouse := make(map[string]int, len(warehouses))
	stats := &Statistics{
		TotalProducts:   len(products),
		TotalWarehouses: len(warehouses),
	}

	for _, entry := range inventory {
		stats.TotalUnits += entry.Quantity
		stats.TotalWeight += float64(entry.Quantity) * weightByID[entry.ProductID]
		stats.TotalValue += float64(entry.Quantity) * priceByID[entry.ProductID]
		unitsByWarehouse[entry.WarehouseID] += entry.Quantity
	}

	totalCapacity := 0
	stats.Warehouses = make([]WarehouseUtilization, 0, len(warehouses))
	for _, w := range warehouses {
		units := unitsByWarehouse[w.ID]
		utilization := 0.0
		if w.Capacity > 0 {
			utilization = float64(units) / float64(w.Capacity)
		}
		totalCapacity += w.Capacity
		stats.Warehouses = append(stats.Warehouses, WarehouseUtilization{
			WarehouseID: w.ID,
			Name:        w.Name,
			Capacity:    w.Capacity,
			Units:       units,
			Utilization: utilization,
		})
	}
	if totalCapacity > 0 {
		stats.CapacityUtilization = float64(stats.TotalUnits) / float64(totalCapacity)
	}

	sort.Slice(stats.Warehouses, func(i, j int) bool {
		return stats.Warehouses[i].Name < stats.Warehouses[j].Name
	})
	return stats, nil
}

// RenderInventoryReport produces the plain-text stock report artifact for one
// warehouse.
func (s *ReportService) RenderInventoryReport(ctx context.Context, warehouseID string) (string, error) {
	rows, err := s.InventoryReport(ctx, warehouseID)
	if err != nil {
		return "", err
	}

	warehouseName := "(empty)"
	if len(rows) > 0 {
		warehouseName = rows[0].WarehouseName
	} else {
		var warehouse models.Warehouse
		if found, err := s.store.FindByID(ctx, store.CollectionWarehouses, warehouseID, &warehouse); err == nil && found {
			warehouseName = warehouse.Name
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Stock report for warehouse %s (ID: %s)\n", warehouseName, warehouseID)
	b.WriteString(strings.Repeat("=", 72) + "\n")

	if len(rows) == 0 {
		b.WriteString("No products stocked in this warehouse.\n")
		return b.String(), nil
	}

	header := fmt.Sprintf("%-25s | %5s | %s", "Product", "Qty", "Description")
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", len(header)) + "\n")
	for _, row := range rows {
		name := row.ProductName
		if len(name) > 25 {
			name = name[:25]
		}
		fmt.Fprintf(&b, "%-25s | %5d | %s\n", name, row.Quantity, row.ProductDescription)
	}
	return b.String(), nil
}

// RenderStatistics produces the plain-text global statistics artifact.
func (s *ReportService) RenderStatistics(ctx context.Context) (string, error) {
	stats, err := s.Statistics(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Global warehouse statistics\n")
	b.WriteString(strings.Repeat("=", 72) + "\n")
	fmt.Fprintf(&b, "Total products:    %d\n", stats.TotalProducts)
	fmt.Fprintf(&b, "Total warehouses:  %d\n", stats.TotalWarehouses)
	fmt.Fprintf(&b, "Total units:       %d\n", stats.TotalUnits)
	fmt.Fprintf(&b, "Total weight (kg): %.3f\n", stats.TotalWeight)
	fmt.Fprintf(&b, "Total value:       %.2f\n", stats.TotalValue)
	fmt.Fprintf(&b, "Capacity in use:   %5.1f%%\n", stats.CapacityUtilization*100)
	b.WriteString("\nCapacity utilization per warehouse:\n")

	if len(stats.Warehouses) == 0 {
		b.WriteString("  (no warehouses)\n")
		return b.String(), nil
	}
	for _, w := range stats.Warehouses {
		fmt.Fprintf(&b, "  - %s: %5.1f%% (%d of %d units)\n", w.Name, w.Utilization*100, w.Units, w.Capacity)
	}
	return b.String(), nil
}
