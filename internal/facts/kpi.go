package facts

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/invopt/inventory_api/internal/store"
)

// KPIReport is the outward-facing payload of the KPI endpoint.
type KPIReport struct {
	TotalSKUs         int64   `json:"total_skus"`
	InStockPercentage float64 `json:"in_stock_percentage"`
	FillRate          float64 `json:"fill_rate"`
	StockoutRate      float64 `json:"stockout_rate"`
	DateRange         string  `json:"date_range"`
}

// Calculator computes aggregate fill-rate and stockout-rate metrics over the
// joined demand/inventory data.
type Calculator struct {
	store store.RecordStore
}

// NewCalculator constructs a Calculator reading from the given store.
func NewCalculator(s store.RecordStore) *Calculator {
	return &Calculator{store: s}
}

// KPIs computes catalog size and stockout metrics for the inclusive date
// window. Only demand and inventory are joined here; catalog size ignores the
// window entirely. An empty window is not an error: with no demand to fill
// the fill rate is 100 and the stockout rate 0.
func (c *Calculator) KPIs(ctx context.Context, startDate, endDate string) (*KPIReport, error) {
	totalSKUs, err := c.store.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	demand, err := c.store.DemandInRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("load demand: %w", err)
	}

	inventory, err := c.store.InventoryInRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	var (
		totalDays         int
		stockoutDays      int
		totalDemand       float64
		unfulfilledDemand float64
	)
	for _, r := range joinInventory(demand, inventory) {
		totalDays++
		totalDemand += r.demand.Demand
		if stockoutFlag(r.inventoryLevel, r.demand.Demand) == 1 {
			stockoutDays++
			unfulfilledDemand += r.demand.Demand
		}
	}

	fillRate := 100.0
	if totalDemand > 0 {
		fillRate = (totalDemand - unfulfilledDemand) / totalDemand * 100
	}
	stockoutRate := 0.0
	if totalDays > 0 {
		stockoutRate = float64(stockoutDays) / float64(totalDays) * 100
	}

	return &KPIReport{
		TotalSKUs:         totalSKUs,
		InStockPercentage: round2(100 - stockoutRate),
		FillRate:          round2(fillRate),
		StockoutRate:      round2(stockoutRate),
		DateRange:         fmt.Sprintf("%s to %s", startDate, endDate),
	}, nil
}

// round2 rounds to two decimal places using exact decimal arithmetic, so
// values like 66.665 don't drift under float rounding.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
