// Package export renders joined fact rows into delimited text for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/invopt/inventory_api/internal/models"
)

// FactHeader is the fixed column order of the daily facts export. The
// storage-assigned document identifier is never part of it.
var FactHeader = []string{
	"date",
	"product_id",
	"category",
	"price",
	"uom",
	"lead_time_days",
	"safety_stock",
	"reorder_multiplier",
	"demand",
	"inventory_level",
	"stockout_flag",
	"month",
	"reorder_point",
	"recommended_order_qty",
}

// FactsCSV renders rows as CSV with one header row and one line per record.
// Nil reorder fields render as empty fields. Zero rows still produces a valid
// header-only document; the no-rows policy belongs to the caller.
func FactsCSV(rows []models.FactRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(FactHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Date,
			r.ProductID,
			r.Category,
			formatNumber(r.Price),
			r.UOM,
			strconv.Itoa(r.LeadTimeDays),
			formatNumber(r.SafetyStock),
			formatNumber(r.ReorderMultiplier),
			formatNumber(r.Demand),
			formatNumber(r.InventoryLevel),
			strconv.Itoa(r.StockoutFlag),
			r.Month,
			formatNullable(r.ReorderPoint),
			formatNullable(r.RecommendedOrderQty),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// formatNumber renders a numeric value without trailing zeros ("12.50" ->
// "12.5", "10.0" -> "10").
func formatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}

func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return formatNumber(*v)
}
