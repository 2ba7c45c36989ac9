package facts

import (
	"context"
	"fmt"

	"github.com/invopt/inventory_api/internal/models"
	"github.com/invopt/inventory_api/internal/store"
	"github.com/invopt/inventory_api/internal/utils"
)

// FactQuery describes one daily-facts request. StartDate and EndDate are
// inclusive ISO date strings compared lexicographically. Category restricts
// output to an exact match on the joined product category. Limit, when set,
// truncates the result; which rows survive follows the underlying selection
// order and carries no further guarantee.
type FactQuery struct {
	StartDate string
	EndDate   string
	Category  string
	Limit     *int
}

// Joiner denormalizes demand, inventory, catalog and recommendation records
// into per-(product, date) fact rows.
type Joiner struct {
	store store.RecordStore
}

// NewJoiner constructs a Joiner reading from the given store.
func NewJoiner(s store.RecordStore) *Joiner {
	return &Joiner{store: s}
}

// DailyFacts produces one denormalized row per (product, date) in the query
// window. Demand rows with no matching inventory record or catalog entry are
// dropped; a missing monthly recommendation leaves the reorder fields nil.
// An empty result is reported as utils.ErrNoData, distinct from store
// failures.
func (j *Joiner) DailyFacts(ctx context.Context, q FactQuery) ([]models.FactRow, error) {
	demand, err := j.store.DemandInRange(ctx, q.StartDate, q.EndDate)
	if err != nil {
		return nil, fmt.Errorf("load demand: %w", err)
	}

	inventory, err := j.store.InventoryInRange(ctx, q.StartDate, q.EndDate)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	products, err := j.store.Products(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	joined := joinProducts(joinInventory(demand, inventory), products)

	recs, err := j.store.RecommendationsForMonths(ctx, monthsIn(joined))
	if err != nil {
		return nil, fmt.Errorf("load recommendations: %w", err)
	}

	rows := projectRows(joined, recs)

	// Category restriction applies before any limit.
	if q.Category != "" {
		rows = filterCategory(rows, q.Category)
	}
	if q.Limit != nil && len(rows) > *q.Limit {
		rows = rows[:*q.Limit]
	}

	if len(rows) == 0 {
		return nil, utils.ErrNoData
	}
	return rows, nil
}

// demandInventory is a demand record paired with its same-day inventory level.
type demandInventory struct {
	demand         models.DemandRecord
	inventoryLevel float64
}

// demandFact is a demandInventory row enriched with its catalog entry.
type demandFact struct {
	demandInventory
	product models.Product
}

type productDate struct {
	productID string
	date      string
}

// joinInventory inner-joins demand records with inventory records sharing
// their (product, date). Demand rows without a match are excluded entirely;
// when duplicate inventory records exist for a key the last one in store
// order wins.
func joinInventory(demand []models.DemandRecord, inventory []models.InventoryRecord) []demandInventory {
	levels := make(map[productDate]float64, len(inventory))
	for _, r := range inventory {
		levels[productDate{r.ProductID, r.Date}] = r.InventoryLevel
	}

	var joined []demandInventory
	for _, d := range demand {
		level, ok := levels[productDate{d.ProductID, d.Date}]
		if !ok {
			continue
		}
		joined = append(joined, demandInventory{demand: d, inventoryLevel: level})
	}
	return joined
}

// joinProducts inner-joins rows with their catalog entry. Rows whose product
// identifier is absent from the catalog are excluded entirely.
func joinProducts(rows []demandInventory, products []models.Product) []demandFact {
	catalog := make(map[string]models.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	var joined []demandFact
	for _, r := range rows {
		p, ok := catalog[r.demand.ProductID]
		if !ok {
			continue
		}
		joined = append(joined, demandFact{demandInventory: r, product: p})
	}
	return joined
}

// projectRows left-joins rows with their (product, month) recommendation and
// derives the stockout flag and month bucket. Duplicate recommendations for a
// key resolve to the last record in store order, which is deterministic for a
// given query execution.
func projectRows(rows []demandFact, recs []models.ReorderRecommendation) []models.FactRow {
	byKey := make(map[productDate]models.ReorderRecommendation, len(recs))
	for _, r := range recs {
		byKey[productDate{r.ProductID, models.MonthOf(r.Date)}] = r
	}

	out := make([]models.FactRow, 0, len(rows))
	for _, r := range rows {
		month := models.MonthOf(r.demand.Date)
		row := models.FactRow{
			Date:              r.demand.Date,
			ProductID:         r.demand.ProductID,
			Category:          r.product.Category,
			Price:             r.product.Price,
			UOM:               r.product.UOM,
			LeadTimeDays:      r.product.LeadTimeDays,
			SafetyStock:       r.product.SafetyStock,
			ReorderMultiplier: r.product.ReorderMultiplier,
			Demand:            r.demand.Demand,
			InventoryLevel:    r.inventoryLevel,
			StockoutFlag:      stockoutFlag(r.inventoryLevel, r.demand.Demand),
			Month:             month,
		}
		if rec, ok := byKey[productDate{r.demand.ProductID, month}]; ok {
			point := rec.ReorderPoint
			qty := rec.RecommendedOrderQty
			row.ReorderPoint = &point
			row.RecommendedOrderQty = &qty
		}
		out = append(out, row)
	}
	return out
}

// stockoutFlag is 1 when on-hand inventory is exactly zero while demand was
// positive, 0 otherwise. Exact equality, not a below-threshold test.
func stockoutFlag(inventoryLevel, demand float64) int {
	if inventoryLevel == 0 && demand > 0 {
		return 1
	}
	return 0
}

func filterCategory(rows []models.FactRow, category string) []models.FactRow {
	filtered := rows[:0:0]
	for _, r := range rows {
		if r.Category == category {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// monthsIn collects the distinct month buckets present in rows, in first-seen
// order.
func monthsIn(rows []demandFact) []string {
	seen := map[string]bool{}
	var months []string
	for _, r := range rows {
		m := models.MonthOf(r.demand.Date)
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	return months
}
