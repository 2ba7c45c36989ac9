package store

import (
	"context"

	"github.com/invopt/inventory_api/internal/models"
)

// Collection names in the analytics database. The collections are owned by an
// external loading process; this service only reads them.
const (
	CollProducts        = "products"
	CollDailyDemand     = "daily_demand"
	CollInventoryLevels = "inventory_levels"
	CollRecommendations = "reorder_recommendations"
)

// Collections lists every collection this service reads, in health-report order.
var Collections = []string{CollProducts, CollDailyDemand, CollInventoryLevels, CollRecommendations}

// RecordStore is the read surface the query layer depends on. Date ranges are
// inclusive and compared lexicographically as ISO strings: callers must supply
// zero-padded YYYY-MM-DD dates for correct ordering. This mirrors how the
// collections themselves store dates and is a deliberate contract, not an
// oversight.
type RecordStore interface {
	// Ping verifies connectivity with the underlying database.
	Ping(ctx context.Context) error

	// CollectionCounts returns the document count of every collection in
	// Collections order.
	CollectionCounts(ctx context.Context) (map[string]int64, error)

	// Products returns catalog entries, restricted to an exact category
	// match when category is non-empty.
	Products(ctx context.Context, category string) ([]models.Product, error)

	// DistinctCategories returns the distinct category values of the catalog.
	DistinctCategories(ctx context.Context) ([]string, error)

	// CountProducts returns the size of the full catalog.
	CountProducts(ctx context.Context) (int64, error)

	// DemandInRange returns demand records with date in [start, end].
	DemandInRange(ctx context.Context, start, end string) ([]models.DemandRecord, error)

	// InventoryInRange returns inventory records with date in [start, end].
	InventoryInRange(ctx context.Context, start, end string) ([]models.InventoryRecord, error)

	// RecommendationsForMonths returns recommendations whose month bucket
	// (first seven characters of their date) is in months.
	RecommendationsForMonths(ctx context.Context, months []string) ([]models.ReorderRecommendation, error)
}
