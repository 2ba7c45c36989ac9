package store

import (
	"context"
	"sort"

	"github.com/invopt/inventory_api/internal/models"
)

// MemStore is an in-memory RecordStore used in tests. Query methods apply the
// same lexicographic date semantics as the Mongo implementation and return
// records in insertion order. A non-nil Err is returned from every method,
// simulating an unreachable database.
type MemStore struct {
	ProductDocs        []models.Product
	DemandDocs         []models.DemandRecord
	InventoryDocs      []models.InventoryRecord
	RecommendationDocs []models.ReorderRecommendation

	Err error
}

// Ping reports the configured error, if any.
func (s *MemStore) Ping(ctx context.Context) error {
	return s.Err
}

// CollectionCounts returns the document count per collection.
func (s *MemStore) CollectionCounts(ctx context.Context) (map[string]int64, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return map[string]int64{
		CollProducts:        int64(len(s.ProductDocs)),
		CollDailyDemand:     int64(len(s.DemandDocs)),
		CollInventoryLevels: int64(len(s.InventoryDocs)),
		CollRecommendations: int64(len(s.RecommendationDocs)),
	}, nil
}

// Products returns catalog entries, filtered by exact category when non-empty.
func (s *MemStore) Products(ctx context.Context, category string) ([]models.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var products []models.Product
	for _, p := range s.ProductDocs {
		if category == "" || p.Category == category {
			products = append(products, p)
		}
	}
	return products, nil
}

// DistinctCategories returns the sorted distinct category values.
func (s *MemStore) DistinctCategories(ctx context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	seen := map[string]bool{}
	var categories []string
	for _, p := range s.ProductDocs {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// CountProducts returns the size of the catalog.
func (s *MemStore) CountProducts(ctx context.Context) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.ProductDocs)), nil
}

// DemandInRange returns demand records with date in [start, end].
func (s *MemStore) DemandInRange(ctx context.Context, start, end string) ([]models.DemandRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var records []models.DemandRecord
	for _, d := range s.DemandDocs {
		if d.Date >= start && d.Date <= end {
			records = append(records, d)
		}
	}
	return records, nil
}

// InventoryInRange returns inventory records with date in [start, end].
func (s *MemStore) InventoryInRange(ctx context.Context, start, end string) ([]models.InventoryRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var records []models.InventoryRecord
	for _, r := range s.InventoryDocs {
		if r.Date >= start && r.Date <= end {
			records = append(records, r)
		}
	}
	return records, nil
}

// RecommendationsForMonths returns recommendations whose month bucket is in
// months.
func (s *MemStore) RecommendationsForMonths(ctx context.Context, months []string) ([]models.ReorderRecommendation, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	wanted := map[string]bool{}
	for _, m := range months {
		wanted[m] = true
	}
	var records []models.ReorderRecommendation
	for _, r := range s.RecommendationDocs {
		if wanted[models.MonthOf(r.Date)] {
			records = append(records, r)
		}
	}
	return records, nil
}
