package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/invopt/inventory_api/internal/models"
)

// MongoStore implements RecordStore against a MongoDB database.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore creates a MongoStore reading from the named database.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{db: client.Database(database)}
}

// Ping verifies connectivity with the MongoDB deployment.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// CollectionCounts returns the document count of every collection this
// service reads.
func (s *MongoStore) CollectionCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(Collections))
	for _, name := range Collections {
		n, err := s.db.Collection(name).CountDocuments(ctx, bson.D{})
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}

// Products returns catalog entries, filtered by exact category when non-empty.
func (s *MongoStore) Products(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.D{}
	if category != "" {
		filter = bson.D{{Key: "category", Value: category}}
	}

	cur, err := s.db.Collection(CollProducts).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// DistinctCategories returns the distinct category values of the catalog.
func (s *MongoStore) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := s.db.Collection(CollProducts).Distinct(ctx, "category", bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if c, ok := v.(string); ok {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

// CountProducts returns the size of the full catalog.
func (s *MongoStore) CountProducts(ctx context.Context) (int64, error) {
	n, err := s.db.Collection(CollProducts).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// DemandInRange returns demand records with date in [start, end]. The range
// is evaluated by MongoDB as a lexicographic string comparison.
func (s *MongoStore) DemandInRange(ctx context.Context, start, end string) ([]models.DemandRecord, error) {
	cur, err := s.db.Collection(CollDailyDemand).Find(ctx, dateRangeFilter(start, end))
	if err != nil {
		return nil, fmt.Errorf("find daily_demand: %w", err)
	}
	defer cur.Close(ctx)

	var records []models.DemandRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode daily_demand: %w", err)
	}
	return records, nil
}

// InventoryInRange returns inventory records with date in [start, end].
func (s *MongoStore) InventoryInRange(ctx context.Context, start, end string) ([]models.InventoryRecord, error) {
	cur, err := s.db.Collection(CollInventoryLevels).Find(ctx, dateRangeFilter(start, end))
	if err != nil {
		return nil, fmt.Errorf("find inventory_levels: %w", err)
	}
	defer cur.Close(ctx)

	var records []models.InventoryRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode inventory_levels: %w", err)
	}
	return records, nil
}

// RecommendationsForMonths returns recommendations whose derived month bucket
// falls in months. The bucket is computed server-side from the record's date,
// matching how the records are keyed.
func (s *MongoStore) RecommendationsForMonths(ctx context.Context, months []string) ([]models.ReorderRecommendation, error) {
	if len(months) == 0 {
		return nil, nil
	}

	filter := bson.D{{Key: "$expr", Value: bson.D{{Key: "$in", Value: bson.A{
		bson.D{{Key: "$substrBytes", Value: bson.A{"$date", 0, 7}}},
		months,
	}}}}}

	cur, err := s.db.Collection(CollRecommendations).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find reorder_recommendations: %w", err)
	}
	defer cur.Close(ctx)

	var records []models.ReorderRecommendation
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode reorder_recommendations: %w", err)
	}
	return records, nil
}

func dateRangeFilter(start, end string) bson.D {
	return bson.D{{Key: "date", Value: bson.D{
		{Key: "$gte", Value: start},
		{Key: "$lte", Value: end},
	}}}
}
