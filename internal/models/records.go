package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents a catalog entry in the products collection. The document
// _id is the product identifier itself (a SKU string), which is how the demand
// and inventory collections reference it. The identifier is never serialized
// to API consumers.
type Product struct {
	ID                string  `bson:"_id" json:"-"`
	Category          string  `bson:"category" json:"category"`
	Price             float64 `bson:"price" json:"price"`
	UOM               string  `bson:"uom" json:"uom"`
	LeadTimeDays      int     `bson:"lead_time_days" json:"lead_time_days"`
	SafetyStock       float64 `bson:"safety_stock" json:"safety_stock"`
	ReorderMultiplier float64 `bson:"reorder_multiplier" json:"reorder_multiplier"`
}

// DemandRecord is one product/day demand observation from daily_demand.
type DemandRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProductID string             `bson:"product_id" json:"product_id"`
	Date      string             `bson:"date" json:"date"`
	Demand    float64            `bson:"demand" json:"demand"`
}

// InventoryRecord is the on-hand quantity for a product on a given day,
// from inventory_levels.
type InventoryRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProductID      string             `bson:"product_id" json:"product_id"`
	Date           string             `bson:"date" json:"date"`
	InventoryLevel float64            `bson:"inventory_level" json:"inventory_level"`
}

// ReorderRecommendation is the monthly reorder guidance for a product, from
// reorder_recommendations. The month it applies to is derived from the first
// seven characters of its date.
type ReorderRecommendation struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProductID           string             `bson:"product_id" json:"product_id"`
	Date                string             `bson:"date" json:"date"`
	ReorderPoint        float64            `bson:"reorder_point" json:"reorder_point"`
	RecommendedOrderQty float64            `bson:"recommended_order_qty" json:"recommended_order_qty"`
}

// FactRow is one denormalized (product, date) row combining demand, inventory,
// product attributes and the applicable monthly recommendation. The reorder
// fields are nil when no recommendation exists for the product's month.
type FactRow struct {
	Date                string   `json:"date"`
	ProductID           string   `json:"product_id"`
	Category            string   `json:"category"`
	Price               float64  `json:"price"`
	UOM                 string   `json:"uom"`
	LeadTimeDays        int      `json:"lead_time_days"`
	SafetyStock         float64  `json:"safety_stock"`
	ReorderMultiplier   float64  `json:"reorder_multiplier"`
	Demand              float64  `json:"demand"`
	InventoryLevel      float64  `json:"inventory_level"`
	StockoutFlag        int      `json:"stockout_flag"`
	Month               string   `json:"month"`
	ReorderPoint        *float64 `json:"reorder_point"`
	RecommendedOrderQty *float64 `json:"recommended_order_qty"`
}

// MonthOf returns the year-month bucket of an ISO date string, i.e. its first
// seven characters ("2024-03-15" -> "2024-03"). Shorter strings are returned
// unchanged.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
