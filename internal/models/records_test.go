package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestProductJSONStripsIdentifier(t *testing.T) {
	p := Product{
		ID:                "SKU-1",
		Category:          "Beverages",
		Price:             2.5,
		UOM:               "case",
		LeadTimeDays:      7,
		SafetyStock:       20,
		ReorderMultiplier: 1.5,
	}

	body, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := fields["_id"]; ok {
		t.Error("payload contains _id")
	}
	if strings.Contains(string(body), "SKU-1") {
		t.Errorf("payload leaks the product identifier: %s", body)
	}
	for _, key := range []string{"category", "price", "uom", "lead_time_days", "safety_stock", "reorder_multiplier"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("payload missing %q: %s", key, body)
		}
	}
}

func TestRecordJSONStripsObjectID(t *testing.T) {
	tests := []struct {
		name string
		doc  any
	}{
		{name: "demand", doc: DemandRecord{ProductID: "SKU-1", Date: "2024-01-01", Demand: 10}},
		{name: "inventory", doc: InventoryRecord{ProductID: "SKU-1", Date: "2024-01-01", InventoryLevel: 5}},
		{name: "recommendation", doc: ReorderRecommendation{ProductID: "SKU-1", Date: "2024-01-01", ReorderPoint: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.doc)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var fields map[string]any
			if err := json.Unmarshal(body, &fields); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if _, ok := fields["_id"]; ok {
				t.Errorf("payload contains _id: %s", body)
			}
		})
	}
}

func TestMonthOf(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{date: "2024-03-15", want: "2024-03"},
		{date: "2024-12-01", want: "2024-12"},
		{date: "2024-03", want: "2024-03"},
		{date: "2024", want: "2024"},
		{date: "", want: ""},
	}

	for _, tt := range tests {
		if got := MonthOf(tt.date); got != tt.want {
			t.Errorf("MonthOf(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
