package shared_test

import (
	"reflect"
	"strings"
	"testing"

	"innkeep/shared"
	"innkeep/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       any
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "basic filter by id",
			id:      int64(123),
			fieldID: "room_id",
			table:   "rooms",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "room_id",
						Value:    int64(123),
						Operator: dto.FilterOperatorEq,
						Table:    "rooms",
					},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      "AB12345",
			fieldID: "id",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    "AB12345",
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	result := shared.BuildCacheKey("room:get", "42")
	if result != "room:get:42" {
		t.Errorf("expected key to be 'room:get:42', got %s", result)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{
		Page:    2,
		Limit:   10,
		SortBy:  "room_no",
		SortDir: "ASC",
	}

	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "category",
				Value:    "Suite",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}

	key := shared.BuildCacheKeyWithQuery("room:gets", params, filter)

	if !strings.HasPrefix(key, "room:gets:2:10:room_no:ASC:") {
		t.Errorf("expected key to start with 'room:gets:2:10:room_no:ASC:', got %s", key)
	}

	if !strings.Contains(key, "rooms.category = :category") {
		t.Errorf("expected key to contain the where clause, got %s", key)
	}

	other := shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Page: 1, Limit: 10}, filter)
	if key == other {
		t.Error("expected distinct pages to produce distinct cache keys")
	}
}
