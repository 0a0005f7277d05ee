package dto_test

import (
	"net/http"
	"net/url"
	"testing"

	"innkeep/shared/constant"
	"innkeep/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "room_no",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "room_no",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
		{
			name: "with invalid sort direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/test")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "category",
				Value:    "Suite",
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "category = :category",
			expectedArgs:  map[string]any{"category": "Suite"},
		},
		{
			name: "eq operator with table",
			filter: dto.Filter{
				Field:    "is_occupied",
				Value:    false,
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
			expectedWhere: "rooms.is_occupied = :is_occupied",
			expectedArgs:  map[string]any{"is_occupied": false},
		},
		{
			name: "between operator",
			filter: dto.Filter{
				Field:    "occupancy_date",
				Value:    dto.BetweenRange{From: "2026-01-01", To: "2026-01-03"},
				Operator: dto.FilterOperatorBetween,
			},
			expectedWhere: "occupancy_date BETWEEN :occupancy_date_from AND :occupancy_date_to",
			expectedArgs: map[string]any{
				"occupancy_date_from": "2026-01-01",
				"occupancy_date_to":   "2026-01-03",
			},
		},
		{
			name: "between operator with wrong value shape",
			filter: dto.Filter{
				Field:    "occupancy_date",
				Value:    "not-a-range",
				Operator: dto.FilterOperatorBetween,
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
		{
			name: "custom arg name",
			filter: dto.Filter{
				ArgName:  "start_date",
				Field:    "occupancy_date",
				Value:    "2026-01-01",
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedWhere: "occupancy_date >= :start_date",
			expectedArgs:  map[string]any{"start_date": "2026-01-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where clause to be %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, expected := range tt.expectedArgs {
				if args[key] != expected {
					t.Errorf("expected arg %s to be %v, got %v", key, expected, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "is_occupied",
				Value:    false,
				Operator: dto.FilterOperatorEq,
			},
			dto.Filter{
				Field:    "category",
				Value:    "Ballroom",
				Operator: dto.FilterOperatorEq,
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(is_occupied = :is_occupied AND category = :category)"
	if where != expected {
		t.Errorf("expected where clause to be %q, got %q", expected, where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}
