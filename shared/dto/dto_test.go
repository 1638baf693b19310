package dto_test

import (
	"testing"
	"time"

	"inn/shared/constant"
	"inn/shared/dto"
	"inn/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateTimeFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateTimeFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_ApplyDefaults(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected dto.QueryParams
	}{
		{
			name:   "zero values get defaults",
			params: dto.QueryParams{},
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name: "existing values preserved",
			params: dto.QueryParams{
				Page:    3,
				Limit:   25,
				SortBy:  "id",
				SortDir: dto.SortDirAsc,
			},
			expected: dto.QueryParams{
				Page:    3,
				Limit:   25,
				SortBy:  "id",
				SortDir: dto.SortDirAsc,
			},
		},
		{
			name: "invalid sort direction replaced",
			params: dto.QueryParams{
				Page:    1,
				Limit:   10,
				SortBy:  "id",
				SortDir: "sideways",
			},
			expected: dto.QueryParams{
				Page:    1,
				Limit:   10,
				SortBy:  "id",
				SortDir: constant.DefaultValueSortDir,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.ApplyDefaults()

			if tt.params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, tt.params)
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
			name: "equality with table",
			filter: dto.Filter{
				Field:    "is_active",
				Value:    true,
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			expectedWhere: "bookings.is_active = :is_active",
			expectedArgs:  map[string]any{"is_active": true},
		},
		{
			name: "less or equal",
			filter: dto.Filter{
				Field:    "start_date",
				Value:    "2026-09-10",
				Operator: dto.FilterOperatorLessEq,
			},
			expectedWhere: "start_date <= :start_date",
			expectedArgs:  map[string]any{"start_date": "2026-09-10"},
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "id",
				Value:    1,
				Operator: "between",
			},
			expectedWhere: "",
			expectedArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, val := range tt.expectedArgs {
				if args[key] != val {
					t.Errorf("expected arg %s to be %v, got %v", key, val, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.Filter{Field: "room_id", Value: int64(2), Operator: dto.FilterOperatorEq, Table: "bookings"},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(bookings.is_active = :is_active AND bookings.room_id = :room_id)"
	if where != expected {
		t.Errorf("expected where %q, got %q", expected, where)
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
