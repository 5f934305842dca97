package dto_test

import (
	"strings"
	"testing"
	"time"

	"riminspect/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArg    string
	}{
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "status",
				Value:    "processing",
				Operator: dto.FilterOperatorEq,
				Table:    "schedules",
			},
			wantClause: "schedules.status = :status",
			wantArg:    "status",
		},
		{
			name: "not equal",
			filter: dto.Filter{
				Field:    "id",
				Value:    "schedule-1",
				Operator: dto.FilterOperatorNotEq,
				Table:    "schedules",
			},
			wantClause: "schedules.id != :id",
			wantArg:    "id",
		},
		{
			name: "strict less with explicit arg name",
			filter: dto.Filter{
				ArgName:  "window_end",
				Field:    "scheduled_time",
				Value:    time.Date(0, 1, 1, 15, 0, 0, 0, time.UTC),
				Operator: dto.FilterOperatorLess,
				Table:    "schedules",
			},
			wantClause: "schedules.scheduled_time < :window_end",
			wantArg:    "window_end",
		},
		{
			name: "strict greater with explicit arg name",
			filter: dto.Filter{
				ArgName:  "window_start",
				Field:    "end_time",
				Value:    time.Date(0, 1, 1, 14, 0, 0, 0, time.UTC),
				Operator: dto.FilterOperatorGreater,
				Table:    "schedules",
			},
			wantClause: "schedules.end_time > :window_start",
			wantArg:    "window_start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if clause != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, clause)
			}

			if _, ok := args[tt.wantArg]; !ok {
				t.Errorf("expected arg %q to be present, got %v", tt.wantArg, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "location",
				Value:    "dock-a",
				Operator: dto.FilterOperatorEq,
				Table:    "schedules",
			},
			dto.Filter{
				Field:    "is_canceled",
				Value:    false,
				Operator: dto.FilterOperatorEq,
				Table:    "schedules",
			},
			dto.Filter{
				ArgName:  "window_end",
				Field:    "scheduled_time",
				Value:    time.Date(0, 1, 1, 15, 0, 0, 0, time.UTC),
				Operator: dto.FilterOperatorLess,
				Table:    "schedules",
			},
		},
	}

	clause, args := group.GetWhereClause()

	if !strings.Contains(clause, " AND ") {
		t.Errorf("expected clauses joined with AND, got %q", clause)
	}

	for _, arg := range []string{"location", "is_canceled", "window_end"} {
		if _, ok := args[arg]; !ok {
			t.Errorf("expected arg %q to be present, got %v", arg, args)
		}
	}
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	clause, args := group.GetWhereClause()

	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
