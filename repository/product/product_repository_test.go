package product

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dimasprsty/storefront/constant"
	"github.com/dimasprsty/storefront/model"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestBuildSearchWhere(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.SearchRequest
		want     string
		wantArgs []any
	}{
		{
			name:     "no filters keeps only the active clause",
			req:      &model.SearchRequest{},
			want:     "p.is_active = true",
			wantArgs: []any{},
		},
		{
			name: "search term matches name and description case-insensitively",
			req:  &model.SearchRequest{SearchTerm: "  Laptop  "},
			want: "p.is_active = true AND (LOWER(p.name) LIKE ? OR LOWER(p.description) LIKE ?)",
			wantArgs: []any{
				"%laptop%", "%laptop%",
			},
		},
		{
			name:     "category filter",
			req:      &model.SearchRequest{CategoryID: 3},
			want:     "p.is_active = true AND p.category_id = ?",
			wantArgs: []any{uint64(3)},
		},
		{
			name: "price bounds apply to the effective price",
			req:  &model.SearchRequest{MinPrice: dec("10"), MaxPrice: dec("99.99")},
			want: "p.is_active = true AND " + effectivePriceExpr + " >= ? AND " + effectivePriceExpr + " <= ?",
			wantArgs: []any{
				decimal.RequireFromString("10"), decimal.RequireFromString("99.99"),
			},
		},
		{
			name: "all filters combine conjunctively",
			req: &model.SearchRequest{
				SearchTerm: "mouse",
				CategoryID: 2,
				MinPrice:   dec("5"),
			},
			want: "p.is_active = true AND (LOWER(p.name) LIKE ? OR LOWER(p.description) LIKE ?) AND p.category_id = ? AND " + effectivePriceExpr + " >= ?",
			wantArgs: []any{
				"%mouse%", "%mouse%", uint64(2), decimal.RequireFromString("5"),
			},
		},
		{
			name:     "blank search term adds no clause",
			req:      &model.SearchRequest{SearchTerm: "   "},
			want:     "p.is_active = true",
			wantArgs: []any{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildSearchWhere(tt.req)
			if where != tt.want {
				t.Fatalf("where = %q, want %q", where, tt.want)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("args = %d, want %d", len(args), len(tt.wantArgs))
			}
			for i := range args {
				got, want := args[i], tt.wantArgs[i]
				if gd, ok := got.(decimal.Decimal); ok {
					if !gd.Equal(want.(decimal.Decimal)) {
						t.Fatalf("args[%d] = %v, want %v", i, got, want)
					}
					continue
				}
				if got != want {
					t.Fatalf("args[%d] = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestBuildOrderClause(t *testing.T) {
	tests := []struct {
		name string
		sort constant.SortOrder
		want string
	}{
		{name: "name asc", sort: constant.SortNameAsc, want: "ORDER BY p.name ASC, p.id ASC"},
		{name: "name desc", sort: constant.SortNameDesc, want: "ORDER BY p.name DESC, p.id ASC"},
		{name: "price asc uses effective price", sort: constant.SortPriceAsc, want: "ORDER BY " + effectivePriceExpr + " ASC, p.id ASC"},
		{name: "price desc uses effective price", sort: constant.SortPriceDesc, want: "ORDER BY " + effectivePriceExpr + " DESC, p.id ASC"},
		{name: "newest", sort: constant.SortNewest, want: "ORDER BY p.created_at DESC, p.id ASC"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := buildOrderClause(tt.sort); got != tt.want {
				t.Fatalf("buildOrderClause(%v) = %q, want %q", tt.sort, got, tt.want)
			}
			// Every ordering must tie-break on id so paging stays stable.
			if got := buildOrderClause(tt.sort); !strings.HasSuffix(got, "p.id ASC") {
				t.Fatalf("buildOrderClause(%v) = %q lacks the id tie-break", tt.sort, got)
			}
		})
	}
}
