package constant

import "strings"

// SortOrder enumerates the supported product orderings.
type SortOrder int

const (
	SortNameAsc SortOrder = iota
	SortNameDesc
	SortPriceAsc
	SortPriceDesc
	SortNewest
)

// ParseSortOrder maps the sortBy/sortOrder query parameters to a SortOrder.
// Anything it does not recognize falls back to name ascending.
func ParseSortOrder(sortBy, sortOrder string) SortOrder {
	desc := strings.EqualFold(sortOrder, "desc")

	switch strings.ToLower(sortBy) {
	case "name", "":
		if desc {
			return SortNameDesc
		}
		return SortNameAsc
	case "price":
		if desc {
			return SortPriceDesc
		}
		return SortPriceAsc
	case "newest", "created", "created_at":
		return SortNewest
	default:
		return SortNameAsc
	}
}
