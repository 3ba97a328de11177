// internal/services/sorting.go
package services

// Sort-mode tokens accepted by listing and search endpoints.
const (
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortRating    = "rating"
	SortPopular   = "popular"
)

// Default orderings. Listing browses alphabetically; search surfaces the
// best-rated matches first.
const (
	DefaultListOrder   = "name ASC"
	DefaultSearchOrder = "rating DESC"
)

// ResolveSort maps a sort-mode token to a SQL ordering. Unrecognized tokens
// fall back silently, they are never an error.
func ResolveSort(mode, fallback string) string {
	switch mode {
	case SortPriceLow:
		return "price ASC"
	case SortPriceHigh:
		return "price DESC"
	case SortRating:
		return "rating DESC"
	case SortPopular:
		return "view_count DESC"
	default:
		return fallback
	}
}
