// internal/services/sorting_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSortKnownModes(t *testing.T) {
	assert.Equal(t, "price ASC", ResolveSort(SortPriceLow, DefaultListOrder))
	assert.Equal(t, "price DESC", ResolveSort(SortPriceHigh, DefaultListOrder))
	assert.Equal(t, "rating DESC", ResolveSort(SortRating, DefaultListOrder))
	assert.Equal(t, "view_count DESC", ResolveSort(SortPopular, DefaultListOrder))
}

func TestResolveSortFallsBack(t *testing.T) {
	// Unrecognized tokens never error, they use the caller's default.
	assert.Equal(t, "name ASC", ResolveSort("", DefaultListOrder))
	assert.Equal(t, "name ASC", ResolveSort("bogus", DefaultListOrder))
	assert.Equal(t, "rating DESC", ResolveSort("", DefaultSearchOrder))
	assert.Equal(t, "rating DESC", ResolveSort("bogus", DefaultSearchOrder))
}
