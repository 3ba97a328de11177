// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteractionActionIsValid(t *testing.T) {
	assert.True(t, ActionViewed.IsValid())
	assert.True(t, ActionLiked.IsValid())
	assert.True(t, ActionPurchased.IsValid())
	assert.True(t, ActionAddedToCart.IsValid())

	assert.False(t, InteractionAction("browsed").IsValid())
	assert.False(t, InteractionAction("").IsValid())
	assert.False(t, InteractionAction("VIEWED").IsValid())
}
