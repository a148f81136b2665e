package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeRefs(t *testing.T) {
	merged := MergeRefs([]string{"a", "b"}, []string{"b", " c ", "", "a", "d"})
	assert.Equal(t, []string{"a", "b", "c", "d"}, merged)

	assert.Empty(t, MergeRefs(nil, nil))
	assert.Equal(t, []string{"x"}, MergeRefs(nil, []string{"x", "x"}))
}

func TestMissingRefs(t *testing.T) {
	assert.Equal(t, []string{"c"}, MissingRefs([]string{"a", "b"}, []string{"b", "c", "a"}))
	assert.Empty(t, MissingRefs([]string{"a"}, []string{"a"}))
	assert.Equal(t, []string{"a"}, MissingRefs(nil, []string{"a"}))
}

func TestOrderItem(t *testing.T) {
	assert.Equal(t, 1, OrderItem{}.EffectiveQuantity())
	assert.Equal(t, 3, OrderItem{Quantity: 3}.EffectiveQuantity())

	assert.False(t, OrderItem{PlayerName: "   "}.IsPersonalized())
	assert.True(t, OrderItem{PlayerNumber: "10"}.IsPersonalized())
}

func TestOrder_HasProof(t *testing.T) {
	assert.False(t, Order{}.HasProof())
	assert.False(t, Order{Proof: &ProofOfPayment{Reference: " "}}.HasProof())
	assert.True(t, Order{Proof: &ProofOfPayment{ImageRef: "proofs/1.png"}}.HasProof())

	assert.True(t, TrackingUpdate{Text: "  "}.IsEmpty())
	assert.False(t, TrackingUpdate{Videos: []string{"v"}}.IsEmpty())
}
