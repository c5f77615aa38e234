package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopkart/internal/catalog"
)

func TestTagsEmptyForDefaultState(t *testing.T) {
	assert.Empty(t, NewState().Tags())
}

func TestTagsOrderAndLabels(t *testing.T) {
	s := NewState().
		SetCategory("Groceries", true).
		Toggle(FieldBrands, "Tata").
		Toggle(FieldProductTypes, "Staples").
		SetMinRating(4).
		SetOrganic(OrganicOnly).
		SetDiscountedOnly(true).
		SetRange(1000, catalog.MaxPrice)

	tags := s.Tags()
	require.Len(t, tags, 7)

	assert.Equal(t, Tag{Kind: TagCategory, Value: "Groceries", Label: "Groceries"}, tags[0])
	assert.Equal(t, Tag{Kind: TagBrand, Value: "Tata", Label: "Tata"}, tags[1])
	assert.Equal(t, Tag{Kind: TagProductType, Value: "Staples", Label: "Staples"}, tags[2])
	assert.Equal(t, Tag{Kind: TagRating, Value: "4", Label: "4★ & above"}, tags[3])
	assert.Equal(t, Tag{Kind: TagOrganic, Value: "true", Label: "Organic"}, tags[4])
	assert.Equal(t, Tag{Kind: TagDiscount, Value: "true", Label: "On Sale"}, tags[5])
	assert.Equal(t, TagPrice, tags[6].Kind)
	assert.Equal(t, "₹1,000 - ₹2,00,000", tags[6].Label)
}

func TestNonOrganicOnlyHasNoTag(t *testing.T) {
	s := NewState().SetOrganic(NonOrganicOnly)
	assert.Empty(t, s.Tags())
}

func TestInStockHasNoTag(t *testing.T) {
	assert.Empty(t, NewState().SetInStock(true).Tags())
}

func TestPriceTagOnlyWhenRangeDiffersFromDefault(t *testing.T) {
	s := NewState().SetRange(0, catalog.MaxPrice)
	assert.Empty(t, s.Tags())

	s = NewState().SetRange(0, 5000)
	tags := s.Tags()
	require.Len(t, tags, 1)
	assert.Equal(t, TagPrice, tags[0].Kind)
}

// quitar el tag de un único filtro activo debe devolver exactamente el
// estado previo, sin tocar los demás campos
func TestRemoveTagRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		apply func(State) State
	}{
		{"category", func(s State) State { return s.SetCategory("Fashion", true) }},
		{"brand", func(s State) State { return s.Toggle(FieldBrands, "Nike") }},
		{"feature", func(s State) State { return s.Toggle(FieldFeatures, "Denim") }},
		{"productType", func(s State) State { return s.Toggle(FieldProductTypes, "Dairy") }},
		{"rating", func(s State) State { return s.SetMinRating(3) }},
		{"organic", func(s State) State { return s.SetOrganic(OrganicOnly) }},
		{"discount", func(s State) State { return s.SetDiscountedOnly(true) }},
		{"price", func(s State) State { return s.SetRange(500, 10000) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := NewState()
			applied := tt.apply(before)

			tags := applied.Tags()
			require.Len(t, tags, 1)

			restored := applied.RemoveTag(tags[0])
			assert.Equal(t, before, restored)
		})
	}
}

func TestRemoveTagLeavesOtherFieldsIntact(t *testing.T) {
	s := NewState().
		SetCategory("Groceries", true).
		SetCategory("Fashion", true).
		SetMinRating(4).
		SetDiscountedOnly(true)

	restored := s.RemoveTag(Tag{Kind: TagCategory, Value: "Fashion"})

	assert.Equal(t, []string{"Groceries"}, restored.Categories)
	assert.Equal(t, 4, restored.MinRating)
	assert.True(t, restored.DiscountedOnly)
}

func TestRemoveTagUnknownKindIsNoOp(t *testing.T) {
	s := NewState().SetMinRating(2)
	assert.Equal(t, s, s.RemoveTag(Tag{Kind: "bogus", Value: "x"}))
}
