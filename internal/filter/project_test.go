package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopkart/internal/models"
)

func TestProjectDefaultStateReturnsWholeCatalogSortedByName(t *testing.T) {
	snapshot := sampleCatalog()

	result := Project(snapshot, NewState(), "name", "")

	assert.Equal(t, []string{"2", "3", "1", "4"}, ids(result))
	assert.ElementsMatch(t, ids(snapshot), ids(result))
}

func TestProjectIsDeterministic(t *testing.T) {
	snapshot := sampleCatalog()
	state := NewState().SetCategory("Groceries", true)

	first := Project(snapshot, state, "popularity", "")
	second := Project(snapshot, state, "popularity", "")

	assert.Equal(t, ids(first), ids(second))
}

func TestProjectOrganicGroceriesScenario(t *testing.T) {
	snapshot := []*models.Product{
		{ID: "1", Category: "Groceries", Name: "Organic Rice", Price: 200, Rating: 4.5, DiscountPercentage: pct(10), Brand: "Tata", ReviewsCount: 50},
		{ID: "2", Category: "Groceries", Name: "Basmati Rice", Price: 150, Rating: 3.0, Brand: "India Gate", ReviewsCount: 200},
	}

	state := NewState().SetCategory("Groceries", true).SetOrganic(OrganicOnly)
	result := Project(snapshot, state, "name", "")

	require.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)

	// el mismo snapshot sin filtros ordenado por popularidad
	byPopularity := Project(snapshot, NewState(), "popularity", "")
	assert.Equal(t, []string{"2", "1"}, ids(byPopularity))
}

func TestProjectEmptySnapshot(t *testing.T) {
	result := Project(nil, NewState(), "name", "")
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestProjectNoMatchesReturnsEmptySequence(t *testing.T) {
	state := NewState().Toggle(FieldBrands, "NoSuchBrand")
	result := Project(sampleCatalog(), state, "name", "")

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestProjectSkipsNilEntries(t *testing.T) {
	snapshot := append(sampleCatalog(), nil)
	result := Project(snapshot, NewState(), "name", "")
	assert.Len(t, result, 4)
}

func TestProjectDoesNotMutateSnapshot(t *testing.T) {
	snapshot := sampleCatalog()
	original := ids(snapshot)

	Project(snapshot, NewState(), "price-high", "")

	assert.Equal(t, original, ids(snapshot))
}
