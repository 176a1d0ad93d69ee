package mockdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
)

func TestCatalogIntegrity(t *testing.T) {
	assert.Len(t, CareFacilities, 20)
	assert.Len(t, WelfareBenefits, 25)

	seen := map[string]bool{}
	for _, f := range CareFacilities {
		require.NotEmpty(t, f.ID)
		assert.False(t, seen[f.ID], "duplicate facility id %s", f.ID)
		seen[f.ID] = true
		assert.NotEmpty(t, f.Name)
		assert.Greater(t, f.MonthlyFee.Max, 0)
		assert.LessOrEqual(t, f.MonthlyFee.Min, f.MonthlyFee.Max)
	}

	for _, b := range WelfareBenefits {
		require.NotEmpty(t, b.ID)
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Agency)
	}
}

func TestFacilitiesByType(t *testing.T) {
	grouped := FacilitiesByType()

	assert.Len(t, grouped["주간보호센터"], 5)
	assert.Len(t, grouped["요양원"], 5)
	assert.Len(t, grouped["재가서비스"], 5)
	assert.Len(t, grouped["양로원"], 2)
	assert.Len(t, grouped["요양병원"], 3)
}

func TestSortByDistanceDoesNotMutate(t *testing.T) {
	in := []model.CareFacility{
		{ID: "a", Distance: 3.2},
		{ID: "b", Distance: 0.5},
		{ID: "c", Distance: 1.8},
	}

	out := SortByDistance(in)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, "a", out[2].ID)
	// input order untouched
	assert.Equal(t, "a", in[0].ID)
}

func TestSortByRating(t *testing.T) {
	out := SortByRating(CareFacilities)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Rating, out[i].Rating)
	}
}

func TestFilterByBudget(t *testing.T) {
	out := FilterByBudget(CareFacilities, 500000)
	require.NotEmpty(t, out)
	for _, f := range out {
		assert.LessOrEqual(t, f.MonthlyFee.Min, 500000)
	}
}

func TestFilterBySpecialty(t *testing.T) {
	out := FilterBySpecialty(CareFacilities, "치매")
	require.NotEmpty(t, out)
	for _, f := range out {
		found := false
		for _, s := range f.Specialties {
			if strings.Contains(s, "치매") {
				found = true
			}
		}
		assert.True(t, found, "facility %s", f.Name)
	}
}

func TestBenefitsByCategory(t *testing.T) {
	grouped := BenefitsByCategory()

	assert.NotEmpty(t, grouped["소득지원"])
	assert.NotEmpty(t, grouped["돌봄서비스"])
	assert.NotEmpty(t, grouped["의료지원"])
}

func TestEstimateMonthlyBenefits(t *testing.T) {
	total := EstimateMonthlyBenefits([]model.WelfareBenefit{
		{MonthlyAmount: 334810},
		{MonthlyAmount: 0},
		{MonthlyAmount: 600000},
	})
	assert.Equal(t, 934810, total)
}
