package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
	"github.com/yonghwan1106/ai-carebridge/internal/gateway/publicdata"
)

func TestSearchCareFacilitiesFallbackCatalog(t *testing.T) {
	r := NewRegistry(nil, nil)
	state := model.NewCareState()

	outcome, err := r.Dispatch(context.Background(), "search_care_facilities",
		`{"location":"서울시 강남구"}`, state)
	require.NoError(t, err)

	result := outcome.Result.(map[string]any)
	facilities := result["facilities"].([]model.CareFacility)
	require.Len(t, facilities, 5)
	assert.Equal(t, "샘플 데이터", result["dataSource"])

	// sorted by rating, best first
	assert.Equal(t, "청담효요양원", facilities[0].Name)
	for i := 1; i < len(facilities); i++ {
		assert.GreaterOrEqual(t, facilities[i-1].Rating, facilities[i].Rating)
	}

	state.Apply(outcome.StatePatch)
	assert.Len(t, state.NearbyFacilities, 5)
	assert.Equal(t, model.StepFacilitySearch, state.CurrentStep)
}

func TestSearchCareFacilitiesTypeAndBudget(t *testing.T) {
	r := NewRegistry(nil, nil)
	state := model.NewCareState()

	outcome, err := r.Dispatch(context.Background(), "search_care_facilities",
		`{"location":"서울시 강남구","facilityType":"요양원","maxBudget":250}`, state)
	require.NoError(t, err)

	facilities := outcome.Result.(map[string]any)["facilities"].([]model.CareFacility)
	require.Len(t, facilities, 4)
	for _, f := range facilities {
		assert.Equal(t, "요양원", f.Type)
		assert.LessOrEqual(t, f.MonthlyFee.Min, 2500000)
	}
	assert.Equal(t, "송파사랑요양원", facilities[0].Name)
}

func TestSearchCareFacilitiesSpecialtyFilter(t *testing.T) {
	r := NewRegistry(nil, nil)

	outcome, err := r.Dispatch(context.Background(), "search_care_facilities",
		`{"location":"서울시 강남구","specialties":["치매전문"]}`, model.NewCareState())
	require.NoError(t, err)

	facilities := outcome.Result.(map[string]any)["facilities"].([]model.CareFacility)
	require.NotEmpty(t, facilities)
	for _, f := range facilities {
		found := false
		for _, s := range f.Specialties {
			if s == "치매전문" {
				found = true
			}
		}
		assert.True(t, found, "facility %s should offer 치매전문", f.Name)
	}
}

func TestSearchCareFacilitiesAllTypes(t *testing.T) {
	r := NewRegistry(nil, nil)

	outcome, err := r.Dispatch(context.Background(), "search_care_facilities",
		`{"location":"서울시 강남구","facilityType":"전체"}`, model.NewCareState())
	require.NoError(t, err)

	facilities := outcome.Result.(map[string]any)["facilities"].([]model.CareFacility)
	assert.Len(t, facilities, 5)
}

func TestSearchCareFacilitiesDisplayData(t *testing.T) {
	r := NewRegistry(nil, nil)

	outcome, err := r.Dispatch(context.Background(), "search_care_facilities",
		`{"location":"서울시 강남구","facilityType":"주간보호센터"}`, model.NewCareState())
	require.NoError(t, err)

	dd := outcome.DisplayData
	require.NotNil(t, dd)
	assert.Equal(t, "facilities", dd.Type)
	require.NotEmpty(t, dd.Items)
	assert.True(t, dd.Items[0].Highlight)
	assert.Equal(t, "🌞", dd.Items[1].Icon)
	assert.Contains(t, dd.Items[1].Value, "⭐")
}

func TestGetFacilityDetailSelectsFacility(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"header":{"resultCode":"00"},"body":{"items":{"item":{"longTermAdminSym":"11234567890","adminNm":"강남주야간보호센터","ctprvnAddr":"서울특별시 강남구","totPer":40,"curPer":35,"emplyCnt":12,"prgmInfo":"물리치료, 인지활동"}}}}}`))
	}))
	defer srv.Close()

	client := publicdata.NewClient(publicdata.Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 5})
	r := NewRegistry(client, nil)
	state := model.NewCareState()

	outcome, err := r.Dispatch(context.Background(), "get_facility_detail",
		`{"facilityId":"11234567890"}`, state)
	require.NoError(t, err)

	result := outcome.Result.(map[string]any)
	assert.Equal(t, "강남주야간보호센터", result["name"])

	state.Apply(outcome.StatePatch)
	require.NotNil(t, state.SelectedFacility)
	assert.Equal(t, "11234567890", state.SelectedFacility.ID)
	require.NotNil(t, state.SelectedFacility.DetailInfo)
	assert.Equal(t, 40, state.SelectedFacility.DetailInfo.TotalCapacity)
	assert.Equal(t, []string{"물리치료", "인지활동"}, state.SelectedFacility.DetailInfo.Programs)
}

func TestGetFacilityDetailWithoutGateway(t *testing.T) {
	r := NewRegistry(nil, nil)

	outcome, err := r.Dispatch(context.Background(), "get_facility_detail",
		`{"facilityId":"11100000001"}`, model.NewCareState())
	require.NoError(t, err)

	result := outcome.Result.(map[string]any)
	assert.Contains(t, result, "error")
	require.NotNil(t, outcome.DisplayData)
	assert.Equal(t, "❌", outcome.DisplayData.Items[0].Icon)
	assert.Nil(t, outcome.StatePatch)
}
