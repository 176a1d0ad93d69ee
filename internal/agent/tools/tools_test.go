package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
	"github.com/yonghwan1106/ai-carebridge/internal/core/errx"
)

func TestRegistrySpecsOrder(t *testing.T) {
	r := NewRegistry(nil, nil)
	specs := r.Specs()

	var names []string
	for _, s := range specs {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{
		"diagnose_care_level",
		"apply_long_term_care",
		"search_welfare_benefits",
		"search_care_facilities",
		"get_facility_detail",
		"schedule_visit_survey",
		"register_emergency_care",
		"share_family_calendar",
		"get_government_docs",
		"summarize_progress",
	}, names)
}

func TestDispatchUnknownTool(t *testing.T) {
	r := NewRegistry(nil, nil)
	_, err := r.Dispatch(context.Background(), "launch_rocket", "{}", model.NewCareState())
	require.ErrorIs(t, err, errx.ErrUnknownTool)
	assert.Contains(t, err.Error(), "unknown tool: launch_rocket")
}

func TestDispatchEmptyArguments(t *testing.T) {
	r := NewRegistry(nil, nil)
	outcome, err := r.Dispatch(context.Background(), "summarize_progress", "", model.NewCareState())
	require.NoError(t, err)
	require.NotNil(t, outcome)
}

func TestShareFamilyCalendar(t *testing.T) {
	r := NewRegistry(nil, nil)
	state := model.NewCareState()

	outcome, err := r.Dispatch(context.Background(), "share_family_calendar",
		`{"familyMembers":["김철수","김영희"],"shareMethod":"문자메시지"}`, state)
	require.NoError(t, err)

	result := outcome.Result.(map[string]any)
	assert.Equal(t, true, result["shared"])
	assert.Equal(t, "문자메시지", result["method"])

	state.Apply(outcome.StatePatch)
	assert.Equal(t, model.StepFamilyCalendar, state.CurrentStep)
}

func TestShareFamilyCalendarDefaultMethod(t *testing.T) {
	r := NewRegistry(nil, nil)

	outcome, err := r.Dispatch(context.Background(), "share_family_calendar",
		`{"familyMembers":["김철수"]}`, model.NewCareState())
	require.NoError(t, err)

	assert.Equal(t, "카카오톡", outcome.Result.(map[string]any)["method"])
}

func TestGetGovernmentDocs(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC))

	r := NewRegistry(nil, nil)
	outcome, err := r.Dispatch(context.Background(), "get_government_docs",
		`{"docType":"가족관계증명서","purpose":"장기요양 신청"}`, model.NewCareState())
	require.NoError(t, err)

	result := outcome.Result.(map[string]any)
	assert.Equal(t, "가족관계증명서", result["docType"])
	assert.Equal(t, "발급완료", result["status"])
	assert.Equal(t, "2026-06-08", result["validUntil"])
	assert.Nil(t, outcome.StatePatch)
}

func TestSummarizeProgress(t *testing.T) {
	r := NewRegistry(nil, nil)
	state := model.NewCareState()
	state.Diagnosis = &model.CareLevelDiagnosis{EstimatedGrade: "3등급"}
	state.DiscoveredBenefits = []model.WelfareBenefit{{ID: "bf-001"}, {ID: "bf-002"}}
	state.NearbyFacilities = []model.CareFacility{{ID: "cf-001"}}
	state.CurrentStep = model.StepFacilitySearch

	outcome, err := r.Dispatch(context.Background(), "summarize_progress",
		`{"includeNextSteps":true}`, state)
	require.NoError(t, err)

	result := outcome.Result.(map[string]any)
	completed := result["completedSteps"].([]string)
	assert.Equal(t, []string{"돌봄 필요도 진단", "복지혜택 2건 발굴", "요양시설 1곳 검색"}, completed)
	assert.Equal(t, 2, result["totalBenefits"])

	last := outcome.DisplayData.Items[len(outcome.DisplayData.Items)-1]
	assert.Equal(t, "다음 단계", last.Label)
	assert.Equal(t, "가족 캘린더 설정", last.Value)
}

func TestNextStepLabel(t *testing.T) {
	assert.Equal(t, "건강 상태 파악", nextStepLabel(""))
	assert.Equal(t, "건강 상태 파악", nextStepLabel(model.StepInitial))
	assert.Equal(t, "상담 완료", nextStepLabel(model.StepFamilyCalendar))
	assert.Equal(t, "추가 상담", nextStepLabel("something_else"))
}
