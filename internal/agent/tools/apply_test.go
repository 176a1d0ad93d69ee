package tools

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
)

func withFixedNow(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = prev })
}

func TestApplyLongTermCare(t *testing.T) {
	fixed := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	withFixedNow(t, fixed)

	r := NewRegistry(nil, nil)
	state := model.NewCareState()

	outcome, err := r.Dispatch(context.Background(), "apply_long_term_care",
		`{"parentName":"박순자","birthDate":"1944-05-20","address":"서울시 강남구 역삼동","phone":"010-1234-5678","applicantName":"김철수","applicantRelation":"자녀"}`,
		state)
	require.NoError(t, err)

	result := outcome.Result.(map[string]any)
	appNo, ok := result["applicationNumber"].(string)
	require.True(t, ok)
	assert.Regexp(t, `^LTC-\d{8}$`, appNo)
	assert.Equal(t, "신청완료", result["status"])
	assert.Equal(t, "2026-03-24", result["expectedSurveyDate"])

	state.Apply(outcome.StatePatch)
	require.NotNil(t, state.ParentInfo)
	assert.Equal(t, "박순자", state.ParentInfo.Name)
	assert.Equal(t, 81, state.ParentInfo.Age)
	assert.Equal(t, model.StepGradeApplication, state.CurrentStep)
	assert.Contains(t, state.CompletedSteps, model.StepHealthAssessment)

	require.Len(t, state.Appointments, 1)
	apt := state.Appointments[0]
	assert.Equal(t, "방문조사", apt.Type)
	assert.Equal(t, "2026-03-24", apt.Date)
	assert.Equal(t, "scheduled", apt.Status)
	assert.Contains(t, apt.Notes, appNo)
}

func TestApplyLongTermCareKeepsExistingAppointments(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC))

	r := NewRegistry(nil, nil)
	state := model.NewCareState()
	state.Appointments = []model.Appointment{{ID: "apt-old", Type: "상담예약"}}

	outcome, err := r.Dispatch(context.Background(), "apply_long_term_care",
		`{"parentName":"박순자","birthDate":"1944-05-20","address":"서울","phone":"010-1234-5678","applicantName":"김철수"}`,
		state)
	require.NoError(t, err)

	state.Apply(outcome.StatePatch)
	require.Len(t, state.Appointments, 2)
	assert.Equal(t, "apt-old", state.Appointments[0].ID)
}

func TestScheduleVisitSurveyTimes(t *testing.T) {
	cases := []struct {
		preferred string
		want      string
	}{
		{"오전", "10:00"},
		{"오후", "14:00"},
		{"상관없음", "14:00"},
		{"", "14:00"},
	}

	for _, tc := range cases {
		r := NewRegistry(nil, nil)
		state := model.NewCareState()
		outcome, err := r.Dispatch(context.Background(), "schedule_visit_survey",
			`{"preferredDate":"2026-04-01","preferredTime":"`+tc.preferred+`","address":"서울시 송파구","contactPhone":"010-0000-0000"}`,
			state)
		require.NoError(t, err)

		state.Apply(outcome.StatePatch)
		require.Len(t, state.Appointments, 1)
		assert.Equal(t, tc.want, state.Appointments[0].Time)
		assert.Equal(t, "2026-04-01", state.Appointments[0].Date)
		// scheduling alone does not advance the journey step
		assert.Equal(t, model.StepInitial, state.CurrentStep)
	}
}

func TestRegisterEmergencyCareResponseTimes(t *testing.T) {
	cases := []struct {
		urgency string
		want    string
	}{
		{"즉시", "2시간 내"},
		{"24시간내", "24시간 내"},
		{"일주일내", "3일 내"},
	}

	for _, tc := range cases {
		r := NewRegistry(nil, nil)
		state := model.NewCareState()
		outcome, err := r.Dispatch(context.Background(), "register_emergency_care",
			`{"serviceType":"돌봄SOS","urgencyLevel":"`+tc.urgency+`","address":"서울시 관악구","contactPhone":"010-0000-0000"}`,
			state)
		require.NoError(t, err)

		result := outcome.Result.(map[string]any)
		assert.Equal(t, tc.want, result["expectedResponse"])
		assert.Regexp(t, `^EC-\d{6}$`, result["registrationNumber"])

		state.Apply(outcome.StatePatch)
		assert.Equal(t, model.StepEmergencyCare, state.CurrentStep)
	}
}

func TestCalculateAge(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 82, calculateAge("1944-05-20", now))
	assert.Equal(t, 81, calculateAge("1944-07-01", now)) // birthday not yet reached
	assert.Equal(t, 82, calculateAge("1944-06-15", now)) // birthday today
	assert.Equal(t, 0, calculateAge("not-a-date", now))
}

func TestTimestampSuffix(t *testing.T) {
	fixed := time.UnixMilli(1757000000123)
	assert.Equal(t, "00000123", timestampSuffix(fixed, 8))
	assert.Equal(t, "000123", timestampSuffix(fixed, 6))
	assert.Len(t, timestampSuffix(fixed, 20), 13)
}
