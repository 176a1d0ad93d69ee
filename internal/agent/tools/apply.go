package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
)

func applyLongTermCareInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "apply_long_term_care",
		Desc: "장기요양등급 신청을 진행합니다. 개인정보와 건강 상태를 입력하면 국민건강보험공단에 신청서를 제출하고 방문조사 일정을 안내합니다.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"parentName": {
				Type:     "string",
				Desc:     "부모님 성함",
				Required: true,
			},
			"birthDate": {
				Type:     "string",
				Desc:     "부모님 생년월일 (YYYY-MM-DD)",
				Required: true,
			},
			"address": {
				Type:     "string",
				Desc:     "부모님 거주지 주소",
				Required: true,
			},
			"phone": {
				Type:     "string",
				Desc:     "연락 가능한 전화번호",
				Required: true,
			},
			"applicantName": {
				Type:     "string",
				Desc:     "신청인(자녀) 성함",
				Required: true,
			},
			"applicantRelation": {
				Type: "string",
				Desc: "신청인과 부모님의 관계",
				Enum: []string{"자녀", "배우자", "손자녀", "기타"},
			},
		}),
	}
}

type applyLongTermCareInput struct {
	ParentName        string `json:"parentName"`
	BirthDate         string `json:"birthDate"`
	Address           string `json:"address"`
	Phone             string `json:"phone"`
	ApplicantName     string `json:"applicantName"`
	ApplicantRelation string `json:"applicantRelation"`
}

func (r *Registry) handleApplyLongTermCare(_ context.Context, input json.RawMessage, state *model.CareState) (*model.ToolOutcome, error) {
	var in applyLongTermCareInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("parse apply_long_term_care input: %w", err)
	}

	now := timeNow()
	applicationNumber := "LTC-" + timestampSuffix(now, 8)

	// 방문조사 happens within two weeks of filing
	surveyDate := now.AddDate(0, 0, 14)
	surveyDateStr := surveyDate.Format("2006-01-02")

	appointment := model.Appointment{
		ID:       fmt.Sprintf("apt-%d", now.UnixMilli()),
		Type:     "방문조사",
		Date:     surveyDateStr,
		Time:     "오전 10:00",
		Location: in.Address,
		Status:   "scheduled",
		Notes:    "신청번호: " + applicationNumber,
	}

	appointments := append(append([]model.Appointment{}, state.Appointments...), appointment)
	completed := append(append([]string{}, state.CompletedSteps...), model.StepHealthAssessment)

	return &model.ToolOutcome{
		Result: map[string]any{
			"applicationNumber":  applicationNumber,
			"status":             "신청완료",
			"parentName":         in.ParentName,
			"expectedSurveyDate": surveyDateStr,
			"agency":             "국민건강보험공단",
		},
		StatePatch: &model.CareStatePatch{
			ParentInfo: &model.ParentInfo{
				Name:        in.ParentName,
				BirthDate:   in.BirthDate,
				Age:         calculateAge(in.BirthDate, now),
				Gender:      "여",
				Address:     in.Address,
				LivingAlone: false,
			},
			Appointments:   appointments,
			CurrentStep:    model.StepGradeApplication,
			CompletedSteps: completed,
		},
		DisplayData: &model.DisplayData{
			Type:  "appointment",
			Title: "장기요양등급 신청 완료",
			Items: []model.DisplayItem{
				{Icon: "✅", Label: "신청 상태", Value: "접수 완료", Highlight: true},
				{Icon: "📋", Label: "신청번호", Value: applicationNumber},
				{Icon: "👤", Label: "신청 대상", Value: in.ParentName},
				{Icon: "📅", Label: "방문조사 예정일", Value: formatKoreanDate(surveyDate)},
				{Icon: "🏢", Label: "처리 기관", Value: "국민건강보험공단"},
			},
		},
	}, nil
}

func scheduleVisitSurveyInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "schedule_visit_survey",
		Desc: "장기요양등급 판정을 위한 방문조사 일정을 예약합니다.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"preferredDate": {
				Type:     "string",
				Desc:     "희망 방문 날짜 (YYYY-MM-DD)",
				Required: true,
			},
			"preferredTime": {
				Type: "string",
				Desc: "희망 시간대",
				Enum: []string{"오전", "오후", "상관없음"},
			},
			"address": {
				Type:     "string",
				Desc:     "방문 주소",
				Required: true,
			},
			"contactPhone": {
				Type:     "string",
				Desc:     "연락처",
				Required: true,
			},
			"notes": {
				Type: "string",
				Desc: "특이사항 (예: 주차 가능, 엘리베이터 없음 등)",
			},
		}),
	}
}

type scheduleVisitSurveyInput struct {
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Address       string `json:"address"`
	ContactPhone  string `json:"contactPhone"`
	Notes         string `json:"notes"`
}

func (r *Registry) handleScheduleVisitSurvey(_ context.Context, input json.RawMessage, state *model.CareState) (*model.ToolOutcome, error) {
	var in scheduleVisitSurveyInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("parse schedule_visit_survey input: %w", err)
	}

	visitTime := "14:00"
	if in.PreferredTime == "오전" {
		visitTime = "10:00"
	}

	appointment := model.Appointment{
		ID:       fmt.Sprintf("visit-%d", timeNow().UnixMilli()),
		Type:     "방문조사",
		Date:     in.PreferredDate,
		Time:     visitTime,
		Location: in.Address,
		Status:   "scheduled",
		Notes:    in.Notes,
	}

	appointments := append(append([]model.Appointment{}, state.Appointments...), appointment)

	preferredTime := in.PreferredTime
	if preferredTime == "" {
		preferredTime = "오전"
	}

	return &model.ToolOutcome{
		Result: map[string]any{
			"confirmed":   true,
			"appointment": appointment,
		},
		StatePatch: &model.CareStatePatch{Appointments: appointments},
		DisplayData: &model.DisplayData{
			Type:  "appointment",
			Title: "방문조사 예약 완료",
			Items: []model.DisplayItem{
				{Icon: "✅", Label: "예약 상태", Value: "확정", Highlight: true},
				{Icon: "📅", Label: "날짜", Value: in.PreferredDate},
				{Icon: "⏰", Label: "시간", Value: preferredTime},
				{Icon: "📍", Label: "방문 장소", Value: in.Address},
				{Icon: "📞", Label: "연락처", Value: in.ContactPhone},
			},
		},
	}, nil
}

func registerEmergencyCareInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "register_emergency_care",
		Desc: "긴급 돌봄 서비스(돌봄SOS, 긴급복지지원 등)를 신청합니다.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"serviceType": {
				Type:     "string",
				Desc:     "서비스 유형",
				Enum:     []string{"돌봄SOS", "긴급복지지원", "노인맞춤돌봄", "치매안심센터"},
				Required: true,
			},
			"urgencyLevel": {
				Type:     "string",
				Desc:     "긴급도",
				Enum:     []string{"즉시", "24시간내", "일주일내"},
				Required: true,
			},
			"situation": {
				Type: "string",
				Desc: "현재 상황 설명",
			},
			"address": {
				Type:     "string",
				Desc:     "서비스 제공 주소",
				Required: true,
			},
			"contactPhone": {
				Type:     "string",
				Desc:     "연락처",
				Required: true,
			},
		}),
	}
}

type registerEmergencyCareInput struct {
	ServiceType  string `json:"serviceType"`
	UrgencyLevel string `json:"urgencyLevel"`
	Situation    string `json:"situation"`
	Address      string `json:"address"`
	ContactPhone string `json:"contactPhone"`
}

func (r *Registry) handleRegisterEmergencyCare(_ context.Context, input json.RawMessage, _ *model.CareState) (*model.ToolOutcome, error) {
	var in registerEmergencyCareInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("parse register_emergency_care input: %w", err)
	}

	registrationNumber := "EC-" + timestampSuffix(timeNow(), 6)

	expectedResponse := "3일 내"
	switch in.UrgencyLevel {
	case "즉시":
		expectedResponse = "2시간 내"
	case "24시간내":
		expectedResponse = "24시간 내"
	}

	displayResponse := "24시간 내"
	if in.UrgencyLevel == "즉시" {
		displayResponse = "2시간 내"
	}

	return &model.ToolOutcome{
		Result: map[string]any{
			"registrationNumber": registrationNumber,
			"serviceType":        in.ServiceType,
			"status":             "접수완료",
			"expectedResponse":   expectedResponse,
		},
		StatePatch: &model.CareStatePatch{CurrentStep: model.StepEmergencyCare},
		DisplayData: &model.DisplayData{
			Type:  "appointment",
			Title: "긴급 돌봄 서비스 신청 완료",
			Items: []model.DisplayItem{
				{Icon: "🚨", Label: "서비스", Value: in.ServiceType, Highlight: true},
				{Icon: "📋", Label: "접수번호", Value: registrationNumber},
				{Icon: "⏱️", Label: "예상 응답", Value: displayResponse},
				{Icon: "📍", Label: "서비스 장소", Value: in.Address},
				{Icon: "📞", Label: "긴급 연락처", Value: "129 (복지상담)"},
			},
		},
	}, nil
}

// timestampSuffix returns the last n digits of the millisecond timestamp.
func timestampSuffix(t time.Time, n int) string {
	s := strconv.FormatInt(t.UnixMilli(), 10)
	if len(s) > n {
		s = s[len(s)-n:]
	}
	return s
}

func calculateAge(birthDate string, now time.Time) int {
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

func formatKoreanDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}
