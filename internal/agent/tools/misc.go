package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
)

func shareFamilyCalendarInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "share_family_calendar",
		Desc: "가족 간 돌봄 일정을 공유하고 조율합니다.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"familyMembers": {
				Type:     "array",
				Desc:     "가족 구성원 목록 (이름과 연락처)",
				ElemInfo: &schema.ParameterInfo{Type: "string"},
				Required: true,
			},
			"events": {
				Type:     "array",
				Desc:     "등록할 일정 목록",
				ElemInfo: &schema.ParameterInfo{Type: "string"},
			},
			"shareMethod": {
				Type: "string",
				Desc: "공유 방법",
				Enum: []string{"카카오톡", "문자메시지", "이메일"},
			},
		}),
	}
}

type shareFamilyCalendarInput struct {
	FamilyMembers []string `json:"familyMembers"`
	Events        []string `json:"events"`
	ShareMethod   string   `json:"shareMethod"`
}

func (r *Registry) handleShareFamilyCalendar(_ context.Context, input json.RawMessage, _ *model.CareState) (*model.ToolOutcome, error) {
	var in shareFamilyCalendarInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("parse share_family_calendar input: %w", err)
	}

	method := in.ShareMethod
	if method == "" {
		method = "카카오톡"
	}

	items := []model.DisplayItem{
		{Icon: "👨‍👩‍👧‍👦", Label: "공유 대상", Value: fmt.Sprintf("%d명", len(in.FamilyMembers)), Highlight: true},
		{Icon: "📱", Label: "공유 방법", Value: method},
	}
	for _, m := range in.FamilyMembers {
		items = append(items, model.DisplayItem{Icon: "✅", Label: "멤버", Value: m})
	}

	return &model.ToolOutcome{
		Result: map[string]any{
			"shared":  true,
			"members": in.FamilyMembers,
			"method":  method,
		},
		StatePatch: &model.CareStatePatch{CurrentStep: model.StepFamilyCalendar},
		DisplayData: &model.DisplayData{
			Type:  "calendar",
			Title: "가족 돌봄 캘린더 공유",
			Items: items,
		},
	}, nil
}

func getGovernmentDocsInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "get_government_docs",
		Desc: "정부24를 통해 필요한 서류를 발급합니다.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"docType": {
				Type:     "string",
				Desc:     "서류 종류",
				Enum:     []string{"가족관계증명서", "주민등록등본", "소득금액증명", "건강보험자격득실확인서"},
				Required: true,
			},
			"purpose": {
				Type: "string",
				Desc: "발급 목적",
			},
		}),
	}
}

type getGovernmentDocsInput struct {
	DocType string `json:"docType"`
	Purpose string `json:"purpose"`
}

func (r *Registry) handleGetGovernmentDocs(_ context.Context, input json.RawMessage, _ *model.CareState) (*model.ToolOutcome, error) {
	var in getGovernmentDocsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("parse get_government_docs input: %w", err)
	}

	validUntil := timeNow().AddDate(0, 0, 90).Format("2006-01-02")

	return &model.ToolOutcome{
		Result: map[string]any{
			"docType":     in.DocType,
			"status":      "발급완료",
			"downloadUrl": "https://gov.kr/download/...",
			"validUntil":  validUntil,
		},
		DisplayData: &model.DisplayData{
			Type:  "document",
			Title: "정부서류 발급 완료",
			Items: []model.DisplayItem{
				{Icon: "📄", Label: "서류명", Value: in.DocType, Highlight: true},
				{Icon: "✅", Label: "발급 상태", Value: "완료"},
				{Icon: "🏛️", Label: "발급처", Value: "정부24"},
				{Icon: "📅", Label: "유효기간", Value: "발급일로부터 90일"},
			},
		},
	}, nil
}

func summarizeProgressInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "summarize_progress",
		Desc: "현재까지 진행된 상담 내용과 완료된 서비스를 요약합니다.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"includeNextSteps": {
				Type: "boolean",
				Desc: "다음 단계 안내 포함 여부",
			},
		}),
	}
}

type summarizeProgressInput struct {
	IncludeNextSteps bool `json:"includeNextSteps"`
}

func (r *Registry) handleSummarizeProgress(_ context.Context, input json.RawMessage, state *model.CareState) (*model.ToolOutcome, error) {
	var in summarizeProgressInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("parse summarize_progress input: %w", err)
	}

	var completedItems []string
	if state.Diagnosis != nil {
		completedItems = append(completedItems, "돌봄 필요도 진단")
	}
	if len(state.Appointments) > 0 {
		completedItems = append(completedItems, "방문조사 예약")
	}
	if len(state.DiscoveredBenefits) > 0 {
		completedItems = append(completedItems, fmt.Sprintf("복지혜택 %d건 발굴", len(state.DiscoveredBenefits)))
	}
	if len(state.NearbyFacilities) > 0 {
		completedItems = append(completedItems, fmt.Sprintf("요양시설 %d곳 검색", len(state.NearbyFacilities)))
	}

	items := []model.DisplayItem{
		{Icon: "📊", Label: "완료 항목", Value: fmt.Sprintf("%d건", len(completedItems)), Highlight: true},
	}
	for _, item := range completedItems {
		items = append(items, model.DisplayItem{Icon: "✅", Label: item, Value: "완료"})
	}
	if in.IncludeNextSteps {
		items = append(items, model.DisplayItem{
			Icon:      "➡️",
			Label:     "다음 단계",
			Value:     nextStepLabel(state.CurrentStep),
			Highlight: true,
		})
	}

	return &model.ToolOutcome{
		Result: map[string]any{
			"completedSteps":        completedItems,
			"currentStep":           state.CurrentStep,
			"totalBenefits":         len(state.DiscoveredBenefits),
			"scheduledAppointments": len(state.Appointments),
		},
		DisplayData: &model.DisplayData{
			Type:  "summary",
			Title: "상담 진행 현황",
			Items: items,
		},
	}, nil
}

func nextStepLabel(step string) string {
	nextSteps := map[string]string{
		model.StepInitial:          "건강 상태 파악",
		model.StepHealthAssessment: "등급 신청",
		model.StepDiagnosis:        "등급 신청 또는 긴급 돌봄",
		model.StepGradeApplication: "복지혜택 검색",
		model.StepEmergencyCare:    "시설 검색",
		model.StepBenefitDiscovery: "요양시설 검색",
		model.StepFacilitySearch:   "가족 캘린더 설정",
		model.StepFamilyCalendar:   "상담 완료",
	}
	if step == "" {
		step = model.StepInitial
	}
	if label, ok := nextSteps[step]; ok {
		return label
	}
	return "추가 상담"
}
