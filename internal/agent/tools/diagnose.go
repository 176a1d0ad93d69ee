package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
)

func diagnoseCareLevelInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "diagnose_care_level",
		Desc: "부모님의 건강 상태를 바탕으로 예상 장기요양등급과 돌봄 필요도를 진단합니다. 식사, 이동, 화장실 사용, 인지 상태 등의 정보를 입력하면 예상 등급과 권장 서비스를 알려드립니다.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"mobility": {
				Type:     "string",
				Desc:     "이동 능력: independent(독립적), assisted(도움 필요), dependent(의존적)",
				Enum:     []string{"independent", "assisted", "dependent"},
				Required: true,
			},
			"eating": {
				Type:     "string",
				Desc:     "식사 능력: independent(독립적), assisted(도움 필요), dependent(의존적)",
				Enum:     []string{"independent", "assisted", "dependent"},
				Required: true,
			},
			"toileting": {
				Type:     "string",
				Desc:     "화장실 사용: independent(독립적), assisted(도움 필요), dependent(의존적)",
				Enum:     []string{"independent", "assisted", "dependent"},
				Required: true,
			},
			"cognitiveState": {
				Type:     "string",
				Desc:     "인지 상태: normal(정상), mild(경도), moderate(중등도), severe(중증)",
				Enum:     []string{"normal", "mild", "moderate", "severe"},
				Required: true,
			},
			"recentIncident": {
				Type: "string",
				Desc: "최근 발생한 사고나 질병 (예: 낙상, 뇌졸중 등)",
			},
			"age": {
				Type: "number",
				Desc: "부모님 연세",
			},
		}),
	}
}

type diagnoseCareLevelInput struct {
	Mobility       string `json:"mobility"`
	Eating         string `json:"eating"`
	Toileting      string `json:"toileting"`
	CognitiveState string `json:"cognitiveState"`
	RecentIncident string `json:"recentIncident"`
	Age            int    `json:"age"`
}

var adlScores = map[string]int{
	model.ADLIndependent: 0,
	model.ADLAssisted:    1,
	model.ADLDependent:   2,
}

var cognitiveScores = map[string]int{
	model.CognitiveNormal:   0,
	model.CognitiveMild:     1,
	model.CognitiveModerate: 2,
	model.CognitiveSevere:   3,
}

func (r *Registry) handleDiagnoseCareLevel(_ context.Context, input json.RawMessage, _ *model.CareState) (*model.ToolOutcome, error) {
	var in diagnoseCareLevelInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("parse diagnose_care_level input: %w", err)
	}

	adlScore := adlScores[in.Mobility] + adlScores[in.Eating] + adlScores[in.Toileting]
	cognitiveScore := cognitiveScores[in.CognitiveState]
	totalScore := adlScore + cognitiveScore

	var estimatedGrade, urgencyLevel string
	switch {
	case totalScore >= 8:
		estimatedGrade, urgencyLevel = "1등급", "critical"
	case totalScore >= 6:
		estimatedGrade, urgencyLevel = "2등급", "high"
	case totalScore >= 4:
		estimatedGrade, urgencyLevel = "3등급", "medium"
	case totalScore >= 2:
		estimatedGrade, urgencyLevel = "4등급", "medium"
	case cognitiveScore >= 1:
		estimatedGrade, urgencyLevel = "인지지원등급", "low"
	default:
		estimatedGrade, urgencyLevel = "등급외", "low"
	}

	// a recent fall bumps a low urgency up a notch
	if strings.Contains(in.RecentIncident, "낙상") && urgencyLevel == "low" {
		urgencyLevel = "medium"
	}

	diagnosis := &model.CareLevelDiagnosis{
		EstimatedGrade:   estimatedGrade,
		ADLScore:         adlScore * 10,
		CognitiveScore:   cognitiveScore * 10,
		NursingNeedScore: totalScore * 5,
		Recommendation:   gradeRecommendation(estimatedGrade),
		UrgencyLevel:     urgencyLevel,
	}

	return &model.ToolOutcome{
		Result:     diagnosis,
		StatePatch: &model.CareStatePatch{Diagnosis: diagnosis},
		DisplayData: &model.DisplayData{
			Type:  "diagnosis",
			Title: "돌봄 필요도 진단 결과",
			Items: []model.DisplayItem{
				{Icon: "🏥", Label: "예상 등급", Value: estimatedGrade, Highlight: true},
				{Icon: "📊", Label: "ADL 점수", Value: fmt.Sprintf("%d점", diagnosis.ADLScore)},
				{Icon: "🧠", Label: "인지기능 점수", Value: fmt.Sprintf("%d점", diagnosis.CognitiveScore)},
				{Icon: "⚡", Label: "긴급도", Value: urgencyLabel(urgencyLevel)},
				{Icon: "💡", Label: "권장 서비스", Value: diagnosis.Recommendation},
			},
		},
	}, nil
}

func gradeRecommendation(grade string) string {
	recommendations := map[string]string{
		"1등급":    "시설급여(요양원) 또는 24시간 재가서비스 권장",
		"2등급":    "주야간보호 + 방문요양 병행 권장",
		"3등급":    "주간보호센터 이용 권장",
		"4등급":    "방문요양 서비스 권장",
		"5등급":    "방문요양 또는 주간보호 권장",
		"인지지원등급": "치매안심센터 연계 권장",
		"등급외":    "노인맞춤돌봄서비스 신청 권장",
	}
	if rec, ok := recommendations[grade]; ok {
		return rec
	}
	return "전문 상담 권장"
}

func urgencyLabel(level string) string {
	labels := map[string]string{
		"low":      "낮음",
		"medium":   "보통",
		"high":     "높음",
		"critical": "매우 높음",
	}
	if label, ok := labels[level]; ok {
		return label
	}
	return "보통"
}
