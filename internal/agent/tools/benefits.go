package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
	"github.com/yonghwan1106/ai-carebridge/internal/gateway/welfare"
	"github.com/yonghwan1106/ai-carebridge/internal/mockdata"
	logx "github.com/yonghwan1106/ai-carebridge/pkg/logger"
)

func searchWelfareBenefitsInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "search_welfare_benefits",
		Desc: "부모님이 받을 수 있는 복지 혜택을 검색합니다. 나이, 소득 수준, 건강 상태 등을 고려하여 숨은 복지 혜택을 발굴합니다.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"age": {
				Type:     "number",
				Desc:     "부모님 연세",
				Required: true,
			},
			"incomeLevel": {
				Type: "string",
				Desc: "소득 수준: low(저소득), middle(중위소득), high(고소득)",
				Enum: []string{"low", "middle", "high"},
			},
			"region": {
				Type: "string",
				Desc: "거주 지역 (예: 서울시 강남구)",
			},
			"hasLongTermCareGrade": {
				Type: "boolean",
				Desc: "장기요양등급 보유 여부",
			},
			"conditions": {
				Type:     "array",
				Desc:     "해당하는 조건들 (예: 독거노인, 치매, 장애 등)",
				ElemInfo: &schema.ParameterInfo{Type: "string"},
			},
		}),
	}
}

type searchWelfareBenefitsInput struct {
	Age                  int      `json:"age"`
	IncomeLevel          string   `json:"incomeLevel"`
	Region               string   `json:"region"`
	HasLongTermCareGrade bool     `json:"hasLongTermCareGrade"`
	Conditions           []string `json:"conditions"`
}

func (r *Registry) handleSearchWelfareBenefits(ctx context.Context, input json.RawMessage, _ *model.CareState) (*model.ToolOutcome, error) {
	var in searchWelfareBenefitsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("parse search_welfare_benefits input: %w", err)
	}

	var benefits []model.WelfareBenefit
	totalCount := 0
	isRealData := false

	if r.welfare != nil {
		apiResult := r.welfare.Search(ctx, welfare.SearchQuery{
			Age:         in.Age,
			Region:      in.Region,
			Conditions:  in.Conditions,
			IncomeLevel: in.IncomeLevel,
		})
		if len(apiResult.Benefits) > 0 {
			benefits = apiResult.Benefits
			totalCount = apiResult.TotalCount
			isRealData = apiResult.IsRealData
		}
	}

	// fall back to the demo catalog
	if len(benefits) == 0 {
		logx.Debug().Int("age", in.Age).Msg("welfare lookup empty, using demo catalog")
		// non-nil even when every entry is filtered out, so the patch
		// replaces any previously discovered benefits
		benefits = make([]model.WelfareBenefit, 0, len(mockdata.WelfareBenefits))
		for _, b := range mockdata.WelfareBenefits {
			if in.Age < 65 && hasEligibility(b, "65세 이상") {
				continue
			}
			if in.IncomeLevel == "high" && hasEligibility(b, "저소득") {
				continue
			}
			benefits = append(benefits, b)
		}
		if len(benefits) > 5 {
			benefits = benefits[:5]
		}
		totalCount = len(benefits)
	}

	totalMonthlyAmount := mockdata.EstimateMonthlyBenefits(benefits)

	dataSource := "샘플 데이터"
	title := "발굴된 복지 혜택"
	countIcon, countLabel := "🎁", "발굴된 혜택 수"
	countValue := fmt.Sprintf("%d개", len(benefits))
	if isRealData {
		dataSource = "복지로 (한국사회보장정보원)"
		title = fmt.Sprintf("📡 실시간 복지혜택 검색 결과 (총 %d건)", totalCount)
		countIcon, countLabel = "📡", "실시간 데이터"
		countValue = fmt.Sprintf("%d개 (전체 %d건)", len(benefits), totalCount)
	}

	items := []model.DisplayItem{
		{Icon: countIcon, Label: countLabel, Value: countValue, Highlight: true},
		{Icon: "💰", Label: "예상 월 수령액", Value: fmt.Sprintf("약 %d만원", totalMonthlyAmount/10000)},
	}
	for i, b := range benefits {
		if i >= 3 {
			break
		}
		label := b.Name
		if runes := []rune(label); len(runes) > 15 {
			label = string(runes[:15]) + "..."
		}
		value := "지원"
		if b.MonthlyAmount > 0 {
			value = fmt.Sprintf("월 %d만원", b.MonthlyAmount/10000)
		}
		items = append(items, model.DisplayItem{Icon: "✨", Label: label, Value: value})
	}

	return &model.ToolOutcome{
		Result: map[string]any{
			"benefits":           benefits,
			"totalMonthlyAmount": totalMonthlyAmount,
			"totalCount":         totalCount,
			"dataSource":         dataSource,
		},
		StatePatch: &model.CareStatePatch{
			DiscoveredBenefits: benefits,
			CurrentStep:        model.StepBenefitDiscovery,
		},
		DisplayData: &model.DisplayData{
			Type:  "benefits",
			Title: title,
			Items: items,
		},
	}, nil
}

func hasEligibility(b model.WelfareBenefit, criterion string) bool {
	for _, e := range b.Eligibility {
		if e == criterion {
			return true
		}
	}
	return false
}
