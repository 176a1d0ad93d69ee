package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
	"github.com/yonghwan1106/ai-carebridge/internal/gateway/publicdata"
	"github.com/yonghwan1106/ai-carebridge/internal/mockdata"
	logx "github.com/yonghwan1106/ai-carebridge/pkg/logger"
)

func searchCareFacilitiesInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "search_care_facilities",
		Desc: "주변 요양시설(주간보호센터, 요양원, 재가서비스 등)을 검색합니다.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"location": {
				Type:     "string",
				Desc:     "검색 기준 위치 (예: 서울시 강남구)",
				Required: true,
			},
			"facilityType": {
				Type: "string",
				Desc: "시설 유형",
				Enum: []string{"주간보호센터", "요양원", "재가서비스", "양로원", "요양병원", "전체"},
			},
			"maxBudget": {
				Type: "number",
				Desc: "월 예산 상한 (만원 단위)",
			},
			"specialties": {
				Type:     "array",
				Desc:     "원하는 특화 서비스 (예: 치매전문, 재활, 물리치료)",
				ElemInfo: &schema.ParameterInfo{Type: "string"},
			},
		}),
	}
}

type searchCareFacilitiesInput struct {
	Location     string   `json:"location"`
	FacilityType string   `json:"facilityType"`
	MaxBudget    int      `json:"maxBudget"`
	Specialties  []string `json:"specialties"`
}

func (r *Registry) handleSearchCareFacilities(ctx context.Context, input json.RawMessage, _ *model.CareState) (*model.ToolOutcome, error) {
	var in searchCareFacilitiesInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("parse search_care_facilities input: %w", err)
	}

	var facilities []model.CareFacility
	totalCount := 0
	isRealData := false

	if r.publicData != nil {
		apiResult, err := r.publicData.SearchFacilities(ctx, publicdata.SearchParams{
			Location:     in.Location,
			FacilityType: in.FacilityType,
			NumOfRows:    10,
		})
		if err != nil {
			logx.Warn().Err(err).Str("location", in.Location).Msg("facility lookup failed, using demo catalog")
		} else if len(apiResult.Facilities) > 0 {
			facilities = apiResult.Facilities
			totalCount = apiResult.TotalCount
			isRealData = true

			if in.MaxBudget > 0 {
				facilities = mockdata.FilterByBudget(facilities, in.MaxBudget*10000)
			}
			if len(in.Specialties) > 0 {
				if filtered := mockdata.FilterBySpecialty(facilities, in.Specialties[0]); len(filtered) > 0 {
					facilities = filtered
				}
			}
			facilities = mockdata.SortByRating(facilities)
			if len(facilities) > 5 {
				facilities = facilities[:5]
			}
		}
	}

	// fall back to the demo catalog
	if len(facilities) == 0 {
		for _, f := range mockdata.CareFacilities {
			if in.FacilityType != "" && in.FacilityType != "전체" && f.Type != in.FacilityType {
				continue
			}
			if in.MaxBudget > 0 && f.MonthlyFee.Min > in.MaxBudget*10000 {
				continue
			}
			facilities = append(facilities, f)
		}
		if len(in.Specialties) > 0 {
			if filtered := mockdata.FilterBySpecialty(facilities, in.Specialties[0]); len(filtered) > 0 {
				facilities = filtered
			}
		}
		facilities = mockdata.SortByRating(facilities)
		if len(facilities) > 5 {
			facilities = facilities[:5]
		}
		totalCount = len(facilities)
		isRealData = false
	}

	dataSource := "샘플 데이터"
	title := "주변 요양시설 검색 결과"
	countIcon, countLabel := "🏢", "검색된 시설"
	countValue := fmt.Sprintf("%d곳", len(facilities))
	if isRealData {
		dataSource = "공공데이터포털 (국민건강보험공단)"
		title = fmt.Sprintf("📡 실시간 요양시설 검색 결과 (총 %d개 중 상위 %d개)", totalCount, len(facilities))
		countIcon, countLabel = "📡", "실시간 데이터"
		countValue = fmt.Sprintf("%d곳 (전체 %d개)", len(facilities), totalCount)
	}

	items := []model.DisplayItem{
		{Icon: countIcon, Label: countLabel, Value: countValue, Highlight: true},
	}
	for i, f := range facilities {
		if i >= 4 {
			break
		}
		icon := "🏥"
		if f.Type == "주간보호센터" {
			icon = "🌞"
		}
		items = append(items, model.DisplayItem{
			Icon:  icon,
			Label: f.Name,
			Value: fmt.Sprintf("⭐%.1f | %d~%d만원", f.Rating, f.MonthlyFee.Min/10000, f.MonthlyFee.Max/10000),
		})
	}

	return &model.ToolOutcome{
		Result: map[string]any{
			"facilities": facilities,
			"totalCount": totalCount,
			"dataSource": dataSource,
		},
		StatePatch: &model.CareStatePatch{
			NearbyFacilities: facilities,
			CurrentStep:      model.StepFacilitySearch,
		},
		DisplayData: &model.DisplayData{
			Type:  "facilities",
			Title: title,
			Items: items,
		},
	}, nil
}

func getFacilityDetailInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: "get_facility_detail",
		Desc: "특정 요양시설의 상세 정보(정원, 현원, 종사자수, 프로그램 등)를 조회합니다.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"facilityId": {
				Type:     "string",
				Desc:     "시설 ID (장기요양기관기호)",
				Required: true,
			},
			"facilityName": {
				Type: "string",
				Desc: "시설명 (ID가 없을 경우)",
			},
		}),
	}
}

type getFacilityDetailInput struct {
	FacilityID   string `json:"facilityId"`
	FacilityName string `json:"facilityName"`
}

func (r *Registry) handleGetFacilityDetail(ctx context.Context, input json.RawMessage, _ *model.CareState) (*model.ToolOutcome, error) {
	var in getFacilityDetailInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("parse get_facility_detail input: %w", err)
	}

	var detail *publicdata.DetailItem
	if r.publicData != nil {
		detail = r.publicData.FacilityDetail(ctx, in.FacilityID)
	}

	if detail == nil {
		return &model.ToolOutcome{
			Result: map[string]any{"error": "시설 상세정보를 찾을 수 없습니다."},
			DisplayData: &model.DisplayData{
				Type:  "facilities",
				Title: "시설 상세 조회 실패",
				Items: []model.DisplayItem{
					{Icon: "❌", Label: "오류", Value: "해당 시설 정보를 찾을 수 없습니다", Highlight: true},
				},
			},
		}, nil
	}

	var programs []string
	if detail.PrgmInfo != "" {
		for _, p := range strings.Split(detail.PrgmInfo, ",") {
			programs = append(programs, strings.TrimSpace(p))
		}
	}

	result := map[string]any{
		"id":               detail.LongTermAdminSym,
		"name":             detail.AdminNm,
		"address":          detail.CtprvnAddr,
		"phone":            detail.AdminTelNo,
		"homepage":         detail.HmpgAddr,
		"totalCapacity":    detail.TotPer,
		"currentOccupancy": detail.CurPer,
		"employeeCount":    detail.EmplyCnt,
		"representative":   detail.RprsvNm,
		"establishedDate":  detail.BsnStartDt,
		"programs":         programs,
	}

	items := []model.DisplayItem{
		{Icon: "🏢", Label: "시설명", Value: detail.AdminNm, Highlight: true},
		{Icon: "📍", Label: "주소", Value: orMissing(detail.CtprvnAddr)},
		{Icon: "📞", Label: "전화번호", Value: orMissing(detail.AdminTelNo)},
	}

	capacityValue := "정보 없음"
	if detail.TotPer > 0 {
		capacityValue = fmt.Sprintf("%d/%d명", detail.CurPer, detail.TotPer)
	}
	items = append(items, model.DisplayItem{Icon: "👥", Label: "정원/현원", Value: capacityValue})

	if detail.TotPer > 0 && detail.CurPer > 0 {
		available := detail.TotPer - detail.CurPer
		slotValue := "만석"
		if available > 0 {
			slotValue = fmt.Sprintf("%d자리 가능", available)
		}
		items = append(items, model.DisplayItem{Icon: "✨", Label: "빈자리", Value: slotValue, Highlight: available > 0})
	}

	employeeValue := "정보 없음"
	if detail.EmplyCnt > 0 {
		employeeValue = fmt.Sprintf("%d명", detail.EmplyCnt)
	}
	items = append(items, model.DisplayItem{Icon: "👨‍⚕️", Label: "종사자 수", Value: employeeValue})

	if detail.HmpgAddr != "" {
		items = append(items, model.DisplayItem{Icon: "🌐", Label: "홈페이지", Value: detail.HmpgAddr})
	}

	// the inspected facility becomes the consultation focus
	selected := &model.CareFacility{
		ID:      detail.LongTermAdminSym,
		Name:    detail.AdminNm,
		Address: detail.CtprvnAddr,
		Phone:   detail.AdminTelNo,
		DetailInfo: &model.FacilityDetailInfo{
			TotalCapacity:    detail.TotPer,
			CurrentOccupancy: detail.CurPer,
			EmployeeCount:    detail.EmplyCnt,
			Representative:   detail.RprsvNm,
			EstablishedDate:  detail.BsnStartDt,
			Homepage:         detail.HmpgAddr,
			Programs:         programs,
		},
	}

	return &model.ToolOutcome{
		Result:     result,
		StatePatch: &model.CareStatePatch{SelectedFacility: selected},
		DisplayData: &model.DisplayData{
			Type:  "facilities",
			Title: fmt.Sprintf("📋 %s 상세정보", detail.AdminNm),
			Items: items,
		},
	}, nil
}

func orMissing(v string) string {
	if v == "" {
		return "정보 없음"
	}
	return v
}
