// Package mockdata holds the demo data served when the public data portals
// are unreachable or no service key is configured.
package mockdata

import (
	"sort"
	"strings"

	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
)

// CareFacilities is the built-in Seoul facility catalog.
var CareFacilities = []model.CareFacility{
	// 주간보호센터
	{
		ID:             "cf-001",
		Name:           "강남사랑주간보호센터",
		Type:           "주간보호센터",
		Address:        "서울시 강남구 역삼동 123-4",
		Distance:       1.2,
		Rating:         4.8,
		ReviewCount:    156,
		MonthlyFee:     model.FeeRange{Min: 400000, Max: 600000},
		Specialties:    []string{"치매전문", "물리치료", "인지재활"},
		AvailableSlots: true,
		Phone:          "02-1234-5678",
		Website:        "https://example.com",
	},
	{
		ID:             "cf-002",
		Name:           "행복한오후주간보호",
		Type:           "주간보호센터",
		Address:        "서울시 강남구 삼성동 456-7",
		Distance:       2.5,
		Rating:         4.6,
		ReviewCount:    89,
		MonthlyFee:     model.FeeRange{Min: 350000, Max: 550000},
		Specialties:    []string{"재활치료", "작업치료", "음악치료"},
		AvailableSlots: true,
		Phone:          "02-2345-6789",
	},
	{
		ID:             "cf-003",
		Name:           "푸른솔주간보호센터",
		Type:           "주간보호센터",
		Address:        "서울시 서초구 반포동 789-1",
		Distance:       3.1,
		Rating:         4.5,
		ReviewCount:    72,
		MonthlyFee:     model.FeeRange{Min: 380000, Max: 580000},
		Specialties:    []string{"물리치료", "원예치료"},
		AvailableSlots: true,
		Phone:          "02-3456-7890",
	},
	{
		ID:             "cf-004",
		Name:           "효사랑주간보호",
		Type:           "주간보호센터",
		Address:        "서울시 송파구 잠실동 111-2",
		Distance:       4.2,
		Rating:         4.7,
		ReviewCount:    134,
		MonthlyFee:     model.FeeRange{Min: 400000, Max: 620000},
		Specialties:    []string{"치매전문", "인지재활", "미술치료"},
		AvailableSlots: false,
		Phone:          "02-4567-8901",
	},
	{
		ID:             "cf-005",
		Name:           "햇살주간보호센터",
		Type:           "주간보호센터",
		Address:        "서울시 강동구 천호동 222-3",
		Distance:       5.8,
		Rating:         4.4,
		ReviewCount:    56,
		MonthlyFee:     model.FeeRange{Min: 320000, Max: 480000},
		Specialties:    []string{"재활치료", "작업치료"},
		AvailableSlots: true,
		Phone:          "02-5678-9012",
	},

	// 요양원
	{
		ID:             "cf-006",
		Name:           "강남실버타운",
		Type:           "요양원",
		Address:        "서울시 강남구 개포동 333-4",
		Distance:       2.8,
		Rating:         4.5,
		ReviewCount:    203,
		MonthlyFee:     model.FeeRange{Min: 2500000, Max: 4000000},
		Specialties:    []string{"치매전문", "재활", "24시간 간호"},
		AvailableSlots: true,
		Phone:          "02-6789-0123",
		Website:        "https://example.com",
	},
	{
		ID:             "cf-007",
		Name:           "서초효도요양원",
		Type:           "요양원",
		Address:        "서울시 서초구 양재동 444-5",
		Distance:       3.5,
		Rating:         4.3,
		ReviewCount:    178,
		MonthlyFee:     model.FeeRange{Min: 2200000, Max: 3500000},
		Specialties:    []string{"중증환자", "재활", "한방진료"},
		AvailableSlots: true,
		Phone:          "02-7890-1234",
	},
	{
		ID:             "cf-008",
		Name:           "송파사랑요양원",
		Type:           "요양원",
		Address:        "서울시 송파구 문정동 555-6",
		Distance:       5.2,
		Rating:         4.6,
		ReviewCount:    145,
		MonthlyFee:     model.FeeRange{Min: 2000000, Max: 3200000},
		Specialties:    []string{"치매전문", "물리치료"},
		AvailableSlots: false,
		Phone:          "02-8901-2345",
	},
	{
		ID:             "cf-009",
		Name:           "한강실버홈",
		Type:           "요양원",
		Address:        "서울시 영등포구 여의도동 666-7",
		Distance:       8.5,
		Rating:         4.4,
		ReviewCount:    112,
		MonthlyFee:     model.FeeRange{Min: 1800000, Max: 2800000},
		Specialties:    []string{"재활", "작업치료", "호스피스"},
		AvailableSlots: true,
		Phone:          "02-9012-3456",
	},
	{
		ID:             "cf-010",
		Name:           "청담효요양원",
		Type:           "요양원",
		Address:        "서울시 강남구 청담동 777-8",
		Distance:       2.1,
		Rating:         4.9,
		ReviewCount:    89,
		MonthlyFee:     model.FeeRange{Min: 3500000, Max: 6000000},
		Specialties:    []string{"VIP케어", "치매전문", "24시간 의료"},
		AvailableSlots: true,
		Phone:          "02-0123-4567",
		Website:        "https://example.com",
	},

	// 재가서비스
	{
		ID:             "cf-011",
		Name:           "강남방문요양센터",
		Type:           "재가서비스",
		Address:        "서울시 강남구 대치동 888-9",
		Distance:       1.5,
		Rating:         4.7,
		ReviewCount:    234,
		MonthlyFee:     model.FeeRange{Min: 300000, Max: 800000},
		Specialties:    []string{"방문요양", "방문목욕", "방문간호"},
		AvailableSlots: true,
		Phone:          "02-1234-0000",
	},
	{
		ID:             "cf-012",
		Name:           "사랑나눔재가센터",
		Type:           "재가서비스",
		Address:        "서울시 서초구 서초동 999-1",
		Distance:       2.8,
		Rating:         4.5,
		ReviewCount:    167,
		MonthlyFee:     model.FeeRange{Min: 280000, Max: 750000},
		Specialties:    []string{"방문요양", "방문목욕", "가사지원"},
		AvailableSlots: true,
		Phone:          "02-2345-0000",
	},
	{
		ID:             "cf-013",
		Name:           "효도재가복지센터",
		Type:           "재가서비스",
		Address:        "서울시 송파구 가락동 101-2",
		Distance:       4.5,
		Rating:         4.6,
		ReviewCount:    198,
		MonthlyFee:     model.FeeRange{Min: 250000, Max: 700000},
		Specialties:    []string{"방문요양", "방문간호", "야간보호"},
		AvailableSlots: true,
		Phone:          "02-3456-0000",
	},
	{
		ID:             "cf-014",
		Name:           "행복케어재가",
		Type:           "재가서비스",
		Address:        "서울시 강동구 길동 202-3",
		Distance:       6.2,
		Rating:         4.4,
		ReviewCount:    89,
		MonthlyFee:     model.FeeRange{Min: 220000, Max: 650000},
		Specialties:    []string{"방문요양", "방문목욕"},
		AvailableSlots: true,
		Phone:          "02-4567-0000",
	},
	{
		ID:             "cf-015",
		Name:           "온누리재가센터",
		Type:           "재가서비스",
		Address:        "서울시 강서구 화곡동 303-4",
		Distance:       12.5,
		Rating:         4.3,
		ReviewCount:    76,
		MonthlyFee:     model.FeeRange{Min: 200000, Max: 600000},
		Specialties:    []string{"방문요양", "가사지원", "이동지원"},
		AvailableSlots: true,
		Phone:          "02-5678-0000",
	},

	// 양로원
	{
		ID:             "cf-016",
		Name:           "강남행복양로원",
		Type:           "양로원",
		Address:        "서울시 강남구 논현동 404-5",
		Distance:       2.3,
		Rating:         4.2,
		ReviewCount:    45,
		MonthlyFee:     model.FeeRange{Min: 800000, Max: 1500000},
		Specialties:    []string{"건강관리", "여가프로그램"},
		AvailableSlots: true,
		Phone:          "02-6789-0000",
	},
	{
		ID:             "cf-017",
		Name:           "서초실버양로원",
		Type:           "양로원",
		Address:        "서울시 서초구 방배동 505-6",
		Distance:       4.1,
		Rating:         4.4,
		ReviewCount:    67,
		MonthlyFee:     model.FeeRange{Min: 700000, Max: 1300000},
		Specialties:    []string{"건강관리", "사회활동", "취미활동"},
		AvailableSlots: true,
		Phone:          "02-7890-0000",
	},

	// 요양병원
	{
		ID:             "cf-018",
		Name:           "강남효요양병원",
		Type:           "요양병원",
		Address:        "서울시 강남구 수서동 606-7",
		Distance:       3.8,
		Rating:         4.5,
		ReviewCount:    312,
		MonthlyFee:     model.FeeRange{Min: 1500000, Max: 3000000},
		Specialties:    []string{"중증환자", "재활의료", "호스피스"},
		AvailableSlots: true,
		Phone:          "02-8901-0000",
		Website:        "https://example.com",
	},
	{
		ID:             "cf-019",
		Name:           "서울남부요양병원",
		Type:           "요양병원",
		Address:        "서울시 관악구 신림동 707-8",
		Distance:       9.5,
		Rating:         4.3,
		ReviewCount:    278,
		MonthlyFee:     model.FeeRange{Min: 1200000, Max: 2500000},
		Specialties:    []string{"재활의료", "치매치료", "한방치료"},
		AvailableSlots: true,
		Phone:          "02-9012-0000",
	},
	{
		ID:             "cf-020",
		Name:           "강동사랑요양병원",
		Type:           "요양병원",
		Address:        "서울시 강동구 암사동 808-9",
		Distance:       7.2,
		Rating:         4.6,
		ReviewCount:    189,
		MonthlyFee:     model.FeeRange{Min: 1400000, Max: 2800000},
		Specialties:    []string{"중증환자", "재활", "투석"},
		AvailableSlots: false,
		Phone:          "02-0123-0000",
	},
}

// FacilitiesByType groups the catalog by facility type.
func FacilitiesByType() map[string][]model.CareFacility {
	grouped := make(map[string][]model.CareFacility)
	for _, f := range CareFacilities {
		grouped[f.Type] = append(grouped[f.Type], f)
	}
	return grouped
}

// SortByDistance returns a copy sorted by ascending distance.
func SortByDistance(facilities []model.CareFacility) []model.CareFacility {
	out := append([]model.CareFacility{}, facilities...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}

// SortByRating returns a copy sorted by descending rating.
func SortByRating(facilities []model.CareFacility) []model.CareFacility {
	out := append([]model.CareFacility{}, facilities...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out
}

// FilterByBudget keeps facilities whose minimum fee fits the monthly budget.
func FilterByBudget(facilities []model.CareFacility, maxBudget int) []model.CareFacility {
	out := make([]model.CareFacility, 0, len(facilities))
	for _, f := range facilities {
		if f.MonthlyFee.Min <= maxBudget {
			out = append(out, f)
		}
	}
	return out
}

// FilterBySpecialty keeps facilities offering a matching specialty.
func FilterBySpecialty(facilities []model.CareFacility, specialty string) []model.CareFacility {
	out := make([]model.CareFacility, 0, len(facilities))
	for _, f := range facilities {
		for _, s := range f.Specialties {
			if strings.Contains(s, specialty) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
