package mockdata

import "github.com/yonghwan1106/ai-carebridge/internal/agent/model"

// WelfareBenefits is the built-in welfare program catalog.
var WelfareBenefits = []model.WelfareBenefit{
	// 소득지원
	{
		ID:             "bf-001",
		Name:           "기초연금",
		Category:       "소득지원",
		Description:    "65세 이상 소득하위 70% 어르신에게 매월 지급되는 연금",
		Eligibility:    []string{"65세 이상", "소득하위 70%"},
		MonthlyAmount:  334810,
		ApplicationURL: "https://basicpension.mohw.go.kr",
		Agency:         "보건복지부",
		Phone:          "129",
	},
	{
		ID:             "bf-002",
		Name:           "노령연금",
		Category:       "소득지원",
		Description:    "국민연금 가입 기간이 10년 이상인 분에게 지급",
		Eligibility:    []string{"국민연금 10년 이상 가입", "만 60세 이상"},
		MonthlyAmount:  600000,
		ApplicationURL: "https://nps.or.kr",
		Agency:         "국민연금공단",
		Phone:          "1355",
	},
	{
		ID:             "bf-003",
		Name:           "장애인연금",
		Category:       "소득지원",
		Description:    "중증장애인의 생활안정 지원",
		Eligibility:    []string{"중증장애인", "18세 이상", "소득하위 70%"},
		MonthlyAmount:  403180,
		ApplicationURL: "https://bokjiro.go.kr",
		Agency:         "보건복지부",
		Phone:          "129",
	},

	// 돌봄서비스
	{
		ID:             "bf-004",
		Name:           "노인맞춤돌봄서비스",
		Category:       "돌봄서비스",
		Description:    "일상생활 지원이 필요한 어르신에게 안전확인, 생활지원 등 제공",
		Eligibility:    []string{"65세 이상", "장기요양등급외 또는 미신청자", "독거 또는 돌봄 필요"},
		ApplicationURL: "https://129.go.kr",
		Agency:         "지자체",
		Phone:          "129",
	},
	{
		ID:             "bf-005",
		Name:           "돌봄SOS센터",
		Category:       "돌봄서비스",
		Description:    "위기상황 시 긴급돌봄, 일시재가, 동행서비스 등 제공",
		Eligibility:    []string{"돌봄 사각지대 어르신", "긴급 돌봄 필요"},
		ApplicationURL: "https://129.go.kr",
		Agency:         "지자체",
		Phone:          "129",
	},
	{
		ID:             "bf-006",
		Name:           "장기요양 재가급여",
		Category:       "돌봄서비스",
		Description:    "방문요양, 방문목욕, 방문간호, 주야간보호 등",
		Eligibility:    []string{"장기요양등급 판정자", "1~5등급 또는 인지지원등급"},
		MonthlyAmount:  1800000,
		ApplicationURL: "https://longtermcare.or.kr",
		Agency:         "국민건강보험공단",
		Phone:          "1577-1000",
	},
	{
		ID:             "bf-007",
		Name:           "치매안심센터",
		Category:       "돌봄서비스",
		Description:    "치매 조기검진, 치매케어서비스, 가족지원 프로그램",
		Eligibility:    []string{"60세 이상", "치매 의심 또는 확진"},
		ApplicationURL: "https://nid.or.kr",
		Agency:         "지자체",
		Phone:          "1899-9988",
	},

	// 의료지원
	{
		ID:             "bf-008",
		Name:           "노인 틀니 지원",
		Category:       "의료지원",
		Description:    "완전틀니, 부분틀니 건강보험 적용",
		Eligibility:    []string{"65세 이상", "건강보험 가입자"},
		ApplicationURL: "https://nhis.or.kr",
		Agency:         "국민건강보험공단",
		Phone:          "1577-1000",
	},
	{
		ID:             "bf-009",
		Name:           "노인 임플란트 지원",
		Category:       "의료지원",
		Description:    "평생 2개까지 임플란트 건강보험 적용 (본인부담 30%)",
		Eligibility:    []string{"65세 이상", "건강보험 가입자"},
		ApplicationURL: "https://nhis.or.kr",
		Agency:         "국민건강보험공단",
		Phone:          "1577-1000",
	},
	{
		ID:             "bf-010",
		Name:           "노인 안검진 지원",
		Category:       "의료지원",
		Description:    "안질환 조기발견을 위한 무료 안검진",
		Eligibility:    []string{"65세 이상"},
		ApplicationURL: "https://nhis.or.kr",
		Agency:         "국민건강보험공단",
		Phone:          "1577-1000",
	},
	{
		ID:             "bf-011",
		Name:           "본인부담상한제",
		Category:       "의료지원",
		Description:    "연간 본인부담금이 상한액 초과 시 환급",
		Eligibility:    []string{"건강보험 가입자"},
		ApplicationURL: "https://nhis.or.kr",
		Agency:         "국민건강보험공단",
		Phone:          "1577-1000",
	},

	// 주거지원
	{
		ID:             "bf-012",
		Name:           "주거급여",
		Category:       "주거지원",
		Description:    "저소득층 주거비 지원 (월세, 수선비)",
		Eligibility:    []string{"기준중위소득 48% 이하"},
		MonthlyAmount:  350000,
		ApplicationURL: "https://bokjiro.go.kr",
		Agency:         "국토교통부",
		Phone:          "1600-0777",
	},
	{
		ID:             "bf-013",
		Name:           "주택 수선 지원",
		Category:       "주거지원",
		Description:    "고령자 주택 개보수 지원 (화장실, 경사로 등)",
		Eligibility:    []string{"65세 이상", "저소득 가구"},
		ApplicationURL: "https://bokjiro.go.kr",
		Agency:         "지자체",
		Phone:          "129",
	},

	// 교통지원
	{
		ID:          "bf-014",
		Name:        "교통비 지원",
		Category:    "교통지원",
		Description: "65세 이상 어르신 대중교통 무료 또는 할인",
		Eligibility: []string{"65세 이상"},
		Agency:      "지자체",
		Phone:       "120",
	},
	{
		ID:             "bf-015",
		Name:           "이동지원서비스",
		Category:       "교통지원",
		Description:    "거동불편 어르신을 위한 이동 지원 (병원, 관공서)",
		Eligibility:    []string{"65세 이상", "거동불편"},
		ApplicationURL: "https://bokjiro.go.kr",
		Agency:         "지자체",
		Phone:          "129",
	},

	// 기타
	{
		ID:          "bf-016",
		Name:        "경로식당/무료급식",
		Category:    "기타",
		Description: "저소득 어르신에게 무료 식사 제공",
		Eligibility: []string{"60세 이상", "저소득 또는 독거"},
		Agency:      "지자체/복지관",
		Phone:       "129",
	},
	{
		ID:          "bf-017",
		Name:        "도시가스 요금 할인",
		Category:    "기타",
		Description: "저소득 가구 도시가스 요금 할인",
		Eligibility: []string{"기초생활수급자", "차상위계층"},
		Agency:      "한국가스공사",
		Phone:       "1544-1211",
	},
	{
		ID:          "bf-018",
		Name:        "전기요금 할인",
		Category:    "기타",
		Description: "저소득 가구 전기요금 할인",
		Eligibility: []string{"기초생활수급자", "차상위계층", "장애인"},
		Agency:      "한국전력공사",
		Phone:       "123",
	},
	{
		ID:          "bf-019",
		Name:        "통신요금 할인",
		Category:    "기타",
		Description: "기초생활수급자 통신요금 감면",
		Eligibility: []string{"기초생활수급자"},
		Agency:      "통신사",
		Phone:       "114",
	},
	{
		ID:             "bf-020",
		Name:           "문화누리카드",
		Category:       "기타",
		Description:    "저소득층 문화예술 향유 지원 (연 11만원)",
		Eligibility:    []string{"기초생활수급자", "차상위계층"},
		MonthlyAmount:  110000,
		ApplicationURL: "https://munhwa.or.kr",
		Agency:         "한국문화예술위원회",
		Phone:          "1544-3412",
	},

	// 긴급지원
	{
		ID:             "bf-021",
		Name:           "긴급복지지원",
		Category:       "돌봄서비스",
		Description:    "위기상황 발생 시 긴급 생계비, 의료비, 주거비 지원",
		Eligibility:    []string{"위기상황 발생", "소득하위 75%"},
		ApplicationURL: "https://bokjiro.go.kr",
		Agency:         "보건복지부",
		Phone:          "129",
	},
	{
		ID:             "bf-022",
		Name:           "노인일자리",
		Category:       "기타",
		Description:    "어르신 사회참여 및 소득 지원 (월 27만원 내외)",
		Eligibility:    []string{"65세 이상", "근로 가능"},
		MonthlyAmount:  270000,
		ApplicationURL: "https://seniorro.or.kr",
		Agency:         "한국노인인력개발원",
		Phone:          "1644-0690",
	},
	{
		ID:             "bf-023",
		Name:           "희망키움통장",
		Category:       "소득지원",
		Description:    "저소득층 자산형성 지원 (정부 매칭 저축)",
		Eligibility:    []string{"기초생활수급자", "차상위계층"},
		ApplicationURL: "https://bokjiro.go.kr",
		Agency:         "보건복지부",
		Phone:          "129",
	},
	{
		ID:            "bf-024",
		Name:          "장례비 지원",
		Category:      "기타",
		Description:   "저소득 가구 장례비용 지원",
		Eligibility:   []string{"기초생활수급자", "차상위계층"},
		MonthlyAmount: 800000,
		Agency:        "지자체",
		Phone:         "129",
	},
	{
		ID:             "bf-025",
		Name:           "가족요양비",
		Category:       "돌봄서비스",
		Description:    "가족이 장기요양 수급자를 돌볼 경우 현금 지원",
		Eligibility:    []string{"장기요양등급 판정자", "도서벽지 거주 등"},
		MonthlyAmount:  150000,
		ApplicationURL: "https://longtermcare.or.kr",
		Agency:         "국민건강보험공단",
		Phone:          "1577-1000",
	},
}

// BenefitsByCategory groups the catalog by category.
func BenefitsByCategory() map[string][]model.WelfareBenefit {
	grouped := make(map[string][]model.WelfareBenefit)
	for _, b := range WelfareBenefits {
		grouped[b.Category] = append(grouped[b.Category], b)
	}
	return grouped
}

// EstimateMonthlyBenefits totals the monthly amounts of the given programs.
func EstimateMonthlyBenefits(benefits []model.WelfareBenefit) int {
	sum := 0
	for _, b := range benefits {
		sum += b.MonthlyAmount
	}
	return sum
}
