// Package publicdata calls the 공공데이터포털 long-term care facility services:
// search (searchLtcInsttService02) and detail (getLtcInsttDetailInfoService02).
package publicdata

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
	logx "github.com/yonghwan1106/ai-carebridge/pkg/logger"
)

type Config struct {
	APIKey  string `envconfig:"PUBLIC_DATA_API_KEY"`
	BaseURL string `envconfig:"PUBLIC_DATA_BASE_URL" default:"https://apis.data.go.kr/B550928"`
	Timeout int    `envconfig:"PUBLIC_DATA_TIMEOUT" default:"10"`
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
	}
}

// Enabled reports whether a service key is configured. Without one every
// lookup returns empty results so callers can fall back to the demo catalog.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

// 급여종류 코드
var facilityTypeCodes = map[string]string{
	"주간보호센터": "3",
	"요양원":    "1",
	"재가서비스":  "2",
	"양로원":    "4",
	"요양병원":   "5",
	"전체":     "",
}

// 시도 코드
var sidoCodes = []struct {
	Name string
	Code string
}{
	{"서울", "11"}, {"부산", "26"}, {"대구", "27"}, {"인천", "28"},
	{"광주", "29"}, {"대전", "30"}, {"울산", "31"}, {"세종", "36"},
	{"경기", "41"}, {"강원", "42"}, {"충북", "43"}, {"충남", "44"},
	{"전북", "45"}, {"전남", "46"}, {"경북", "47"}, {"경남", "48"},
	{"제주", "50"},
}

var sigunguPattern = regexp.MustCompile(`[가-힣]+[구군시]`)

// extractSidoCode resolves the province code from a free-form location,
// defaulting to Seoul.
func extractSidoCode(location string) string {
	for _, s := range sidoCodes {
		if strings.Contains(location, s.Name) {
			return s.Code
		}
	}
	return "11"
}

// extractSigungu pulls the district name out of "서울시 강남구" style input.
// The first 구/군/시 token is usually the province-level city, so the second
// match wins.
func extractSigungu(location string) string {
	matches := sigunguPattern.FindAllString(location, -1)
	if len(matches) > 1 {
		return matches[1]
	}
	return ""
}

type searchResponse struct {
	XMLName xml.Name `xml:"response"`
	Header  struct {
		ResultCode string `xml:"resultCode"`
		ResultMsg  string `xml:"resultMsg"`
	} `xml:"header"`
	Body struct {
		Items      []searchItem `xml:"items>item"`
		NumOfRows  int          `xml:"numOfRows"`
		PageNo     int          `xml:"pageNo"`
		TotalCount int          `xml:"totalCount"`
	} `xml:"body"`
}

type searchItem struct {
	LongTermAdminSym       string `xml:"longTermAdminSym"`
	AdminNm                string `xml:"adminNm"`
	LongTermPeribRgtTypeCd string `xml:"longTermPeribRgtTypeCd"`
	LongTermPeribRgtTypeNm string `xml:"longTermPeribRgtTypeNm"`
	AdminPttnCd            string `xml:"adminPttnCd"`
	AdminPttnNm            string `xml:"adminPttnNm"`
	SiDoCd                 string `xml:"siDoCd"`
	SiDoNm                 string `xml:"siDoNm"`
	SiGunGuCd              string `xml:"siGunGuCd"`
	SiGunGuNm              string `xml:"siGunGuNm"`
	AdminTelNo             string `xml:"adminTelNo"`
	CtprvnAddr             string `xml:"ctprvnAddr"`
	GradeCd                string `xml:"gradeCd"`
	GradeNm                string `xml:"gradeNm"`
	TotPer                 int    `xml:"totPer"`
	CurPer                 int    `xml:"curPer"`
}

// DetailItem is the raw registry detail record for one facility.
type DetailItem struct {
	LongTermAdminSym string `json:"longTermAdminSym"`
	AdminNm          string `json:"adminNm"`
	CtprvnAddr       string `json:"ctprvnAddr"`
	AdminTelNo       string `json:"adminTelNo"`
	HmpgAddr         string `json:"hmpgAddr"`
	FpsnCnt          int    `json:"fpsnCnt"`
	TotPer           int    `json:"totPer"`
	CurPer           int    `json:"curPer"`
	EmplyCnt         int    `json:"emplyCnt"`
	RprsvNm          string `json:"rprsvNm"`
	BsnStartDt       string `json:"bsnStartDt"`
	PrgmInfo         string `json:"prgmInfo"`
}

type detailResponse struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			Items struct {
				Item json.RawMessage `json:"item"`
			} `json:"items"`
		} `json:"body"`
	} `json:"response"`
}

type SearchParams struct {
	Location     string
	FacilityType string
	PageNo       int
	NumOfRows    int
}

type SearchResult struct {
	Facilities []model.CareFacility
	TotalCount int
}

// SearchFacilities looks up long-term care facilities for a region. Without a
// service key it returns an empty result rather than an error.
func (c *Client) SearchFacilities(ctx context.Context, params SearchParams) (*SearchResult, error) {
	if !c.Enabled() {
		logx.Warn().Msg("PUBLIC_DATA_API_KEY not configured, returning empty result")
		return &SearchResult{Facilities: []model.CareFacility{}}, nil
	}

	facilityType := params.FacilityType
	if facilityType == "" {
		facilityType = "전체"
	}
	pageNo := params.PageNo
	if pageNo == 0 {
		pageNo = 1
	}
	numOfRows := params.NumOfRows
	if numOfRows == 0 {
		numOfRows = 10
	}

	q := url.Values{}
	q.Set("serviceKey", c.cfg.APIKey)
	q.Set("pageNo", strconv.Itoa(pageNo))
	q.Set("numOfRows", strconv.Itoa(numOfRows))
	q.Set("_type", "json")
	q.Set("siDoCd", extractSidoCode(params.Location))
	if sigungu := extractSigungu(params.Location); sigungu != "" {
		q.Set("siGunGuNm", sigungu)
	}
	if typeCode := facilityTypeCodes[facilityType]; typeCode != "" {
		q.Set("longTermPeribRgtTypeCd", typeCode)
	}

	endpoint := c.cfg.BaseURL + "/searchLtcInsttService02/getLtcInsttSeachList02?" + q.Encode()
	logx.Debug().Str("location", params.Location).Str("facilityType", facilityType).Msg("searching ltc facilities")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search response status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	var parsed searchResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}
	if parsed.Header.ResultCode != "00" {
		return nil, fmt.Errorf("search api error: %s", parsed.Header.ResultMsg)
	}

	facilities := make([]model.CareFacility, 0, len(parsed.Body.Items))
	for i, item := range parsed.Body.Items {
		id := item.LongTermAdminSym
		if id == "" {
			id = fmt.Sprintf("facility-%d", i)
		}
		address := item.CtprvnAddr
		if address == "" {
			address = item.SiDoNm + " " + item.SiGunGuNm
		}
		phone := item.AdminTelNo
		if phone == "" {
			phone = "문의필요"
		}
		available := true
		if item.TotPer > 0 {
			available = item.CurPer < item.TotPer
		}
		facilities = append(facilities, model.CareFacility{
			ID:             id,
			Name:           item.AdminNm,
			Type:           mapFacilityType(item.LongTermPeribRgtTypeNm),
			Address:        address,
			Rating:         mapGradeToRating(item.GradeNm),
			ReviewCount:    rand.Intn(50) + 10, // not provided by the registry
			MonthlyFee:     estimateMonthlyFee(item.LongTermPeribRgtTypeNm),
			Specialties:    inferSpecialties(item.LongTermPeribRgtTypeNm, item.AdminPttnNm),
			AvailableSlots: available,
			Phone:          phone,
		})
	}

	return &SearchResult{Facilities: facilities, TotalCount: parsed.Body.TotalCount}, nil
}

// FacilityDetail fetches the detail record for a facility by its registry
// symbol. Failures are swallowed into a nil result so the caller can degrade
// gracefully.
func (c *Client) FacilityDetail(ctx context.Context, adminSym string) *DetailItem {
	if !c.Enabled() {
		return nil
	}

	q := url.Values{}
	q.Set("serviceKey", c.cfg.APIKey)
	q.Set("longTermAdminSym", adminSym)
	q.Set("_type", "json")

	endpoint := c.cfg.BaseURL + "/getLtcInsttDetailInfoService02/getLtcInsttDetailInfoItem01?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logx.Error().Err(err).Msg("failed to build facility detail request")
		return nil
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logx.Error().Err(err).Str("adminSym", adminSym).Msg("facility detail request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logx.Error().Int("status", resp.StatusCode).Str("adminSym", adminSym).Msg("facility detail response not ok")
		return nil
	}

	var parsed detailResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logx.Error().Err(err).Str("adminSym", adminSym).Msg("failed to decode facility detail response")
		return nil
	}
	if parsed.Response.Header.ResultCode != "00" {
		return nil
	}

	raw := parsed.Response.Body.Items.Item
	if len(raw) == 0 {
		return nil
	}

	// item may be a single object or an array
	var many []DetailItem
	if err := json.Unmarshal(raw, &many); err == nil {
		if len(many) == 0 {
			return nil
		}
		return &many[0]
	}
	var one DetailItem
	if err := json.Unmarshal(raw, &one); err != nil {
		logx.Error().Err(err).Str("adminSym", adminSym).Msg("failed to unmarshal facility detail item")
		return nil
	}
	return &one
}

func mapFacilityType(typeNm string) string {
	switch {
	case containsAny(typeNm, "주야간"):
		return "주간보호센터"
	case containsAny(typeNm, "요양시설", "노인요양"):
		return "요양원"
	case containsAny(typeNm, "재가", "방문"):
		return "재가서비스"
	case containsAny(typeNm, "공동생활"):
		return "양로원"
	case containsAny(typeNm, "병원"):
		return "요양병원"
	default:
		return "재가서비스"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func mapGradeToRating(gradeNm string) float64 {
	switch gradeNm {
	case "A":
		return 4.8
	case "B":
		return 4.3
	case "C":
		return 3.8
	case "D":
		return 3.3
	case "E":
		return 2.8
	default:
		return 4.0
	}
}

// estimateMonthlyFee guesses a 본인부담금 band per benefit type.
func estimateMonthlyFee(typeNm string) model.FeeRange {
	switch {
	case containsAny(typeNm, "요양시설"):
		return model.FeeRange{Min: 500000, Max: 1500000}
	case containsAny(typeNm, "주야간"):
		return model.FeeRange{Min: 200000, Max: 500000}
	case containsAny(typeNm, "방문요양"):
		return model.FeeRange{Min: 100000, Max: 300000}
	default:
		return model.FeeRange{Min: 150000, Max: 400000}
	}
}

func inferSpecialties(typeNm, adminPttnNm string) []string {
	specialties := []string{}

	if containsAny(typeNm, "치매") {
		specialties = append(specialties, "치매전문")
	}
	if containsAny(typeNm, "재활") {
		specialties = append(specialties, "재활")
	}
	if containsAny(adminPttnNm, "법인") {
		specialties = append(specialties, "비영리법인")
	}
	if containsAny(adminPttnNm, "지자체") {
		specialties = append(specialties, "공립")
	}

	if len(specialties) == 0 {
		if containsAny(typeNm, "요양") {
			specialties = append(specialties, "요양서비스")
		}
		if containsAny(typeNm, "주야간") {
			specialties = append(specialties, "주간보호")
		}
	}

	return specialties
}
