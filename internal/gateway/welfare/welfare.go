// Package welfare calls the 복지로 welfare program services: the central
// ministry catalog (NationalWelfareInformationService) and the local
// government catalog (LocalGovernmentWelfareInformationService).
package welfare

import (
	"context"
	"encoding/json"
	"fmt"
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
	BaseURL string `envconfig:"WELFARE_BASE_URL" default:"http://apis.data.go.kr/B554287"`
	Timeout int    `envconfig:"WELFARE_TIMEOUT" default:"10"`
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

func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

// ServiceItem is one raw program record from either catalog.
type ServiceItem struct {
	ServID            string `json:"servId"`
	ServNm            string `json:"servNm"`
	ServDgst          string `json:"servDgst"`
	JurMnofNm         string `json:"jurMnofNm"`
	JurOrgNm          string `json:"jurOrgNm"`
	TrgterIndvdlNm    string `json:"trgterIndvdlNm"`
	SlctCritNm        string `json:"slctCritNm"`
	AlwServCn         string `json:"alwServCn"`
	ApplmetNm         string `json:"applmetNm"`
	ApplURL           string `json:"applUrl"`
	InqplCtadrList    string `json:"inqplCtadrList"`
	ServDtlLink       string `json:"servDtlLink"`
	CtpvNm            string `json:"ctpvNm"`
	SggNm             string `json:"sggNm"`
	LifeNmArray       string `json:"lifeNmArray"`
	IntrsThemaNmArray string `json:"intrsThemaNmArray"`
	LastModYmd        string `json:"lastModYmd"`
}

type serviceResponse struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			Items struct {
				Item json.RawMessage `json:"item"`
			} `json:"items"`
			NumOfRows  int `json:"numOfRows"`
			PageNo     int `json:"pageNo"`
			TotalCount int `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

// CentralParams filters the central ministry catalog.
type CentralParams struct {
	LifeNm    string
	SearchWrd string
	PageNo    int
	NumOfRows int
}

// LocalParams filters the local government catalog.
type LocalParams struct {
	CtpvNm    string
	SggNm     string
	SearchWrd string
	PageNo    int
	NumOfRows int
}

// ServiceList is a page of raw program records.
type ServiceList struct {
	Services   []ServiceItem
	TotalCount int
}

var lifeCycleCodes = map[string]string{
	"영유아": "001",
	"아동":  "002",
	"청소년": "003",
	"청년":  "004",
	"중장년": "005",
	"노년":  "006",
	"전체":  "",
}

// SearchCentral queries the nationwide welfare catalog. Without a service key
// it returns an empty page.
func (c *Client) SearchCentral(ctx context.Context, params CentralParams) (*ServiceList, error) {
	if !c.Enabled() {
		logx.Warn().Msg("PUBLIC_DATA_API_KEY not configured, returning empty welfare result")
		return &ServiceList{Services: []ServiceItem{}}, nil
	}

	pageNo := params.PageNo
	if pageNo == 0 {
		pageNo = 1
	}
	numOfRows := params.NumOfRows
	if numOfRows == 0 {
		numOfRows = 20
	}

	q := url.Values{}
	q.Set("serviceKey", c.cfg.APIKey)
	q.Set("pageNo", strconv.Itoa(pageNo))
	q.Set("numOfRows", strconv.Itoa(numOfRows))
	q.Set("_type", "json")
	if params.LifeNm != "" {
		if _, ok := lifeCycleCodes[params.LifeNm]; ok && lifeCycleCodes[params.LifeNm] != "" {
			q.Set("lifeNmArray", params.LifeNm)
		}
	}
	if params.SearchWrd != "" {
		q.Set("searchWrd", params.SearchWrd)
	}

	endpoint := c.cfg.BaseURL + "/NationalWelfareInformationService/NationalWelfareInformationServiceList?" + q.Encode()
	logx.Debug().Str("lifeNm", params.LifeNm).Str("searchWrd", params.SearchWrd).Msg("searching central welfare services")

	return c.fetchServiceList(ctx, endpoint)
}

// SearchLocal queries the per-municipality welfare catalog.
func (c *Client) SearchLocal(ctx context.Context, params LocalParams) (*ServiceList, error) {
	if !c.Enabled() {
		return &ServiceList{Services: []ServiceItem{}}, nil
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
	if params.CtpvNm != "" {
		q.Set("ctpvNm", params.CtpvNm)
	}
	if params.SggNm != "" {
		q.Set("sggNm", params.SggNm)
	}
	if params.SearchWrd != "" {
		q.Set("searchWrd", params.SearchWrd)
	}

	endpoint := c.cfg.BaseURL + "/LocalGovernmentWelfareInformationService/LcgvWelfarelist?" + q.Encode()
	logx.Debug().Str("ctpvNm", params.CtpvNm).Str("searchWrd", params.SearchWrd).Msg("searching local welfare services")

	return c.fetchServiceList(ctx, endpoint)
}

func (c *Client) fetchServiceList(ctx context.Context, endpoint string) (*ServiceList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build welfare request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("welfare request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("welfare response status %d", resp.StatusCode)
	}

	var parsed serviceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode welfare response: %w", err)
	}

	raw := parsed.Response.Body.Items.Item
	if len(raw) == 0 {
		return &ServiceList{Services: []ServiceItem{}}, nil
	}

	// item may be a single object or an array
	var services []ServiceItem
	if err := json.Unmarshal(raw, &services); err != nil {
		var one ServiceItem
		if err := json.Unmarshal(raw, &one); err != nil {
			return nil, fmt.Errorf("unmarshal welfare items: %w", err)
		}
		services = []ServiceItem{one}
	}

	total := parsed.Response.Body.TotalCount
	if total == 0 {
		total = len(services)
	}
	return &ServiceList{Services: services, TotalCount: total}, nil
}

// SearchQuery drives the combined central + local lookup.
type SearchQuery struct {
	Age         int
	Region      string
	Conditions  []string
	IncomeLevel string
}

// SearchResult is the merged, converted benefit list.
type SearchResult struct {
	Benefits   []model.WelfareBenefit
	TotalCount int
	IsRealData bool
}

// Search runs the combined lookup across both catalogs and converts the
// records into WelfareBenefit values. Gateway failures degrade to an empty
// result so callers can fall back to the demo catalog.
func (c *Client) Search(ctx context.Context, query SearchQuery) *SearchResult {
	var all []ServiceItem
	totalCount := 0
	isRealData := false

	var keywords []string
	if query.Age >= 65 {
		keywords = append(keywords, "노인", "어르신", "장기요양")
	}
	for _, cond := range query.Conditions {
		if strings.Contains(cond, "치매") {
			keywords = append(keywords, "치매")
		}
		if strings.Contains(cond, "독거") {
			keywords = append(keywords, "독거", "돌봄")
		}
	}
	if query.IncomeLevel == "low" {
		keywords = append(keywords, "기초", "저소득")
	}

	searchWrd := "노인"
	if len(keywords) > 0 {
		searchWrd = keywords[0]
	}
	lifeNm := ""
	if query.Age >= 65 {
		lifeNm = "노년"
	}

	central, err := c.SearchCentral(ctx, CentralParams{LifeNm: lifeNm, SearchWrd: searchWrd, NumOfRows: 15})
	if err != nil {
		logx.Error().Err(err).Msg("central welfare search failed")
	} else if len(central.Services) > 0 {
		all = append(all, central.Services...)
		totalCount += central.TotalCount
		isRealData = true
	}

	if query.Region != "" && err == nil {
		if sidoNm := extractSidoName(query.Region); sidoNm != "" {
			local, err := c.SearchLocal(ctx, LocalParams{CtpvNm: sidoNm, SearchWrd: "노인", NumOfRows: 10})
			if err != nil {
				logx.Error().Err(err).Msg("local welfare search failed")
			} else if len(local.Services) > 0 {
				all = append(all, local.Services...)
				totalCount += local.TotalCount
				isRealData = true
			}
		}
	}

	if len(all) > 10 {
		all = all[:10]
	}
	benefits := make([]model.WelfareBenefit, 0, len(all))
	for i, svc := range all {
		id := svc.ServID
		if id == "" {
			id = fmt.Sprintf("welfare-%d", i)
		}
		description := svc.ServDgst
		if description == "" {
			description = svc.AlwServCn
		}
		applicationURL := svc.ApplURL
		if applicationURL == "" {
			applicationURL = svc.ServDtlLink
		}
		agency := svc.JurMnofNm
		if agency == "" {
			agency = svc.JurOrgNm
		}
		if agency == "" {
			agency = "관할 지자체"
		}
		phone := ""
		if svc.InqplCtadrList != "" {
			phone = strings.TrimSpace(strings.SplitN(svc.InqplCtadrList, ",", 2)[0])
		}
		benefits = append(benefits, model.WelfareBenefit{
			ID:             id,
			Name:           svc.ServNm,
			Category:       inferCategory(svc),
			Description:    description,
			Eligibility:    parseEligibility(svc.TrgterIndvdlNm, svc.SlctCritNm),
			MonthlyAmount:  estimateAmount(svc),
			ApplicationURL: applicationURL,
			Agency:         agency,
			Phone:          phone,
		})
	}

	return &SearchResult{Benefits: benefits, TotalCount: totalCount, IsRealData: isRealData}
}

var sidoNames = []struct {
	Short string
	Full  string
}{
	{"서울", "서울특별시"},
	{"부산", "부산광역시"},
	{"대구", "대구광역시"},
	{"인천", "인천광역시"},
	{"광주", "광주광역시"},
	{"대전", "대전광역시"},
	{"울산", "울산광역시"},
	{"세종", "세종특별자치시"},
	{"경기", "경기도"},
	{"강원", "강원특별자치도"},
	{"충북", "충청북도"},
	{"충남", "충청남도"},
	{"전북", "전북특별자치도"},
	{"전남", "전라남도"},
	{"경북", "경상북도"},
	{"경남", "경상남도"},
	{"제주", "제주특별자치도"},
}

// extractSidoName expands a short province name into the official form the
// local catalog expects.
func extractSidoName(region string) string {
	for _, s := range sidoNames {
		if strings.Contains(region, s.Short) {
			return s.Full
		}
	}
	return ""
}

func inferCategory(svc ServiceItem) string {
	text := strings.ToLower(svc.ServNm + " " + svc.ServDgst + " " + svc.IntrsThemaNmArray)

	switch {
	case containsAny(text, "돌봄", "요양", "간병"):
		return "돌봄서비스"
	case containsAny(text, "의료", "건강", "병원", "치료"):
		return "의료지원"
	case containsAny(text, "주거", "주택", "임대"):
		return "주거지원"
	case containsAny(text, "교통", "이동"):
		return "교통지원"
	case containsAny(text, "급여", "수당", "지원금", "연금"):
		return "소득지원"
	default:
		return "기타"
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

var eligibilitySplit = regexp.MustCompile(`[,;·]`)

// parseEligibility turns "노인, 장애인, 저소득층" style text into at most
// three criteria, padding with a truncated selection rule when short.
func parseEligibility(trgterIndvdlNm, slctCritNm string) []string {
	eligibility := []string{}

	if trgterIndvdlNm != "" {
		for _, t := range eligibilitySplit.Split(trgterIndvdlNm, -1) {
			if t = strings.TrimSpace(t); t != "" {
				eligibility = append(eligibility, t)
			}
		}
	}

	if slctCritNm != "" && len(eligibility) < 3 {
		crit := slctCritNm
		if runes := []rune(crit); len(runes) > 50 {
			crit = string(runes[:50]) + "..."
		}
		eligibility = append(eligibility, crit)
	}

	if len(eligibility) > 3 {
		eligibility = eligibility[:3]
	}
	return eligibility
}

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*)\s*원`),
	regexp.MustCompile(`월\s*(\d+)\s*만\s*원`),
	regexp.MustCompile(`(\d+)\s*만\s*원`),
}

// estimateAmount digs a monthly amount out of free text, falling back to
// per-program defaults.
func estimateAmount(svc ServiceItem) int {
	text := svc.ServNm + " " + svc.AlwServCn

	for _, pattern := range amountPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		numStr := strings.ReplaceAll(match[1], ",", "")
		num, err := strconv.Atoi(numStr)
		if err != nil {
			continue
		}
		if strings.Contains(text, "만원") || strings.Contains(text, "만 원") {
			return num * 10000
		}
		if num > 10000 {
			return num
		}
	}

	switch {
	case strings.Contains(text, "기초연금"):
		return 334000
	case strings.Contains(text, "장기요양"):
		return 500000
	case strings.Contains(text, "돌봄"):
		return 300000
	}
	return 0
}
