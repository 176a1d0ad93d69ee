package publicdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchXML = `<?xml version="1.0" encoding="UTF-8"?>
<response>
  <header><resultCode>00</resultCode><resultMsg>NORMAL SERVICE.</resultMsg></header>
  <body>
    <items>
      <item>
        <longTermAdminSym>11234567890</longTermAdminSym>
        <adminNm>강남주야간보호센터</adminNm>
        <longTermPeribRgtTypeNm>주야간보호</longTermPeribRgtTypeNm>
        <siDoNm>서울특별시</siDoNm>
        <siGunGuNm>강남구</siGunGuNm>
        <adminTelNo>02-555-1234</adminTelNo>
        <ctprvnAddr>서울특별시 강남구 테헤란로 123</ctprvnAddr>
        <gradeNm>A</gradeNm>
        <totPer>40</totPer>
        <curPer>35</curPer>
      </item>
      <item>
        <longTermAdminSym>11234567891</longTermAdminSym>
        <adminNm>서초노인요양원</adminNm>
        <longTermPeribRgtTypeNm>노인요양시설</longTermPeribRgtTypeNm>
        <siDoNm>서울특별시</siDoNm>
        <siGunGuNm>서초구</siGunGuNm>
        <totPer>30</totPer>
        <curPer>30</curPer>
      </item>
    </items>
    <numOfRows>10</numOfRows>
    <pageNo>1</pageNo>
    <totalCount>127</totalCount>
  </body>
</response>`

func newSearchClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: 5})
}

func TestSearchFacilitiesWithoutKey(t *testing.T) {
	c := NewClient(Config{Timeout: 5})

	result, err := c.SearchFacilities(context.Background(), SearchParams{Location: "서울시 강남구"})
	require.NoError(t, err)
	assert.Empty(t, result.Facilities)
	assert.False(t, c.Enabled())
}

func TestSearchFacilitiesParsesResponse(t *testing.T) {
	var gotQuery map[string]string
	c := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"serviceKey":             r.URL.Query().Get("serviceKey"),
			"siDoCd":                 r.URL.Query().Get("siDoCd"),
			"siGunGuNm":              r.URL.Query().Get("siGunGuNm"),
			"longTermPeribRgtTypeCd": r.URL.Query().Get("longTermPeribRgtTypeCd"),
		}
		w.Write([]byte(searchXML))
	})

	result, err := c.SearchFacilities(context.Background(), SearchParams{
		Location:     "서울시 강남구",
		FacilityType: "주간보호센터",
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotQuery["serviceKey"])
	assert.Equal(t, "11", gotQuery["siDoCd"])
	assert.Equal(t, "강남구", gotQuery["siGunGuNm"])
	assert.Equal(t, "3", gotQuery["longTermPeribRgtTypeCd"])

	assert.Equal(t, 127, result.TotalCount)
	require.Len(t, result.Facilities, 2)

	first := result.Facilities[0]
	assert.Equal(t, "11234567890", first.ID)
	assert.Equal(t, "강남주야간보호센터", first.Name)
	assert.Equal(t, "주간보호센터", first.Type)
	assert.Equal(t, 4.8, first.Rating) // 평가등급 A
	assert.True(t, first.AvailableSlots)
	assert.Equal(t, "02-555-1234", first.Phone)

	second := result.Facilities[1]
	assert.Equal(t, "요양원", second.Type)
	assert.Equal(t, 4.0, second.Rating) // 등급 미기재
	assert.False(t, second.AvailableSlots)
	assert.Equal(t, "문의필요", second.Phone)
	assert.Equal(t, "서울특별시 서초구", second.Address)
}

func TestSearchFacilitiesAPIError(t *testing.T) {
	c := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<response><header><resultCode>22</resultCode><resultMsg>LIMITED NUMBER OF SERVICE REQUESTS EXCEEDS ERROR.</resultMsg></header></response>`))
	})

	_, err := c.SearchFacilities(context.Background(), SearchParams{Location: "서울"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LIMITED NUMBER")
}

func TestSearchFacilitiesHTTPError(t *testing.T) {
	c := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.SearchFacilities(context.Background(), SearchParams{Location: "서울"})
	require.Error(t, err)
}

func TestFacilityDetailSingleObject(t *testing.T) {
	c := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "11234567890", r.URL.Query().Get("longTermAdminSym"))
		w.Write([]byte(`{"response":{"header":{"resultCode":"00"},"body":{"items":{"item":{"longTermAdminSym":"11234567890","adminNm":"강남주야간보호센터","totPer":40,"curPer":35,"prgmInfo":"물리치료, 인지활동"}}}}}`))
	})

	detail := c.FacilityDetail(context.Background(), "11234567890")
	require.NotNil(t, detail)
	assert.Equal(t, "강남주야간보호센터", detail.AdminNm)
	assert.Equal(t, 40, detail.TotPer)
	assert.Equal(t, "물리치료, 인지활동", detail.PrgmInfo)
}

func TestFacilityDetailArrayItem(t *testing.T) {
	c := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"header":{"resultCode":"00"},"body":{"items":{"item":[{"adminNm":"첫번째시설"},{"adminNm":"두번째시설"}]}}}}`))
	})

	detail := c.FacilityDetail(context.Background(), "11234567890")
	require.NotNil(t, detail)
	assert.Equal(t, "첫번째시설", detail.AdminNm)
}

func TestFacilityDetailFailuresReturnNil(t *testing.T) {
	t.Run("without key", func(t *testing.T) {
		c := NewClient(Config{Timeout: 5})
		assert.Nil(t, c.FacilityDetail(context.Background(), "123"))
	})

	t.Run("api error code", func(t *testing.T) {
		c := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"response":{"header":{"resultCode":"99"},"body":{"items":{}}}}`))
		})
		assert.Nil(t, c.FacilityDetail(context.Background(), "123"))
	})

	t.Run("http error", func(t *testing.T) {
		c := newSearchClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		assert.Nil(t, c.FacilityDetail(context.Background(), "123"))
	})
}

func TestExtractSidoCode(t *testing.T) {
	assert.Equal(t, "11", extractSidoCode("서울시 강남구"))
	assert.Equal(t, "26", extractSidoCode("부산광역시 해운대구"))
	assert.Equal(t, "41", extractSidoCode("경기도 성남시 분당구"))
	assert.Equal(t, "11", extractSidoCode("알 수 없는 곳"))
}

func TestExtractSigungu(t *testing.T) {
	assert.Equal(t, "강남구", extractSigungu("서울시 강남구"))
	assert.Equal(t, "해운대구", extractSigungu("부산시 해운대구"))
	assert.Equal(t, "", extractSigungu("서울시"))
	assert.Equal(t, "", extractSigungu("somewhere"))
}

func TestMapFacilityType(t *testing.T) {
	assert.Equal(t, "주간보호센터", mapFacilityType("주야간보호"))
	assert.Equal(t, "요양원", mapFacilityType("노인요양시설"))
	assert.Equal(t, "재가서비스", mapFacilityType("방문요양"))
	assert.Equal(t, "양로원", mapFacilityType("공동생활가정"))
	assert.Equal(t, "요양병원", mapFacilityType("요양병원"))
	assert.Equal(t, "재가서비스", mapFacilityType("기타"))
}
