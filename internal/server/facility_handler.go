package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
	"github.com/yonghwan1106/ai-carebridge/internal/gateway/publicdata"
	"github.com/yonghwan1106/ai-carebridge/internal/mockdata"
	logx "github.com/yonghwan1106/ai-carebridge/pkg/logger"
)

type facilitySearchRequest struct {
	Location     string `json:"location"`
	FacilityType string `json:"facilityType"`
	Query        string `json:"query"`
	FacilityID   string `json:"facilityId"`
	PageNo       int    `json:"pageNo"`
	NumOfRows    int    `json:"numOfRows"`
}

func (s *Server) handleFacilitiesPost(c *gin.Context) {
	var req facilitySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다: " + err.Error()})
		return
	}

	// detail lookup by registry symbol
	if req.FacilityID != "" {
		detail := s.publicData.FacilityDetail(c.Request.Context(), req.FacilityID)
		if detail == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "시설을 찾을 수 없습니다."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"detail": detail})
		return
	}

	location := req.Location
	if location == "" {
		location = "서울"
	}
	facilityType := req.FacilityType
	if facilityType == "" {
		facilityType = "전체"
	}
	numOfRows := req.NumOfRows
	if numOfRows == 0 {
		numOfRows = 20
	}

	s.searchFacilities(c, location, facilityType, req.Query, req.PageNo, numOfRows)
}

func (s *Server) handleFacilitiesGet(c *gin.Context) {
	if facilityID := c.Query("id"); facilityID != "" {
		detail := s.publicData.FacilityDetail(c.Request.Context(), facilityID)
		if detail == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "시설을 찾을 수 없습니다."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"detail": detail})
		return
	}

	location := c.DefaultQuery("location", "서울")
	facilityType := c.DefaultQuery("type", "전체")
	pageNo, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	numOfRows, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	s.searchFacilities(c, location, facilityType, "", pageNo, numOfRows)
}

// searchFacilities tries the registry first and silently falls back to the
// demo catalog when the lookup fails or comes back empty.
func (s *Server) searchFacilities(c *gin.Context, location, facilityType, query string, pageNo, numOfRows int) {
	result, err := s.publicData.SearchFacilities(c.Request.Context(), publicdata.SearchParams{
		Location:     location,
		FacilityType: facilityType,
		PageNo:       pageNo,
		NumOfRows:    numOfRows,
	})
	if err != nil {
		logx.Warn().Err(err).Str("location", location).Msg("facility registry lookup failed, serving demo catalog")
	} else if len(result.Facilities) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"facilities": result.Facilities,
			"totalCount": result.TotalCount,
			"isRealData": true,
			"dataSource": "공공데이터포털 (국민건강보험공단)",
		})
		return
	}

	facilities := make([]model.CareFacility, 0, len(mockdata.CareFacilities))
	for _, f := range mockdata.CareFacilities {
		if facilityType != "" && facilityType != "전체" && f.Type != facilityType {
			continue
		}
		if query != "" && !strings.Contains(f.Name, query) && !strings.Contains(f.Address, query) {
			continue
		}
		facilities = append(facilities, f)
	}

	c.JSON(http.StatusOK, gin.H{
		"facilities": facilities,
		"totalCount": len(facilities),
		"isRealData": false,
		"dataSource": "샘플 데이터",
	})
}
