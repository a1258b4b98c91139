package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	healthdomain "github.com/equiprofile/equiprofile/internal/health/domain"
)

func (s *Server) CreateHealthRecord(c *gin.Context) {
	var req healthdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.healthSvc.Create(c.Request.Context(), tenantID(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListHealthRecords(c *gin.Context) {
	var query struct {
		HorseID    string `form:"horse_id"`
		StartDate  string `form:"start_date"`
		EndDate    string `form:"end_date"`
		RecordType string `form:"record_type"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.healthSvc.List(c.Request.Context(), tenantID(c), healthdomain.ListFilter{
		HorseID:    strings.TrimSpace(query.HorseID),
		StartDate:  strings.TrimSpace(query.StartDate),
		EndDate:    strings.TrimSpace(query.EndDate),
		RecordType: strings.TrimSpace(query.RecordType),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateHealthRecord(c *gin.Context) {
	var req healthdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.healthSvc.Update(c.Request.Context(), tenantID(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteHealthRecord(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.healthSvc.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func isHealthValidationError(err error) bool {
	switch {
	case errors.Is(err, healthdomain.ErrInvalidID),
		errors.Is(err, healthdomain.ErrInvalidHorse),
		errors.Is(err, healthdomain.ErrInvalidDate),
		errors.Is(err, healthdomain.ErrInvalidType),
		errors.Is(err, healthdomain.ErrInvalidAmount):
		return true
	default:
		return false
	}
}
