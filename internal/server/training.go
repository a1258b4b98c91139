package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	trainingdomain "github.com/equiprofile/equiprofile/internal/training/domain"
)

func (s *Server) CreateTrainingSession(c *gin.Context) {
	var req trainingdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.trainingSvc.Create(c.Request.Context(), tenantID(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListTrainingSessions(c *gin.Context) {
	var query struct {
		HorseID   string `form:"horse_id"`
		StartDate string `form:"start_date"`
		EndDate   string `form:"end_date"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.trainingSvc.List(c.Request.Context(), tenantID(c), trainingdomain.ListFilter{
		HorseID:   strings.TrimSpace(query.HorseID),
		StartDate: strings.TrimSpace(query.StartDate),
		EndDate:   strings.TrimSpace(query.EndDate),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateTrainingSession(c *gin.Context) {
	var req trainingdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.trainingSvc.Update(c.Request.Context(), tenantID(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteTrainingSession(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.trainingSvc.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func isTrainingValidationError(err error) bool {
	switch {
	case errors.Is(err, trainingdomain.ErrInvalidID),
		errors.Is(err, trainingdomain.ErrInvalidHorse),
		errors.Is(err, trainingdomain.ErrInvalidDate),
		errors.Is(err, trainingdomain.ErrInvalidDuration):
		return true
	default:
		return false
	}
}
