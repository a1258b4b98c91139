package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	horsedomain "github.com/equiprofile/equiprofile/internal/horse/domain"
)

type createHorseRequest struct {
	Name        string  `json:"name"`
	Breed       string  `json:"breed"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

type updateHorseRequest struct {
	Name        *string `json:"name,omitempty"`
	Breed       *string `json:"breed,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

func (s *Server) CreateHorse(c *gin.Context) {
	var req createHorseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.horseSvc.Create(c.Request.Context(), tenantID(c), horsedomain.CreateRequest{
		Name:        strings.TrimSpace(req.Name),
		Breed:       strings.TrimSpace(req.Breed),
		DateOfBirth: trimStringPtr(req.DateOfBirth),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListHorses(c *gin.Context) {
	resp, err := s.horseSvc.List(c.Request.Context(), tenantID(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetHorseByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.horseSvc.GetByID(c.Request.Context(), tenantID(c), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateHorse(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req updateHorseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.horseSvc.Update(c.Request.Context(), tenantID(c), horsedomain.UpdateRequest{
		ID:          id,
		Name:        trimStringPtr(req.Name),
		Breed:       trimStringPtr(req.Breed),
		DateOfBirth: trimStringPtr(req.DateOfBirth),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteHorse(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.horseSvc.Delete(c.Request.Context(), tenantID(c), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func isHorseValidationError(err error) bool {
	switch {
	case errors.Is(err, horsedomain.ErrInvalidName),
		errors.Is(err, horsedomain.ErrInvalidDate),
		errors.Is(err, horsedomain.ErrInvalidID):
		return true
	default:
		return false
	}
}

func trimStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
