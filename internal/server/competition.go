package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
)

func (s *Server) CreateCompetition(c *gin.Context) {
	var req ledgerdomain.CreateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ledgerSvc.CreateCompetition(c.Request.Context(), tenantID(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCompetitions(c *gin.Context) {
	var query ledgerListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ledgerSvc.ListCompetitions(c.Request.Context(), tenantID(c), query.filter())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateCompetition(c *gin.Context) {
	var req ledgerdomain.UpdateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.ledgerSvc.UpdateCompetition(c.Request.Context(), tenantID(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteCompetition(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.ledgerSvc.DeleteCompetition(c.Request.Context(), tenantID(c), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) GetCompetitionStats(c *gin.Context) {
	var query ledgerListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.financeSvc.CompetitionStats(c.Request.Context(), tenantID(c), query.filter())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
