package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetFinanceStats(c *gin.Context) {
	var query ledgerListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.financeSvc.FinanceStats(c.Request.Context(), tenantID(c), query.filter())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetHorseActivity(c *gin.Context) {
	resp, err := s.financeSvc.ActivityByHorse(c.Request.Context(), tenantID(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
