package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
)

// ledgerListQuery is shared by the income, expense and competition listings.
type ledgerListQuery struct {
	HorseID   string `form:"horse_id"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Category  string `form:"category"`
}

func (q ledgerListQuery) filter() ledgerdomain.ListFilter {
	return ledgerdomain.ListFilter{
		HorseID:   strings.TrimSpace(q.HorseID),
		StartDate: strings.TrimSpace(q.StartDate),
		EndDate:   strings.TrimSpace(q.EndDate),
		Category:  strings.TrimSpace(q.Category),
	}
}

func (s *Server) CreateIncome(c *gin.Context) {
	var req ledgerdomain.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ledgerSvc.CreateIncome(c.Request.Context(), tenantID(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListIncome(c *gin.Context) {
	var query ledgerListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.ledgerSvc.ListIncome(c.Request.Context(), tenantID(c), query.filter())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateIncome(c *gin.Context) {
	var req ledgerdomain.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	resp, err := s.ledgerSvc.UpdateIncome(c.Request.Context(), tenantID(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteIncome(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.ledgerSvc.DeleteIncome(c.Request.Context(), tenantID(c), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func isLedgerValidationError(err error) bool {
	switch {
	case errors.Is(err, ledgerdomain.ErrInvalidID),
		errors.Is(err, ledgerdomain.ErrInvalidHorse),
		errors.Is(err, ledgerdomain.ErrInvalidDate),
		errors.Is(err, ledgerdomain.ErrInvalidSource),
		errors.Is(err, ledgerdomain.ErrInvalidCategory),
		errors.Is(err, ledgerdomain.ErrInvalidAmount),
		errors.Is(err, ledgerdomain.ErrInvalidName):
		return true
	default:
		return false
	}
}
