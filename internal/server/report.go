package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	reportdomain "github.com/equiprofile/equiprofile/internal/report/domain"
)

func (s *Server) GenerateReport(c *gin.Context) {
	var desc reportdomain.Descriptor
	if err := c.ShouldBindJSON(&desc); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	artifact, err := s.reportSvc.Generate(c.Request.Context(), tenantID(c), desc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Data(http.StatusOK, artifact.MimeType, artifact.Bytes)
}

func (s *Server) ExportReportCSV(c *gin.Context) {
	var desc reportdomain.Descriptor
	if err := c.ShouldBindJSON(&desc); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	export, err := s.reportSvc.ExportCSV(c.Request.Context(), tenantID(c), desc)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": export})
}

func (s *Server) ListReportHistory(c *gin.Context) {
	resp, err := s.reportSvc.History(c.Request.Context(), tenantID(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isReportValidationError(err error) bool {
	switch {
	case errors.Is(err, reportdomain.ErrInvalidType),
		errors.Is(err, reportdomain.ErrInvalidDate),
		errors.Is(err, reportdomain.ErrInvalidHorse):
		return true
	default:
		return false
	}
}
