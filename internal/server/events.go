package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/equiprofile/equiprofile/internal/realtime"
	"github.com/gin-gonic/gin"
)

var streamableModules = map[string]struct{}{
	realtime.ModuleHorses:       {},
	realtime.ModuleIncome:       {},
	realtime.ModuleExpenses:     {},
	realtime.ModuleCompetitions: {},
	realtime.ModuleTraining:     {},
	realtime.ModuleHealth:       {},
}

// StreamModuleEvents serves one tenant's change feed for a module over SSE.
func (s *Server) StreamModuleEvents(c *gin.Context) {
	if s.liveEvents == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	module := strings.TrimSpace(c.Param("module"))
	if _, ok := streamableModules[module]; !ok {
		AbortWithError(c, newValidationError("module", "invalid_module", "invalid module"))
		return
	}

	subscription, err := s.liveEvents.Subscribe(tenantID(c), module)
	if err != nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}
	defer subscription.Close()

	writer := c.Writer
	headers := writer.Header()
	headers.Set("Content-Type", "text/event-stream")
	headers.Set("Cache-Control", "no-cache")
	headers.Set("Connection", "keep-alive")
	headers.Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	flusher, ok := writer.(http.Flusher)
	if !ok {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	if _, err := io.WriteString(writer, "retry: 2000\n\n"); err != nil {
		return
	}
	flusher.Flush()

	ctx := c.Request.Context()
	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, open := <-subscription.Events():
			if !open {
				return
			}
			if err := writeModuleEvent(writer, event); err != nil {
				return
			}
			flusher.Flush()
		case <-heartbeat.C:
			if _, err := io.WriteString(writer, ": heartbeat\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeModuleEvent(w io.Writer, event realtime.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}
