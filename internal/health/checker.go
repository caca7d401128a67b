package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Checker reports on the one upstream this service has: the catalog/search
// backend.
type Checker struct {
	backendURL string
	sessions   interface{ Count() int }
	logger     *logrus.Logger
}

func NewChecker(backendURL string, sessions interface{ Count() int }, logger *logrus.Logger) *Checker {
	return &Checker{
		backendURL: backendURL,
		sessions:   sessions,
		logger:     logger,
	}
}

// ServiceHealth represents the health status of a service
type ServiceHealth struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	ResponseTime int    `json:"response_time_ms"`
	Error        string `json:"error,omitempty"`
	LastChecked  string `json:"last_checked"`
}

// OverallHealth represents the overall system health
type OverallHealth struct {
	Status   string          `json:"status"`
	Services []ServiceHealth `json:"services"`
	Sessions int             `json:"active_sessions"`
	Uptime   string          `json:"uptime"`
}

// CheckBackend probes the catalog backend's product listing.
func (h *Checker) CheckBackend() ServiceHealth {
	start := time.Now()

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(h.backendURL + "/products/")

	responseTime := int(time.Since(start).Milliseconds())
	status := "healthy"
	errorMsg := ""

	if err != nil {
		status = "unhealthy"
		errorMsg = err.Error()
	} else {
		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			status = "unhealthy"
			errorMsg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
	}

	if status != "healthy" {
		h.logger.WithError(err).Error("Catalog backend health check failed")
	}

	return ServiceHealth{
		Name:         "catalog-backend",
		Status:       status,
		ResponseTime: responseTime,
		Error:        errorMsg,
		LastChecked:  time.Now().Format(time.RFC3339),
	}
}

// CheckAll aggregates the upstream checks into one report.
func (h *Checker) CheckAll() OverallHealth {
	services := []ServiceHealth{
		h.CheckBackend(),
	}

	overallStatus := "healthy"
	for _, service := range services {
		if service.Status == "unhealthy" {
			// The storefront still serves pages when the backend is down,
			// so a dead upstream degrades rather than kills us.
			overallStatus = "degraded"
			break
		}
	}

	sessions := 0
	if h.sessions != nil {
		sessions = h.sessions.Count()
	}

	return OverallHealth{
		Status:   overallStatus,
		Services: services,
		Sessions: sessions,
		Uptime:   h.getUptime(),
	}
}

var startTime = time.Now()

func (h *Checker) getUptime() string {
	return time.Since(startTime).String()
}
