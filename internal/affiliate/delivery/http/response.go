package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"affiliate-redirect/internal/affiliate/usecase"
	"affiliate-redirect/pkg/problemdetails"

	"github.com/samber/lo"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeProblem writes an RFC 7807 Problem Details response
func writeProblem(w http.ResponseWriter, problem *problemdetails.ProblemDetail) {
	w.Header().Set("Content-Type", problemdetails.ContentType)
	w.WriteHeader(problem.Status)
	json.NewEncoder(w).Encode(problem)
}

// TrackClickResponse is returned once a click has been stored
type TrackClickResponse struct {
	Success bool `json:"success"`
}

// BreakdownResponse represents a single breakdown item with count and percentage
type BreakdownResponse struct {
	Value      string `json:"value"`
	Count      int64  `json:"count"`
	Percentage string `json:"percentage"` // "58.3%"
}

// StatsResponse holds the click summary of one product
type StatsResponse struct {
	ProductID   int64               `json:"product_id"`
	Title       string              `json:"title"`
	TotalClicks int64               `json:"total_clicks"`
	Devices     []BreakdownResponse `json:"devices"`
	Countries   []BreakdownResponse `json:"countries"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func toStatsResponse(s *usecase.StatsResult) StatsResponse {
	return StatsResponse{
		ProductID:   s.Product.ID,
		Title:       s.Product.Title,
		TotalClicks: s.TotalClicks,
		Devices:     toBreakdownResponses(s.Devices),
		Countries:   toBreakdownResponses(s.Countries),
	}
}

func toBreakdownResponses(items []usecase.BreakdownItem) []BreakdownResponse {
	return lo.Map(items, func(item usecase.BreakdownItem, _ int) BreakdownResponse {
		return BreakdownResponse{
			Value:      item.Value,
			Count:      item.Count,
			Percentage: formatPercentage(item.Percentage),
		}
	})
}

// formatPercentage formats a float percentage to "XX.X%" format
func formatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
