package dto

import "time"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

// HealthResponse cuerpo de /health.
type HealthResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
}
