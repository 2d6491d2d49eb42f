package dto

import (
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
)

type ErrorResponse struct {
	Error   bool                   `json:"error"`
	Message string                 `json:"message"`
	Code    string                 `json:"code,omitempty"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PaginatedResponse is the list envelope shared by every collection endpoint.
type PaginatedResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    []T    `json:"data"`
	listquery.Page
}

func NewPaginated[T any](data []T, page listquery.Page, message string) PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PaginatedResponse[T]{Success: true, Message: message, Data: data, Page: page}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	Cache     string `json:"cache"`
}

type DBStatusResponse struct {
	Connected      bool   `json:"connected"`
	Status         string `json:"status"`
	ResponseTimeMs int64  `json:"response_time_ms"`
	Influencers    int64  `json:"influencers"`
}
