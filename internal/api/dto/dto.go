// Package dto holds the JSON shapes of the HTTP API.
package dto

import "time"

// DeadlineRequest is the body of POST /api/v1/prazos and /api/v1/prazos/pdf
type DeadlineRequest struct {
	TriggerDate  string `json:"trigger_date" binding:"required"`
	TriggerType  string `json:"trigger_type" binding:"required"`
	BusinessDays *int   `json:"business_days"`
	Recess       *bool  `json:"recess"`
	Office       string `json:"office"`
}

// HolidayResponse is one holiday of a year listing
type HolidayResponse struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// HolidaysResponse is the body of GET /api/v1/feriados/:year
type HolidaysResponse struct {
	Year     int               `json:"year"`
	Holidays []HolidayResponse `json:"holidays"`
}

// ErrorResponse is the body of every non-2xx response.
//
// Error is a stable machine-readable code, Message is meant for people.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse creates an ErrorResponse stamped with the current time
func NewErrorResponse(code, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
	}
}
