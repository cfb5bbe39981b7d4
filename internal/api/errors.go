package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/username/prazo-calc/internal/api/dto"
	"github.com/username/prazo-calc/internal/calendar"
	"github.com/username/prazo-calc/internal/deadline"
	"github.com/username/prazo-calc/internal/middleware"
)

// Error codes returned in dto.ErrorResponse.Error
const (
	CodeInvalidRequest        = "invalid_request"
	CodeInvalidDate           = "invalid_date"
	CodeInvalidDeadlineLength = "invalid_deadline_length"
	CodeUnknownTriggerType    = "unknown_trigger_type"
	CodeYearOutOfRange        = "year_out_of_range"
	CodeHolidayOracleFailure  = "holiday_oracle_failure"
	CodeComputationDivergence = "computation_divergence"
	CodeTimeout               = "timeout"
	CodeInternal              = "internal_error"
)

// classifyError maps an engine or calendar error to an HTTP status and code.
// Holiday source failures are reported as 502 and an expired request context as 504.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout, CodeTimeout
	case errors.Is(err, deadline.ErrInvalidDeadlineLength):
		return http.StatusBadRequest, CodeInvalidDeadlineLength
	case errors.Is(err, deadline.ErrUnknownTriggerType):
		return http.StatusBadRequest, CodeUnknownTriggerType
	case errors.Is(err, deadline.ErrInvalidDate):
		return http.StatusBadRequest, CodeInvalidDate
	case errors.Is(err, calendar.ErrYearOutOfRange):
		return http.StatusBadRequest, CodeYearOutOfRange
	case errors.Is(err, deadline.ErrHolidayOracleFailure):
		return http.StatusBadGateway, CodeHolidayOracleFailure
	case errors.Is(err, deadline.ErrComputationDivergence):
		return http.StatusInternalServerError, CodeComputationDivergence
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func abortWithError(c *gin.Context, err error) {
	status, code := classifyError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, err.Error(), middleware.GetRequestID(c)))
}

func abortWithCode(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message, middleware.GetRequestID(c)))
}
