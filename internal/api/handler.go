// Package api exposes the deadline engine over HTTP.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/username/prazo-calc/internal/api/dto"
	"github.com/username/prazo-calc/internal/calendar"
	"github.com/username/prazo-calc/internal/deadline"
	"github.com/username/prazo-calc/internal/report"
	"go.uber.org/zap"
)

// Calculator computes a deadline
type Calculator interface {
	Calculate(ctx context.Context, req deadline.Request) (*deadline.Result, error)
}

// HolidayLister lists the holidays of a year
type HolidayLister interface {
	Holidays(ctx context.Context, year int) ([]calendar.Holiday, error)
}

// StatusProvider reports the state of the running service
type StatusProvider interface {
	GetStatus() map[string]interface{}
}

// Options hold request defaults and report settings
type Options struct {
	DefaultBusinessDays int
	DefaultRecess       bool
	Office              string
	Credit              string
	Status              StatusProvider
}

// Handler serves the HTTP API
type Handler struct {
	calc     Calculator
	holidays HolidayLister
	opts     Options
	logger   *zap.Logger

	calculations atomic.Int64
	failures     atomic.Int64
}

// NewHandler creates a new Handler
func NewHandler(calc Calculator, holidays HolidayLister, opts Options, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		calc:     calc,
		holidays: holidays,
		opts:     opts,
		logger:   logger,
	}
}

// Health handles GET /healthz
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status handles GET /status
func (h *Handler) Status(c *gin.Context) {
	var status map[string]interface{}
	if h.opts.Status != nil {
		status = h.opts.Status.GetStatus()
	}
	if status == nil {
		status = map[string]interface{}{}
	}
	status["calculations_total"] = h.calculations.Load()
	status["calculation_failures_total"] = h.failures.Load()

	c.JSON(http.StatusOK, status)
}

// Calculate handles POST /api/v1/prazos
func (h *Handler) Calculate(c *gin.Context) {
	_, res, ok := h.calculate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res)
}

// CalculatePDF handles POST /api/v1/prazos/pdf
func (h *Handler) CalculatePDF(c *gin.Context) {
	body, res, ok := h.calculate(c)
	if !ok {
		return
	}

	office := body.Office
	if office == "" {
		office = h.opts.Office
	}

	var buf bytes.Buffer
	err := report.WritePDF(&buf, res, report.PDFOptions{
		Office:      office,
		Credit:      h.opts.Credit,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	filename := report.FileName(office, res.DueDate)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// Holidays handles GET /api/v1/feriados/:year
func (h *Handler) Holidays(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		abortWithCode(c, http.StatusBadRequest, CodeInvalidRequest, "year must be a number")
		return
	}

	holidays, err := h.holidays.Holidays(c.Request.Context(), year)
	if err != nil {
		if !errors.Is(err, calendar.ErrYearOutOfRange) {
			err = fmt.Errorf("%w: %w", deadline.ErrHolidayOracleFailure, err)
		}
		abortWithError(c, err)
		return
	}

	resp := dto.HolidaysResponse{
		Year:     year,
		Holidays: make([]dto.HolidayResponse, 0, len(holidays)),
	}
	for _, hol := range holidays {
		resp.Holidays = append(resp.Holidays, dto.HolidayResponse{
			Date:   hol.Date.Format("2006-01-02"),
			Name:   hol.Name,
			Source: hol.Source,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// calculate binds the request body and runs the engine. On failure the
// response is already written and ok is false.
func (h *Handler) calculate(c *gin.Context) (body dto.DeadlineRequest, res *deadline.Result, ok bool) {
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithCode(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return body, nil, false
	}

	req, err := h.toRequest(body)
	if err != nil {
		abortWithError(c, err)
		return body, nil, false
	}

	h.calculations.Add(1)
	res, err = h.calc.Calculate(c.Request.Context(), req)
	if err != nil {
		h.failures.Add(1)
		h.logger.Warn("Deadline calculation failed",
			zap.String("trigger_date", req.TriggerDate.String()),
			zap.Stringer("trigger_type", req.TriggerType),
			zap.Int("business_days", req.BusinessDays),
			zap.Error(err))
		abortWithError(c, err)
		return body, nil, false
	}

	return body, res, true
}

func (h *Handler) toRequest(body dto.DeadlineRequest) (deadline.Request, error) {
	trigger, err := deadline.ParseDate(body.TriggerDate)
	if err != nil {
		return deadline.Request{}, err
	}

	triggerType, err := deadline.ParseTriggerType(body.TriggerType)
	if err != nil {
		return deadline.Request{}, err
	}

	req := deadline.Request{
		TriggerDate:   trigger,
		TriggerType:   triggerType,
		BusinessDays:  h.opts.DefaultBusinessDays,
		RecessEnabled: h.opts.DefaultRecess,
	}
	if body.BusinessDays != nil {
		req.BusinessDays = *body.BusinessDays
	}
	if body.Recess != nil {
		req.RecessEnabled = *body.Recess
	}

	return req, nil
}
