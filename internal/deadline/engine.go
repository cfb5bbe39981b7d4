package deadline

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
)

const (
	// DefaultIterationFactor bounds the counter to this many visited days per
	// requested business day.
	DefaultIterationFactor = 40

	// minIterations is the floor of every search bound. It spans the 32-day
	// recess plus any realistic run of adjacent holidays and weekends.
	minIterations = 500

	// MaxBusinessDays is the longest deadline the engine accepts. The
	// longest terms in procedural law are counted in years, not decades.
	MaxBusinessDays = 3650
)

// Options configure an Engine.
type Options struct {
	// IterationFactor multiplies the requested business days to bound the
	// counter. Zero means DefaultIterationFactor.
	IterationFactor int
}

// Engine computes procedural deadlines against a holiday oracle.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	oracle          HolidayOracle
	iterationFactor int
	logger          *zap.Logger
}

// NewEngine creates a new Engine
func NewEngine(oracle HolidayOracle, opts Options, logger *zap.Logger) *Engine {
	if opts.IterationFactor <= 0 {
		opts.IterationFactor = DefaultIterationFactor
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		oracle:          oracle,
		iterationFactor: opts.IterationFactor,
		logger:          logger,
	}
}

// Classify classifies date using the engine's oracle
func (e *Engine) Classify(ctx context.Context, date Date, recessEnabled bool) (Classification, error) {
	return Classify(ctx, date, e.oracle, recessEnabled)
}

// NextBusinessDay returns the first business day strictly after date.
func (e *Engine) NextBusinessDay(ctx context.Context, date Date, recessEnabled bool) (Date, error) {
	candidate := date
	for i := 0; i < minIterations; i++ {
		if err := ctx.Err(); err != nil {
			return Date{}, fmt.Errorf("next business day after %s: %w", date, err)
		}
		candidate = candidate.AddDays(1)

		c, err := e.Classify(ctx, candidate, recessEnabled)
		if err != nil {
			return Date{}, err
		}
		if c.Counts() {
			return candidate, nil
		}
	}

	return Date{}, fmt.Errorf("%w: no business day within %d days after %s",
		ErrComputationDivergence, minIterations, date)
}

// ResolveMilestones derives publication and count start from the trigger date.
// Publication is the business day after availability; counting starts on the
// business day after publication.
func (e *Engine) ResolveMilestones(ctx context.Context, trigger Date, triggerType TriggerType, recessEnabled bool) (Milestones, error) {
	var m Milestones

	switch triggerType {
	case Availability:
		availability := trigger
		publication, err := e.NextBusinessDay(ctx, availability, recessEnabled)
		if err != nil {
			return Milestones{}, fmt.Errorf("failed to resolve publication date: %w", err)
		}
		m.Availability = &availability
		m.Publication = publication
	case CertifiedPublication:
		m.Publication = trigger
	default:
		return Milestones{}, fmt.Errorf("%w: %d", ErrUnknownTriggerType, int(triggerType))
	}

	start, err := e.NextBusinessDay(ctx, m.Publication, recessEnabled)
	if err != nil {
		return Milestones{}, fmt.Errorf("failed to resolve count start date: %w", err)
	}
	m.CountStart = start

	return m, nil
}

// Count walks forward from start, inclusive, until businessDays business days
// have been consumed. It returns the due date and one ledger entry per visited day.
func (e *Engine) Count(ctx context.Context, start Date, businessDays int, recessEnabled bool) (Date, []Entry, error) {
	if err := validateLength(businessDays); err != nil {
		return Date{}, nil, err
	}

	limit := e.iterationBound(businessDays)
	ledger := make([]Entry, 0, ledgerCapacity(businessDays))
	counted := 0
	current := start

	for i := 0; i < limit; i++ {
		if err := ctx.Err(); err != nil {
			return Date{}, nil, fmt.Errorf("count from %s: %w", start, err)
		}

		c, err := e.Classify(ctx, current, recessEnabled)
		if err != nil {
			return Date{}, nil, err
		}

		entry := Entry{
			Date:           current,
			Weekday:        WeekdayName(current.Weekday()),
			Classification: c,
		}
		if c.Counts() {
			counted++
			entry.Count = counted
		}
		ledger = append(ledger, entry)

		if counted == businessDays {
			return current, ledger, nil
		}
		current = current.AddDays(1)
	}

	return Date{}, nil, fmt.Errorf("%w: counted %d of %d business days in %d days from %s",
		ErrComputationDivergence, counted, businessDays, limit, start)
}

// Calculate runs a full calculation: milestones, then the count.
// No partial result is returned on error.
func (e *Engine) Calculate(ctx context.Context, req Request) (*Result, error) {
	if err := validateLength(req.BusinessDays); err != nil {
		return nil, err
	}
	if !req.TriggerType.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTriggerType, int(req.TriggerType))
	}

	milestones, err := e.ResolveMilestones(ctx, req.TriggerDate, req.TriggerType, req.RecessEnabled)
	if err != nil {
		return nil, err
	}

	due, ledger, err := e.Count(ctx, milestones.CountStart, req.BusinessDays, req.RecessEnabled)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("Deadline calculated",
		zap.Stringer("trigger_date", req.TriggerDate),
		zap.Stringer("trigger_type", req.TriggerType),
		zap.Int("business_days", req.BusinessDays),
		zap.Bool("recess", req.RecessEnabled),
		zap.Stringer("count_start", milestones.CountStart),
		zap.Stringer("due_date", due),
		zap.Int("ledger_days", len(ledger)))

	return &Result{
		Milestones:    milestones,
		TriggerType:   req.TriggerType,
		BusinessDays:  req.BusinessDays,
		RecessEnabled: req.RecessEnabled,
		DueDate:       due,
		Ledger:        ledger,
	}, nil
}

func validateLength(businessDays int) error {
	if businessDays < 1 || businessDays > MaxBusinessDays {
		return fmt.Errorf("%w: got %d, want 1 to %d", ErrInvalidDeadlineLength, businessDays, MaxBusinessDays)
	}
	return nil
}

// ledgerCapacity estimates the visited days for a count of businessDays,
// capped so the preallocation never outgrows a realistic ledger.
func ledgerCapacity(businessDays int) int {
	capacity := businessDays*7/5 + 1
	if capacity > minIterations {
		return minIterations
	}
	return capacity
}

func (e *Engine) iterationBound(businessDays int) int {
	if businessDays > math.MaxInt/e.iterationFactor {
		return math.MaxInt
	}
	limit := businessDays * e.iterationFactor
	if limit < minIterations {
		return minIterations
	}
	return limit
}
