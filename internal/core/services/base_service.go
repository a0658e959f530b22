package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/middleware"
	"github.com/SscSPs/pos_backend/internal/platform/idgen"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// BaseService provides common functionality for all services
type BaseService struct {
	IDs   idgen.Generator
	Clock func() time.Time
}

// ServiceOption is a functional option for configuring the shared service dependencies
type ServiceOption func(*BaseService)

// WithIDGenerator replaces the default UUID based identifier generator
func WithIDGenerator(gen idgen.Generator) ServiceOption {
	return func(s *BaseService) {
		s.IDs = gen
	}
}

// WithClock replaces time.Now as the source of server-assigned timestamps
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{
		IDs:   idgen.New(),
		Clock: time.Now,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// now returns the current time in UTC at the precision both stores keep.
func (s *BaseService) now() time.Time {
	return s.Clock().UTC().Truncate(time.Microsecond)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func auditFields(actorID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actorID,
		LastUpdatedAt: now,
		LastUpdatedBy: actorID,
	}
}

// requestValidator checks the same `binding` tags gin checks on request DTOs.
var requestValidator = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

func validateRequest(req any) error {
	if err := requestValidator.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}

// moneyScale is the number of fractional digits the money columns store.
const moneyScale = 2

// requireMoneyScale rejects amounts the store would have to round. Trailing zeros are fine.
func requireMoneyScale(field string, value decimal.Decimal) error {
	if !value.Equal(value.Round(moneyScale)) {
		return fmt.Errorf("%w: %s must have at most %d decimal places", apperrors.ErrValidation, field, moneyScale)
	}
	return nil
}

func requireNonNegative(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, field)
	}
	return requireMoneyScale(field, value)
}

func requirePositive(field string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return fmt.Errorf("%w: %s must be positive", apperrors.ErrValidation, field)
	}
	return requireMoneyScale(field, value)
}
