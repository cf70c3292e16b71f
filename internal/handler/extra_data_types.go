package handler

import (
	"time"

	"github.com/deppfellow/echo-lessons/internal/errs"
	"github.com/deppfellow/echo-lessons/internal/model"
	"github.com/deppfellow/echo-lessons/internal/validation"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ExtraDataTypesHandler shows UUIDs, timestamps, durations, times of day and
// decimals on the wire.
type ExtraDataTypesHandler struct {
	Handler
}

func NewExtraDataTypesHandler(h Handler) *ExtraDataTypesHandler {
	return &ExtraDataTypesHandler{Handler: h}
}

// TimeCalcRequest: timestamps are RFC 3339, process_after is seconds (a
// number) or a Go duration string such as "1h30m", repeat_at is HH:MM[:SS].
type TimeCalcRequest struct {
	ItemID       uuid.UUID        `param:"item_id" json:"-"`
	StartTime    time.Time        `json:"start_time" validate:"required"`
	EndTime      time.Time        `json:"end_time" validate:"required"`
	ProcessAfter *model.Duration  `json:"process_after" validate:"required"`
	RepeatAt     *model.TimeOfDay `json:"repeat_at" validate:"required"`
	Price        *decimal.Decimal `json:"price,omitempty"`
}

func (r *TimeCalcRequest) Validate() error { return validation.Struct(r) }

type TimeCalcResponse struct {
	ItemID       uuid.UUID        `json:"item_id"`
	StartTime    time.Time        `json:"start_time"`
	EndTime      time.Time        `json:"end_time"`
	ProcessAfter model.Duration   `json:"process_after"`
	RepeatAt     model.TimeOfDay  `json:"repeat_at"`
	ProcessTime  time.Time        `json:"process_time"`
	Duration     model.Duration   `json:"duration"`
	Price        *decimal.Decimal `json:"price,omitempty"`
}

// TimeCalc computes process_time = start_time + process_after and
// duration = end_time - process_time. duration is negative when the
// processing would start after end_time.
func (h *ExtraDataTypesHandler) TimeCalc(c echo.Context, req *TimeCalcRequest) (TimeCalcResponse, error) {
	after := time.Duration(*req.ProcessAfter)

	// time.Time saturates instead of overflowing; a result that does not
	// round-trip was clamped.
	processTime := req.StartTime.Add(after)
	if processTime.Sub(req.StartTime) != after || processTime.Year() < 0 || processTime.Year() > 9999 {
		return TimeCalcResponse{}, outOfRange("process_after", "moves process_time out of range")
	}

	duration := req.EndTime.Sub(processTime)
	if !processTime.Add(duration).Equal(req.EndTime) {
		return TimeCalcResponse{}, outOfRange("end_time", "is too far from process_time")
	}

	return TimeCalcResponse{
		ItemID:       req.ItemID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ProcessAfter: *req.ProcessAfter,
		RepeatAt:     *req.RepeatAt,
		ProcessTime:  processTime,
		Duration:     model.Duration(duration),
		Price:        req.Price,
	}, nil
}

func outOfRange(field, msg string) error {
	return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{
		Field: field,
		Error: msg,
	}})
}
