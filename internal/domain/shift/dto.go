package shift

import (
	"github.com/shopspring/decimal"

	"github.com/restoops/staff-backend-go/internal/pkg/validator"
)

type ShiftSummaryFilter struct {
	Date           string
	EmployeeID     *int64
	OrganizationID *int64
}

type ShiftSummaryResponse struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	StartTime       string          `json:"startTime"`
	EndTime         *string         `json:"endTime"`
	ElapsedTime     string          `json:"elapsedTime"`
	OpenEmployees   int             `json:"openEmployees"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	FinesCount      int64           `json:"finesCount"`
	MotivationCount int64           `json:"motivationCount"`
	QuestsCount     int64           `json:"questsCount"`
	Status          Status          `json:"status"`
}

type ShiftStatusResponse struct {
	IsActive    bool    `json:"isActive"`
	ShiftID     *int64  `json:"shiftId,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	ElapsedTime *string `json:"elapsedTime,omitempty"`
}

type UpdateShiftTimeRequest struct {
	EmployeeID int64  `json:"-"`
	ShiftTime  string `json:"shiftTime"`
}

func (r *UpdateShiftTimeRequest) Validate() error {
	if !validator.IsValidClock(r.ShiftTime) {
		return ErrInvalidShiftTime
	}
	return nil
}
