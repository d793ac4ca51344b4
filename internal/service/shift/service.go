package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/domain/order"
	"github.com/restoops/staff-backend-go/internal/domain/penalty"
	"github.com/restoops/staff-backend-go/internal/domain/quest"
	"github.com/restoops/staff-backend-go/internal/domain/shift"
	"github.com/restoops/staff-backend-go/internal/pkg/database"
	"github.com/restoops/staff-backend-go/internal/pkg/utils"
)

const (
	defaultStartHour   = 9
	defaultStartMinute = 0
)

type ShiftServiceImpl struct {
	db           database.Transactor
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
	orderRepo    order.OrderRepository
	penaltyRepo  penalty.PenaltyRepository
	questRepo    quest.QuestRepository
	now          func() time.Time
}

func NewShiftService(
	db database.Transactor,
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	orderRepo order.OrderRepository,
	penaltyRepo penalty.PenaltyRepository,
	questRepo quest.QuestRepository,
	now func() time.Time,
) shift.ShiftService {
	if now == nil {
		now = time.Now
	}
	return &ShiftServiceImpl{
		db:           db,
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		orderRepo:    orderRepo,
		penaltyRepo:  penaltyRepo,
		questRepo:    questRepo,
		now:          now,
	}
}

// GetShiftSummary implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShiftSummary(ctx context.Context, filter shift.ShiftSummaryFilter) (shift.ShiftSummaryResponse, error) {
	now := s.now()
	day := utils.DateOrToday(filter.Date, now)
	from, to := utils.DayBounds(day)

	var (
		shifts      []shift.Shift
		orders      order.Summary
		finesCount  int64
		questsCount int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		shifts, err = s.shiftRepo.ListStartedBetween(gCtx, from, to, filter.EmployeeID)
		return err
	})

	// Order total ignores the employee filter.
	g.Go(func() error {
		var err error
		orders, err = s.orderRepo.Summarize(gCtx, order.Filter{
			OrganizationID: filter.OrganizationID,
			From:           from,
			To:             to,
		})
		return err
	})

	// Fines are counted across the whole ledger, not per day.
	g.Go(func() error {
		var err error
		finesCount, err = s.penaltyRepo.CountAll(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		questsCount, err = s.questRepo.CountRewardsOverlapping(gCtx, from, to)
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Error("GetShiftSummary query failed", "date", utils.FormatDate(day), "error", err)
		return shift.ShiftSummaryResponse{}, fmt.Errorf("failed to build shift summary: %w", err)
	}

	resp := shift.ShiftSummaryResponse{
		ID:              "shift-" + day.Format("2006-01-02"),
		Date:            utils.FormatDate(day),
		OpenEmployees:   countOpenEmployees(shifts, now),
		TotalAmount:     orders.Total,
		FinesCount:      finesCount,
		MotivationCount: questsCount,
		QuestsCount:     questsCount,
	}

	if len(shifts) == 0 {
		resp.StartTime = utils.FormatClock(utils.WithClock(day, defaultStartHour, defaultStartMinute))
		resp.ElapsedTime = utils.FormatElapsed(0)
		resp.Status = shift.StatusActive
		return resp, nil
	}

	start, end, status := summarizeWindow(shifts, now)
	resp.StartTime = utils.FormatClock(start.In(now.Location()))
	resp.Status = status
	if status == shift.StatusCompleted {
		endClock := utils.FormatClock(end.In(now.Location()))
		resp.EndTime = &endClock
		resp.ElapsedTime = utils.FormatElapsed(end.Sub(start))
	} else {
		resp.ElapsedTime = utils.FormatElapsed(now.Sub(start))
	}
	return resp, nil
}

// summarizeWindow derives the day's opening time and status. The last
// shift is the one ending latest, with open shifts treated as ending now.
// The day is completed only when that end lies strictly before now.
func summarizeWindow(shifts []shift.Shift, now time.Time) (time.Time, *time.Time, shift.Status) {
	start := shifts[0].StartTime
	last := shifts[0]
	lastEnd := effectiveEnd(last, now)
	for _, sh := range shifts[1:] {
		if sh.StartTime.Before(start) {
			start = sh.StartTime
		}
		if end := effectiveEnd(sh, now); end.After(lastEnd) {
			last, lastEnd = sh, end
		}
	}

	if last.EndTime != nil && last.EndTime.Before(now) {
		return start, last.EndTime, shift.StatusCompleted
	}
	return start, nil, shift.StatusActive
}

func effectiveEnd(sh shift.Shift, now time.Time) time.Time {
	if sh.EndTime == nil {
		return now
	}
	return *sh.EndTime
}

func countOpenEmployees(shifts []shift.Shift, now time.Time) int {
	open := make(map[int64]struct{})
	for _, sh := range shifts {
		if sh.OpenAt(now) {
			open[sh.EmployeeID] = struct{}{}
		}
	}
	return len(open)
}

// GetEmployeeShiftStatus implements shift.ShiftService. The organization
// filter is accepted for API compatibility and not applied.
func (s *ShiftServiceImpl) GetEmployeeShiftStatus(ctx context.Context, employeeID int64, _ *int64) (shift.ShiftStatusResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return shift.ShiftStatusResponse{IsActive: false}, nil
		}
		return shift.ShiftStatusResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	now := s.now()
	startOfToday, _ := utils.DayBounds(now)

	latest, err := s.shiftRepo.GetLatestStartedBetween(ctx, employeeID, startOfToday, now)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftStatusResponse{IsActive: false}, nil
		}
		return shift.ShiftStatusResponse{}, fmt.Errorf("failed to get latest shift: %w", err)
	}

	if !latest.OpenAt(now) {
		return shift.ShiftStatusResponse{IsActive: false}, nil
	}

	shiftID := latest.ID
	startTime := utils.FormatClock(latest.StartTime.In(now.Location()))
	elapsed := utils.FormatElapsed(now.Sub(latest.StartTime))
	return shift.ShiftStatusResponse{
		IsActive:    true,
		ShiftID:     &shiftID,
		StartTime:   &startTime,
		ElapsedTime: &elapsed,
	}, nil
}

// UpdateShiftTime implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateShiftTime(ctx context.Context, req shift.UpdateShiftTimeRequest) error {
	hour, minute, ok := utils.ParseClock(req.ShiftTime)
	if !ok {
		return shift.ErrInvalidShiftTime
	}

	now := s.now()
	from, to := utils.DayBounds(now)

	err := s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		latest, err := s.shiftRepo.GetLatestStartedBetween(txCtx, req.EmployeeID, from, to)
		if err != nil {
			if errors.Is(err, shift.ErrShiftNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get today's shift: %w", err)
		}

		newStart := utils.WithClock(latest.StartTime.In(now.Location()), hour, minute)
		if err := s.shiftRepo.UpdateStartTime(txCtx, latest.ID, newStart); err != nil {
			return fmt.Errorf("failed to update shift start time: %w", err)
		}
		return nil
	})
	if err != nil {
		slog.Error("UpdateShiftTime failed", "employee_id", req.EmployeeID, "error", err)
		return err
	}
	return nil
}

// CountOpenShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) CountOpenShifts(ctx context.Context) (int64, error) {
	return s.shiftRepo.CountOpen(ctx, s.now())
}
