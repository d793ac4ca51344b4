package penalty

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/domain/penalty"
	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/pkg/database"
	"github.com/restoops/staff-backend-go/internal/pkg/utils"
)

type FineServiceImpl struct {
	db           database.Transactor
	penaltyRepo  penalty.PenaltyRepository
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	now          func() time.Time
}

func NewFineService(
	db database.Transactor,
	penaltyRepo penalty.PenaltyRepository,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	now func() time.Time,
) penalty.FineService {
	if now == nil {
		now = time.Now
	}
	return &FineServiceImpl{
		db:           db,
		penaltyRepo:  penaltyRepo,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		now:          now,
	}
}

// CreateFine implements penalty.FineService.
func (s *FineServiceImpl) CreateFine(ctx context.Context, req penalty.CreateFineRequest) (penalty.CreateFineResponse, error) {
	if err := req.Validate(); err != nil {
		return penalty.CreateFineResponse{}, err
	}
	employeeID, err := req.ParsedEmployeeID()
	if err != nil {
		return penalty.CreateFineResponse{}, fmt.Errorf("failed to parse employee id: %w", err)
	}

	penaltyDate := utils.DateOrToday(req.Date, s.now())
	reason := strings.TrimSpace(req.Reason)

	var created penalty.Penalty
	err = s.db.WithinTransaction(ctx, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByID(txCtx, employeeID)
		if err != nil {
			return err
		}

		fine := penalty.Penalty{
			EmployeeID:  &emp.ID,
			PenaltySum:  req.Amount,
			Description: &reason,
			PenaltyDate: penaltyDate,
		}

		if emp.IIKOID != "" {
			u, err := s.userRepo.GetByIIKOID(txCtx, emp.IIKOID)
			switch {
			case err == nil:
				fine.UserID = &u.ID
			case errors.Is(err, user.ErrUserNotFound):
			default:
				return fmt.Errorf("failed to get user: %w", err)
			}
		}

		created, err = s.penaltyRepo.Create(txCtx, fine)
		if err != nil {
			return fmt.Errorf("failed to create penalty: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			slog.Error("CreateFine failed", "employee_id", employeeID, "error", err)
		}
		return penalty.CreateFineResponse{}, err
	}

	slog.Info("Fine created", "fine_id", created.ID, "employee_id", employeeID, "amount", req.Amount.String())
	return penalty.CreateFineResponse{FineID: created.ID}, nil
}
