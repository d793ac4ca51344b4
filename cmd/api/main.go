package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"

	"github.com/restoops/staff-backend-go/internal/config"
	appHTTP "github.com/restoops/staff-backend-go/internal/handler/http"
	"github.com/restoops/staff-backend-go/internal/pkg/cron"
	"github.com/restoops/staff-backend-go/internal/pkg/database"
	"github.com/restoops/staff-backend-go/internal/pkg/jwt"
	"github.com/restoops/staff-backend-go/internal/repository/cache"
	"github.com/restoops/staff-backend-go/internal/repository/postgresql"
	authService "github.com/restoops/staff-backend-go/internal/service/auth"
	employeeService "github.com/restoops/staff-backend-go/internal/service/employee"
	organizationService "github.com/restoops/staff-backend-go/internal/service/organization"
	fineService "github.com/restoops/staff-backend-go/internal/service/penalty"
	questService "github.com/restoops/staff-backend-go/internal/service/quest"
	salaryService "github.com/restoops/staff-backend-go/internal/service/salary"
	shiftService "github.com/restoops/staff-backend-go/internal/service/shift"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staff-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	time.Local = loc

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DatabaseURL()
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(dsn); err != nil {
			return err
		}
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	transactor := postgresql.NewTransactor(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	itemRepo := cache.NewItemRepository(postgresql.NewItemRepository(db), cfg.Cache.ItemSize, cfg.Cache.ItemTTL)
	orderRepo := postgresql.NewOrderRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	penaltyRepo := postgresql.NewPenaltyRepository(db)
	userSalaryRepo := postgresql.NewUserSalaryRepository(db)
	questRepo := postgresql.NewQuestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	shiftSvc := shiftService.NewShiftService(transactor, shiftRepo, employeeRepo, orderRepo, penaltyRepo, questRepo, nil)
	questSvc := questService.NewQuestService(transactor, questRepo, itemRepo, userRepo, employeeRepo, cfg.Quest.FallbackItemID, nil)
	fineSvc := fineService.NewFineService(transactor, penaltyRepo, employeeRepo, userRepo, nil)
	salarySvc := salaryService.NewSalaryService(employeeRepo, userRepo, orderRepo, penaltyRepo, userSalaryRepo, questSvc, nil, nil)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, nil)
	organizationSvc := organizationService.NewOrganizationService(organizationRepo)
	authSvc := authService.NewAuthService(userRepo, JWTService)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:         logger,
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Shift:        appHTTP.NewShiftHandler(shiftSvc),
		Fine:         appHTTP.NewFineHandler(fineSvc),
		Quest:        appHTTP.NewQuestHandler(questSvc),
		Salary:       appHTTP.NewSalaryHandler(salarySvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Organization: appHTTP.NewOrganizationHandler(organizationSvc),
	})

	scheduler := cron.NewScheduler(ctx)
	cron.NewShiftJobs(shiftSvc).RegisterJobs(scheduler, cfg.Cron.ShiftGaugeInterval)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
