package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teampulse/workload-backend-go/internal/config"
	appHTTP "github.com/teampulse/workload-backend-go/internal/handler/http"
	"github.com/teampulse/workload-backend-go/internal/pkg/database"
	"github.com/teampulse/workload-backend-go/internal/pkg/jwt"
	"github.com/teampulse/workload-backend-go/internal/pkg/poller"
	"github.com/teampulse/workload-backend-go/internal/repository/postgresql"
	authService "github.com/teampulse/workload-backend-go/internal/service/auth"
	reportService "github.com/teampulse/workload-backend-go/internal/service/report"
	rosterService "github.com/teampulse/workload-backend-go/internal/service/roster"
	userService "github.com/teampulse/workload-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	rosterSvc := rosterService.NewRosterService(userRepo, reportRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService, rosterSvc)
	reportSvc := reportService.NewReportService(reportRepo)
	userSvc := userService.NewUserService(postgresql.NewTransactor(db), userRepo, reportRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc, userSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		reportHandler,
		rosterHandler,
		userHandler,
		cfg.App.Env,
	)

	// Background roster refresh keeps the manager view near-real-time without
	// server push; it lives exactly as long as the process.
	rosterPoller := poller.New("roster-refresh", cfg.Refresh.Interval, rosterSvc.Load)
	rosterPoller.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	rosterPoller.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
