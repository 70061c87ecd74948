package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/teamtrace/attendance-engine-go/internal/config"
	appHTTP "github.com/teamtrace/attendance-engine-go/internal/handler/http"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/cron"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/database"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/jwt"
	"github.com/teamtrace/attendance-engine-go/internal/repository/postgresql"
	attendanceService "github.com/teamtrace/attendance-engine-go/internal/service/attendance"
	reportService "github.com/teamtrace/attendance-engine-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid ATTENDANCE_TIMEZONE: ", cfg.App.Timezone)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logRepo := postgresql.NewAttendanceLogRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	normalizer := attendanceService.NewNormalizer(loc)
	payloadValidator := attendanceService.NewPayloadValidator(normalizer)
	evaluator := attendanceService.NewStandardEvaluator(false)
	classifier := attendanceService.NewClassifier(evaluator, func() time.Time {
		return time.Now().In(loc)
	})

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		logRepo,
		employeeRepo,
		holidayRepo,
		leaveRequestRepo,
		payloadValidator,
		classifier,
		loc,
	)
	reportSvc := reportService.NewReportService(
		logRepo,
		employeeRepo,
		holidayRepo,
		leaveRequestRepo,
		classifier,
		loc,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(reportSvc, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
