package main

import (
	"fmt"
	"net/http"

	"github.com/stafflow/stafflow-backend-go/internal/config"
	appHTTP "github.com/stafflow/stafflow-backend-go/internal/handler/http"
	"github.com/stafflow/stafflow-backend-go/internal/pkg/cron"
	"github.com/stafflow/stafflow-backend-go/internal/pkg/database"
	"github.com/stafflow/stafflow-backend-go/internal/pkg/jwt"
	"github.com/stafflow/stafflow-backend-go/internal/pkg/oauth"
	"github.com/stafflow/stafflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stafflow/stafflow-backend-go/internal/service/attendance"
	authService "github.com/stafflow/stafflow-backend-go/internal/service/auth"
	employeeService "github.com/stafflow/stafflow-backend-go/internal/service/employee"
	leaveService "github.com/stafflow/stafflow-backend-go/internal/service/leave"
	noticeService "github.com/stafflow/stafflow-backend-go/internal/service/notice"
	rosterService "github.com/stafflow/stafflow-backend-go/internal/service/roster"
	shiftService "github.com/stafflow/stafflow-backend-go/internal/service/shift"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	checkinRepo := postgresql.NewCheckInRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	noticeRepo := postgresql.NewNoticeRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(userRepo, JWTService, GoogleService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, checkinRepo, employeeRepo, shiftRepo, cfg.Business.Location)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, shiftRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo)
	noticeSvc := noticeService.NewNoticeService(noticeRepo)
	rosterSvc := rosterService.NewRosterService(employeeRepo, attendanceRepo, checkinRepo, leaveRepo, shiftRepo, cfg.Business.Location)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, checkinRepo, cfg.Business.Location).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, JWTService, GoogleService, cfg.App.FrontendURL),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Roster:     appHTTP.NewRosterHandler(rosterSvc),
		Notice:     appHTTP.NewNoticeHandler(noticeSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
