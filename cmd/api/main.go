package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/config"
	appHTTP "github.com/shiftpay-app/shiftpay-backend-go/internal/handler/http"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/cron"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/database"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/pkg/jwt"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/repository/postgresql"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/service/earnings"
	invoiceService "github.com/shiftpay-app/shiftpay-backend-go/internal/service/invoice"
	payPeriodService "github.com/shiftpay-app/shiftpay-backend-go/internal/service/payperiod"
	walletService "github.com/shiftpay-app/shiftpay-backend-go/internal/service/wallet"
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

	periodRepo := postgresql.NewPayPeriodRepository(db)
	invoiceRepo := postgresql.NewInvoiceRepository(db)
	walletRepo := postgresql.NewWalletRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calculator := earnings.NewCalculator()

	payPeriodSvc := payPeriodService.NewPayPeriodService(db, periodRepo)
	invoiceSvc := invoiceService.NewInvoiceService(
		db,
		invoiceRepo,
		periodRepo,
		employeeRepo,
		salaryRepo,
		attendanceRepo,
		walletRepo,
		calculator,
	)
	walletSvc := walletService.NewWalletService(walletRepo)

	payPeriodHandler := appHTTP.NewPayPeriodHandler(payPeriodSvc, invoiceSvc)
	invoiceHandler := appHTTP.NewInvoiceHandler(invoiceSvc)
	walletHandler := appHTTP.NewWalletHandler(walletSvc)

	router := appHTTP.NewRouter(jwtService, payPeriodHandler, invoiceHandler, walletHandler)

	ensureInterval, err := time.ParseDuration(cfg.Payroll.EnsureInterval)
	if err != nil {
		fmt.Println("Invalid PAYROLL_ENSURE_INTERVAL:", err)
		return
	}
	scheduler := cron.NewScheduler()
	cron.NewPayPeriodJobs(periodRepo).RegisterJobs(scheduler, ensureInterval)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
