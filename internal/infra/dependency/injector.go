// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/lifetrack/backend/config"
	"github.com/lifetrack/backend/internal/application/usecase/activity"
	"github.com/lifetrack/backend/internal/application/usecase/auth"
	"github.com/lifetrack/backend/internal/application/usecase/dashboard"
	"github.com/lifetrack/backend/internal/application/usecase/expense"
	"github.com/lifetrack/backend/internal/application/usecase/holiday"
	"github.com/lifetrack/backend/internal/application/usecase/home"
	"github.com/lifetrack/backend/internal/application/usecase/vehicle"
	"github.com/lifetrack/backend/internal/infra/kv"
	"github.com/lifetrack/backend/internal/infra/server/router"
	"github.com/lifetrack/backend/internal/integration/adapters"
	"github.com/lifetrack/backend/internal/integration/entrypoint/controller"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
	"github.com/lifetrack/backend/internal/integration/persistence"
	"github.com/lifetrack/backend/internal/integration/persistence/keyvalue"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Store  *kv.Store
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, store *kv.Store) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	activityRepo := persistence.NewActivityRepository(db)
	vehicleRepo := persistence.NewVehicleRepository(db)
	homeRepo := keyvalue.NewHomeRepository(store)
	holidayRepo := keyvalue.NewHolidayRepository(store)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create activity use cases
	createActivityUseCase := activity.NewCreateActivityUseCase(activityRepo)
	listActivitiesUseCase := activity.NewListActivitiesUseCase(activityRepo)
	updateActivityUseCase := activity.NewUpdateActivityUseCase(activityRepo)
	deleteActivityUseCase := activity.NewDeleteActivityUseCase(activityRepo)

	// Create vehicle use cases
	createVehicleUseCase := vehicle.NewCreateVehicleUseCase(vehicleRepo)
	listVehiclesUseCase := vehicle.NewListVehiclesUseCase(vehicleRepo)
	updateVehicleUseCase := vehicle.NewUpdateVehicleUseCase(vehicleRepo)
	deleteVehicleUseCase := vehicle.NewDeleteVehicleUseCase(vehicleRepo)
	createVehicleExpenseUseCase := vehicle.NewCreateVehicleExpenseUseCase(vehicleRepo)
	updateVehicleExpenseUseCase := vehicle.NewUpdateVehicleExpenseUseCase(vehicleRepo)
	deleteVehicleExpenseUseCase := vehicle.NewDeleteVehicleExpenseUseCase(vehicleRepo)
	getVehicleCostsUseCase := vehicle.NewGetVehicleCostsUseCase(vehicleRepo)

	// Create home use cases
	homeUseCases := controller.HomeControllerUseCases{
		Create: home.NewCreateHomeUseCase(homeRepo),
		List:   home.NewListHomesUseCase(homeRepo),
		Update: home.NewUpdateHomeUseCase(homeRepo),
		Delete: home.NewDeleteHomeUseCase(homeRepo),

		AddInsurance:    home.NewAddInsuranceUseCase(homeRepo),
		ListInsurances:  home.NewListInsurancesUseCase(homeRepo),
		UpdateInsurance: home.NewUpdateInsuranceUseCase(homeRepo),
		DeleteInsurance: home.NewDeleteInsuranceUseCase(homeRepo),

		AddSmokeAlarm:    home.NewAddSmokeAlarmUseCase(homeRepo),
		ListSmokeAlarms:  home.NewListSmokeAlarmsUseCase(homeRepo),
		UpdateSmokeAlarm: home.NewUpdateSmokeAlarmUseCase(homeRepo),
		DeleteSmokeAlarm: home.NewDeleteSmokeAlarmUseCase(homeRepo),

		AddRepair:    home.NewAddRepairUseCase(homeRepo),
		ListRepairs:  home.NewListRepairsUseCase(homeRepo),
		UpdateRepair: home.NewUpdateRepairUseCase(homeRepo),
		DeleteRepair: home.NewDeleteRepairUseCase(homeRepo),

		AddUtilityBill:    home.NewAddUtilityBillUseCase(homeRepo),
		ListUtilityBills:  home.NewListUtilityBillsUseCase(homeRepo),
		UpdateUtilityBill: home.NewUpdateUtilityBillUseCase(homeRepo),
		DeleteUtilityBill: home.NewDeleteUtilityBillUseCase(homeRepo),
	}

	// Create holiday use cases
	createHolidayUseCase := holiday.NewCreateHolidayUseCase(holidayRepo)
	listHolidaysUseCase := holiday.NewListHolidaysUseCase(holidayRepo)
	updateHolidayUseCase := holiday.NewUpdateHolidayUseCase(holidayRepo)
	deleteHolidayUseCase := holiday.NewDeleteHolidayUseCase(holidayRepo)
	addDailyExpenseUseCase := holiday.NewAddDailyExpenseUseCase(holidayRepo)
	listDailyExpensesUseCase := holiday.NewListDailyExpensesUseCase(holidayRepo)
	updateDailyExpenseUseCase := holiday.NewUpdateDailyExpenseUseCase(holidayRepo)
	deleteDailyExpenseUseCase := holiday.NewDeleteDailyExpenseUseCase(holidayRepo)
	getHolidayCostsUseCase := holiday.NewGetHolidayCostsUseCase(holidayRepo)

	// Create dashboard use case
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(expenseRepo, activityRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, store.HealthCheck)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	activityController := controller.NewActivityController(
		createActivityUseCase,
		listActivitiesUseCase,
		updateActivityUseCase,
		deleteActivityUseCase,
	)

	vehicleController := controller.NewVehicleController(
		createVehicleUseCase,
		listVehiclesUseCase,
		updateVehicleUseCase,
		deleteVehicleUseCase,
		createVehicleExpenseUseCase,
		updateVehicleExpenseUseCase,
		deleteVehicleExpenseUseCase,
		getVehicleCostsUseCase,
	)

	homeController := controller.NewHomeController(homeUseCases)

	holidayController := controller.NewHolidayController(
		createHolidayUseCase,
		listHolidaysUseCase,
		updateHolidayUseCase,
		deleteHolidayUseCase,
		addDailyExpenseUseCase,
		listDailyExpensesUseCase,
		updateDailyExpenseUseCase,
		deleteDailyExpenseUseCase,
		getHolidayCostsUseCase,
	)

	dashboardController := controller.NewDashboardController(getSummaryUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		activityController,
		vehicleController,
		homeController,
		holidayController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Store:  store,
		Router: r,
	}
}
