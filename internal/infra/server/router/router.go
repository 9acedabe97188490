// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lifetrack/backend/internal/integration/entrypoint/controller"
	"github.com/lifetrack/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	expenseController   *controller.ExpenseController
	activityController  *controller.ActivityController
	vehicleController   *controller.VehicleController
	homeController      *controller.HomeController
	holidayController   *controller.HolidayController
	dashboardController *controller.DashboardController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	expenseController *controller.ExpenseController,
	activityController *controller.ActivityController,
	vehicleController *controller.VehicleController,
	homeController *controller.HomeController,
	holidayController *controller.HolidayController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		expenseController:   expenseController,
		activityController:  activityController,
		vehicleController:   vehicleController,
		homeController:      homeController,
		holidayController:   holidayController,
		dashboardController: dashboardController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Activity routes (require authentication)
		if r.activityController != nil && r.authMiddleware != nil {
			activities := v1.Group("/activities")
			activities.Use(r.authMiddleware.Authenticate())
			{
				activities.GET("", r.activityController.List)
				activities.POST("", r.activityController.Create)
				activities.PATCH("/:id", r.activityController.Update)
				activities.DELETE("/:id", r.activityController.Delete)
			}
		}

		// Vehicle routes (require authentication)
		if r.vehicleController != nil && r.authMiddleware != nil {
			vehicles := v1.Group("/vehicles")
			vehicles.Use(r.authMiddleware.Authenticate())
			{
				vehicles.GET("", r.vehicleController.List)
				vehicles.POST("", r.vehicleController.Create)
				vehicles.PATCH("/:id", r.vehicleController.Update)
				vehicles.DELETE("/:id", r.vehicleController.Delete)
				vehicles.GET("/:id/costs", r.vehicleController.GetCosts)

				// Vehicle expense routes (nested under vehicles)
				vehicles.GET("/:id/expenses", r.vehicleController.ListExpenses)
				vehicles.POST("/:id/expenses", r.vehicleController.CreateExpense)
				vehicles.PATCH("/:id/expenses/:expenseId", r.vehicleController.UpdateExpense)
				vehicles.DELETE("/:id/expenses/:expenseId", r.vehicleController.DeleteExpense)
			}
		}

		// Home routes (require authentication)
		if r.homeController != nil && r.authMiddleware != nil {
			homes := v1.Group("/homes")
			homes.Use(r.authMiddleware.Authenticate())
			{
				homes.GET("", r.homeController.List)
				homes.POST("", r.homeController.Create)
				homes.PATCH("/:id", r.homeController.Update)
				homes.DELETE("/:id", r.homeController.Delete)

				// Child collection routes (nested under homes)
				homes.GET("/:id/insurances", r.homeController.ListInsurances)
				homes.POST("/:id/insurances", r.homeController.AddInsurance)
				homes.PATCH("/:id/insurances/:childId", r.homeController.UpdateInsurance)
				homes.DELETE("/:id/insurances/:childId", r.homeController.DeleteInsurance)

				homes.GET("/:id/smoke-alarms", r.homeController.ListSmokeAlarms)
				homes.POST("/:id/smoke-alarms", r.homeController.AddSmokeAlarm)
				homes.PATCH("/:id/smoke-alarms/:childId", r.homeController.UpdateSmokeAlarm)
				homes.DELETE("/:id/smoke-alarms/:childId", r.homeController.DeleteSmokeAlarm)

				homes.GET("/:id/repairs", r.homeController.ListRepairs)
				homes.POST("/:id/repairs", r.homeController.AddRepair)
				homes.PATCH("/:id/repairs/:childId", r.homeController.UpdateRepair)
				homes.DELETE("/:id/repairs/:childId", r.homeController.DeleteRepair)

				homes.GET("/:id/utility-bills", r.homeController.ListUtilityBills)
				homes.POST("/:id/utility-bills", r.homeController.AddUtilityBill)
				homes.PATCH("/:id/utility-bills/:childId", r.homeController.UpdateUtilityBill)
				homes.DELETE("/:id/utility-bills/:childId", r.homeController.DeleteUtilityBill)
			}
		}

		// Holiday routes (require authentication)
		if r.holidayController != nil && r.authMiddleware != nil {
			holidays := v1.Group("/holidays")
			holidays.Use(r.authMiddleware.Authenticate())
			{
				holidays.GET("", r.holidayController.List)
				holidays.POST("", r.holidayController.Create)
				holidays.PATCH("/:id", r.holidayController.Update)
				holidays.DELETE("/:id", r.holidayController.Delete)
				holidays.GET("/:id/costs", r.holidayController.GetCosts)

				// Daily expense routes (nested under holidays)
				holidays.GET("/:id/daily-expenses", r.holidayController.ListDailyExpenses)
				holidays.POST("/:id/daily-expenses", r.holidayController.AddDailyExpense)
				holidays.PATCH("/:id/daily-expenses/:expenseId", r.holidayController.UpdateDailyExpense)
				holidays.DELETE("/:id/daily-expenses/:expenseId", r.holidayController.DeleteDailyExpense)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/summary", r.dashboardController.GetSummary)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
