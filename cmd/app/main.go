package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"sahlatrack/cmd/fx/account_fx"
	"sahlatrack/cmd/fx/assistant_fx"
	"sahlatrack/cmd/fx/billing_fx"
	"sahlatrack/cmd/fx/controllers_fx"
	"sahlatrack/cmd/fx/dashboard_fx"
	"sahlatrack/cmd/fx/db_fx"
	"sahlatrack/cmd/fx/mail_fx"
	"sahlatrack/cmd/fx/order_fx"
	"sahlatrack/cmd/fx/telegram_fx"
	"sahlatrack/internal/api/controllers"
	"sahlatrack/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		order_fx.Module,
		billing_fx.Module,
		telegram_fx.Module,
		mail_fx.Module,
		dashboard_fx.Module,
		assistant_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Println("Starting HTTP server at :" + port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	orderController *controllers.OrderController,
	billingController *controllers.BillingController,
	telegramController *controllers.TelegramController,
	dashboardController *controllers.DashboardController,
	assistantController *controllers.AssistantController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController, orderController, billingController,
		telegramController, dashboardController, assistantController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	orderController *controllers.OrderController,
	billingController *controllers.BillingController,
	telegramController *controllers.TelegramController,
	dashboardController *controllers.DashboardController,
	assistantController *controllers.AssistantController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)
	accountGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	orderGroup := r.Group("/orders", middleware.JWTAuthMiddleware())
	orderGroup.POST("", orderController.CreateOrder)
	orderGroup.GET("", orderController.ListOrders)
	orderGroup.GET("/:id", orderController.GetOrder)
	orderGroup.PUT("/:id", orderController.UpdateOrder)
	orderGroup.DELETE("/:id", orderController.DeleteOrder)

	r.GET("/plans", billingController.ListPlans)

	billingGroup := r.Group("/billing", middleware.JWTAuthMiddleware())
	billingGroup.POST("/payments", billingController.SubmitPayment)
	billingGroup.GET("/payments/pending", billingController.PendingPayments)
	billingGroup.GET("/review", middleware.RoleMiddleware("admin"), billingController.ReviewQueue)

	r.POST("/webhooks/telegram", telegramController.HandleUpdate)

	dashboardGroup := r.Group("/dashboard", middleware.JWTAuthMiddleware())
	dashboardGroup.GET("/stats", dashboardController.GetDashboard)

	assistantGroup := r.Group("/assistant", middleware.JWTAuthMiddleware())
	assistantGroup.POST("/chat", assistantController.Chat)
}
