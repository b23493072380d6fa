package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"halachick.backend/internal/interfaces/http/handlers"
	"halachick.backend/internal/interfaces/http/middleware"
	"halachick.backend/pkg/metrics"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	farmHandler       *handlers.FarmHandler
	investmentHandler *handlers.InvestmentHandler
	insuranceHandler  *handlers.InsuranceHandler
	marketHandler     *handlers.MarketHandler
	adminHandler      *handlers.AdminHandler
	authMiddleware    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.GET("/verify-email", d.authHandler.VerifyEmail)
			auth.GET("/me", d.authHandler.Me)
			auth.POST("/logout", d.authHandler.Logout)
			auth.POST("/send-verification", d.authMiddleware, d.authHandler.SendVerification)
		}

		// Farm routes (public read, protected write)
		farms := v1.Group("/farms")
		{
			farms.GET("", d.farmHandler.List)
			farms.GET("/my", d.authMiddleware, d.farmHandler.ListMine)
			farms.GET("/:id", d.farmHandler.Get)
			farms.POST("", d.authMiddleware, middleware.RequireRole("farmer"), d.farmHandler.Create)
		}

		// Investment routes (protected)
		investments := v1.Group("/investments")
		investments.Use(d.authMiddleware)
		{
			investments.POST("", middleware.RequireRole("investor"), d.investmentHandler.Create)
			investments.GET("", d.investmentHandler.ListMine)
		}

		// Insurance routes (protected)
		insurance := v1.Group("/insurance")
		insurance.Use(d.authMiddleware)
		{
			insurance.POST("/claims", d.insuranceHandler.FileClaim)
		}

		// Market routes (public catalogue, protected orders)
		market := v1.Group("/market")
		{
			market.GET("/products", d.marketHandler.ListProducts)
			market.POST("/products", d.authMiddleware, middleware.RequireRole("farmer"), d.marketHandler.CreateProduct)
			market.POST("/orders", d.authMiddleware, d.marketHandler.PlaceOrder)
			market.GET("/orders", d.authMiddleware, d.marketHandler.ListMyOrders)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/stats", d.adminHandler.Stats)
			admin.GET("/analytics", d.adminHandler.Analytics)

			admin.GET("/users", d.adminHandler.ListUsers)
			admin.GET("/users/:id", d.adminHandler.GetUser)
			admin.PATCH("/users/:id", d.adminHandler.UpdateUser)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)
			admin.POST("/users/:id/notify", d.adminHandler.NotifyUser)

			admin.GET("/farms", d.farmHandler.List)
			admin.PATCH("/farms/:id/verification", d.farmHandler.Review)

			admin.GET("/investments", d.investmentHandler.ListAll)
			admin.PATCH("/investments/:id/status", d.investmentHandler.SetStatus)

			admin.GET("/claims", d.insuranceHandler.ListClaims)
			admin.PATCH("/claims", d.insuranceHandler.ReviewClaim)

			admin.GET("/insurance-fund", d.insuranceHandler.Fund)
			admin.POST("/insurance-fund/contributions", d.insuranceHandler.Contribute)

			admin.GET("/market", d.marketHandler.Overview)

			admin.GET("/settings", d.adminHandler.GetSettings)
			admin.PUT("/settings", d.adminHandler.SaveSetting)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "halachick-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", metrics.Handler())
}
