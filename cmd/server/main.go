package main

import (
	"context"
	"raffle-tracker/config"
	"raffle-tracker/internal/app"
	"raffle-tracker/internal/handler"
	"raffle-tracker/internal/metrics"
	"raffle-tracker/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L.Fatal("Failed to load config", zap.Error(err))
	}
	if err := logger.SetLevel(cfg.Server.LogLevel); err != nil {
		logger.L.Fatal("Failed to configure logger", zap.Error(err))
	}
	defer logger.L.Sync()

	application, err := app.Open(context.Background(), cfg, logger.WithComponent("app"))
	if err != nil {
		logger.L.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer application.Close()

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	handler.NewSaleHandler(application.Sales, application.Reports).RegisterRoutes(router)
	handler.NewReportHandler(application.Reports).RegisterRoutes(router)
	handler.NewAdminHandler(application.Draws, application.Admin).RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.L.Fatal("Server stopped", zap.Error(err))
	}
}
