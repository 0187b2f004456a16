package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/seniorconnect-sg/community-api/internal/app"
	"github.com/seniorconnect-sg/community-api/internal/clock"
	"github.com/seniorconnect-sg/community-api/internal/config"
	"github.com/seniorconnect-sg/community-api/internal/db"
	"github.com/seniorconnect-sg/community-api/internal/mq"
	"github.com/seniorconnect-sg/community-api/internal/ratelimit"
	"github.com/seniorconnect-sg/community-api/internal/routes"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := app.NewLogger(cfg.Env)
	defer logger.Sync()

	database := db.NewDB(cfg)

	clk := clock.System{}
	limiter := ratelimit.New(cfg.RedisURL, clk, logger)

	var events *mq.Publisher
	if cfg.AmqpURL != "" {
		p, err := mq.NewPublisher(cfg.AmqpURL, "community.events")
		if err != nil {
			logger.Warn("rabbitmq unavailable, booking events disabled", zap.Error(err))
		} else {
			events = p
			defer events.Close()
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	routes.Setup(r, database, cfg, clk, limiter, events, logger)

	logger.Info("server starting", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
