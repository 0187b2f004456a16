package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seniorconnect-sg/community-api/internal/httperr"
	"github.com/seniorconnect-sg/community-api/internal/httpresp"
	"github.com/seniorconnect-sg/community-api/internal/weather"
)

// ======================================================
// WEATHER
// ======================================================

type WeatherHandler struct {
	client *weather.Client
	logger *zap.Logger
}

func NewWeatherHandler(client *weather.Client, logger *zap.Logger) *WeatherHandler {
	return &WeatherHandler{client: client, logger: logger}
}

func (h *WeatherHandler) Current(c *gin.Context) {
	if !h.client.Enabled() {
		httperr.Write(c, 503, "weather_unavailable", "Weather information is not available right now.")
		return
	}

	cur, err := h.client.CurrentConditions(c.Request.Context())
	if err != nil {
		h.logger.Warn("weather fetch failed", zap.Error(err))
		httperr.Write(c, 502, "weather_unavailable", "Weather information is not available right now.")
		return
	}

	httpresp.OK(c, cur)
}

func (h *WeatherHandler) Forecast(c *gin.Context) {
	if !h.client.Enabled() {
		httperr.Write(c, 503, "weather_unavailable", "Weather information is not available right now.")
		return
	}

	fc, err := h.client.FiveDayForecast(c.Request.Context())
	if err != nil {
		h.logger.Warn("forecast fetch failed", zap.Error(err))
		httperr.Write(c, 502, "weather_unavailable", "Weather information is not available right now.")
		return
	}

	httpresp.OK(c, fc)
}
