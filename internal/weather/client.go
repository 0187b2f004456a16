package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	currentURL  = "https://api.openweathermap.org/data/2.5/weather"
	forecastURL = "https://api.openweathermap.org/data/2.5/forecast"

	defaultCity = "Singapore"
)

// Client fetches current conditions and the 5-day forecast from
// OpenWeatherMap. Responses carry activity advice tuned for seniors
// planning outdoor community events.
type Client struct {
	apiKey string
	http   *http.Client
	logger *zap.Logger
}

func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		http:   &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type Current struct {
	City        string  `json:"city"`
	Description string  `json:"description"`
	TempC       float64 `json:"temp_c"`
	FeelsLikeC  float64 `json:"feels_like_c"`
	Humidity    int     `json:"humidity"`
	Advice      string  `json:"advice"`
	UVAdvice    string  `json:"uv_advice"`
}

type ForecastEntry struct {
	DateTime    string  `json:"date_time"`
	Description string  `json:"description"`
	TempC       float64 `json:"temp_c"`
	Humidity    int     `json:"humidity"`
}

type Forecast struct {
	City    string          `json:"city"`
	Entries []ForecastEntry `json:"entries"`
}

type owmWeather struct {
	Description string `json:"description"`
}

type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type owmCurrent struct {
	Name    string       `json:"name"`
	Weather []owmWeather `json:"weather"`
	Main    owmMain      `json:"main"`
}

type owmForecast struct {
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	List []struct {
		DtTxt   string       `json:"dt_txt"`
		Weather []owmWeather `json:"weather"`
		Main    owmMain      `json:"main"`
	} `json:"list"`
}

func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

func (c *Client) CurrentConditions(ctx context.Context) (*Current, error) {
	var raw owmCurrent
	if err := c.fetch(ctx, currentURL, &raw); err != nil {
		return nil, err
	}

	desc := ""
	if len(raw.Weather) > 0 {
		desc = raw.Weather[0].Description
	}

	return &Current{
		City:        raw.Name,
		Description: desc,
		TempC:       raw.Main.Temp,
		FeelsLikeC:  raw.Main.FeelsLike,
		Humidity:    raw.Main.Humidity,
		Advice:      adviceFor(raw.Main.FeelsLike, raw.Main.Humidity, desc),
		UVAdvice:    uvAdviceFor(raw.Main.Temp),
	}, nil
}

func (c *Client) FiveDayForecast(ctx context.Context) (*Forecast, error) {
	var raw owmForecast
	if err := c.fetch(ctx, forecastURL, &raw); err != nil {
		return nil, err
	}

	entries := make([]ForecastEntry, 0, len(raw.List))
	for _, item := range raw.List {
		desc := ""
		if len(item.Weather) > 0 {
			desc = item.Weather[0].Description
		}
		entries = append(entries, ForecastEntry{
			DateTime:    item.DtTxt,
			Description: desc,
			TempC:       item.Main.Temp,
			Humidity:    item.Main.Humidity,
		})
	}

	return &Forecast{City: raw.City.Name, Entries: entries}, nil
}

func (c *Client) fetch(ctx context.Context, baseURL string, out any) error {
	q := url.Values{}
	q.Set("q", defaultCity)
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openweathermap status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// adviceFor turns raw conditions into a short recommendation. Thresholds
// follow NEA heat-stress guidance for outdoor activity.
func adviceFor(feelsLike float64, humidity int, description string) string {
	switch {
	case containsRain(description):
		return "Rain expected. Indoor activities recommended today."
	case feelsLike >= 35:
		return "Very hot. Avoid outdoor activities between 11am and 4pm, and drink water regularly."
	case feelsLike >= 32 || humidity >= 85:
		return "Warm and humid. Take breaks in the shade and stay hydrated during outdoor activities."
	default:
		return "Pleasant conditions. A good day for outdoor community activities."
	}
}

// uvAdviceFor tiers sun-protection guidance by temperature, the best
// proxy available without a paid UV index feed.
func uvAdviceFor(tempC float64) string {
	switch {
	case tempC > 30:
		return "UV levels are likely high. Apply SPF 30+ sunscreen and wear a hat when outdoors."
	case tempC > 26:
		return "Moderate UV expected. Sunscreen is recommended if you will be outdoors for long."
	default:
		return "UV exposure is low. No special sun protection needed today."
	}
}

func containsRain(description string) bool {
	d := strings.ToLower(description)
	for _, w := range []string{"rain", "thunderstorm", "drizzle", "shower"} {
		if strings.Contains(d, w) {
			return true
		}
	}
	return false
}
