package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bluele/gcache"
	"tabiplan.jp/internal/refdata"
)

// DefaultBaseURL is the Open-Meteo forecast API. No API key is required.
const DefaultBaseURL = "https://api.open-meteo.com/v1"

const (
	cacheSize = 64
	cacheTTL  = 10 * time.Minute
)

// ErrUnknownCity is returned when the requested city is not in the reference
// dataset.
var ErrUnknownCity = errors.New("unknown city")

// Report is the current weather for a city.
type Report struct {
	CityID       string  `json:"cityId"`
	City         string  `json:"city"`
	Temperature  int     `json:"temperature"`
	Condition    string  `json:"condition"`
	Icon         string  `json:"icon"`
	Humidity     int     `json:"humidity"`
	WindSpeedKmh float64 `json:"windSpeedKmh"`
}

// Service fetches current conditions from Open-Meteo for the dataset's
// cities. Responses are cached per city with a short TTL so itinerary views
// that show several widgets do not hammer the upstream API.
type Service struct {
	Logger  *slog.Logger
	Client  *http.Client
	Store   *refdata.Store
	BaseURL string

	cache gcache.Cache
}

// NewService creates a weather service reading city coordinates from the
// given reference store.
func NewService(logger *slog.Logger, client *http.Client, store *refdata.Store) *Service {
	return &Service{
		Logger:  logger,
		Client:  client,
		Store:   store,
		BaseURL: DefaultBaseURL,
		cache:   gcache.New(cacheSize).LRU().Expiration(cacheTTL).Build(),
	}
}

// openMeteoResponse mirrors the slice of the Open-Meteo payload we read.
type openMeteoResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// Current returns the current weather for a city, serving from cache when a
// recent report is available.
func (s *Service) Current(ctx context.Context, cityID string) (Report, error) {
	if cached, err := s.cache.Get(cityID); err == nil {
		return cached.(Report), nil
	}

	city, ok := s.Store.City(cityID)
	if !ok {
		return Report{}, fmt.Errorf("%w: %q", ErrUnknownCity, cityID)
	}

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(city.Center.Lat, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(city.Center.Lon, 'f', -1, 64))
	query.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m")
	query.Set("timezone", "Asia/Tokyo")
	endpoint := s.BaseURL + "/forecast?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return Report{}, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("failed to fetch weather for %s: %w", cityID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("weather API returned status %d for %s", resp.StatusCode, cityID)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read weather response: %w", err)
	}

	var payload openMeteoResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return Report{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	cond := conditionFor(payload.Current.WeatherCode)
	report := Report{
		CityID:       cityID,
		City:         city.Name,
		Temperature:  int(math.Round(payload.Current.Temperature)),
		Condition:    cond.Condition,
		Icon:         cond.Icon,
		Humidity:     int(math.Round(payload.Current.Humidity)),
		WindSpeedKmh: payload.Current.WindSpeed,
	}

	if err := s.cache.Set(cityID, report); err != nil {
		s.Logger.Warn("Failed to cache weather report", "city", cityID, "error", err)
	}
	return report, nil
}
