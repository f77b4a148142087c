package model

import "time"

// WeatherReading is the flat view of a current-weather response.
type WeatherReading struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"` // Kelvin
	Pressure    float64 `json:"pressure"`    // hPa
	Humidity    float64 `json:"humidity"`    // %
	Description string  `json:"description"`
	WindSpeed   float64 `json:"windSpeed"` // m/s
}

// WeatherReport is what the shells display for a current-weather lookup.
type WeatherReport struct {
	City string `json:"city"`
	// Notice is set when the city was not typed and the top favorite was used instead.
	Notice  string          `json:"notice,omitempty"`
	Text    string          `json:"text"`
	Found   bool            `json:"found"`
	Reading *WeatherReading `json:"reading,omitempty"`
}

// ForecastPoint is one (timestamp, temperature) sample.
type ForecastPoint struct {
	Timestamp   time.Time `json:"timestamp"`
	Label       string    `json:"label"`
	Temperature float64   `json:"temperature"`
}

// ForecastSeries is the 5-day forecast ready to be plotted.
type ForecastSeries struct {
	City   string          `json:"city"`
	Notice string          `json:"notice,omitempty"`
	Points []ForecastPoint `json:"points"`
}

type AddFavoriteDTO struct {
	City string `json:"city" validate:"required"`
}

// FavoritesResponse lists the favorites in insertion order.
type FavoritesResponse struct {
	Cities []string `json:"cities"`
}
