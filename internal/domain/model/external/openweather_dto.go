package external

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ResponseCode is the OpenWeatherMap "cod" field. The API sends it as a JSON string on
// some endpoints ("404", "200") and as a number on others (404, 200).
type ResponseCode string

const notFoundCode ResponseCode = "404"

// UnmarshalJSON accepts both the string and the numeric form.
func (c *ResponseCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*c = ResponseCode(value)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("cod must be a string or a number: %w", err)
	}
	if value, err := number.Int64(); err == nil {
		*c = ResponseCode(strconv.FormatInt(value, 10))
		return nil
	}
	*c = ResponseCode(number.String())
	return nil
}

// IsNotFound reports the upstream not-found sentinel.
func (c ResponseCode) IsNotFound() bool {
	return c == notFoundCode
}

// CurrentWeatherResponse represents the response of /data/2.5/weather
type CurrentWeatherResponse struct {
	Cod     ResponseCode       `json:"cod"`
	Message string             `json:"message,omitempty"`
	Name    string             `json:"name"`
	Dt      int64              `json:"dt"`
	Main    MainDTO            `json:"main"`
	Wind    WindDTO            `json:"wind"`
	Weather []WeatherDetailDTO `json:"weather"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// ForecastResponse represents the response of /data/2.5/forecast
type ForecastResponse struct {
	Cod     ResponseCode      `json:"cod"`
	Message json.RawMessage   `json:"message,omitempty"`
	Cnt     int               `json:"cnt"`
	List    []ForecastItemDTO `json:"list"`
	City    struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

// ForecastItemDTO is one 3-hour step of the forecast list
type ForecastItemDTO struct {
	Dt      int64              `json:"dt"`
	DtTxt   string             `json:"dt_txt"`
	Main    MainDTO            `json:"main"`
	Wind    WindDTO            `json:"wind"`
	Weather []WeatherDetailDTO `json:"weather"`
}

type MainDTO struct {
	Temp     float64 `json:"temp"`
	Pressure float64 `json:"pressure"`
	Humidity float64 `json:"humidity"`
}

type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

type WeatherDetailDTO struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// APIErrorResponse represents error responses from OpenWeatherMap.
// In mode=xml the body is <ClientError><cod>404</cod><message>...</message></ClientError>.
type APIErrorResponse struct {
	Cod     ResponseCode `json:"cod" xml:"cod"`
	Message string       `json:"message" xml:"message"`
}
