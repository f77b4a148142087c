package external

import (
	"encoding/xml"
	"time"
)

// xmlTimeLayout is the timestamp layout of mode=xml responses, always UTC
const xmlTimeLayout = "2006-01-02T15:04:05"

const forecastLabelLayout = "2006-01-02 15:04:05"

type xmlValue struct {
	Value float64 `xml:"value,attr"`
}

// CurrentWeatherXML represents the mode=xml response of /data/2.5/weather
type CurrentWeatherXML struct {
	XMLName xml.Name `xml:"current"`
	City    struct {
		Name    string `xml:"name,attr"`
		Country string `xml:"country"`
	} `xml:"city"`
	Temperature xmlValue `xml:"temperature"`
	Humidity    xmlValue `xml:"humidity"`
	Pressure    xmlValue `xml:"pressure"`
	Wind        struct {
		Speed     xmlValue `xml:"speed"`
		Direction xmlValue `xml:"direction"`
	} `xml:"wind"`
	Weather struct {
		Value string `xml:"value,attr"`
		Icon  string `xml:"icon,attr"`
	} `xml:"weather"`
	LastUpdate struct {
		Value string `xml:"value,attr"`
	} `xml:"lastupdate"`
}

// ToResponse maps the XML body onto the JSON response shape
func (x *CurrentWeatherXML) ToResponse() *CurrentWeatherResponse {
	response := &CurrentWeatherResponse{
		Cod:  "200",
		Name: x.City.Name,
		Dt:   parseXMLTime(x.LastUpdate.Value).Unix(),
		Main: MainDTO{
			Temp:     x.Temperature.Value,
			Pressure: x.Pressure.Value,
			Humidity: x.Humidity.Value,
		},
		Wind: WindDTO{
			Speed: x.Wind.Speed.Value,
			Deg:   x.Wind.Direction.Value,
		},
		Weather: []WeatherDetailDTO{{Description: x.Weather.Value, Icon: x.Weather.Icon}},
	}
	response.Sys.Country = x.City.Country
	return response
}

// ForecastXML represents the mode=xml response of /data/2.5/forecast
type ForecastXML struct {
	XMLName  xml.Name `xml:"weatherdata"`
	Location struct {
		Name    string `xml:"name"`
		Country string `xml:"country"`
	} `xml:"location"`
	Times []ForecastTimeXML `xml:"forecast>time"`
}

// ForecastTimeXML is one 3-hour step of the XML forecast
type ForecastTimeXML struct {
	From   string `xml:"from,attr"`
	Symbol struct {
		Name string `xml:"name,attr"`
		Var  string `xml:"var,attr"`
	} `xml:"symbol"`
	WindDirection struct {
		Deg float64 `xml:"deg,attr"`
	} `xml:"windDirection"`
	WindSpeed struct {
		Mps float64 `xml:"mps,attr"`
	} `xml:"windSpeed"`
	Temperature xmlValue `xml:"temperature"`
	Pressure    xmlValue `xml:"pressure"`
	Humidity    xmlValue `xml:"humidity"`
}

// ToResponse maps the XML body onto the JSON response shape
func (x *ForecastXML) ToResponse() *ForecastResponse {
	response := &ForecastResponse{
		Cod:  "200",
		Cnt:  len(x.Times),
		List: make([]ForecastItemDTO, 0, len(x.Times)),
	}
	response.City.Name = x.Location.Name
	response.City.Country = x.Location.Country

	for _, step := range x.Times {
		from := parseXMLTime(step.From)
		response.List = append(response.List, ForecastItemDTO{
			Dt:    from.Unix(),
			DtTxt: from.Format(forecastLabelLayout),
			Main: MainDTO{
				Temp:     step.Temperature.Value,
				Pressure: step.Pressure.Value,
				Humidity: step.Humidity.Value,
			},
			Wind:    WindDTO{Speed: step.WindSpeed.Mps, Deg: step.WindDirection.Deg},
			Weather: []WeatherDetailDTO{{Description: step.Symbol.Name, Icon: step.Symbol.Var}},
		})
	}
	return response
}

func parseXMLTime(value string) time.Time {
	parsed, err := time.ParseInLocation(xmlTimeLayout, value, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
