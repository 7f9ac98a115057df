package climate

import "github.com/homepi/climate-server/internal/sensor"

// ReadingsCollector runs one aggregation pass over every configured source.
type ReadingsCollector interface {
	Collect() (map[string]*sensor.Reading, error)
}

type Handler struct {
	collector ReadingsCollector
}

// indexPage is the view model for the HTML landing page.
type indexPage struct {
	PrimaryTempF    float64
	PrimaryHumidity float64
	BedroomTempF    float64
	BedroomHumidity float64
	PressureNote    string
	PressureInHg    float64
}
