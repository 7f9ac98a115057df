package sensor

import (
	"fmt"
	"strings"
)

// Reading is one sample from a sensor source. Temperature and humidity are
// always present; CO2 and pressure only for sources that measure them. A
// Reading is never mutated after construction; "no reading" is a nil
// *Reading, not a zero value.
type Reading struct {
	TemperatureC float64  `json:"temperature_c"`
	Humidity     float64  `json:"humidity"`
	CO2          *int     `json:"co2_ppm,omitempty"`
	PressureHPa  *float64 `json:"pressure_hpa,omitempty"`
}

const hpaPerInHg = 33.6585

// TemperatureF converts the stored Celsius value without rounding; rounding
// happens only at render time.
func (r *Reading) TemperatureF() float64 {
	return r.TemperatureC*9/5 + 32
}

// PressureInHg converts the stored pressure. Only meaningful when
// PressureHPa is present.
func (r *Reading) PressureInHg() float64 {
	if r.PressureHPa == nil {
		return 0
	}
	return *r.PressureHPa / hpaPerInHg
}

func (r *Reading) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.0f℉, %.0f%% humidity", r.TemperatureF(), r.Humidity)
	if r.CO2 != nil {
		fmt.Fprintf(&b, ", %dppm CO2", *r.CO2)
	}
	if r.PressureHPa != nil {
		fmt.Fprintf(&b, ", %.1fhPa (%.2f inHg)", *r.PressureHPa, r.PressureInHg())
	}
	return b.String()
}
