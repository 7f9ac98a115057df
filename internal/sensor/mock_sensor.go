package sensor

import (
	"log/slog"
)

func (m *MockSources) ReadQuality() (*Reading, error) {
	slog.Debug(">>ReadQuality")
	defer slog.Debug("<<ReadQuality")

	co2 := 612
	return &Reading{
		TemperatureC: 21.5 + m.config.QualityThermometer.CalibrationOffsetCelsius,
		Humidity:     41.0,
		CO2:          &co2,
	}, nil
}

func (m *MockSources) ReadBarometer() (*Reading, error) {
	slog.Debug(">>ReadBarometer")
	defer slog.Debug("<<ReadBarometer")

	hpa := 1013.25
	return &Reading{
		TemperatureC: 22.0 + m.config.Barometer.CalibrationOffsetCelsius,
		Humidity:     39.0,
		PressureHPa:  &hpa,
	}, nil
}

func (m *MockSources) ReadFridge() (*Reading, error) {
	slog.Debug(">>ReadFridge")
	defer slog.Debug("<<ReadFridge")

	return &Reading{
		TemperatureC: 4.0 + m.config.FridgeProbe.CalibrationOffsetCelsius,
	}, nil
}

func (m *MockSources) HasFridge() bool {
	return m.config.HaveFridgeProbe
}
