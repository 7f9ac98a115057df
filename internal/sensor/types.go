package sensor

import "time"

const (
	DRIVERTYPE_BME280  string = "BME280"
	DRIVERTYPE_T67XX   string = "T67XX"
	DRIVERTYPE_DS18B20 string = "DS18B20"

	SOURCE_QUALITY   string = "quality"
	SOURCE_BAROMETER string = "barometer"
	SOURCE_FRIDGE    string = "fridge"
)

type (
	SourceConfig struct {
		SensorTimeout time.Duration
		Devices       []DeviceConfig

		QualityThermometer DeviceConfig
		QualityCO2         DeviceConfig
		Barometer          DeviceConfig
		FridgeProbe        DeviceConfig
		HaveFridgeProbe    bool
	}

	DeviceConfig struct {
		DriverType               string  `json:"driver_type"`
		Source                   string  `json:"source"`
		Bus                      int     `json:"bus"`
		Address                  string  `json:"address"`
		Name                     string  `json:"name"`
		Description              string  `json:"description"`
		CalibrationOffsetCelsius float64 `json:"calibration_offset_celsius"`
	}

	// Sources reads the local hardware. Each call is one fresh sample;
	// transient bus faults come back wrapped in TransientError, anything
	// else is a defect and propagates.
	Sources interface {
		ReadQuality() (*Reading, error)
		ReadBarometer() (*Reading, error)
		ReadFridge() (*Reading, error)
		HasFridge() bool
	}

	HardwareSources struct {
		config SourceConfig
	}

	MockSources struct {
		config SourceConfig
	}
)

// NewSources builds the hardware access layer from the configured devices.
// useMock swaps in canned values for development off the Pi.
func NewSources(sensorTimeout int, devices []DeviceConfig, useMock bool) (Sources, error) {
	sc := SourceConfig{
		SensorTimeout: time.Duration(sensorTimeout) * time.Second,
		Devices:       devices,
	}

	for _, d := range devices {
		switch d.Source {
		case SOURCE_QUALITY:
			if d.DriverType == DRIVERTYPE_T67XX {
				sc.QualityCO2 = d
			} else {
				sc.QualityThermometer = d
			}
		case SOURCE_BAROMETER:
			sc.Barometer = d
		case SOURCE_FRIDGE:
			sc.FridgeProbe = d
			sc.HaveFridgeProbe = true
		}
	}

	if useMock {
		return &MockSources{config: sc}, nil
	}

	return &HardwareSources{config: sc}, nil
}
