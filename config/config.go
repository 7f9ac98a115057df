package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/homepi/climate-server/internal/sensor"
)

const DefaultLogLevel = slog.LevelInfo

type RemoteSensorConfig struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Config struct {
	Devices              []sensor.DeviceConfig `json:"devices"`
	SensorTimeoutSeconds int                   `json:"sensor_timeout_seconds"`
	RemoteSensors        []RemoteSensorConfig  `json:"remote_sensors"`
	WatchedServices      []string              `json:"watched_services"`
	IndicatorPin         int                   `json:"indicator_pin"`
	WatchIntervalSeconds int                   `json:"watch_interval_seconds"`
	OriginPatterns       []string              `json:"origin_patterns"`
}

func LoadConfigSettings(filename string) (Config, error) {
	var config Config
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}

	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return config, err
	}

	err = json.Unmarshal(bytes, &config)
	if err != nil {
		return config, err
	}

	return config, nil
}
