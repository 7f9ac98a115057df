package server

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/homepi/climate-server/config"
	"github.com/homepi/climate-server/internal/collector"
	"github.com/homepi/climate-server/internal/sensor"
	"github.com/homepi/climate-server/services/climate"
	"github.com/homepi/climate-server/services/health"
	"github.com/homepi/climate-server/services/metrics"
	"github.com/homepi/climate-server/services/readings"
	"github.com/homepi/climate-server/services/status"
	"github.com/homepi/climate-server/utils"
	"github.com/joho/godotenv"
)

const (
	DEFAULT_SERVER_PORT          = "8000"
	DEFAULT_CONFIG_FILE_LOCATION = "./config/config.json"
	DEFAULT_REMOTE_TIMEOUT       = 10
)

// Used by "flag" to read command line arguments
var (
	cmdLineFlagMockSensor bool
	cmdLineFlagLogLevel   string
)

type ServerConfig struct {
	mux                *http.ServeMux
	ServerPort         string
	UseMockSensor      bool
	LogFileLocation    string
	ConfigFileLocation string
	Logger             *slog.Logger
	LoggerLevel        *slog.LevelVar
	LogFile            *os.File

	Sources        sensor.Sources
	Collector      *collector.Collector
	OriginPatterns []string
}

// init will read and initialize the global command line variables
func init() {
	flag.BoolVar(&cmdLineFlagMockSensor, "use_mock_sensor", false, "Indicate if we should use mock sensors for the server instance.")
	flag.StringVar(&cmdLineFlagLogLevel, "log_level", config.DefaultLogLevel.String(), "The log level to start the server at")
}

// InitializeServer loads configuration, builds the sensor sources and the
// collector, and registers all routes.
func InitializeServer() (*ServerConfig, error) {
	slog.Debug(">>InitializeServer")
	defer slog.Debug("<<InitializeServer")

	sc, err := initializeServerConfig()
	if err != nil {
		return nil, err
	}

	sc.mux = http.NewServeMux()

	healthHandler := health.NewHandler()
	healthHandler.RegisterRoutes(sc.mux)

	climateHandler := climate.NewHandler(sc.Collector)
	climateHandler.RegisterRoutes(sc.mux)

	metricsHandler := metrics.NewHandler(sc.Collector)
	metricsHandler.RegisterRoutes(sc.mux)

	readingsHandler := readings.NewHandler(sc.Collector)
	readingsHandler.RegisterRoutes(sc.mux)

	statusHandler := status.NewHandler(sc.Collector, sc.OriginPatterns)
	statusHandler.RegisterRoutes(sc.mux)

	return sc, nil
}

// RunServer will start listening for connections
func (sc *ServerConfig) RunServer() {
	slog.Info(">>RunServer")
	defer slog.Info("<<RunServer")

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", sc.ServerPort),
		Handler: withRequestLogging(sc.mux),
	}

	slog.Info("Starting server", "port", sc.ServerPort)
	if err := server.ListenAndServe(); err != nil {
		slog.Error("Server failed", "error", err)
	}

	if sc.LogFile != nil {
		sc.LogFile.Close()
	}
}

func initializeServerConfig() (*ServerConfig, error) {
	sc := &ServerConfig{}

	// MUST BE FIRST
	sc.readEnvironmentVariables()

	// configure slog
	sc.configureLogger()

	// load the configuration file
	cfg, err := config.LoadConfigSettings(sc.ConfigFileLocation)
	if err != nil {
		slog.Error("failed to load config file", "error", err)
		return nil, err
	}

	// build the sensor access layer
	sources, err := sensor.NewSources(cfg.SensorTimeoutSeconds, cfg.Devices, sc.UseMockSensor)
	if err != nil {
		slog.Error("failed to initialize sensors", "error", err)
		return nil, err
	}

	sc.Sources = sources
	sc.OriginPatterns = cfg.OriginPatterns
	sc.Collector = buildCollector(cfg, sources)

	return sc, nil
}

// buildCollector composes the retry policy around every configured source.
// Each source gets the default single-retry budget; this is the one place
// the wrapping happens.
func buildCollector(cfg config.Config, sources sensor.Sources) *collector.Collector {
	readers := map[string]*collector.RetryingReader{
		sensor.SOURCE_QUALITY:   collector.NewRetryingReader(sensor.SOURCE_QUALITY, sources.ReadQuality),
		sensor.SOURCE_BAROMETER: collector.NewRetryingReader(sensor.SOURCE_BAROMETER, sources.ReadBarometer),
	}

	if sources.HasFridge() {
		readers[sensor.SOURCE_FRIDGE] = collector.NewRetryingReader(sensor.SOURCE_FRIDGE, sources.ReadFridge)
	}

	timeout := cfg.SensorTimeoutSeconds
	if timeout <= 0 {
		timeout = DEFAULT_REMOTE_TIMEOUT
	}

	for _, rc := range cfg.RemoteSensors {
		remote := sensor.NewRemoteSensor(rc.Name, rc.URL, time.Duration(timeout)*time.Second)
		readers[rc.Name] = collector.NewRetryingReader(rc.Name, remote.Read)
	}

	return collector.New(readers)
}

func (sc *ServerConfig) readEnvironmentVariables() {
	// load the environment
	err := godotenv.Load()
	if err != nil {
		slog.Warn("could not load .env file", "error", err)
	}

	sc.ServerPort = os.Getenv("PORT")
	if len(sc.ServerPort) == 0 {
		sc.ServerPort = DEFAULT_SERVER_PORT
	}

	sc.LogFileLocation = os.Getenv("LOG_FILE_LOCATION")

	sc.ConfigFileLocation = os.Getenv("CONFIG_FILE_LOCATION")
	if len(sc.ConfigFileLocation) == 0 {
		sc.ConfigFileLocation = DEFAULT_CONFIG_FILE_LOCATION
	}

	// mock sensor flag is a command line flag for debugging
	sc.UseMockSensor = cmdLineFlagMockSensor
}

// configureLogger will initialize slog and save the log level so it can be
// adjusted at runtime.
func (sc *ServerConfig) configureLogger() {
	currentLevel := new(slog.LevelVar)

	level, err := utils.ParseLogLevel(cmdLineFlagLogLevel)
	if err != nil {
		slog.Error("Failed to parse the log level, setting to DefaultLogLevel", "error", err, "log_level", cmdLineFlagLogLevel)
		level = config.DefaultLogLevel
	}

	currentLevel.Set(level)

	var handler slog.Handler
	if len(sc.LogFileLocation) != 0 {
		slog.Info("Save to log file", "file", sc.LogFileLocation)
		logFile, err := os.OpenFile(sc.LogFileLocation, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			slog.Warn("Failed to open log file", "error", err)
			os.Exit(1)
		}

		sc.LogFile = logFile
		handler = slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: currentLevel})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: currentLevel})
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	sc.Logger = logger
	sc.LoggerLevel = currentLevel
}
