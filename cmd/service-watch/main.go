package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/nikoksr/notify"
	"github.com/nikoksr/notify/service/twilio"

	"github.com/homepi/climate-server/config"
	"github.com/homepi/climate-server/internal/monitor"
	"github.com/homepi/climate-server/utils"
)

const DEFAULT_CONFIG_FILE_LOCATION = "./config/config.json"

var cmdLineFlagLogLevel string

func init() {
	flag.StringVar(&cmdLineFlagLogLevel, "log_level", config.DefaultLogLevel.String(), "The log level to start the watcher at")
}

func main() {
	flag.Parse()

	configureLogger()

	if err := godotenv.Load(); err != nil {
		slog.Warn("could not load .env file", "error", err)
	}

	configFile := os.Getenv("CONFIG_FILE_LOCATION")
	if len(configFile) == 0 {
		configFile = DEFAULT_CONFIG_FILE_LOCATION
	}

	cfg, err := config.LoadConfigSettings(configFile)
	if err != nil {
		slog.Error("failed to load config file", "error", err)
		os.Exit(1)
	}

	if len(cfg.WatchedServices) == 0 {
		slog.Error("no watched services are configured")
		os.Exit(1)
	}

	led := &monitor.LED{Pin: cfg.IndicatorPin}
	interval := time.Duration(cfg.WatchIntervalSeconds) * time.Second

	m := monitor.New(cfg.WatchedServices, monitor.SystemdChecker{}, led, interval)
	if notifier := buildNotifier(); notifier != nil {
		m = m.WithNotifier(notifier)
	}

	// runs until the process is killed
	m.Run(context.Background())
}

func configureLogger() {
	level, err := utils.ParseLogLevel(cmdLineFlagLogLevel)
	if err != nil {
		slog.Error("Failed to parse the log level, setting to DefaultLogLevel", "error", err, "log_level", cmdLineFlagLogLevel)
		level = config.DefaultLogLevel
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
	slog.SetDefault(logger)
}

// buildNotifier wires Twilio SMS when credentials are present; without them
// the watcher only drives the LED.
func buildNotifier() *notify.Notify {
	twilioAccountSID := os.Getenv("TWILIO_ACCOUNT_SID")
	twilioAuthToken := os.Getenv("TWILIO_AUTH_TOKEN")
	twilioFromPhone := os.Getenv("TWILIO_FROM_PHONE_NO")
	twilioToPhone := os.Getenv("TWILIO_TO_PHONE_NO")

	if len(twilioAccountSID) == 0 {
		return nil
	}

	slog.Info("Twilio account information present, configuring Notifier")

	twilioService, err := twilio.New(twilioAccountSID, twilioAuthToken, twilioFromPhone)
	if err != nil {
		log.Fatalf("failed to initialize Twilio service: %v", err)
	}

	twilioService.AddReceivers(twilioToPhone)

	notifier := notify.New()
	notifier.UseServices(twilioService)

	return notifier
}
