package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inovelli-led-manager/internal/adapters/input/http"
	"inovelli-led-manager/internal/adapters/mqtt"
	"inovelli-led-manager/internal/adapters/output/homeassistant"
	"inovelli-led-manager/internal/adapters/output/persistence"
	"inovelli-led-manager/internal/adapters/output/sink"
	"inovelli-led-manager/internal/config"
	"inovelli-led-manager/internal/domain/service"
	"inovelli-led-manager/internal/domain/translator"
	"inovelli-led-manager/internal/logging"
	"inovelli-led-manager/internal/ports"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	boot := logging.Default()
	if err := config.LoadDotEnv(".env"); err != nil {
		boot.Warn("ignoring .env", "error", err)
	}

	configPath := "/app/config.yaml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		boot.Error("failed to load configuration", "path", configPath, "error", err)
		return err
	}

	logger := logging.New(cfg.Log, version)
	defer logger.Close()
	logger.Info("starting Inovelli LED manager", "config", configPath, "presets", cfg.Presets.Path)

	scaler, err := translator.NewHueScaler(cfg.Translator.HueFormula)
	if err != nil {
		return fmt.Errorf("hue formula: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outputs := sink.MultiOutput{}
	statuses := sink.MultiStatus{sink.NewLogStatus(logger.Logger)}
	var entities ports.EntityLister

	if cfg.HomeAssistantEnabled() {
		haClient := homeassistant.NewClient()
		haClient.Configure(cfg.HomeAssistant.URL, cfg.HomeAssistant.Token)
		outputs = append(outputs, homeassistant.NewSink(haClient, logger.Logger).WithTimeout(cfg.HomeAssistantTimeout()))
		entities = haClient
		logger.Info("Home Assistant output enabled", "url", cfg.HomeAssistant.URL)
	}

	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttClient, err = mqtt.Connect(cfg.MQTT, logger.Logger)
		if err != nil {
			return err
		}
		defer mqttClient.Close()

		topics := mqttClient.Topics()
		outputs = append(outputs, mqtt.NewOutputPublisher(mqttClient, topics, mqttClient.QoS(), logger.Logger))
		statuses = append(statuses, mqtt.NewStatusPublisher(mqttClient, topics, mqttClient.QoS(), logger.Logger))
	}

	if len(outputs) == 0 {
		logger.Warn("no output configured, commands will only be reported over HTTP")
	}

	svc := service.NewService(
		persistence.NewJSONPresetRepository(cfg.Presets.Path),
		translator.NewFactory(scaler),
		service.Sinks{
			Errors: sink.NewLogErrors(logger.Logger),
			Status: statuses,
			Output: outputs,
		},
		logger.Logger,
	)
	if err := svc.Load(ctx); err != nil {
		return err
	}

	if mqttClient != nil {
		listener := mqtt.NewListener(svc, mqttClient.Topics(), mqttClient.QoS(), logger.Logger)
		if err := listener.Start(mqttClient); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	var httpServer *http.Server
	if cfg.HTTP.Enabled {
		httpServer = http.NewServer(svc, entities, logger.Logger)
		go func() {
			errCh <- httpServer.ListenAndServe(cfg.HTTP.Addr, cfg.HTTPReadTimeout(), cfg.HTTPWriteTimeout())
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	if httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown", "error", err)
		}
	}
	return nil
}
