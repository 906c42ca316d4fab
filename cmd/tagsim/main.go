package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/trufurrs/tagsim/internal/services"
	"github.com/trufurrs/tagsim/internal/utils"
	"github.com/trufurrs/tagsim/pkg/file"
	"github.com/trufurrs/tagsim/pkg/identity"
	"github.com/trufurrs/tagsim/pkg/mqtt"
)

func main() {
	// Set up human-readable console logging
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	// Initialize file operations handler
	fileClient := file.NewFileService()

	// Load configuration on top of the compiled-in defaults
	config, err := utils.LoadConfig("configs/config.yaml", fileClient)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize the simulated tag identity
	tagInfo := identity.NewTagInfo(config.Identity.TagFile, identity.Identity{
		DeviceID:        config.Identity.DeviceID,
		PetID:           config.Identity.PetID,
		UserID:          config.Identity.UserID,
		FirmwareVersion: config.Identity.FirmwareVersion,
	}, fileClient)
	if err := tagInfo.LoadTagInfo(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load tag identity")
	}

	// Generate a unique MQTT client ID by appending a UUID
	clientID := config.MQTT.ClientID + "-" + uuid.New().String()

	log.Info().
		Str("broker", config.MQTT.Broker).
		Str("topic", config.MQTT.Topic).
		Str("client_id", clientID).
		Str("device_id", tagInfo.GetDeviceID()).
		Int("duration_minutes", config.Simulation.DurationMinutes).
		Float64("base_latitude", config.Simulation.BaseLatitude).
		Float64("base_longitude", config.Simulation.BaseLongitude).
		Dur("interval", config.Simulation.Interval).
		Msg("TruFurrs tag simulator starting")

	// Connection failure is fatal; nothing is published on a dead session
	mqttClient := mqtt.NewMqttService(log)
	if err := mqttClient.Initialize(config.MQTT.Broker, clientID, config.MQTT.Username, config.MQTT.Password); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MQTT broker")
	}
	log.Info().Str("broker", config.MQTT.Broker).Msg("Connected to MQTT broker")

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	simulator := services.NewTelemetryService(config, tagInfo, mqttClient, log, rng)

	if err := simulator.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Telemetry run failed")
	}

	log.Info().Msg("Disconnecting from MQTT broker")
	mqttClient.Disconnect(250)

	if ctx.Err() != nil {
		log.Info().Int("published", simulator.Published()).Msg("Run stopped by user")
	} else {
		log.Info().Int("published", simulator.Published()).Msg("Run finished")
	}
}
