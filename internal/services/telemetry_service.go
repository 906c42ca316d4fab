package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/trufurrs/tagsim/internal/constants"
	"github.com/trufurrs/tagsim/internal/models"
	"github.com/trufurrs/tagsim/internal/utils"
	"github.com/trufurrs/tagsim/pkg/geo"
	"github.com/trufurrs/tagsim/pkg/identity"
	"github.com/trufurrs/tagsim/pkg/mqtt"
)

// Fabricated device status ranges.
const (
	batteryMin   = 15.0
	batteryMax   = 100.0
	maxStepCount = 5000
)

// timestampLayout matches the backend's expected local-time ISO-8601
// format with microsecond precision.
const timestampLayout = "2006-01-02T15:04:05.000000"

// TelemetryService generates synthetic tag telemetry and publishes it to
// the broker on a fixed cadence until the message budget is exhausted or
// the context is cancelled.
type TelemetryService struct {
	// Configuration fields
	topic        string
	qos          int
	total        int
	interval     time.Duration
	startupDelay time.Duration
	alertIDs     []string

	// Dependencies
	tagInfo    identity.TagInfoInterface
	mqttClient mqtt.MQTTClient
	logger     zerolog.Logger
	sampler    *geo.Sampler
	fence      geo.Fence
	rng        *rand.Rand

	// Internal state
	published int
}

// NewTelemetryService creates a new TelemetryService from the given
// configuration. The random source drives both the location sampler and
// the fabricated device readings, so a seeded source makes a run
// reproducible.
func NewTelemetryService(config utils.Config, tagInfo identity.TagInfoInterface,
	mqttClient mqtt.MQTTClient, logger zerolog.Logger, rng *rand.Rand) *TelemetryService {

	base := geo.Point{
		Latitude:  config.Simulation.BaseLatitude,
		Longitude: config.Simulation.BaseLongitude,
		Altitude:  config.Simulation.BaseAltitude,
	}

	return &TelemetryService{
		topic:        config.MQTT.Topic,
		qos:          config.MQTT.QOS,
		total:        config.Simulation.DurationMinutes,
		interval:     config.Simulation.Interval,
		startupDelay: config.Simulation.StartupDelay,
		alertIDs:     config.Simulation.AlertIDs,
		tagInfo:      tagInfo,
		mqttClient:   mqttClient,
		logger:       logger,
		sampler: geo.NewSampler(base, config.Simulation.LatJitter,
			config.Simulation.LonJitter, config.Simulation.AltJitter, rng),
		fence: geo.Fence{
			ID:        config.Fence.ID,
			CenterLat: config.Fence.CenterLat,
			CenterLon: config.Fence.CenterLon,
			RadiusM:   config.Fence.RadiusM,
		},
		rng: rng,
	}
}

// Run publishes the configured number of telemetry messages, one per
// interval, and blocks until the run completes or ctx is cancelled.
// Per-cycle failures are logged and the loop keeps its schedule;
// cancellation is a controlled shutdown, not an error.
func (t *TelemetryService) Run(ctx context.Context) error {
	if t.startupDelay > 0 && !t.wait(ctx, t.startupDelay) {
		t.logger.Info().Msg("Run interrupted before first publish")
		return nil
	}

	t.logger.Info().
		Int("total_messages", t.total).
		Str("topic", t.topic).
		Msg("Starting to publish telemetry")

	for i := 0; i < t.total; i++ {
		if ctx.Err() != nil {
			t.logger.Info().Int("published", t.published).Msg("Run interrupted, stopping early")
			return nil
		}

		if err := t.publishCycle(i); err != nil {
			t.logger.Error().
				Err(err).
				Int("message", i+1).
				Msg("Failed to publish telemetry message")
		} else {
			t.published++
		}

		// No delay after the final message.
		if i < t.total-1 {
			t.logger.Info().Dur("interval", t.interval).Msg("Waiting before next message")
			if !t.wait(ctx, t.interval) {
				t.logger.Info().Int("published", t.published).Msg("Run interrupted, stopping early")
				return nil
			}
		}
	}

	t.logger.Info().Int("published", t.published).Msg("Telemetry run completed")
	return nil
}

// Published returns the number of successfully published messages.
func (t *TelemetryService) Published() int {
	return t.published
}

// publishCycle produces and publishes a single telemetry message.
func (t *TelemetryService) publishCycle(index int) error {
	point := t.sampler.Sample()
	message := t.buildTelemetry(point)

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to serialize telemetry message: %w", err)
	}

	t.logger.Debug().
		Int("payload_bytes", len(payload)).
		RawJSON("payload", payload).
		Msg("Serialized telemetry message")

	token := t.mqttClient.Publish(t.topic, byte(t.qos), false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish telemetry message: %w", err)
	}

	t.logger.Info().
		Int("message", index+1).
		Int("total", t.total).
		Float64("latitude", point.Latitude).
		Float64("longitude", point.Longitude).
		Float64("altitude", point.Altitude).
		Float64("battery", message.Device.BatteryLevel).
		Int("steps", message.Device.StepCount).
		Str("fence_status", message.Fence.Status).
		Float64("fence_distance_m", message.Fence.DistanceM).
		Str("timestamp", message.Location.Timestamp).
		Msg("Telemetry message published")

	if message.AlertID != "" {
		t.logger.Warn().Str("alert_id", message.AlertID).Msg("Alert raised")
	}

	return nil
}

// buildTelemetry assembles the full message for the sampled point.
func (t *TelemetryService) buildTelemetry(point geo.Point) models.Telemetry {
	tag := t.tagInfo.GetIdentity()
	evaluation := t.fence.Evaluate(point)

	battery := batteryMin + t.rng.Float64()*(batteryMax-batteryMin)

	return models.Telemetry{
		DeviceID:        tag.DeviceID,
		FirmwareVersion: tag.FirmwareVersion,
		PetID:           tag.PetID,
		UserID:          tag.UserID,
		AlertID:         t.alertIDs[t.rng.Intn(len(t.alertIDs))],
		Location: models.Location{
			GPSSignal: constants.GPSSignalAvailable,
			Longitude: point.Longitude,
			Latitude:  point.Latitude,
			Altitude:  point.Altitude,
			Timestamp: time.Now().Format(timestampLayout),
		},
		Device: models.DeviceStatus{
			BatteryLevel: math.Round(battery*100) / 100,
			StepCount:    t.rng.Intn(maxStepCount + 1),
			Heartbeat:    constants.DeviceHeartbeat,
		},
		Fence: models.FenceStatus{
			FenceID:   t.fence.ID,
			Status:    evaluation.Status,
			CenterLat: t.fence.CenterLat,
			CenterLon: t.fence.CenterLon,
			RadiusM:   t.fence.RadiusM,
			DistanceM: evaluation.DistanceM,
		},
	}
}

// wait sleeps for d unless ctx is cancelled first. It reports whether
// the full duration elapsed.
func (t *TelemetryService) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
