package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/joglog/joglog/internal/pkg/constants"
	"github.com/joglog/joglog/internal/pkg/logger"
	"github.com/joglog/joglog/internal/pkg/models"
	natspkg "github.com/joglog/joglog/internal/pkg/nats"
	"github.com/joglog/joglog/services/tracking"
)

// LocationHandler consumes location updates pushed over NATS, the path
// companion devices use instead of HTTP
type LocationHandler struct {
	trackingUC tracking.TrackingUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewLocationHandler creates a new location NATS handler
func NewLocationHandler(trackingUC tracking.TrackingUC, natsClient *natspkg.Client) *LocationHandler {
	return &LocationHandler{
		trackingUC: trackingUC,
		natsClient: natsClient,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitConsumers subscribes to the subjects the tracking service consumes
func (h *LocationHandler) InitConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectLocationUpdate, func(msg *nats.Msg) {
		if err := h.handleLocationUpdate(msg.Data); err != nil {
			logger.Error("Error handling location update",
				logger.String("subject", constants.SubjectLocationUpdate),
				logger.Err(err))
		}
	})
	if err != nil {
		return err
	}

	h.subs = append(h.subs, sub)
	return nil
}

// handleLocationUpdate processes a location update message
func (h *LocationHandler) handleLocationUpdate(msg []byte) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(msg, &update); err != nil {
		logger.Error("Failed to unmarshal location update", logger.Err(err))
		return err
	}

	logger.Debug("Received location update",
		logger.String("session_id", update.SessionID),
		logger.Float64("latitude", update.Sample.Latitude),
		logger.Float64("longitude", update.Sample.Longitude))

	return h.trackingUC.AddSample(context.Background(), &update)
}

// Close drains all subscriptions
func (h *LocationHandler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
}
