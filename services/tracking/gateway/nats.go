package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joglog/joglog/internal/pkg/constants"
	"github.com/joglog/joglog/internal/pkg/models"
	natspkg "github.com/joglog/joglog/internal/pkg/nats"
	"github.com/joglog/joglog/services/tracking"
)

type trackingGW struct {
	natsClient *natspkg.Client
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(natsClient *natspkg.Client) tracking.TrackingGW {
	return &trackingGW{
		natsClient: natsClient,
	}
}

// PublishSessionCompleted publishes a session completed event to NATS
func (g *trackingGW) PublishSessionCompleted(ctx context.Context, event *models.SessionCompletedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal session completed event: %w", err)
	}

	return g.natsClient.Publish(constants.SubjectSessionCompleted, data)
}
