package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/tourism-registry/internal/domain/repository"
	"go.uber.org/zap"
)

// maxStreamLength bounds the audit stream so it cannot grow without limit.
const maxStreamLength = 10000

type streamRepository struct {
	client    *redis.Client
	streamKey string
	logger    *zap.Logger
}

// NewStreamRepository creates a publisher for the site audit stream.
func NewStreamRepository(client *redis.Client, streamKey string, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client:    client,
		streamKey: streamKey,
		logger:    logger,
	}
}

// PublishSiteEvent appends one mutation event to the stream. Callers treat
// failures as non-fatal.
func (r *streamRepository) PublishSiteEvent(ctx context.Context, event repository.SiteEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal site event: %w", err)
	}

	err = r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.streamKey,
		MaxLen: maxStreamLength,
		Approx: true,
		Values: map[string]interface{}{
			"event":   event.Event,
			"site_id": event.SiteID,
			"payload": payload,
		},
	}).Err()
	if err != nil {
		r.logger.Error("Failed to publish site event",
			zap.String("stream", r.streamKey),
			zap.String("event", event.Event),
			zap.String("site_id", event.SiteID),
			zap.Error(err))
		return fmt.Errorf("failed to publish site event: %w", err)
	}

	r.logger.Debug("Site event published",
		zap.String("event", event.Event),
		zap.String("site_id", event.SiteID))
	return nil
}
