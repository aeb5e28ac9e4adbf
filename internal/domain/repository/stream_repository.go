package repository

import (
	"context"

	"github.com/tourism-registry/internal/domain"
)

// Site event types published to the audit stream.
const (
	EventSiteCreated = "site.created"
	EventSiteDeleted = "site.deleted"
)

// SiteEvent is one audit entry for a store mutation.
type SiteEvent struct {
	Event    string          `json:"event"`
	SiteID   string          `json:"site_id"`
	Name     string          `json:"name,omitempty"`
	District domain.District `json:"district,omitempty"`
}

// StreamRepository publishes site mutation events. Publishing is
// fire-and-forget: callers log failures and move on.
type StreamRepository interface {
	PublishSiteEvent(ctx context.Context, event SiteEvent) error
}
