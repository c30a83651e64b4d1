package ports

import (
	"context"
)

type HomeAssistantPort interface {
	CallService(ctx context.Context, domain, service string, data any) error
	Configure(url, token string)
	IsConfigured() bool
}

type HomeAssistantEntity struct {
	EntityID     string `json:"entity_id"`
	FriendlyName string `json:"friendly_name"`
}

// EntityLister is implemented by clients that can enumerate entities.
type EntityLister interface {
	GetAllEntities(ctx context.Context) ([]HomeAssistantEntity, error)
}
