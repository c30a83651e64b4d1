package ports

import (
	"context"
	"inovelli-led-manager/internal/domain/model"
)

type ManagerPort interface {
	Process(ctx context.Context, node string, msg *model.Message) (*model.Result, error)
	Reject(ctx context.Context, node string, cause error) error
	Status(ctx context.Context, node string) (model.Status, error)
	Nodes(ctx context.Context) []*model.DeviceConfig

	// Preset management
	GetPresets(ctx context.Context) (*model.Presets, error)
	UpdatePresets(ctx context.Context, presets *model.Presets) error
}
