package ports

import (
	"context"
	"inovelli-led-manager/internal/domain/model"
)

type PresetRepository interface {
	Get(ctx context.Context) (*model.Presets, error)
	Save(ctx context.Context, presets *model.Presets) error
}
