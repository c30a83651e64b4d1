package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"inovelli-led-manager/internal/domain/model"
	"os"
	"sync"
)

// FlowNodeType is the node type the presets are read from in a flows export.
const FlowNodeType = "inovelli-led-manager"

type JSONPresetRepository struct {
	filepath string
	mu       sync.RWMutex
}

// Flow editor export, either a bare node array or {"flows": [...]}.
// Every numeric field is stored as text there.
type flowsFile struct {
	Flows []flowNode `json:"flows"`
}

type flowNode struct {
	ID                 string     `json:"id"`
	Type               string     `json:"type"`
	Name               string     `json:"name"`
	Zwave              string     `json:"zwave"`
	NodeID             model.Text `json:"nodeid"`
	EntityID           string     `json:"entityid"`
	SwitchType         model.Text `json:"switchtype"`
	LightColor         model.Text `json:"lightColor"`
	LightBrightness    model.Text `json:"lightBrightness"`
	LightBrightnessOff model.Text `json:"lightBrightnessOff"`
	FanColor           model.Text `json:"fanColor"`
	FanBrightness      model.Text `json:"fanBrightness"`
	FanBrightnessOff   model.Text `json:"fanBrightnessOff"`
}

func NewJSONPresetRepository(filepath string) *JSONPresetRepository {
	return &JSONPresetRepository{filepath: filepath}
}

func (r *JSONPresetRepository) Get(ctx context.Context) (*model.Presets, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Presets{Nodes: []*model.DeviceConfig{}}, nil
		}
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var nodes []flowNode
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return nil, err
		}
		return migrate(nodes), nil
	}

	var presets model.Presets
	if err := json.Unmarshal(trimmed, &presets); err != nil {
		return nil, err
	}

	// Migration check: no native nodes but maybe a wrapped flows export
	if len(presets.Nodes) == 0 {
		var wrapped flowsFile
		if err := json.Unmarshal(trimmed, &wrapped); err == nil && len(wrapped.Flows) > 0 {
			return migrate(wrapped.Flows), nil
		}
		presets.Nodes = []*model.DeviceConfig{}
	}

	return &presets, nil
}

// Node names must be unique. A name already taken falls back to the node
// id, and a node whose id is taken too is dropped.
func migrate(nodes []flowNode) *model.Presets {
	presets := &model.Presets{Nodes: make([]*model.DeviceConfig, 0)}
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n.Type != FlowNodeType {
			continue
		}
		name := n.Name
		if name == "" || seen[name] {
			name = n.ID
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		presets.Nodes = append(presets.Nodes, &model.DeviceConfig{
			ID:                 n.ID,
			Name:               name,
			Domain:             model.Domain(n.Zwave),
			NodeID:             string(n.NodeID),
			EntityID:           n.EntityID,
			SwitchType:         string(n.SwitchType),
			LightColor:         leadingInt(n.LightColor),
			LightBrightness:    leadingInt(n.LightBrightness),
			LightBrightnessOff: leadingInt(n.LightBrightnessOff),
			FanColor:           leadingInt(n.FanColor),
			FanBrightness:      leadingInt(n.FanBrightness),
			FanBrightnessOff:   leadingInt(n.FanBrightnessOff),
		})
	}
	return presets
}

func leadingInt(t model.Text) int {
	n, _ := model.ParseLeadingInt(string(t))
	return n
}

func (r *JSONPresetRepository) Save(ctx context.Context, presets *model.Presets) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(r.filepath, data, 0644)
}
