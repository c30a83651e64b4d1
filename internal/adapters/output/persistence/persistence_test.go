package persistence

import (
	"context"
	"inovelli-led-manager/internal/domain/model"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONPresetRepository_FlowsExport(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "flows.json")

	flows := `[
		{"id": "tab1", "type": "tab", "label": "Flow 1"},
		{
			"id": "a1b2", "type": "inovelli-led-manager", "name": "Hallway",
			"zwave": "zwave", "nodeid": "5,6", "entityid": "",
			"switchtype": "38", "lightColor": "120", "lightBrightness": "5",
			"lightBrightnessOff": "1", "fanColor": "240", "fanBrightness": "7",
			"fanBrightnessOff": "0"
		},
		{
			"id": "c3d4", "type": "inovelli-led-manager", "name": "",
			"zwave": "zwave_js", "nodeid": 12, "entityid": "light.kitchen",
			"switchtype": "dimmer", "lightColor": "", "lightBrightness": "10"
		}
	]`
	require.NoError(t, os.WriteFile(tmpFile, []byte(flows), 0644))

	repo := NewJSONPresetRepository(tmpFile)
	presets, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, presets.Nodes, 2)

	hall := presets.Nodes[0]
	assert.Equal(t, "Hallway", hall.Name)
	assert.Equal(t, model.DomainZWave, hall.Domain)
	assert.Equal(t, "5,6", hall.NodeID)
	assert.Equal(t, "38", hall.SwitchType)
	assert.Equal(t, 120, hall.LightColor)
	assert.Equal(t, 240, hall.FanColor)
	assert.Equal(t, 7, hall.FanBrightness)

	kitchen := presets.Nodes[1]
	assert.Equal(t, "c3d4", kitchen.Name)
	assert.Equal(t, "12", kitchen.NodeID)
	assert.Equal(t, "light.kitchen", kitchen.EntityID)
	assert.Equal(t, 0, kitchen.LightColor)
	assert.Equal(t, 10, kitchen.LightBrightness)
}

func TestJSONPresetRepository_WrappedFlows(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "flows.json")
	data := `{"rev": "abc", "flows": [{"id": "n1", "type": "inovelli-led-manager", "name": "Porch", "zwave": "ozw", "nodeid": "3", "switchtype": "lzw30"}]}`
	require.NoError(t, os.WriteFile(tmpFile, []byte(data), 0644))

	presets, err := NewJSONPresetRepository(tmpFile).Get(context.Background())
	require.NoError(t, err)
	require.Len(t, presets.Nodes, 1)
	assert.Equal(t, "Porch", presets.Nodes[0].Name)
	assert.Equal(t, model.DomainOZW, presets.Nodes[0].Domain)
}

func TestJSONPresetRepository_FlowsDuplicateNames(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "flows.json")
	flows := `[
		{"id": "n1", "type": "inovelli-led-manager", "name": "Hallway", "zwave": "zwave", "nodeid": "5", "switchtype": "38"},
		{"id": "n2", "type": "inovelli-led-manager", "name": "Hallway", "zwave": "zwave", "nodeid": "6", "switchtype": "38"},
		{"id": "n2", "type": "inovelli-led-manager", "name": "Hallway", "zwave": "zwave", "nodeid": "7", "switchtype": "38"},
		{"id": "n3", "type": "inovelli-led-manager", "name": "n2", "zwave": "zwave", "nodeid": "8", "switchtype": "38"}
	]`
	require.NoError(t, os.WriteFile(tmpFile, []byte(flows), 0644))

	presets, err := NewJSONPresetRepository(tmpFile).Get(context.Background())
	require.NoError(t, err)
	require.Len(t, presets.Nodes, 3)

	assert.Equal(t, "Hallway", presets.Nodes[0].Name)
	assert.Equal(t, "5", presets.Nodes[0].NodeID)
	assert.Equal(t, "n2", presets.Nodes[1].Name)
	assert.Equal(t, "6", presets.Nodes[1].NodeID)
	assert.Equal(t, "n3", presets.Nodes[2].Name)
	assert.Equal(t, "8", presets.Nodes[2].NodeID)
}

func TestJSONPresetRepository_NewFormat(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "presets.json")

	repo := NewJSONPresetRepository(tmpFile)
	presets := &model.Presets{
		Nodes: []*model.DeviceConfig{
			{Name: "Test", Domain: model.DomainZWaveJS, EntityID: "light.test", SwitchType: "13", LightColor: 200},
		},
	}

	err := repo.Save(context.Background(), presets)
	assert.NoError(t, err)

	loaded, err := repo.Get(context.Background())
	assert.NoError(t, err)
	assert.Len(t, loaded.Nodes, 1)
	assert.Equal(t, "Test", loaded.Nodes[0].Name)
	assert.Equal(t, 200, loaded.Nodes[0].LightColor)
}

func TestJSONPresetRepository_Missing(t *testing.T) {
	repo := NewJSONPresetRepository(filepath.Join(t.TempDir(), "nope.json"))
	presets, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, presets.Nodes)
}

func TestJSONPresetRepository_Corrupt(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"nodes": [`), 0644))
	_, err := NewJSONPresetRepository(tmpFile).Get(context.Background())
	assert.Error(t, err)
}
