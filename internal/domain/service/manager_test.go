package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inovelli-led-manager/internal/domain/model"
	"inovelli-led-manager/internal/domain/translator"
)

type recorder struct {
	mu       sync.Mutex
	commands []model.OutboundCommand
	errors   []string
	statuses []model.Status
}

func (r *recorder) Send(ctx context.Context, node string, cmd model.OutboundCommand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
}

func (r *recorder) ReportError(node, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, message)
}

func (r *recorder) SetStatus(node string, status model.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, status)
}

func (r *recorder) sinks() Sinks {
	return Sinks{Errors: r, Status: r, Output: r}
}

type MockOutput struct {
	mock.Mock
}

func (m *MockOutput) Send(ctx context.Context, node string, cmd model.OutboundCommand) {
	m.Called(ctx, node, cmd)
}

func preset() model.DeviceConfig {
	return model.DeviceConfig{
		Name:               "hallway",
		Domain:             model.DomainZWaveJS,
		EntityID:           "light.preset",
		NodeID:             "9",
		SwitchType:         "13",
		LightColor:         120,
		LightBrightness:    4,
		LightBrightnessOff: 1,
		FanColor:           240,
		FanBrightness:      6,
		FanBrightnessOff:   2,
	}
}

func decode(t *testing.T, raw string) *model.Message {
	t.Helper()
	var msg model.Message
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))
	return &msg
}

func newManager(p model.DeviceConfig, rec *recorder) *Manager {
	return NewManager(p, translator.NewFactory(nil), rec.sinks(), nil)
}

func TestManager_ScenarioA_ZWaveJSDimmer(t *testing.T) {
	p := preset()
	p.EntityID = ""
	rec := &recorder{}
	m := newManager(p, rec)

	res := m.Process(context.Background(), decode(t, `{"payload":{
		"switchtype":"dimmer","lightColor":"#FF0000","lightBrightness":5,
		"lightBrightnessOff":0,"entity_id":"light.x"}}`))

	require.False(t, res.Failed(), res.Errors)
	require.Len(t, rec.commands, 3)
	assert.Equal(t, res.Commands, rec.commands)

	want := []model.CommandData{
		{EntityID: "light.x", Parameter: 13, Value: 0},
		{EntityID: "light.x", Parameter: 14, Value: 5},
		{EntityID: "light.x", Parameter: 15, Value: 0},
	}
	for i, cmd := range rec.commands {
		assert.Equal(t, model.DomainZWaveJS, cmd.Domain)
		assert.Equal(t, "set_config_parameter", cmd.Service)
		assert.Equal(t, want[i], cmd.Data)

		raw, err := json.Marshal(cmd)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "size")
		assert.NotContains(t, string(raw), "node_id")
	}
	assert.Equal(t, model.TextStatus("Light Color: red, On/Off:5/0"), res.Status)
}

func TestManager_ScenarioB_ZWaveComboFanOut(t *testing.T) {
	p := preset()
	p.Domain = model.DomainZWave
	p.NodeID = "5,6"
	rec := &recorder{}
	m := newManager(p, rec)

	res := m.Process(context.Background(), decode(t, `{"payload":{"switchtype":38,"fanColor":"blue","fanBrightness":3}}`))

	require.False(t, res.Failed(), res.Errors)
	require.Len(t, rec.commands, 12)

	type key struct{ param, node int }
	seen := map[key]model.CommandData{}
	for _, cmd := range rec.commands {
		assert.Equal(t, model.DomainZWave, cmd.Domain)
		require.NotNil(t, cmd.Data.NodeID)
		assert.NotZero(t, cmd.Data.Size)
		seen[key{cmd.Data.Parameter, *cmd.Data.NodeID}] = cmd.Data
	}
	for _, param := range []int{18, 19, 20, 21, 22, 23} {
		for _, node := range []int{5, 6} {
			_, ok := seen[key{param, node}]
			assert.True(t, ok, "param %d node %d", param, node)
		}
	}

	assert.Equal(t, 170, seen[key{20, 5}].Value)
	assert.Equal(t, 2, seen[key{20, 5}].Size)
	assert.Equal(t, 3, seen[key{21, 6}].Value)
	assert.Equal(t, 1, seen[key{21, 6}].Size)
	assert.Equal(t, 2, seen[key{23, 5}].Value)
	assert.Equal(t, 85, seen[key{18, 6}].Value)
	assert.Equal(t, "Set Fan Color: blue; Set Light Color: lime", res.Status.Text)

	// records first, then nodes
	assert.Equal(t, 18, rec.commands[0].Data.Parameter)
	assert.Equal(t, 5, *rec.commands[0].Data.NodeID)
	assert.Equal(t, 18, rec.commands[1].Data.Parameter)
	assert.Equal(t, 6, *rec.commands[1].Data.NodeID)
}

func TestManager_ScenarioC_UnknownSwitchType(t *testing.T) {
	rec := &recorder{}
	m := newManager(preset(), rec)

	res := m.Process(context.Background(), decode(t, `{"payload":{"switchtype":"unknown_type"}}`))

	assert.True(t, res.Failed())
	assert.Empty(t, rec.commands)
	assert.Equal(t, []string{"Incorrect Switch Type: unknown_type"}, rec.errors)
	assert.Equal(t, model.TextStatus(model.StatusCheckDebug), res.Status)
	assert.Equal(t, res.Status, m.Status())
}

func TestManager_ScenarioD_BadNodeToken(t *testing.T) {
	p := preset()
	p.Domain = model.DomainOZW
	rec := &recorder{}
	m := newManager(p, rec)

	res := m.Process(context.Background(), decode(t, `{"payload":{"node_id":"5,abc"}}`))

	require.Len(t, rec.commands, 3)
	for _, cmd := range rec.commands {
		assert.Equal(t, 5, *cmd.Data.NodeID)
		assert.Zero(t, cmd.Data.Size)
	}
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], `"abc"`)
	assert.Equal(t, model.Status{Fill: "red", Shape: "ring", Text: model.StatusCheckDebug}, res.Status)
}

func TestManager_IdempotentOutput(t *testing.T) {
	p := preset()
	p.Domain = model.DomainZWave
	p.NodeID = "3, 4"
	p.SwitchType = "lzw36"
	msg := `{"payload":{"lightColor":[10,200,30],"fanColor":300,"fanBrightnessOff":0}}`

	rec := &recorder{}
	m := newManager(p, rec)
	m.Process(context.Background(), decode(t, msg))
	first, err := json.Marshal(rec.commands)
	require.NoError(t, err)

	rec.commands = nil
	m.Process(context.Background(), decode(t, msg))
	second, err := json.Marshal(rec.commands)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestManager_AllErrorsReportedTogether(t *testing.T) {
	rec := &recorder{}
	m := newManager(preset(), rec)

	res := m.Process(context.Background(), decode(t, `{"payload":{
		"zwave":"zigbee","lightColor":[1,2],"lightBrightness":12,"lightBrightnessOff":-1}}`))

	assert.Empty(t, rec.commands)
	assert.Len(t, res.Errors, 4)
	assert.Contains(t, rec.errors[0], "Invalid Z-Wave domain: zigbee")
}

func TestManager_UndecodableFieldsAreCountedErrors(t *testing.T) {
	rec := &recorder{}
	m := newManager(preset(), rec)

	res := m.Process(context.Background(), decode(t, `{"payload":{
		"switchtype":"bogus","zwave":"zigbee","lightBrightness":"abc"}}`))

	assert.Empty(t, rec.commands)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, "Invalid Z-Wave domain: zigbee. Supported domains are zwave, ozw, or zwave_js.", res.Errors[0])
	assert.Equal(t, "Incorrect Switch Type: bogus", res.Errors[1])
	assert.Equal(t, "Invalid brightness value for brightness while on: abc. Please enter a value between 0 and 11.", res.Errors[2])
	assert.Equal(t, model.StatusCheckDebug, res.Status.Text)
}

func TestManager_BooleanSwitchTypeIsInvalid(t *testing.T) {
	rec := &recorder{}
	m := newManager(preset(), rec)

	res := m.Process(context.Background(), decode(t, `{"payload":{"switchtype":true}}`))

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Incorrect Switch Type: true", res.Errors[0])
	assert.Empty(t, rec.commands)
}

func TestManager_PresetFallbacksAndExplicitZero(t *testing.T) {
	p := preset()
	p.LightBrightnessOff = 7
	rec := &recorder{}
	m := newManager(p, rec)

	res := m.Process(context.Background(), decode(t, `{"payload":{"lightBrightnessOff":0}}`))
	require.False(t, res.Failed())
	require.Len(t, rec.commands, 3)
	assert.Equal(t, "light.preset", rec.commands[0].Data.EntityID)
	assert.Equal(t, 85, rec.commands[0].Data.Value)
	assert.Equal(t, 4, rec.commands[1].Data.Value)
	assert.Equal(t, 0, rec.commands[2].Data.Value)
}

func TestManager_ColorFallbackStillEmits(t *testing.T) {
	rec := &recorder{}
	m := newManager(preset(), rec)

	res := m.Process(context.Background(), decode(t, `{"payload":{"lightColor":"no such color"}}`))
	assert.False(t, res.Failed())
	assert.Len(t, rec.commands, 3)
	assert.Equal(t, 85, rec.commands[0].Data.Value)
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "Using preset color value: 120")
}

func TestManager_MissingTarget(t *testing.T) {
	p := preset()
	p.EntityID = ""
	rec := &recorder{}
	m := newManager(p, rec)

	res := m.Process(context.Background(), decode(t, `{"payload":{}}`))
	assert.True(t, res.Failed())
	assert.Empty(t, rec.commands)

	res = m.Process(context.Background(), decode(t, `{"payload":{"zwave":"zwave"}}`))
	assert.False(t, res.Failed())
	assert.Len(t, rec.commands, 3)
	assert.Equal(t, 9, *rec.commands[0].Data.NodeID)
}

func TestManager_FanOnlySkipsLightChecks(t *testing.T) {
	p := preset()
	p.LightBrightness = 50
	rec := &recorder{}
	m := newManager(p, rec)

	res := m.Process(context.Background(), decode(t, `{"payload":{"switchtype":"combo_fan"}}`))
	require.False(t, res.Failed(), res.Errors)
	assert.Equal(t, "Fan Color: blue, On/Off:6/2", res.Status.Text)
}

func TestManager_SendsThroughOutputPort(t *testing.T) {
	out := new(MockOutput)
	out.On("Send", mock.Anything, "hallway", mock.AnythingOfType("model.OutboundCommand")).Return()

	m := NewManager(preset(), translator.NewFactory(nil), Sinks{Output: out}, nil)
	res := m.Process(context.Background(), &model.Message{})

	assert.False(t, res.Failed())
	out.AssertNumberOfCalls(t, "Send", 3)
}

func TestManager_Reject(t *testing.T) {
	rec := &recorder{}
	m := newManager(preset(), rec)
	m.Reject(assert.AnError)
	assert.Equal(t, model.TextStatus(model.StatusCheckDebug), m.Status())
	assert.Len(t, rec.errors, 1)
}
