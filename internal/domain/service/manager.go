package service

import (
	"context"
	"log/slog"
	"sync"

	"inovelli-led-manager/internal/domain/model"
	"inovelli-led-manager/internal/domain/translator"
	"inovelli-led-manager/internal/domain/validation"
	"inovelli-led-manager/internal/ports"
)

// Sinks are the host channels a Manager reports through.
type Sinks struct {
	Errors ports.ErrorSink
	Status ports.StatusSink
	Output ports.OutputSink
}

// Manager runs the validate, translate and fan-out pipeline for one node.
// Messages are processed one at a time.
type Manager struct {
	preset  model.DeviceConfig
	factory *translator.Factory
	sinks   Sinks
	logger  *slog.Logger

	mu     sync.Mutex
	status model.Status
}

func NewManager(preset model.DeviceConfig, factory *translator.Factory, sinks Sinks, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		preset:  preset,
		factory: factory,
		sinks:   sinks,
		logger:  logger.With("node", preset.Name),
	}
}

func (m *Manager) Preset() model.DeviceConfig {
	return m.preset
}

// Status returns the last status the node published.
func (m *Manager) Status() model.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Process handles one inbound message. Either every derivable command is
// sent or none is; the only partial case is a bad token in a node id list.
func (m *Manager) Process(ctx context.Context, msg *model.Message) *model.Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	var req model.CommandRequest
	if msg != nil {
		req = msg.Payload
	}
	result := &model.Result{Node: m.preset.Name, Commands: []model.OutboundCommand{}}

	report := validation.NewReport()
	domain, switchType, inputs, target, ok := m.validate(report, req)
	result.Diagnostics = report.Diagnostics()
	for _, d := range result.Diagnostics {
		m.reportError(d)
	}

	if !ok {
		for _, err := range report.Errors() {
			result.Errors = append(result.Errors, err.Error())
		}
		m.logger.Debug("message rejected", "errors", report.Count())
		result.Status = m.setStatus(model.TextStatus(model.StatusCheckDebug))
		return result
	}
	result.SwitchType = switchType

	t, found := m.factory.GetTranslator(switchType)
	if !found {
		// ResolveSwitchType only returns known codes.
		result.Status = m.setStatus(model.TextStatus(model.StatusCheckDebug))
		return result
	}
	records := t.Parameters(inputs)
	status := model.TextStatus(t.Status(inputs))

	cmds, tokenErrs := fanOut(domain, target, records)
	for _, err := range tokenErrs {
		result.Diagnostics = append(result.Diagnostics, err.Error())
		result.Errors = append(result.Errors, err.Error())
		m.reportError(err.Error())
	}
	if len(tokenErrs) > 0 {
		status = model.Status{Fill: "red", Shape: "ring", Text: model.StatusCheckDebug}
	}
	result.Status = m.setStatus(status)

	for _, cmd := range cmds {
		if m.sinks.Output != nil {
			m.sinks.Output.Send(ctx, m.preset.Name, cmd)
		}
	}
	result.Commands = cmds
	m.logger.Debug("message applied", "switchtype", int(switchType), "commands", len(cmds))
	return result
}

func (m *Manager) validate(r *validation.Report, req model.CommandRequest) (model.Domain, model.SwitchType, translator.Inputs, Target, bool) {
	p := m.preset

	domain := req.Domain
	if domain == "" {
		domain = p.Domain
	}
	validation.CheckDomain(r, domain)

	rawType := string(req.SwitchType)
	if rawType == "" {
		rawType = p.SwitchType
	}
	switchType, resolved := validation.ResolveSwitchType(r, rawType)

	var in translator.Inputs
	// An unresolved switch type is still checked as a light so every
	// problem of the message is reported together.
	if !resolved || switchType.HasLight() {
		in.LightColor = validation.NormalizeColor(r, colorOrPreset(req.LightColor, p.LightColor), "Light", p.LightColor)
		in.LightOn = checkedLevel(r, req.LightBrightness, p.LightBrightness, "on")
		in.LightOff = checkedLevel(r, req.LightBrightnessOff, p.LightBrightnessOff, "off")
	}
	if resolved && switchType.HasFan() {
		in.FanColor = validation.NormalizeColor(r, colorOrPreset(req.FanColor, p.FanColor), "Fan", p.FanColor)
		in.FanOn = checkedLevel(r, req.FanBrightness, p.FanBrightness, "on")
		in.FanOff = checkedLevel(r, req.FanBrightnessOff, p.FanBrightnessOff, "off")
	}

	target := resolveTarget(domain, req, p)
	if domain == model.DomainZWaveJS && target.EntityID == "" {
		r.Fail(model.ErrMissingTarget, "No entity_id configured or supplied for the zwave_js domain.")
	} else if domain != model.DomainZWaveJS && target.NodeID == "" {
		r.Fail(model.ErrMissingTarget, "No node_id configured or supplied for the %s domain.", domain)
	}

	return domain, switchType, in, target, !r.Failed()
}

func (m *Manager) reportError(message string) {
	if m.sinks.Errors == nil {
		m.logger.Warn(message)
		return
	}
	m.sinks.Errors.ReportError(m.preset.Name, message)
}

func (m *Manager) setStatus(status model.Status) model.Status {
	m.status = status
	if m.sinks.Status != nil {
		m.sinks.Status.SetStatus(m.preset.Name, status)
	}
	return status
}

func colorOrPreset(c model.ColorInput, presetHue int) model.ColorInput {
	if c.IsSet() {
		return c
	}
	return model.HueColor(float64(presetHue))
}

// checkedLevel picks the supplied level over the preset and range-checks it.
func checkedLevel(r *validation.Report, l *model.Level, preset int, source string) int {
	level := model.Level{Value: preset}
	if l != nil {
		level = *l
	}
	validation.CheckLevel(r, level, source)
	return level.Value
}

// Reject reports an inbound message that could not be decoded.
func (m *Manager) Reject(cause error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reportError("Invalid message: " + cause.Error())
	m.setStatus(model.TextStatus(model.StatusCheckDebug))
}
