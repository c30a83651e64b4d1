package service

import (
	"strconv"
	"strings"

	"inovelli-led-manager/internal/domain/model"
)

// Target is the device a command set is addressed to. zwave_js addresses
// entities, the other integrations address one or more node ids.
type Target struct {
	EntityID string
	NodeID   string
}

func resolveTarget(domain model.Domain, req model.CommandRequest, preset model.DeviceConfig) Target {
	if domain == model.DomainZWaveJS {
		entityID := req.EntityID
		if entityID == "" {
			entityID = preset.EntityID
		}
		return Target{EntityID: entityID}
	}
	nodeID := string(req.NodeID)
	if nodeID == "" {
		nodeID = preset.NodeID
	}
	return Target{NodeID: nodeID}
}

// parseNodeIDs splits a comma separated node list. Tokens that are not
// integers are returned as errors and skipped.
func parseNodeIDs(list string) ([]int, []error) {
	var (
		ids  []int
		errs []error
	)
	multi := strings.Contains(list, ",")
	for _, token := range strings.Split(list, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(token))
		if err == nil {
			ids = append(ids, id)
			continue
		}
		if multi {
			errs = append(errs, model.NewValidationError(model.ErrInvalidNodeIDToken,
				"Invalid Node ID List. Please make sure your list of Node IDs contains integers separated by commas. Invalid entry: "+strconv.Quote(token)))
		} else {
			errs = append(errs, model.NewValidationError(model.ErrInvalidNodeIDToken,
				"Invalid Node ID: "+strconv.Quote(token)))
		}
	}
	return ids, errs
}

// fanOut expands the parameter table into one command per record and target.
// The size field is only part of the legacy zwave schema.
func fanOut(domain model.Domain, target Target, records []model.ParameterRecord) ([]model.OutboundCommand, []error) {
	newCommand := func(rec model.ParameterRecord) model.OutboundCommand {
		cmd := model.OutboundCommand{
			Domain:  domain,
			Service: model.ServiceSetConfigParameter,
			Data: model.CommandData{
				Parameter: rec.Parameter,
				Value:     rec.Value,
			},
		}
		if domain == model.DomainZWave {
			cmd.Data.Size = rec.Size
		}
		return cmd
	}

	if domain == model.DomainZWaveJS {
		cmds := make([]model.OutboundCommand, 0, len(records))
		for _, rec := range records {
			cmd := newCommand(rec)
			cmd.Data.EntityID = target.EntityID
			cmds = append(cmds, cmd)
		}
		return cmds, nil
	}

	ids, errs := parseNodeIDs(target.NodeID)
	cmds := make([]model.OutboundCommand, 0, len(records)*len(ids))
	for _, rec := range records {
		for _, id := range ids {
			nodeID := id
			cmd := newCommand(rec)
			cmd.Data.NodeID = &nodeID
			cmds = append(cmds, cmd)
		}
	}
	return cmds, errs
}
