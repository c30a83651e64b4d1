package model

// Presets is the persisted set of node definitions, one Manager per entry.
type Presets struct {
	Nodes []*DeviceConfig `json:"nodes"` // Ordered slice
}

// Find returns the preset registered under name.
func (p *Presets) Find(name string) (*DeviceConfig, bool) {
	for _, n := range p.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return nil, false
}
