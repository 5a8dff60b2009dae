package core

// Parameter is a single labelled readout exposed on the HUD.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values shown for the current frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the value stored under key, searching every group.
func (s ParameterSnapshot) Lookup(key string) (string, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	return "", false
}

// Lines flattens the snapshot into "Label: value" rows with a header per group.
func (s ParameterSnapshot) Lines() []string {
	var out []string
	for _, g := range s.Groups {
		if g.Name != "" {
			out = append(out, g.Name)
		}
		for _, p := range g.Params {
			out = append(out, "  "+p.Label+": "+p.Value)
		}
	}
	return out
}
