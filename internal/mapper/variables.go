package mapper

import "sort"

// Variable is one bindable property of a mapped component, keyed in the
// registry as "{componentName}.{parameter}".
type Variable struct {
	ComponentID  string      `json:"componentId"`
	Parameter    string      `json:"parameter"`
	Type         string      `json:"type"`
	Writable     bool        `json:"writable"`
	Readable     bool        `json:"readable"`
	CurrentValue interface{} `json:"currentValue"`
}

// Variables builds the binding registry from the index: every typed parameter,
// plus derived states (read-only) and colors for components that expose them.
// A parameter of the same name wins over a derived state or color.
func (m *Mapper) Variables() map[string]Variable {
	vars := make(map[string]Variable)
	for _, id := range m.order {
		entry := m.entries[id]
		for key, p := range entry.Parameters {
			vars[entry.Name+"."+key] = Variable{
				ComponentID:  id,
				Parameter:    key,
				Type:         p.Type,
				Writable:     p.Writable,
				Readable:     p.Readable,
				CurrentValue: p.Value,
			}
		}
		for key, on := range entry.States {
			name := entry.Name + "." + key
			if _, taken := vars[name]; taken {
				continue
			}
			vars[name] = Variable{
				ComponentID:  id,
				Parameter:    key,
				Type:         TypeBoolean,
				Writable:     false,
				Readable:     true,
				CurrentValue: on,
			}
		}
		for key, value := range entry.Colors {
			name := entry.Name + "." + key
			if _, taken := vars[name]; taken {
				continue
			}
			vars[name] = Variable{
				ComponentID:  id,
				Parameter:    key,
				Type:         TypeColor,
				Writable:     true,
				Readable:     true,
				CurrentValue: value,
			}
		}
	}
	return vars
}

// VariableNames returns the sorted registry keys, for populating pickers.
func (m *Mapper) VariableNames() []string {
	vars := m.Variables()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Target describes a component an interaction rule can act on.
type Target struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Events     []string `json:"events"`
	Parameters []string `json:"parameters"`
}

// Targets returns every component as an interaction target, in document
// order, optionally excluding one id (a rule never targets its own source by
// default; pass "" to include everything).
func (m *Mapper) Targets(excludeID string) []Target {
	out := make([]Target, 0, len(m.order))
	for _, id := range m.order {
		if id == excludeID {
			continue
		}
		entry := m.entries[id]
		params := make([]string, 0, len(entry.Parameters))
		for key := range entry.Parameters {
			params = append(params, key)
		}
		sort.Strings(params)
		out = append(out, Target{
			ID:         entry.ID,
			Name:       entry.Name,
			Type:       entry.Type,
			Events:     entry.Events,
			Parameters: params,
		})
	}
	return out
}
