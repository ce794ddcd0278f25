package space

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a mapping of axis name to value. All five axes must be
// present and no other keys are accepted.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]float64
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("decode point: %w", err)
	}
	var vec [NumAxes]float64
	for _, a := range Axes {
		v, ok := raw[a.String()]
		if !ok {
			return fmt.Errorf("point at line %d: missing axis %s", value.Line, a)
		}
		vec[a] = v
	}
	if len(raw) != NumAxes {
		for k := range raw {
			if _, ok := ParseAxis(k); !ok {
				return fmt.Errorf("point at line %d: unknown axis %q", value.Line, k)
			}
		}
	}
	*p = FromVector(vec)
	return nil
}
