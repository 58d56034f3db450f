package script

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

func decodeValue(node yaml.Node) (any, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, err)
	}
	return v, nil
}

// decodeDuration reads a duration string. ok is false when the node is
// empty, meaning the default delay applies.
func decodeDuration(node yaml.Node) (d time.Duration, ok bool, err error) {
	if node.Kind == 0 || node.Tag == "!!null" || (node.Kind == yaml.ScalarNode && node.Value == "") {
		return 0, false, nil
	}
	if node.Kind == yaml.MappingNode && len(node.Content) == 0 {
		return 0, false, nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return 0, false, fmt.Errorf("%w: sleep: %v", ErrInvalidStep, err)
	}
	d, err = time.ParseDuration(s)
	if err != nil {
		return 0, false, fmt.Errorf("%w: sleep: %v", ErrInvalidStep, err)
	}
	if d < 0 {
		return 0, false, fmt.Errorf("%w: sleep: negative duration %s", ErrInvalidStep, s)
	}
	return d, true, nil
}
