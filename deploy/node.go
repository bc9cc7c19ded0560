package deploy

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DeployedKey is the save-block key holding the deployed flag.
const DeployedKey = "isDeployed"

// ConfigNode is an in-memory save block. It marshals to a flat JSON object
// so the host can store many nodes in one gdata item.
type ConfigNode struct {
	values map[string]string
}

// NewConfigNode returns an empty node.
func NewConfigNode() *ConfigNode {
	return &ConfigNode{values: make(map[string]string)}
}

func (n *ConfigNode) GetValue(key string) (string, bool) {
	if n == nil || n.values == nil {
		return "", false
	}
	v, ok := n.values[key]
	return v, ok
}

func (n *ConfigNode) SetValue(key, value string) {
	if n.values == nil {
		n.values = make(map[string]string)
	}
	n.values[key] = value
}

// Len returns the number of stored values.
func (n *ConfigNode) Len() int {
	if n == nil {
		return 0
	}
	return len(n.values)
}

func (n *ConfigNode) MarshalJSON() ([]byte, error) {
	if n == nil || n.values == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(n.values)
}

func (n *ConfigNode) UnmarshalJSON(data []byte) error {
	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode config node: %w", err)
	}
	n.values = values
	return nil
}

// FormatBool writes booleans the way existing save files spell them.
func FormatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// ParseBool accepts any casing of true/false as well as 1/0.
func ParseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a boolean", ErrMalformedValue, s)
	}
	return b, nil
}
