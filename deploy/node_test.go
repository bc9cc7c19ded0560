package deploy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBool(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"True":  true,
		"true":  true,
		"TRUE":  true,
		"1":     true,
		"False": false,
		"false": false,
		"0":     false,
	}
	for raw, want := range cases {
		got, err := ParseBool(raw)
		require.NoError(t, err, raw)
		require.Equal(t, want, got, raw)
	}

	_, err := ParseBool("yes please")
	require.ErrorIs(t, err, ErrMalformedValue)
}

// TestConfigNodeJSON verifies nodes survive the JSON encoding used for save files.
func TestConfigNodeJSON(t *testing.T) {
	t.Parallel()

	nodes := map[string]*ConfigNode{"gear-1": NewConfigNode()}
	nodes["gear-1"].SetValue(DeployedKey, FormatBool(true))

	data, err := json.Marshal(nodes)
	require.NoError(t, err)
	require.JSONEq(t, `{"gear-1":{"isDeployed":"True"}}`, string(data))

	var loaded map[string]*ConfigNode
	require.NoError(t, json.Unmarshal(data, &loaded))
	v, ok := loaded["gear-1"].GetValue(DeployedKey)
	require.True(t, ok)
	require.Equal(t, "True", v)

	var bad ConfigNode
	require.Error(t, json.Unmarshal([]byte(`{"isDeployed":true}`), &bad))
}

func TestNilConfigNode(t *testing.T) {
	t.Parallel()

	var n *ConfigNode
	_, ok := n.GetValue(DeployedKey)
	require.False(t, ok)
	require.Zero(t, n.Len())

	var zero ConfigNode
	zero.SetValue("k", "v")
	require.Equal(t, 1, zero.Len())
}
