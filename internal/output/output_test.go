package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/autotiling/internal/autotile"
	"github.com/mj1618/autotiling/internal/model"
)

func withFormat(t *testing.T, f Format, pretty bool) {
	t.Helper()
	oldFormat, oldPretty := OutputFormat, PrettyOutput
	OutputFormat, PrettyOutput = f, pretty
	t.Cleanup(func() { OutputFormat, PrettyOutput = oldFormat, oldPretty })
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("agent")
	assert.Error(t, err)
}

func TestFprint_YAML(t *testing.T) {
	withFormat(t, FormatYAML, false)
	result := PlanResult{
		TS:        1707500000,
		Threshold: 0.4,
		Decision:  autotile.Decision{Action: autotile.ActionSplit, Focused: 11, Parent: 4, Layout: model.LayoutSplitV, Command: "splitv", Reason: "tall"},
	}

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, result))
	assert.Greater(t, bytes.Count(buf.Bytes(), []byte("\n")), 1, "YAML output should be multi-line")

	var decoded PlanResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "splitv", decoded.Decision.Command)
	assert.Equal(t, autotile.ActionSplit, decoded.Decision.Action)
}

func TestFprint_JSONCompact(t *testing.T) {
	withFormat(t, FormatJSON, false)
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, FocusResult{TS: 1, Focused: NodeSummary{ID: 5, Type: model.NodeContainer}}))
	assert.LessOrEqual(t, bytes.Count(buf.Bytes(), []byte("\n")), 1, "compact output should be single line")

	var decoded FocusResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, model.NodeID(5), decoded.Focused.ID)
}

func TestFprint_JSONPretty(t *testing.T) {
	withFormat(t, FormatJSON, true)
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, FocusResult{TS: 1}))
	assert.Greater(t, bytes.Count(buf.Bytes(), []byte("\n")), 1, "pretty output should be multi-line")
}

func TestFprint_UnknownFormat(t *testing.T) {
	withFormat(t, Format("xml"), false)
	assert.Error(t, Fprint(&bytes.Buffer{}, 1))
}

func TestFocusResult_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(FocusResult{TS: 123})
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.NotContains(t, m, "parent")
	assert.NotContains(t, m, "workspace")
	assert.Contains(t, m, "ts")
}

func TestYAMLString(t *testing.T) {
	s, err := YAMLString(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", s)
}
