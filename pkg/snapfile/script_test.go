package snapfile

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/outlinekit/pkg/outline"
)

func TestScript_RoundTrip(t *testing.T) {
	old := sample()
	next := outline.Build(
		outline.Node("Projects",
			outline.Node("Beta", outline.Node("Home")),
			outline.Node("Alpha", outline.Node("Specs")),
		).Expand(),
		outline.Node("Inbox"),
	)

	script := outline.Reconcile(old, next)
	require.NotEmpty(t, script)

	data, err := MarshalScript(script)
	require.NoError(t, err)

	back, err := UnmarshalScript(data)
	require.NoError(t, err)
	assert.Equal(t, script, back)
	assert.True(t, outline.Replay(old, back).Equal(next))
}

func TestMarshalScript_Layout(t *testing.T) {
	script := []outline.Instruction[string]{
		{Kind: outline.KindMove, Item: "X", Index: 0, Parent: outline.Root[string](), ToIndex: 1, ToParent: outline.Under("Y")},
		{Kind: outline.KindInsert, Item: "Z", Index: 2, Parent: outline.Under("Y")},
	}
	data, err := MarshalScript(script)
	require.NoError(t, err)

	assert.JSONEq(t, `{"instructions":[
		{"op":"move","item":"X","index":0,"parent":null,"to_index":1,"to_parent":"Y"},
		{"op":"insert","item":"Z","index":2,"parent":"Y"}
	]}`, string(data))
}

func TestUpdate_RoundTrip(t *testing.T) {
	u := outline.Diff(sample(), outline.Build(outline.Node("Archive", outline.Node("2024")).Expand()), outline.DefaultDiffOptions())

	data, err := MarshalUpdate(u)
	require.NoError(t, err)
	back, err := UnmarshalUpdate(data)
	require.NoError(t, err)

	assert.Equal(t, u.Script, back.Script)
	assert.Equal(t, u.Expand, back.Expand)
	assert.Equal(t, u.Collapse, back.Collapse)
}

func TestUnmarshalScript_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown op", `{"instructions":[{"op":"copy","item":"A","index":0}]}`},
		{"move without target", `{"instructions":[{"op":"move","item":"A","index":0}]}`},
		{"negative index", `{"instructions":[{"op":"remove","item":"A","index":-1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalScript([]byte(tt.input))
			assert.True(t, errors.Is(err, ErrInvalidScript), "got %v", err)
		})
	}

	_, err := UnmarshalScript([]byte(`not json`))
	assert.Error(t, err)
}
