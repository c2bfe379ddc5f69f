package snapfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/outlinekit/internal/outlinetext"
	"github.com/joshuapare/outlinekit/pkg/outline"
)

func sample() *outline.Snapshot[string] {
	return outline.Build(
		outline.Node("Favorites", outline.Node("Home")).AsGroup(),
		outline.Node("Projects",
			outline.Node("Alpha", outline.Node("Specs")),
			outline.Node("Beta"),
		).Expand(),
		outline.Node("Archive"),
	)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"yaml", FormatYAML},
		{"YML", FormatYAML},
		{"toml", FormatTOML},
		{"json", FormatJSON},
		{"txt", FormatText},
		{"outline", FormatText},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestDetectFormat(t *testing.T) {
	got, err := DetectFormat("/tmp/tree.snapshot.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, got)

	_, err = DetectFormat("Makefile")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(sample(), format)
			require.NoError(t, err)

			back, err := Decode(data, format)
			require.NoError(t, err)
			assert.True(t, back.EqualState(sample()), "got:\n%s", back)
		})
	}
}

func TestEncode_GroupsCollapsible(t *testing.T) {
	s := sample()
	s.SetGroupsCollapsible(true)

	for _, format := range []Format{FormatYAML, FormatTOML, FormatJSON} {
		data, err := Encode(s, format)
		require.NoError(t, err)
		back, err := Decode(data, format)
		require.NoError(t, err)
		assert.True(t, back.GroupsCollapsible(), format)
	}
}

func TestDecode_YAML(t *testing.T) {
	input := `version: 1
items:
  - name: Mail
    expanded: true
    children:
      - name: Inbox
      - name: Sent
  - name: Notes
`
	s, err := Decode([]byte(input), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mail", "Inbox", "Sent", "Notes"}, s.Items())
	assert.True(t, s.IsExpanded("Mail"))
}

func TestDecode_TOML(t *testing.T) {
	input := `version = 1

[[items]]
name = "Mail"
expanded = true

[[items.children]]
name = "Inbox"

[[items]]
name = "Notes"
group = true
`
	s, err := Decode([]byte(input), FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mail", "Inbox", "Notes"}, s.Items())
	assert.True(t, s.IsGroup("Notes"))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		is     error
	}{
		{"duplicate", FormatJSON, `{"items":[{"name":"A"},{"name":"A"}]}`, outline.ErrDuplicateItem},
		{"nested group", FormatJSON, `{"items":[{"name":"A","children":[{"name":"G","group":true}]}]}`, outline.ErrNotRootItem},
		{"future version", FormatYAML, "version: 9\nitems: []\n", ErrUnsupportedVersion},
		{"negative version", FormatJSON, `{"version":-1,"items":[]}`, ErrUnsupportedVersion},
		{"negative version toml", FormatTOML, "version = -3\n", ErrUnsupportedVersion},
		{"text syntax", FormatText, "A\n   B\n", outlinetext.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), tt.format)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.is), "got %v", err)
		})
	}

	_, err := Decode([]byte(`{"items":[],"extra":1}`), FormatJSON)
	assert.Error(t, err, "unknown fields are rejected")
}

func TestDecode_MissingVersion(t *testing.T) {
	s, err := Decode([]byte(`{"items":[{"name":"A"}]}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, s.Items())
}

func TestDecode_EmptyYAML(t *testing.T) {
	s, err := Decode(nil, FormatYAML)
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"snap.yaml", "snap.toml", "snap.json", "snap.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, sample(), DefaultOptions()), name)

		back, err := Load(path, DefaultOptions())
		require.NoError(t, err, name)
		assert.True(t, back.EqualState(sample()), name)
	}
}

func TestSaveLoad_TextEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.outline")
	opts := Options{Encoding: outlinetext.EncodingUTF16LE, WithBOM: true}
	require.NoError(t, Save(path, sample(), opts))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFE}, raw[:2])

	// The BOM is detected without naming the encoding.
	back, err := Load(path, Options{})
	require.NoError(t, err)
	assert.True(t, back.EqualState(sample()))
}

func TestLoad_FormatOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[{"name":"A"}]}`), 0o644))

	_, err := Load(path, Options{})
	assert.True(t, errors.Is(err, ErrUnknownFormat))

	s, err := Load(path, Options{Format: FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, s.Items())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
