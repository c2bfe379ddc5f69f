package snapfile

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Format identifies a snapshot file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ErrUnknownFormat is returned for unrecognised format names or extensions.
var ErrUnknownFormat = errors.New("snapfile: unknown format")

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatYAML, FormatTOML, FormatJSON, FormatText}
}

// ParseFormat parses a format name. "yml" and "txt" are accepted aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "text", "txt", "outline":
		return FormatText, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// DetectFormat picks the format from the file extension of path.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Wrapf(ErrUnknownFormat, "no extension on %s", path)
	}
	return ParseFormat(ext)
}
