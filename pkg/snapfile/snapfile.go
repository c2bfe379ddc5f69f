// Package snapfile loads and saves outline snapshots of strings as YAML,
// TOML, JSON or outline text, and serializes edit scripts as JSON.
package snapfile

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/outlinekit/internal/fsync"
	"github.com/joshuapare/outlinekit/internal/outlinetext"
	"github.com/joshuapare/outlinekit/pkg/outline"
)

// ErrUnsupportedVersion is returned for structured files whose version is
// not 1. A missing version is read as 1.
var ErrUnsupportedVersion = errors.New("snapfile: unsupported document version")

// Options controls Load and Save.
type Options struct {
	// Format overrides detection from the file extension.
	Format Format

	// Encoding is the text format's character encoding. Empty means UTF-8;
	// a byte order mark in the input always wins.
	Encoding string

	// WithBOM writes a byte order mark (text format only).
	WithBOM bool

	// Durable flushes saved files to stable storage before returning.
	Durable bool
}

// DefaultOptions returns options for durable saves with format detection.
func DefaultOptions() Options {
	return Options{Durable: true}
}

func (o Options) format(path string) (Format, error) {
	if o.Format != "" {
		return ParseFormat(string(o.Format))
	}
	return DetectFormat(path)
}

// Load reads a snapshot from path.
func Load(path string, opts Options) (*outline.Snapshot[string], error) {
	format, err := opts.format(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "snapfile: load")
	}
	snap, err := decode(data, format, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "snapfile: load %s", path)
	}
	return snap, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*outline.Snapshot[string], error) {
	return decode(data, format, Options{})
}

func decode(data []byte, format Format, opts Options) (*outline.Snapshot[string], error) {
	if format == FormatText {
		return outlinetext.Parse(data, outlinetext.ParseOptions{InputEncoding: opts.Encoding})
	}

	var doc document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "snapfile: decode yaml")
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "snapfile: decode toml")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "snapfile: decode json")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	return fromDocument(doc)
}

func fromDocument(doc document) (*outline.Snapshot[string], error) {
	// Files without a version field are read as the current version.
	if doc.Version == 0 {
		doc.Version = documentVersion
	}
	if doc.Version != documentVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version %d", doc.Version)
	}
	snap := outline.New[string]()
	err := outline.Catch(func() {
		snap.AppendBranches(toBranches(doc.Items)...)
		snap.SetGroupsCollapsible(doc.GroupsCollapsible)
	})
	if err != nil {
		return nil, errors.Wrap(err, "snapfile: invalid outline")
	}
	return snap, nil
}

// Save writes snap to path, replacing it atomically.
func Save(path string, snap *outline.Snapshot[string], opts Options) error {
	format, err := opts.format(path)
	if err != nil {
		return err
	}
	data, err := encode(snap, format, opts)
	if err != nil {
		return errors.Wrapf(err, "snapfile: save %s", path)
	}
	return fsync.WriteFile(path, data, 0o644, fsync.Options{Durable: opts.Durable})
}

// Encode serializes snap in the given format.
func Encode(snap *outline.Snapshot[string], format Format) ([]byte, error) {
	return encode(snap, format, Options{})
}

func encode(snap *outline.Snapshot[string], format Format, opts Options) ([]byte, error) {
	switch format {
	case FormatText:
		return outlinetext.Emit(snap, outlinetext.EmitOptions{
			OutputEncoding: opts.Encoding,
			WithBOM:        opts.WithBOM,
		})
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(toDocument(snap)); err != nil {
			return nil, errors.Wrap(err, "snapfile: encode yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, "snapfile: encode yaml")
		}
		return buf.Bytes(), nil
	case FormatTOML:
		data, err := toml.Marshal(toDocument(snap))
		if err != nil {
			return nil, errors.Wrap(err, "snapfile: encode toml")
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(toDocument(snap), "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "snapfile: encode json")
		}
		return append(data, '\n'), nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}
