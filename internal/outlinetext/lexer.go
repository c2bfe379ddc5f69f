package outlinetext

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrUnsupportedEncoding is returned for an unknown encoding name.
	ErrUnsupportedEncoding = errors.New("outlinetext: unsupported encoding")
)

// lookupEncoding maps an encoding name to its x/text encoding. The empty
// name means UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToUpper(name) {
	case "", EncodingUTF8, "UTF8":
		return unicode.UTF8, nil
	case EncodingUTF16LE, "UTF16LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case EncodingWindows1252, "CP1252":
		return charmap.Windows1252, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedEncoding, "%q", name)
	}
}

// decodeInput converts data to UTF-8. A byte order mark at the start of data
// overrides enc and is stripped.
func decodeInput(data []byte, enc string) ([]byte, error) {
	fallback, err := lookupEncoding(enc)
	if err != nil {
		return nil, err
	}
	// Plain UTF-8 without a BOM needs no transformation.
	if fallback == unicode.UTF8 && !hasBOM(data) {
		return data, nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(fallback.NewDecoder()), data)
	if err != nil {
		return nil, errors.Wrap(err, "outlinetext: decode input")
	}
	return out, nil
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, UTF8BOM) ||
		bytes.HasPrefix(data, UTF16LEBOM) ||
		bytes.HasPrefix(data, UTF16BEBOM)
}

// encodeOutput converts UTF-8 text to enc, prefixing the encoding's byte
// order mark when withBOM is set. Windows-1252 has no BOM.
func encodeOutput(text []byte, enc string, withBOM bool) ([]byte, error) {
	target, err := lookupEncoding(enc)
	if err != nil {
		return nil, err
	}
	switch target {
	case unicode.UTF8:
		if !withBOM {
			return text, nil
		}
		return append(append(make([]byte, 0, len(UTF8BOM)+len(text)), UTF8BOM...), text...), nil
	case charmap.Windows1252:
		withBOM = false
	}

	out, _, err := transform.Bytes(target.NewEncoder(), text)
	if err != nil {
		return nil, errors.Wrapf(err, "outlinetext: encode output as %s", enc)
	}
	if withBOM {
		out = append(append(make([]byte, 0, len(UTF16LEBOM)+len(out)), UTF16LEBOM...), out...)
	}
	return out, nil
}
