package definition

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/lydio/pkg/errors"
)

// Format identifies a definition file syntax
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
	FormatXML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name such as "yaml" or "toml"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	default:
		return FormatUnknown, errors.Newf(errors.ErrSheetFormat,
			"unknown definition format: %s", s)
	}
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, err := ParseFormat(ext)
	if err != nil {
		return FormatUnknown, errors.Wrapf(err, errors.ErrSheetFormat,
			"cannot infer definition format of %s", path).
			WithDetail("path", path)
	}
	return f, nil
}

// Decode parses data in the given format
func Decode(data []byte, format Format) (*Sheet, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	case FormatXML:
		return decodeXML(data)
	default:
		return nil, errors.Newf(errors.ErrSheetFormat, "unsupported format: %s", format)
	}
}
