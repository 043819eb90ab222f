package definition

import (
	"os"

	"github.com/arthur-debert/lydio/pkg/css"
	"github.com/arthur-debert/lydio/pkg/errors"
	"github.com/arthur-debert/lydio/pkg/logging"
)

// LoadFile reads and decodes a definition file, picking the format from its
// extension.
func LoadFile(path string) (*Sheet, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path).
			WithDetail("path", path)
	}

	sheet, err := Decode(data, format)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("definition")
	logger.Info().
		Str("path", path).
		Str("format", format.String()).
		Int("rules", sheet.RuleCount()).
		Msg("Loaded definition")
	return sheet, nil
}

// BuildFile is LoadFile followed by Build.
func BuildFile(path string) (*css.Collection, error) {
	sheet, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(sheet)
}
