package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	slidererrors "github.com/alexisbeaulieu97/slider/pkg/errors"
)

// Format is the encoding of a deck file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatOf picks the decoder from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported deck extension %q (expected .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// ParseDeck loads a deck file from disk, validates it, and returns the resulting model.
func ParseDeck(path string) (*Deck, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, slidererrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, slidererrors.NewParseError(path, 0, err)
	}

	return Parse(path, format, data)
}

// Parse decodes data in the given format and validates the result. path is
// only used in error messages.
func Parse(path string, format Format, data []byte) (*Deck, error) {
	var deck Deck
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&deck); err != nil {
			return nil, slidererrors.NewParseError(path, yamlLine(err), err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&deck); err != nil {
			return nil, slidererrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return nil, slidererrors.NewParseError(path, 0, fmt.Errorf("unsupported format %q", format))
	}

	if err := ValidateDeck(&deck); err != nil {
		return nil, err
	}
	return &deck, nil
}

func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		row, _ := strictErr.Errors[0].Position()
		return row
	}
	return 0
}
