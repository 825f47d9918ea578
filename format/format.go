package format

import (
	"errors"
	"fmt"
	"strings"
)

type Format int

const (
	// TextFormat is plain display text: strings unquoted, arrays
	// comma-joined.
	TextFormat Format = iota
	TOMLFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"":     TextFormat,
		"text": TextFormat,
		"t":    TOMLFormat,
		"toml": TOMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	names := make([]string, 0, len(AllFormats()))
	for _, f := range AllFormats() {
		names = append(names, f.String())
	}
	return 0, fmt.Errorf("%w: %q, want one of %s", ErrBadFormat, v, strings.Join(names, ", "))
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool { return f == TextFormat }
func (f Format) IsTOML() bool { return f == TOMLFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{TextFormat, TOMLFormat, JSONFormat, YAMLFormat}
}
