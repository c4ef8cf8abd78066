package encode

import "github.com/signadot/pushdown/format"

type EncodeOption func(*EncState)

// EncState holds the settings of one encoding.
type EncState struct {
	format   format.Format
	comments bool
	Color    func(ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{Color: colorNone}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeComments labels the sections of text definitions.
func EncodeComments(v bool) EncodeOption {
	return func(es *EncState) { es.comments = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = colorNone
			return
		}
		es.Color = c.Color
	}
}

// FormatSuffix returns the file extension for the given format.
func FormatSuffix(f format.Format) string {
	switch f {
	case format.JSONFormat:
		return ".json"
	case format.YAMLFormat:
		return ".yaml"
	default:
		return ".pda"
	}
}

func colorNone(_ ColorAttr, s string) string { return s }
