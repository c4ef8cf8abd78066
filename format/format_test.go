package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"text": TextFormat,
		"pda":  TextFormat,
		"y":    YAMLFormat,
		"yml":  YAMLFormat,
		"json": JSONFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("%q: got %s, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("xml: %v", err)
	}
}

func TestFromExt(t *testing.T) {
	for ext, want := range map[string]Format{
		".pda":  TextFormat,
		".yaml": YAMLFormat,
		".json": JSONFormat,
		".txt":  TextFormat,
		"":      TextFormat,
	} {
		if got := FromExt(ext); got != want {
			t.Errorf("%q: got %s", ext, got)
		}
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("j")); err != nil || !f.IsJSON() || f.String() != "json" {
		t.Errorf("got %s, %v", f, err)
	}
	if _, err := Format(9).MarshalText(); err == nil {
		t.Error("format 9")
	}
}
