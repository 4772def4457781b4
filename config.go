package karl

import (
	"fmt"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Recognized configuration document keys.
const (
	keyLocation = "includeLocationInformation"
	keyColorize = "colorize"
	keyRedirect = "redirectConsole"
	keyJSON     = "json"
)

// OptionsFromJSON translates a JSON configuration document into
// Configure options. Only the recognized keys present in the document
// yield options; everything omitted keeps its default. Useful when
// logger settings travel inside a larger service configuration.
func OptionsFromJSON(data []byte) ([]Option, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), kjson.Parser()); err != nil {
		return nil, fmt.Errorf("karl: parse config: %w", err)
	}
	var opts []Option
	if k.Exists(keyLocation) {
		opts = append(opts, WithLocationInfo(k.Bool(keyLocation)))
	}
	if k.Exists(keyColorize) {
		opts = append(opts, WithColorize(k.Bool(keyColorize)))
	}
	if k.Exists(keyRedirect) {
		opts = append(opts, WithConsoleCapture(k.Bool(keyRedirect)))
	}
	if k.Exists(keyJSON) {
		opts = append(opts, WithJSON(k.Bool(keyJSON)))
	}
	return opts, nil
}
