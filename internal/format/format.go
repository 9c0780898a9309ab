// Package format encodes logbook datasets and prints record tables for the CLI.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Supported encodings.
const (
	JSON    = "json"
	YAML    = "yaml"
	MsgPack = "msgpack"
)

// Formats lists every supported encoding.
var Formats = []string{JSON, YAML, MsgPack}

// Encode writes v to w in the given format.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case MsgPack:
		return msgpack.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("format: unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Decode reads v from r in the given format.
func Decode(r io.Reader, format string, v any) error {
	var err error
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(v)
	case MsgPack:
		err = msgpack.NewDecoder(r).Decode(v)
	default:
		return fmt.Errorf("format: unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	if err != nil {
		return fmt.Errorf("format: decode %s: %w", format, err)
	}
	return nil
}

// FromPath guesses the format of a file from its extension, defaulting to YAML.
func FromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".msgpack", ".mp":
		return MsgPack
	default:
		return YAML
	}
}
