package adapter

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for results paths whose extension has no codec.
var ErrUnknownFormat = errors.New("unknown results format")

// Format names a results document encoding.
type Format string

// Supported formats.
const (
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
)

type codec struct {
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

var codecs = map[Format]codec{
	FormatYAML:    {marshal: yaml.Marshal, unmarshal: yaml.Unmarshal},
	FormatTOML:    {marshal: toml.Marshal, unmarshal: toml.Unmarshal},
	FormatMsgpack: {marshal: msgpack.Marshal, unmarshal: msgpack.Unmarshal},
}

var formatsByExtension = map[string]Format{
	".results": FormatYAML,
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".toml":    FormatTOML,
	".msgpack": FormatMsgpack,
	".mpk":     FormatMsgpack,
}

// FormatForPath picks the codec for a results path from its extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))

	format, ok := formatsByExtension[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return format, nil
}

// resultsDocument is the on-disk shape of a results file.
type resultsDocument struct {
	Version int                     `yaml:"version" toml:"version" msgpack:"version"`
	Tests   map[string]testDocument `yaml:"tests" toml:"tests" msgpack:"tests"`
}

type testDocument struct {
	Files []fileDocument `yaml:"files" toml:"files" msgpack:"files"`
}

type fileDocument struct {
	Path   string       `yaml:"path" toml:"path" msgpack:"path"`
	Hash   string       `yaml:"hash" toml:"hash" msgpack:"hash"`
	Issues []issueTuple `yaml:"issues,omitempty" toml:"issues,omitempty" msgpack:"issues,omitempty"`
}

// issueTuple is a serialised issue: line, column, length, message, hash.
type issueTuple []any

// MarshalYAML keeps every issue on a single flow-style line.
func (t issueTuple) MarshalYAML() (any, error) {
	node := &yaml.Node{}
	if err := node.Encode([]any(t)); err != nil {
		return nil, err
	}

	node.Style = yaml.FlowStyle

	return node, nil
}
