package i18n

import (
	"encoding/json"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/mh739025250/deltaboard/internal/domain"
	"github.com/mh739025250/deltaboard/internal/domain/entities"
)

// Format is the on-disk encoding of a locale table.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// unmarshalFuncs is handed to go-i18n's file parser, keyed by file extension.
var unmarshalFuncs = map[string]i18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
	"json": unmarshalJSON,
}

// ParseFormat maps a format name or file extension (".yml") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, s)
}

// reservedKeys are the field names go-i18n reads as message attributes
// rather than message IDs.
var reservedKeys = []string{
	"id", "description", "hash", "leftdelim", "rightdelim", "translation",
	"zero", "one", "two", "few", "many", "other",
}

// Marshal encodes t with keys in lexical order. Keys that collide with
// go-i18n's reserved names ("other", "description", ...) are rejected since
// they would not decode back as table entries.
func Marshal(f Format, t entities.Table) ([]byte, error) {
	for k := range t {
		if slices.Contains(reservedKeys, strings.ToLower(k)) {
			return nil, fmt.Errorf("%w: %q", domain.ErrReservedKey, k)
		}
	}
	m := map[string]string(t)
	if m == nil {
		m = map[string]string{}
	}
	switch f {
	case FormatTOML:
		return toml.Marshal(m)
	case FormatYAML:
		return yaml.Marshal(m)
	case FormatJSON:
		b, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, f)
}

// Unmarshal decodes a locale table. Nested sections are flattened into
// dotted keys the same way the runtime flattens them, so a file mixing
// "common.login" with [common] login is reported as a duplicate.
func Unmarshal(f Format, data []byte) (entities.Table, error) {
	if _, err := ParseFormat(string(f)); err != nil {
		return nil, err
	}
	mf, err := i18n.ParseMessageFileBytes(data, "table."+string(f), unmarshalFuncs)
	if err != nil {
		return nil, err
	}
	return tableFromMessages(mf.Messages)
}

// parseFile decodes an asset named active.<locale>.<ext>.
func parseFile(name string, data []byte) (*i18n.MessageFile, entities.Table, error) {
	if _, err := ParseFormat(path.Ext(name)); err != nil {
		return nil, nil, err
	}
	mf, err := i18n.ParseMessageFileBytes(data, name, unmarshalFuncs)
	if err != nil {
		return nil, nil, err
	}
	table, err := tableFromMessages(mf.Messages)
	if err != nil {
		return nil, nil, err
	}
	return mf, table, nil
}

func tableFromMessages(msgs []*i18n.Message) (entities.Table, error) {
	table := make(entities.Table, len(msgs))
	for _, m := range msgs {
		if _, dup := table[m.ID]; dup {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateKey, m.ID)
		}
		table[m.ID] = m.Other
	}
	return table, nil
}

func messagesFromTable(t entities.Table) []*i18n.Message {
	msgs := make([]*i18n.Message, 0, len(t))
	for _, e := range t.Entries() {
		msgs = append(msgs, &i18n.Message{ID: e.Key, Other: e.Value})
	}
	return msgs
}

// unmarshalJSON rejects repeated object keys, which encoding/json would
// otherwise collapse into the last value.
func unmarshalJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	return checkJSONKeys(gjson.ParseBytes(data), "")
}

func checkJSONKeys(obj gjson.Result, prefix string) error {
	if !obj.IsObject() {
		return nil
	}
	seen := make(map[string]struct{})
	var err error
	obj.ForEach(func(k, v gjson.Result) bool {
		key := prefix + k.String()
		if _, dup := seen[key]; dup {
			err = fmt.Errorf("%w: %q", domain.ErrDuplicateKey, key)
			return false
		}
		seen[key] = struct{}{}
		if err = checkJSONKeys(v, key+"."); err != nil {
			return false
		}
		return true
	})
	return err
}
