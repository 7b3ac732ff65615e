package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"jsstyle/internal/diag"
	"jsstyle/internal/source"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Decode for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Format is the serialization of a config file.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatTOML
	FormatYAML
)

// FormatFor picks the format by file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// Load reads settings from path. An empty path means DefaultPath; a
// missing default file is silent, a missing explicit one is a warning.
// The returned diagnostics are warnings only.
func Load(path string, explicit bool) (Config, []diag.Diagnostic) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if !explicit {
				return Default(), nil
			}
			return Default(), []diag.Diagnostic{warn(diag.CfgMissing, "config file %s not found, using defaults", path)}
		}
		return Default(), []diag.Diagnostic{warn(diag.CfgUnreadable, "could not read config file, using defaults: %v", err)}
	}

	format, err := FormatFor(path)
	if err != nil {
		return Default(), []diag.Diagnostic{warn(diag.CfgUnsupportedFormat, "%v, using defaults", err)}
	}
	raw, err := Decode(data, format)
	if err != nil {
		return Default(), []diag.Diagnostic{warn(diag.CfgUnreadable, "could not parse %s, using defaults: %v", path, err)}
	}
	cfg, warnings := FromMap(raw)
	cfg.Source = path
	return cfg, warnings
}

// Decode parses data into a flat key-value map.
func Decode(data []byte, format Format) (map[string]any, error) {
	raw := make(map[string]any)
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw == nil {
			raw = make(map[string]any)
		}
	default:
		return nil, ErrUnsupportedFormat
	}
	return raw, nil
}

// FromMap overlays raw on the defaults. Unknown keys are ignored; a value of
// the wrong type keeps the default and produces a warning.
func FromMap(raw map[string]any) (Config, []diag.Diagnostic) {
	cfg := Default()
	var warnings []diag.Diagnostic
	badValue := func(key string, v any, want string) {
		warnings = append(warnings, warn(diag.CfgBadValue, "%s: expected %s, got %v (%T); keeping default", key, want, v, v))
	}

	if v, ok := raw[KeyNamingPattern]; ok {
		s, isStr := v.(string)
		switch {
		case !isStr:
			badValue(KeyNamingPattern, v, "string")
		default:
			re, err := compilePattern(s)
			if err != nil {
				warnings = append(warnings, warn(diag.CfgBadPattern, "%s: invalid pattern %q: %v; keeping default", KeyNamingPattern, s, err))
				break
			}
			cfg.NamingPattern = s
			cfg.naming = re
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{KeyMaxEmptyLines, &cfg.MaxEmptyLines},
		{KeyMaxComplexity, &cfg.MaxComplexity},
		{KeyIndentationSize, &cfg.IndentationSize},
	}
	for _, it := range ints {
		v, ok := raw[it.key]
		if !ok {
			continue
		}
		n, isInt := asInt(v)
		if !isInt || n < 0 {
			badValue(it.key, v, "non-negative integer")
			continue
		}
		*it.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{KeyRequireSpacesOperators, &cfg.RequireSpacesOperators},
		{KeyNoUnusedVars, &cfg.NoUnusedVars},
		{KeyAutofix, &cfg.Autofix},
	}
	for _, it := range bools {
		v, ok := raw[it.key]
		if !ok {
			continue
		}
		b, isBool := v.(bool)
		if !isBool {
			badValue(it.key, v, "boolean")
			continue
		}
		*it.dst = b
	}
	return cfg, warnings
}

// asInt принимает целые из любого декодера: json.Number, int64 из TOML,
// int из YAML, а также float без дробной части.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > uint64(^uint(0)>>1) {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

func warn(code diag.Code, format string, args ...any) diag.Diagnostic {
	return diag.NewWarning(code, 0, source.Span{}, fmt.Sprintf(format, args...))
}
