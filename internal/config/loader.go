package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "stylebridge.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "stylebridge.yml"

// LoadFromDir loads a ProjectConfig from the given directory.
// It looks for stylebridge.yaml or stylebridge.yml in the directory.
// Returns nil, nil if no config file is found (not an error condition).
func LoadFromDir(dir string) (*ProjectConfig, error) {
	configPath := FindConfigFile(dir)
	if configPath == "" {
		return nil, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads a ProjectConfig from a YAML file.
func LoadFile(path string) (*ProjectConfig, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg ProjectConfig
	if err := Unmarshal(k, &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// Unmarshal decodes the whole koanf tree into out, turning YAML scalars and
// lists into property Values.
func Unmarshal(k *koanf.Koanf, out any) error {
	return k.UnmarshalWithConf("", out, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       ValuesHook(),
			WeaklyTypedInput: true,
			TagName:          "koanf",
			Result:           out,
		},
	})
}

var valuesType = reflect.TypeOf(Values{})

// ValuesHook converts a scalar or a list of scalars into Values.
// Booleans and numbers are rendered the way they were written.
func ValuesHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		if to != valuesType {
			return data, nil
		}
		switch v := data.(type) {
		case nil:
			return Values{}, nil
		case []any:
			out := make(Values, 0, len(v))
			for _, item := range v {
				s, err := scalarString(item)
				if err != nil {
					return nil, err
				}
				out = append(out, s)
			}
			return out, nil
		case []string:
			return Values(v), nil
		default:
			s, err := scalarString(v)
			if err != nil {
				return nil, err
			}
			return Values{s}, nil
		}
	}
}

func scalarString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("property value must be a scalar, got %T", v)
	}
}

// FindConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func FindConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// FindProjectRoot walks up from the given directory to find a directory
// containing stylebridge.yaml or stylebridge.yml.
// Returns empty string if not found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for {
		if FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
