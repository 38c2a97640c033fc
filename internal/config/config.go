// Package config loads the service configuration.
//
// Sources, lowest priority first:
//
//  1. built-in defaults (Default)
//  2. a JSON file (observability-api.json unless another path is given)
//  3. environment variables prefixed with OBSERVABILITY_, where "__" separates
//     nesting levels: OBSERVABILITY_API__LISTEN_PORT=9000 sets api.listen_port
//
// The merged tree is decoded strictly (unknown keys are errors) and validated.
package config

import (
	"errors"
	"io/fs"
	"strings"

	apperrors "github.com/darkkaiser/observability-api/internal/pkg/errors"
	"github.com/darkkaiser/observability-api/internal/pkg/validator"
	"github.com/darkkaiser/observability-api/pkg/strutil"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName identifies the service in file names and logs.
	AppName = "observability-api"

	// DefaultFilename is read by Load when present.
	DefaultFilename = AppName + ".json"

	EnvPrefix = "OBSERVABILITY_"
)

// listKeys are the keys whose environment value is a comma separated list.
var listKeys = map[string]bool{
	"api.allow_origins":           true,
	"observability.info.mentions": true,
}

// Load reads DefaultFilename if it exists; a missing file is not an error.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, false)
}

// LoadWithFile reads filename, which must exist.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, true)
}

func load(filename string, required bool) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "failed to load default configuration")
	}

	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			switch {
			case errors.Is(err, fs.ErrNotExist) && !required:
				// defaults and environment only
			case errors.Is(err, fs.ErrNotExist):
				return nil, apperrors.Wrapf(err, apperrors.NotFound, "configuration file not found: '%s'", filename)
			default:
				return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "failed to read configuration file: '%s'", filename)
			}
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "failed to load environment variables")
	}

	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &appConfig,
			TagName:          "json",
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "failed to decode configuration")
	}

	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "invalid configuration (file: '%s')", filename)
	}

	return &appConfig, nil
}

// envKeyValue maps OBSERVABILITY_API__ALLOW_ORIGINS=a,b to
// ("api.allow_origins", []string{"a", "b"}).
func envKeyValue(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "__", ".")

	if listKeys[key] {
		return key, strutil.SplitAndTrim(value, ",")
	}
	return key, value
}

func checkStruct(s any, section string) error {
	if err := validator.Struct(s); err != nil {
		return apperrors.Wrapf(err, apperrors.InvalidInput, "section '%s'", section)
	}
	return nil
}

func newInvalidInputError(message string) error {
	return apperrors.New(apperrors.InvalidInput, message)
}
