// Package config, querybuild komut satırı aracının ayarlarını yükler.
//
// Öncelik sırası (düşükten yükseğe): varsayılanlar, querybuild.yaml dosyası,
// QUERYBUILD_ önekli ortam değişkenleri ve açıkça verilen bayraklar.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

const (
	// DefaultOutput is used when no output format is configured.
	DefaultOutput = OutputText

	// EnvPrefix is the prefix of environment variables read by Load.
	EnvPrefix = "QUERYBUILD_"
)

// ErrInvalidOutput is returned when the output format is neither text nor json.
var ErrInvalidOutput = errors.New("config: output must be text or json")

// Config holds the CLI settings.
type Config struct {
	Output  string `koanf:"output"`
	Strict  bool   `koanf:"strict"`
	Verbose bool   `koanf:"verbose"`

	// File is the config file that was read, empty when none was found.
	File string `koanf:"-"`
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return errors.Wrapf(ErrInvalidOutput, "got %q", c.Output)
	}
}

// findConfigFile returns the explicit path, or querybuild.yaml / querybuild.yml
// from the working directory when present.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"querybuild.yaml", "querybuild.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads the configuration. flags may be nil; only flags that were
// explicitly set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":  DefaultOutput,
		"strict":  false,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. Config file
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", used)
		}
	}

	// 3. Environment: QUERYBUILD_OUTPUT -> output
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
