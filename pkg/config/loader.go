package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/logging"
)

const (
	// EnvPrefix prefixes configuration environment variables
	EnvPrefix = "ASSETSEL_"
	// EnvConfigDir overrides the user config directory
	EnvConfigDir = "ASSETSEL_CONFIG_DIR"
	// ProjectFile is the per-project config file name
	ProjectFile = ".assetsel.toml"
	// UserFile is the user config file name
	UserFile = "config.toml"
)

// Sources lists the inputs of Load. Empty file paths are skipped, and so
// are files that do not exist.
type Sources struct {
	UserFile    string
	ProjectFile string
	// Overrides are flat "section.key" values applied last
	Overrides map[string]interface{}
}

// UserConfigPath returns the user config file location
func UserConfigPath() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, UserFile)
	}
	return filepath.Join(xdg.ConfigHome, "assetsel", UserFile)
}

// DefaultSources returns the standard sources for a project directory
func DefaultSources(projectDir string) Sources {
	return Sources{
		UserFile:    UserConfigPath(),
		ProjectFile: filepath.Join(projectDir, ProjectFile),
	}
}

// Load merges every layer and decodes the result
func Load(src Sources) (*Config, error) {
	k, err := load(src)
	if err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				trimSpaceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func load(src Sources) (*koanf.Koanf, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2-3. User and project files
	for _, path := range []string{src.UserFile, src.ProjectFile} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path).
				WithDetail("path", path)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Overrides
	if len(src.Overrides) > 0 {
		if err := k.Load(confmap.Provider(src.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	return k, nil
}

func validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "auto", "term", "text", "json", "xml", "toml":
	default:
		return errors.Newf(errors.ErrConfigParse, "unknown output format %q", cfg.Output.Format).
			WithDetail("key", "output.format")
	}
	return nil
}

// ToTOML renders the configuration as TOML
func (c *Config) ToTOML() ([]byte, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrOutputFormat, "failed to encode configuration")
	}
	return data, nil
}
