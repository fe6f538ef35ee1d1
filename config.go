package tudat

import (
	"fmt"
	"os"

	"github.com/danvip10/tudat/parsed"
	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable holding the directory of conf.toml.
const ConfigEnv = "TUDAT_CONFIG"

// Config holds the configuration of the state extraction tools.
type Config struct {
	CollectAll  bool               // report every missing state field instead of the first one
	SkipInvalid bool               // skip records which cannot be extracted instead of aborting
	Columns     []parsed.FieldType // column layout of state files
	LogLevel    string
}

// DefaultConfig returns the configuration used when no conf.toml is provided.
func DefaultConfig() Config {
	return Config{Columns: parsed.StateLayout(), LogLevel: "info"}
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	columns := make([]string, len(def.Columns))
	for i, f := range def.Columns {
		columns[i] = f.String()
	}
	v.SetDefault("extract.collect_all", def.CollectAll)
	v.SetDefault("extract.skip_invalid", def.SkipInvalid)
	v.SetDefault("extract.columns", columns)
	v.SetDefault("log.level", def.LogLevel)
}

// LoadConfig reads conf.toml from the provided directory.
// If dir is empty, the directory is read from the TUDAT_CONFIG environment variable,
// and the default configuration is returned if that is also empty.
func LoadConfig(dir string) (Config, error) {
	v, err := ReadConfigFile(dir)
	if err != nil {
		return Config{}, err
	}
	return ConfigFromViper(v)
}

// ReadConfigFile returns a viper instance populated from conf.toml in the provided directory
// (or TUDAT_CONFIG if empty). No file is read when neither is set.
func ReadConfigFile(dir string) (*viper.Viper, error) {
	if dir == "" {
		dir = os.Getenv(ConfigEnv)
	}
	v := viper.New()
	if dir != "" {
		v.SetConfigName("conf")
		v.SetConfigType("toml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%s/conf.toml: %w", dir, err)
		}
	}
	return v, nil
}

// ConfigFromViper builds the configuration from an already populated viper instance,
// e.g. one with command line flags bound to it.
func ConfigFromViper(v *viper.Viper) (Config, error) {
	setDefaults(v)
	return configFrom(v)
}

func configFrom(v *viper.Viper) (Config, error) {
	conf := Config{
		CollectAll:  v.GetBool("extract.collect_all"),
		SkipInvalid: v.GetBool("extract.skip_invalid"),
		LogLevel:    v.GetString("log.level"),
	}
	for _, name := range v.GetStringSlice("extract.columns") {
		field, err := parsed.FieldTypeFromString(name)
		if err != nil {
			return Config{}, fmt.Errorf("extract.columns: %w", err)
		}
		conf.Columns = append(conf.Columns, field)
	}
	if len(conf.Columns) == 0 {
		return Config{}, fmt.Errorf("extract.columns: no columns defined")
	}
	return conf, nil
}
