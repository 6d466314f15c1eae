package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/wordtok/internal/tokenizer"
)

type Config struct {
	Vocab    VocabConfig  `mapstructure:"vocab"`
	Encode   EncodeConfig `mapstructure:"encode"`
	LogLevel string       `mapstructure:"log_level"`
}

type VocabConfig struct {
	MaxVocabSize int `mapstructure:"max_vocab_size"`
}

type EncodeConfig struct {
	WrapBoundaries bool `mapstructure:"wrap_boundaries"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Vocab: VocabConfig{
			MaxVocabSize: tokenizer.DefaultMaxVocabSize,
		},
		Encode: EncodeConfig{
			WrapBoundaries: true,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int("max-vocab-size", defaults.Vocab.MaxVocabSize, "Maximum vocabulary size, including the 4 reserved tokens")
	fs.Bool("wrap-boundaries", defaults.Encode.WrapBoundaries, "Wrap encoded sequences in <SOS>/<EOS> boundary tokens")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

// flagKeys maps each nested config key to the flag that overrides it.
// Flags are bound per key: binding the whole flag set under its flat flag
// names would shadow config-file and env values with flag defaults.
var flagKeys = map[string]string{
	"vocab.max_vocab_size":   "max-vocab-size",
	"encode.wrap_boundaries": "wrap-boundaries",
	"log_level":              "log-level",
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("WORDTOK")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	for key := range flagKeys {
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env for %q: %w", key, err)
		}
	}
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("wordtok")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("vocab.max_vocab_size", c.Vocab.MaxVocabSize)
	v.SetDefault("encode.wrap_boundaries", c.Encode.WrapBoundaries)
	v.SetDefault("log_level", c.LogLevel)
}

// bindFlags binds each flag to its nested config key, so an explicitly set
// flag wins over env and config-file values while an untouched flag only
// contributes its default.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}

	return nil
}
