package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/iroquiz/internal/catalog"
	"github.com/abhisek/iroquiz/internal/quiz"
)

// EnvPrefix is prepended to every environment variable, e.g. IROQUIZ_QUIZ_SEED.
const EnvPrefix = "IROQUIZ"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from files, environment
// variables and command-line flags.
type Config struct {
	Env      string              `mapstructure:"env"`      // local, production
	Log      Log                 `mapstructure:"log"`      // log sink
	Sources  []string            `mapstructure:"sources"`  // catalog locations, loaded in order
	Encoding string              `mapstructure:"encoding"` // CSV encoding: auto, utf-8, shift_jis
	Quiz     Quiz                `mapstructure:"quiz"`     // question generation
	Aliases  map[string][]string `mapstructure:"aliases"`  // header aliases per field
}

// Log configures where diagnostics go. The TUI owns the terminal, so an
// empty File disables logging.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Quiz contains question generation parameters.
type Quiz struct {
	Choices       int    `mapstructure:"choices"`
	MinChoices    int    `mapstructure:"min_choices"`
	StemSentences int    `mapstructure:"stem_sentences"`
	Seed          uint64 `mapstructure:"seed"` // 0 picks a random seed
}

// LoadOptions tells Load where to look besides the defaults.
type LoadOptions struct {
	// ConfigFile is an explicit config path; it must exist when set.
	ConfigFile string

	// EnvFile is a dotenv file read before the environment. Missing is fine.
	EnvFile string

	// Flags are bound over file and environment values when set.
	Flags *pflag.FlagSet
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"source":   "sources",
	"seed":     "quiz.seed",
	"log-file": "log.file",
	"encoding": "encoding",
	"choices":  "quiz.choices",
}

// Load reads configuration from an optional iroquiz.yaml, a .env file, the
// environment and flags, in increasing order of precedence.
func Load(opts LoadOptions) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading %s: %w", envFile, err)
	}

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("iroquiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("env", EnvPrefix+"_ENV", "APP_ENV")

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	cfg.Sources = splitSources(cfg.Sources)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	qd := quiz.DefaultConfig()

	v.SetDefault("env", "local")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("sources", []string{"data/3kyu.csv", "data/2kyu.csv"})
	v.SetDefault("encoding", string(catalog.EncodingAuto))
	v.SetDefault("quiz.choices", qd.Choices)
	v.SetDefault("quiz.min_choices", qd.MinChoices)
	v.SetDefault("quiz.stem_sentences", qd.StemSentences)
	v.SetDefault("quiz.seed", 0)

	aliases := make(map[string][]string)
	for f, names := range catalog.DefaultAliases() {
		aliases[string(f)] = names
	}
	v.SetDefault("aliases", aliases)
}

// splitSources flattens comma-separated entries, as they arrive from a
// single environment variable or repeated flag values.
func splitSources(in []string) []string {
	var out []string
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// Validate checks value ranges and field names.
func (c *Config) Validate() error {
	var problems []string

	if len(c.Sources) == 0 {
		problems = append(problems, "at least one source is required")
	}
	if _, err := catalog.ParseEncoding(c.Encoding); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Quiz.MinChoices < 1 {
		problems = append(problems, "quiz.min_choices must be at least 1")
	}
	if c.Quiz.Choices < c.Quiz.MinChoices {
		problems = append(problems, fmt.Sprintf("quiz.choices (%d) must be at least quiz.min_choices (%d)", c.Quiz.Choices, c.Quiz.MinChoices))
	}
	if c.Quiz.StemSentences < 1 || c.Quiz.StemSentences > catalog.MaxSentences {
		problems = append(problems, fmt.Sprintf("quiz.stem_sentences must be between 1 and %d", catalog.MaxSentences))
	}
	if _, err := c.CatalogAliases(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// CatalogAliases converts the aliases section, rejecting unknown fields.
// Fields left out keep their default aliases.
func (c *Config) CatalogAliases() (catalog.Aliases, error) {
	override := make(catalog.Aliases, len(c.Aliases))
	var unknown []string
	for name, list := range c.Aliases {
		f := catalog.Field(strings.ToLower(name))
		if !f.Valid() {
			unknown = append(unknown, name)
			continue
		}
		override[f] = list
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown alias fields: %s", strings.Join(unknown, ", "))
	}
	return catalog.DefaultAliases().Merge(override), nil
}

// SourceEncoding returns the parsed CSV encoding.
func (c *Config) SourceEncoding() catalog.Encoding {
	enc, err := catalog.ParseEncoding(c.Encoding)
	if err != nil {
		return catalog.EncodingAuto
	}
	return enc
}

// QuizConfig returns generator settings with the default validator chain.
func (c *Config) QuizConfig() quiz.Config {
	qc := quiz.DefaultConfig()
	qc.Choices = c.Quiz.Choices
	qc.MinChoices = c.Quiz.MinChoices
	qc.StemSentences = c.Quiz.StemSentences
	return qc
}
