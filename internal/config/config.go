package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nothing-labs/marketplace/internal/branding"
	"github.com/nothing-labs/marketplace/internal/index"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys, also the names used in marketplace.yaml.
const (
	KeySource    = "src"
	KeyOutput    = "out"
	KeyPackage   = "package"
	KeySchema    = "schema"
	KeyStrict    = "strict"
	KeyKeepGoing = "keep_going"
	KeyLocale    = "locale"
	KeyVerbose   = "verbose"
)

// flagNames maps config keys to their command-line flag names.
var flagNames = map[string]string{
	KeySource:    "src",
	KeyOutput:    "out",
	KeyPackage:   "package",
	KeySchema:    "schema",
	KeyStrict:    "strict",
	KeyKeepGoing: "keep-going",
	KeyLocale:    "locale",
	KeyVerbose:   "verbose",
}

// BuildConfig is the resolved configuration for one build.
type BuildConfig struct {
	SourceDir    string
	OutputPath   string
	MetadataPath string
	SchemaPath   string
	Strict       bool
	KeepGoing    bool
	Locale       string
	Verbose      bool

	ConfigFile string // config file that was read, empty if none
}

// RegisterFlags adds the build flags to fs. Each usage string names the
// environment variable that can set the same value.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagNames[KeySource], index.DefaultSourceDir, usage(KeySource, "Directory containing extension descriptor files"))
	fs.String(flagNames[KeyOutput], index.DefaultOutputPath, usage(KeyOutput, "Path of the index file to write"))
	fs.String(flagNames[KeyPackage], "", usage(KeyPackage, "Package metadata file supplying the index name and version (JSON or YAML)"))
	fs.String(flagNames[KeySchema], "", usage(KeySchema, "JSON Schema for descriptors (implies --strict)"))
	fs.Bool(flagNames[KeyStrict], false, usage(KeyStrict, "Validate descriptors against a JSON Schema"))
	fs.Bool(flagNames[KeyKeepGoing], false, usage(KeyKeepGoing, "Report all invalid descriptors instead of stopping at the first"))
	fs.String(flagNames[KeyLocale], index.DefaultLocale, usage(KeyLocale, "Locale used to order extensions by identifier"))
	fs.BoolP(flagNames[KeyVerbose], "v", false, usage(KeyVerbose, "Log each file as it is processed"))
}

func usage(key, text string) string {
	return fmt.Sprintf("%s (env %s)", text, branding.EnvVar(key))
}

// Load resolves the configuration for a build rooted at workDir.
// fs may be nil, in which case only env, file, and defaults apply.
func Load(workDir string, fs *pflag.FlagSet) (*BuildConfig, error) {
	if err := loadDotEnv(workDir); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(KeySource, index.DefaultSourceDir)
	v.SetDefault(KeyOutput, index.DefaultOutputPath)
	v.SetDefault(KeyLocale, index.DefaultLocale)

	v.SetConfigName(branding.ConfigName())
	v.AddConfigPath(workDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range flagNames {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &BuildConfig{
		SourceDir:    v.GetString(KeySource),
		OutputPath:   v.GetString(KeyOutput),
		MetadataPath: v.GetString(KeyPackage),
		SchemaPath:   v.GetString(KeySchema),
		Strict:       v.GetBool(KeyStrict),
		KeepGoing:    v.GetBool(KeyKeepGoing),
		Locale:       v.GetString(KeyLocale),
		Verbose:      v.GetBool(KeyVerbose),
		ConfigFile:   v.ConfigFileUsed(),
	}
	if cfg.SchemaPath != "" {
		cfg.Strict = true
	}
	return cfg, nil
}

// loadDotEnv loads workDir/.env if present. Variables already set in the
// environment win.
func loadDotEnv(workDir string) error {
	path := filepath.Join(workDir, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
