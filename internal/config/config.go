package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Files     FilesConfig     `yaml:"files" envconfig:"FILES"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// FilesConfig names the input and output files. Relative paths resolve against BaseDir.
type FilesConfig struct {
	BaseDir      string `yaml:"base_dir" envconfig:"BASE_DIR"`
	Roster       string `yaml:"roster" envconfig:"ROSTER" validate:"required"`
	Lookup       string `yaml:"lookup" envconfig:"LOOKUP" validate:"required"`
	Output       string `yaml:"output" envconfig:"OUTPUT" validate:"required"`
	OutputFormat string `yaml:"output_format" envconfig:"OUTPUT_FORMAT" validate:"omitempty,oneof=xlsx csv"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// TelemetryConfig controls tracing and the metrics textfile
type TelemetryConfig struct {
	ServiceName   string `yaml:"service_name" envconfig:"SERVICE_NAME" validate:"required"`
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=stdout none"`
	TraceFile     string `yaml:"trace_file" envconfig:"TRACE_FILE"`
	MetricsFile   string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Load builds the configuration from defaults, an optional YAML file, an optional
// .env file and ESPLORO_* environment variables, in increasing order of precedence.
// An empty configFile means the first of the well-known locations that exists.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	// Fields carry no default tags, so unset variables leave file/default values alone.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML values onto cfg; keys absent from the file are kept.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// loadDotEnv exports variables from path without overriding ones already set.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

var validate = validator.New()

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Output = strings.ToLower(c.Logging.Output)
	c.Files.OutputFormat = strings.ToLower(c.Files.OutputFormat)

	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatValidationError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_unless":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag())
	}
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"loader.yaml",
		"configs/loader.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Files: FilesConfig{
			Roster: DefaultRosterFile,
			Lookup: DefaultLookupFile,
			Output: DefaultOutputFile,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: DefaultLogFile,
		},
		Telemetry: TelemetryConfig{
			ServiceName:   ServiceName,
			TraceExporter: "none",
		},
	}
}
