package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// chdir switches into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ESPLORO_FILES_BASE_DIR", "ESPLORO_FILES_ROSTER", "ESPLORO_FILES_LOOKUP",
		"ESPLORO_FILES_OUTPUT", "ESPLORO_FILES_OUTPUT_FORMAT",
		"ESPLORO_LOGGING_LEVEL", "ESPLORO_LOGGING_OUTPUT", "ESPLORO_LOGGING_FILE_PATH",
		"ESPLORO_TELEMETRY_TRACE_EXPORTER", "ESPLORO_TELEMETRY_METRICS_FILE",
	} {
		if val, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, val) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		file        string
		dotenv      string
		wantErr     string
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "defaults with no file and no env",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "WorkdayCourses.xlsx", cfg.Files.Roster)
				assert.Equal(t, "researcher_lookup.xlsx", cfg.Files.Lookup)
				assert.Equal(t, "esploro_course_loader.xlsx", cfg.Files.Output)
				assert.Equal(t, "", cfg.Files.OutputFormat)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "console", cfg.Logging.Output)
				assert.Equal(t, "none", cfg.Telemetry.TraceExporter)
			},
		},
		{
			name: "yaml file overrides defaults",
			file: "files:\n  output: out.csv\n  output_format: csv\nlogging:\n  level: debug\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "out.csv", cfg.Files.Output)
				assert.Equal(t, "csv", cfg.Files.OutputFormat)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "WorkdayCourses.xlsx", cfg.Files.Roster)
			},
		},
		{
			name: "env overrides yaml file",
			file: "files:\n  roster: from_file.xlsx\n",
			env:  map[string]string{"ESPLORO_FILES_ROSTER": "from_env.xlsx"},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "from_env.xlsx", cfg.Files.Roster)
			},
		},
		{
			name:   "dotenv file is read",
			dotenv: "ESPLORO_FILES_LOOKUP=dotenv_lookup.xlsx\n",
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "dotenv_lookup.xlsx", cfg.Files.Lookup)
			},
		},
		{
			name:    "invalid output format",
			env:     map[string]string{"ESPLORO_FILES_OUTPUT_FORMAT": "ods"},
			wantErr: "OutputFormat must be one of",
		},
		{
			name:    "invalid trace exporter",
			env:     map[string]string{"ESPLORO_TELEMETRY_TRACE_EXPORTER": "otlp"},
			wantErr: "TraceExporter",
		},
		{
			name:    "malformed yaml",
			file:    "files: [unclosed\n",
			wantErr: "failed to load config from file",
		},
		{
			name: "level is normalised to lower case",
			env:  map[string]string{"ESPLORO_LOGGING_LEVEL": "WARN"},
			validateCfg: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "warn", cfg.Logging.Level)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			chdir(t, dir)

			if tt.file != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "loader.yaml"), []byte(tt.file), 0644))
			}
			if tt.dotenv != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(tt.dotenv), 0644))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load("")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.validateCfg(t, cfg)
		})
	}
}

func TestLoadExplicitFile(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("telemetry:\n  metrics_file: loader.prom\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "loader.prom", cfg.Telemetry.MetricsFile)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "default is valid", mutate: func(*Config) {}},
		{
			name:    "empty roster",
			mutate:  func(c *Config) { c.Files.Roster = "" },
			wantErr: "Roster is required",
		},
		{
			name:    "file output requires a path",
			mutate:  func(c *Config) { c.Logging.Output = "file"; c.Logging.FilePath = "" },
			wantErr: "FilePath is required",
		},
		{
			name:   "console output needs no path",
			mutate: func(c *Config) { c.Logging.FilePath = "" },
		},
		{
			name:    "non json format",
			mutate:  func(c *Config) { c.Logging.Format = "text" },
			wantErr: "Format must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_OutputFormatProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		format := rapid.StringMatching(`[a-z]{0,5}`).Draw(t, "format")
		cfg := Default()
		cfg.Files.OutputFormat = format

		err := cfg.Validate()
		valid := format == "" || format == FormatXLSX || format == FormatCSV
		if valid && err != nil {
			t.Fatalf("format %q rejected: %v", format, err)
		}
		if !valid && err == nil {
			t.Fatalf("format %q accepted", format)
		}
	})
}

func TestGetPaths(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(t.TempDir(), "abs_lookup.xlsx")

	paths, err := GetPaths(FilesConfig{
		BaseDir: base,
		Roster:  "WorkdayCourses.xlsx",
		Lookup:  abs,
		Output:  filepath.Join("out", "loader.xlsx"),
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "WorkdayCourses.xlsx"), paths.Roster)
	assert.Equal(t, abs, paths.Lookup)
	assert.Equal(t, filepath.Join(base, "out", "loader.xlsx"), paths.Output)
}

func TestGetPathsDefaultsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	wd, err := os.Getwd()
	require.NoError(t, err)

	paths, err := GetPaths(Default().Files)
	require.NoError(t, err)
	assert.Equal(t, wd, paths.BaseDir)
	assert.Equal(t, filepath.Join(wd, DefaultRosterFile), paths.Roster)
}
