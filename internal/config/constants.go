package config

import "esplorocli/pkg/contracts"

// Application constants
const (
	AppName    = "Esploro Course Loader"
	AppVersion = contracts.Version

	// ServiceName identifies the loader in logs and telemetry.
	ServiceName = "esploro-course-loader"

	// EnvPrefix namespaces every environment variable (ESPLORO_FILES_ROSTER, ...).
	EnvPrefix = "ESPLORO"

	// DotEnvFile is read from the working directory when present.
	DotEnvFile = ".env"

	// Fixed file names used when nothing else is configured.
	DefaultRosterFile = "WorkdayCourses.xlsx"
	DefaultLookupFile = "researcher_lookup.xlsx"
	DefaultOutputFile = "esploro_course_loader.xlsx"
	DefaultLogFile    = "logs/loader.log"

	// Output formats
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)
