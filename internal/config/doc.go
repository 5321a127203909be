// Package config provides configuration management for the course loader.
// It loads settings from multiple sources, validates them, and resolves the
// file paths a run reads and writes.
//
// # Configuration Sources
//
// Configuration is assembled from the following sources, lowest precedence first:
//
//	1. Built-in defaults (the three fixed file names in the working directory)
//	2. A YAML file (loader.yaml or configs/loader.yaml, or the -config flag)
//	3. A .env file in the working directory
//	4. Environment variables
//
// Command-line flags in cmd/loader override all of the above.
//
// # Environment Variables
//
// All environment variables follow the pattern ESPLORO_<SECTION>_<KEY>:
//
//	ESPLORO_FILES_ROSTER=WorkdayCourses.xlsx
//	ESPLORO_FILES_LOOKUP=researcher_lookup.xlsx
//	ESPLORO_FILES_OUTPUT=esploro_course_loader.xlsx
//	ESPLORO_FILES_OUTPUT_FORMAT=csv
//	ESPLORO_LOGGING_LEVEL=debug
//	ESPLORO_TELEMETRY_METRICS_FILE=/var/lib/node_exporter/loader.prom
//
// # Validation
//
// Struct tags are checked with go-playground/validator; an invalid value fails
// Load with a message naming the offending field.
package config
