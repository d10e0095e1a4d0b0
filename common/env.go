// Package common holds names shared between the tlview commands and its
// internal packages.
package common

// Environment variable names for configuration.
const (
	// ConfigEnv overrides the config file path.
	ConfigEnv = "TLVIEW_CONFIG"

	// DebugEnv enables debug logging when set to a non-empty value other than "0".
	DebugEnv = "TLVIEW_DEBUG"

	// LogFileEnv sends log output to the named file instead of stderr. The
	// interactive viewer logs to this file only.
	LogFileEnv = "TLVIEW_LOG_FILE"
)

// AppName is used for the config directory and log prefixes.
const AppName = "tlview"
