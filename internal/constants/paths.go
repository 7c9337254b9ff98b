package constants

// Log file names and rotation settings.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.rcli/logs/rcli.log
	CLILogFileName = "rcli.log"

	// LogMaxSizeMB is the maximum size of a log file before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days to keep rotated log files.
	LogMaxAgeDays = 28

	// LogCompress controls gzip compression of rotated log files.
	LogCompress = true
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global rcli configuration file.
	// This file is located in the rcli home directory.
	GlobalConfigName = "config.yaml"
)
