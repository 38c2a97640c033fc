package log

// NewProductionOptions returns the options used when the service runs with
// debug disabled.
//
// Profile:
//   - level INFO, JSON lines, no console output
//   - critical and verbose files enabled
//   - 30 days retention, 100 MB per file, 20 backups
func NewProductionOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: InfoLevel,

		MaxAge:     30,
		MaxSizeMB:  100,
		MaxBackups: 20,

		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		EnableConsoleLog:  false,
		JSON:              true,

		ReportCaller: true,
	}
}

// NewDevelopmentOptions returns the options used with debug enabled.
//
// Profile:
//   - level TRACE, text lines, console output
//   - a single main file
//   - 1 day retention, 50 MB per file, 5 backups
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:  appName,
		Level: TraceLevel,

		MaxAge:     1,
		MaxSizeMB:  50,
		MaxBackups: 5,

		EnableCriticalLog: false,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,

		ReportCaller: true,
	}
}
