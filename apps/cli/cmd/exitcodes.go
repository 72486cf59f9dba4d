package cmd

// Exit codes for the tarpgo CLI
const (
	// ExitSuccess indicates the run completed
	ExitSuccess = 0

	// ExitRunFailure indicates a test or build failure during the run
	ExitRunFailure = 1

	// ExitConfigError indicates profile resolution failed
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
