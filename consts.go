package main

const (
	// Generation defaults, overridable by config file and flags.
	defaultCount    = 10
	defaultSource   = sourceSecure
	defaultLogLevel = "warn"

	// Candidate sources selectable with --source.
	sourceSecure  = "secure"
	sourceRuntime = "runtime"
	sourceSeeded  = "seeded"

	// environment variable consulted for --count
	envCount = "HEXPRIME_COUNT"
)
