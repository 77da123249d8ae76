package constants

// Redis key prefixes
const (
	// KeyJobLockPrefix guards one enqueue per recurring job occurrence
	KeyJobLockPrefix = "jobs:lock:"
)
