package constants

// Job queue stream and subjects
const (
	StreamJobs = "JOBS"

	SubjectJobPrefix     = "jobs."
	SubjectJobGenerate   = "jobs.trip.generate"
	SubjectJobAssign     = "jobs.trip.assign"
	SubjectJobSweep      = "jobs.trip.sweep"
	SubjectJobDeadPrefix = "jobs.dead."
)

// Job names
const (
	JobTripGenerate = "trip.generate"
	JobTripAssign   = "trip.assign"
	JobTripSweep    = "trip.sweep"
)

// Broadcast subjects observed by the realtime layer
const (
	SubjectTripsGenerated = "trip.generated"
	SubjectTripAssigned   = "trip.assigned"
	SubjectTripUnassigned = "trip.unassigned"
	SubjectTripStatus     = "trip.status"
)
