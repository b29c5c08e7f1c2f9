// Package local implements the domain repositories over a single localkv
// store. All read-modify-write sequences (counter bumps, merge updates, the
// set-default two-phase toggle) run under one store-wide mutex, so the
// repositories are safe under concurrent access even though every write
// rewrites its collection wholesale.
package local

// Store keys. Stable so existing data files keep working across releases.
const (
	keyResumes  = "resumes"
	keyJobPosts = "jobPosts"
	keyHistory  = "tailoringHistory"
	keyUser     = "currentUser"
	keyCounters = "idCounters"
)
