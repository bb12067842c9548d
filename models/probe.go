package models

// ProbeResult is the outcome of an authenticated request issued through the
// gateway from the protected home screen.
type ProbeResult struct {
	StatusCode int
	// Body is the beginning of the response body, for display only.
	Body string
}
