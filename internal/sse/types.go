package sse

// JobStatusPayload is the payload of job.status events.
type JobStatusPayload struct {
	JobID     string `json:"jobId"`
	Kind      string `json:"kind"`
	Status    string `json:"status"`
	LastError string `json:"lastError,omitempty"`
}

// JobProgressPayload is the payload of job.progress events.
type JobProgressPayload struct {
	JobID     string `json:"jobId"`
	Processed int    `json:"processed"`
	Selected  int    `json:"selected"`
	LastFile  string `json:"lastFile,omitempty"`
}

// ConnectedPayload is the payload of the connected event that opens
// every stream.
type ConnectedPayload struct {
	ClientID string   `json:"clientId"`
	Filters  []string `json:"filters,omitempty"`
}
