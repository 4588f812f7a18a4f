package dto

// HealthResponse reports store liveness and dataset size.
type HealthResponse struct {
	Status       string `json:"status"`
	SnapshotPath string `json:"snapshot_path"`
	Products     int    `json:"products"`
	Orders       int    `json:"orders"`
}
