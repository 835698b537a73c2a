package handler

type GenerateResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type GenerateErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// UpstreamErrorResponse carries either the upstream status code (a number)
// or an error text in Message.
type UpstreamErrorResponse struct {
	Error   string `json:"error"`
	Message any    `json:"message"`
}

type SyncStatusResponse struct {
	Count      int    `json:"count"`
	Inserted   int    `json:"inserted"`
	Pruned     int64  `json:"pruned"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
	Error      string `json:"error,omitempty"`
}
