package hrms

type ConnectRequest struct {
	Connected bool    `json:"connected"`
	APIKey    *string `json:"apiKey,omitempty"`
}

type ConnectResponse struct {
	Status    string `json:"status"`
	Connected bool   `json:"connected"`
}

type SyncResponse struct {
	Status  string `json:"status"`
	Created int    `json:"created"`
}
