package dashboard

// StatsResponse is the headline counters shown on the admin landing page.
type StatsResponse struct {
	TotalUsers        int `json:"total_users"`
	TotalApplications int `json:"total_applications"`
	PendingRequests   int `json:"pending_requests"`
	ActiveAccess      int `json:"active_access"`
}
