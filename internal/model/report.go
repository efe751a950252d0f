package model

type Report struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	TargetID   string `json:"target_id"`
	TargetName string `json:"target_name,omitempty"`
	Reason     string `json:"reason"`
	ReportedBy string `json:"reported_by"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at,omitempty"`
}

type CreateReportRequest struct {
	Type     string `json:"type"`
	TargetID string `json:"target_id"`
	Reason   string `json:"reason"`
}

type CreateReportResponse struct {
	ID string `json:"id"`
}

type GetReportsRequest struct {
	Status string `json:"status" form:"status"`
	Offset int    `json:"offset" form:"offset"`
	Limit  int    `json:"limit" form:"limit"`
}

type GetReportsResponse struct {
	Reports []Report `json:"reports"`
}

type ReviewReportRequest struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

type ReviewReportResponse struct{}
