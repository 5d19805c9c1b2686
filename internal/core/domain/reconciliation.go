package domain

// ReconciliationReport counts what one sweep did.
type ReconciliationReport struct {
	Scanned      int `json:"scanned"`
	Provisioned  int `json:"provisioned"`
	Retried      int `json:"retried"`
	StillFailing int `json:"still_failing"`
	Exhausted    int `json:"exhausted"`
	ManualReview int `json:"manual_review"`
	Canceled     int `json:"canceled"`
	Skipped      int `json:"skipped"`
	Errors       int `json:"errors"`
}
