// internal/domain/homework/homework.go
package homework

import "context"

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Record is a single entry of the "homeworks" list, kept as the decoded JSON object.
type Record map[string]any

// Name returns homework_name, or "" when it is absent or not a string.
func (r Record) Name() string {
	name, _ := r["homework_name"].(string)
	return name
}

// Status returns the raw status field, or "" when it is absent or not a string.
func (r Record) Status() Status {
	status, _ := r["status"].(string)
	return Status(status)
}

// VerdictTable maps a review status to the sentence shown to the user.
type VerdictTable map[Status]string

// DefaultVerdicts returns a fresh copy of the three known verdicts.
func DefaultVerdicts() VerdictTable {
	return VerdictTable{
		StatusApproved:  "The work has been reviewed: the reviewer liked everything. Hooray!",
		StatusReviewing: "The work has been taken for review by the reviewer.",
		StatusRejected:  "The work has been reviewed: the reviewer has remarks.",
	}
}

// Verdict looks up the sentence for status.
func (t VerdictTable) Verdict(status Status) (string, bool) {
	verdict, ok := t[status]
	return verdict, ok && verdict != ""
}

// API defines the single call made to the homework review service.
// The response is returned as decoded JSON so its shape can be validated separately.
type API interface {
	FetchUpdates(ctx context.Context, since int64) (any, error)
}
