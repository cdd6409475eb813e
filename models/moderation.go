package models

import "time"

type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

func ValidModerationStatus(s string) bool {
	switch ModerationStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Moderation is the submission lifecycle shared by artist applications and
// blog posts. Approve and Reject are idempotent overwrites rather than
// guarded transitions: approving an approved record refreshes its approval
// timestamp, and each transition clears the fields of the opposite branch.
type Moderation struct {
	Status          ModerationStatus `json:"status" gorm:"default:'pending';index"`
	SubmittedAt     time.Time        `json:"submitted_at"`
	ApprovedAt      *time.Time       `json:"approved_at,omitempty"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
}

// Submit moves the record to pending from any state, discarding the outcome
// of a previous moderation cycle.
func (m *Moderation) Submit(now time.Time) {
	m.Status = StatusPending
	m.SubmittedAt = now
	m.ApprovedAt = nil
	m.RejectionReason = ""
}

func (m *Moderation) Approve(now time.Time) {
	approvedAt := now
	m.Status = StatusApproved
	m.ApprovedAt = &approvedAt
	m.RejectionReason = ""
}

// Reject records the supplied reason, which may be empty.
func (m *Moderation) Reject(reason string, now time.Time) {
	m.Status = StatusRejected
	m.RejectionReason = reason
	m.ApprovedAt = nil
}
