package handset

import "github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"

// Status is the lifecycle state of a handset request. The string values are
// stored verbatim and must not change.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusApproved   Status = "Approved"
	StatusRejected   Status = "Rejected"
	StatusInProgress Status = "In-progress"
)

func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusApproved, StatusRejected, StatusInProgress:
		return Status(raw), nil
	}
	return "", apperror.Validation("status must be one of 'Pending', 'Approved', 'Rejected' or 'In-progress'")
}

// CanDelete enforces the deletion invariant: only Pending requests may be
// removed, regardless of the caller's authority.
func CanDelete(current Status) error {
	if current != StatusPending {
		return apperror.InvalidState("handset cannot be deleted. Current approval status is '" + string(current) + "'. Only 'Pending' requests can be deleted")
	}
	return nil
}
