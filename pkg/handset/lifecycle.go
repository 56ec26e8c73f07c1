package handset

import (
	"time"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
)

// Notice is the notification outcome of a resolved transition.
type Notice int

const (
	NoticeNone Notice = iota
	NoticeApproved
	NoticeRejected
)

// Update carries the caller-supplied mutation fields for one request.
type Update struct {
	TargetStatus   Status
	MRNumber       *string
	CollectionDate *time.Time
	FixedAssetCode *string
}

// Outcome is the resolved field-change set. A nil RenewalDate means the
// stored value is left untouched.
type Outcome struct {
	Status         Status
	CollectionDate *time.Time
	RenewalDate    *time.Time
	Notice         Notice
}

// Resolve evaluates a requested update against the transition rules:
//
//  1. Approved requires both an MRNumber and a collection date.
//  2. A supplied collection date forces the status to Approved even when the
//     caller asked for something else. This override is intentional, inherited
//     portal behavior: recording a collection is the act of approval.
//  3. Without a collection date the requested status is applied verbatim and
//     the stored renewal date stays as it is.
//
// Resolve is pure; persistence and the NotFound case belong to the caller.
func Resolve(u Update) (Outcome, error) {
	if u.TargetStatus == StatusApproved {
		if u.MRNumber == nil || *u.MRNumber == "" || u.CollectionDate == nil {
			return Outcome{}, apperror.Validation("MRNumber and CollectionDate are required when status is 'Approved'")
		}
	}

	out := Outcome{Status: u.TargetStatus}

	if u.CollectionDate != nil {
		renewal := RenewalDate(*u.CollectionDate)
		out.Status = StatusApproved
		out.CollectionDate = u.CollectionDate
		out.RenewalDate = &renewal
	}

	switch out.Status {
	case StatusApproved:
		out.Notice = NoticeApproved
	case StatusRejected:
		out.Notice = NoticeRejected
	}

	return out, nil
}

// ApprovedMessage is the notification text for a granted request.
func ApprovedMessage(collection time.Time) string {
	return "Your handset request has been approved! The device is now assigned to you. " +
		"Please note your renewal will be due in 2 years from the collection date (" +
		collection.Format("02 January 2006") + ")."
}

// RejectedMessage is the notification text for a denied request.
func RejectedMessage() string {
	return "Unfortunately, your recent handset request has been rejected. Please contact IT support for more details."
}
