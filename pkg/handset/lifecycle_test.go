package handset

import (
	"testing"
	"time"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
)

func strPtr(s string) *string { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestResolve(t *testing.T) {
	collection := datePtr(2025, time.January, 15)
	renewal := time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		update      Update
		wantStatus  Status
		wantRenewal *time.Time
		wantNotice  Notice
		wantErr     bool
	}{
		{
			name:       "approval with all fields",
			update:     Update{TargetStatus: StatusApproved, MRNumber: strPtr("MR-1001"), CollectionDate: collection},
			wantStatus: StatusApproved,
			wantRenewal: &renewal,
			wantNotice: NoticeApproved,
		},
		{
			name:    "approval without MRNumber",
			update:  Update{TargetStatus: StatusApproved, CollectionDate: collection},
			wantErr: true,
		},
		{
			name:    "approval without collection date",
			update:  Update{TargetStatus: StatusApproved, MRNumber: strPtr("MR-1001")},
			wantErr: true,
		},
		{
			name:    "approval with empty MRNumber",
			update:  Update{TargetStatus: StatusApproved, MRNumber: strPtr(""), CollectionDate: collection},
			wantErr: true,
		},
		{
			name:        "collection date overrides requested Pending",
			update:      Update{TargetStatus: StatusPending, CollectionDate: collection},
			wantStatus:  StatusApproved,
			wantRenewal: &renewal,
			wantNotice:  NoticeApproved,
		},
		{
			name:        "collection date overrides requested In-progress",
			update:      Update{TargetStatus: StatusInProgress, CollectionDate: collection},
			wantStatus:  StatusApproved,
			wantRenewal: &renewal,
			wantNotice:  NoticeApproved,
		},
		{
			name:       "rejection",
			update:     Update{TargetStatus: StatusRejected},
			wantStatus: StatusRejected,
			wantNotice: NoticeRejected,
		},
		{
			name:       "in-progress emits nothing",
			update:     Update{TargetStatus: StatusInProgress},
			wantStatus: StatusInProgress,
			wantNotice: NoticeNone,
		},
		{
			name:       "unchanged pending emits nothing",
			update:     Update{TargetStatus: StatusPending},
			wantStatus: StatusPending,
			wantNotice: NoticeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.update)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve() expected error, got %+v", got)
				}
				if !apperror.IsKind(err, apperror.KindValidation) {
					t.Errorf("Resolve() error = %v, want validation kind", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", got.Status, tt.wantStatus)
			}
			if got.Notice != tt.wantNotice {
				t.Errorf("Notice = %v, want %v", got.Notice, tt.wantNotice)
			}
			if tt.wantRenewal == nil {
				if got.RenewalDate != nil {
					t.Errorf("RenewalDate = %v, want stored value untouched", got.RenewalDate)
				}
			} else if got.RenewalDate == nil || !got.RenewalDate.Equal(*tt.wantRenewal) {
				t.Errorf("RenewalDate = %v, want %v", got.RenewalDate, tt.wantRenewal)
			}
		})
	}
}

func TestResolveIdempotentApproval(t *testing.T) {
	u := Update{TargetStatus: StatusApproved, MRNumber: strPtr("MR-7"), CollectionDate: datePtr(2025, time.May, 2)}
	first, err := Resolve(u)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Resolve(u)
	if err != nil {
		t.Fatal(err)
	}
	if first.Status != second.Status || !first.RenewalDate.Equal(*second.RenewalDate) {
		t.Errorf("repeated approval resolved differently: %+v vs %+v", first, second)
	}
}

func TestCanDelete(t *testing.T) {
	if err := CanDelete(StatusPending); err != nil {
		t.Errorf("CanDelete(Pending) = %v, want nil", err)
	}
	for _, s := range []Status{StatusApproved, StatusRejected, StatusInProgress} {
		err := CanDelete(s)
		if err == nil {
			t.Errorf("CanDelete(%v) = nil, want InvalidState", s)
			continue
		}
		if !apperror.IsKind(err, apperror.KindInvalidState) {
			t.Errorf("CanDelete(%v) kind = %v, want InvalidState", s, err)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Approved", "Rejected", "In-progress"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "pending", "Complete", "APPROVED"} {
		if _, err := ParseStatus(invalid); err == nil {
			t.Errorf("ParseStatus(%q) expected error", invalid)
		}
	}
}
