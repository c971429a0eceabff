// Package models holds announcement records and the jobs that produce them.
package models

import (
	"fmt"
	"strings"
	"time"

	dErrors "charity/pkg/domain-errors"
	pstrings "charity/pkg/platform/strings"
)

// RecentWindow bounds the unseen lists shown to beneficiaries.
const RecentWindow = 30 * 24 * time.Hour

// ForRequest is an announcement attached to one request. BeneficiaryID is
// the request's owner, resolved on read.
type ForRequest struct {
	ID            int64     `json:"id"`
	RequestID     int64     `json:"beneficiary_request"`
	BeneficiaryID int64     `json:"-"`
	CharityID     *int64    `json:"charity"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Seen          bool      `json:"seen"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToBeneficiary is an announcement addressed to a beneficiary directly.
type ToBeneficiary struct {
	ID            int64     `json:"id"`
	BeneficiaryID int64     `json:"beneficiary"`
	CharityID     *int64    `json:"charity"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Seen          bool      `json:"seen"`
	CreatedAt     time.Time `json:"created_at"`
}

// Kind names the event an announcement job describes.
type Kind string

const (
	KindRequestCreated    Kind = "request_created"
	KindRequestUpdated    Kind = "request_updated"
	KindRequestDeleted    Kind = "request_deleted"
	KindHistoryCreated    Kind = "history_created"
	KindHistoryUpdated    Kind = "history_updated"
	KindHistoryDeleted    Kind = "history_deleted"
	KindChildCreated      Kind = "child_created"
	KindChildUpdated      Kind = "child_updated"
	KindChildDeleted      Kind = "child_deleted"
	KindOnetimeUpdated    Kind = "onetime_updated"
	KindOnetimeDeleted    Kind = "onetime_deleted"
	KindRecurringUpdated  Kind = "recurring_updated"
	KindRecurringDeleted  Kind = "recurring_deleted"
	KindStageChanged      Kind = "stage_changed"
	KindChildStageChanged Kind = "child_stage_changed"
)

// Job is the queued description of an announcement to create.
// BeneficiaryID is always set so the worker can invalidate caches even when
// the request row is already gone.
type Job struct {
	Kind          Kind   `json:"kind"`
	RequestID     int64  `json:"request_id"`
	BeneficiaryID int64  `json:"beneficiary_id"`
	CharityID     int64  `json:"charity_id,omitempty"`
	Stage         string `json:"stage,omitempty"`
}

// ToBeneficiary reports whether the job produces a beneficiary announcement
// instead of a request announcement.
func (j Job) ToBeneficiary() bool {
	return j.Kind == KindRequestDeleted
}

// Text renders the title and description the job announces.
func (j Job) Text() (string, string, error) {
	n := j.RequestID
	stage := pstrings.Humanize(j.Stage)
	switch j.Kind {
	case KindRequestCreated:
		return "Created", fmt.Sprintf("Request #%d was created", n), nil
	case KindRequestUpdated:
		return "Update", fmt.Sprintf("The request #%d has been updated.", n), nil
	case KindRequestDeleted:
		return "delete", fmt.Sprintf("The request #%d has been deleted.", n), nil
	case KindHistoryCreated:
		return "History Created", fmt.Sprintf("For request #%d, a history record was created.", n), nil
	case KindHistoryUpdated:
		return "History Updated", fmt.Sprintf("A history record of request #%d was updated.", n), nil
	case KindHistoryDeleted:
		return "History Deleted", fmt.Sprintf("A history record of request #%d was deleted.", n), nil
	case KindChildCreated:
		return "Child Request Created", fmt.Sprintf("A child request was added to request #%d.", n), nil
	case KindChildUpdated:
		return "Child Request Updated", fmt.Sprintf("A child request of request #%d was updated.", n), nil
	case KindChildDeleted:
		return "Child Request Deleted", fmt.Sprintf("A child request of request #%d was deleted.", n), nil
	case KindOnetimeUpdated:
		return "One-Time Info Updated", fmt.Sprintf("The one-time info of request #%d was updated.", n), nil
	case KindOnetimeDeleted:
		return "One-Time Info Deleted", fmt.Sprintf("The one-time info of request #%d was deleted.", n), nil
	case KindRecurringUpdated:
		return "Recurring Info Updated", fmt.Sprintf("The recurring info of request #%d was updated.", n), nil
	case KindRecurringDeleted:
		return "Recurring Info Deleted", fmt.Sprintf("The recurring info of request #%d was deleted.", n), nil
	case KindStageChanged:
		return "Request Moved to " + stage, fmt.Sprintf("Request #%d has been moved to '%s' stage.", n, stage), nil
	case KindChildStageChanged:
		return "Child Request Moved to " + stage, fmt.Sprintf("A child request for request #%d has moved to '%s' stage.", n, stage), nil
	}
	return "", "", fmt.Errorf("unknown announcement kind %q", j.Kind)
}

// AnnouncementRequest is the body charities send to write an announcement by hand.
type AnnouncementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r *AnnouncementRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title: This field is required.")
	}
	if len([]rune(r.Title)) > 255 {
		return dErrors.New(dErrors.CodeValidation, "title: Ensure this field has no more than 255 characters.")
	}
	return nil
}
