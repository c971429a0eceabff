// Package models holds assistance requests, their taxonomy and sub-records.
package models

import (
	"fmt"
	"slices"
	"time"

	"charity/pkg/calendar"
	pstrings "charity/pkg/platform/strings"
)

// Durations.
const (
	DurationOneTime   = "one_time"
	DurationRecurring = "recurring"
	DurationPermanent = "permanent"
)

// Processing stages, in pipeline order.
const (
	StageSubmitted       = "submitted"
	StagePendingReview   = "pending_review"
	StageUnderEvaluation = "under_evaluation"
	StageApproved        = "approved"
	StageRejected        = "rejected"
	StageInProgress      = "in_progress"
	StageCompleted       = "completed"
)

var (
	durations = []string{DurationOneTime, DurationRecurring, DurationPermanent}
	stages    = []string{
		StageSubmitted, StagePendingReview, StageUnderEvaluation,
		StageApproved, StageRejected, StageInProgress, StageCompleted,
	}
)

// Stage groups used by list filters.
const (
	GroupInitial    = "initial"
	GroupInProgress = "in_progress"
	GroupCompleted  = "completed"
	GroupRejected   = "rejected"
	GroupAll        = "all"
)

var stageGroups = map[string][]string{
	GroupInitial:    {StageSubmitted, StagePendingReview, StageUnderEvaluation},
	GroupInProgress: {StageApproved, StageInProgress},
	GroupCompleted:  {StageCompleted},
	GroupRejected:   {StageRejected},
	GroupAll:        stages,
}

// StagesIn returns the stages of a group. An empty group means all stages.
func StagesIn(group string) ([]string, bool) {
	if group == "" {
		group = GroupAll
	}
	s, ok := stageGroups[group]
	return slices.Clone(s), ok
}

func ValidStage(s string) bool {
	return slices.Contains(stages, s)
}

func ValidDuration(d string) bool {
	return slices.Contains(durations, d)
}

// Choice is a lookup entry: a machine name and its display title.
type Choice struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

func choices(names []string) []Choice {
	out := make([]Choice, 0, len(names))
	for _, n := range names {
		out = append(out, Choice{Name: n, Title: pstrings.Humanize(n)})
	}
	return out
}

func StageChoices() []Choice {
	return choices(stages)
}

func DurationChoices() []Choice {
	return choices(durations)
}

type Layer1 struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Layer2 struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Layer1ID int64  `json:"layer1"`
}

// Request is an assistance request raised for a beneficiary.
type Request struct {
	ID                 int64          `json:"id"`
	BeneficiaryID      int64          `json:"beneficiary"`
	CharityID          int64          `json:"charity"`
	Layer1ID           int64          `json:"layer1"`
	Layer2ID           int64          `json:"layer2"`
	Title              string         `json:"title"`
	Description        string         `json:"description"`
	Duration           string         `json:"duration"`
	Document           string         `json:"document"`
	Stage              string         `json:"processing_stage"`
	Date               *calendar.Date `json:"date"`
	Time               string         `json:"time"`
	EffectiveDate      calendar.Date  `json:"effective_date"`
	IsCreatedByCharity bool           `json:"is_created_by_charity"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// SetEffectiveDate derives EffectiveDate from Date, falling back to the creation day.
func (r *Request) SetEffectiveDate() {
	if r.Date != nil {
		r.EffectiveDate = *r.Date
		return
	}
	r.EffectiveDate = calendar.NewDate(r.CreatedAt)
}

func (r *Request) String() string {
	return fmt.Sprintf("Request #%d - %s", r.ID, r.Title)
}

type Onetime struct {
	ID                 int64          `json:"id"`
	RequestID          int64          `json:"beneficiary_request"`
	Deadline           *calendar.Date `json:"deadline"`
	IsCreatedByCharity bool           `json:"is_created_by_charity"`
	CreatedAt          time.Time      `json:"created_at"`
}

type Recurring struct {
	ID                 int64     `json:"id"`
	RequestID          int64     `json:"beneficiary_request"`
	Limit              int       `json:"recurring_limit"`
	IsCreatedByCharity bool      `json:"is_created_by_charity"`
	CreatedAt          time.Time `json:"created_at"`
}

// History is a charity-written progress note on a request.
type History struct {
	ID          int64          `json:"id"`
	RequestID   int64          `json:"beneficiary_request"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Document    string         `json:"document"`
	Date        *calendar.Date `json:"date"`
	Time        string         `json:"time"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Child is a follow-up request nested under a parent request.
type Child struct {
	ID                 int64          `json:"id"`
	RequestID          int64          `json:"beneficiary_request"`
	Description        string         `json:"description"`
	Document           string         `json:"document"`
	Stage              string         `json:"processing_stage"`
	Date               *calendar.Date `json:"date"`
	Time               string         `json:"time"`
	IsCreatedByCharity bool           `json:"is_created_by_charity"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// Detail is a request with its taxonomy names and all sub-records.
type Detail struct {
	Request
	Layer1Name string     `json:"layer1_name"`
	Layer2Name string     `json:"layer2_name"`
	Onetime    *Onetime   `json:"onetime"`
	Recurring  *Recurring `json:"recurring"`
	Histories  []History  `json:"histories"`
	Children   []Child    `json:"children"`
}

// Ordering of request lists.
const (
	OrderEffectiveAsc  = "effective_date"
	OrderEffectiveDesc = "-effective_date"
)

// ListFilter restricts request lists. Zero ids mean "any"; a non-nil IDs
// restricts to those ids, even when empty.
type ListFilter struct {
	BeneficiaryID int64
	CharityID     int64
	Stages        []string
	Durations     []string
	IDs           []int64
	Ordering      string
	Offset        int
	Limit         int
}

// Actor is the side a request operation comes from. Beneficiary-side calls
// are bound to the beneficiary named in the URL; charity-side calls are
// bound to the caller's charity, or unrestricted for staff.
type Actor struct {
	BeneficiaryID int64
	CharityID     int64
	ByCharity     bool
}

func BeneficiaryActor(beneficiaryID int64) Actor {
	return Actor{BeneficiaryID: beneficiaryID}
}

// CharityActor acts for charityID. Zero means staff.
func CharityActor(charityID int64) Actor {
	return Actor{CharityID: charityID, ByCharity: true}
}

// Owns reports whether r is visible to the actor. A charity-side actor bound
// to a beneficiary only sees that beneficiary's requests.
func (a Actor) Owns(r *Request) bool {
	if a.ByCharity {
		if a.BeneficiaryID != 0 && r.BeneficiaryID != a.BeneficiaryID {
			return false
		}
		return a.CharityID == 0 || r.CharityID == a.CharityID
	}
	return r.BeneficiaryID == a.BeneficiaryID
}
