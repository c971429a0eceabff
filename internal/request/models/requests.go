package models

import (
	"strconv"
	"strings"

	"charity/pkg/calendar"
	dErrors "charity/pkg/domain-errors"
	"charity/pkg/validation"
)

const maxTitleRunes = 255

func checkTitle(field, title string, required bool) error {
	if title == "" {
		if required {
			return dErrors.New(dErrors.CodeValidation, field+": This field is required.")
		}
		return nil
	}
	if len([]rune(title)) > maxTitleRunes {
		return dErrors.New(dErrors.CodeValidation, field+": Ensure this field has no more than 255 characters.")
	}
	return nil
}

func checkClock(field, v string) error {
	if v != "" && !validation.Clock(v) {
		return dErrors.New(dErrors.CodeValidation, field+": Time has wrong format. Use one of these formats instead: hh:mm[:ss].")
	}
	return nil
}

// CreateRequest is the body for a new request. Charity is required on the
// beneficiary side; on the charity side it defaults to the caller's charity.
type CreateRequest struct {
	CharityID   int64          `json:"charity"`
	Layer1ID    int64          `json:"layer1"`
	Layer2ID    int64          `json:"layer2"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Duration    string         `json:"duration"`
	Document    string         `json:"document"`
	Date        *calendar.Date `json:"date"`
	Time        string         `json:"time"`
}

func (r *CreateRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Layer1ID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "layer1: This field is required.")
	}
	if r.Layer2ID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "layer2: This field is required.")
	}
	if !ValidDuration(r.Duration) {
		return invalidChoice("duration", r.Duration)
	}
	if err := checkTitle("title", r.Title, false); err != nil {
		return err
	}
	return checkClock("time", r.Time)
}

func (r *CreateRequest) ToRequest() *Request {
	return &Request{
		CharityID:   r.CharityID,
		Layer1ID:    r.Layer1ID,
		Layer2ID:    r.Layer2ID,
		Title:       r.Title,
		Description: r.Description,
		Duration:    r.Duration,
		Document:    r.Document,
		Date:        r.Date,
		Time:        r.Time,
	}
}

// UpdateRequest edits a request. Omitted fields keep their value, so the same
// body serves PUT and PATCH.
type UpdateRequest struct {
	CharityID   *int64         `json:"charity"`
	Layer1ID    *int64         `json:"layer1"`
	Layer2ID    *int64         `json:"layer2"`
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Duration    *string        `json:"duration"`
	Document    *string        `json:"document"`
	Date        *calendar.Date `json:"date"`
	Time        *string        `json:"time"`
}

func (r *UpdateRequest) Validate() error {
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		r.Title = &t
		if err := checkTitle("title", t, false); err != nil {
			return err
		}
	}
	if r.Duration != nil && !ValidDuration(*r.Duration) {
		return invalidChoice("duration", *r.Duration)
	}
	if r.CharityID != nil && *r.CharityID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "charity: This field may not be null.")
	}
	if r.Layer1ID != nil && *r.Layer1ID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "layer1: This field may not be null.")
	}
	if r.Layer2ID != nil && *r.Layer2ID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "layer2: This field may not be null.")
	}
	if r.Time != nil {
		return checkClock("time", *r.Time)
	}
	return nil
}

// ApplyTo merges the body into req.
func (r *UpdateRequest) ApplyTo(req *Request) {
	if r.CharityID != nil {
		req.CharityID = *r.CharityID
	}
	if r.Layer1ID != nil {
		req.Layer1ID = *r.Layer1ID
	}
	if r.Layer2ID != nil {
		req.Layer2ID = *r.Layer2ID
	}
	if r.Title != nil {
		req.Title = *r.Title
	}
	if r.Description != nil {
		req.Description = *r.Description
	}
	if r.Duration != nil {
		req.Duration = *r.Duration
	}
	if r.Document != nil {
		req.Document = *r.Document
	}
	if r.Date != nil {
		req.Date = r.Date
	}
	if r.Time != nil {
		req.Time = *r.Time
	}
}

type ChangeStageRequest struct {
	Stage string `json:"stage"`
}

func (r *ChangeStageRequest) Validate() error {
	r.Stage = strings.TrimSpace(r.Stage)
	if r.Stage == "" {
		return dErrors.New(dErrors.CodeValidation, "stage: This field is required.")
	}
	if !ValidStage(r.Stage) {
		return invalidChoice("stage", r.Stage)
	}
	return nil
}

type OnetimeRequest struct {
	Deadline *calendar.Date `json:"deadline"`
}

func (r *OnetimeRequest) Validate() error { return nil }

type RecurringRequest struct {
	Limit int `json:"recurring_limit"`
}

func (r *RecurringRequest) Validate() error {
	if r.Limit < 1 || r.Limit > 12 {
		return dErrors.New(dErrors.CodeValidation, "recurring_limit: Ensure this value is between 1 and 12.")
	}
	return nil
}

type HistoryRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Document    string         `json:"document"`
	Date        *calendar.Date `json:"date"`
	Time        string         `json:"time"`
}

func (r *HistoryRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if err := checkTitle("title", r.Title, true); err != nil {
		return err
	}
	return checkClock("time", r.Time)
}

func (r *HistoryRequest) ApplyTo(h *History) {
	h.Title = r.Title
	h.Description = r.Description
	h.Document = r.Document
	h.Date = r.Date
	h.Time = r.Time
}

type ChildRequest struct {
	Description string         `json:"description"`
	Document    string         `json:"document"`
	Date        *calendar.Date `json:"date"`
	Time        string         `json:"time"`
}

func (r *ChildRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return dErrors.New(dErrors.CodeValidation, "description: This field is required.")
	}
	return checkClock("time", r.Time)
}

func (r *ChildRequest) ApplyTo(c *Child) {
	c.Description = r.Description
	c.Document = r.Document
	c.Date = r.Date
	c.Time = r.Time
}

// Layer2Request adds a second-level request type under a first-level one.
type Layer2Request struct {
	Name     string `json:"name"`
	Layer1ID int64  `json:"layer1"`
}

func (r *Layer2Request) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := checkTitle("name", r.Name, true); err != nil {
		return err
	}
	if r.Layer1ID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "layer1: This field is required.")
	}
	return nil
}

// ListQuery is a request list query as read from the URL.
type ListQuery struct {
	Search   string
	Group    string
	Ordering string
}

// Normalize checks the group and drops unknown orderings.
func (q *ListQuery) Normalize() error {
	q.Search = strings.TrimSpace(q.Search)
	if q.Group == "" {
		q.Group = GroupAll
	}
	if _, ok := stageGroups[q.Group]; !ok {
		return invalidChoice("group", q.Group)
	}
	if q.Ordering != OrderEffectiveAsc && q.Ordering != OrderEffectiveDesc {
		q.Ordering = ""
	}
	return nil
}

func invalidChoice(field, v string) error {
	return dErrors.New(dErrors.CodeValidation, field+": "+strconv.Quote(v)+" is not a valid choice.")
}
