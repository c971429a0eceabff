package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charity/pkg/calendar"
	dErrors "charity/pkg/domain-errors"
)

func TestStagesIn(t *testing.T) {
	initial, ok := StagesIn(GroupInitial)
	require.True(t, ok)
	assert.Equal(t, []string{StageSubmitted, StagePendingReview, StageUnderEvaluation}, initial)

	all, ok := StagesIn("")
	require.True(t, ok)
	assert.Len(t, all, 7)

	_, ok = StagesIn("archived")
	assert.False(t, ok)
}

func TestStageChoicesAreHumanized(t *testing.T) {
	got := StageChoices()
	require.Len(t, got, 7)
	assert.Equal(t, Choice{Name: "pending_review", Title: "Pending Review"}, got[1])
}

func TestEffectiveDate(t *testing.T) {
	created := time.Date(2024, 3, 10, 22, 30, 0, 0, time.UTC)
	r := &Request{CreatedAt: created}
	r.SetEffectiveDate()
	assert.Equal(t, "2024-03-10", r.EffectiveDate.String())

	d := calendar.NewDate(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	r.Date = &d
	r.SetEffectiveDate()
	assert.Equal(t, "2024-01-02", r.EffectiveDate.String())
}

func TestActorOwns(t *testing.T) {
	r := &Request{BeneficiaryID: 5, CharityID: 9}

	assert.True(t, BeneficiaryActor(5).Owns(r))
	assert.False(t, BeneficiaryActor(6).Owns(r))
	assert.True(t, CharityActor(9).Owns(r))
	assert.False(t, CharityActor(8).Owns(r))
	assert.True(t, CharityActor(0).Owns(r), "staff see every request")

	bound := CharityActor(9)
	bound.BeneficiaryID = 5
	assert.True(t, bound.Owns(r))
	bound.BeneficiaryID = 6
	assert.False(t, bound.Owns(r), "path beneficiary must match")
	staff := CharityActor(0)
	staff.BeneficiaryID = 6
	assert.False(t, staff.Owns(r))
}

func TestCreateRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"charity":1,"layer1":1,"layer2":2,"title":"rent","duration":"one_time","time":"10:30"}`},
		{name: "missing layer2", body: `{"layer1":1,"duration":"one_time"}`, wantErr: "layer2"},
		{name: "bad duration", body: `{"layer1":1,"layer2":2,"duration":"weekly"}`, wantErr: "duration"},
		{name: "bad time", body: `{"layer1":1,"layer2":2,"duration":"permanent","time":"25:00"}`, wantErr: "time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req CreateRequest
			require.NoError(t, json.Unmarshal([]byte(tc.body), &req))
			err := req.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestUpdateRequestApplyKeepsOmittedFields(t *testing.T) {
	r := &Request{Title: "rent", Description: "march", Duration: DurationOneTime}
	var req UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":" april rent "}`), &req))
	require.NoError(t, req.Validate())

	req.ApplyTo(r)
	assert.Equal(t, "april rent", r.Title)
	assert.Equal(t, "march", r.Description)
	assert.Equal(t, DurationOneTime, r.Duration)
}

func TestRecurringLimitBounds(t *testing.T) {
	assert.Error(t, (&RecurringRequest{Limit: 0}).Validate())
	assert.NoError(t, (&RecurringRequest{Limit: 12}).Validate())
	assert.Error(t, (&RecurringRequest{Limit: 13}).Validate())
}

func TestListQueryNormalize(t *testing.T) {
	q := ListQuery{Ordering: "title"}
	require.NoError(t, q.Normalize())
	assert.Equal(t, GroupAll, q.Group)
	assert.Empty(t, q.Ordering)

	q = ListQuery{Group: "archived"}
	assert.Error(t, q.Normalize())
}

func TestRequestString(t *testing.T) {
	assert.Equal(t, "Request #3 - rent", (&Request{ID: 3, Title: "rent"}).String())
}
