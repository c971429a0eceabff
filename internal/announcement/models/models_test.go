package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobText(t *testing.T) {
	cases := []struct {
		job   Job
		title string
		desc  string
	}{
		{Job{Kind: KindRequestCreated, RequestID: 4}, "Created", "Request #4 was created"},
		{Job{Kind: KindRequestDeleted, RequestID: 4}, "delete", "The request #4 has been deleted."},
		{Job{Kind: KindHistoryCreated, RequestID: 4}, "History Created", "For request #4, a history record was created."},
		{Job{Kind: KindRecurringDeleted, RequestID: 4}, "Recurring Info Deleted", "The recurring info of request #4 was deleted."},
		{Job{Kind: KindStageChanged, RequestID: 4, Stage: "under_evaluation"}, "Request Moved to Under Evaluation", "Request #4 has been moved to 'Under Evaluation' stage."},
		{Job{Kind: KindChildStageChanged, RequestID: 4, Stage: "approved"}, "Child Request Moved to Approved", "A child request for request #4 has moved to 'Approved' stage."},
	}
	for _, tc := range cases {
		t.Run(string(tc.job.Kind), func(t *testing.T) {
			title, desc, err := tc.job.Text()
			require.NoError(t, err)
			assert.Equal(t, tc.title, title)
			assert.Equal(t, tc.desc, desc)
		})
	}

	_, _, err := Job{Kind: "request_archived"}.Text()
	assert.Error(t, err)
}

func TestOnlyDeletionsGoToBeneficiary(t *testing.T) {
	assert.True(t, Job{Kind: KindRequestDeleted}.ToBeneficiary())
	assert.False(t, Job{Kind: KindRequestUpdated}.ToBeneficiary())
}

func TestJobWireFormat(t *testing.T) {
	raw, err := json.Marshal(Job{Kind: KindRequestUpdated, RequestID: 3, BeneficiaryID: 9})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"request_updated","request_id":3,"beneficiary_id":9}`, string(raw))
}

func TestAnnouncementRequestValidate(t *testing.T) {
	req := AnnouncementRequest{Title: "  visit  "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "visit", req.Title)
	assert.Error(t, (&AnnouncementRequest{Title: " "}).Validate())
}
