package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"pending_review":   "Pending Review",
		"in_progress":      "In Progress",
		"submitted":        "Submitted",
		"under_evaluation": "Under Evaluation",
		"":                 "",
		"__x__":            "X",
	}
	for in, want := range cases {
		assert.Equal(t, want, Humanize(in), in)
	}
}
