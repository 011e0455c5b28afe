package service

import (
	"testing"

	"nyaysetu-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []models.IncidentStatus{
		models.StatusNew,
		models.StatusPendingReview,
		models.StatusAccepted,
		models.StatusRejected,
		models.StatusFIRDrafted,
		models.StatusFIRFiled,
	} {
		assert.True(t, ValidStatus(s), string(s))
	}

	assert.False(t, ValidStatus("Closed"))
	assert.False(t, ValidStatus(""))
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    models.IncidentStatus
		to      models.IncidentStatus
		allowed bool
	}{
		{"accept new", models.StatusNew, models.StatusAccepted, true},
		{"reject new", models.StatusNew, models.StatusRejected, true},
		{"accept pending", models.StatusPendingReview, models.StatusAccepted, true},
		{"reject pending", models.StatusPendingReview, models.StatusRejected, true},
		{"draft from pending", models.StatusPendingReview, models.StatusFIRDrafted, true},
		{"proceed to fir", models.StatusAccepted, models.StatusFIRFiled, true},
		{"undo accept", models.StatusAccepted, models.StatusPendingReview, true},
		{"reject accepted", models.StatusAccepted, models.StatusRejected, true},
		{"file drafted", models.StatusFIRDrafted, models.StatusFIRFiled, true},
		{"reopen rejected", models.StatusRejected, models.StatusPendingReview, true},
		{"same status is a no-op", models.StatusAccepted, models.StatusAccepted, true},

		{"accept filed", models.StatusFIRFiled, models.StatusAccepted, false},
		{"reopen filed", models.StatusFIRFiled, models.StatusPendingReview, false},
		{"file rejected directly", models.StatusRejected, models.StatusFIRFiled, false},
		{"file new directly", models.StatusNew, models.StatusFIRFiled, false},
		{"nothing transitions into new", models.StatusPendingReview, models.StatusNew, false},
		{"accept rejected directly", models.StatusRejected, models.StatusAccepted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to))
		})
	}
}
