package service

import "nyaysetu-backend/models"

// allowedTransitions is the officer-action state table. A status change not
// listed here is rejected rather than applied, closing the open-merge gap of
// accepting arbitrary status strings. "New" is assignable only at creation
// by the public submission path; nothing transitions into it.
var allowedTransitions = map[models.IncidentStatus][]models.IncidentStatus{
	models.StatusNew:           {models.StatusAccepted, models.StatusRejected, models.StatusFIRDrafted},
	models.StatusPendingReview: {models.StatusAccepted, models.StatusRejected, models.StatusFIRDrafted},
	models.StatusAccepted:      {models.StatusFIRFiled, models.StatusPendingReview, models.StatusRejected, models.StatusFIRDrafted},
	models.StatusFIRDrafted:    {models.StatusFIRFiled, models.StatusRejected},
	models.StatusRejected:      {models.StatusPendingReview},
	models.StatusFIRFiled:      {},
}

// ValidStatus reports whether s is one of the defined state-machine values
func ValidStatus(s models.IncidentStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether the state table permits from -> to.
// A same-status update is a no-op, not a transition.
func CanTransition(from, to models.IncidentStatus) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
