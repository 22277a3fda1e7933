// Job status state machine.
//
// Valid status graph:
//
//	open ──► approved ──► completed
//	  │  ╲                    ▲
//	  │   ╲► closed ──► reopen┘ (reopen also returns to open/approved)
//	  │
//	  └──► completed / closed / cancelled / rejected
//
// completed, cancelled and rejected are terminal states.
package domain

import "strings"

const (
	// JobStatusOpen job accepts applications;
	JobStatusOpen string = "open"
	// JobStatusApproved job confirmed by its owner;
	JobStatusApproved string = "approved"
	// JobStatusCancelled job withdrawn, terminal;
	JobStatusCancelled string = "cancelled"
	// JobStatusRejected job refused, terminal;
	JobStatusRejected string = "rejected"
	// JobStatusReopen job restored after being closed;
	JobStatusReopen string = "reopen"
	// JobStatusCompleted work finished, terminal;
	JobStatusCompleted string = "completed"
	// JobStatusClosed job hidden by its owner, may be reopened.
	JobStatusClosed string = "closed"
)

const (
	ApplicationStatusPending  string = "pending"
	ApplicationStatusAccepted string = "accepted"
	ApplicationStatusRejected string = "rejected"
)

const (
	PaymentStatusPending   string = "pending"
	PaymentStatusCompleted string = "completed"
	PaymentStatusFailed    string = "failed"
	PaymentStatusRefunded  string = "refunded"
)

const (
	TransactionTypeApprovalFee string = "approval_fee"
	TransactionTypeDeposit     string = "deposit"
)

// JobStatuses is the canonical set, in a stable order used for error payloads.
var JobStatuses = []string{
	JobStatusOpen,
	JobStatusApproved,
	JobStatusCancelled,
	JobStatusRejected,
	JobStatusReopen,
	JobStatusCompleted,
	JobStatusClosed,
}

// StatusAliases maps caller-supplied synonyms to their canonical form.
var StatusAliases = map[string]string{
	"close":    JobStatusClosed,
	"approve":  JobStatusApproved,
	"complete": JobStatusCompleted,
}

// jobTransitions lists every allowed (from → to) pair. Terminal states have
// no outgoing edges.
var jobTransitions = map[string][]string{
	JobStatusOpen:     {JobStatusApproved, JobStatusCompleted, JobStatusClosed, JobStatusCancelled, JobStatusRejected},
	JobStatusApproved: {JobStatusCompleted, JobStatusCancelled, JobStatusRejected},
	JobStatusClosed:   {JobStatusReopen, JobStatusOpen},
	JobStatusReopen:   {JobStatusOpen, JobStatusApproved, JobStatusCompleted},
}

// NormalizeStatus trims and lowercases a raw status value and resolves
// aliases. The second return reports whether the result is canonical.
func NormalizeStatus(raw string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := StatusAliases[s]; ok {
		s = canonical
	}
	for _, known := range JobStatuses {
		if s == known {
			return s, true
		}
	}
	return s, false
}

// CanTransition reports whether moving from → to is permitted. Leaving the
// closed state is reserved for the job owner.
func CanTransition(from, to string, isOwner bool) bool {
	if from == JobStatusClosed && !isOwner {
		return false
	}
	allowed, ok := jobTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether a job status permits no further transitions.
func IsTerminalStatus(s string) bool {
	return s == JobStatusCompleted || s == JobStatusCancelled || s == JobStatusRejected
}
