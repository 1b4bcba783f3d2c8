package models

// AccountStatus is the closed set of authorization states shared by
// users and vendors. PENDING is the initial state for newly registered
// vendors; pre-existing users default to APPROVED.
type AccountStatus string

const (
	StatusPending   AccountStatus = "pending"
	StatusApproved  AccountStatus = "approved"
	StatusBlocked   AccountStatus = "blocked"
	StatusSuspended AccountStatus = "suspended"
)

// ValidStatus reports whether s is one of the known account statuses.
func ValidStatus(s AccountStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusBlocked, StatusSuspended:
		return true
	}
	return false
}

// statusTransitions holds the allowed admin-initiated transitions.
// There are no automatic transitions or timers.
var statusTransitions = map[AccountStatus][]AccountStatus{
	StatusPending:   {StatusApproved},
	StatusApproved:  {StatusBlocked, StatusSuspended},
	StatusBlocked:   {StatusApproved},
	StatusSuspended: {StatusApproved},
}

// CanTransition reports whether an admin may move an account from one
// status to another. Writing the current status again is always allowed
// so that repeated admin actions stay idempotent.
func CanTransition(from, to AccountStatus) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
