package membership

type Status string

const (
	StatusNone    Status = "none"
	StatusPending Status = "pending"
	StatusActive  Status = "active"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNone, StatusPending, StatusActive:
		return true
	default:
		return false
	}
}

// Facts are gathered once per request. SessionIsMember comes from the caller's
// token and may be stale; the other two must be read fresh from the store.
type Facts struct {
	SessionIsMember      bool
	PersistedIsMember    bool
	HasPendingMembership bool
}

// GuestFacts is used for buyers without an account. A guest never has persisted
// membership, whatever the session claims.
func GuestFacts(sessionIsMember bool) Facts {
	return Facts{SessionIsMember: sessionIsMember}
}

func (f Facts) Status() Status {
	return ResolveStatus(f.PersistedIsMember, f.HasPendingMembership)
}

func (f Facts) IsMember() bool {
	return EffectiveIsMember(f.SessionIsMember, f.PersistedIsMember, f.HasPendingMembership)
}

// SessionStale reports whether the session flag disagrees with the effective one.
func (f Facts) SessionStale() bool {
	return f.SessionIsMember != f.IsMember()
}

func ResolveStatus(persistedIsMember, hasPendingMembership bool) Status {
	switch {
	case hasPendingMembership:
		return StatusPending
	case persistedIsMember:
		return StatusActive
	default:
		return StatusNone
	}
}

// EffectiveIsMember returns the flag used for pricing and qualification.
// A pending activation always wins; otherwise the persisted flag does.
// sessionIsMember is advisory and never decides the result.
func EffectiveIsMember(sessionIsMember, persistedIsMember, hasPendingMembership bool) bool {
	if hasPendingMembership {
		return false
	}
	return persistedIsMember
}
