package entity

// AccessOutcome tags an AccessDecision.
type AccessOutcome int

const (
	AccessAllow AccessOutcome = iota
	AccessRedirect
)

// RedirectReason explains why a request was turned away.
type RedirectReason string

const (
	ReasonLoginRequired RedirectReason = "login_required"
	ReasonActivate      RedirectReason = "activate"
	ReasonRenew         RedirectReason = "renew"
)

// AccessDecision is either Allow or RedirectTo(Path, Reason).
type AccessDecision struct {
	Outcome AccessOutcome
	Path    string
	Reason  RedirectReason
}

// Allow lets the request through unchanged.
func Allow() AccessDecision {
	return AccessDecision{Outcome: AccessAllow}
}

// RedirectTo sends the request elsewhere.
func RedirectTo(path string, reason RedirectReason) AccessDecision {
	return AccessDecision{Outcome: AccessRedirect, Path: path, Reason: reason}
}

// Allowed reports whether the decision lets the request through.
func (d AccessDecision) Allowed() bool {
	return d.Outcome == AccessAllow
}
