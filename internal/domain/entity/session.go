// Package entity contains the core business objects of the project.
package entity

// Session is the client's authentication state. The invariant is all or
// nothing: User is set iff Token was validated against the backend, so a
// session is never half-populated.
type Session struct {
	Token string // Opaque bearer credential; empty when logged out.
	User  *User  // Backend-canonical account data; nil when logged out.
}

// Authenticated reports whether the session carries a validated identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// IsAdmin reports whether the session belongs to a back-office account.
func (s *Session) IsAdmin() bool {
	return s.Authenticated() && s.User.Role == RoleAdmin
}
