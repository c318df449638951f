package domain

// Session is the local representation of "who is logged in": the bearer
// credentials issued by the upstream platform plus the identity snapshot
// captured at login. Tokens are opaque to the console.
type Session struct {
	User         *Identity
	AccessToken  string
	RefreshToken string
}

// Active reports whether the session is established. An identity without a
// token (or the reverse) is never active; the two are written as one unit.
func (s *Session) Active() bool {
	return s != nil && s.User != nil && s.AccessToken != ""
}
