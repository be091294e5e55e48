package models

// Session is the authentication state carried through a request. The
// zero value is Anonymous; Authenticated holds exactly when User is
// non-nil, so the two can never disagree.
type Session struct {
	User  *User
	Token string
}

func (s Session) Authenticated() bool {
	return s.User != nil
}

func (s Session) Role() (Role, bool) {
	if s.User == nil {
		return "", false
	}
	return s.User.Role, true
}

func Anonymous() Session {
	return Session{}
}

func AuthenticatedSession(user *User, token string) Session {
	return Session{User: user, Token: token}
}
