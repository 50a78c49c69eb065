package entities

import "time"

// Session is one logged-in user and the quote draft they are building.
type Session struct {
	Token     string     `json:"token"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Draft     QuoteDraft `json:"draft"`
	CreatedAt time.Time  `json:"created_at"`
}

func (s Session) Can(feature Feature) bool {
	return CanAccess(s.Role, feature)
}
