package domain

// Session is the signed-in identity a request acts as.
type Session struct {
	Role Role   `json:"role"`
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewSession(identity Identity) Session {
	return Session{
		Role: identity.Role(),
		ID:   identity.IdentityID(),
		Name: identity.DisplayName(),
	}
}
