package auth

// Principal is the authenticated identity derived from a verified bearer
// token.
type Principal struct {
	UserID uint
	Email  string
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}
