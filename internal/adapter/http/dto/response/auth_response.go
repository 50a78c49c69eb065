package response

import "cablequote/internal/domain/entities"

type SessionResponse struct {
	Token    string   `json:"token,omitempty"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Features []string `json:"features"`
}

// FromSession maps s. The token is only echoed back on login.
func FromSession(s entities.Session, withToken bool) SessionResponse {
	features := entities.FeaturesFor(s.Role)
	res := SessionResponse{
		Email:    s.Email,
		Role:     string(s.Role),
		Features: make([]string, 0, len(features)),
	}
	if withToken {
		res.Token = s.Token
	}
	for _, f := range features {
		res.Features = append(res.Features, string(f))
	}
	return res
}
