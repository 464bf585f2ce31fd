package auth

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	SignupRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
)
