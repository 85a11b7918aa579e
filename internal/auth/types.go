package auth

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"token"`
}
