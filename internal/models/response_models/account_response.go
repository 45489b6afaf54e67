package response_models

type AuthResponse struct {
	Token      string       `json:"token"`
	HasPremium bool         `json:"hasPremium"`
	User       UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}
