package response

type AuthResponse struct {
	Token  string `json:"token,omitempty"`
	UserID string `json:"user_id"`
}
