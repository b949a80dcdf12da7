package response

type SessionResponse struct {
	Email     string `json:"email"`
	ExpiresIn int    `json:"expires_in"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
