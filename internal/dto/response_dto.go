package dto

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	ID       uint   `json:"id"`
	Username string `json:"username"`
	RoleID   uint   `json:"role_id"`
	Token    string `json:"token"`
}
