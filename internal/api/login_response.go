package api

// swagger:model api.LoginResponse
type LoginResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"Login exitoso"`
	User    UserResponse `json:"user"`
}
