package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"jperez"`
	Password string `json:"password" validate:"required" example:"usuario123"`
}
