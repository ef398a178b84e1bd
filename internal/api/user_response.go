package api

// swagger:model api.UserResponse
type UserResponse struct {
	ID       int    `json:"id" example:"7"`
	Username string `json:"username" example:"jperez"`
	FullName string `json:"nombre_completo" example:"Juan Pérez"`
	Role     string `json:"tipo_usuario" example:"standard"`
}
