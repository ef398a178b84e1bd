package api

// swagger:model api.CreateLoanRequest
type CreateLoanRequest struct {
	EquipoID  int    `json:"equipo_id" validate:"required" example:"1"`
	UsuarioID int    `json:"usuario_id" validate:"required" example:"7"`
	Motivo    string `json:"motivo" validate:"required" example:"Práctica de microbiología"`
}
