package api

// swagger:model api.CreateEquipmentRequest
type CreateEquipmentRequest struct {
	Nombre      string `json:"nombre" validate:"required" example:"Microscopio óptico"`
	Descripcion string `json:"descripcion" example:"Microscopio de laboratorio 40x-1000x"`
	// Estado defaults to disponible when empty.
	Estado string `json:"estado" example:"disponible"`
}
