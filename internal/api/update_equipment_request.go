package api

// swagger:model api.UpdateEquipmentRequest
type UpdateEquipmentRequest struct {
	Nombre      string `json:"nombre" validate:"required" example:"Microscopio óptico"`
	Descripcion string `json:"descripcion" example:"Microscopio de laboratorio 40x-1000x"`
	Estado      string `json:"estado" validate:"required" example:"en reparación"`
}
