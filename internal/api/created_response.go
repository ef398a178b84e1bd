package api

// CreatedResponse reports the id of a newly created row.
// swagger:model api.CreatedResponse
type CreatedResponse struct {
	ID      int    `json:"id" example:"1"`
	Message string `json:"message" example:"Equipo creado correctamente"`
}
