package api

// swagger:model api.CountResponse
type CountResponse struct {
	Count int `json:"count" example:"3"`
}
