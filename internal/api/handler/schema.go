package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type addressRequest struct {
	Type        string `json:"type"         validate:"required,oneof=home work other"`
	Name        string `json:"name"         validate:"required"`
	Phone       string `json:"phone"`
	AddressLine string `json:"address_line" validate:"required"`
	City        string `json:"city"         validate:"required"`
	State       string `json:"state"        validate:"required"`
	Pincode     string `json:"pincode"      validate:"required"`
	IsDefault   bool   `json:"is_default"`
}
