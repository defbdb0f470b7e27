package domain

// SpecialItem represents a dish from the week's specials menu
type SpecialItem struct {
	ID          int64   `json:"id" validate:"gt=0"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0,lte=50"`
	Rating      float64 `json:"rating" validate:"gte=1,lte=5"`
	PrepTime    string  `json:"prepTime"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// SpecialsResult is the response of the week's specials lookup
type SpecialsResult struct {
	Success bool          `json:"success"`
	Data    []SpecialItem `json:"data"`
	Message string        `json:"message"`
}
