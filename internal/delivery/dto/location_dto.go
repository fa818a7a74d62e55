package dto

// Request DTOs

type SaveLocationRequest struct {
	Location string `json:"location" validate:"required,max=120"`
}

type ReverseGeocodeRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Response DTOs

type LocationResponse struct {
	Location string `json:"location"`
}
