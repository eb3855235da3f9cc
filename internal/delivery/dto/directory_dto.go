package dto

// Request DTOs

type SearchRequest struct {
	Query string `json:"q" validate:"max=100"`
}

type CodeRequest struct {
	Code string `json:"code" validate:"required,max=64,code"`
}

type AgendaBoardRequest struct {
	Building string `json:"building" validate:"omitempty,max=32,code"`
	Floor    string `json:"floor" validate:"omitempty,max=32,code"`
}

// Response DTOs

type SpecialtyResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Type        string `json:"type,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type DoctorResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	SpecialtyID    string `json:"specialty_id,omitempty"`
	SpecialtyLabel string `json:"specialty,omitempty"`
	PhotoURL       string `json:"photo_url,omitempty"`
}

type BuildingResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type FloorResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type KioskResponse struct {
	Title              string `json:"title"`
	IdleTimeoutSeconds int    `json:"idle_timeout_seconds"`
}
