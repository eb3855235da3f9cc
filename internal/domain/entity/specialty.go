package entity

// Specialty is a medical specialty offered in the directory.
type Specialty struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Type        string `json:"type,omitempty"`
	Icon        string `json:"icon,omitempty"`
}
