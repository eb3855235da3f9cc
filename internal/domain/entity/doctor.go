package entity

// Doctor is a provider from the upstream doctor catalog. IDs holds every
// non-empty identifier alias in priority order; ID is the first of them.
type Doctor struct {
	ID          string         `json:"id"`
	IDs         []string       `json:"-"`
	Name        string         `json:"name"`
	Specialties []SpecialtyRef `json:"specialties"`
	PhotoURL    string         `json:"photo_url,omitempty"`
}

// SpecialtyRef is a specialty as referenced from a doctor record, either a bare id or an object.
type SpecialtyRef struct {
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
}

// PrimarySpecialty returns the label of the first specialty, "" when the doctor has none.
func (d *Doctor) PrimarySpecialty() string {
	if len(d.Specialties) == 0 {
		return ""
	}
	if d.Specialties[0].Description != "" {
		return d.Specialties[0].Description
	}
	return d.Specialties[0].ID
}

// HasSpecialty reports whether any specialty reference matches id.
func (d *Doctor) HasSpecialty(id string) bool {
	for _, s := range d.Specialties {
		if s.ID == id {
			return true
		}
	}
	return false
}
