package entity

// Building is an entry of the building catalog.
type Building struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Floor is one floor of a building as returned by the floors-by-building endpoint.
type Floor struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
