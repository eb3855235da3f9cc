package entity

// Day is an entry of the day catalog.
type Day struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
