package entity

// Room is a consulting room ("consultorio") normalized from the room catalog.
type Room struct {
	Code             string `json:"code"`
	BuildingCode     string `json:"building_code,omitempty"`
	FloorCode        string `json:"floor_code,omitempty"`
	FloorDescription string `json:"floor_description,omitempty"`
	Description      string `json:"description,omitempty"`
}
