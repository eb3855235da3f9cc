package entity

// Agenda is one recurring weekly slot of a provider, as read from the upstream
// appointment catalog. Codes are kept raw; decoding happens in the orchestrator.
type Agenda struct {
	ItemCode     string `json:"codigo_item_agendamiento,omitempty"`
	ProviderCode string `json:"codigo_prestador"`
	DayCode      string `json:"codigo_dia"`
	StartTime    string `json:"hora_inicio"`
	EndTime      string `json:"hora_fin"`
	TypeCode     string `json:"tipo"`
	RoomCode     string `json:"codigo_consultorio"`
}
