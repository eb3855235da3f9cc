package entity

// ScheduleEntry is one appointment slot joined with its room, building, floor and doctor.
type ScheduleEntry struct {
	// Raw values from the appointment record
	ItemCode     string `json:"codigo_item_agendamiento,omitempty"`
	ProviderCode string `json:"codigo_prestador"`
	DayCode      string `json:"codigo_dia"`
	StartTime    string `json:"hora_inicio"`
	EndTime      string `json:"hora_fin"`
	TypeCode     string `json:"tipo"`
	RoomCode     string `json:"codigo_consultorio"`

	// Decoded values
	Doctor              string `json:"medico"`
	Specialty           string `json:"especialidad,omitempty"`
	DayName             string `json:"dia_nombre"`
	StartHHmm           string `json:"hora_inicio_hhmm"`
	EndHHmm             string `json:"hora_fin_hhmm"`
	TimeRange           string `json:"horario"`
	TypeLabel           string `json:"tipo_texto"`
	RoomDescription     string `json:"consultorio_descripcion"`
	BuildingCode        string `json:"codigo_edificio"`
	BuildingDescription string `json:"edificio_descripcion"`
	Floor               string `json:"piso"`
	FloorDescription    string `json:"piso_descripcion"`
}

// ScheduleResult is the outcome of reconciling one provider's schedule. Success is
// false when any catalog fetch failed; Data still carries whatever could be joined.
type ScheduleResult struct {
	Data    []ScheduleEntry `json:"data"`
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
}

// DaySchedule groups the entries of one weekday.
type DaySchedule struct {
	Day     string          `json:"day"`
	Entries []ScheduleEntry `json:"entries"`
}

// WeeklySchedule is the per-day view the kiosk renders.
type WeeklySchedule struct {
	ProviderCode     string        `json:"provider_code"`
	Days             []DaySchedule `json:"days"`
	ConsultationDays []string      `json:"consultation_days"`
	ProcedureDays    []string      `json:"procedure_days"`
	Success          bool          `json:"success"`
	Message          string        `json:"message,omitempty"`
}
