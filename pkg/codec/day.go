package codec

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Canonical day names, Monday first.
const (
	Monday    = "Lunes"
	Tuesday   = "Martes"
	Wednesday = "Miércoles"
	Thursday  = "Jueves"
	Friday    = "Viernes"
	Saturday  = "Sábado"
	Sunday    = "Domingo"
)

// WeekDays lists the canonical names in display order.
var WeekDays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var (
	dayByNumber = map[string]string{
		"1": Monday, "2": Tuesday, "3": Wednesday, "4": Thursday,
		"5": Friday, "6": Saturday, "7": Sunday,
	}
	dayByLetter = map[string]string{
		"L": Monday, "M": Tuesday, "X": Wednesday, "J": Thursday,
		"V": Friday, "S": Saturday, "D": Sunday,
	}
	dayByName = map[string]string{
		"LUNES":     Monday,
		"MARTES":    Tuesday,
		"MIERCOLES": Wednesday,
		"MIÉRCOLES": Wednesday,
		"JUEVES":    Thursday,
		"VIERNES":   Friday,
		"SABADO":    Saturday,
		"SÁBADO":    Saturday,
		"DOMINGO":   Sunday,
	}
)

// DecodeDay resolves a numeric, letter or full-name day code to its canonical name.
// Unknown codes pass through trimmed.
func DecodeDay(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	upper := strings.ToUpper(code)
	if name, ok := dayByNumber[upper]; ok {
		return name
	}
	if name, ok := dayByLetter[upper]; ok {
		return name
	}
	if name, ok := dayByName[upper]; ok {
		return name
	}
	return code
}

// DayIndex returns the position of a canonical day in WeekDays, or -1.
func DayIndex(name string) int {
	for i, day := range WeekDays {
		if day == name {
			return i
		}
	}
	return -1
}

// Appointment type codes.
const (
	TypeConsulta      = "C"
	TypeProcedimiento = "P"

	LabelConsulta      = "Consulta"
	LabelProcedimiento = "Procedimiento"
)

// DecodeAppointmentType maps C/P to their labels; other codes come back uppercased.
func DecodeAppointmentType(code string) string {
	upper := strings.ToUpper(strings.TrimSpace(code))
	switch upper {
	case TypeConsulta:
		return LabelConsulta
	case TypeProcedimiento:
		return LabelProcedimiento
	}
	return upper
}

var procedurePattern = regexp.MustCompile(`(?i)(proced|qx|quir|cirug)`)

// IsProcedure reports whether a type label describes a procedure rather than a consultation.
func IsProcedure(label string) bool {
	return procedurePattern.MatchString(label)
}

// FormatFloor renders a numeric floor code as "Piso N"; other values pass through.
func FormatFloor(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(code, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return "Piso " + strconv.FormatFloat(n, 'f', -1, 64)
	}
	return code
}

// BuildingDisplayName applies the kiosk's fixed names for the two main buildings.
func BuildingDisplayName(code string) string {
	code = strings.TrimSpace(code)
	switch code {
	case "1":
		return "Edificio Principal"
	case "2":
		return "Edificio Bless"
	}
	return code
}
