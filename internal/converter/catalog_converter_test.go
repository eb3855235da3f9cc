package converter

import (
	"testing"

	"hospital-directory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawToAgendas_AliasedKeys(t *testing.T) {
	raw := map[string]any{"data": []any{
		map[string]any{"codigo_prestador": "100", "codigo_dia": "1", "hora_inicio": "0800", "hora_fin": "1200", "tipo": "C", "codigo_consultorio": "C-12"},
		map[string]any{"cd_prestador": float64(100), "dia": "X", "horaInicio": "14:00:00", "horarioFin": "16:00", "type": "P", "consultorio": float64(7)},
	}}

	agendas := RawToAgendas(raw)
	require.Len(t, agendas, 2)
	assert.Equal(t, entity.Agenda{ProviderCode: "100", DayCode: "1", StartTime: "0800", EndTime: "1200", TypeCode: "C", RoomCode: "C-12"}, agendas[0])
	assert.Equal(t, entity.Agenda{ProviderCode: "100", DayCode: "X", StartTime: "14:00:00", EndTime: "16:00", TypeCode: "P", RoomCode: "7"}, agendas[1])
}

func TestRecordToDoctor(t *testing.T) {
	doctor := RecordToDoctor(map[string]any{
		"id":              float64(55),
		"codigoPrestador": "P-55",
		"codigo":          "",
		"nombres":         "Ana Pérez",
		"retrato":         "http://img/ana.png",
		"especialidades":  []any{map[string]any{"especialidadId": float64(3), "descripcion": "Cardiología"}, "9"},
	})

	assert.Equal(t, "55", doctor.ID)
	assert.Equal(t, []string{"55", "P-55"}, doctor.IDs)
	assert.Equal(t, "Ana Pérez", doctor.Name)
	assert.Equal(t, "http://img/ana.png", doctor.PhotoURL)
	assert.Equal(t, "Cardiología", doctor.PrimarySpecialty())
	assert.True(t, doctor.HasSpecialty("9"))
	assert.False(t, doctor.HasSpecialty("4"))
}

func TestRecordToDoctor_SpecialtyFallbackField(t *testing.T) {
	doctor := RecordToDoctor(map[string]any{"nombre": "Luis", "especialidadId": float64(4)})

	assert.Equal(t, "", doctor.ID)
	assert.Equal(t, []entity.SpecialtyRef{{ID: "4"}}, doctor.Specialties)
	assert.Equal(t, "4", doctor.PrimarySpecialty())
}

func TestRawToRooms(t *testing.T) {
	raw := []any{
		map[string]any{"CD_CONSULTORIO": "201", "CD_EDIFICIO": float64(2), "CD_PISO": float64(3), "DES_PISO": "Tercer piso", "DES_CONSULTORIO": "Consultorio 201"},
		map[string]any{"codigo": "A1", "codigo_edificio": "1", "piso": "PB", "descripcion": "Sala A1"},
		map[string]any{"descripcion": "sin código"},
	}

	rooms := RawToRooms(raw)
	require.Len(t, rooms, 2)
	assert.Equal(t, entity.Room{Code: "201", BuildingCode: "2", FloorCode: "3", FloorDescription: "Tercer piso", Description: "Consultorio 201"}, rooms[0])
	assert.Equal(t, entity.Room{Code: "A1", BuildingCode: "1", FloorCode: "PB", Description: "Sala A1"}, rooms[1])
}

func TestRawToBuildingsAndDays(t *testing.T) {
	buildings := RawToBuildings([]any{
		map[string]any{"CD_EDIFICIO": "2", "DES_EDIFICIO": "Torre Bless"},
		map[string]any{"nombre": "huérfano"},
	})
	assert.Equal(t, []entity.Building{{Code: "2", Description: "Torre Bless"}}, buildings)

	days := RawToDays(map[string]any{"data": []any{map[string]any{"codigo": float64(1), "nombre": "Lunes"}}})
	assert.Equal(t, []entity.Day{{Code: "1", Name: "Lunes"}}, days)
}

func TestRawToFloors(t *testing.T) {
	floors := RawToFloors([]any{"1", float64(2), map[string]any{"codigo": "3", "descripcion": "Consulta externa"}, ""})
	assert.Equal(t, []entity.Floor{
		{Code: "1", Description: "1"},
		{Code: "2", Description: "2"},
		{Code: "3", Description: "Consulta externa"},
	}, floors)
}

func TestRawToSpecialties(t *testing.T) {
	specialties := RawToSpecialties([]any{
		map[string]any{"especialidadId": float64(1), "descripcion": "Pediatría", "tipo": nil, "icono": "🩺"},
		"Dermatología",
	})
	assert.Equal(t, []entity.Specialty{
		{ID: "1", Description: "Pediatría", Icon: "🩺"},
		{ID: "Dermatología", Description: "Dermatología"},
	}, specialties)

	specialty, ok := RawToSpecialty(map[string]any{"data": map[string]any{"especialidadId": float64(8), "descripcion": "Neurología"}})
	assert.True(t, ok)
	assert.Equal(t, "8", specialty.ID)

	_, ok = RawToSpecialty("not found")
	assert.False(t, ok)
}

func TestRawToDoctor_Envelopes(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		id   string
		ok   bool
	}{
		{"object", map[string]any{"codigo": "10"}, "10", true},
		{"data object", map[string]any{"data": map[string]any{"codigo": "11"}}, "11", true},
		{"data list", map[string]any{"data": []any{map[string]any{"codigo": "12"}}}, "12", true},
		{"bare list", []any{map[string]any{"codigo": "13"}}, "13", true},
		{"empty list", []any{}, "", false},
		{"scalar", "x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctor, ok := RawToDoctor(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.id, doctor.ID)
		})
	}
}
