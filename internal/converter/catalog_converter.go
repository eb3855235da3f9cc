package converter

import (
	"strings"

	"hospital-directory/internal/domain/entity"
	"hospital-directory/pkg/record"
)

// RecordToAgenda converts a raw appointment record.
func RecordToAgenda(rec record.Record) entity.Agenda {
	return entity.Agenda{
		ItemCode:     record.ExtractString(rec, AgendaItemFields...),
		ProviderCode: record.ExtractString(rec, AgendaProviderFields...),
		DayCode:      record.ExtractString(rec, AgendaDayFields...),
		StartTime:    record.ExtractString(rec, AgendaStartFields...),
		EndTime:      record.ExtractString(rec, AgendaEndFields...),
		TypeCode:     record.ExtractString(rec, AgendaTypeFields...),
		RoomCode:     record.ExtractString(rec, AgendaRoomFields...),
	}
}

// RawToAgendas normalizes an appointment catalog payload.
func RawToAgendas(raw any) []entity.Agenda {
	records := record.NormalizeRecords(raw)
	agendas := make([]entity.Agenda, len(records))
	for i, rec := range records {
		agendas[i] = RecordToAgenda(rec)
	}
	return agendas
}

// RecordToDoctor converts a raw doctor record.
func RecordToDoctor(rec record.Record) entity.Doctor {
	ids := record.ExtractStrings(rec, DoctorIDFields...)
	doctor := entity.Doctor{
		IDs:         ids,
		Name:        record.ExtractString(rec, DoctorNameFields...),
		PhotoURL:    record.ExtractString(rec, DoctorPhotoFields...),
		Specialties: specialtyRefs(rec),
	}
	if len(ids) > 0 {
		doctor.ID = ids[0]
	}
	return doctor
}

// RawToDoctors normalizes a doctor catalog payload.
func RawToDoctors(raw any) []entity.Doctor {
	records := record.NormalizeRecords(raw)
	doctors := make([]entity.Doctor, len(records))
	for i, rec := range records {
		doctors[i] = RecordToDoctor(rec)
	}
	return doctors
}

// RawToDoctor converts a single-doctor payload, which may itself be wrapped in "data".
func RawToDoctor(raw any) (entity.Doctor, bool) {
	rec, ok := singleRecord(raw)
	if !ok {
		return entity.Doctor{}, false
	}
	return RecordToDoctor(rec), true
}

func specialtyRefs(rec record.Record) []entity.SpecialtyRef {
	list, _ := rec["especialidades"].([]any)
	refs := make([]entity.SpecialtyRef, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case map[string]any:
			ref := entity.SpecialtyRef{
				ID:          record.ExtractString(v, SpecialtyIDFields...),
				Description: record.ExtractString(v, SpecialtyDescriptionFields...),
			}
			if ref.ID != "" || ref.Description != "" {
				refs = append(refs, ref)
			}
		default:
			if id := strings.TrimSpace(record.Stringify(v)); id != "" {
				refs = append(refs, entity.SpecialtyRef{ID: id})
			}
		}
	}
	if len(refs) == 0 {
		if id := record.ExtractString(rec, DoctorSpecialtyIDFields...); id != "" {
			refs = append(refs, entity.SpecialtyRef{ID: id})
		}
	}
	return refs
}

// RecordToRoom converts a raw consulting room record.
func RecordToRoom(rec record.Record) entity.Room {
	return entity.Room{
		Code:             record.ExtractString(rec, RoomCodeFields...),
		BuildingCode:     record.ExtractString(rec, RoomBuildingFields...),
		FloorCode:        record.ExtractString(rec, RoomFloorFields...),
		FloorDescription: record.ExtractString(rec, RoomFloorDescriptionFields...),
		Description:      record.ExtractString(rec, RoomDescriptionFields...),
	}
}

// RawToRooms normalizes the room catalog, dropping rooms without a code.
func RawToRooms(raw any) []entity.Room {
	records := record.NormalizeRecords(raw)
	rooms := make([]entity.Room, 0, len(records))
	for _, rec := range records {
		if room := RecordToRoom(rec); room.Code != "" {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// RawToBuildings normalizes the building catalog, dropping buildings without a code.
func RawToBuildings(raw any) []entity.Building {
	records := record.NormalizeRecords(raw)
	buildings := make([]entity.Building, 0, len(records))
	for _, rec := range records {
		b := entity.Building{
			Code:        record.ExtractString(rec, BuildingCodeFields...),
			Description: record.ExtractString(rec, BuildingDescriptionFields...),
		}
		if b.Code != "" {
			buildings = append(buildings, b)
		}
	}
	return buildings
}

// RawToFloors normalizes a floors payload; bare values are used as both code and description.
func RawToFloors(raw any) []entity.Floor {
	list := record.NormalizeList(raw)
	floors := make([]entity.Floor, 0, len(list))
	for _, item := range list {
		var f entity.Floor
		if rec, ok := item.(map[string]any); ok {
			f.Code = record.ExtractString(rec, FloorCodeFields...)
			f.Description = record.ExtractString(rec, FloorDescriptionFields...)
		} else {
			f.Code = strings.TrimSpace(record.Stringify(item))
		}
		if f.Description == "" {
			f.Description = f.Code
		}
		if f.Code != "" {
			floors = append(floors, f)
		}
	}
	return floors
}

// RawToDays normalizes the day catalog, dropping entries without a code.
func RawToDays(raw any) []entity.Day {
	records := record.NormalizeRecords(raw)
	days := make([]entity.Day, 0, len(records))
	for _, rec := range records {
		d := entity.Day{
			Code: record.ExtractString(rec, DayCodeFields...),
			Name: record.ExtractString(rec, DayNameFields...),
		}
		if d.Code != "" {
			days = append(days, d)
		}
	}
	return days
}

// RecordToSpecialty converts a raw specialty record.
func RecordToSpecialty(rec record.Record) entity.Specialty {
	return entity.Specialty{
		ID:          record.ExtractString(rec, SpecialtyIDFields...),
		Description: record.ExtractString(rec, SpecialtyDescriptionFields...),
		Type:        record.ExtractString(rec, SpecialtyTypeFields...),
		Icon:        record.ExtractString(rec, SpecialtyIconFields...),
	}
}

// RawToSpecialties normalizes a specialty payload; bare strings become id and description.
func RawToSpecialties(raw any) []entity.Specialty {
	list := record.NormalizeList(raw)
	specialties := make([]entity.Specialty, 0, len(list))
	for _, item := range list {
		if rec, ok := item.(map[string]any); ok {
			specialties = append(specialties, RecordToSpecialty(rec))
			continue
		}
		if s := strings.TrimSpace(record.Stringify(item)); s != "" {
			specialties = append(specialties, entity.Specialty{ID: s, Description: s})
		}
	}
	return specialties
}

// RawToSpecialty converts a single-specialty payload.
func RawToSpecialty(raw any) (entity.Specialty, bool) {
	rec, ok := singleRecord(raw)
	if !ok {
		return entity.Specialty{}, false
	}
	return RecordToSpecialty(rec), true
}

// singleRecord unwraps a lone object, a "data" envelope around one, or the
// first object of a list.
func singleRecord(raw any) (record.Record, bool) {
	if rec, ok := raw.(map[string]any); ok {
		if inner, ok := rec["data"].(map[string]any); ok {
			return inner, true
		}
		if _, ok := rec["data"].([]any); !ok {
			return rec, true
		}
	}
	if records := record.NormalizeRecords(raw); len(records) > 0 {
		return records[0], true
	}
	return nil, false
}
