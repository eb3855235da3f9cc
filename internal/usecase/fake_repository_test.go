package usecase

import (
	"context"
	"io"
	"sync"

	"hospital-directory/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// fakeCatalog serves canned catalogs and records agenda lookups.
type fakeCatalog struct {
	mu sync.Mutex

	agendas           entity.FetchResult[[]entity.Agenda]
	agendasByProvider []entity.FetchResult[[]entity.Agenda]
	doctors           entity.FetchResult[[]entity.Doctor]
	doctorByID        map[string]entity.FetchResult[*entity.Doctor]
	doctorsBySpec     map[string]entity.FetchResult[[]entity.Doctor]
	rooms             entity.FetchResult[[]entity.Room]
	buildings         entity.FetchResult[[]entity.Building]
	floors            map[string]entity.FetchResult[[]entity.Floor]
	days              entity.FetchResult[[]entity.Day]
	specialties       entity.FetchResult[[]entity.Specialty]
	specialtyByID     map[string]entity.FetchResult[*entity.Specialty]

	providerCalls int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		agendas:     entity.OK([]entity.Agenda{}),
		doctors:     entity.OK([]entity.Doctor{}),
		rooms:       entity.OK([]entity.Room{}),
		buildings:   entity.OK([]entity.Building{}),
		days:        entity.OK([]entity.Day{}),
		specialties: entity.OK([]entity.Specialty{}),
	}
}

func (f *fakeCatalog) FindAgendas(context.Context) entity.FetchResult[[]entity.Agenda] {
	return f.agendas
}

// FindAgendasByProvider returns the scripted answers in order, repeating the last one.
func (f *fakeCatalog) FindAgendasByProvider(context.Context, string) entity.FetchResult[[]entity.Agenda] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.providerCalls++
	if len(f.agendasByProvider) == 0 {
		return entity.OK([]entity.Agenda{})
	}
	i := f.providerCalls - 1
	if i >= len(f.agendasByProvider) {
		i = len(f.agendasByProvider) - 1
	}
	return f.agendasByProvider[i]
}

func (f *fakeCatalog) FindDoctors(context.Context) entity.FetchResult[[]entity.Doctor] {
	return f.doctors
}

func (f *fakeCatalog) FindDoctorByID(_ context.Context, id string) entity.FetchResult[*entity.Doctor] {
	if res, ok := f.doctorByID[id]; ok {
		return res
	}
	return entity.Failed[*entity.Doctor]("HTTP error 404")
}

func (f *fakeCatalog) FindDoctorsBySpecialty(_ context.Context, id string) entity.FetchResult[[]entity.Doctor] {
	if res, ok := f.doctorsBySpec[id]; ok {
		return res
	}
	return entity.Failed[[]entity.Doctor]("HTTP error 404")
}

func (f *fakeCatalog) FindRooms(context.Context) entity.FetchResult[[]entity.Room] {
	return f.rooms
}

func (f *fakeCatalog) FindBuildings(context.Context) entity.FetchResult[[]entity.Building] {
	return f.buildings
}

func (f *fakeCatalog) FindFloorsByBuilding(_ context.Context, code string) entity.FetchResult[[]entity.Floor] {
	if res, ok := f.floors[code]; ok {
		return res
	}
	return entity.Failed[[]entity.Floor]("HTTP error 404")
}

func (f *fakeCatalog) FindDays(context.Context) entity.FetchResult[[]entity.Day] {
	return f.days
}

func (f *fakeCatalog) FindSpecialties(context.Context) entity.FetchResult[[]entity.Specialty] {
	return f.specialties
}

func (f *fakeCatalog) FindSpecialtyByID(_ context.Context, id string) entity.FetchResult[*entity.Specialty] {
	if res, ok := f.specialtyByID[id]; ok {
		return res
	}
	return entity.Failed[*entity.Specialty]("HTTP error 404")
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
