package usecase

import (
	"context"
	"sort"
	"strings"

	"hospital-directory/internal/domain/entity"
	"hospital-directory/internal/domain/repository"
	"hospital-directory/internal/infrastructure/metrics"
	"hospital-directory/pkg/codec"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
)

// NotSpecified fills blank fields in the weekly view.
const NotSpecified = "No especificado"

// Catalog names used to label a failed fetch.
const (
	catalogAgendas   = "agendas"
	catalogDoctors   = "medicos"
	catalogRooms     = "consultorios"
	catalogBuildings = "edificios"
	catalogDays      = "dias"
)

type ScheduleUsecase interface {
	GetDetailedScheduleForProvider(ctx context.Context, providerCode string) *entity.ScheduleResult
	GetWeeklySchedule(ctx context.Context, providerCode string) *entity.WeeklySchedule
	GetAgendaBoard(ctx context.Context, buildingCode, floorCode string) *entity.ScheduleResult
}

type scheduleUsecase struct {
	log     *logrus.Logger
	repo    repository.CatalogRepository
	metrics *metrics.DirectoryMetrics
}

func NewScheduleUsecase(log *logrus.Logger, repo repository.CatalogRepository, m *metrics.DirectoryMetrics) ScheduleUsecase {
	return &scheduleUsecase{
		log:     log,
		repo:    repo,
		metrics: m,
	}
}

// catalogs is the outcome of the five concurrent fetches.
type catalogs struct {
	agendas   entity.FetchResult[[]entity.Agenda]
	doctors   entity.FetchResult[[]entity.Doctor]
	rooms     entity.FetchResult[[]entity.Room]
	buildings entity.FetchResult[[]entity.Building]
	days      entity.FetchResult[[]entity.Day]
}

func (c *catalogs) success() bool {
	return c.agendas.Success && c.doctors.Success && c.rooms.Success && c.buildings.Success && c.days.Success
}

// message names the first failing catalog, in fetch order.
func (c *catalogs) message() string {
	failures := []struct {
		name    string
		success bool
		message string
	}{
		{catalogAgendas, c.agendas.Success, c.agendas.Message},
		{catalogDoctors, c.doctors.Success, c.doctors.Message},
		{catalogRooms, c.rooms.Success, c.rooms.Message},
		{catalogBuildings, c.buildings.Success, c.buildings.Message},
		{catalogDays, c.days.Success, c.days.Message},
	}
	for _, f := range failures {
		if !f.success {
			if f.message == "" {
				return f.name + ": request failed"
			}
			return f.name + ": " + f.message
		}
	}
	return ""
}

// fetchCatalogs runs the five fetches concurrently and waits for all of them.
// A failed fetch never cancels the others.
func (u *scheduleUsecase) fetchCatalogs(ctx context.Context, agendas func() entity.FetchResult[[]entity.Agenda]) *catalogs {
	c := &catalogs{}
	var wg conc.WaitGroup
	wg.Go(func() { c.agendas = agendas() })
	wg.Go(func() { c.doctors = u.repo.FindDoctors(ctx) })
	wg.Go(func() { c.rooms = u.repo.FindRooms(ctx) })
	wg.Go(func() { c.buildings = u.repo.FindBuildings(ctx) })
	wg.Go(func() { c.days = u.repo.FindDays(ctx) })
	wg.Wait()
	return c
}

// index holds the lookup tables built from the catalogs.
type index struct {
	rooms     map[string]entity.Room
	buildings map[string]entity.Building
	days      map[string]string
	doctors   map[string]*entity.Doctor
}

func buildIndex(c *catalogs) *index {
	idx := &index{
		rooms:     make(map[string]entity.Room, len(c.rooms.Data)),
		buildings: make(map[string]entity.Building, len(c.buildings.Data)),
		days:      make(map[string]string, len(c.days.Data)),
		doctors:   make(map[string]*entity.Doctor, len(c.doctors.Data)),
	}
	for _, room := range c.rooms.Data {
		if room.Code != "" {
			idx.rooms[room.Code] = room
		}
	}
	for _, building := range c.buildings.Data {
		if building.Code != "" {
			idx.buildings[building.Code] = building
		}
	}
	for _, day := range c.days.Data {
		if name := codec.DecodeDay(day.Name); day.Code != "" && name != "" {
			idx.days[day.Code] = name
		}
	}
	for i := range c.doctors.Data {
		doctor := &c.doctors.Data[i]
		for _, id := range doctor.IDs {
			if _, taken := idx.doctors[id]; !taken {
				idx.doctors[id] = doctor
			}
		}
	}
	return idx
}

func (idx *index) dayName(code string) string {
	if name, ok := idx.days[strings.TrimSpace(code)]; ok {
		return name
	}
	return codec.DecodeDay(code)
}

// enrich joins one appointment through its room to building and floor.
func (idx *index) enrich(a entity.Agenda) entity.ScheduleEntry {
	entry := entity.ScheduleEntry{
		ItemCode:     a.ItemCode,
		ProviderCode: a.ProviderCode,
		DayCode:      a.DayCode,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		TypeCode:     a.TypeCode,
		RoomCode:     a.RoomCode,
		DayName:      idx.dayName(a.DayCode),
		StartHHmm:    codec.ToHHmm(a.StartTime),
		EndHHmm:      codec.ToHHmm(a.EndTime),
		TypeLabel:    codec.DecodeAppointmentType(a.TypeCode),
	}
	entry.TimeRange = codec.FormatTimeRange(codec.To12Hour(entry.StartHHmm), codec.To12Hour(entry.EndHHmm))

	if room, ok := idx.rooms[a.RoomCode]; ok {
		entry.RoomDescription = room.Description
		entry.BuildingCode = room.BuildingCode
		entry.Floor = room.FloorCode
		entry.FloorDescription = room.FloorDescription
		if building, ok := idx.buildings[room.BuildingCode]; ok {
			entry.BuildingDescription = building.Description
		}
	}

	if doctor, ok := idx.doctors[a.ProviderCode]; ok {
		entry.Doctor = doctor.Name
		entry.Specialty = doctor.PrimarySpecialty()
	}
	return entry
}

func (u *scheduleUsecase) GetDetailedScheduleForProvider(ctx context.Context, providerCode string) *entity.ScheduleResult {
	providerCode = strings.TrimSpace(providerCode)

	c := u.fetchCatalogs(ctx, func() entity.FetchResult[[]entity.Agenda] {
		res := u.repo.FindAgendasByProvider(ctx, providerCode)
		if len(res.Data) == 0 {
			res = u.repo.FindAgendasByProvider(ctx, providerCode)
		}
		return res
	})
	idx := buildIndex(c)

	entries := make([]entity.ScheduleEntry, 0, len(c.agendas.Data))
	dropped := 0
	for _, a := range c.agendas.Data {
		if a.ProviderCode != providerCode {
			dropped++
			continue
		}
		entries = append(entries, idx.enrich(a))
	}

	if dropped > 0 {
		u.metrics.ObserveProviderMismatch(dropped)
		u.log.WithFields(logrus.Fields{
			"provider": providerCode,
			"dropped":  dropped,
		}).Debug("Dropped appointments belonging to other providers")
	}

	result := &entity.ScheduleResult{
		Data:    entries,
		Success: c.success(),
		Message: c.message(),
	}
	if !result.Success {
		u.log.Warnf("Failed to load full schedule for provider %s: %s", providerCode, result.Message)
	}
	return result
}

func (u *scheduleUsecase) GetWeeklySchedule(ctx context.Context, providerCode string) *entity.WeeklySchedule {
	detailed := u.GetDetailedScheduleForProvider(ctx, providerCode)

	byDay := make(map[string][]entity.ScheduleEntry)
	consultation := make(map[string]bool)
	procedure := make(map[string]bool)
	for _, entry := range detailed.Data {
		if codec.DayIndex(entry.DayName) < 0 {
			continue
		}
		byDay[entry.DayName] = append(byDay[entry.DayName], withDisplayDefaults(entry))
		if codec.IsProcedure(entry.TypeLabel) {
			procedure[entry.DayName] = true
		} else {
			consultation[entry.DayName] = true
		}
	}

	weekly := &entity.WeeklySchedule{
		ProviderCode:     strings.TrimSpace(providerCode),
		Days:             []entity.DaySchedule{},
		ConsultationDays: []string{},
		ProcedureDays:    []string{},
		Success:          detailed.Success,
		Message:          detailed.Message,
	}
	for _, day := range codec.WeekDays {
		entries, ok := byDay[day]
		if !ok {
			continue
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].StartHHmm < entries[j].StartHHmm
		})
		weekly.Days = append(weekly.Days, entity.DaySchedule{Day: day, Entries: entries})
		if consultation[day] {
			weekly.ConsultationDays = append(weekly.ConsultationDays, day)
		}
		if procedure[day] {
			weekly.ProcedureDays = append(weekly.ProcedureDays, day)
		}
	}
	return weekly
}

func withDisplayDefaults(entry entity.ScheduleEntry) entity.ScheduleEntry {
	if entry.BuildingDescription == "" {
		entry.BuildingDescription = codec.BuildingDisplayName(entry.BuildingCode)
	}
	if entry.FloorDescription == "" {
		entry.FloorDescription = codec.FormatFloor(entry.Floor)
	}
	for _, field := range []*string{
		&entry.Doctor,
		&entry.Specialty,
		&entry.TimeRange,
		&entry.TypeLabel,
		&entry.RoomDescription,
		&entry.BuildingDescription,
		&entry.FloorDescription,
	} {
		if strings.TrimSpace(*field) == "" {
			*field = NotSpecified
		}
	}
	return entry
}

// GetAgendaBoard lists every provider's appointments, optionally narrowed to one
// building and floor. Blank filters match everything.
func (u *scheduleUsecase) GetAgendaBoard(ctx context.Context, buildingCode, floorCode string) *entity.ScheduleResult {
	buildingCode = strings.TrimSpace(buildingCode)
	floorCode = strings.TrimSpace(floorCode)

	c := u.fetchCatalogs(ctx, func() entity.FetchResult[[]entity.Agenda] {
		return u.repo.FindAgendas(ctx)
	})
	idx := buildIndex(c)

	entries := make([]entity.ScheduleEntry, 0)
	for _, a := range c.agendas.Data {
		entry := idx.enrich(a)
		if buildingCode != "" && entry.BuildingCode != buildingCode {
			continue
		}
		if floorCode != "" && entry.Floor != floorCode {
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := boardDayRank(entries[i].DayName), boardDayRank(entries[j].DayName)
		if di != dj {
			return di < dj
		}
		return entries[i].StartHHmm < entries[j].StartHHmm
	})

	result := &entity.ScheduleResult{
		Data:    entries,
		Success: c.success(),
		Message: c.message(),
	}
	if !result.Success {
		u.log.Warnf("Failed to load agenda board: %s", result.Message)
	}
	return result
}

// boardDayRank orders canonical days Monday first; unknown days go last.
func boardDayRank(name string) int {
	if i := codec.DayIndex(name); i >= 0 {
		return i
	}
	return len(codec.WeekDays)
}
