package repository

import (
	"context"
	"net/url"
	"time"

	"hospital-directory/internal/converter"
	"hospital-directory/internal/domain/entity"
	domainRepo "hospital-directory/internal/domain/repository"
	"hospital-directory/internal/infrastructure/upstream"

	"github.com/sirupsen/logrus"
)

const (
	pathAgendas            = "/api/agnd-agenda"
	pathDoctors            = "/api/medicos"
	pathDoctorByID         = "/api/medicos/item/"
	pathDoctorsBySpecialty = "/api/medicos/especialidad/"
	pathDoctorSpecialties  = "/api/medicos/especialidades"
	pathRooms              = "/api/catalogos/consultorios"
	pathBuildings          = "/api/catalogos/edificios"
	pathDays               = "/api/catalogos/dias"
	pathSpecialtiesAgenda  = "/api/especialidades/agenda"
	pathSpecialtyByID      = "/api/especialidades/"
	providerParam          = "codigo_prestador"
	providerParamAlternate = "cd_prestador"
)

// Fetcher is the upstream transport the repository reads through.
type Fetcher interface {
	Get(ctx context.Context, path string, query url.Values) upstream.Result
	GetWithTTL(ctx context.Context, path string, query url.Values, ttl time.Duration) upstream.Result
}

type catalogRepository struct {
	client         Fetcher
	specialtiesTTL time.Duration
	log            *logrus.Logger
}

func NewCatalogRepository(client Fetcher, specialtiesTTL time.Duration, log *logrus.Logger) domainRepo.CatalogRepository {
	return &catalogRepository{
		client:         client,
		specialtiesTTL: specialtiesTTL,
		log:            log,
	}
}

func (r *catalogRepository) FindAgendas(ctx context.Context) entity.FetchResult[[]entity.Agenda] {
	return fetchList(ctx, r.client, pathAgendas, nil, converter.RawToAgendas)
}

// FindAgendasByProvider filters by provider code. Deployments disagree on the
// parameter name, so an empty answer is retried with the alternate one.
func (r *catalogRepository) FindAgendasByProvider(ctx context.Context, providerCode string) entity.FetchResult[[]entity.Agenda] {
	primary := fetchList(ctx, r.client, pathAgendas, url.Values{providerParam: {providerCode}}, converter.RawToAgendas)
	if len(primary.Data) > 0 {
		return primary
	}

	r.log.WithFields(logrus.Fields{
		"provider": providerCode,
		"param":    providerParamAlternate,
	}).Debug("Empty agenda list, retrying with alternate filter")

	alternate := fetchList(ctx, r.client, pathAgendas, url.Values{providerParamAlternate: {providerCode}}, converter.RawToAgendas)
	if len(alternate.Data) == 0 && primary.Success {
		// a rejected alternate name must not hide a successful empty answer
		return primary
	}
	return alternate
}

func (r *catalogRepository) FindDoctors(ctx context.Context) entity.FetchResult[[]entity.Doctor] {
	return fetchList(ctx, r.client, pathDoctors, nil, converter.RawToDoctors)
}

func (r *catalogRepository) FindDoctorByID(ctx context.Context, id string) entity.FetchResult[*entity.Doctor] {
	res := r.client.Get(ctx, pathDoctorByID+url.PathEscape(id), nil)
	if !res.Success {
		return entity.Failed[*entity.Doctor](res.Message)
	}
	doctor, ok := converter.RawToDoctor(res.Data)
	if !ok {
		return entity.OK[*entity.Doctor](nil)
	}
	return entity.OK(&doctor)
}

func (r *catalogRepository) FindDoctorsBySpecialty(ctx context.Context, specialtyID string) entity.FetchResult[[]entity.Doctor] {
	return fetchList(ctx, r.client, pathDoctorsBySpecialty+url.PathEscape(specialtyID), nil, converter.RawToDoctors)
}

func (r *catalogRepository) FindRooms(ctx context.Context) entity.FetchResult[[]entity.Room] {
	return fetchList(ctx, r.client, pathRooms, nil, converter.RawToRooms)
}

func (r *catalogRepository) FindBuildings(ctx context.Context) entity.FetchResult[[]entity.Building] {
	return fetchList(ctx, r.client, pathBuildings, nil, converter.RawToBuildings)
}

func (r *catalogRepository) FindFloorsByBuilding(ctx context.Context, buildingCode string) entity.FetchResult[[]entity.Floor] {
	return fetchList(ctx, r.client, pathBuildings+"/"+url.PathEscape(buildingCode)+"/pisos", nil, converter.RawToFloors)
}

func (r *catalogRepository) FindDays(ctx context.Context) entity.FetchResult[[]entity.Day] {
	return fetchList(ctx, r.client, pathDays, nil, converter.RawToDays)
}

// FindSpecialties reads the agenda specialty catalog, falling back to the
// plain list of doctor specialties when it is unavailable or empty.
func (r *catalogRepository) FindSpecialties(ctx context.Context) entity.FetchResult[[]entity.Specialty] {
	res := r.client.GetWithTTL(ctx, pathSpecialtiesAgenda, nil, r.specialtiesTTL)
	if res.Success {
		if specialties := converter.RawToSpecialties(res.Data); len(specialties) > 0 {
			return entity.OK(specialties)
		}
	}

	fallback := r.client.GetWithTTL(ctx, pathDoctorSpecialties, nil, r.specialtiesTTL)
	if !fallback.Success {
		if !res.Success {
			return entity.Failed[[]entity.Specialty](res.Message)
		}
		return entity.Failed[[]entity.Specialty](fallback.Message)
	}
	return entity.OK(converter.RawToSpecialties(fallback.Data))
}

func (r *catalogRepository) FindSpecialtyByID(ctx context.Context, id string) entity.FetchResult[*entity.Specialty] {
	res := r.client.GetWithTTL(ctx, pathSpecialtyByID+url.PathEscape(id), nil, r.specialtiesTTL)
	if !res.Success {
		return entity.Failed[*entity.Specialty](res.Message)
	}
	specialty, ok := converter.RawToSpecialty(res.Data)
	if !ok {
		return entity.OK[*entity.Specialty](nil)
	}
	return entity.OK(&specialty)
}

func fetchList[T any](ctx context.Context, client Fetcher, path string, query url.Values, convert func(raw any) []T) entity.FetchResult[[]T] {
	res := client.Get(ctx, path, query)
	if !res.Success {
		return entity.FetchResult[[]T]{Data: []T{}, Message: res.Message}
	}
	items := convert(res.Data)
	if items == nil {
		items = []T{}
	}
	return entity.OK(items)
}
