package repository

import (
	"context"

	"hospital-directory/internal/domain/entity"
)

// CatalogRepository reads the hospital catalogs. Every method reports upstream
// failures through FetchResult instead of an error.
type CatalogRepository interface {
	FindAgendas(ctx context.Context) entity.FetchResult[[]entity.Agenda]
	FindAgendasByProvider(ctx context.Context, providerCode string) entity.FetchResult[[]entity.Agenda]
	FindDoctors(ctx context.Context) entity.FetchResult[[]entity.Doctor]
	FindDoctorByID(ctx context.Context, id string) entity.FetchResult[*entity.Doctor]
	FindDoctorsBySpecialty(ctx context.Context, specialtyID string) entity.FetchResult[[]entity.Doctor]
	FindRooms(ctx context.Context) entity.FetchResult[[]entity.Room]
	FindBuildings(ctx context.Context) entity.FetchResult[[]entity.Building]
	FindFloorsByBuilding(ctx context.Context, buildingCode string) entity.FetchResult[[]entity.Floor]
	FindDays(ctx context.Context) entity.FetchResult[[]entity.Day]
	FindSpecialties(ctx context.Context) entity.FetchResult[[]entity.Specialty]
	FindSpecialtyByID(ctx context.Context, id string) entity.FetchResult[*entity.Specialty]
}
