package converter

import (
	"hospital-directory/internal/delivery/dto"
	"hospital-directory/internal/domain/entity"
	"hospital-directory/pkg/textsearch"
)

func SpecialtyToResponse(s *entity.Specialty) *dto.SpecialtyResponse {
	return &dto.SpecialtyResponse{
		ID:          s.ID,
		Description: s.Description,
		Slug:        textsearch.Slugify(s.Description),
		Type:        s.Type,
		Icon:        s.Icon,
	}
}

func SpecialtiesToResponse(specialties []entity.Specialty) []dto.SpecialtyResponse {
	out := make([]dto.SpecialtyResponse, len(specialties))
	for i := range specialties {
		out[i] = *SpecialtyToResponse(&specialties[i])
	}
	return out
}

func DoctorToResponse(d *entity.Doctor) *dto.DoctorResponse {
	resp := &dto.DoctorResponse{
		ID:             d.ID,
		Name:           d.Name,
		SpecialtyLabel: d.PrimarySpecialty(),
		PhotoURL:       d.PhotoURL,
	}
	if len(d.Specialties) > 0 {
		resp.SpecialtyID = d.Specialties[0].ID
	}
	return resp
}

func DoctorsToResponse(doctors []entity.Doctor) []dto.DoctorResponse {
	out := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		out[i] = *DoctorToResponse(&doctors[i])
	}
	return out
}

func BuildingsToResponse(buildings []entity.Building) []dto.BuildingResponse {
	out := make([]dto.BuildingResponse, len(buildings))
	for i, b := range buildings {
		out[i] = dto.BuildingResponse{Code: b.Code, Description: b.Description}
	}
	return out
}

func FloorsToResponse(floors []entity.Floor) []dto.FloorResponse {
	out := make([]dto.FloorResponse, len(floors))
	for i, f := range floors {
		out[i] = dto.FloorResponse{Code: f.Code, Description: f.Description}
	}
	return out
}
