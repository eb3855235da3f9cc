package usecase

import (
	"context"
	"fmt"
	"strings"

	"hospital-directory/internal/domain/entity"
	"hospital-directory/internal/domain/repository"
	"hospital-directory/pkg/textsearch"

	"github.com/sirupsen/logrus"
)

type SpecialtyUsecase interface {
	ListSpecialties(ctx context.Context, query string) ([]entity.Specialty, error)
	GetSpecialty(ctx context.Context, id string) (*entity.Specialty, error)
}

type specialtyUsecase struct {
	log  *logrus.Logger
	repo repository.CatalogRepository
}

func NewSpecialtyUsecase(log *logrus.Logger, repo repository.CatalogRepository) SpecialtyUsecase {
	return &specialtyUsecase{
		log:  log,
		repo: repo,
	}
}

func (u *specialtyUsecase) ListSpecialties(ctx context.Context, query string) ([]entity.Specialty, error) {
	res := u.repo.FindSpecialties(ctx)
	if !res.Success {
		u.log.Warnf("Failed to fetch specialties: %s", res.Message)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, res.Message)
	}

	query = strings.TrimSpace(query)
	specialties := make([]entity.Specialty, 0, len(res.Data))
	for _, s := range res.Data {
		if strings.TrimSpace(s.Description) == "" {
			continue
		}
		if query != "" && !textsearch.Contains(s.Description, query) {
			continue
		}
		specialties = append(specialties, s)
	}

	textsearch.SortStrings(specialties, func(s entity.Specialty) string { return s.Description })
	return specialties, nil
}

// GetSpecialty resolves an id or a name slug. It never fails: when nothing
// describes the id, a generic label is returned.
func (u *specialtyUsecase) GetSpecialty(ctx context.Context, id string) (*entity.Specialty, error) {
	id = strings.TrimSpace(id)

	res := u.repo.FindSpecialtyByID(ctx, id)
	if res.Success && res.Data != nil && strings.TrimSpace(res.Data.Description) != "" {
		return res.Data, nil
	}

	if all := u.repo.FindSpecialties(ctx); all.Success {
		for i := range all.Data {
			s := &all.Data[i]
			if strings.TrimSpace(s.Description) == "" {
				continue
			}
			if s.ID == id || textsearch.Slugify(s.Description) == id {
				return s, nil
			}
		}
	}

	return &entity.Specialty{ID: id, Description: "Especialidad " + id}, nil
}
