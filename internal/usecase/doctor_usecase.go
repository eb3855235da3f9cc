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

// MaxLetterSample caps the browse list shown before the user types anything.
const MaxLetterSample = 24

const alphabet = "abcdefghijklmnopqrstuvwxyz"

type DoctorUsecase interface {
	SearchDoctors(ctx context.Context, query string) ([]entity.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*entity.Doctor, error)
	GetDoctorsBySpecialty(ctx context.Context, specialtyID string) ([]entity.Doctor, error)
}

type doctorUsecase struct {
	log  *logrus.Logger
	repo repository.CatalogRepository
}

func NewDoctorUsecase(log *logrus.Logger, repo repository.CatalogRepository) DoctorUsecase {
	return &doctorUsecase{
		log:  log,
		repo: repo,
	}
}

// SearchDoctors matches names ignoring case and accents. A blank query returns
// one doctor per initial letter instead.
func (u *doctorUsecase) SearchDoctors(ctx context.Context, query string) ([]entity.Doctor, error) {
	res := u.repo.FindDoctors(ctx)
	if !res.Success {
		u.log.Warnf("Failed to fetch doctors: %s", res.Message)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, res.Message)
	}

	doctors := make([]entity.Doctor, 0, len(res.Data))
	for _, d := range res.Data {
		if strings.TrimSpace(d.Name) != "" {
			doctors = append(doctors, d)
		}
	}
	textsearch.SortStrings(doctors, func(d entity.Doctor) string { return d.Name })

	query = strings.TrimSpace(query)
	if query == "" {
		return sampleByLetter(doctors), nil
	}

	matches := make([]entity.Doctor, 0)
	for _, d := range doctors {
		if textsearch.Contains(d.Name, query) {
			matches = append(matches, d)
		}
	}
	return matches, nil
}

// sampleByLetter expects doctors sorted by name.
func sampleByLetter(doctors []entity.Doctor) []entity.Doctor {
	sample := make([]entity.Doctor, 0, MaxLetterSample)
	for _, letter := range alphabet {
		for _, d := range doctors {
			if strings.HasPrefix(textsearch.Fold(d.Name), string(letter)) {
				sample = append(sample, d)
				break
			}
		}
		if len(sample) == MaxLetterSample {
			break
		}
	}
	return sample
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id string) (*entity.Doctor, error) {
	id = strings.TrimSpace(id)

	res := u.repo.FindDoctorByID(ctx, id)
	if res.Success && res.Data != nil {
		return res.Data, nil
	}
	if !res.Success {
		u.log.Warnf("Failed to fetch doctor %s, searching the full list: %s", id, res.Message)
	}

	// Some deployments do not expose the by-id endpoint; any alias in the list counts.
	all := u.repo.FindDoctors(ctx)
	if !all.Success {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, all.Message)
	}
	for i := range all.Data {
		for _, alias := range all.Data[i].IDs {
			if alias == id {
				return &all.Data[i], nil
			}
		}
	}
	return nil, ErrDoctorNotFound
}

func (u *doctorUsecase) GetDoctorsBySpecialty(ctx context.Context, specialtyID string) ([]entity.Doctor, error) {
	specialtyID = strings.TrimSpace(specialtyID)

	var doctors []entity.Doctor
	res := u.repo.FindDoctorsBySpecialty(ctx, specialtyID)
	if res.Success {
		doctors = res.Data
	} else {
		u.log.Warnf("Failed to fetch doctors for specialty %s, filtering the full list: %s", specialtyID, res.Message)

		all := u.repo.FindDoctors(ctx)
		if !all.Success {
			return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, all.Message)
		}
		doctors = make([]entity.Doctor, 0)
		for _, d := range all.Data {
			if d.HasSpecialty(specialtyID) {
				doctors = append(doctors, d)
			}
		}
	}

	textsearch.SortStrings(doctors, func(d entity.Doctor) string { return d.Name })
	return doctors, nil
}
