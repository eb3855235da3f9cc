package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"hospital-directory/internal/domain/entity"
	"hospital-directory/internal/domain/repository"
	"hospital-directory/pkg/codec"

	"github.com/sirupsen/logrus"
)

type LocationUsecase interface {
	ListBuildings(ctx context.Context) ([]entity.Building, error)
	ListFloors(ctx context.Context, buildingCode string) ([]entity.Floor, error)
}

type locationUsecase struct {
	log  *logrus.Logger
	repo repository.CatalogRepository
}

func NewLocationUsecase(log *logrus.Logger, repo repository.CatalogRepository) LocationUsecase {
	return &locationUsecase{
		log:  log,
		repo: repo,
	}
}

func (u *locationUsecase) ListBuildings(ctx context.Context) ([]entity.Building, error) {
	res := u.repo.FindBuildings(ctx)
	if !res.Success {
		u.log.Warnf("Failed to fetch buildings: %s", res.Message)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, res.Message)
	}

	buildings := make([]entity.Building, 0, len(res.Data))
	for _, b := range res.Data {
		buildings = append(buildings, entity.Building{Code: b.Code, Description: buildingName(b)})
	}
	return buildings, nil
}

// buildingName applies the fixed names of the main buildings, then the
// catalog description, then the raw code.
func buildingName(b entity.Building) string {
	if name := codec.BuildingDisplayName(b.Code); name != b.Code {
		return name
	}
	if strings.TrimSpace(b.Description) != "" {
		return b.Description
	}
	return b.Code
}

// ListFloors reads the floors endpoint and falls back to the floors the room
// catalog places in the building.
func (u *locationUsecase) ListFloors(ctx context.Context, buildingCode string) ([]entity.Floor, error) {
	buildingCode = strings.TrimSpace(buildingCode)

	res := u.repo.FindFloorsByBuilding(ctx, buildingCode)
	if res.Success && len(res.Data) > 0 {
		return withFloorLabels(res.Data), nil
	}
	if !res.Success {
		u.log.Warnf("Failed to fetch floors for building %s, deriving from rooms: %s", buildingCode, res.Message)
	}

	rooms := u.repo.FindRooms(ctx)
	if !rooms.Success {
		if !res.Success {
			return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, res.Message)
		}
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, rooms.Message)
	}

	seen := make(map[string]bool)
	floors := make([]entity.Floor, 0)
	for _, room := range rooms.Data {
		if room.BuildingCode != buildingCode || room.FloorCode == "" || seen[room.FloorCode] {
			continue
		}
		seen[room.FloorCode] = true
		floors = append(floors, entity.Floor{Code: room.FloorCode, Description: room.FloorDescription})
	}
	sort.SliceStable(floors, func(i, j int) bool {
		return floorLess(floors[i].Code, floors[j].Code)
	})
	return withFloorLabels(floors), nil
}

func withFloorLabels(floors []entity.Floor) []entity.Floor {
	out := make([]entity.Floor, len(floors))
	for i, f := range floors {
		if f.Description == "" || f.Description == f.Code {
			f.Description = codec.FormatFloor(f.Code)
		}
		out[i] = f
	}
	return out
}

func floorLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	if (errA == nil) != (errB == nil) {
		return errA == nil
	}
	return a < b
}
