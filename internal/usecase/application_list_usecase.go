package usecase

import (
	"context"

	"campushire/internal/domain/actor"
	"campushire/internal/domain/application"
	"campushire/internal/domain/listing"
	"campushire/internal/repository"
)

type ApplicationListResult struct {
	Page          listing.Page[application.Application]
	ActiveFilters int
}

type ApplicationListUsecase interface {
	ListApplications(ctx context.Context, by actor.Actor, raw map[string]string) (ApplicationListResult, error)
}

type ApplicationList struct {
	applications repository.ApplicationRepository
}

func NewApplicationListUsecase(applications repository.ApplicationRepository) *ApplicationList {
	return &ApplicationList{applications: applications}
}

// ListApplications serves both review screens: a company actor sees its
// inbox, a student actor sees their own submissions. The status dropdown
// may send the legacy "REVIEWED" label, normalized before the engine
// runs.
func (u *ApplicationList) ListApplications(ctx context.Context, by actor.Actor, raw map[string]string) (ApplicationListResult, error) {
	var items []application.Application
	var err error

	switch by.Role {
	case actor.RoleCompany:
		items, err = u.applications.ListByCompany(ctx, by.ID)
	case actor.RoleStudent:
		items, err = u.applications.ListByStudent(ctx, by.ID)
	default:
		return ApplicationListResult{}, ErrForbidden
	}
	if err != nil {
		return ApplicationListResult{}, ErrInternal
	}

	if s, ok := raw["status"]; ok {
		if st, err := application.ParseStatus(s); err == nil {
			raw = cloneRaw(raw)
			raw["status"] = string(st)
		}
	}

	schema := application.ListingSchema()
	spec := listing.Normalize(schema, raw)

	page, err := listing.Query(items, schema, spec)
	if err != nil {
		return ApplicationListResult{}, err
	}
	return ApplicationListResult{Page: page, ActiveFilters: spec.ActiveFilterCount()}, nil
}

func cloneRaw(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	return out
}
