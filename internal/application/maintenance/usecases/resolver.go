package usecases

import (
	"context"

	"github.com/gearguard/gearguard/internal/application/maintenance/dto"
	"github.com/gearguard/gearguard/internal/domain/equipment"
	"github.com/gearguard/gearguard/internal/domain/maintenance"
	"github.com/gearguard/gearguard/internal/domain/team"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// RequestResolver turns requests into board views, loading every referenced
// equipment, user and team in one batch per kind.
type RequestResolver struct {
	equipmentRepo equipment.Repository
	userRepo      user.Repository
	teamRepo      team.Repository
	logger        logger.Interface
}

func NewRequestResolver(
	equipmentRepo equipment.Repository,
	userRepo user.Repository,
	teamRepo team.Repository,
	logger logger.Interface,
) *RequestResolver {
	return &RequestResolver{
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		teamRepo:      teamRepo,
		logger:        logger,
	}
}

func (r *RequestResolver) Resolve(ctx context.Context, req *maintenance.Request) *dto.RequestDTO {
	return r.ResolveAll(ctx, []*maintenance.Request{req})[0]
}

// ResolveAll keeps the input order. A failed lookup is logged and leaves the
// affected display fields empty.
func (r *RequestResolver) ResolveAll(ctx context.Context, reqs []*maintenance.Request) []*dto.RequestDTO {
	if len(reqs) == 0 {
		return []*dto.RequestDTO{}
	}

	var equipmentIDs, userIDs, teamIDs []uint
	for _, req := range reqs {
		equipmentIDs = append(equipmentIDs, req.EquipmentID())
		userIDs = append(userIDs, req.RequesterID())
		if id := req.AssignedToID(); id != nil {
			userIDs = append(userIDs, *id)
		}
		if id := req.AssignedTeamID(); id != nil {
			teamIDs = append(teamIDs, *id)
		}
	}

	equipmentByID, err := r.equipmentRepo.GetByIDs(ctx, unique(equipmentIDs))
	if err != nil {
		r.logger.Warnw("failed to resolve equipment for requests", "error", err)
	}
	usersByID, err := r.userRepo.GetByIDs(ctx, unique(userIDs))
	if err != nil {
		r.logger.Warnw("failed to resolve users for requests", "error", err)
	}
	var teamsByID map[uint]*team.Team
	if len(teamIDs) > 0 {
		teamsByID, err = r.teamRepo.GetByIDs(ctx, unique(teamIDs))
		if err != nil {
			r.logger.Warnw("failed to resolve teams for requests", "error", err)
		}
	}

	result := make([]*dto.RequestDTO, 0, len(reqs))
	for _, req := range reqs {
		d := dto.FromRequest(req)
		if e := equipmentByID[req.EquipmentID()]; e != nil {
			d.EquipmentName = e.Name()
			d.EquipmentLocation = e.Location()
			d.EquipmentCategory = e.Category()
		}
		if u := usersByID[req.RequesterID()]; u != nil {
			d.RequesterName = u.FullName()
		}
		if id := req.AssignedToID(); id != nil {
			if u := usersByID[*id]; u != nil {
				d.AssignedToName = u.FullName()
			}
		}
		if id := req.AssignedTeamID(); id != nil {
			if t := teamsByID[*id]; t != nil {
				d.AssignedTeamName = t.Name()
				d.AssignedTeamColor = t.Color()
			}
		}
		result = append(result, d)
	}
	return result
}

func unique(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
