package usecases

import (
	"context"
	"fmt"

	"github.com/gearguard/gearguard/internal/application/maintenance/dto"
	"github.com/gearguard/gearguard/internal/domain/maintenance"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

type GetRequestUseCase struct {
	repo     maintenance.Repository
	resolver *RequestResolver
	logger   logger.Interface
}

func NewGetRequestUseCase(repo maintenance.Repository, resolver *RequestResolver, logger logger.Interface) *GetRequestUseCase {
	return &GetRequestUseCase{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, id uint) (*dto.RequestDTO, error) {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get request", "request_id", id, "error", err)
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	if req == nil {
		return nil, errors.NewNotFoundError("request not found", fmt.Sprintf("id: %d", id))
	}
	return uc.resolver.Resolve(ctx, req), nil
}
