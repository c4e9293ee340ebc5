package onboarding

import (
	"context"
	"errors"

	"github.com/growthdesk/growthdesk-api/infrastructure/repository"
	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var ErrTenantNotFound = errors.New("tenant not found")

// OnboardingService atualiza o perfil de onboarding do tenant autenticado
type OnboardingService interface {
	GetProfile(ctx context.Context, tenantID string) (*domain.Tenant, error)
	UpdateProfile(ctx context.Context, tenantID string, request *domain.UpdateOnboardingRequest) (*domain.Tenant, error)
}

type Service struct {
	tenantRepository repository.TenantRepository
}

func NewService(tenantRepository repository.TenantRepository) OnboardingService {
	return &Service{
		tenantRepository: tenantRepository,
	}
}

func (s *Service) GetProfile(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepository.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if tenant == nil {
		return nil, ErrTenantNotFound
	}

	return tenant, nil
}

func (s *Service) UpdateProfile(ctx context.Context, tenantID string, request *domain.UpdateOnboardingRequest) (*domain.Tenant, error) {
	if _, err := s.GetProfile(ctx, tenantID); err != nil {
		return nil, err
	}

	if err := s.tenantRepository.UpdateOnboarding(ctx, tenantID, request); err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Error("Erro ao atualizar onboarding do tenant")
		return nil, err
	}

	return s.GetProfile(ctx, tenantID)
}
