package cataloging

import (
	"context"
	"errors"

	"github.com/growthdesk/growthdesk-api/infrastructure/repository"
	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/growthdesk/growthdesk-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrProductNameEmpty  = errors.New("product name is required")
	ErrProductNotFound   = errors.New("product not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrActivationMissing = errors.New("activation not found")
)

// CatalogingService gerencia o catálogo de produtos do tenant e as ativações
// por cliente. A receita mensal recorrente do tenant deriva das ativações
// ativas, por isso toda escrita aqui afeta a próxima agregação.
type CatalogingService interface {
	ListProducts(ctx context.Context, tenantID string) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, tenantID string, request *domain.CreateProductRequest) (*domain.Product, error)
	ListClientProducts(ctx context.Context, tenantID, clientID string) ([]*domain.ClientProduct, error)
	ActivateProduct(ctx context.Context, tenantID, clientID string, request *domain.ActivateProductRequest) (*domain.ClientProduct, error)
	DeactivateProduct(ctx context.Context, tenantID, clientID, productID string) error
}

type Service struct {
	productRepository       repository.ProductRepository
	clientRepository        repository.ClientRepository
	clientProductRepository repository.ClientProductRepository
}

func NewService(
	productRepository repository.ProductRepository,
	clientRepository repository.ClientRepository,
	clientProductRepository repository.ClientProductRepository,
) CatalogingService {
	return &Service{
		productRepository:       productRepository,
		clientRepository:        clientRepository,
		clientProductRepository: clientProductRepository,
	}
}

func (s *Service) ListProducts(ctx context.Context, tenantID string) ([]*domain.Product, error) {
	return s.productRepository.ListByTenant(ctx, tenantID)
}

func (s *Service) CreateProduct(ctx context.Context, tenantID string, request *domain.CreateProductRequest) (*domain.Product, error) {
	if request == nil || request.Name == "" {
		return nil, ErrProductNameEmpty
	}

	productID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:             productID,
		TenantID:       tenantID,
		Name:           request.Name,
		Description:    request.Description,
		SuggestedPrice: request.SuggestedPrice,
		Active:         true,
	}

	if err := s.productRepository.Create(ctx, product); err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Error("Erro ao criar produto")
		return nil, err
	}

	return product, nil
}

func (s *Service) ListClientProducts(ctx context.Context, tenantID, clientID string) ([]*domain.ClientProduct, error) {
	// Valida que o cliente pertence ao tenant antes de expor as ativações
	client, err := s.clientRepository.GetByID(ctx, tenantID, clientID)
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, ErrClientNotFound
	}

	return s.clientProductRepository.ListByClient(ctx, clientID)
}

func (s *Service) ActivateProduct(ctx context.Context, tenantID, clientID string, request *domain.ActivateProductRequest) (*domain.ClientProduct, error) {
	client, err := s.clientRepository.GetByID(ctx, tenantID, clientID)
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, ErrClientNotFound
	}

	product, err := s.productRepository.GetByID(ctx, tenantID, request.ProductID)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, ErrProductNotFound
	}

	activationID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	activation := &domain.ClientProduct{
		ID:        activationID,
		ClientID:  clientID,
		ProductID: request.ProductID,
		IsActive:  true,
		Price:     request.Price,
	}

	if err := s.clientProductRepository.Activate(ctx, activation); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"tenant_id":  tenantID,
			"client_id":  clientID,
			"product_id": request.ProductID,
		}).Error("Erro ao ativar produto para cliente")
		return nil, err
	}

	return activation, nil
}

func (s *Service) DeactivateProduct(ctx context.Context, tenantID, clientID, productID string) error {
	client, err := s.clientRepository.GetByID(ctx, tenantID, clientID)
	if err != nil {
		return err
	}

	if client == nil {
		return ErrClientNotFound
	}

	if err := s.clientProductRepository.Deactivate(ctx, clientID, productID); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"tenant_id":  tenantID,
			"client_id":  clientID,
			"product_id": productID,
		}).Error("Erro ao desativar produto para cliente")
		return ErrActivationMissing
	}

	return nil
}
