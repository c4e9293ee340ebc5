package clienting

import (
	"context"

	"github.com/growthdesk/growthdesk-api/infrastructure/repository"
	"github.com/growthdesk/growthdesk-api/internal/domain"
	"github.com/growthdesk/growthdesk-api/pkg/apiErrors"
	"github.com/growthdesk/growthdesk-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ClientingService gerencia o cadastro de clientes de cada tenant. Todo
// escopo de tenant vem do token autenticado, nunca do corpo da requisição.
type ClientingService interface {
	GetClient(ctx context.Context, tenantID, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, tenantID string) ([]*domain.Client, error)
	CreateClient(ctx context.Context, tenantID string, request *domain.CreateClientRequest) (*domain.Client, error)
	UpdateClient(ctx context.Context, tenantID string, request *domain.UpdateClientRequest) error
	DeleteClient(ctx context.Context, tenantID, clientID string) error
}

type Service struct {
	clientRepository repository.ClientRepository
}

func NewService(clientRepository repository.ClientRepository) ClientingService {
	return &Service{
		clientRepository: clientRepository,
	}
}

func (s *Service) GetClient(ctx context.Context, tenantID, clientID string) (*domain.Client, error) {
	if clientID == "" {
		return nil, NewClientError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "ID do cliente não informado")
	}

	client, err := s.clientRepository.GetByID(ctx, tenantID, clientID)
	if err != nil {
		return nil, NewClientErrorWithID(ErrFetchClients, apiErrors.ErrDatabaseOperation, clientID, "Falha ao buscar cliente no banco de dados")
	}

	if client == nil {
		return nil, NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrNotFound, clientID, "Cliente não encontrado para o tenant")
	}

	return client, nil
}

func (s *Service) ListClients(ctx context.Context, tenantID string) ([]*domain.Client, error) {
	clients, err := s.clientRepository.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, NewClientError(ErrFetchClients, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes no banco de dados")
	}

	return clients, nil
}

func (s *Service) CreateClient(ctx context.Context, tenantID string, request *domain.CreateClientRequest) (*domain.Client, error) {
	if request == nil || request.Name == "" {
		return nil, NewClientError(ErrClientNameEmpty, apiErrors.ErrMissingRequiredData, "Nome do cliente não informado")
	}

	clientID, err := utils.GenerateID()
	if err != nil {
		return nil, NewClientError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para cliente")
	}

	client := &domain.Client{
		ID:       clientID,
		TenantID: tenantID,
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Status:   domain.ClientStatusActive,
	}

	if err := s.clientRepository.Create(ctx, client); err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).Error("Erro ao criar cliente")
		return nil, NewClientError(ErrCreateClient, apiErrors.ErrDatabaseOperation, "Falha ao criar cliente no banco de dados")
	}

	return client, nil
}

func (s *Service) UpdateClient(ctx context.Context, tenantID string, request *domain.UpdateClientRequest) error {
	if request == nil || request.ID == "" {
		return NewClientError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "ID do cliente não informado")
	}

	existing, err := s.clientRepository.GetByID(ctx, tenantID, request.ID)
	if err != nil {
		return NewClientErrorWithID(ErrFetchClients, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao buscar cliente no banco de dados")
	}

	if existing == nil {
		return NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrNotFound, request.ID, "Cliente não encontrado para o tenant")
	}

	if err := s.clientRepository.Update(ctx, tenantID, request); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"client_id": request.ID,
		}).Error("Erro ao atualizar cliente")
		return NewClientErrorWithID(ErrUpdateClient, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar cliente no banco de dados")
	}

	return nil
}

func (s *Service) DeleteClient(ctx context.Context, tenantID, clientID string) error {
	if clientID == "" {
		return NewClientError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, "ID do cliente não informado")
	}

	existing, err := s.clientRepository.GetByID(ctx, tenantID, clientID)
	if err != nil {
		return NewClientErrorWithID(ErrFetchClients, apiErrors.ErrDatabaseOperation, clientID, "Falha ao buscar cliente no banco de dados")
	}

	if existing == nil {
		return NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrNotFound, clientID, "Cliente não encontrado para o tenant")
	}

	if err := s.clientRepository.Delete(ctx, tenantID, clientID); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"client_id": clientID,
		}).Error("Erro ao remover cliente")
		return NewClientErrorWithID(ErrDeleteClient, apiErrors.ErrDatabaseOperation, clientID, "Falha ao remover cliente no banco de dados")
	}

	return nil
}
