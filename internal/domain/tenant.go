package domain

import "time"

type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "ACTIVE"
	TenantStatusSuspended TenantStatus = "SUSPENDED"
)

type Tenant struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Status              TenantStatus `json:"status"`
	CompanyName         *string      `json:"company_name"`
	Website             *string      `json:"website"`
	Phone               *string      `json:"phone"`
	OnboardingCompleted bool         `json:"onboarding_completed"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// UpdateOnboardingRequest atualiza o perfil de onboarding do tenant autenticado
type UpdateOnboardingRequest struct {
	CompanyName         *string `json:"company_name,omitempty"`
	Website             *string `json:"website,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	OnboardingCompleted *bool   `json:"onboarding_completed,omitempty"`
}
