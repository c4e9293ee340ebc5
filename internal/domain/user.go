package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Roles emitidos pelo provedor de autenticação hospedado
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Claims são as claims do JWT emitido pelo provedor de autenticação.
// A API nunca emite tokens, apenas valida os do provedor; o escopo de
// tenant vem sempre daqui, nunca do corpo da requisição.
type Claims struct {
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
