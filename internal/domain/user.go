package domain

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

type UserRole string

const (
	UserRoleAgency UserRole = "agency"
	UserRoleClient UserRole = "client"
)

// Claims é emitido pela camada de sessão; aqui apenas validamos
type Claims struct {
	UserID    string   `json:"user_id"`
	UserEmail string   `json:"user_email"`
	Role      UserRole `json:"role"`
	ClientIDs []string `json:"client_ids"`
	jwt.RegisteredClaims
}

// CanAccessClient indica se o usuário pode operar sobre contas do cliente informado.
// Usuários da agência enxergam todos os clientes.
func (c *Claims) CanAccessClient(clientID string) bool {
	if c == nil {
		return false
	}

	if c.Role == UserRoleAgency {
		return true
	}

	return slices.Contains(c.ClientIDs, clientID)
}
