package service

import (
	"webclass/internal/logger"
	"webclass/internal/store"
)

// Services aggregates every application service injected into the handler
// layer.
type Services struct {
	AuthService AuthService
}

// NewServices wires all services over the given storages.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.Identities, logger),
	}
}
