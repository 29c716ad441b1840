package interfaces

import (
	"context"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
)

type IAuditLogRepository interface {
	Create(ctx context.Context, l entities.AuditLog) (entities.AuditLog, error)
	// List returns at most limit entries, newest first.
	List(ctx context.Context, limit int) ([]entities.AuditLog, error)
}
