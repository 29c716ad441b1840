package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 500
)

var ErrInvalidAuditAction = errors.New("invalid audit action")

type IAuditUseCase interface {
	Record(ctx context.Context, actorUserID, action, details string) (entities.AuditLog, error)
	List(ctx context.Context, limit int) ([]entities.AuditLog, error)
}

type AuditUseCase struct {
	repo interfaces.IAuditLogRepository
}

var _ IAuditUseCase = (*AuditUseCase)(nil)

func NewAuditUseCase(repo interfaces.IAuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

func (u *AuditUseCase) Record(ctx context.Context, actorUserID, action, details string) (entities.AuditLog, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return entities.AuditLog{}, ErrInvalidAuditAction
	}
	return u.repo.Create(ctx, entities.AuditLog{
		ID:          uuid.NewString(),
		ActorUserID: strings.TrimSpace(actorUserID),
		Action:      action,
		Details:     details,
		CreatedAt:   time.Now().UTC(),
	})
}

// List clamps limit to 1..500, defaulting to 100.
func (u *AuditUseCase) List(ctx context.Context, limit int) ([]entities.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}
	return u.repo.List(ctx, limit)
}

// recordAudit writes an audit entry without failing the calling operation.
func recordAudit(ctx context.Context, repo interfaces.IAuditLogRepository, actorUserID, action, details string) {
	if repo == nil {
		return
	}
	if _, err := NewAuditUseCase(repo).Record(ctx, actorUserID, action, details); err != nil {
		logger.For("audit.usecase").WithError(err).WithField("action", action).Warn("audit log not recorded")
	}
}
