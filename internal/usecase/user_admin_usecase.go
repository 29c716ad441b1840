package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
)

var (
	ErrInvalidRoleName   = errors.New("invalid role name")
	ErrRoleAlreadyExists = errors.New("role already exists")
	ErrRoleNotFound      = errors.New("role not found")
	ErrSelfLockout       = errors.New("cannot remove own super access")
)

// IUserAdminUseCase is the super-user management surface.
type IUserAdminUseCase interface {
	CreateRole(ctx context.Context, actorID string, role entities.Role) (entities.Role, error)
	ListRoles(ctx context.Context) ([]entities.Role, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	GrantRole(ctx context.Context, actorID, email, roleName string) (entities.User, error)
	RevokeRole(ctx context.Context, actorID, email, roleName string) (entities.User, error)
	SetActive(ctx context.Context, actorID, email string, active bool) (entities.User, error)
}

type UserAdminUseCase struct {
	users interfaces.IUserRepository
	roles interfaces.IRoleRepository
	audit interfaces.IAuditLogRepository
}

var _ IUserAdminUseCase = (*UserAdminUseCase)(nil)

func NewUserAdminUseCase(users interfaces.IUserRepository, roles interfaces.IRoleRepository, audit interfaces.IAuditLogRepository) *UserAdminUseCase {
	return &UserAdminUseCase{users: users, roles: roles, audit: audit}
}

func normalizeRoleName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (u *UserAdminUseCase) CreateRole(ctx context.Context, actorID string, role entities.Role) (entities.Role, error) {
	role.Name = normalizeRoleName(role.Name)
	if role.Name == "" {
		return entities.Role{}, ErrInvalidRoleName
	}
	existing, err := u.roles.GetByName(ctx, role.Name)
	if err != nil {
		return entities.Role{}, err
	}
	if existing.Name != "" {
		return entities.Role{}, ErrRoleAlreadyExists
	}
	role.CreatedAt = time.Now().UTC()

	created, err := u.roles.Create(ctx, role)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.Role{}, ErrRoleAlreadyExists
		}
		return entities.Role{}, err
	}
	recordAudit(ctx, u.audit, actorID, entities.AuditRoleCreate, fmt.Sprintf("role=%s super=%t admin=%t review=%t",
		created.Name, created.IsSuper, created.CanAccessAdmin, created.CanReviewPayments))
	return created, nil
}

func (u *UserAdminUseCase) ListRoles(ctx context.Context) ([]entities.Role, error) {
	roles, err := u.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}

func (u *UserAdminUseCase) ListUsers(ctx context.Context) ([]entities.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (u *UserAdminUseCase) GrantRole(ctx context.Context, actorID, email, roleName string) (entities.User, error) {
	user, role, err := u.loadUserAndRole(ctx, email, roleName)
	if err != nil {
		return entities.User{}, err
	}
	if user.HasRole(role.Name) {
		return user, nil
	}
	user.Roles = append(user.Roles, role.Name)

	updated, err := u.users.Update(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	logger.For("useradmin.usecase").WithField("user_id", user.ID).WithField("role", role.Name).Info("role granted")
	recordAudit(ctx, u.audit, actorID, entities.AuditRoleGrant, fmt.Sprintf("email=%s role=%s", user.Email, role.Name))
	return updated, nil
}

func (u *UserAdminUseCase) RevokeRole(ctx context.Context, actorID, email, roleName string) (entities.User, error) {
	user, role, err := u.loadUserAndRole(ctx, email, roleName)
	if err != nil {
		return entities.User{}, err
	}
	if !user.HasRole(role.Name) {
		return user, nil
	}
	if role.IsSuper && user.ID == actorID {
		return entities.User{}, ErrSelfLockout
	}

	kept := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		if r != role.Name {
			kept = append(kept, r)
		}
	}
	user.Roles = kept

	updated, err := u.users.Update(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	logger.For("useradmin.usecase").WithField("user_id", user.ID).WithField("role", role.Name).Info("role revoked")
	recordAudit(ctx, u.audit, actorID, entities.AuditRoleRevoke, fmt.Sprintf("email=%s role=%s", user.Email, role.Name))
	return updated, nil
}

func (u *UserAdminUseCase) SetActive(ctx context.Context, actorID, email string, active bool) (entities.User, error) {
	user, err := u.loadUser(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if !active && user.ID == actorID {
		return entities.User{}, ErrSelfLockout
	}
	if user.IsActive == active {
		return user, nil
	}
	user.IsActive = active

	updated, err := u.users.Update(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	recordAudit(ctx, u.audit, actorID, entities.AuditUserActive, fmt.Sprintf("email=%s active=%t", user.Email, active))
	return updated, nil
}

func (u *UserAdminUseCase) loadUser(ctx context.Context, email string) (entities.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return entities.User{}, ErrUserNotFound
	}
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserAdminUseCase) loadUserAndRole(ctx context.Context, email, roleName string) (entities.User, entities.Role, error) {
	user, err := u.loadUser(ctx, email)
	if err != nil {
		return entities.User{}, entities.Role{}, err
	}
	name := normalizeRoleName(roleName)
	if name == "" {
		return entities.User{}, entities.Role{}, ErrInvalidRoleName
	}
	role, err := u.roles.GetByName(ctx, name)
	if err != nil {
		return entities.User{}, entities.Role{}, err
	}
	if role.Name == "" {
		return entities.User{}, entities.Role{}, ErrRoleNotFound
	}
	return user, role, nil
}
