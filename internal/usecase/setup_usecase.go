package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
)

// SetupUseCase seeds what a fresh deployment needs before serving traffic.
type SetupUseCase struct {
	users interfaces.IUserRepository
	roles interfaces.IRoleRepository
	auth  *AuthUseCase
	now   func() time.Time
}

func NewSetupUseCase(users interfaces.IUserRepository, roles interfaces.IRoleRepository) *SetupUseCase {
	return &SetupUseCase{users: users, roles: roles, auth: NewAuthUseCase(users, roles), now: time.Now}
}

// SeedRoles creates the missing default roles and returns their names.
func (u *SetupUseCase) SeedRoles(ctx context.Context) ([]string, error) {
	var created []string
	for _, role := range entities.DefaultRoles() {
		existing, err := u.roles.GetByName(ctx, role.Name)
		if err != nil {
			return created, err
		}
		if existing.Name != "" {
			continue
		}
		role.CreatedAt = u.now().UTC()
		if _, err := u.roles.Create(ctx, role); err != nil {
			if errors.Is(err, interfaces.ErrConflict) {
				continue
			}
			return created, err
		}
		created = append(created, role.Name)
	}
	return created, nil
}

// EnsureSuperUser creates the account when missing and makes sure it holds
// the super role. It reports whether anything changed.
func (u *SetupUseCase) EnsureSuperUser(ctx context.Context, email, password string) (bool, error) {
	log := logger.For("setup.usecase")
	email = NormalizeEmail(email)
	if email == "" {
		return false, ErrInvalidEmail
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	changed := false
	if user.ID == "" {
		user, err = u.auth.SignUp(ctx, email, password)
		if err != nil {
			return false, err
		}
		log.WithField("user_id", user.ID).Info("super user created")
		changed = true
	}
	if user.HasRole(entities.RoleSuper) && user.IsActive {
		return changed, nil
	}

	if !user.HasRole(entities.RoleSuper) {
		user.Roles = append(user.Roles, entities.RoleSuper)
	}
	user.IsActive = true
	if _, err := u.users.Update(ctx, user); err != nil {
		return changed, err
	}
	log.WithField("user_id", user.ID).Info("super role granted")
	return true, nil
}
