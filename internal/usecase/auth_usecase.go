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

const minPasswordLength = 6

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account inactive")
	ErrUserNotFound       = errors.New("user not found")
)

// IAuthUseCase covers account creation and password sign-in.
type IAuthUseCase interface {
	SignUp(ctx context.Context, email, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.User, entities.Permissions, error)
	GetUser(ctx context.Context, id string) (entities.User, entities.Permissions, error)
}

type AuthUseCase struct {
	users interfaces.IUserRepository
	roles interfaces.IRoleRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, roles interfaces.IRoleRepository) *AuthUseCase {
	return &AuthUseCase{users: users, roles: roles}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *AuthUseCase) SignUp(ctx context.Context, email, password string) (entities.User, error) {
	log := logger.For("auth.usecase")
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return entities.User{}, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return entities.User{}, ErrPasswordTooShort
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyExists
	}

	user := entities.User{
		ID:        uuid.NewString(),
		Email:     email,
		IsActive:  true,
		Roles:     []string{},
		CreatedAt: time.Now().UTC(),
	}
	if err := user.SetPassword(password); err != nil {
		return entities.User{}, err
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			return entities.User{}, ErrEmailAlreadyExists
		}
		return entities.User{}, err
	}
	log.WithField("user_id", created.ID).Info("user signed up")
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, entities.Permissions, error) {
	log := logger.For("auth.usecase")
	email = NormalizeEmail(email)
	if email == "" {
		return entities.User{}, entities.Permissions{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, entities.Permissions{}, err
	}
	if user.ID == "" || !user.CheckPassword(password) {
		return entities.User{}, entities.Permissions{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return entities.User{}, entities.Permissions{}, ErrAccountInactive
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if updated, err := u.users.Update(ctx, user); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("last login not updated")
	} else {
		user = updated
	}

	perms, err := u.permissions(ctx, user)
	if err != nil {
		return entities.User{}, entities.Permissions{}, err
	}
	return user, perms, nil
}

func (u *AuthUseCase) GetUser(ctx context.Context, id string) (entities.User, entities.Permissions, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, entities.Permissions{}, ErrUserNotFound
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, entities.Permissions{}, err
	}
	if user.ID == "" {
		return entities.User{}, entities.Permissions{}, ErrUserNotFound
	}
	perms, err := u.permissions(ctx, user)
	if err != nil {
		return entities.User{}, entities.Permissions{}, err
	}
	return user, perms, nil
}

func (u *AuthUseCase) permissions(ctx context.Context, user entities.User) (entities.Permissions, error) {
	if len(user.Roles) == 0 || u.roles == nil {
		return entities.Permissions{}, nil
	}
	roles, err := u.roles.GetMany(ctx, user.Roles)
	if err != nil {
		return entities.Permissions{}, err
	}
	return entities.PermissionsFor(roles), nil
}
