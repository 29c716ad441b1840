package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/domain/entities"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
	mock_interfaces "github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces/mocks"
)

func TestSetupUseCase_SeedRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	roles := mock_interfaces.NewMockIRoleRepository(ctrl)
	uc := NewSetupUseCase(users, roles)

	roles.EXPECT().GetByName(gomock.Any(), entities.RoleSuper).Return(entities.Role{Name: entities.RoleSuper}, nil)
	roles.EXPECT().GetByName(gomock.Any(), entities.RoleAdmin).Return(entities.Role{}, nil)
	roles.EXPECT().GetByName(gomock.Any(), entities.RoleTesouraria).Return(entities.Role{}, nil)
	roles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.Role) (entities.Role, error) {
			if r.CreatedAt.IsZero() {
				t.Fatalf("expected created_at on %s", r.Name)
			}
			if r.Name == entities.RoleTesouraria {
				if !r.CanReviewPayments {
					t.Fatalf("expected tesouraria to review payments")
				}
				return entities.Role{}, interfaces.ErrConflict
			}
			return r, nil
		}).Times(2)

	created, err := uc.SeedRoles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 1 || created[0] != entities.RoleAdmin {
		t.Fatalf("expected only admin to be created, got %v", created)
	}
}

func TestSetupUseCase_EnsureSuperUser(t *testing.T) {
	t.Run("empty email", func(t *testing.T) {
		uc := NewSetupUseCase(nil, nil)
		if _, err := uc.EnsureSuperUser(context.Background(), " ", "secret1"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("creates and grants", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSetupUseCase(users, mock_interfaces.NewMockIRoleRepository(ctrl))

		users.EXPECT().GetByEmail(gomock.Any(), "root@example.com").Return(entities.User{}, nil).Times(2)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) { return u, nil })
		users.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if !u.HasRole(entities.RoleSuper) || !u.IsActive {
					t.Fatalf("expected active super user, got %+v", u)
				}
				return u, nil
			})

		changed, err := uc.EnsureSuperUser(context.Background(), " Root@Example.com ", "secret1")
		if err != nil || !changed {
			t.Fatalf("expected change, got %v %v", changed, err)
		}
	})

	t.Run("already super", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSetupUseCase(users, mock_interfaces.NewMockIRoleRepository(ctrl))

		users.EXPECT().GetByEmail(gomock.Any(), "root@example.com").Return(entities.User{ID: "u-1", Email: "root@example.com", IsActive: true, Roles: []string{entities.RoleSuper}}, nil)

		changed, err := uc.EnsureSuperUser(context.Background(), "root@example.com", "secret1")
		if err != nil || changed {
			t.Fatalf("expected no change, got %v %v", changed, err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSetupUseCase(users, mock_interfaces.NewMockIRoleRepository(ctrl))

		users.EXPECT().GetByEmail(gomock.Any(), "root@example.com").Return(entities.User{}, nil)

		if _, err := uc.EnsureSuperUser(context.Background(), "root@example.com", "123"); !errors.Is(err, ErrPasswordTooShort) {
			t.Fatalf("expected ErrPasswordTooShort, got %v", err)
		}
	})
}
