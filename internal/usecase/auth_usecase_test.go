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

func userWithPassword(t *testing.T, id, email, password string) entities.User {
	t.Helper()
	u := entities.User{ID: id, Email: email, IsActive: true}
	if err := u.SetPassword(password); err != nil {
		t.Fatalf("set password: %v", err)
	}
	return u
}

func TestAuthUseCase_SignUp(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if _, err := uc.SignUp(context.Background(), "nope", "123456"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
		if _, err := uc.SignUp(context.Background(), "a@b.com", "123"); !errors.Is(err, ErrPasswordTooShort) {
			t.Fatalf("expected ErrPasswordTooShort, got %v", err)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@test.com").Return(entities.User{ID: "u1"}, nil)

		_, err := uc.SignUp(context.Background(), "  Ana@Test.com ", "123456")
		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("conflict on create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@test.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrConflict)

		_, err := uc.SignUp(context.Background(), "ana@test.com", "123456")
		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@test.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.Email != "ana@test.com" || !u.IsActive {
					t.Fatalf("unexpected user: %+v", u)
				}
				if !u.CheckPassword("123456") {
					t.Fatalf("expected hashed password")
				}
				return u, nil
			},
		)

		u, err := uc.SignUp(context.Background(), "ANA@test.com", "123456")
		if err != nil || u.ID == "" {
			t.Fatalf("unexpected result err=%v user=%+v", err, u)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "x@test.com").Return(entities.User{}, nil)

		if _, _, err := uc.Login(context.Background(), "x@test.com", "123456"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "x@test.com").Return(userWithPassword(t, "u1", "x@test.com", "right1"), nil)

		if _, _, err := uc.Login(context.Background(), "x@test.com", "wrong1"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		u := userWithPassword(t, "u1", "x@test.com", "right1")
		u.IsActive = false
		users.EXPECT().GetByEmail(gomock.Any(), "x@test.com").Return(u, nil)

		if _, _, err := uc.Login(context.Background(), "x@test.com", "right1"); !errors.Is(err, ErrAccountInactive) {
			t.Fatalf("expected ErrAccountInactive, got %v", err)
		}
	})

	t.Run("success with permissions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		roles := mock_interfaces.NewMockIRoleRepository(ctrl)
		uc := NewAuthUseCase(users, roles)

		u := userWithPassword(t, "u1", "x@test.com", "right1")
		u.Roles = []string{entities.RoleTesouraria}
		users.EXPECT().GetByEmail(gomock.Any(), "x@test.com").Return(u, nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.LastLogin == nil {
					t.Fatalf("expected last login to be set")
				}
				return u, nil
			},
		)
		roles.EXPECT().GetMany(gomock.Any(), []string{entities.RoleTesouraria}).Return(
			[]entities.Role{{Name: entities.RoleTesouraria, CanAccessAdmin: true, CanReviewPayments: true}}, nil)

		got, perms, err := uc.Login(context.Background(), "X@test.com", "right1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "u1" || !perms.CanReviewPayments || perms.IsSuper {
			t.Fatalf("unexpected result user=%+v perms=%+v", got, perms)
		}
	})

	t.Run("last login update failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "x@test.com").Return(userWithPassword(t, "u1", "x@test.com", "right1"), nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.User{}, errors.New("db"))

		got, _, err := uc.Login(context.Background(), "x@test.com", "right1")
		if err != nil || got.ID != "u1" {
			t.Fatalf("unexpected result err=%v user=%+v", err, got)
		}
	})
}

func TestAuthUseCase_GetUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewAuthUseCase(users, nil)

	if _, _, err := uc.GetUser(context.Background(), " "); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	users.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.User{}, nil)
	if _, _, err := uc.GetUser(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1"}, nil)
	u, perms, err := uc.GetUser(context.Background(), "u1")
	if err != nil || u.ID != "u1" || perms != (entities.Permissions{}) {
		t.Fatalf("unexpected result err=%v user=%+v perms=%+v", err, u, perms)
	}
}
