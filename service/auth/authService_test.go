// service/auth/auth_service_test.go
package authsvc

import (
	"context"
	"errors"
	"testing"

	"carrental/model"
	userrepo "carrental/repository/user"
	"carrental/util/hash"
	jwtutil "carrental/util/jwt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	createFn  func(ctx context.Context, u *model.User) error
	byEmailFn func(ctx context.Context, email string) (*model.User, error)
	byIDFn    func(ctx context.Context, id int64) (*model.User, error)
}

var _ userrepo.Repo = (*mockRepo)(nil)

func (m *mockRepo) Create(ctx context.Context, u *model.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func (m *mockRepo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.byEmailFn == nil {
		return nil, pgx.ErrNoRows
	}
	return m.byEmailFn(ctx, email)
}

func (m *mockRepo) ByID(ctx context.Context, id int64) (*model.User, error) {
	if m.byIDFn == nil {
		return nil, pgx.ErrNoRows
	}
	return m.byIDFn(ctx, id)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := hash.HashPassword(plain)
	require.NoError(t, err)
	return h
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			u.ID = 42
			return nil
		},
	}
	svc := New(m, "test-secret", 1440)

	payload, err := svc.Register(ctx, model.RegisterReq{
		Email:    "USER@Example.COM",
		Name:     "Sam Driver",
		Address:  "1 Main St",
		Password: "supersecret",
		Phone:    "5551234",
		Role:     "customer",
	})
	require.NoError(t, err)
	require.NotNil(t, payload)
	require.NotEmpty(t, payload.AccessToken)
	require.Equal(t, "bearer", payload.TokenType)
	require.Equal(t, int64(42), payload.UserID)
	require.Equal(t, "user@example.com", payload.Email)
	require.Equal(t, model.RoleCustomer, payload.Role)
	require.Equal(t, "5551234", payload.PhoneNumber)

	claims, err := jwtutil.Parse(payload.AccessToken, "test-secret")
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "user@example.com", claims.Subject)
}

func TestRegister_NeverStoresPlainPassword(t *testing.T) {
	ctx := context.Background()
	var stored *model.User
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			stored = u
			u.ID = 1
			return nil
		},
	}
	svc := New(m, "test-secret", 1440)

	_, err := svc.Register(ctx, model.RegisterReq{
		Email:    "a@example.com",
		Name:     "A",
		Address:  "x",
		Password: "plaintext-pw",
		Phone:    "1",
		Role:     "admin",
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotEqual(t, "plaintext-pw", stored.PasswordHash)
	require.True(t, hash.Check(stored.PasswordHash, "plaintext-pw"))
}

func TestRegister_BadRole(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret", 1440)

	_, err := svc.Register(context.Background(), model.RegisterReq{
		Email:    "a@example.com",
		Name:     "A",
		Address:  "x",
		Password: "123456",
		Phone:    "1",
		Role:     "superuser",
	})
	require.Error(t, err)
	require.Equal(t, ErrBadRole, Code(err))
}

func TestRegister_EmailTaken(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "users_email_key",
				Message:        `duplicate key value violates unique constraint "users_email_key"`,
			}
		},
	}
	svc := New(m, "test-secret", 1440)

	_, err := svc.Register(context.Background(), model.RegisterReq{
		Email:    "taken@example.com",
		Name:     "A",
		Address:  "x",
		Password: "123456",
		Phone:    "1",
		Role:     "customer",
	})
	require.Error(t, err)
	require.Equal(t, ErrEmailTaken, Code(err))
}

func TestRegister_CreateError(t *testing.T) {
	m := &mockRepo{
		createFn: func(ctx context.Context, u *model.User) error {
			return errors.New("db down")
		},
	}
	svc := New(m, "test-secret", 1440)

	_, err := svc.Register(context.Background(), model.RegisterReq{
		Email:    "ok@example.com",
		Name:     "A",
		Address:  "x",
		Password: "123456",
		Phone:    "1",
		Role:     "customer",
	})
	require.Error(t, err)
	require.Equal(t, ErrCode(""), Code(err))
}

func TestLogin_Success(t *testing.T) {
	pw := "supersecret"
	hashed := mustHash(t, pw)

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:           7,
				Email:        "user@example.com",
				Name:         "Sam Driver",
				PasswordHash: hashed,
				Role:         model.RoleCustomer,
			}, nil
		},
	}
	svc := New(m, "test-secret", 1440)

	payload, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "User@Example.com",
		Password: pw,
	})
	require.NoError(t, err)
	require.NotNil(t, payload)
	require.NotEmpty(t, payload.AccessToken)
	require.Equal(t, int64(7), payload.UserID)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret", 1440)

	_, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "missing@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed := mustHash(t, "correct-password")

	m := &mockRepo{
		byEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:           101,
				Email:        "user@example.com",
				PasswordHash: hashed,
				Role:         model.RoleCustomer,
			}, nil
		},
	}
	svc := New(m, "test-secret", 1440)

	_, err := svc.Login(context.Background(), model.LoginReq{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	require.Equal(t, ErrInvalidCreds, Code(err))
}

func TestCurrentUser(t *testing.T) {
	m := &mockRepo{
		byIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			require.Equal(t, int64(5), id)
			return &model.User{
				ID:          5,
				Email:       "user@example.com",
				Name:        "Sam Driver",
				PhoneNumber: "5551234",
				Role:        model.RoleAdmin,
			}, nil
		},
	}
	svc := New(m, "test-secret", 1440)

	payload, err := svc.CurrentUser(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, int64(5), payload.UserID)
	require.Equal(t, model.RoleAdmin, payload.Role)
	require.Empty(t, payload.AccessToken)
}

func TestCurrentUser_Missing(t *testing.T) {
	svc := New(&mockRepo{}, "test-secret", 1440)

	_, err := svc.CurrentUser(context.Background(), 99)
	require.Error(t, err)
	require.Equal(t, ErrUserNotFound, Code(err))
}

func TestCodeExtractor(t *testing.T) {
	require.Equal(t, ErrEmailTaken, Code(wrap(ErrEmailTaken, "x")))
	require.Equal(t, ErrCode(""), Code(errors.New("plain")))
}
