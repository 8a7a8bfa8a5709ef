package authsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"carrental/model"
	userrepo "carrental/repository/user"
	"carrental/util/hash"
	jwtutil "carrental/util/jwt"
)

// errors used by controllers

type ErrCode string

const (
	ErrEmailTaken   ErrCode = "EMAIL_TAKEN"
	ErrInvalidCreds ErrCode = "INVALID_CREDENTIALS"
	ErrBadRole      ErrCode = "BAD_ROLE"
	ErrUserNotFound ErrCode = "USER_NOT_FOUND"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string { return e.msg }
func (e codedError) Code() ErrCode { return e.code }

func makeErr(c ErrCode) error { return codedError{code: c, msg: string(c)} }

func wrap(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	// Register creates the user and performs an implicit login.
	Register(ctx context.Context, req model.RegisterReq) (*model.TokenPayload, error)
	Login(ctx context.Context, req model.LoginReq) (*model.TokenPayload, error)
	// CurrentUser resolves a verified token's user_id to its profile.
	CurrentUser(ctx context.Context, userID int64) (*model.TokenPayload, error)
}

type service struct {
	ur         userrepo.Repo
	secret     string
	ttlMinutes int
}

func New(ur userrepo.Repo, secret string, ttlMinutes int) Service {
	return &service{ur: ur, secret: secret, ttlMinutes: ttlMinutes}
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.TokenPayload, error) {
	role := model.Role(req.Role)
	if role != model.RoleCustomer && role != model.RoleAdmin {
		return nil, wrap(ErrBadRole, "invalid role: "+req.Role)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashed,
		PhoneNumber:  req.Phone,
		Address:      req.Address,
		Role:         role,
	}

	if err := s.ur.Create(ctx, u); err != nil {
		if derr := mapDuplicateErr(err); derr != nil {
			return nil, derr
		}
		return nil, err
	}

	return s.tokenPayload(u)
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.TokenPayload, error) {
	u, err := s.ur.ByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrInvalidCreds)
		}
		return nil, err
	}
	if u == nil || !hash.Check(u.PasswordHash, req.Password) {
		return nil, makeErr(ErrInvalidCreds)
	}
	return s.tokenPayload(u)
}

func (s *service) CurrentUser(ctx context.Context, userID int64) (*model.TokenPayload, error) {
	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrUserNotFound)
		}
		return nil, err
	}
	if u == nil {
		return nil, makeErr(ErrUserNotFound)
	}
	return &model.TokenPayload{
		UserID:      u.ID,
		Role:        u.Role,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Name:        u.Name,
	}, nil
}

func (s *service) tokenPayload(u *model.User) (*model.TokenPayload, error) {
	token, err := jwtutil.Issue(s.secret, u.ID, u.Email, s.ttlMinutes)
	if err != nil {
		return nil, err
	}
	return &model.TokenPayload{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      u.ID,
		Role:        u.Role,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Name:        u.Name,
	}, nil
}

func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		cn := strings.ToLower(pgErr.ConstraintName)
		msg := strings.ToLower(pgErr.Message)
		if strings.Contains(cn, "users_email") || strings.Contains(msg, "email") {
			return wrap(ErrEmailTaken, fmt.Sprintf("email already registered: %s", pgErr.ConstraintName))
		}
	}
	return nil
}
