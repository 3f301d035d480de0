package service

import (
	"errors"

	"go-retail-crm/internal/model"
	"go-retail-crm/internal/repository"
	"go-retail-crm/pkg/config"
	"go-retail-crm/pkg/jwt"
	"go-retail-crm/pkg/validator"
)

var ErrEmailRequired = errors.New("a valid email is required")

// SessionService is the login stub. Any well-formed email is accepted, no
// credential store is consulted, and the fabricated Admin identity is kept as
// the single persisted current-user record until logout. Not a security
// boundary.
type SessionService interface {
	Login(email string) (*LoginResponse, error)
	Logout() error
	CurrentUser() (*model.User, error)
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type sessionService struct {
	local *repository.LocalStore
	jwt   config.JWTConfig
}

func NewSessionService(local *repository.LocalStore, jwtCfg config.JWTConfig) SessionService {
	return &sessionService{local: local, jwt: jwtCfg}
}

func (s *sessionService) Login(email string) (*LoginResponse, error) {
	user := model.User{
		ID:    "U001",
		Name:  "Admin User",
		Email: email,
		Role:  model.RoleAdmin,
	}
	if errs := validator.ValidateStruct(&user); len(errs) > 0 {
		return nil, ErrEmailRequired
	}

	if err := s.local.SaveSession(user); err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(s.jwt, user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, User: user}, nil
}

func (s *sessionService) Logout() error {
	return s.local.ClearSession()
}

func (s *sessionService) CurrentUser() (*model.User, error) {
	return s.local.Session()
}
