// Package auth содержит логику регистрации, входа и выхода пользователей.
//
// Сессия пользователя: JWT. При выходе идентификатор токена (jti)
// попадает в список отозванных до истечения срока токена.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/work-reminder/internal/cache"
	"github.com/magabrotheeeer/work-reminder/internal/lib/apperr"
	"github.com/magabrotheeeer/work-reminder/internal/lib/jwt"
	"github.com/magabrotheeeer/work-reminder/internal/lib/password"
	"github.com/magabrotheeeer/work-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/work-reminder/internal/models"
)

var (
	// ErrUserNotFound пользователь не найден или деактивирован.
	ErrUserNotFound = errors.New("user not found or account is inactive")
	// ErrInvalidPassword пароль не совпал.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrTokenRevoked токен отозван выходом из системы.
	ErrTokenRevoked = errors.New("token revoked")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его uid.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// GetActiveUserByLogin возвращает активного пользователя по имени или email.
	GetActiveUserByLogin(ctx context.Context, login string) (*models.User, error)
	// GetUserByUID возвращает пользователя по uid.
	GetUserByUID(ctx context.Context, uid string) (*models.User, error)
}

// Revocations хранилище отозванных токенов.
type Revocations interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}

// LoginResult результат успешного входа.
type LoginResult struct {
	Token    string       `json:"token"`
	User     *models.User `json:"user"`
	Redirect string       `json:"redirect"`
}

// Service отвечает за регистрацию, вход, выход и проверку токенов.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
	revoked  Revocations
	log      *slog.Logger
	validate *validator.Validate
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, jwtMaker jwt.Maker, revoked Revocations, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		revoked:  revoked,
		log:      log,
		validate: validator.New(),
	}
}

// Register создает пользователя с ролью user.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	return s.create(ctx, req, models.RoleUser)
}

// CreateAdmin создает учётную запись администратора.
func (s *Service) CreateAdmin(ctx context.Context, req models.RegisterRequest) (string, error) {
	return s.create(ctx, req, models.RoleAdmin)
}

func (s *Service) create(ctx context.Context, req models.RegisterRequest, role string) (string, error) {
	const op = "auth.Register"

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := s.checkRegister(req); err != nil {
		return "", err
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	uid, err := s.users.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		FullName:     req.FullName,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		return "", apperr.Store(op, err)
	}
	s.log.Info("user registered", slog.String("op", op), sl.UserUID(uid), slog.String("role", role))
	return uid, nil
}

func (s *Service) checkRegister(req models.RegisterRequest) error {
	var errs []string

	switch {
	case req.Username == "":
		errs = append(errs, "Username is required")
	case utf8.RuneCountInString(req.Username) < 3:
		errs = append(errs, "Username must be at least 3 characters long")
	}
	switch {
	case req.Email == "":
		errs = append(errs, "Email is required")
	case s.validate.Var(req.Email, "email") != nil:
		errs = append(errs, "Invalid email format")
	}
	switch {
	case req.Password == "":
		errs = append(errs, "Password is required")
	case len(req.Password) < 6:
		errs = append(errs, "Password must be at least 6 characters long")
	}
	if req.FullName == "" {
		errs = append(errs, "Full name is required")
	}
	if req.Password != req.ConfirmPassword {
		errs = append(errs, "Passwords do not match")
	}

	if len(errs) > 0 {
		return apperr.Validation(strings.Join(errs, ", "))
	}
	return nil
}

// Login проверяет учётные данные и выдаёт JWT. login: имя пользователя или email.
func (s *Service) Login(ctx context.Context, login, rawPassword string) (*LoginResult, error) {
	const op = "auth.Login"

	login = strings.TrimSpace(login)
	var errs []string
	if login == "" {
		errs = append(errs, "Username or email is required")
	}
	if rawPassword == "" {
		errs = append(errs, "Password is required")
	}
	if len(errs) > 0 {
		return nil, apperr.Validation(strings.Join(errs, ", "))
	}

	user, err := s.users.GetActiveUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, apperr.Store(op, err)
	}
	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidPassword)
	}

	token, err := s.jwtMaker.GenerateToken(user.UUID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redirect := "dashboard"
	if user.IsAdmin() {
		redirect = "admin/dashboard"
	}
	s.log.Info("user logged in", slog.String("op", op), sl.UserUID(user.UUID))
	return &LoginResult{Token: token, User: user, Redirect: redirect}, nil
}

// Authenticate проверяет токен, что он не был отозван и что владелец
// по-прежнему существует и активен.
func (s *Service) Authenticate(ctx context.Context, token string) (*jwt.CustomClaims, error) {
	const op = "auth.Authenticate"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	revoked, err := s.revoked.Exists(ctx, cache.RevokedTokenKey(claims.ID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if revoked {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	user, err := s.users.GetUserByUID(ctx, claims.UserUID())
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return claims, nil
}

// Logout отзывает токен до истечения его срока.
func (s *Service) Logout(ctx context.Context, token string) error {
	const op = "auth.Logout"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	ttl := time.Minute
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	if err = s.revoked.Set(ctx, cache.RevokedTokenKey(claims.ID), true, ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user logged out", slog.String("op", op), sl.UserUID(claims.UserUID()))
	return nil
}
