package auth

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dimasprsty/storefront/cmd/config"
	"github.com/dimasprsty/storefront/constant"
	"github.com/dimasprsty/storefront/model"
	redisrepo "github.com/dimasprsty/storefront/repository/redis"
	userrepo "github.com/dimasprsty/storefront/repository/user"
	"github.com/dimasprsty/storefront/thirdparty/storeapi"
	"github.com/dimasprsty/storefront/utils/errors"
	"github.com/dimasprsty/storefront/utils/logger"
)

const RoleAdmin = "admin"

// AuthApp authenticates shoppers against the store api and admins against
// the local user table. Either way the caller ends up with a locally signed
// JWT whose jti points at a redis session holding the request-scoped
// credentials.
type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Register(ctx context.Context, req *model.RegisterRequest) error
	AdminLogin(ctx context.Context, req *model.AdminLoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (*model.Session, error)
}

type authAppImpl struct {
	config    *config.Config
	store     storeapi.Client
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewAuthApp(cfg *config.Config, store storeapi.Client, users userrepo.UserRepository, sessions redisrepo.Repository) AuthApp {
	return &authAppImpl{
		config:    cfg,
		store:     store,
		userRepo:  users,
		redisRepo: sessions,
	}
}

// Login trades credentials for a store-api bearer token and wraps it in a
// local session.
func (s *authAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	remote, err := s.store.Login(ctx, req.Email, req.Password)
	if err != nil {
		logger.Error("[Login] err store.Login", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if remote == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	sess := &model.Session{
		Email:       req.Email,
		RemoteToken: remote.Token,
	}
	token, err := s.openSession(ctx, sess)
	if err != nil {
		logger.Error("[Login] err openSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Email: req.Email,
		Name:  remote.FirstName,
		Token: token,
	}, nil
}

func (s *authAppImpl) Register(ctx context.Context, req *model.RegisterRequest) error {
	ok, err := s.store.Register(ctx, req)
	if err != nil {
		logger.Error("[Register] err store.Register", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrCredentialExists)
	}
	return nil
}

// AdminLogin checks the local user table; only admin-role accounts get a
// session.
func (s *authAppImpl) AdminLogin(ctx context.Context, req *model.AdminLoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[AdminLogin] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil || user.Role != RoleAdmin {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	sess := &model.Session{
		Email: user.Email,
		Role:  user.Role,
	}
	token, err := s.openSession(ctx, sess)
	if err != nil {
		logger.Error("[AdminLogin] err openSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Email: user.Email,
		Name:  user.Name,
		Token: token,
	}, nil
}

func (s *authAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// ValidateToken parses the local JWT and resolves its jti to the stored
// session. A missing or expired session means the credential is stale and
// the caller must re-authenticate.
func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Session, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	sess, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}
	if sess == nil {
		return nil, goerrors.New("session expired")
	}
	if sess.Email != claims.Subject {
		return nil, goerrors.New("token does not match session")
	}

	return sess, nil
}

func (s *authAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, goerrors.New("invalid claims")
	}
	if claims.ID == "" {
		return nil, goerrors.New("token missing jti")
	}
	return claims, nil
}

// openSession signs a JWT and stores the session under its jti.
func (s *authAppImpl) openSession(ctx context.Context, sess *model.Session) (string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   sess.Email,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.redisRepo.SetSession(ctx, claims.ID, sess, s.config.Auth.SessionExpTime); err != nil {
		return "", err
	}

	return tokenString, nil
}

// HashPassword is used by seeding tooling to provision admin accounts.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
