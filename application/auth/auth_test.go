package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	appauth "github.com/dimasprsty/storefront/application/auth"
	"github.com/dimasprsty/storefront/cmd/config"
	"github.com/dimasprsty/storefront/constant"
	redismocks "github.com/dimasprsty/storefront/mocks/repository/redis"
	usermocks "github.com/dimasprsty/storefront/mocks/repository/user"
	storemocks "github.com/dimasprsty/storefront/mocks/thirdparty/storeapi"
	"github.com/dimasprsty/storefront/model"
	cerr "github.com/dimasprsty/storefront/utils/errors"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestAuthApp_Login(t *testing.T) {
	type fields struct {
		store     *storemocks.Client
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: remote token wrapped in a local session",
			fields: fields{
				store:     storemocks.NewClient(t),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.LoginRequest{Email: "shopper@example.com", Password: "secret"},
			mockCall: func(f fields) {
				f.store.On("Login", mock.Anything, "shopper@example.com", "secret").
					Return(&model.RemoteAuth{Token: "remote-token", FirstName: "Ada"}, nil).Once()

				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, mock.MatchedBy(func(sess *model.Session) bool {
					return sess.Email == "shopper@example.com" && sess.RemoteToken == "remote-token"
				}), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "error: rejected credentials",
			fields: fields{
				store:     storemocks.NewClient(t),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.LoginRequest{Email: "shopper@example.com", Password: "wrong"},
			mockCall: func(f fields) {
				f.store.On("Login", mock.Anything, "shopper@example.com", "wrong").
					Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: store api unreachable",
			fields: fields{
				store:     storemocks.NewClient(t),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.LoginRequest{Email: "shopper@example.com", Password: "secret"},
			mockCall: func(f fields) {
				f.store.On("Login", mock.Anything, "shopper@example.com", "secret").
					Return(nil, errors.New("connection refused")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(testConfig(), tt.fields.store, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Token == "" {
				t.Error("Login() returned empty token")
			}
			if got.Email != tt.req.Email {
				t.Errorf("Email = %s, want %s", got.Email, tt.req.Email)
			}
		})
	}
}

func TestAuthApp_Register(t *testing.T) {
	type fields struct {
		store     *storemocks.Client
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			fields: fields{
				store:     storemocks.NewClient(t),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.store.On("Register", mock.Anything, mock.Anything).Return(true, nil).Once()
			},
		},
		{
			name: "error: remote refused registration",
			fields: fields{
				store:     storemocks.NewClient(t),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			mockCall: func(f fields) {
				f.store.On("Register", mock.Anything, mock.Anything).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(testConfig(), tt.fields.store, tt.fields.userRepo, tt.fields.redisRepo)

			err := app.Register(context.Background(), &model.RegisterRequest{
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "shopper@example.com",
				Password:  "secret1",
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestAuthApp_AdminLogin(t *testing.T) {
	hash, err := appauth.HashPassword("admin-pass")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	type fields struct {
		store     *storemocks.Client
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.AdminLoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			fields: fields{
				store:     storemocks.NewClient(t),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.AdminLoginRequest{Email: "admin@example.com", Password: "admin-pass"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "admin@example.com"}).
					Return(&model.UserEntity{
						Email:        "admin@example.com",
						Name:         "Admin",
						PasswordHash: hash,
						Role:         appauth.RoleAdmin,
					}, nil).Once()

				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, mock.MatchedBy(func(sess *model.Session) bool {
					return sess.Email == "admin@example.com" && sess.Role == appauth.RoleAdmin
				}), time.Hour).Return(nil).Once()
			},
		},
		{
			name: "error: non-admin account is rejected",
			fields: fields{
				store:     storemocks.NewClient(t),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.AdminLoginRequest{Email: "user@example.com", Password: "admin-pass"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "user@example.com"}).
					Return(&model.UserEntity{
						Email:        "user@example.com",
						PasswordHash: hash,
						Role:         "shopper",
					}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: unknown account",
			fields: fields{
				store:     storemocks.NewClient(t),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.AdminLoginRequest{Email: "ghost@example.com", Password: "admin-pass"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ghost@example.com"}).
					Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: wrong password",
			fields: fields{
				store:     storemocks.NewClient(t),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.AdminLoginRequest{Email: "admin@example.com", Password: "nope"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "admin@example.com"}).
					Return(&model.UserEntity{
						Email:        "admin@example.com",
						PasswordHash: hash,
						Role:         appauth.RoleAdmin,
					}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appauth.NewAuthApp(testConfig(), tt.fields.store, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.AdminLogin(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AdminLogin() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Token == "" {
				t.Error("AdminLogin() returned empty token")
			}
		})
	}
}

func TestAuthApp_ValidateToken(t *testing.T) {
	store := storemocks.NewClient(t)
	userRepo := usermocks.NewUserRepository(t)
	redisRepo := redismocks.NewRepository(t)

	store.On("Login", mock.Anything, "shopper@example.com", "secret").
		Return(&model.RemoteAuth{Token: "remote-token"}, nil).Once()

	var storedJTI string
	storedSess := &model.Session{Email: "shopper@example.com", RemoteToken: "remote-token"}
	redisRepo.On("SetSession", mock.Anything, mock.Anything, mock.Anything, time.Hour).
		Run(func(args mock.Arguments) {
			storedJTI = args.String(1)
		}).Return(nil).Once()

	app := appauth.NewAuthApp(testConfig(), store, userRepo, redisRepo)

	login, err := app.Login(context.Background(), &model.LoginRequest{Email: "shopper@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	t.Run("valid token resolves the stored session", func(t *testing.T) {
		redisRepo.On("GetSession", mock.Anything, mock.MatchedBy(func(jti string) bool {
			return jti == storedJTI
		})).Return(storedSess, nil).Once()

		sess, err := app.ValidateToken(context.Background(), login.Token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if sess.RemoteToken != "remote-token" {
			t.Fatalf("RemoteToken = %s, want remote-token", sess.RemoteToken)
		}
	})

	t.Run("missing session means the credential is stale", func(t *testing.T) {
		redisRepo.On("GetSession", mock.Anything, mock.Anything).Return(nil, nil).Once()

		if _, err := app.ValidateToken(context.Background(), login.Token); err == nil {
			t.Fatal("ValidateToken() expected error for missing session")
		}
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		if _, err := app.ValidateToken(context.Background(), "not-a-jwt"); err == nil {
			t.Fatal("ValidateToken() expected error for malformed token")
		}
	})
}

func TestAuthApp_Logout(t *testing.T) {
	store := storemocks.NewClient(t)
	userRepo := usermocks.NewUserRepository(t)
	redisRepo := redismocks.NewRepository(t)

	store.On("Login", mock.Anything, "shopper@example.com", "secret").
		Return(&model.RemoteAuth{Token: "remote-token"}, nil).Once()
	redisRepo.On("SetSession", mock.Anything, mock.Anything, mock.Anything, time.Hour).
		Return(nil).Once()

	app := appauth.NewAuthApp(testConfig(), store, userRepo, redisRepo)

	login, err := app.Login(context.Background(), &model.LoginRequest{Email: "shopper@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	redisRepo.On("DeleteSession", mock.Anything, mock.Anything).Return(nil).Once()

	if err := app.Logout(context.Background(), login.Token); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
}
