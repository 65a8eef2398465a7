package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/sanitary-shop/cmd/config"
	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/model"
	sessionrepo "github.com/muhammadheryan/sanitary-shop/repository/session"
	cerr "github.com/muhammadheryan/sanitary-shop/utils/errors"
	"github.com/muhammadheryan/sanitary-shop/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthApp issues and checks bearer tokens for the single admin account
// configured through ADMIN_USER and ADMIN_PASSWORD.
type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
	Logout(ctx context.Context, tokenString string) error
}

type AuthAppImpl struct {
	config       *config.Config
	sessionRepo  sessionrepo.SessionRepository
	passwordHash []byte
}

func NewAuthApp(config *config.Config, sessionRepo sessionrepo.SessionRepository) (AuthApp, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(config.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AuthAppImpl{
		config:       config,
		sessionRepo:  sessionRepo,
		passwordHash: hash,
	}, nil
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.config.Auth.AdminUser)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password))
	if !userOK || passErr != nil {
		logger.Info("[Login] rejected credentials", zap.String("username", req.Username))
		return nil, cerr.SetCustomError(constant.ErrUnauthorize)
	}

	token, claims, err := s.generateJWT(req.Username)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.sessionRepo.SetSession(ctx, claims.ID, req.Username, claims.ExpiresAt.Time); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// ValidateToken returns the admin username bound to a live token.
func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}

	username, err := s.sessionRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("invalid or revoked session")
	}
	if username != claims.Subject {
		return "", fmt.Errorf("token does not match session")
	}
	return username, nil
}

func (s *AuthAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return cerr.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.sessionRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *AuthAppImpl) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid claims")
	}
	if claims.ID == "" {
		return nil, errors.New("token missing jti")
	}
	return claims, nil
}

func (s *AuthAppImpl) generateJWT(username string) (string, *jwt.RegisteredClaims, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, &claims, nil
}
