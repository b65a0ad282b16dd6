package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v5"
	"github.com/praneeth8555/dairyadmin/internal/auth/domain"
	"github.com/praneeth8555/dairyadmin/internal/clock"
	"github.com/praneeth8555/dairyadmin/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Clock  clock.Clock
	GenID  *snowflake.Node
	Config config.Config
	Repo   domain.Repository
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	clock  clock.Clock
	genID  *snowflake.Node
	secret []byte
	repo   domain.Repository
}

func New(p Params) (domain.Service, error) {
	log := p.Log.Named("auth.service")

	secret := strings.TrimSpace(p.Config.AuthJWTSecret)
	if secret == "" {
		if !p.Config.DevEnvironment() {
			return nil, errors.New("AUTH_JWT_SECRET is required outside development")
		}
		log.Warn("AUTH_JWT_SECRET not set, signing tokens with an insecure development key")
		secret = "dev-insecure-key"
	}

	return &Service{
		db:     p.DB,
		log:    log,
		clock:  p.Clock,
		genID:  p.GenID,
		secret: []byte(secret),
		repo:   p.Repo,
	}, nil
}

func (s *Service) Register(ctx context.Context, req domain.Credentials) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return domain.ErrInvalidUsername
	}
	if len(req.Password) < 8 {
		return domain.ErrInvalidPassword
	}

	existing, err := s.repo.FindByUsername(ctx, s.db, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.Create(ctx, s.db, &domain.Admin{
		ID:           s.genID.Generate().Int64(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	})
}

func (s *Service) Login(ctx context.Context, req domain.Credentials) (*domain.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)
	admin, err := s.repo.FindByUsername(ctx, s.db, username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.clock.Now()
	claims := &Claims{
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   snowflake.ID(admin.ID).String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &domain.TokenResponse{Token: token}, nil
}

func (s *Service) VerifyToken(raw string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}
	return claims.Username, nil
}
