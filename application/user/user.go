package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/car-market/cmd/config"
	"github.com/muhammadheryan/car-market/constant"
	"github.com/muhammadheryan/car-market/model"
	"github.com/muhammadheryan/car-market/repository"
	redisrepo "github.com/muhammadheryan/car-market/repository/redis"
	userrepo "github.com/muhammadheryan/car-market/repository/user"
	utilsContext "github.com/muhammadheryan/car-market/utils/context"
	cerr "github.com/muhammadheryan/car-market/utils/errors"
	"github.com/muhammadheryan/car-market/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = 10

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.SessionClaims, error)
	Logout(ctx context.Context, tokenString string) error
	GetProfile(ctx context.Context, id uint64) (*model.UserResponse, error)
	UpdateProfile(ctx context.Context, id uint64, req *model.UpdateProfileRequest) (*model.UserResponse, error)
	DeleteUser(ctx context.Context, id uint64) error
	ListUsers(ctx context.Context) ([]model.UserResponse, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrPersistence)
	}
	if existingUser != nil {
		return nil, cerr.SetCustomError(constant.ErrDuplicateUser)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
	}

	// the unique index still decides when two registrations race
	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, cerr.SetCustomError(constant.ErrDuplicateUser)
	}
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrPersistence)
	}

	logger.Info("[Register] user saved", zap.Uint64("user_id", userEntity.ID))
	return &model.RegisterResponse{
		ID:    userEntity.ID,
		Name:  userEntity.Name,
		Email: userEntity.Email,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrPersistence)
	}
	if user == nil {
		logger.Info("[Login] no user found", zap.String("email", req.Email))
		return nil, cerr.SetCustomError(constant.ErrUserNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Info("[Login] invalid password", zap.String("email", req.Email))
		return nil, cerr.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, claims, err := s.generateJWT(user)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		User:      model.NewUserResponse(user),
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ValidateToken verifies signature and expiry, then consults the revocation
// list. The verification error is kept as detail because it is echoed back.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.SessionClaims, error) {
	if tokenString == "" {
		return nil, cerr.SetCustomError(constant.ErrUnauthenticated)
	}

	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, cerr.SetCustomErrorWithDetail(constant.ErrInvalidToken, err.Error())
	}

	revoked, err := s.redisRepo.IsTokenRevoked(ctx, claims.RegisteredClaims.ID)
	if err != nil {
		// the revocation list is best-effort: an outage must not log everyone out
		logger.Warn("[ValidateToken] err redisRepo.IsTokenRevoked", zap.String("error", err.Error()))
	}
	if revoked {
		return nil, cerr.SetCustomErrorWithDetail(constant.ErrInvalidToken, "token has been revoked")
	}

	return claims, nil
}

// Logout revokes the token until its natural expiry. Invalid tokens are
// already unusable and are ignored.
func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	if tokenString == "" {
		return nil
	}
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.redisRepo.RevokeToken(ctx, claims.RegisteredClaims.ID, ttl); err != nil {
		logger.Error("[Logout] err redisRepo.RevokeToken", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, id uint64) (*model.UserResponse, error) {
	if !utilsContext.CanActOn(ctx, id) {
		return nil, cerr.SetCustomError(constant.ErrForbidden)
	}

	user, err := s.getUser(ctx, "GetProfile", id)
	if err != nil {
		return nil, err
	}
	res := model.NewUserResponse(user)
	return &res, nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, id uint64, req *model.UpdateProfileRequest) (*model.UserResponse, error) {
	if !utilsContext.CanActOn(ctx, id) {
		return nil, cerr.SetCustomError(constant.ErrForbidden)
	}

	user, err := s.getUser(ctx, "UpdateProfile", id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Surname != "" {
		user.Surname = req.Surname
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
		if err != nil {
			logger.Error("[UpdateProfile] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrInternal)
		}
		user.PasswordHash = string(hashed)
	}

	err = s.userRepo.Update(ctx, user)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, cerr.SetCustomError(constant.ErrDuplicateUser)
	}
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.Update", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrPersistence)
	}

	res := model.NewUserResponse(user)
	return &res, nil
}

func (s *UserAppImpl) DeleteUser(ctx context.Context, id uint64) error {
	if !utilsContext.CanActOn(ctx, id) {
		return cerr.SetCustomError(constant.ErrForbidden)
	}

	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return cerr.SetCustomError(constant.ErrUserNotFound)
	}
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrPersistence)
	}

	logger.Info("[DeleteUser] user deleted", zap.Uint64("user_id", id))
	return nil
}

func (s *UserAppImpl) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Error("[ListUsers] err userRepo.List", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrPersistence)
	}

	res := make([]model.UserResponse, 0, len(users))
	for i := range users {
		res = append(res, model.NewUserResponse(&users[i]))
	}
	return res, nil
}

func (s *UserAppImpl) getUser(ctx context.Context, op string, id uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		logger.Error("["+op+"] err userRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrPersistence)
	}
	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrUserNotFound)
	}
	return user, nil
}

// generateJWT signs the identity claims of user. The password hash never
// leaves this package.
func (s *UserAppImpl) generateJWT(user *model.UserEntity) (string, *model.SessionClaims, error) {
	jti, err := uuid.NewRandom()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate jti: %w", err)
	}

	now := time.Now()
	claims := &model.SessionClaims{
		ID:    user.ID,
		Email: user.Email,
		Admin: user.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime())),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims, nil
}

func (s *UserAppImpl) parseToken(tokenString string) (*model.SessionClaims, error) {
	claims := &model.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

func (s *UserAppImpl) tokenLifetime() time.Duration {
	if s.config.Auth.JWTExpiration > 0 {
		return s.config.Auth.JWTExpiration
	}
	return constant.SessionLifetime
}
