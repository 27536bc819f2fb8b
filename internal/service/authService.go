package service

import (
	"context"
	"strings"

	"docmeister/internal/models/entity"
	"docmeister/internal/models/response"
	"docmeister/internal/storage"
	"docmeister/pkg/appError"

	"golang.org/x/crypto/bcrypt"
)

type auth struct {
	userStorage  storage.UserStorage
	tokenService TokenService
	bcryptCost   int
}

type AuthService interface {
	Signup(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (*response.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*response.TokenPair, error)
	Authenticate(ctx context.Context, claimedEmail, bearerHeader string) (*entity.User, error)
}

func NewAuthService(userStorage storage.UserStorage, tokenService TokenService, bcryptCost int) AuthService {
	return &auth{
		userStorage:  userStorage,
		tokenService: tokenService,
		bcryptCost:   bcryptCost,
	}
}

func (a *auth) Signup(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return err
	}
	if err := validatePassword(password); err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return appError.Internal()
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		IsActive:     true,
	}

	return a.userStorage.AddUser(ctx, user)
}

func (a *auth) Login(ctx context.Context, email, password string) (*response.TokenPair, error) {
	user, err := a.userStorage.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, appError.Unauthorized("invalid email or password")
	}

	validPassword := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if validPassword != nil {
		return nil, appError.Unauthorized("invalid email or password")
	}

	return a.issuePair(user.ID)
}

func (a *auth) Refresh(ctx context.Context, refreshToken string) (*response.TokenPair, error) {
	claims, err := a.tokenService.Verify(refreshToken)
	if err != nil {
		return nil, appError.Unauthorized("invalid or expired refresh token")
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, appError.Unauthorized("not a refresh token")
	}

	return a.issuePair(claims.UserID)
}

func (a *auth) issuePair(userID int64) (*response.TokenPair, error) {
	refresh, access, err := a.tokenService.IssuePair(userID)
	if err != nil {
		return nil, appError.Internal()
	}

	return &response.TokenPair{
		RefreshToken: refresh,
		AccessToken:  access,
	}, nil
}

// Authenticate binds a claimed email to a bearer token. Both checks run on
// every protected call: the token must verify AND the email must resolve to
// the token's subject. A token alone is never enough, which stops a leaked
// token from being replayed under another account's email.
func (a *auth) Authenticate(ctx context.Context, claimedEmail, bearerHeader string) (*entity.User, error) {
	parts := strings.SplitN(bearerHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, appError.Unauthorized("malformed authorization header")
	}

	claims, err := a.tokenService.Verify(parts[1])
	if err != nil {
		return nil, appError.Unauthorized("invalid or expired token: " + err.Error())
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, appError.Unauthorized("invalid or expired token: not an access token")
	}

	user, err := a.userStorage.GetUserByEmail(ctx, normalizeEmail(claimedEmail))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, appError.Unauthorized("user not found")
	}
	if !user.IsActive {
		return nil, appError.Unauthorized("user is inactive")
	}

	if user.ID != claims.UserID {
		return nil, appError.Unauthorized("email does not match the token's user")
	}

	return user, nil
}
