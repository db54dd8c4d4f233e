package services

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/changil/changilweb-server/internal/models"
	"github.com/changil/changilweb-server/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const msgBadCredentials = "아이디 또는 비밀번호가 올바르지 않습니다."

type authService struct {
	username     string
	passwordHash []byte
	tokens       *jwt.TokenService
}

// NewAuthService creates an AuthService for the single admin account.
// passwordHash is a bcrypt hash; an empty hash rejects every login.
func NewAuthService(username, passwordHash string, tokens *jwt.TokenService) AuthService {
	return &authService{
		username:     username,
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if len(s.passwordHash) == 0 || s.username == "" {
		return nil, &Error{Kind: ErrUnauthorized, Message: msgBadCredentials}
	}
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	// bcrypt runs for a wrong username too.
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password))
	if !userOK || passErr != nil {
		return nil, &Error{Kind: ErrUnauthorized, Message: msgBadCredentials}
	}

	token, expiresAt, err := s.tokens.Issue(s.username)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *authService) Verify(token string) (time.Time, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return time.Time{}, err
	}
	return claims.LoginTime(), nil
}
