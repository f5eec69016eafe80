package userapp

import (
	"context"
	"errors"
	"time"

	"orgboard/internal/core/errs"
	userEntity "orgboard/internal/core/user"
	authPort "orgboard/internal/ports/auth"
	userPort "orgboard/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// UserService handles registration and the credential lifecycle. Tokens it
// issues carry the user's subject UUID as the Subject claim, which is what
// the token validator hands back to the post service.
type UserService struct {
	UserRepository userPort.UserRepository
	Denylist       authPort.TokenDenylist
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, denylist authPort.TokenDenylist, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		Denylist:       denylist,
		jwtKey:         jwtKey,
	}
}

func (s *UserService) Register(ctx context.Context, username, name, password string) (*userPort.UserDTO, error) {
	if _, err := s.UserRepository.FindByUsername(ctx, username); err == nil {
		return nil, errs.ErrUsernameTaken
	} else if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		SubjectUUID: uuid.Must(uuid.NewV4()),
		Username:    username,
		Name:        name,
		Password:    string(hashedPassword),
	})
	if err != nil {
		return nil, err
	}

	return &userPort.UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
	}, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errs.ErrUnauthenticated
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := s.generateJWT(user, expiresAt)
	if err != nil {
		return nil, err
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// Logout pushes the raw token onto the denylist until it would have expired
// on its own. An already-invalid token is rejected rather than stored.
func (s *UserService) Logout(ctx context.Context, token string) error {
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return s.jwtKey, nil
	})
	if err != nil || !parsed.Valid {
		return errs.ErrUnauthenticated
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		return nil
	}
	return s.Denylist.Revoke(ctx, token, ttl)
}

func (s *UserService) generateJWT(user *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   user.SubjectUUID.String(),
		Issuer:    "orgboard",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
