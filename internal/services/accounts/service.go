package accounts

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"

	"kurier/internal/domain"
)

const (
	saltBytes       = 16
	hashBytes       = 64
	pbkdf2Iters     = 100000
	DefaultTokenTTL = 7 * 24 * time.Hour
)

// Claims are the JWT claims carried by kurier bearer tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Service implements registration, login, and token verification over the
// user store.
type Service struct {
	users    domain.UserStore
	secret   []byte
	tokenTTL time.Duration

	now func() time.Time
}

// New constructs the service. ttl == 0 selects DefaultTokenTTL.
func New(users domain.UserStore, secret []byte, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &Service{
		users:    users,
		secret:   secret,
		tokenTTL: ttl,
		now:      time.Now,
	}
}

// Register creates an account with a fresh user ID and an initial profile
// named after the username, and returns credentials including a signed
// token.
func (s *Service) Register(username, password string) (domain.Credentials, error) {
	if username == "" || password == "" {
		return domain.Credentials{}, fmt.Errorf("%w: username and password required", domain.ErrInvalidCredentials)
	}

	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return domain.Credentials{}, fmt.Errorf("read salt: %w", err)
	}

	id := domain.UserID(uuid.NewString())
	acc := domain.Account{
		ID:           id,
		Username:     username,
		PasswordHash: hashPassword(password, salt),
		Salt:         salt,
	}
	profile := domain.Profile{UserID: id, Name: username}
	if err := s.users.CreateAccount(acc, profile); err != nil {
		return domain.Credentials{}, err
	}

	return s.issue(acc)
}

// Login authenticates a username/password pair. Unknown usernames and
// wrong passwords fail identically with domain.ErrInvalidCredentials.
func (s *Service) Login(username, password string) (domain.Credentials, error) {
	acc, ok := s.users.AccountByUsername(username)
	if !ok {
		return domain.Credentials{}, domain.ErrInvalidCredentials
	}
	attempted := hashPassword(password, acc.Salt)
	if !hmac.Equal(attempted, acc.PasswordHash) {
		return domain.Credentials{}, domain.ErrInvalidCredentials
	}
	return s.issue(acc)
}

// Verify resolves a bearer token to its user. It implements
// domain.TokenVerifier for the relay handshake and the REST middleware.
func (s *Service) Verify(_ context.Context, token string) (domain.UserID, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", domain.ErrInvalidToken
	}
	return domain.UserID(claims.UserID), nil
}

func (s *Service) issue(acc domain.Account) (domain.Credentials, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
		UserID: string(acc.ID),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("sign token: %w", err)
	}
	return domain.Credentials{
		UserID:   acc.ID,
		Username: acc.Username,
		Token:    signed,
	}, nil
}

func hashPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, pbkdf2Iters, hashBytes, sha512.New)
}

var _ domain.Accounts = (*Service)(nil)
