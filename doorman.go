package doorman

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ebran/doorman/core"
	"github.com/ebran/doorman/pkg/crypto"
)

// interfaces
type (
	UserStore   = core.UserStore
	HTTPAdapter = core.HTTPAdapter

	AuthProvider = core.AuthProvider

	PasswordHandler = crypto.PasswordHandler
)

// structs
type (
	Doorman = core.Doorman
	Config  = core.Config
)

type (
	User            = core.User
	RegisterInput   = core.RegisterInput
	RegisterResult  = core.RegisterResult
	SignInInput     = core.SignInInput
	SignInResult    = core.SignInResult
	UserPayload     = core.UserPayload
	ValidationError = core.ValidationError
	Claims          = crypto.Claims
)

const (
	defaultSecretLen    = 32
	defaultCookieMaxAge = 24 * time.Hour
)

// Constructors & helpers (convenience re-exports)
var (
	NewBcrypt            = crypto.NewBcrypt
	ValidateRegistration = core.ValidateRegistration
	ValidateSignIn       = core.ValidateSignIn
)

var (
	ErrUserExists        = core.ErrUserExists
	ErrUserNotFound      = core.ErrUserNotFound
	ErrIncorrectPassword = core.ErrIncorrectPassword
)

var (
	ErrInvalidEmail = core.ErrInvalidEmail
	ErrWeakPassword = core.ErrWeakPassword
	ErrInvalidToken = crypto.ErrInvalidToken
)

var (
	ErrStoreRequired       = core.ErrStoreRequired
	ErrHTTPAdapterRequired = core.ErrHTTPAdapterRequired
	ErrSecretRequired      = core.ErrSecretRequired
	ErrSecretTooShort      = core.ErrSecretTooShort
)

// New validates the configuration, applies defaults, and wires the HTTP
// adapter's routes.
func New(config Config) (*Doorman, error) {
	if config.Secret == "" {
		return nil, ErrSecretRequired
	}
	if len(config.Secret) < defaultSecretLen {
		return nil, fmt.Errorf("%w - minimum of %d characters", ErrSecretTooShort, defaultSecretLen)
	}
	if config.Store == nil {
		return nil, ErrStoreRequired
	}
	if config.HTTP == nil {
		return nil, ErrHTTPAdapterRequired
	}

	// Set Defaults

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewBcrypt()
	}

	tokenTTL := config.TokenTTL
	if tokenTTL == 0 {
		tokenTTL = crypto.DefaultTokenTTL
	}

	// The cookie intentionally outlives the token it carries; the original
	// behavior is 1h tokens inside a 24h cookie.
	cookieMaxAge := config.CookieMaxAge
	if cookieMaxAge == 0 {
		cookieMaxAge = defaultCookieMaxAge
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	d := &Doorman{
		Store:          config.Store,
		PasswordHasher: passwordHasher,
		Tokens:         crypto.NewTokenIssuer(config.Secret, tokenTTL),
		CookieMaxAge:   cookieMaxAge,
		Logger:         logger,
	}

	if err := config.HTTP.RegisterRoutes(d, cookieMaxAge); err != nil {
		return nil, err
	}

	return d, nil
}
