package core

import (
	"log/slog"
	"time"

	"github.com/ebran/doorman/pkg/crypto"
)

type Config struct {
	// Secret signs issued tokens. Loaded once at startup; immutable after.
	Secret string

	Store UserStore

	HTTP HTTPAdapter

	// Optional config
	PasswordHasher crypto.PasswordHandler
	TokenTTL       time.Duration
	CookieMaxAge   time.Duration
	Logger         *slog.Logger
}

type Doorman struct {
	Store          UserStore
	PasswordHasher crypto.PasswordHandler
	Tokens         *crypto.TokenIssuer
	CookieMaxAge   time.Duration
	Logger         *slog.Logger
}
