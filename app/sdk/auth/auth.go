// Package auth provides principal extraction, identity resolution and the
// role policy of the service.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jcpaschoal/admindashboard/business/domain/userbus"
	"github.com/jcpaschoal/admindashboard/business/types/role"
	"github.com/jcpaschoal/admindashboard/business/types/status"
	"github.com/jcpaschoal/admindashboard/foundation/logger"
)

// Principal sources supported by Auth. ModeHeader trusts the principal
// header as sent, so it is only safe behind a gateway that authenticates the
// caller and overwrites any client-supplied copy of the header.
const (
	ModeHeader = "header"
	ModeJWT    = "jwt"
)

// Erros padronizados do pacote de autenticação
var (
	ErrNoPrincipal  = errors.New("no authenticated principal")
	ErrForbidden    = errors.New("attempted action is not allowed")
	ErrKIDMissing   = errors.New("kid missing from token header")
	ErrKIDMalformed = errors.New("kid in token header is malformed")
)

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// UserContext is the identity a request runs as. It is resolved from the
// database on every request and is the only source of the business a
// request may touch.
type UserContext struct {
	UserID     string
	BusinessID uuid.UUID
	Role       role.Role
	Status     status.Status
}

// KeyLookup declares a method set of behavior for looking up
// private and public keys for JWT use.
type KeyLookup interface {
	PrivateKey(kid string) (key string, err error)
	PublicKey(kid string) (key string, err error)
}

// Config represents information required to initialize auth.
type Config struct {
	Log             *logger.Logger
	UserBus         *userbus.Core
	KeyLookup       KeyLookup
	Issuer          string
	Mode            string
	PrincipalHeader string
}

// Auth is used to authenticate clients.
type Auth struct {
	log             *logger.Logger
	keyLookup       KeyLookup
	userBus         *userbus.Core
	method          jwt.SigningMethod
	parser          *jwt.Parser
	issuer          string
	mode            string
	principalHeader string
}

// New creates an Auth to support authentication/authorization.
func New(cfg Config) (*Auth, error) {
	switch cfg.Mode {
	case ModeHeader:
		if cfg.PrincipalHeader == "" {
			return nil, errors.New("header mode requires a principal header name")
		}
	case ModeJWT:
		if cfg.KeyLookup == nil {
			return nil, errors.New("jwt mode requires a key lookup")
		}
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}

	a := Auth{
		log:             cfg.Log,
		keyLookup:       cfg.KeyLookup,
		userBus:         cfg.UserBus,
		method:          jwt.GetSigningMethod(jwt.SigningMethodRS256.Name),
		parser:          jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name})),
		issuer:          cfg.Issuer,
		mode:            cfg.Mode,
		principalHeader: cfg.PrincipalHeader,
	}

	return &a, nil
}

// Issuer provides the configured issuer used to authenticate tokens.
func (a *Auth) Issuer() string {
	return a.issuer
}

// Principal extracts the authenticated subject from the request. In header
// mode the subject was already authenticated by the gateway in front of the
// service; in jwt mode the bearer token is verified here.
func (a *Auth) Principal(ctx context.Context, r *http.Request) (string, error) {
	switch a.mode {
	case ModeJWT:
		authStr := strings.TrimSpace(r.Header.Get("Authorization"))
		if authStr == "" {
			return "", ErrNoPrincipal
		}

		claims, err := a.Authenticate(ctx, authStr)
		if err != nil {
			return "", err
		}

		if claims.Subject == "" {
			return "", ErrNoPrincipal
		}

		return claims.Subject, nil

	default:
		sub := strings.TrimSpace(r.Header.Get(a.principalHeader))
		if sub == "" {
			return "", ErrNoPrincipal
		}

		return sub, nil
	}
}

// Resolve loads the active user for the principal. Unknown and inactive
// users both fail with userbus.ErrNotFoundOrInactive; any other error is a
// backend fault. No partial context is ever returned.
func (a *Auth) Resolve(ctx context.Context, principal string) (UserContext, error) {
	usr, err := a.userBus.QueryActiveByID(ctx, principal)
	if err != nil {
		return UserContext{}, fmt.Errorf("resolve: %w", err)
	}

	uc := UserContext{
		UserID:     usr.ID,
		BusinessID: usr.BusinessID,
		Role:       usr.Role,
		Status:     usr.Status,
	}

	return uc, nil
}

// Authorize checks if the user context holds ONE OF the allowed roles. No
// allowed roles means only an active context is required.
func Authorize(uc UserContext, allowedRoles ...role.Role) error {
	if len(allowedRoles) == 0 {
		return nil
	}

	if uc.Role.In(allowedRoles...) {
		return nil
	}

	return fmt.Errorf("%w: role %q is not in %v", ErrForbidden, uc.Role, role.ParseToString(allowedRoles))
}

// GenerateToken generates a signed JWT token string for the subject.
func (a *Auth) GenerateToken(kid string, subject string, email string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    a.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(a.method, claims)
	token.Header["kid"] = kid

	privateKeyPEM, err := a.keyLookup.PrivateKey(kid)
	if err != nil {
		return "", fmt.Errorf("private key: %w", err)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("parsing private key from PEM: %w", err)
	}

	str, err := token.SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return str, nil
}

// Authenticate processes the token to validate the sender's token is valid.
// The Bearer prefix is optional; the dashboard frontend sends the raw token.
func (a *Auth) Authenticate(ctx context.Context, bearerToken string) (Claims, error) {
	jwtUnverified := bearerToken
	if len(bearerToken) > 7 && strings.EqualFold(bearerToken[:7], "Bearer ") {
		jwtUnverified = strings.TrimSpace(bearerToken[7:])
	}

	var claims Claims
	token, _, err := a.parser.ParseUnverified(jwtUnverified, &claims)
	if err != nil {
		return Claims{}, fmt.Errorf("error parsing token: %w", err)
	}

	kidRaw, exists := token.Header["kid"]
	if !exists {
		return Claims{}, ErrKIDMissing
	}

	kid, ok := kidRaw.(string)
	if !ok {
		return Claims{}, ErrKIDMalformed
	}

	pem, err := a.keyLookup.PublicKey(kid)
	if err != nil {
		return Claims{}, fmt.Errorf("fetching public key for kid %q: %w", kid, err)
	}

	if err := a.verifySignatureAndClaims(jwtUnverified, pem); err != nil {
		a.log.Info(ctx, "**Authenticate-FAILED**", "subject", claims.Subject, "ERROR", err)
		return Claims{}, fmt.Errorf("authentication failed: %w", err)
	}

	return claims, nil
}

// verifySignatureAndClaims parses the token with the public key, validates the signature, and checks the issuer claim.
func (a *Auth) verifySignatureAndClaims(tokenStr, pemStr string) error {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemStr))
	if err != nil {
		return fmt.Errorf("parsing public key: %w", err)
	}

	var claims Claims
	token, err := a.parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return publicKey, nil
	})

	if err != nil {
		return fmt.Errorf("validating token signature: %w", err)
	}

	if !token.Valid {
		return errors.New("token is invalid")
	}

	if a.issuer != "" && claims.Issuer != a.issuer {
		return fmt.Errorf("invalid issuer: expected %q, got %q", a.issuer, claims.Issuer)
	}

	return nil
}
