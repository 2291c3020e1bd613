package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/mtls"
)

// Authenticator builds the authentication context of an incoming request. It
// tries mutual TLS first and falls back to a bearer token. It never fails a
// request; an unauthenticated context is a valid outcome.
type Authenticator interface {
	AuthenticateRequest(ctx context.Context, ts int64, r *http.Request) model.AuthContext

	// IsAuthorized reports whether the context satisfies the required trust
	// level and carries every listed capability.
	IsAuthorized(authCtx model.AuthContext, required model.TrustLevel, capabilities ...string) bool
}

type _Authenticator struct {
	authService AuthService
	validator   mtls.Validator
}

type AuthenticatorOption func(*_Authenticator)

func WithAuthService(authService AuthService) AuthenticatorOption {
	return func(a *_Authenticator) {
		a.authService = authService
	}
}

func WithMTLSValidator(validator mtls.Validator) AuthenticatorOption {
	return func(a *_Authenticator) {
		a.validator = validator
	}
}

func NewAuthenticator(opts ...AuthenticatorOption) *_Authenticator {
	a := &_Authenticator{}
	for _, opt := range opts {
		opt(a)
	}

	if a.authService == nil {
		panic("authService is required")
	}
	return a
}

func (a *_Authenticator) AuthenticateRequest(ctx context.Context, ts int64, r *http.Request) model.AuthContext {
	if authCtx, ok := a.tryMTLS(ctx, ts, r); ok {
		return authCtx
	}
	if authCtx, ok := a.tryBearerToken(ctx, ts, r); ok {
		return authCtx
	}
	return model.AuthContext{Authenticated: false, AuthMethod: model.AuthMethodNone}
}

func (a *_Authenticator) tryMTLS(ctx context.Context, ts int64, r *http.Request) (model.AuthContext, bool) {
	if a.validator == nil || r.TLS == nil || len(r.TLS.PeerCertificates) == 0 {
		return model.AuthContext{}, false
	}

	clientCert, err := a.validator.ExtractClientCertificate(r.TLS)
	if err != nil {
		return model.AuthContext{}, false
	}
	result, err := a.validator.ValidateClientCertificate(ctx, ts, clientCert)
	if err != nil {
		logrus.Warnf("mTLS validation failed: %v", err)
		return model.AuthContext{}, false
	}
	if !result.Valid {
		logrus.Debugf("client certificate rejected: %s", result.Reason)
		return model.AuthContext{}, false
	}

	return model.AuthContext{
		Authenticated: true,
		AuthMethod:    model.AuthMethodMTLS,
		DID:           result.DID,
		TrustLevel:    result.TrustLevel,
		Capabilities:  result.TrustLevel.Capabilities(),
		Certificate:   result.Certificate,
	}, true
}

func (a *_Authenticator) tryBearerToken(ctx context.Context, ts int64, r *http.Request) (model.AuthContext, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return model.AuthContext{}, false
	}

	payload, err := a.authService.VerifyToken(ctx, ts, token)
	if err != nil {
		logrus.Debugf("bearer token rejected: %v", err)
		return model.AuthContext{}, false
	}

	return model.AuthContext{
		Authenticated: true,
		AuthMethod:    model.AuthMethodDIDJWT,
		DID:           payload.DID,
		TrustLevel:    payload.TrustLevel,
		Capabilities:  payload.Capabilities,
		TokenPayload:  &payload,
	}, true
}

func (a *_Authenticator) IsAuthorized(authCtx model.AuthContext, required model.TrustLevel, capabilities ...string) bool {
	if !authCtx.Authenticated {
		return false
	}
	if !authCtx.TrustLevel.IsAuthorized(required) {
		return false
	}
	for _, capability := range capabilities {
		if !authCtx.HasCapability(capability) {
			return false
		}
	}
	return true
}
