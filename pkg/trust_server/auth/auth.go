// Package auth implements DID based authentication for the trust server: a
// challenge/response handshake over single-use nonces, and short-lived DID-JWT
// bearer tokens minted after a successful handshake.
package auth

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/agenttrust/agenttrust/pkg/did"
	"github.com/agenttrust/agenttrust/pkg/envelope"
	"github.com/agenttrust/agenttrust/pkg/pkix"
	"github.com/agenttrust/agenttrust/pkg/trust_server/cert_authority"
	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
	"github.com/agenttrust/agenttrust/pkg/util"
)

const (
	// Maximum clock skew tolerated on a challenge response.
	maxTimestampSkewSeconds = 60

	defaultChallengeTTL = 300 * time.Second
	defaultTokenTTL     = 3600 * time.Second

	claimTrustLevel   = "trust_level"
	claimCapabilities = "capabilities"
)

type AuthService interface {
	// CreateChallenge reserves a single-use nonce for the DID.
	CreateChallenge(ctx context.Context, ts int64, didStr string) (model.AuthChallenge, error)

	// VerifyChallengeResponse consumes the nonce, verifies the response
	// signature against the DID document and mints a bearer token.
	VerifyChallengeResponse(ctx context.Context, ts int64, req VerifyChallengeRequest) (TokenResult, error)

	// VerifyToken verifies a bearer token and returns its claims.
	VerifyToken(ctx context.Context, ts int64, token string) (model.TokenPayload, error)

	// RemoveExpiredChallenges garbage collects expired nonces.
	RemoveExpiredChallenges(ctx context.Context, ts int64) error
}

type VerifyChallengeRequest struct {
	DID       string `json:"did"`       // DID claiming the challenge.
	Nonce     string `json:"nonce"`     // Nonce issued by CreateChallenge.
	Timestamp int64  `json:"timestamp"` // Unix Time (in second) when the response was signed.

	// Compact JWS over ChallengeMessage(DID, Timestamp), signed with an
	// authentication key of the DID document.
	Signature string `json:"signature"`
}

type TokenResult struct {
	Token     string             `json:"token"`
	Payload   model.TokenPayload `json:"payload"`
	ExpiresAt int64              `json:"expires_at"` // Unix Time (in second).
}

// ChallengeMessage is the exact payload a client signs to answer a challenge.
// The nonce travels separately in the request; consuming it binds the response
// to the challenge.
func ChallengeMessage(didStr string, timestamp int64) []byte {
	return []byte(fmt.Sprintf("%s:%d", didStr, timestamp))
}

type _AuthService struct {
	nonceStorage storage.NonceStorage
	ca           cert_authority.CertAuthority
	resolver     did.Resolver

	signKey      any
	issuer       string
	challengeTTL time.Duration
	tokenTTL     time.Duration
}

type AuthServiceOption func(*_AuthService)

func WithNonceStorage(nonceStorage storage.NonceStorage) AuthServiceOption {
	return func(s *_AuthService) {
		s.nonceStorage = nonceStorage
	}
}

func WithCertAuthority(ca cert_authority.CertAuthority) AuthServiceOption {
	return func(s *_AuthService) {
		s.ca = ca
	}
}

func WithDIDResolver(resolver did.Resolver) AuthServiceOption {
	return func(s *_AuthService) {
		s.resolver = resolver
	}
}

// WithSigningKey sets the private key used to sign bearer tokens.
func WithSigningKey(signKey any, issuer string) AuthServiceOption {
	return func(s *_AuthService) {
		s.signKey = signKey
		s.issuer = issuer
	}
}

func WithChallengeTTL(ttl time.Duration) AuthServiceOption {
	return func(s *_AuthService) {
		s.challengeTTL = ttl
	}
}

func WithTokenTTL(ttl time.Duration) AuthServiceOption {
	return func(s *_AuthService) {
		s.tokenTTL = ttl
	}
}

func NewAuthService(opts ...AuthServiceOption) *_AuthService {
	s := &_AuthService{
		challengeTTL: defaultChallengeTTL,
		tokenTTL:     defaultTokenTTL,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.nonceStorage == nil {
		panic("nonceStorage is required")
	}
	if s.ca == nil {
		panic("cert authority is required")
	}
	if s.resolver == nil {
		panic("DID resolver is required")
	}
	if s.signKey == nil {
		panic("signing key is required")
	}
	return s
}

func (s *_AuthService) CreateChallenge(ctx context.Context, ts int64, didStr string) (model.AuthChallenge, error) {
	if !did.IsValid(didStr) {
		return model.AuthChallenge{}, fmt.Errorf("DID %q: %w", didStr, model.ErrInvalidDID)
	}

	challenge := model.AuthChallenge{
		DID:       didStr,
		Nonce:     util.NewUUID(),
		CreatedAt: ts,
		ExpiresAt: ts + int64(s.challengeTTL.Seconds()),
	}

	tx, ctx, err := s.nonceStorage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return model.AuthChallenge{}, err
	}
	defer tx.Rollback(ctx)

	if err := s.nonceStorage.ReserveNonce(ctx, tx, challenge); err != nil {
		return model.AuthChallenge{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.AuthChallenge{}, err
	}
	return challenge, nil
}

func (s *_AuthService) VerifyChallengeResponse(ctx context.Context, ts int64, req VerifyChallengeRequest) (TokenResult, error) {
	if err := ValidateVerifyChallengeRequest(req); err != nil {
		return TokenResult{}, err
	}
	if req.Timestamp < ts-maxTimestampSkewSeconds || req.Timestamp > ts+maxTimestampSkewSeconds {
		return TokenResult{}, fmt.Errorf("response timestamp %d: %w", req.Timestamp, model.ErrTimestampOutOfWindow)
	}

	// Consume the nonce first. Whatever happens afterwards, the nonce is
	// spent and the same response can never be replayed.
	tx, ctx, err := s.nonceStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return TokenResult{}, err
	}
	defer tx.Rollback(ctx)

	challenge, err := s.nonceStorage.ConsumeNonce(ctx, tx, ts, req.Nonce)
	if err != nil {
		return TokenResult{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return TokenResult{}, err
	}

	if challenge.DID != req.DID {
		return TokenResult{}, fmt.Errorf("nonce is bound to another DID%w", model.ErrAuthorization)
	}

	if err := s.verifyResponseSignature(ctx, req); err != nil {
		return TokenResult{}, err
	}

	trustLevel, err := s.trustLevelOf(ctx, ts, req.DID)
	if err != nil {
		return TokenResult{}, err
	}

	return s.issueToken(ts, req.DID, trustLevel)
}

// verifyResponseSignature checks the response signature against every
// authentication key published in the DID document. One matching key is
// enough.
func (s *_AuthService) verifyResponseSignature(ctx context.Context, req VerifyChallengeRequest) error {
	doc, err := s.resolver.Resolve(ctx, req.DID)
	if err != nil {
		return fmt.Errorf("resolve %s: %s%w", req.DID, err.Error(), model.ErrDIDResolutionFailed)
	}

	keys, err := doc.AuthenticationKeys()
	if err != nil {
		return fmt.Errorf("resolve %s: %s%w", req.DID, err.Error(), model.ErrDIDResolutionFailed)
	}
	if len(keys) == 0 {
		return fmt.Errorf("DID document of %s has no authentication key%w", req.DID, model.ErrInvalidProofOfPossession)
	}

	message := ChallengeMessage(req.DID, req.Timestamp)
	for _, key := range keys {
		payload, err := envelope.VerifyCompact(req.Signature, envelope.AlgorithmForKey(key), key)
		if err == nil && string(payload) == string(message) {
			return nil
		}
	}
	return model.ErrInvalidProofOfPossession
}

// trustLevelOf returns the highest trust level among the DID's valid
// certificates, or the baseline level when none verifies.
func (s *_AuthService) trustLevelOf(ctx context.Context, ts int64, didStr string) (model.TrustLevel, error) {
	certs, err := s.ca.GetCertificatesByDID(ctx, didStr)
	if err != nil {
		return model.TrustLevelUntrusted, err
	}

	trustLevel := model.TrustLevelBasic
	for _, cert := range certs {
		if cert.Status != model.CertStatusActive || cert.TrustLevel <= trustLevel {
			continue
		}
		result, err := s.ca.VerifyCertificate(ctx, ts, cert.ID)
		if err != nil {
			return model.TrustLevelUntrusted, err
		}
		if result.Valid {
			trustLevel = result.TrustLevel
		}
	}
	return trustLevel, nil
}

func (s *_AuthService) issueToken(ts int64, didStr string, trustLevel model.TrustLevel) (TokenResult, error) {
	payload := model.TokenPayload{
		DID:          didStr,
		Nonce:        util.NewUUID(),
		TrustLevel:   trustLevel,
		Capabilities: trustLevel.Capabilities(),
		ExpiresAt:    ts + int64(s.tokenTTL.Seconds()),
	}

	token, err := jwt.NewBuilder().
		Issuer(s.issuer).
		Subject(payload.DID).
		JwtID(payload.Nonce).
		IssuedAt(time.Unix(ts, 0)).
		Expiration(time.Unix(payload.ExpiresAt, 0)).
		Claim(claimTrustLevel, payload.TrustLevel.String()).
		Claim(claimCapabilities, payload.Capabilities).
		Build()
	if err != nil {
		return TokenResult{}, err
	}

	pubKey, err := pkix.PublicKeyOf(s.signKey)
	if err != nil {
		return TokenResult{}, err
	}
	signed, err := jwt.Sign(token, jwt.WithKey(envelope.AlgorithmForKey(pubKey).ToJWA(), s.signKey))
	if err != nil {
		return TokenResult{}, err
	}

	return TokenResult{
		Token:     string(signed),
		Payload:   payload,
		ExpiresAt: payload.ExpiresAt,
	}, nil
}

func (s *_AuthService) VerifyToken(ctx context.Context, ts int64, token string) (model.TokenPayload, error) {
	pubKey, err := pkix.PublicKeyOf(s.signKey)
	if err != nil {
		return model.TokenPayload{}, err
	}

	parsed, err := jwt.Parse(
		[]byte(token),
		jwt.WithKey(envelope.AlgorithmForKey(pubKey).ToJWA(), pubKey),
		jwt.WithClock(jwt.ClockFunc(func() time.Time { return time.Unix(ts, 0) })),
		jwt.WithIssuer(s.issuer),
		jwt.WithValidate(true),
	)
	if err != nil {
		return model.TokenPayload{}, fmt.Errorf("%s%w", err.Error(), model.ErrTokenInvalid)
	}

	payload := model.TokenPayload{
		DID:       parsed.Subject(),
		Nonce:     parsed.JwtID(),
		ExpiresAt: parsed.Expiration().Unix(),
	}
	if levelName, ok := parsed.Get(claimTrustLevel); ok {
		levelStr, _ := levelName.(string)
		level, err := model.ParseTrustLevel(levelStr)
		if err != nil {
			return model.TokenPayload{}, fmt.Errorf("%s%w", err.Error(), model.ErrTokenInvalid)
		}
		payload.TrustLevel = level
	}
	if caps, ok := parsed.Get(claimCapabilities); ok {
		if capList, ok := caps.([]interface{}); ok {
			for _, c := range capList {
				if capStr, ok := c.(string); ok {
					payload.Capabilities = append(payload.Capabilities, capStr)
				}
			}
		}
	}
	return payload, nil
}

func (s *_AuthService) RemoveExpiredChallenges(ctx context.Context, ts int64) error {
	tx, ctx, err := s.nonceStorage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.nonceStorage.RemoveExpiredNonces(ctx, tx, ts); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
