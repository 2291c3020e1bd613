package auth_test

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/agenttrust/agenttrust/pkg/trust_server/auth"
	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/mtls"
	mock_auth "github.com/agenttrust/agenttrust/test/mock/trust_server/auth"
	mock_mtls "github.com/agenttrust/agenttrust/test/mock/trust_server/mtls"
)

type AuthenticatorTestSuite struct {
	suite.Suite

	ctx           context.Context
	ctrl          *gomock.Controller
	authService   *mock_auth.MockAuthService
	validator     *mock_mtls.MockValidator
	authenticator auth.Authenticator
}

func TestAuthenticator(t *testing.T) {
	suite.Run(t, new(AuthenticatorTestSuite))
}

func (s *AuthenticatorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.authService = mock_auth.NewMockAuthService(s.ctrl)
	s.validator = mock_mtls.NewMockValidator(s.ctrl)
	s.authenticator = auth.NewAuthenticator(
		auth.WithAuthService(s.authService),
		auth.WithMTLSValidator(s.validator),
	)
}

func (s *AuthenticatorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthenticatorTestSuite) TestAuthenticateRequestMTLS() {
	clientCert := &x509.Certificate{}
	req, err := http.NewRequest(http.MethodGet, "/whoami", nil)
	s.Require().NoError(err)
	req.TLS = &tls.ConnectionState{PeerCertificates: []*x509.Certificate{clientCert}}

	issued := model.Certificate{ID: "cert-1", SubjectDID: testDID, TrustLevel: model.TrustLevelVerified}
	gomock.InOrder(
		s.validator.EXPECT().ExtractClientCertificate(req.TLS).Return(clientCert, nil),
		s.validator.EXPECT().ValidateClientCertificate(gomock.Any(), testTS, clientCert).Return(
			mtls.ValidationResult{
				Valid:       true,
				DID:         testDID,
				CertID:      "cert-1",
				TrustLevel:  model.TrustLevelVerified,
				Certificate: &issued,
			}, nil,
		),
	)

	authCtx := s.authenticator.AuthenticateRequest(s.ctx, testTS, req)
	s.Assert().True(authCtx.Authenticated)
	s.Assert().Equal(model.AuthMethodMTLS, authCtx.AuthMethod)
	s.Assert().Equal(testDID, authCtx.DID)
	s.Assert().Equal(model.TrustLevelVerified, authCtx.TrustLevel)
	s.Assert().Equal(model.TrustLevelVerified.Capabilities(), authCtx.Capabilities)
	s.Require().NotNil(authCtx.Certificate)
	s.Assert().Equal(issued, *authCtx.Certificate)
}

func (s *AuthenticatorTestSuite) TestAuthenticateRequestFallsBackToBearer() {
	clientCert := &x509.Certificate{}
	req, err := http.NewRequest(http.MethodGet, "/whoami", nil)
	s.Require().NoError(err)
	req.TLS = &tls.ConnectionState{PeerCertificates: []*x509.Certificate{clientCert}}
	req.Header.Set("Authorization", "Bearer some-token")

	payload := model.TokenPayload{
		DID:          testDID,
		TrustLevel:   model.TrustLevelPremium,
		Capabilities: model.TrustLevelPremium.Capabilities(),
	}
	gomock.InOrder(
		s.validator.EXPECT().ExtractClientCertificate(req.TLS).Return(clientCert, nil),
		s.validator.EXPECT().ValidateClientCertificate(gomock.Any(), testTS, clientCert).Return(
			mtls.ValidationResult{Valid: false, Reason: "certificate is revoked"}, nil,
		),
		s.authService.EXPECT().VerifyToken(gomock.Any(), testTS, "some-token").Return(payload, nil),
	)

	authCtx := s.authenticator.AuthenticateRequest(s.ctx, testTS, req)
	s.Assert().True(authCtx.Authenticated)
	s.Assert().Equal(model.AuthMethodDIDJWT, authCtx.AuthMethod)
	s.Assert().Equal(testDID, authCtx.DID)
	s.Assert().Equal(model.TrustLevelPremium, authCtx.TrustLevel)
	s.Require().NotNil(authCtx.TokenPayload)
	s.Assert().Equal(payload, *authCtx.TokenPayload)
}

func (s *AuthenticatorTestSuite) TestAuthenticateRequestBearerOnly() {
	req, err := http.NewRequest(http.MethodGet, "/whoami", nil)
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer some-token")

	s.authService.EXPECT().VerifyToken(gomock.Any(), testTS, "some-token").Return(
		model.TokenPayload{DID: testDID, TrustLevel: model.TrustLevelBasic}, nil,
	)

	authCtx := s.authenticator.AuthenticateRequest(s.ctx, testTS, req)
	s.Assert().True(authCtx.Authenticated)
	s.Assert().Equal(model.AuthMethodDIDJWT, authCtx.AuthMethod)
}

func (s *AuthenticatorTestSuite) TestAuthenticateRequestUnauthenticated() {
	req, err := http.NewRequest(http.MethodGet, "/whoami", nil)
	s.Require().NoError(err)

	authCtx := s.authenticator.AuthenticateRequest(s.ctx, testTS, req)
	s.Assert().False(authCtx.Authenticated)
	s.Assert().Equal(model.AuthMethodNone, authCtx.AuthMethod)
}

func (s *AuthenticatorTestSuite) TestAuthenticateRequestRejectedToken() {
	req, err := http.NewRequest(http.MethodGet, "/whoami", nil)
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer bad-token")

	s.authService.EXPECT().VerifyToken(gomock.Any(), testTS, "bad-token").Return(
		model.TokenPayload{}, model.ErrTokenInvalid,
	)

	authCtx := s.authenticator.AuthenticateRequest(s.ctx, testTS, req)
	s.Assert().False(authCtx.Authenticated)
	s.Assert().Equal(model.AuthMethodNone, authCtx.AuthMethod)
}

func (s *AuthenticatorTestSuite) TestIsAuthorized() {
	verified := model.AuthContext{
		Authenticated: true,
		AuthMethod:    model.AuthMethodDIDJWT,
		DID:           testDID,
		TrustLevel:    model.TrustLevelVerified,
		Capabilities:  model.TrustLevelVerified.Capabilities(),
	}
	unauthenticated := model.AuthContext{AuthMethod: model.AuthMethodNone}

	s.Assert().True(s.authenticator.IsAuthorized(verified, model.TrustLevelBasic))
	s.Assert().True(s.authenticator.IsAuthorized(verified, model.TrustLevelVerified))
	s.Assert().False(s.authenticator.IsAuthorized(verified, model.TrustLevelEnterprise))

	for _, capability := range model.TrustLevelVerified.Capabilities() {
		s.Assert().True(s.authenticator.IsAuthorized(verified, model.TrustLevelVerified, capability))
	}
	s.Assert().False(s.authenticator.IsAuthorized(verified, model.TrustLevelVerified, "no-such-capability"))

	// An unauthenticated context never passes, even with nothing required.
	s.Assert().False(s.authenticator.IsAuthorized(unauthenticated, model.TrustLevelUntrusted))
	s.Assert().False(s.authenticator.IsAuthorized(unauthenticated, model.TrustLevelBasic))
	s.Assert().False(s.authenticator.IsAuthorized(unauthenticated, model.TrustLevelUntrusted, "any-capability"))
}
