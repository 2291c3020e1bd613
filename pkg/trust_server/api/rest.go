// Package api exposes the trust server over REST. The public server carries
// read endpoints and the authentication handshake; the private server adds
// certificate issuance, revocation and audit access.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/agenttrust/agenttrust/pkg/did"
	"github.com/agenttrust/agenttrust/pkg/pkix"
	"github.com/agenttrust/agenttrust/pkg/trust_server/archive"
	"github.com/agenttrust/agenttrust/pkg/trust_server/audit"
	"github.com/agenttrust/agenttrust/pkg/trust_server/auth"
	"github.com/agenttrust/agenttrust/pkg/trust_server/cert_authority"
	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/mtls"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage/postgres"
	"github.com/agenttrust/agenttrust/pkg/util"
)

type ContextKey string

const (
	REQUESTER_HEADER      = "X-Requester"
	REQUESTER_CONTEXT_KEY = ContextKey("requester")

	nonceGCInterval = 10 * time.Minute
)

type RestServerConfig struct {
	Database             util.PostgresDatabaseConfig `yaml:"database"`
	PrivateServerAddress string                      `yaml:"private_server_address"`
	PublicServerAddress  string                      `yaml:"public_server_address"`

	DIDResolverURL   string  `yaml:"did_resolver_url"`
	ArchiveBucketURL string  `yaml:"archive_bucket_url"` // Optional blob bucket for audit mirroring.
	TokenKeyFile     string  `yaml:"token_key_file"`     // PEM private key for bearer tokens.
	TokenIssuer      string  `yaml:"token_issuer"`
	CADID            string  `yaml:"ca_did"`
	ChallengeRate    float64 `yaml:"challenge_rate"` // Challenge requests per second, 0 for no limit.
}

type RestServer struct {
	ca            cert_authority.CertAuthority
	ledger        audit.Ledger
	authService   auth.AuthService
	authenticator auth.Authenticator

	privateHttpServer *http.Server
	publicHttpServer  *http.Server
	closed            chan struct{}
	closeOnce         sync.Once
}

func ExtractRequester(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requester := r.Header.Get(REQUESTER_HEADER)
		ctx = context.WithValue(ctx, REQUESTER_CONTEXT_KEY, requester)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func NewRestServerWithConfig(ctx context.Context, config RestServerConfig) (*RestServer, error) {
	trustStorage, err := postgres.NewStorageWithConfig(config.Database)
	if err != nil {
		return nil, err
	}

	ledgerOptions := []audit.LedgerOption{audit.WithAuditStorage(trustStorage)}
	if config.ArchiveBucketURL != "" {
		archiver, err := archive.OpenBlobArchiver(ctx, config.ArchiveBucketURL)
		if err != nil {
			return nil, err
		}
		ledgerOptions = append(ledgerOptions, audit.WithArchiver(archiver))
	}
	ledger := audit.NewLedger(ledgerOptions...)

	ca := cert_authority.NewCertAuthority(
		cert_authority.WithCertStorage(trustStorage),
		cert_authority.WithLedger(ledger),
		cert_authority.WithCADID(config.CADID),
	)

	resolver := did.NewHTTPResolver(config.DIDResolverURL)
	validator := mtls.NewValidator(
		mtls.WithCertAuthority(ca),
		mtls.WithDIDResolver(resolver),
	)

	tokenKey, err := loadOrCreateTokenKey(config.TokenKeyFile)
	if err != nil {
		return nil, err
	}
	issuer := config.TokenIssuer
	if issuer == "" {
		issuer = "agenttrust"
	}
	authService := auth.NewAuthService(
		auth.WithNonceStorage(trustStorage),
		auth.WithCertAuthority(ca),
		auth.WithDIDResolver(resolver),
		auth.WithSigningKey(tokenKey, issuer),
	)
	authenticator := auth.NewAuthenticator(
		auth.WithAuthService(authService),
		auth.WithMTLSValidator(validator),
	)

	return NewRestServerWithController(
		ca, ledger, authService, authenticator,
		config.PrivateServerAddress, config.PublicServerAddress,
		config.ChallengeRate,
	), nil
}

func NewRestServerWithController(
	ca cert_authority.CertAuthority,
	ledger audit.Ledger,
	authService auth.AuthService,
	authenticator auth.Authenticator,
	privateAddress, publicAddress string,
	challengeRate float64,
) *RestServer {
	restServer := &RestServer{
		ca:            ca,
		ledger:        ledger,
		authService:   authService,
		authenticator: authenticator,
		closed:        make(chan struct{}),
	}

	challengeLimit := RateLimit(challengeRate)

	registerPublicEndpoints := func(r *mux.Router) {
		r.HandleFunc("/ca_cert", restServer.getCACert).Methods(http.MethodGet)
		r.HandleFunc("/cert", restServer.listCert).Methods(http.MethodGet)
		r.HandleFunc("/cert/{id}", restServer.getCert).Methods(http.MethodGet)
		r.HandleFunc("/cert/{id}/verify", restServer.verifyCert).Methods(http.MethodPost)
		r.HandleFunc("/revocation_list", restServer.getRevocationList).Methods(http.MethodGet)
		r.Handle("/auth/challenge", challengeLimit(http.HandlerFunc(restServer.createChallenge))).Methods(http.MethodPost)
		r.HandleFunc("/auth/token", restServer.verifyChallenge).Methods(http.MethodPost)
		r.HandleFunc("/whoami", restServer.whoami).Methods(http.MethodGet)
	}

	privateRouter := mux.NewRouter()
	privateRouter.Use(Log, ExtractRequester)
	privateRouter.HandleFunc("/cert", restServer.issueCert).Methods(http.MethodPost)
	privateRouter.HandleFunc("/cert/{id}", restServer.revokeCert).Methods(http.MethodDelete)
	privateRouter.HandleFunc("/audit_event", restServer.listAuditEvents).Methods(http.MethodGet)
	privateRouter.HandleFunc("/audit_event/verify", restServer.verifyAuditChain).Methods(http.MethodPost)
	registerPublicEndpoints(privateRouter)

	publicRouter := mux.NewRouter()
	publicRouter.Use(Log, ExtractRequester)
	registerPublicEndpoints(publicRouter)

	if privateAddress != "" {
		restServer.privateHttpServer = &http.Server{
			Addr:    privateAddress,
			Handler: privateRouter,
		}
	}
	if publicAddress != "" {
		restServer.publicHttpServer = &http.Server{
			Addr:    publicAddress,
			Handler: publicRouter,
		}
	}

	return restServer
}

func (s *RestServer) Run() error {
	if s.privateHttpServer == nil && s.publicHttpServer == nil {
		return errors.New("no server to run")
	}

	if err := s.ca.Bootstrap(context.Background(), time.Now().Unix()); err != nil {
		return err
	}
	go s.nonceGCLoop()

	var privateServerErr error
	var publicServerErr error
	wg := sync.WaitGroup{}

	if s.privateHttpServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.privateHttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				privateServerErr = err
			}
		}()
	}
	if s.publicHttpServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.publicHttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				publicServerErr = err
			}
		}()
	}

	wg.Wait()
	if privateServerErr != nil {
		return privateServerErr
	}
	if publicServerErr != nil {
		return publicServerErr
	}
	return nil
}

func (s *RestServer) nonceGCLoop() {
	ticker := time.NewTicker(nonceGCInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.closed:
			return
		case now := <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := s.authService.RemoveExpiredChallenges(ctx, now.Unix()); err != nil {
				logrus.Errorf("remove expired challenges: %v", err)
			}
			cancel()
		}
	}
}

func (s *RestServer) Close(ctx context.Context) error {
	s.closeOnce.Do(func() { close(s.closed) })

	var serverErr error
	wg := sync.WaitGroup{}
	if s.privateHttpServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.privateHttpServer.SetKeepAlivesEnabled(false)
			if err := s.privateHttpServer.Shutdown(ctx); err != nil {
				serverErr = err
			}
		}()
	}
	if s.publicHttpServer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.publicHttpServer.SetKeepAlivesEnabled(false)
			if err := s.publicHttpServer.Shutdown(ctx); err != nil {
				serverErr = err
			}
		}()
	}

	wg.Wait()
	return serverErr
}

func (s *RestServer) getCACert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cert, err := s.ca.GetCACertificate(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get CA certificate: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(cert)
}

func (s *RestServer) listCert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit == 0 {
		limit = 10
	}
	req := storage.ListCertificatesRequest{
		Offset: offset,
		Limit:  limit,
		Types:  []model.CertType{model.IdentityCert},
	}
	if subjectDID := r.URL.Query().Get("did"); subjectDID != "" {
		req.SubjectDIDs = []string{subjectDID}
	}

	result, err := s.ca.ListCertificates(ctx, req)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list certificates: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (s *RestServer) getCert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	certID := mux.Vars(r)["id"]

	cert, err := s.ca.GetCertificate(ctx, certID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get certificate: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(cert)
}

func (s *RestServer) verifyCert(w http.ResponseWriter, r *http.Request) {
	ts := time.Now().Unix()
	ctx := r.Context()
	certID := mux.Vars(r)["id"]

	result, err := s.ca.VerifyCertificate(ctx, ts, certID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to verify certificate: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (s *RestServer) getRevocationList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := s.ca.GetRevocationList(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to get revocation list: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(list)
}

func (s *RestServer) issueCert(w http.ResponseWriter, r *http.Request) {
	ts := time.Now().Unix()
	ctx := r.Context()
	requester, _ := ctx.Value(REQUESTER_CONTEXT_KEY).(string)

	req := cert_authority.IssueCertificateRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %s", err.Error()), http.StatusBadRequest)
		return
	}
	req.Requester = requester

	cert, err := s.ca.IssueCertificate(ctx, ts, req)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to issue certificate: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cert)
}

func (s *RestServer) revokeCert(w http.ResponseWriter, r *http.Request) {
	ts := time.Now().Unix()
	ctx := r.Context()
	certID := mux.Vars(r)["id"]

	req := cert_authority.RevokeCertificateRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %s", err.Error()), http.StatusBadRequest)
		return
	}
	req.CertID = certID

	cert, err := s.ca.RevokeCertificate(ctx, ts, req)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to revoke certificate: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(cert)
}

func (s *RestServer) whoami(w http.ResponseWriter, r *http.Request) {
	ts := time.Now().Unix()
	ctx := r.Context()

	authCtx := s.authenticator.AuthenticateRequest(ctx, ts, r)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(authCtx)
}

func loadOrCreateTokenKey(keyFile string) (any, error) {
	if keyFile == "" {
		return pkix.CreatePrivateKey(pkix.PrivateKeyOption{
			KeyType:   pkix.PrivateKeyTypeECDSA,
			CurveType: pkix.ECDSACurveTypeP256,
		})
	}

	raw, err := os.ReadFile(keyFile)
	if err == nil {
		return pkix.ParsePrivateKey(raw)
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	key, err := pkix.CreatePrivateKey(pkix.PrivateKeyOption{
		KeyType:   pkix.PrivateKeyTypeECDSA,
		CurveType: pkix.ECDSACurveTypeP256,
	})
	if err != nil {
		return nil, err
	}
	pem, err := pkix.MarshalPrivateKey(key)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(keyFile, []byte(pem), 0600); err != nil {
		return nil, err
	}
	return key, nil
}
