package storage

import (
	"context"
	"database/sql"

	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
)

type StorageContextKey string

const (
	TRANSACTION StorageContextKey = "transaction"
)

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (Result, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type Row interface {
	Scan(dest ...any) error
}

type Result interface {
	// RowsAffected returns the number of rows affected by an
	// update, insert, or delete. Not every database or database
	// driver may support this.
	RowsAffected() (int64, error)
}

type CreateTxOption func(*sql.TxOptions)

type TransactionInterface interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)
}

func TxOptionWithWrite(write bool) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.ReadOnly = !write
	}
}

func TxOptionWithIsolationLevel(level sql.IsolationLevel) CreateTxOption {
	return func(option *sql.TxOptions) {
		option.Isolation = level
	}
}

// ListCertificatesRequest is the request to list certificates.
type ListCertificatesRequest struct {
	Offset int `json:"offset"` // Offset of the certificates to be listed.
	Limit  int `json:"limit"`  // Limit of the certificates to be listed.

	// Filters
	IDs         []string           `json:"ids"`          // Unique IDs of the certificates.
	SubjectDIDs []string           `json:"subject_dids"` // Subject DIDs of the certificates.
	Statuses    []model.CertStatus `json:"statuses"`     // Statuses of the certificates.
	Types       []model.CertType   `json:"types"`        // Types of the certificates.
	PublicKeys  []string           `json:"public_keys"`  // PEM encoded public keys of the certificates.
}

// ListCertificatesResponse is the response of listing certificates.
type ListCertificatesResponse struct {
	Total int64               `json:"total"` // Total number of certificates matching the filters.
	Certs []model.Certificate `json:"certs"` // Certificates of the page.
}

type CertStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)

	// AddCertificate inserts or replaces a certificate record and appends the
	// record to the certificate history.
	AddCertificate(ctx context.Context, tx Tx, cert model.Certificate) error
	ListCertificates(ctx context.Context, tx Tx, req ListCertificatesRequest) (ListCertificatesResponse, error)

	// GetRevocationList returns the stored revocation list of the issuer, or
	// an empty list if the issuer never revoked a certificate.
	GetRevocationList(ctx context.Context, tx Tx, issuerDID string) (model.RevocationList, error)
	PutRevocationList(ctx context.Context, tx Tx, list model.RevocationList) error
}

// ListAuditEventsRequest is the request to list audit events.
type ListAuditEventsRequest struct {
	Offset int `json:"offset"` // Offset of the events to be listed.
	Limit  int `json:"limit"`  // Limit of the events to be listed.

	// Filters
	Sources   []string `json:"sources"`   // Components that recorded the events.
	Actions   []string `json:"actions"`   // Actions of the events.
	Actors    []string `json:"actors"`    // Actors of the events.
	Resource  string   `json:"resource"`  // Affected resource of the events.
	From      int64    `json:"from"`      // Unix Time (in second) lower bound, inclusive.
	To        int64    `json:"to"`        // Unix Time (in second) upper bound, inclusive.
	Ascending bool     `json:"ascending"` // Insertion order instead of the display order (timestamp descending).
}

// ListAuditEventsResponse is the response of listing audit events.
type ListAuditEventsResponse struct {
	Total  int64              `json:"total"`  // Total number of events matching the filters.
	Events []model.AuditEvent `json:"events"` // Events of the page.
}

type AuditStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)

	// AppendEvent stores the event. The caller must hold a serializable write
	// transaction spanning GetLastEvent and AppendEvent, otherwise two
	// concurrent appends can fork the chain.
	AppendEvent(ctx context.Context, tx Tx, event model.AuditEvent) error

	// GetLastEvent returns the most recently appended event. Returns
	// model.ErrAuditEventNotFound when the ledger is empty.
	GetLastEvent(ctx context.Context, tx Tx) (model.AuditEvent, error)
	ListEvents(ctx context.Context, tx Tx, req ListAuditEventsRequest) (ListAuditEventsResponse, error)

	// SetArchiveLocator records the archive locator of an already stored
	// event. The locator is outside the hashed body, so this does not touch
	// the chain.
	SetArchiveLocator(ctx context.Context, tx Tx, eventID string, locator string) error
}

type NonceStorage interface {
	CreateTx(ctx context.Context, options ...CreateTxOption) (Tx, context.Context, error)

	// ReserveNonce stores a nonce bound to a DID. Returns
	// model.ErrNonceConsumed when the nonce already exists.
	ReserveNonce(ctx context.Context, tx Tx, challenge model.AuthChallenge) error

	// ConsumeNonce atomically consumes a reserved nonce. Returns the
	// challenge it was reserved with, model.ErrNonceConsumed when it was
	// already consumed, or model.ErrNonceNotFound when it is unknown or
	// expired at ts.
	ConsumeNonce(ctx context.Context, tx Tx, ts int64, nonce string) (model.AuthChallenge, error)

	// RemoveExpiredNonces deletes nonces expired before ts. This should be
	// called periodically to keep the table from growing unbounded.
	RemoveExpiredNonces(ctx context.Context, tx Tx, ts int64) error
}
