// Package audit implements the hash-chained, append-only ledger every
// security relevant decision of the trust server is recorded in.
package audit

import (
	"context"
	"crypto"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	otlp_util "github.com/bluexlab/otlp-util-go"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/metric"

	"github.com/agenttrust/agenttrust/pkg/envelope"
	"github.com/agenttrust/agenttrust/pkg/trust_server/archive"
	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
	"github.com/agenttrust/agenttrust/pkg/util"
)

type Ledger interface {
	// Append records a new event at the head of the chain.
	Append(ctx context.Context, ts int64, req AppendRequest) (model.AuditEvent, error)

	// AppendTx records a new event inside the caller's transaction. The
	// transaction must be a serializable write transaction; the event becomes
	// visible if and only if the caller commits.
	AppendTx(ctx context.Context, tx storage.Tx, ts int64, req AppendRequest) (model.AuditEvent, error)

	Query(ctx context.Context, req storage.ListAuditEventsRequest) (storage.ListAuditEventsResponse, error)
	GetLastEvent(ctx context.Context) (model.AuditEvent, error)

	// VerifyChainIntegrity walks the chain in insertion order and stops at
	// the first event that disagrees with its predecessor.
	VerifyChainIntegrity(ctx context.Context) (IntegrityResult, error)

	// MirrorUnarchived pushes events without an archive locator to the
	// content-addressed archive. No-op when no archiver is configured.
	MirrorUnarchived(ctx context.Context, batchSize int) (int, error)
}

type AppendRequest struct {
	Source   string            `json:"source"`   // Component recording the event.
	Action   string            `json:"action"`   // What happened.
	Resource string            `json:"resource"` // Affected resource.
	Actor    string            `json:"actor"`    // Who triggered the event.
	Details  map[string]string `json:"details"`  // Event specific key/value pairs.
}

// IntegrityResult is the outcome of a chain verification.
type IntegrityResult struct {
	Valid           bool   `json:"valid"`
	BrokenAtEventID string `json:"broken_at_event_id,omitempty"` // ID of the first event breaking the chain.
	CheckedEvents   int64  `json:"checked_events"`
}

type _Ledger struct {
	auditStorage storage.AuditStorage
	archiver     archive.Archiver

	signKey       any               // Private key signing each event, optional.
	signAlgorithm envelope.SignatureAlgorithm
	encryptKey    crypto.PublicKey    // Public key sensitive detail values are encrypted for, optional.
	sensitiveKeys map[string]struct{} // Detail keys encrypted before persistence.

	appendCount      metric.Int64Counter
	archiveFailCount metric.Int64Counter
}

type LedgerOption func(*_Ledger)

func WithAuditStorage(auditStorage storage.AuditStorage) LedgerOption {
	return func(l *_Ledger) {
		l.auditStorage = auditStorage
	}
}

func WithArchiver(archiver archive.Archiver) LedgerOption {
	return func(l *_Ledger) {
		l.archiver = archiver
	}
}

func WithSigningKey(key any, algorithm envelope.SignatureAlgorithm) LedgerOption {
	return func(l *_Ledger) {
		l.signKey = key
		l.signAlgorithm = algorithm
	}
}

func WithDetailEncryption(publicKey crypto.PublicKey, sensitiveKeys ...string) LedgerOption {
	return func(l *_Ledger) {
		l.encryptKey = publicKey
		l.sensitiveKeys = make(map[string]struct{}, len(sensitiveKeys))
		for _, key := range sensitiveKeys {
			l.sensitiveKeys[key] = struct{}{}
		}
	}
}

func NewLedger(opts ...LedgerOption) *_Ledger {
	ledger := &_Ledger{}
	for _, opt := range opts {
		opt(ledger)
	}

	if ledger.auditStorage == nil {
		panic("auditStorage is required")
	}

	ledger.appendCount = otlp_util.NewInt64Counter(
		"trust.audit.append.count",
		metric.WithDescription("The total number of events appended to the audit ledger"),
	)
	ledger.archiveFailCount = otlp_util.NewInt64Counter(
		"trust.audit.archive.fail.count",
		metric.WithDescription("The total number of failed archive mirror attempts"),
	)
	return ledger
}

func (l *_Ledger) Append(ctx context.Context, ts int64, req AppendRequest) (model.AuditEvent, error) {
	if err := ValidateAppendRequest(req); err != nil {
		return model.AuditEvent{}, err
	}

	tx, ctx, err := l.auditStorage.CreateTx(ctx, storage.TxOptionWithWrite(true), storage.TxOptionWithIsolationLevel(sql.LevelSerializable))
	if err != nil {
		return model.AuditEvent{}, err
	}
	defer tx.Rollback(ctx)

	event, err := l.appendWithTx(ctx, tx, ts, req)
	if err != nil {
		return model.AuditEvent{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return model.AuditEvent{}, err
	}

	l.appendCount.Add(ctx, 1)
	l.mirrorEvent(ctx, event)
	return event, nil
}

func (l *_Ledger) AppendTx(ctx context.Context, tx storage.Tx, ts int64, req AppendRequest) (model.AuditEvent, error) {
	if err := ValidateAppendRequest(req); err != nil {
		return model.AuditEvent{}, err
	}

	event, err := l.appendWithTx(ctx, tx, ts, req)
	if err != nil {
		return model.AuditEvent{}, err
	}
	l.appendCount.Add(ctx, 1)
	return event, nil
}

// appendWithTx is the single-writer critical section: reading the last hash
// and inserting the next event happen under one serializable transaction.
func (l *_Ledger) appendWithTx(ctx context.Context, tx storage.Tx, ts int64, req AppendRequest) (model.AuditEvent, error) {
	previousHash := model.AuditGenesisHash
	lastEvent, err := l.auditStorage.GetLastEvent(ctx, tx)
	if err == nil {
		previousHash = lastEvent.Hash
	} else if !errors.Is(err, model.ErrAuditEventNotFound) {
		return model.AuditEvent{}, err
	}

	details, err := l.sealDetails(req.Details)
	if err != nil {
		return model.AuditEvent{}, err
	}

	event := model.AuditEvent{
		ID:           util.NewUUID(),
		Timestamp:    ts,
		Source:       req.Source,
		Action:       req.Action,
		Resource:     req.Resource,
		Actor:        req.Actor,
		Details:      details,
		PreviousHash: previousHash,
	}

	body, err := event.CanonicalBody()
	if err != nil {
		return model.AuditEvent{}, err
	}
	event.Hash = envelope.SHA512(body)

	if l.signKey != nil {
		signature, err := envelope.SignDetached(body, l.signAlgorithm, l.signKey)
		if err != nil {
			return model.AuditEvent{}, err
		}
		event.Signature = signature
	}

	if err := l.auditStorage.AppendEvent(ctx, tx, event); err != nil {
		return model.AuditEvent{}, err
	}
	return event, nil
}

// sealDetails encrypts the values of sensitive detail keys. The chain hash is
// computed after sealing, so writer and verifier always hash the stored
// representation.
func (l *_Ledger) sealDetails(details map[string]string) (map[string]string, error) {
	if len(details) == 0 {
		return nil, nil
	}

	sealed := make(map[string]string, len(details))
	for key, value := range details {
		if _, sensitive := l.sensitiveKeys[key]; !sensitive || l.encryptKey == nil {
			sealed[key] = value
			continue
		}

		encrypted, err := envelope.EncryptForKey([]byte(value), l.encryptKey)
		if err != nil {
			return nil, fmt.Errorf("encrypt audit detail %q: %w", key, err)
		}
		raw, err := json.Marshal(encrypted)
		if err != nil {
			return nil, err
		}
		sealed[key] = string(raw)
	}
	return sealed, nil
}

func (l *_Ledger) Query(ctx context.Context, req storage.ListAuditEventsRequest) (storage.ListAuditEventsResponse, error) {
	if err := ValidateListAuditEventsRequest(req); err != nil {
		return storage.ListAuditEventsResponse{}, err
	}

	tx, ctx, err := l.auditStorage.CreateTx(ctx)
	if err != nil {
		return storage.ListAuditEventsResponse{}, err
	}
	defer tx.Rollback(ctx)

	return l.auditStorage.ListEvents(ctx, tx, req)
}

func (l *_Ledger) GetLastEvent(ctx context.Context) (model.AuditEvent, error) {
	tx, ctx, err := l.auditStorage.CreateTx(ctx)
	if err != nil {
		return model.AuditEvent{}, err
	}
	defer tx.Rollback(ctx)

	return l.auditStorage.GetLastEvent(ctx, tx)
}

func (l *_Ledger) VerifyChainIntegrity(ctx context.Context) (IntegrityResult, error) {
	tx, ctx, err := l.auditStorage.CreateTx(ctx, storage.TxOptionWithIsolationLevel(sql.LevelRepeatableRead))
	if err != nil {
		return IntegrityResult{}, err
	}
	defer tx.Rollback(ctx)

	result := IntegrityResult{Valid: true}
	expectedPrevious := model.AuditGenesisHash

	req := storage.ListAuditEventsRequest{Limit: 500, Ascending: true}
	for {
		page, err := l.auditStorage.ListEvents(ctx, tx, req)
		if err != nil {
			return IntegrityResult{}, err
		}
		if len(page.Events) == 0 {
			break
		}

		for _, event := range page.Events {
			if broken := verifyEvent(event, expectedPrevious); broken {
				result.Valid = false
				result.BrokenAtEventID = event.ID
				return result, nil
			}
			expectedPrevious = event.Hash
			result.CheckedEvents++
		}

		req.Offset += len(page.Events)
		if int64(req.Offset) >= page.Total {
			break
		}
	}

	return result, nil
}

// verifyEvent reports whether the event breaks the chain: either its stored
// previous_hash disagrees with its predecessor, or its stored hash disagrees
// with its own canonical body.
func verifyEvent(event model.AuditEvent, expectedPrevious string) bool {
	if event.PreviousHash != expectedPrevious {
		return true
	}
	body, err := event.CanonicalBody()
	if err != nil {
		return true
	}
	return event.Hash != envelope.SHA512(body)
}

func (l *_Ledger) MirrorUnarchived(ctx context.Context, batchSize int) (int, error) {
	if l.archiver == nil {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	mirrored := 0
	req := storage.ListAuditEventsRequest{Limit: batchSize, Ascending: true}
	for {
		tx, txCtx, err := l.auditStorage.CreateTx(ctx)
		if err != nil {
			return mirrored, err
		}
		page, err := l.auditStorage.ListEvents(txCtx, tx, req)
		tx.Rollback(txCtx)
		if err != nil {
			return mirrored, err
		}
		if len(page.Events) == 0 {
			break
		}

		for _, event := range page.Events {
			if event.ArchiveLocator != "" {
				continue
			}
			if l.mirrorEvent(ctx, event) {
				mirrored++
			}
		}

		req.Offset += len(page.Events)
		if int64(req.Offset) >= page.Total {
			break
		}
	}

	return mirrored, nil
}

// mirrorEvent pushes the stored representation of the event to the archive.
// Failures are logged and swallowed; archival never fails an append.
func (l *_Ledger) mirrorEvent(ctx context.Context, event model.AuditEvent) bool {
	if l.archiver == nil {
		return false
	}

	raw, err := json.Marshal(event)
	if err != nil {
		logrus.Errorf("audit: fail to marshal event %s for archive: %v", event.ID, err)
		l.archiveFailCount.Add(ctx, 1)
		return false
	}

	locator, err := l.archiver.Put(ctx, raw)
	if err != nil {
		logrus.Warnf("audit: fail to archive event %s: %v", event.ID, err)
		l.archiveFailCount.Add(ctx, 1)
		return false
	}

	tx, txCtx, err := l.auditStorage.CreateTx(ctx, storage.TxOptionWithWrite(true))
	if err != nil {
		logrus.Warnf("audit: fail to record archive locator of event %s: %v", event.ID, err)
		return false
	}
	defer tx.Rollback(txCtx)

	if err := l.auditStorage.SetArchiveLocator(txCtx, tx, event.ID, locator); err != nil {
		logrus.Warnf("audit: fail to record archive locator of event %s: %v", event.ID, err)
		return false
	}
	if err := tx.Commit(txCtx); err != nil {
		logrus.Warnf("audit: fail to record archive locator of event %s: %v", event.ID, err)
		return false
	}
	return true
}
