package postgres

import (
	"context"
	"errors"

	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
	"github.com/jackc/pgx/v5"
)

func (s *_Storage) AppendEvent(ctx context.Context, tx storage.Tx, event model.AuditEvent) error {
	query := `
INSERT INTO audit_event (id, ts, source, action, resource, actor, "event")
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := tx.Exec(
		ctx,
		query,
		event.ID,
		event.Timestamp,
		event.Source,
		event.Action,
		event.Resource,
		event.Actor,
		event,
	)
	if err != nil {
		return err
	}
	return nil
}

func (s *_Storage) GetLastEvent(ctx context.Context, tx storage.Tx) (model.AuditEvent, error) {
	query := `SELECT "event" FROM audit_event ORDER BY rec_id DESC LIMIT 1`

	event := model.AuditEvent{}
	err := tx.QueryRow(ctx, query).Scan(&event)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.AuditEvent{}, model.ErrAuditEventNotFound
	} else if err != nil {
		return model.AuditEvent{}, err
	}
	return event, nil
}

func (s *_Storage) ListEvents(ctx context.Context, tx storage.Tx, req storage.ListAuditEventsRequest) (storage.ListAuditEventsResponse, error) {
	query := `
WITH filtered AS (
	SELECT rec_id, ts, "event" FROM audit_event
	WHERE
		(COALESCE(ARRAY_LENGTH($3::TEXT[], 1), 0) = 0 OR source = ANY($3)) AND
		(COALESCE(ARRAY_LENGTH($4::TEXT[], 1), 0) = 0 OR action = ANY($4)) AND
		(COALESCE(ARRAY_LENGTH($5::TEXT[], 1), 0) = 0 OR actor = ANY($5)) AND
		($6 = '' OR resource = $6) AND
		($7 = 0 OR ts >= $7) AND
		($8 = 0 OR ts <= $8)
)
, paged AS (
	SELECT "event" FROM filtered
	ORDER BY
		CASE WHEN $9 THEN rec_id END ASC,
		ts DESC, rec_id DESC
	OFFSET $1 LIMIT $2
)
, total AS (
	SELECT COUNT(*) AS total FROM filtered
)
SELECT total, "event" FROM paged FULL JOIN total ON FALSE
`
	rows, err := tx.Query(
		ctx,
		query,
		req.Offset,
		req.Limit,
		req.Sources,
		req.Actions,
		req.Actors,
		req.Resource,
		req.From,
		req.To,
		req.Ascending,
	)
	if err != nil {
		return storage.ListAuditEventsResponse{}, err
	}
	defer rows.Close()

	result := storage.ListAuditEventsResponse{}
	for rows.Next() {
		var total *int64
		var event *model.AuditEvent
		if err := rows.Scan(&total, &event); err != nil {
			return storage.ListAuditEventsResponse{}, err
		}
		if total != nil {
			result.Total = *total
		}
		if event != nil {
			result.Events = append(result.Events, *event)
		}
	}
	if err := rows.Err(); err != nil {
		return storage.ListAuditEventsResponse{}, err
	}

	return result, nil
}

func (s *_Storage) SetArchiveLocator(ctx context.Context, tx storage.Tx, eventID string, locator string) error {
	query := `
UPDATE audit_event
SET "event" = jsonb_set("event", '{archive_locator}', to_jsonb($2::TEXT))
WHERE id = $1
`
	result, err := tx.Exec(ctx, query, eventID, locator)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrAuditEventNotFound
	}
	return nil
}
