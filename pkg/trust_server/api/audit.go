package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
)

func (s *RestServer) listAuditEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	offset, _ := strconv.Atoi(query.Get("offset"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit == 0 {
		limit = 10
	}
	from, _ := strconv.ParseInt(query.Get("from"), 10, 64)
	to, _ := strconv.ParseInt(query.Get("to"), 10, 64)

	req := storage.ListAuditEventsRequest{
		Offset:   offset,
		Limit:    limit,
		Resource: query.Get("resource"),
		From:     from,
		To:       to,
	}
	if source := query.Get("source"); source != "" {
		req.Sources = []string{source}
	}
	if action := query.Get("action"); action != "" {
		req.Actions = []string{action}
	}
	if actor := query.Get("actor"); actor != "" {
		req.Actors = []string{actor}
	}

	result, err := s.ledger.Query(ctx, req)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list audit events: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (s *RestServer) verifyAuditChain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := s.ledger.VerifyChainIntegrity(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to verify audit chain: %s", err.Error()), model.ErrToHttpStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}
