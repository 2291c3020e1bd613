package did_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenttrust/agenttrust/pkg/did"
)

func TestHTTPResolverResolve(t *testing.T) {
	const didStr = "did:agent:alice"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1.0/identifiers/"+url.PathEscape(didStr), r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "did:agent:alice",
			"verificationMethod": [
				{"id": "did:agent:alice#key-1", "type": "JsonWebKey2020", "controller": "did:agent:alice"}
			],
			"service": [
				{"id": "#tls", "type": "TLSCertificate", "certificateFingerprint": "sha256:abcd"}
			]
		}`))
	}))
	defer server.Close()

	resolver := did.NewHTTPResolver(server.URL, did.WithHTTPClient(server.Client()))
	doc, err := resolver.Resolve(context.Background(), didStr)
	require.NoError(t, err)
	assert.Equal(t, didStr, doc.ID)
	require.Len(t, doc.VerificationMethod, 1)
	assert.Equal(t, "did:agent:alice#key-1", doc.VerificationMethod[0].ID)
	assert.Equal(t, []string{"sha256:abcd"}, doc.TLSBindingFingerprints())
}

func TestHTTPResolverNotFound(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer server.Close()

	resolver := did.NewHTTPResolver(server.URL, did.WithHTTPClient(server.Client()))
	_, err := resolver.Resolve(context.Background(), "did:agent:ghost")
	require.ErrorIs(t, err, did.ErrDocumentNotFound)
	// A definitive not-found answer is not retried.
	assert.EqualValues(t, 1, calls.Load())
}

func TestHTTPResolverRetriesServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"id": "did:agent:alice"}`))
	}))
	defer server.Close()

	resolver := did.NewHTTPResolver(server.URL, did.WithHTTPClient(server.Client()))
	doc, err := resolver.Resolve(context.Background(), "did:agent:alice")
	require.NoError(t, err)
	assert.Equal(t, "did:agent:alice", doc.ID)
	assert.EqualValues(t, 3, calls.Load())
}

func TestHTTPResolverRejectsMalformedDID(t *testing.T) {
	resolver := did.NewHTTPResolver("http://localhost:1")
	_, err := resolver.Resolve(context.Background(), "not-a-did")
	assert.Error(t, err)
}
