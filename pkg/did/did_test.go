package did_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenttrust/agenttrust/pkg/did"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		valid  bool
		method string
		id     string
	}{
		{"web method", "did:web:example.com", true, "web", "example.com"},
		{"key method", "did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK", true, "key", "z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK"},
		{"multi segment id", "did:web:example.com:user:alice", true, "web", "example.com:user:alice"},
		{"percent encoding", "did:web:example.com%3A8443", true, "web", "example.com%3A8443"},
		{"missing scheme", "web:example.com", false, "", ""},
		{"missing id", "did:web:", false, "", ""},
		{"missing method", "did::abc", false, "", ""},
		{"uppercase method", "did:WEB:example.com", false, "", ""},
		{"empty", "", false, "", ""},
		{"spaces", "did:web:exa mple", false, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := did.Parse(tc.input)
			if !tc.valid {
				assert.ErrorIs(t, err, did.ErrInvalidDID)
				assert.False(t, did.IsValid(tc.input))
				return
			}
			require.NoError(t, err)
			assert.True(t, did.IsValid(tc.input))
			assert.Equal(t, tc.method, d.Method())
			assert.Equal(t, tc.id, d.ID())
			assert.Equal(t, tc.input, d.String())
		})
	}
}

func TestNewDID(t *testing.T) {
	d := did.NewDID("agent", "alice")
	assert.Equal(t, "did:agent:alice", d.String())
	assert.False(t, d.IsEmpty())

	assert.True(t, did.DID{}.IsEmpty())
	assert.Equal(t, "", did.DID{}.String())
}

func TestHasScheme(t *testing.T) {
	assert.True(t, did.HasScheme("did:web:example.com"))
	assert.False(t, did.HasScheme("https://example.com"))
}

func TestDIDJSON(t *testing.T) {
	d := did.MustParse("did:agent:alice")

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"did:agent:alice"`, string(raw))

	var parsed did.DID
	require.NoError(t, json.Unmarshal(raw, &parsed))
	assert.Equal(t, d, parsed)

	assert.Error(t, json.Unmarshal([]byte(`"not-a-did"`), &parsed))
}
