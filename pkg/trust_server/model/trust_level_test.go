package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
)

func TestTrustLevelOrdering(t *testing.T) {
	testCases := []struct {
		name     string
		subject  model.TrustLevel
		required model.TrustLevel
		expected bool
	}{
		{"untrusted satisfies untrusted", model.TrustLevelUntrusted, model.TrustLevelUntrusted, true},
		{"untrusted fails basic", model.TrustLevelUntrusted, model.TrustLevelBasic, false},
		{"basic satisfies basic", model.TrustLevelBasic, model.TrustLevelBasic, true},
		{"basic fails verified", model.TrustLevelBasic, model.TrustLevelVerified, false},
		{"verified satisfies basic", model.TrustLevelVerified, model.TrustLevelBasic, true},
		{"premium satisfies verified", model.TrustLevelPremium, model.TrustLevelVerified, true},
		{"premium fails enterprise", model.TrustLevelPremium, model.TrustLevelEnterprise, false},
		{"enterprise satisfies everything", model.TrustLevelEnterprise, model.TrustLevelUntrusted, true},
		{"enterprise satisfies enterprise", model.TrustLevelEnterprise, model.TrustLevelEnterprise, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.subject.IsAuthorized(tc.required))
		})
	}
}

func TestTrustLevelCapabilities(t *testing.T) {
	assert.Empty(t, model.TrustLevelUntrusted.Capabilities())
	assert.Equal(t, []string{"read"}, model.TrustLevelBasic.Capabilities())
	assert.Equal(t, []string{"read", "write", "message"}, model.TrustLevelVerified.Capabilities())
	assert.Equal(t, []string{"read", "write", "message", "delegate"}, model.TrustLevelPremium.Capabilities())
	assert.Equal(t, []string{"read", "write", "message", "delegate", "issue", "admin"}, model.TrustLevelEnterprise.Capabilities())

	// Every level carries the capabilities of the levels below.
	levels := []model.TrustLevel{
		model.TrustLevelUntrusted,
		model.TrustLevelBasic,
		model.TrustLevelVerified,
		model.TrustLevelPremium,
		model.TrustLevelEnterprise,
	}
	for i := 1; i < len(levels); i++ {
		lower := levels[i-1].Capabilities()
		higher := levels[i].Capabilities()
		for _, capability := range lower {
			assert.Containsf(t, higher, capability, "%s should carry %q from %s", levels[i], capability, levels[i-1])
		}
	}

	// The returned slice is a copy.
	caps := model.TrustLevelBasic.Capabilities()
	caps[0] = "mutated"
	assert.Equal(t, []string{"read"}, model.TrustLevelBasic.Capabilities())
}

func TestParseTrustLevel(t *testing.T) {
	level, err := model.ParseTrustLevel("premium")
	require.NoError(t, err)
	assert.Equal(t, model.TrustLevelPremium, level)

	_, err = model.ParseTrustLevel("galactic")
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}

func TestTrustLevelJSON(t *testing.T) {
	raw, err := json.Marshal(model.TrustLevelVerified)
	require.NoError(t, err)
	assert.Equal(t, `"verified"`, string(raw))

	var level model.TrustLevel
	require.NoError(t, json.Unmarshal([]byte(`"enterprise"`), &level))
	assert.Equal(t, model.TrustLevelEnterprise, level)

	assert.Error(t, json.Unmarshal([]byte(`"galactic"`), &level))

	_, err = json.Marshal(model.TrustLevel(42))
	assert.Error(t, err)
}
