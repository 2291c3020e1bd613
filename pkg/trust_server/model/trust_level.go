package model

import (
	"encoding/json"
	"fmt"
)

// TrustLevel is the ordinal assurance classification of a verified identity.
// Higher levels dominate lower levels in every authorization decision.
type TrustLevel int

const (
	TrustLevelUntrusted  TrustLevel = 0
	TrustLevelBasic      TrustLevel = 1
	TrustLevelVerified   TrustLevel = 2
	TrustLevelPremium    TrustLevel = 3
	TrustLevelEnterprise TrustLevel = 4
)

var trustLevelNames = map[TrustLevel]string{
	TrustLevelUntrusted:  "untrusted",
	TrustLevelBasic:      "basic",
	TrustLevelVerified:   "verified",
	TrustLevelPremium:    "premium",
	TrustLevelEnterprise: "enterprise",
}

var trustLevelValues = map[string]TrustLevel{
	"untrusted":  TrustLevelUntrusted,
	"basic":      TrustLevelBasic,
	"verified":   TrustLevelVerified,
	"premium":    TrustLevelPremium,
	"enterprise": TrustLevelEnterprise,
}

// trustLevelCapabilities is the static level-to-capability table. Each level
// carries every capability of the levels below it.
var trustLevelCapabilities = map[TrustLevel][]string{
	TrustLevelUntrusted:  {},
	TrustLevelBasic:      {"read"},
	TrustLevelVerified:   {"read", "write", "message"},
	TrustLevelPremium:    {"read", "write", "message", "delegate"},
	TrustLevelEnterprise: {"read", "write", "message", "delegate", "issue", "admin"},
}

func (l TrustLevel) String() string {
	if name, ok := trustLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(l))
}

func (l TrustLevel) IsValid() bool {
	_, ok := trustLevelNames[l]
	return ok
}

// IsAuthorized reports whether a subject at level l satisfies the required
// level under the total order.
func (l TrustLevel) IsAuthorized(required TrustLevel) bool {
	return l >= required
}

// Capabilities returns the static capability set of the level. The returned
// slice is a copy.
func (l TrustLevel) Capabilities() []string {
	caps, ok := trustLevelCapabilities[l]
	if !ok {
		return nil
	}
	result := make([]string, len(caps))
	copy(result, caps)
	return result
}

func ParseTrustLevel(s string) (TrustLevel, error) {
	level, ok := trustLevelValues[s]
	if !ok {
		return TrustLevelUntrusted, fmt.Errorf("unknown trust level %q%w", s, ErrInvalidParameter)
	}
	return level, nil
}

func (l TrustLevel) MarshalJSON() ([]byte, error) {
	name, ok := trustLevelNames[l]
	if !ok {
		return nil, fmt.Errorf("unknown trust level %d%w", int(l), ErrInvalidParameter)
	}
	return json.Marshal(name)
}

func (l *TrustLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	level, err := ParseTrustLevel(name)
	if err != nil {
		return err
	}
	*l = level
	return nil
}
