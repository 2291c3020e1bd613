// Package did provides DID parsing, the DID document model and document
// resolution used by the trust server.
package did

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidDID = errors.New("invalid DID")

// Scheme is the URI scheme of a decentralized identifier.
const Scheme = "did"

type DID struct {
	method string
	id     string
}

var didRegexp = regexp.MustCompile(`^did:([a-z0-9]+):((?:[A-Za-z0-9._%-]*:)*[A-Za-z0-9._%-]+)$`)

func NewDID(method, id string) DID {
	return DID{
		method: method,
		id:     id,
	}
}

func Parse(str string) (DID, error) {
	matches := didRegexp.FindStringSubmatch(str)
	if len(matches) != 3 {
		return DID{}, ErrInvalidDID
	}

	return DID{
		method: matches[1],
		id:     matches[2],
	}, nil
}

func MustParse(str string) DID {
	d, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return d
}

// IsValid reports whether str is a syntactically valid DID.
func IsValid(str string) bool {
	_, err := Parse(str)
	return err == nil
}

// HasScheme reports whether str starts with the DID scheme prefix.
func HasScheme(str string) bool {
	return strings.HasPrefix(str, Scheme+":")
}

func (d DID) Method() string {
	return d.method
}

func (d DID) ID() string {
	return d.id
}

func (d DID) IsEmpty() bool {
	return d.method == "" && d.id == ""
}

func (d DID) String() string {
	if d.IsEmpty() {
		return ""
	}
	return Scheme + ":" + d.method + ":" + d.id
}

func (d DID) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
