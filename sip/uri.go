package sip

import (
	"strconv"
	"strings"
)

// Params is an ordered-by-insertion-irrelevant set of SIP header/URI
// parameters, such as the "tag" or "lr" parameter.
type Params map[string]string

// Clone returns a shallow copy safe for independent mutation.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	n := make(Params, len(p))
	for k, v := range p {
		n[k] = v
	}
	return n
}

// Uri is a sip: or sips: URI, trimmed to the fields the dialog layer
// reads or writes (RFC 3261 §19.1). It does not carry headers embedded
// in the URI, nor tel: or other non-SIP schemes: parsing and
// serializing the wire form is a transport/parser concern external to
// this module.
type Uri struct {
	Secure    bool
	User      string
	Host      string
	Port      int
	UriParams Params
}

// InvalidURI is the RFC 3261-ish sentinel dialogs are seeded with
// before any real remote/local target has been learned. Comparing a
// target against it is how §4.4 decides whether a target_update
// notification should fire on the very first learned Contact.
var InvalidURI = Uri{Host: "invalid.invalid"}

// IsInvalid reports whether u is the InvalidURI sentinel.
func (u Uri) IsInvalid() bool {
	return u.Host == InvalidURI.Host && u.User == "" && u.Port == 0
}

// WithSecure returns a copy of u with Secure set, used when §4.4
// upgrades a Contact's scheme to sips for a secure dialog.
func (u Uri) WithSecure(secure bool) Uri {
	u.Secure = secure
	return u
}

func (u Uri) String() string {
	var b strings.Builder
	if u.Secure {
		b.WriteString("sips:")
	} else {
		b.WriteString("sip:")
	}
	if u.User != "" {
		b.WriteString(u.User)
		b.WriteByte('@')
	}
	b.WriteString(u.Host)
	if u.Port > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.Port))
	}
	return b.String()
}

// Equals compares the address part of two URIs (scheme, user, host,
// port), per RFC 3261 §19.1.4, ignoring URI parameters: two Contacts
// that differ only by a ;transport= or similar parameter are treated
// as the same target for §4.4's change-detection.
func (u Uri) Equals(other Uri) bool {
	return u.Secure == other.Secure &&
		u.User == other.User &&
		strings.EqualFold(u.Host, other.Host) &&
		u.Port == other.Port
}

// HostPort renders "host:port" (or just "host" if no port), the form
// a transport collaborator matches against its own listening addresses.
func (u Uri) HostPort() string {
	if u.Port <= 0 {
		return u.Host
	}
	return u.Host + ":" + strconv.Itoa(u.Port)
}
