package validators

import (
	"net"
	"strings"
)

// NormalizeEmail lowercases and trims an address so login lookups and
// the unique email index agree on a single spelling.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDomainResolves reports whether the address's domain has MX or
// address records. It is a deliverability sanity check on top of the
// format validation done at binding time, not RFC parsing.
func EmailDomainResolves(email string) bool {
	email = NormalizeEmail(email)

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	host := email[at+1:]

	if mx, err := net.LookupMX(host); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(host)
	return err == nil && len(ips) > 0
}
