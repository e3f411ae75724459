package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// LookupTimeout bounds the DNS lookups behind IsEmailDomainValid.
const LookupTimeout = 3 * time.Second

// MailDomain returns the lowercased domain of an address, or "" when the
// address has no usable domain part.
func MailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ""
	}

	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return ""
	}
	return domain
}

// IsEmailDomainValid reports whether the address's domain has MX records or,
// failing that, resolves at all.
func IsEmailDomainValid(email string) bool {
	domain := MailDomain(email)
	if domain == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), LookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.DefaultResolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
