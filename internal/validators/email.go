package validators

import (
	"context"
	"net"
	"net/mail"
	"strings"
	"time"
)

const dnsTimeout = 3 * time.Second

// IsEmailWellFormed checks syntax only.
func IsEmailWellFormed(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// IsEmailDomainValid accepts the address when its domain has an MX record
// or, failing that, any A/AAAA record.
func IsEmailDomainValid(email string) bool {
	if !IsEmailWellFormed(email) {
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]

	ctx, cancel := context.WithTimeout(context.Background(), dnsTimeout)
	defer cancel()

	r := net.DefaultResolver
	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	addrs, err := r.LookupIPAddr(ctx, domain)
	return err == nil && len(addrs) > 0
}
