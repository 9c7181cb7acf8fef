package naptr

import (
	"math"
	"strconv"
	"strings"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

// Owner resolves the owner name against origin. A missing owner or "@"
// becomes origin, relative names get origin appended.
func (r Record) Owner(origin string) string {
	zone := strings.TrimSpace(r.Zone)

	switch {
	case zone == "" || zone == "@":
		return origin
	case dns.IsFqdn(zone) || origin == "":
		return zone
	default:
		return zone + "." + dns.Fqdn(origin)
	}
}

// RR converts the record into a miekg/dns NAPTR RR, checking everything the
// line codec accepts but DNS does not: 16 bit order and preference, the IN
// class, a numeric TTL and valid domain names for owner and replacement.
// Records without a TTL column get defaultTTL.
func (r Record) RR(origin string, defaultTTL uint32) (*dns.NAPTR, error) {
	owner := r.Owner(origin)
	if owner == "" {
		return nil, errors.Wrap(ErrNotConformant, "no owner name and no origin")
	}

	if _, ok := dns.IsDomainName(owner); !ok {
		return nil, errors.Wrapf(ErrNotConformant, "owner %q is not a domain name", owner)
	}

	ttl := defaultTTL

	if r.HasTTL() {
		n, err := strconv.ParseUint(strings.TrimSpace(r.TTL), 10, 32)
		if err != nil {
			return nil, errors.Wrapf(ErrNotConformant, "ttl %q", r.TTL)
		}

		ttl = uint32(n)
	}

	if dns.StringToClass[strings.ToUpper(r.Class)] != dns.ClassINET {
		return nil, errors.Wrapf(ErrNotConformant, "class %q", r.Class)
	}

	if dns.StringToType[strings.ToUpper(r.Type)] != dns.TypeNAPTR {
		return nil, errors.Wrapf(ErrNotConformant, "type %q", r.Type)
	}

	if r.Order > math.MaxUint16 || r.Preference > math.MaxUint16 {
		return nil, errors.Wrapf(ErrNotConformant, "order %d or preference %d exceeds %d",
			r.Order, r.Preference, math.MaxUint16)
	}

	if _, ok := dns.IsDomainName(r.Terminator); !ok {
		return nil, errors.Wrapf(ErrNotConformant, "replacement %q is not a domain name", r.Terminator)
	}

	rr := &dns.NAPTR{
		Hdr: dns.RR_Header{
			Name:   dns.Fqdn(owner),
			Rrtype: dns.TypeNAPTR,
			Class:  dns.ClassINET,
			Ttl:    ttl,
		},
		Order:       uint16(r.Order),
		Preference:  uint16(r.Preference),
		Flags:       r.Flags,
		Service:     r.Service,
		Regexp:      r.RegexpField(),
		Replacement: dns.Fqdn(r.Terminator),
	}

	// the presentation form has to survive the miekg/dns zone parser
	if _, err := dns.NewRR(rr.String()); err != nil {
		return nil, errors.Wrap(ErrNotConformant, err.Error())
	}

	return rr, nil
}
