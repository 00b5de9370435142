package utils

import (
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/haukened/blockedservers/internal/blocked/domain"
)

// ApexOf returns the registrable domain (eTLD+1) of a hostname address, for
// reporting only. It never feeds back into matching. IPv4 addresses and names
// that have no registrable domain return "".
func ApexOf(address string) string {
	name := strings.ToLower(strings.TrimSpace(address))
	name = strings.TrimRight(name, ".")
	if name == "" || domain.IsIPv4(domain.SplitAddress(name)) {
		return ""
	}
	apex, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		return ""
	}
	return apex
}
