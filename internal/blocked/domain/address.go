package domain

import (
	"strconv"
	"strings"
)

// AddressKind describes how an address is treated when candidate patterns are generated.
type AddressKind uint8

const (
	// AddressHostname is any address that does not classify as IPv4.
	AddressHostname AddressKind = iota
	// AddressIPv4 is a dotted quad whose segments each fit in a byte.
	AddressIPv4
)

// String returns a stable string representation of the address kind.
func (k AddressKind) String() string {
	switch k {
	case AddressHostname:
		return "hostname"
	case AddressIPv4:
		return "ipv4"
	default:
		return "AddressKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// SplitAddress splits an address into its dot separated segments.
// Empty segments are kept, so "" yields [""] and "a." yields ["a", ""].
func SplitAddress(address string) []string {
	return strings.Split(address, ".")
}

// IsIPv4 reports whether the segments look like an IPv4 address.
//
// The check is deliberately naive and matches how Mojang classifies addresses:
// exactly four segments, each parsing as an unsigned 8-bit decimal integer.
// Leading zeros and a single leading '+' are accepted; '-', whitespace and
// empty segments are not. Do not replace this with net.ParseIP.
func IsIPv4(parts []string) bool {
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if !isOctet(p) {
			return false
		}
	}
	return true
}

func isOctet(s string) bool {
	if len(s) > 1 && s[0] == '+' {
		s = s[1:]
	}
	_, err := strconv.ParseUint(s, 10, 8)
	return err == nil
}

// ClassifyAddress returns the kind of the already split address.
func ClassifyAddress(parts []string) AddressKind {
	if IsIPv4(parts) {
		return AddressIPv4
	}
	return AddressHostname
}
