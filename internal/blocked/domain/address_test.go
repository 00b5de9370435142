package domain

import "testing"

func TestIsIPv4(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  bool
	}{
		{"documentation address", []string{"192", "0", "2", "235"}, true},
		{"hostname", []string{"mc", "example", "com"}, false},
		{"octet out of range", []string{"999", "0", "0", "1"}, false},
		{"three segments", []string{"1", "2", "3"}, false},
		{"five segments", []string{"1", "2", "3", "4", "5"}, false},
		{"boundaries", []string{"0", "255", "0", "255"}, true},
		{"256", []string{"256", "0", "0", "1"}, false},
		{"leading zeros", []string{"010", "001", "0", "00"}, true},
		{"plus sign", []string{"+1", "2", "3", "4"}, true},
		{"bare plus", []string{"+", "2", "3", "4"}, false},
		{"minus sign", []string{"-1", "2", "3", "4"}, false},
		{"empty segment", []string{"1", "", "3", "4"}, false},
		{"whitespace", []string{" 1", "2", "3", "4"}, false},
		{"hex", []string{"0x1", "2", "3", "4"}, false},
		{"wildcard", []string{"1", "2", "3", "*"}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIPv4(tt.parts); got != tt.want {
				t.Errorf("IsIPv4(%q) = %v, want %v", tt.parts, got, tt.want)
			}
		})
	}
}

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"localhost", []string{"localhost"}},
		{"mc.example.com", []string{"mc", "example", "com"}},
		{"example.com.", []string{"example", "com", ""}},
	}
	for _, tt := range tests {
		got := SplitAddress(tt.in)
		if len(got) != len(tt.want) {
			t.Fatalf("SplitAddress(%q) = %q, want %q", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitAddress(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestClassifyAddress(t *testing.T) {
	if k := ClassifyAddress(SplitAddress("192.0.2.235")); k != AddressIPv4 {
		t.Errorf("expected ipv4, got %v", k)
	}
	if k := ClassifyAddress(SplitAddress("mc.example.com")); k != AddressHostname {
		t.Errorf("expected hostname, got %v", k)
	}
	if AddressIPv4.String() != "ipv4" || AddressHostname.String() != "hostname" {
		t.Errorf("unexpected kind strings: %s %s", AddressIPv4, AddressHostname)
	}
	if got := AddressKind(9).String(); got != "AddressKind(9)" {
		t.Errorf("unexpected unknown kind string %q", got)
	}
}
