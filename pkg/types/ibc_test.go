package types

import (
	"strings"
	"testing"
)

func TestParsePortID(t *testing.T) {
	for _, in := range []string{"transfer", "wasm.contract", "ab"} {
		if _, err := ParsePortID(in); err != nil {
			t.Errorf("ParsePortID(%q) failed: %v", in, err)
		}
	}
	bad := []string{"", "a", "has space", "bad/slash", strings.Repeat("p", 129)}
	for _, in := range bad {
		if _, err := ParsePortID(in); err == nil {
			t.Errorf("ParsePortID(%q) accepted", in)
		}
	}
}

func TestParseChannelID(t *testing.T) {
	for _, in := range []string{"channel-0", "channel-42"} {
		if _, err := ParseChannelID(in); err != nil {
			t.Errorf("ParseChannelID(%q) failed: %v", in, err)
		}
	}
	bad := []string{"", "chan", "channel 0", strings.Repeat("c", 65)}
	for _, in := range bad {
		if _, err := ParseChannelID(in); err == nil {
			t.Errorf("ParseChannelID(%q) accepted", in)
		}
	}
}
