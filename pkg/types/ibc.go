package types

import "fmt"

// IBC identifier length bounds from ICS 024. Port identifiers allow 2..128
// characters, channel identifiers 8..64.
const (
	portIDMinLen    = 2
	portIDMaxLen    = 128
	channelIDMinLen = 8
	channelIDMaxLen = 64
)

// PortID identifies an IBC port, e.g. "transfer".
type PortID string

// ChannelID identifies an IBC channel, e.g. "channel-42".
type ChannelID string

// ParsePortID validates an ICS 024 port identifier.
func ParsePortID(s string) (PortID, error) {
	if err := validateICS024(s, portIDMinLen, portIDMaxLen); err != nil {
		return "", fmt.Errorf("invalid port id %q: %w", s, err)
	}
	return PortID(s), nil
}

// ParseChannelID validates an ICS 024 channel identifier.
func ParseChannelID(s string) (ChannelID, error) {
	if err := validateICS024(s, channelIDMinLen, channelIDMaxLen); err != nil {
		return "", fmt.Errorf("invalid channel id %q: %w", s, err)
	}
	return ChannelID(s), nil
}

// validateICS024 checks the ICS 024 identifier rules: length bounds and the
// allowed character set (alphanumerics and ".", "_", "+", "-", "#", "[", "]",
// "<", ">").
func validateICS024(s string, minLen, maxLen int) error {
	if len(s) < minLen || len(s) > maxLen {
		return fmt.Errorf("length %d outside [%d, %d]", len(s), minLen, maxLen)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '+' || c == '-':
		case c == '#' || c == '[' || c == ']' || c == '<' || c == '>':
		default:
			return fmt.Errorf("character %q not allowed", c)
		}
	}
	return nil
}
