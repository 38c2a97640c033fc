package observability

import (
	"fmt"
	"strings"
)

// Mention is a handling marking applied to the data of an information system.
// The zero value is invalid; the set of codes is closed.
type Mention int

const (
	MentionUnknown Mention = iota
	MentionCP
	MentionCPP
	MentionCM
	MentionCT
	MentionCI
	MentionCC
	MentionCCR
	MentionSF
	MentionACSSI
	MentionCRYPTO
	MentionCCI
)

var mentionCodes = [...]string{
	MentionCP:     "CP",
	MentionCPP:    "CPP",
	MentionCM:     "CM",
	MentionCT:     "CT",
	MentionCI:     "CI",
	MentionCC:     "CC",
	MentionCCR:    "CCR",
	MentionSF:     "SF",
	MentionACSSI:  "ACSSI",
	MentionCRYPTO: "CRYPTO",
	MentionCCI:    "CCI",
}

// Mentions returns every valid mention in declaration order.
func Mentions() []Mention {
	out := make([]Mention, 0, len(mentionCodes)-1)
	for m := MentionCP; m <= MentionCCI; m++ {
		out = append(out, m)
	}
	return out
}

// ParseMention maps a wire code ("CP", "ACSSI", ...) to its Mention.
// Codes are case sensitive.
func ParseMention(code string) (Mention, error) {
	for m := MentionCP; m <= MentionCCI; m++ {
		if mentionCodes[m] == code {
			return m, nil
		}
	}
	return MentionUnknown, fmt.Errorf("unknown mention %q (expected one of %s)", code, strings.Join(mentionCodes[1:], ", "))
}

// IsValid reports whether m is one of the defined codes.
func (m Mention) IsValid() bool {
	return m >= MentionCP && m <= MentionCCI
}

func (m Mention) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Mention(%d)", int(m))
	}
	return mentionCodes[m]
}

// EnumValue returns the wire code, or "" when m is invalid. It makes Mention
// a normalize.Enum.
func (m Mention) EnumValue() string {
	if !m.IsValid() {
		return ""
	}
	return mentionCodes[m]
}

func (m Mention) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid mention %d", int(m))
	}
	return []byte(mentionCodes[m]), nil
}

func (m *Mention) UnmarshalText(text []byte) error {
	parsed, err := ParseMention(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
