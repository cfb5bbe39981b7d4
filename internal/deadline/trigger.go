package deadline

import (
	"fmt"
	"strings"
)

// TriggerType identifies what the trigger date of a calculation refers to.
type TriggerType int

const (
	// Availability is the date the act was made available on DJEN.
	Availability TriggerType = iota + 1
	// CertifiedPublication is a publication date certified by the court.
	CertifiedPublication
)

func (t TriggerType) String() string {
	switch t {
	case Availability:
		return "availability"
	case CertifiedPublication:
		return "publication"
	default:
		return fmt.Sprintf("TriggerType(%d)", int(t))
	}
}

func (t TriggerType) Valid() bool {
	return t == Availability || t == CertifiedPublication
}

// ParseTriggerType accepts the English names plus the Portuguese terms used on forms.
func ParseTriggerType(s string) (TriggerType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "availability", "disponibilizacao", "disponibilização", "djen":
		return Availability, nil
	case "publication", "certified_publication", "publicacao", "publicação":
		return CertifiedPublication, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTriggerType, s)
	}
}

func (t TriggerType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTriggerType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *TriggerType) UnmarshalText(text []byte) error {
	parsed, err := ParseTriggerType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
