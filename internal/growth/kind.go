package growth

import (
	"fmt"
	"strings"
)

// Kind selects a growth model.
type Kind int

const (
	Exponential Kind = iota
	Logistic
)

func (k Kind) String() string {
	switch k {
	case Exponential:
		return "exponential"
	case Logistic:
		return "logistic"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds lists every supported model in display order.
func Kinds() []Kind {
	return []Kind{Exponential, Logistic}
}

// ParseKind accepts the model name or its short form.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exponential", "exp":
		return Exponential, nil
	case "logistic", "log":
		return Logistic, nil
	}
	return 0, fmt.Errorf("unknown model: %s (available: exponential, logistic)", s)
}
