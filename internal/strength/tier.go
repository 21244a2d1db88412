package strength

// Tier represents a password strength category
type Tier int

const (
	VeryWeak Tier = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

func (t Tier) String() string {
	switch t {
	case VeryWeak:
		return "Very Weak"
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "unknown"
	}
}
