package violation

// Decision is the outcome of evaluating a subscriber's violation count
// against the strike policy. A Decision is a normal business result, never
// an error.
type Decision string

const (
	DecisionNone    Decision = "none"
	DecisionWarn    Decision = "warn"
	DecisionEnforce Decision = "enforce"
)

func (d Decision) String() string { return string(d) }

// Evaluate maps a violation count onto an action tier. ENFORCE once the count
// reaches the limit, WARN on the last strike before it, NONE otherwise. The
// function is pure so per-tier limits can be swapped without touching the
// recording path, and the decision is monotonic in count: once a count
// reaches the limit every later evaluation also enforces.
func Evaluate(count, limit int64) Decision {
	if limit <= 0 {
		// A non-positive limit disables enforcement entirely.
		return DecisionNone
	}
	switch {
	case count >= limit:
		return DecisionEnforce
	case count == limit-1:
		return DecisionWarn
	default:
		return DecisionNone
	}
}
