package violation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		limit int64
		want  Decision
	}{
		{"zero count", 0, 3, DecisionNone},
		{"first strike", 1, 3, DecisionNone},
		{"second strike warns", 2, 3, DecisionWarn},
		{"third strike enforces", 3, 3, DecisionEnforce},
		{"beyond limit still enforces", 4, 3, DecisionEnforce},
		{"far beyond limit", 100, 3, DecisionEnforce},
		{"limit one enforces immediately", 1, 1, DecisionEnforce},
		{"limit one warns at zero", 0, 1, DecisionWarn},
		{"zero limit disables", 5, 0, DecisionNone},
		{"negative limit disables", 5, -1, DecisionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.count, tt.limit))
		})
	}
}

// Once the count reaches the limit, every later evaluation must keep
// enforcing; the decision never reverts without an explicit reset.
func TestEvaluate_MonotonicEnforcement(t *testing.T) {
	const limit = 3
	enforced := false
	for count := int64(0); count <= 10; count++ {
		d := Evaluate(count, limit)
		if d == DecisionEnforce {
			enforced = true
		}
		if enforced {
			assert.Equal(t, DecisionEnforce, d, "count=%d", count)
		}
	}
	assert.True(t, enforced)
}
