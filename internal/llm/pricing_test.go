package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	cost := LookupCost("gpt-4o")
	if cost == nil {
		t.Fatal("expected pricing for gpt-4o")
	}
	// 1M input at $2.50 + 1M output at $10.00.
	if got := cost.Cost(1_000_000, 1_000_000); math.Abs(got-12.5) > 1e-9 {
		t.Errorf("Cost = %v, want 12.5", got)
	}

	if LookupCost("whisper-1") != nil {
		t.Error("per-minute models must not have token pricing")
	}
	if LookupCost("some-unknown-model") != nil {
		t.Error("unknown models must resolve to nil")
	}
}
