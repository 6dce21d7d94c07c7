package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/rainmaker/internal/games/rainmaker"
)

func TestAutopilotIsDeterministic(t *testing.T) {
	a := autopilot(rainmaker.New(), 42, 30, 1.0/30)
	b := autopilot(rainmaker.New(), 42, 30, 1.0/30)
	if a.Err != nil || b.Err != nil {
		t.Fatalf("unexpected errors: %v, %v", a.Err, b.Err)
	}
	if a.Hash != b.Hash {
		t.Errorf("hash mismatch for same seed: %x vs %x", a.Hash, b.Hash)
	}
	if a.Ticks == 0 {
		t.Error("expected the autopilot to advance the world")
	}
}

func TestAutopilotFliesAndBurnsFuel(t *testing.T) {
	sum := autopilot(rainmaker.New(), 7, 20, 1.0/30)
	if sum.Err != nil {
		t.Fatal(sum.Err)
	}
	if sum.Result.Fuel >= 25000 {
		t.Errorf("fuel = %v, expected some to be burned", sum.Result.Fuel)
	}
	if sum.Result.Duration < 19 {
		t.Errorf("duration = %v, expected about 20s", sum.Result.Duration)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, "rainmaker", 3, simSummary{
		Result: rainmaker.RoundResult{Outcome: rainmaker.OutcomeCrashed, Duration: 12.5},
		Ticks:  375,
		Hash:   0xabc,
	})

	out := buf.String()
	for _, want := range []string{"crashed", "12.5s", "375", "0000000000000abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
