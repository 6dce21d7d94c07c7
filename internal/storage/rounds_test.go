package storage

import "testing"

func TestSaveAndListRounds(t *testing.T) {
	store := openTestStore(t)

	rounds := []RoundRecord{
		{GameID: "rainmaker", Seed: 1, Outcome: "crashed", Duration: 120.5},
		{GameID: "rainmaker", Seed: 2, Outcome: "won", Score: 12000, Fuel: 15000, AvgWater: 80, Duration: 300},
		{GameID: "rainmaker_classic", Seed: 3, Outcome: "won", Score: 9000, Fuel: 10000, AvgWater: 90, Duration: 400},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	got, err := store.RecentRounds("rainmaker", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 rounds, got %d", len(got))
	}
	if got[0].Seed != 2 || got[1].Seed != 1 {
		t.Errorf("rounds not newest first: %+v", got)
	}
	if got[0].Outcome != "won" || got[0].Score != 12000 || got[0].AvgWater != 80 {
		t.Errorf("round fields not preserved: %+v", got[0])
	}
	if got[1].Duration != 120.5 {
		t.Errorf("Duration = %v, expected 120.5", got[1].Duration)
	}

	all, err := store.RecentRounds("", 10)
	if err != nil {
		t.Fatalf("RecentRounds(\"\") failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 rounds across modes, got %d", len(all))
	}

	limited, _ := store.RecentRounds("", 1)
	if len(limited) != 1 || limited[0].Seed != 3 {
		t.Errorf("limit not applied: %+v", limited)
	}
}

func TestRoundSummary(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetRoundSummary("rainmaker")
	if err != nil {
		t.Fatalf("GetRoundSummary() failed: %v", err)
	}
	if empty.Rounds != 0 || empty.Wins != 0 {
		t.Errorf("empty summary = %+v", empty)
	}

	store.SaveRound(RoundRecord{GameID: "rainmaker", Outcome: "won", AvgWater: 85, Duration: 100})
	store.SaveRound(RoundRecord{GameID: "rainmaker", Outcome: "crashed", AvgWater: 40, Duration: 200})
	store.SaveRound(RoundRecord{GameID: "rainmaker", Outcome: "won", AvgWater: 81, Duration: 300})

	sum, err := store.GetRoundSummary("rainmaker")
	if err != nil {
		t.Fatalf("GetRoundSummary() failed: %v", err)
	}
	if sum.Rounds != 3 || sum.Wins != 2 || sum.Crashes != 1 {
		t.Errorf("counts = %+v", sum)
	}
	if sum.BestWater != 85 {
		t.Errorf("BestWater = %v, expected 85", sum.BestWater)
	}
	if sum.AvgDuration != 200 {
		t.Errorf("AvgDuration = %v, expected 200", sum.AvgDuration)
	}
}
