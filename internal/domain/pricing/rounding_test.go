package pricing

import "testing"

func TestApplyRounding(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		expect int64
	}{
		{"small amount nearest 10", 12344, 12340},
		{"small amount rounds up", 12346, 12350},
		{"half at 10 tier rounds up", 12345, 12350},
		{"mid tier nearest 100", 63250, 63300},
		{"mid tier rounds down", 63240, 63200},
		{"half at 100 tier rounds up", 50050, 50100},
		{"high tier nearest 1000", 215400, 215000},
		{"half at 1000 tier rounds up", 215500, 216000},
		{"exact tier boundary 50000", 50000, 50000},
		{"exact tier boundary 200000", 200000, 200000},
		{"just below 50000 uses 10 tier", 49995, 50000},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyRounding(tt.amount)
			if got != tt.expect {
				t.Errorf("ApplyRounding(%d) = %d, want %d", tt.amount, got, tt.expect)
			}
		})
	}
}

func TestApplyRounding_Idempotent(t *testing.T) {
	amounts := []int64{0, 5, 999, 12345, 49994, 49995, 50000, 50050, 63250, 199949, 199950, 200000, 215400, 215500, 999999}
	for _, amount := range amounts {
		once := ApplyRounding(amount)
		twice := ApplyRounding(once)
		if once != twice {
			t.Errorf("not idempotent at %d: round=%d, round(round)=%d", amount, once, twice)
		}
	}
}
