package dice

import "testing"

func TestRoller_RollStaysInRange(t *testing.T) {
	tests := map[string]struct {
		sides    int
		expected int
	}{
		"six sided":           {sides: 6, expected: 6},
		"twenty sided":        {sides: 20, expected: 20},
		"zero falls back":     {sides: 0, expected: 6},
		"one side falls back": {sides: 1, expected: 6},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			r := New(&Config{Seed: 42})
			for i := 0; i < 1000; i++ {
				v := r.Roll(test.sides)
				if v < 1 || v > test.expected {
					t.Fatalf("roll %v outside [1, %v]", v, test.expected)
				}
			}
		})
	}
}

func TestRoller_SameSeedSameRolls(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 50; i++ {
		if x, y := a.Roll(6), b.Roll(6); x != y {
			t.Fatalf("roll %v differs: %v != %v", i, x, y)
		}
	}
}
