package types

import "testing"

func TestParseBloodType(t *testing.T) {
	for _, bt := range AllBloodTypes {
		got, err := ParseBloodType(string(bt))
		if err != nil || got != bt {
			t.Errorf("ParseBloodType(%q) = %v, %v", bt, got, err)
		}
	}

	for _, bad := range []string{"", "C+", "o+", "A +", "AB"} {
		if _, err := ParseBloodType(bad); err == nil {
			t.Errorf("ParseBloodType(%q) should fail", bad)
		}
	}
}

func TestCanDonate(t *testing.T) {
	cases := []struct {
		donor, recipient BloodType
		want             bool
	}{
		{ONegative, ABPositive, true}, // universal donor
		{ONegative, ONegative, true},
		{OPositive, ONegative, false},
		{APositive, ABPositive, true},
		{ABPositive, APositive, false}, // universal recipient can't give back
		{BNegative, ABNegative, true},
		{APositive, BPositive, false},
	}
	for _, c := range cases {
		if got := CanDonate(c.donor, c.recipient); got != c.want {
			t.Errorf("CanDonate(%s, %s) = %v, want %v", c.donor, c.recipient, got, c.want)
		}
	}

	// Every recipient can receive its own type and O-negative.
	for _, bt := range AllBloodTypes {
		if !CanDonate(bt, bt) {
			t.Errorf("%s should accept its own type", bt)
		}
		if !CanDonate(ONegative, bt) {
			t.Errorf("%s should accept O-negative", bt)
		}
	}
}
