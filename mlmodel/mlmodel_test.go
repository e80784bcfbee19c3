package mlmodel

import "testing"

func TestPredictProbabilityNeutralInput(t *testing.T) {
	m := NewDonationProbabilityModel()
	if got := m.PredictProbability(0, 0); got != 0.5 {
		t.Fatalf("sigmoid(0) should be 0.5, got %v", got)
	}
}

func TestPredictProbabilityKnownValues(t *testing.T) {
	m := NewDonationProbabilityModel()
	cases := []struct {
		distanceKM    float64
		pastDonations int
		want          float64
	}{
		{10, 0, 0.2689},  // z = -1
		{10, 2, 0.5},     // z = 0
		{10, 4, 0.7311},  // z = 1
		{20, 10, 0.9526}, // z = 3
	}
	for _, c := range cases {
		if got := m.PredictProbability(c.distanceKM, c.pastDonations); got != c.want {
			t.Errorf("P(%vkm, %d donations) = %v, want %v", c.distanceKM, c.pastDonations, got, c.want)
		}
	}
}

func TestPredictProbabilityMonotonic(t *testing.T) {
	m := NewDonationProbabilityModel()

	if m.PredictProbability(5, 1) <= m.PredictProbability(30, 1) {
		t.Error("longer distance must not raise acceptance probability")
	}
	if m.PredictProbability(5, 6) <= m.PredictProbability(5, 1) {
		t.Error("more past donations must raise acceptance probability")
	}
}

func TestClassifyThreshold(t *testing.T) {
	m := NewDonationProbabilityModel()

	// z = 0 lands exactly on the threshold, which counts as likely.
	if !m.Classify(10, 2) {
		t.Error("probability at the threshold should classify as accept")
	}
	if m.Classify(30, 1) {
		t.Error("z = -2.5 should classify as decline")
	}
	if !m.Classify(5, 4) {
		t.Error("z = 1.5 should classify as accept")
	}
}
