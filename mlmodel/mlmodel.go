package mlmodel

import "math"

// DonationProbabilityModel is a pre-trained logistic regression predicting
// whether a donor accepts a dispatch request:
//
//	P(accept) = sigmoid(w_dist*distance + w_past*pastDonations + bias)
//
// Distance pushes acceptance down, donation history pushes it up.
type DonationProbabilityModel struct {
	weightDistance      float64
	weightPastDonations float64
	bias                float64
	threshold           float64
}

func NewDonationProbabilityModel() *DonationProbabilityModel {
	return &DonationProbabilityModel{
		weightDistance:      -0.1,
		weightPastDonations: 0.5,
		bias:                0,
		threshold:           0.5,
	}
}

// PredictProbability returns P(accept) rounded to 4 decimal places.
func (m *DonationProbabilityModel) PredictProbability(distanceKM float64, pastDonations int) float64 {
	z := m.weightDistance*distanceKM + m.weightPastDonations*float64(pastDonations) + m.bias
	return math.Round(sigmoid(z)*10000) / 10000
}

// Classify reports whether the donor clears the acceptance threshold.
func (m *DonationProbabilityModel) Classify(distanceKM float64, pastDonations int) bool {
	return m.PredictProbability(distanceKM, pastDonations) >= m.threshold
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
