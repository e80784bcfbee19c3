package dispatch

import (
	"fmt"
	"strings"
	"time"
)

const (
	minDonorAge    = 18
	maxDonorAge    = 65
	minDonorWeight = 50.0 // kg

	// Whole-blood donations must be at least 8 weeks apart.
	donationIntervalDays = 56
)

// deferredMeds are medication substrings that defer a donor pending review.
var deferredMeds = []string{"antibiotics", "accutane", "blood thinner"}

// EligibilityInput is what the screening form submits about a donor.
type EligibilityInput struct {
	Age                  int      `json:"age"`
	WeightKG             float64  `json:"weightKg"`
	HasTattooLast6Months bool     `json:"hasTattooLast6Months"`
	HasHealthIssues      bool     `json:"hasHealthIssues"`
	LastDonationDate     string   `json:"lastDonationDate,omitempty"` // YYYY-MM-DD
	Medications          []string `json:"medications,omitempty"`
}

type EligibilityResult struct {
	Eligible         bool     `json:"eligible"`
	Reasons          []string `json:"reasons"`
	NextEligibleDate string   `json:"nextEligibleDate,omitempty"` // YYYY-MM-DD
}

// CheckEligibility runs the rule chain: age window, minimum weight, recent
// tattoo, health screening, donation interval, deferred medications. Every
// failing rule contributes its reason; the donor sees all of them at once.
func CheckEligibility(input EligibilityInput, now time.Time) EligibilityResult {
	result := EligibilityResult{Eligible: true}

	if input.Age < minDonorAge {
		result.Eligible = false
		result.Reasons = append(result.Reasons, fmt.Sprintf("Donor must be at least %d years old.", minDonorAge))
	} else if input.Age > maxDonorAge {
		result.Eligible = false
		result.Reasons = append(result.Reasons, fmt.Sprintf("Donor must be %d years old or younger.", maxDonorAge))
	}

	if input.WeightKG < minDonorWeight {
		result.Eligible = false
		result.Reasons = append(result.Reasons, fmt.Sprintf("Donor must weigh at least %.0f kg.", minDonorWeight))
	}

	if input.HasTattooLast6Months {
		result.Eligible = false
		result.Reasons = append(result.Reasons, "Cannot donate within 6 months of getting a tattoo or piercing.")
	}

	if input.HasHealthIssues {
		result.Eligible = false
		result.Reasons = append(result.Reasons, "Health screening failed.")
	}

	if input.LastDonationDate != "" {
		last, err := time.Parse("2006-01-02", input.LastDonationDate)
		if err != nil {
			result.Eligible = false
			result.Reasons = append(result.Reasons, "Last donation date is not a valid date (expected YYYY-MM-DD).")
		} else {
			daysSince := int(now.Sub(last).Hours() / 24)
			if daysSince < donationIntervalDays {
				remaining := donationIntervalDays - daysSince
				result.Eligible = false
				result.Reasons = append(result.Reasons, fmt.Sprintf("Must wait %d more days between whole blood donations.", remaining))
				result.NextEligibleDate = now.AddDate(0, 0, remaining).Format("2006-01-02")
			}
		}
	}

	for _, med := range input.Medications {
		lower := strings.ToLower(med)
		for _, deferred := range deferredMeds {
			if strings.Contains(lower, deferred) {
				result.Eligible = false
				result.Reasons = append(result.Reasons, fmt.Sprintf("Taking %s may affect eligibility. Please consult a doctor.", med))
				break
			}
		}
	}

	return result
}
