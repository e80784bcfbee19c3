package dispatch

import (
	"strings"
	"testing"
	"time"
)

var screeningDay = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestCheckEligibility(t *testing.T) {
	tests := []struct {
		name         string
		input        EligibilityInput
		wantEligible bool
		wantReason   string
	}{
		{
			name:         "healthy adult",
			input:        EligibilityInput{Age: 30, WeightKG: 72},
			wantEligible: true,
		},
		{
			name:         "too young",
			input:        EligibilityInput{Age: 17, WeightKG: 72},
			wantEligible: false,
			wantReason:   "at least 18",
		},
		{
			name:         "too old",
			input:        EligibilityInput{Age: 70, WeightKG: 72},
			wantEligible: false,
			wantReason:   "65 years old or younger",
		},
		{
			name:         "underweight",
			input:        EligibilityInput{Age: 30, WeightKG: 45},
			wantEligible: false,
			wantReason:   "at least 50 kg",
		},
		{
			name:         "recent tattoo",
			input:        EligibilityInput{Age: 30, WeightKG: 72, HasTattooLast6Months: true},
			wantEligible: false,
			wantReason:   "tattoo",
		},
		{
			name:         "health screening",
			input:        EligibilityInput{Age: 30, WeightKG: 72, HasHealthIssues: true},
			wantEligible: false,
			wantReason:   "Health screening failed",
		},
		{
			name:         "deferred medication",
			input:        EligibilityInput{Age: 30, WeightKG: 72, Medications: []string{"Oral Antibiotics"}},
			wantEligible: false,
			wantReason:   "consult a doctor",
		},
		{
			name:         "harmless medication",
			input:        EligibilityInput{Age: 30, WeightKG: 72, Medications: []string{"vitamin d"}},
			wantEligible: true,
		},
		{
			name:         "invalid last donation date",
			input:        EligibilityInput{Age: 30, WeightKG: 72, LastDonationDate: "last tuesday"},
			wantEligible: false,
			wantReason:   "valid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckEligibility(tt.input, screeningDay)
			if got.Eligible != tt.wantEligible {
				t.Fatalf("eligible = %v, want %v (reasons: %v)", got.Eligible, tt.wantEligible, got.Reasons)
			}
			if tt.wantReason != "" {
				found := false
				for _, r := range got.Reasons {
					if strings.Contains(strings.ToLower(r), strings.ToLower(tt.wantReason)) {
						found = true
					}
				}
				if !found {
					t.Fatalf("expected a reason containing %q, got %v", tt.wantReason, got.Reasons)
				}
			}
		})
	}
}

func TestCheckEligibilityDonationInterval(t *testing.T) {
	// Donated 20 days ago: must wait 36 more.
	last := screeningDay.AddDate(0, 0, -20).Format("2006-01-02")
	got := CheckEligibility(EligibilityInput{Age: 30, WeightKG: 72, LastDonationDate: last}, screeningDay)

	if got.Eligible {
		t.Fatal("donor inside the 56-day interval must be deferred")
	}
	wantDate := screeningDay.AddDate(0, 0, 36).Format("2006-01-02")
	if got.NextEligibleDate != wantDate {
		t.Fatalf("next eligible date = %s, want %s", got.NextEligibleDate, wantDate)
	}

	found := false
	for _, r := range got.Reasons {
		if strings.Contains(r, "36 more days") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the remaining-days reason, got %v", got.Reasons)
	}

	// Donated 60 days ago: clear.
	last = screeningDay.AddDate(0, 0, -60).Format("2006-01-02")
	if got := CheckEligibility(EligibilityInput{Age: 30, WeightKG: 72, LastDonationDate: last}, screeningDay); !got.Eligible {
		t.Fatalf("donor past the interval must be eligible, reasons: %v", got.Reasons)
	}
}

func TestCheckEligibilityCollectsAllReasons(t *testing.T) {
	got := CheckEligibility(EligibilityInput{
		Age:                  16,
		WeightKG:             40,
		HasTattooLast6Months: true,
	}, screeningDay)

	if got.Eligible {
		t.Fatal("must be ineligible")
	}
	if len(got.Reasons) != 3 {
		t.Fatalf("every failing rule must contribute a reason, got %v", got.Reasons)
	}
}
