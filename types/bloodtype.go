package types

import "fmt"

type BloodType string

const (
	APositive  BloodType = "A+"
	ANegative  BloodType = "A-"
	BPositive  BloodType = "B+"
	BNegative  BloodType = "B-"
	OPositive  BloodType = "O+"
	ONegative  BloodType = "O-"
	ABPositive BloodType = "AB+"
	ABNegative BloodType = "AB-"
)

// AllBloodTypes is the closed set of supported types, in display order.
var AllBloodTypes = []BloodType{
	APositive, ANegative,
	BPositive, BNegative,
	OPositive, ONegative,
	ABPositive, ABNegative,
}

// ParseBloodType validates a raw string against the closed set.
func ParseBloodType(s string) (BloodType, error) {
	for _, bt := range AllBloodTypes {
		if string(bt) == s {
			return bt, nil
		}
	}
	return "", fmt.Errorf("unknown blood type: %q", s)
}

// Compatibility maps a recipient's blood type to the donor types that can
// safely supply it. AB+ is the universal recipient, O- the universal donor.
var Compatibility = map[BloodType][]BloodType{
	APositive:  {APositive, ANegative, OPositive, ONegative},
	ANegative:  {ANegative, ONegative},
	BPositive:  {BPositive, BNegative, OPositive, ONegative},
	BNegative:  {BNegative, ONegative},
	ABPositive: {APositive, ANegative, BPositive, BNegative, ABPositive, ABNegative, OPositive, ONegative},
	ABNegative: {ABNegative, ANegative, BNegative, ONegative},
	OPositive:  {OPositive, ONegative},
	ONegative:  {ONegative},
}

// CanDonate reports whether a donor of type donor can supply a recipient
// needing type recipient.
func CanDonate(donor, recipient BloodType) bool {
	for _, t := range Compatibility[recipient] {
		if t == donor {
			return true
		}
	}
	return false
}
