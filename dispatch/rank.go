package dispatch

import (
	"math"
	"sort"

	"go-lifelink/mlmodel"
	"go-lifelink/types"
)

const (
	exactMatchScore      = 50.0
	compatibleMatchScore = 30.0
	maxProximityScore    = 40.0
	recencyBonus         = 10.0
	recencyThresholdDays = 365
)

// Donor is a dispatch candidate as submitted by a hospital.
type Donor struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Location            string          `json:"location"` // graph node name
	BloodType           types.BloodType `json:"bloodType"`
	Age                 int             `json:"age"`
	WeightKG            float64         `json:"weightKg"`
	PastDonations       int             `json:"pastDonations"`
	LastDonationDaysAgo int             `json:"lastDonationDaysAgo"`
	HasHealthIssues     bool            `json:"hasHealthIssues"`
}

// RankedDonor is a donor after distance, probability and scoring.
type RankedDonor struct {
	Donor
	DistanceKM            float64 `json:"distanceKm"`
	AcceptanceProbability float64 `json:"acceptanceProbability"`
	LikelyToAccept        bool    `json:"likelyToAccept"`
	DispatchScore         float64 `json:"dispatchScore"`
}

// RankDonors scores donors for a requested blood type: exact type match beats
// compatible match, incompatible donors are dropped, closer donors earn up to
// 40 points, and donors who haven't given in over a year earn a rotation
// bonus. Output is sorted by score descending (stable, so input order breaks
// ties).
func RankDonors(donors []RankedDonor, requested types.BloodType) []RankedDonor {
	ranked := make([]RankedDonor, 0, len(donors))
	for _, d := range donors {
		var score float64
		switch {
		case d.BloodType == requested:
			score += exactMatchScore
		case types.CanDonate(d.BloodType, requested):
			score += compatibleMatchScore
		default:
			continue
		}

		score += math.Max(0, maxProximityScore-d.DistanceKM)

		if d.LastDonationDaysAgo > recencyThresholdDays {
			score += recencyBonus
		}

		d.DispatchScore = math.Round(score*100) / 100
		ranked = append(ranked, d)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DispatchScore > ranked[j].DispatchScore
	})
	return ranked
}

const (
	// Distance assigned to donors whose location is absent from the graph.
	fallbackDistanceKM = 10.0
	// Penalty distance for locations present but unreachable.
	unreachableDistanceKM = 20.0
)

// ResolveDistances fills DistanceKM for each donor using shortest paths from
// the hospital node, then attaches acceptance probability from the model.
func ResolveDistances(graph *CityGraph, hospital string, donors []Donor) []RankedDonor {
	model := mlmodel.NewDonationProbabilityModel()

	out := make([]RankedDonor, 0, len(donors))
	for _, d := range donors {
		dist := fallbackDistanceKM
		if graph.HasNode(d.Location) {
			if found, _ := graph.ShortestPath(hospital, d.Location); math.IsInf(found, 1) {
				dist = unreachableDistanceKM
			} else {
				dist = found
			}
		}

		prob := model.PredictProbability(dist, d.PastDonations)
		out = append(out, RankedDonor{
			Donor:                 d,
			DistanceKM:            dist,
			AcceptanceProbability: prob,
			LikelyToAccept:        model.Classify(dist, d.PastDonations),
		})
	}
	return out
}
