package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-lifelink/dispatch"
	"go-lifelink/types"
)

// demoCityGraph stands in for a road network loaded from a map service.
func demoCityGraph() *dispatch.CityGraph {
	g := dispatch.NewCityGraph()
	g.AddEdge("Hospital_A", "Central_Hub", 5)
	g.AddEdge("Central_Hub", "Loc_North", 3)
	g.AddEdge("Central_Hub", "Loc_South", 4)
	g.AddEdge("Loc_North", "Donor_1_Home", 2)
	g.AddEdge("Loc_South", "Donor_2_Home", 2)
	return g
}

// FindBestDonor screens, locates and ranks candidate donors for a hospital's
// blood request: eligibility rules first, Dijkstra distances second,
// acceptance probability third, compatibility-weighted ranking last.
func FindBestDonor(c *gin.Context) {
	var request struct {
		HospitalLocation string           `json:"hospitalLocation"`
		BloodType        string           `json:"bloodType"`
		Donors           []dispatch.Donor `json:"donors"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bt, err := types.ParseBloodType(request.BloodType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	graph := demoCityGraph()
	hospital := request.HospitalLocation
	if !graph.HasNode(hospital) {
		hospital = "Hospital_A"
	}

	now := time.Now()
	var eligible []dispatch.Donor
	for _, donor := range request.Donors {
		input := dispatch.EligibilityInput{
			Age:             donor.Age,
			WeightKG:        donor.WeightKG,
			HasHealthIssues: donor.HasHealthIssues,
		}
		if donor.LastDonationDaysAgo > 0 {
			input.LastDonationDate = now.AddDate(0, 0, -donor.LastDonationDaysAgo).Format("2006-01-02")
		}
		if dispatch.CheckEligibility(input, now).Eligible {
			eligible = append(eligible, donor)
		}
	}

	located := dispatch.ResolveDistances(graph, hospital, eligible)
	ranked := dispatch.RankDonors(located, bt)

	c.JSON(http.StatusOK, gin.H{
		"hospital":           request.HospitalLocation,
		"requestedType":      bt,
		"optimizedSelection": ranked,
	})
}

// AnalyzeDonor runs the full eligibility rule chain for a screening form.
func AnalyzeDonor(c *gin.Context) {
	var input dispatch.EligibilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dispatch.CheckEligibility(input, time.Now()))
}
