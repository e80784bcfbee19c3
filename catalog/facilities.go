package catalog

import "go-lifelink/types"

// defaultFacilities is the demo catalog standing in for a real facility
// registry. Coordinates cluster around central Delhi.
func defaultFacilities() []Facility {
	return []Facility{
		{
			ID:            "del-001",
			Name:          "Red Crescent Central Blood Bank",
			Address:       "1 Connaught Place, New Delhi",
			Location:      types.Coordinate{Lat: 28.6315, Long: 77.2167},
			ContactNumber: "+91-11-2334-0000",
			Inventory: map[types.BloodType]int{
				types.APositive: 18, types.ANegative: 4,
				types.BPositive: 12, types.BNegative: 2,
				types.OPositive: 20, types.ONegative: 6,
				types.ABPositive: 8, types.ABNegative: 1,
			},
		},
		{
			ID:            "del-002",
			Name:          "City Hospital Transfusion Unit",
			Address:       "44 Lodhi Road, New Delhi",
			Location:      types.Coordinate{Lat: 28.5918, Long: 77.2273},
			ContactNumber: "+91-11-2461-1122",
			Inventory: map[types.BloodType]int{
				types.APositive: 9, types.ANegative: 0,
				types.BPositive: 15, types.BNegative: 5,
				types.OPositive: 15, types.ONegative: 3,
				types.ABPositive: 4, types.ABNegative: 0,
			},
		},
		{
			ID:            "del-003",
			Name:          "LifeStream Donation Centre",
			Address:       "12 Karol Bagh Main Rd, New Delhi",
			Location:      types.Coordinate{Lat: 28.6517, Long: 77.1907},
			ContactNumber: "+91-11-2875-3344",
			Inventory: map[types.BloodType]int{
				types.APositive: 25, types.ANegative: 7,
				types.BPositive: 0, types.BNegative: 1,
				types.OPositive: 11, types.ONegative: 12,
				types.ABPositive: 6, types.ABNegative: 2,
			},
		},
		{
			ID:            "del-004",
			Name:          "Eastside Community Blood Bank",
			Address:       "7 Vikas Marg, Laxmi Nagar, Delhi",
			Location:      types.Coordinate{Lat: 28.6362, Long: 77.2780},
			ContactNumber: "+91-11-2252-8899",
			Inventory: map[types.BloodType]int{
				types.APositive: 3, types.ANegative: 1,
				types.BPositive: 22, types.BNegative: 4,
				types.OPositive: 9, types.ONegative: 0,
				types.ABPositive: 14, types.ABNegative: 3,
			},
		},
		{
			ID:            "del-005",
			Name:          "South District Medical Reserve",
			Address:       "3 Press Enclave Rd, Saket, Delhi",
			Location:      types.Coordinate{Lat: 28.5245, Long: 77.2066},
			ContactNumber: "+91-11-2956-7710",
			Inventory: map[types.BloodType]int{
				types.APositive: 12, types.ANegative: 2,
				types.BPositive: 7, types.BNegative: 0,
				types.OPositive: 30, types.ONegative: 8,
				types.ABPositive: 2, types.ABNegative: 1,
			},
		},
		{
			ID:            "del-006",
			Name:          "Northline Teaching Hospital Bank",
			Address:       "19 GT Karnal Rd, Model Town, Delhi",
			Location:      types.Coordinate{Lat: 28.7041, Long: 77.1925},
			ContactNumber: "+91-11-2744-2201",
			Inventory: map[types.BloodType]int{
				types.APositive: 6, types.ANegative: 3,
				types.BPositive: 10, types.BNegative: 6,
				types.OPositive: 0, types.ONegative: 2,
				types.ABPositive: 9, types.ABNegative: 4,
			},
		},
	}
}
