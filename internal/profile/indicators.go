package profile

// Indicator types as they appear in the WHO road safety table.
const (
	NationalStrategy    = "Existence of a national road safety strategy"
	LeadAgency          = "Existence of a road safety lead agency"
	StrategyFunding     = "Availability of funding for national road safety strategy"
	NationalSpeedLimits = "Existence of national speed limits"
	SeatBeltLaw         = "Existence of a national seat-belt law"
	DrinkDrivingLaw     = "Existence of a national drink-driving law"
	ChildRestraintLaw   = "Existence of a national child-restraint law"

	SeatBeltWearingRate = "Seat-belt wearing rate (%)"
	DeathDistribution   = "Distribution of road traffic deaths by type of road user (%)"
	MaximumSpeedLimits  = "Maximum speed limits"
	BACLimits           = "Blood Alcohol Concentration (BAC) limit for drivers"

	helmetLawFragment       = "helmet law"
	estimatedDeathsFragment = "Estimated number of road traffic deaths"
	deathRateFragment       = "death rate"
)

// SnapshotIndicators are the policy flags shown at the top of a profile.
var SnapshotIndicators = []string{
	NationalStrategy,
	LeadAgency,
	StrategyFunding,
	NationalSpeedLimits,
	SeatBeltLaw,
	DrinkDrivingLaw,
	ChildRestraintLaw,
}

const (
	NoData           = "No data"
	HelmetNoData     = "Not applicable / No data"
	speedLimitSuffix = " km/h"
)
