package jurisdiction

// Weight keys recognized in a profile's priorityWeights table. Each key names
// one risk factor; the scoring engine looks weights up by these names.
const (
	WeightAgeUnder12              = "ageUnder12"
	WeightAge12To17               = "age12to17"
	WeightAge65Plus               = "age65Plus"
	WeightMissing72h              = "missing72h"
	WeightMissing48h              = "missing48h"
	WeightMissing24h              = "missing24h"
	WeightMedicalCondition        = "hasMedicalCondition"
	WeightDailyMedication         = "requiresDailyMedication"
	WeightMentalHealthCondition   = "hasMentalHealthCondition"
	WeightSuicidalRisk            = "suicidalRisk"
	WeightSuspectedAbduction      = "suspectedAbduction"
	WeightDomesticViolenceHistory = "domesticViolenceHistory"
	WeightOutOfCharacter          = "outOfCharacter"
	WeightNoFinancialResources    = "noFinancialResources"
	WeightAdverseWeather          = "adverseWeather"
)

// RequiredWeightKeys lists every weight a valid profile must define.
var RequiredWeightKeys = []string{
	WeightAgeUnder12,
	WeightAge12To17,
	WeightAge65Plus,
	WeightMissing72h,
	WeightMissing48h,
	WeightMissing24h,
	WeightMedicalCondition,
	WeightDailyMedication,
	WeightMentalHealthCondition,
	WeightSuicidalRisk,
	WeightSuspectedAbduction,
	WeightDomesticViolenceHistory,
	WeightOutOfCharacter,
	WeightNoFinancialResources,
	WeightAdverseWeather,
}

// Threshold keys inside priorityWeights.thresholds, least to most severe.
var thresholdKeys = []string{"priority3", "priority2", "priority1", "priority0"}
