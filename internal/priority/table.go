package priority

import "beacon/internal/jurisdiction"

// band groups factors of which at most one may apply. Within a band the
// first matching rule in table order wins.
type band string

const (
	noBand   band = ""
	ageBand  band = "age"
	timeBand band = "time"
)

// factorRule is one row of the scoring table: when applies holds, the
// profile weight named by key is added under that name.
type factorRule struct {
	key     string
	label   string
	band    band
	applies func(f CaseRiskFactors) bool
}

// factorTable is evaluated top to bottom. Order defines both band
// precedence and the order of the audit trail.
var factorTable = []factorRule{
	{key: jurisdiction.WeightAgeUnder12, label: "Child under 12", band: ageBand, applies: ageBetween(0, 12)},
	{key: jurisdiction.WeightAge12To17, label: "Youth aged 12 to 17", band: ageBand, applies: ageBetween(12, 18)},
	{key: jurisdiction.WeightAge65Plus, label: "Senior aged 65 or over", band: ageBand, applies: ageAtLeast(65)},

	{key: jurisdiction.WeightMissing72h, label: "Missing 72 hours or more", band: timeBand, applies: missingAtLeast(72)},
	{key: jurisdiction.WeightMissing48h, label: "Missing 48 hours or more", band: timeBand, applies: missingAtLeast(48)},
	{key: jurisdiction.WeightMissing24h, label: "Missing 24 hours or more", band: timeBand, applies: missingAtLeast(24)},

	{key: jurisdiction.WeightMedicalCondition, label: "Medical condition",
		applies: func(f CaseRiskFactors) bool { return f.HasMedicalCondition }},
	{key: jurisdiction.WeightDailyMedication, label: "Requires daily medication",
		applies: func(f CaseRiskFactors) bool { return f.RequiresDailyMedication }},
	{key: jurisdiction.WeightMentalHealthCondition, label: "Mental health condition",
		applies: func(f CaseRiskFactors) bool { return f.HasMentalHealthCondition }},
	{key: jurisdiction.WeightSuicidalRisk, label: "Suicidal risk",
		applies: func(f CaseRiskFactors) bool { return f.SuicidalRisk }},
	{key: jurisdiction.WeightSuspectedAbduction, label: "Suspected abduction",
		applies: func(f CaseRiskFactors) bool { return f.SuspectedAbduction }},
	{key: jurisdiction.WeightDomesticViolenceHistory, label: "History of domestic violence",
		applies: func(f CaseRiskFactors) bool { return f.DomesticViolenceHistory }},
	{key: jurisdiction.WeightOutOfCharacter, label: "Behaviour out of character",
		applies: func(f CaseRiskFactors) bool { return f.OutOfCharacter }},
	{key: jurisdiction.WeightNoFinancialResources, label: "No access to financial resources",
		applies: func(f CaseRiskFactors) bool { return f.HasFinancialResources != nil && !*f.HasFinancialResources }},
	{key: jurisdiction.WeightAdverseWeather, label: "Adverse weather",
		applies: func(f CaseRiskFactors) bool { return f.AdverseWeather }},
}

func ageBetween(lo, hi float64) func(CaseRiskFactors) bool {
	return func(f CaseRiskFactors) bool {
		return f.Age != nil && *f.Age >= lo && *f.Age < hi
	}
}

func ageAtLeast(min float64) func(CaseRiskFactors) bool {
	return func(f CaseRiskFactors) bool {
		return f.Age != nil && *f.Age >= min
	}
}

func missingAtLeast(hours float64) func(CaseRiskFactors) bool {
	return func(f CaseRiskFactors) bool {
		return f.HoursMissing != nil && *f.HoursMissing >= hours
	}
}

// FactorKeys returns the weight keys of the scoring table in evaluation order.
func FactorKeys() []string {
	keys := make([]string, len(factorTable))
	for i, r := range factorTable {
		keys[i] = r.key
	}
	return keys
}
