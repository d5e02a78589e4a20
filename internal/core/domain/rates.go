package domain

// hourlyRates maps a grade to its hourly billing rate. Rates are
// EUR-denominated regardless of the mission's own currency; the firm keeps a
// single rate card and does not convert.
var hourlyRates = map[Grade]float64{
	GradeJunior:        100,
	GradeSenior:        140,
	GradeManager:       200,
	GradeSeniorManager: 250,
	GradeDirector:      300,
	GradePartner:       400,
}

// HourlyRate returns the hourly rate for a grade. Grades without a rate
// (Stagiaire, unknown) bill at zero.
func HourlyRate(g Grade) float64 {
	return hourlyRates[g]
}
