package domain

// financeGrades are the grades allowed to view and edit financial fields
// (fees, invoiced and recovered amounts, currency). The same tier gates the
// login audit journal.
var financeGrades = map[Grade]bool{
	GradeManager:       true,
	GradeSeniorManager: true,
	GradePartner:       true,
}

// CanEditFinance reports whether a grade may read or write a mission's
// financial fields. An empty or unknown grade fails closed: callers whose
// session resolves to no collaborator row see nothing.
func CanEditFinance(g Grade) bool {
	return financeGrades[g]
}

// CanViewAuditLog reports whether a grade may read the login journal.
func CanViewAuditLog(g Grade) bool {
	return financeGrades[g]
}
