package domain

// Grade represents collaborator seniority
type Grade string

const (
	GradeStagiaire     Grade = "Stagiaire"
	GradeJunior        Grade = "Junior"
	GradeSenior        Grade = "Senior"
	GradeManager       Grade = "Manager"
	GradeSeniorManager Grade = "Senior Manager"
	GradePartner       Grade = "Partner"
	GradeDirector      Grade = "Director"
)

// Grades lists all valid grades
var Grades = []Grade{
	GradeStagiaire,
	GradeJunior,
	GradeSenior,
	GradeManager,
	GradeSeniorManager,
	GradePartner,
	GradeDirector,
}

// IsValid checks if the grade is one of the enumerated values
func (g Grade) IsValid() bool {
	for _, v := range Grades {
		if g == v {
			return true
		}
	}
	return false
}

// Stage represents a mission's workflow position
type Stage string

const (
	StageOpportunite     Stage = "opportunite"
	StageLettreEnvoyee   Stage = "lettre_envoyee"
	StageLettreSignee    Stage = "lettre_signee"
	StageStaffTraitement Stage = "staff_traitement"
	StageRevueManager    Stage = "revue_manager"
	StageRevueAssocies   Stage = "revue_associes"
	StageLivrableEnvoye  Stage = "livrable_envoye"
	StageSimpleSuivi     Stage = "simple_suivi"
)

// Stages lists all stages in canonical order. simple_suivi sits outside the
// normal progression and can be set at any time for passively monitored cases.
var Stages = []Stage{
	StageOpportunite,
	StageLettreEnvoyee,
	StageLettreSignee,
	StageStaffTraitement,
	StageRevueManager,
	StageRevueAssocies,
	StageLivrableEnvoye,
	StageSimpleSuivi,
}

// IsValid checks if the stage is one of the enumerated values.
// Transitions are deliberately unrestricted: any editor may move a mission
// to any stage at any time.
func (s Stage) IsValid() bool {
	for _, v := range Stages {
		if s == v {
			return true
		}
	}
	return false
}

// ServiceLine represents the firm's service line
type ServiceLine string

const (
	ServiceTLS      ServiceLine = "TLS"
	ServiceGCS      ServiceLine = "GCS"
	ServiceLT       ServiceLine = "LT"
	ServiceAdvisory ServiceLine = "Advisory"
)

// ServiceLines lists all valid service lines
var ServiceLines = []ServiceLine{ServiceTLS, ServiceGCS, ServiceLT, ServiceAdvisory}

// IsValid checks if the service line is one of the enumerated values
func (s ServiceLine) IsValid() bool {
	for _, v := range ServiceLines {
		if s == v {
			return true
		}
	}
	return false
}

// Currency represents a billing currency
type Currency string

const (
	CurrencyGNF Currency = "GNF"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Currencies lists all valid currencies
var Currencies = []Currency{CurrencyGNF, CurrencyUSD, CurrencyEUR}

// IsValid checks if the currency is one of the enumerated values
func (c Currency) IsValid() bool {
	for _, v := range Currencies {
		if c == v {
			return true
		}
	}
	return false
}

// InternalClientName is the sentinel client marking non-billable internal work
const InternalClientName = "INTERNE"

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
