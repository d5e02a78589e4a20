package catalog

// Prestation is a single billable service offering within a category.
type Prestation struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Category is one branch of the firm's two-level mission taxonomy.
type Category struct {
	Code        string       `json:"code"`
	Label       string       `json:"label"`
	Prestations []Prestation `json:"prestations"`
}

// InternalCategoryCode marks the category reserved for internal,
// non-billable work. Selecting a prestation under it forces the mission into
// the non-billable branch: no partner, no fees.
const InternalCategoryCode = "F"

// categories is the reference taxonomy shipped with the system. It is not
// persisted per tenant and has no mutation operations.
var categories = []Category{
	{
		Code:  "A",
		Label: "Droit des Affaires & Corporate",
		Prestations: []Prestation{
			{Code: "A1", Label: "Création & Immatriculation d'Entreprise"},
			{Code: "A2", Label: "Conseil Corporate & Gouvernance"},
			{Code: "A3", Label: "Contrats & Vie des Affaires"},
			{Code: "A4", Label: "Fusions-Acquisitions & Restructurations"},
		},
	},
	{
		Code:  "B",
		Label: "Droit Fiscal & Conformité",
		Prestations: []Prestation{
			{Code: "B1", Label: "Conseil et Optimisation Fiscale"},
			{Code: "B2", Label: "Déclarations Fiscales et Travaux de Fin d'Année"},
			{Code: "B3", Label: "Contentieux Fiscal et Relation avec l'Administration"},
			{Code: "B4", Label: "Fiscalité Internationale et Douane"},
		},
	},
	{
		Code:  "C",
		Label: "Droit des Affaires Spécialisé",
		Prestations: []Prestation{
			{Code: "C1", Label: "Droit Minier, Pétrolier et Énergétique"},
			{Code: "C2", Label: "Droit des Marchés Publics"},
			{Code: "C3", Label: "Droit Immobilier, Foncier & Construction"},
			{Code: "C4", Label: "Conformité & Règlementation"},
		},
	},
	{
		Code:  "D",
		Label: "Contentieux & Résolution des Litiges",
		Prestations: []Prestation{
			{Code: "D1", Label: "Contentieux Commercial et Civil"},
			{Code: "D2", Label: "Contentieux Administratif et Public"},
			{Code: "D3", Label: "Modes Alternatifs de Règlement des Litiges (MARD)"},
		},
	},
	{
		Code:  "E",
		Label: "Missions Transverses & Consulting Stratégique",
		Prestations: []Prestation{
			{Code: "E1", Label: "Audit Juridique et Due Diligence"},
			{Code: "E2", Label: "Conseil aux Investisseurs Étrangers"},
			{Code: "E3", Label: "Conseil en Restructuration et Transmission"},
		},
	},
	{
		Code:  "F",
		Label: "Missions Internes & Administratives",
		Prestations: []Prestation{
			{Code: "F1", Label: "Réunions Internes & Développement d'Affaires"},
			{Code: "F2", Label: "Gestion et Administration"},
		},
	},
}

// Categories returns the full taxonomy.
func Categories() []Category {
	return categories
}

// Get returns a category by code.
func Get(code string) (Category, bool) {
	for _, c := range categories {
		if c.Code == code {
			return c, true
		}
	}
	return Category{}, false
}

// Prestations enumerates the prestations of a category.
func Prestations(categoryCode string) ([]Prestation, bool) {
	c, ok := Get(categoryCode)
	if !ok {
		return nil, false
	}
	return c.Prestations, true
}

// Lookup retrieves a prestation label, used to pre-fill mission titles.
func Lookup(categoryCode, prestationCode string) (Prestation, bool) {
	c, ok := Get(categoryCode)
	if !ok {
		return Prestation{}, false
	}
	for _, p := range c.Prestations {
		if p.Code == prestationCode {
			return p, true
		}
	}
	return Prestation{}, false
}

// Valid reports whether the prestation belongs to the category.
func Valid(categoryCode, prestationCode string) bool {
	_, ok := Lookup(categoryCode, prestationCode)
	return ok
}

// IsInternal reports whether the category holds internal, non-billable work.
func IsInternal(categoryCode string) bool {
	return categoryCode == InternalCategoryCode
}
