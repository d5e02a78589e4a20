package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
	"github.com/Rajo-Lahatra/JMC/internal/core/catalog"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"

	"gorm.io/gorm"
)

// Mission service errors
var (
	ErrMissionNotFound = errors.New("mission not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrPartnerNotFound = errors.New("partner not found")
	ErrNotAPartner     = errors.New("responsible partner must have the Partner grade")
	ErrNegativeAmount  = errors.New("amounts must be non-negative")
)

// MissionService handles mission business logic
type MissionService struct {
	missionRepo   *repositories.MissionRepository
	timesheetRepo *repositories.TimesheetRepository
	clientRepo    repositories.ClientRepository
	collabRepo    repositories.CollaboratorRepository
}

// NewMissionService creates a new mission service
func NewMissionService(
	missionRepo *repositories.MissionRepository,
	timesheetRepo *repositories.TimesheetRepository,
	clientRepo repositories.ClientRepository,
	collabRepo repositories.CollaboratorRepository,
) *MissionService {
	return &MissionService{
		missionRepo:   missionRepo,
		timesheetRepo: timesheetRepo,
		clientRepo:    clientRepo,
		collabRepo:    collabRepo,
	}
}

// CreateMissionInput represents create mission input
type CreateMissionInput struct {
	DossierNumber    string     `json:"dossier_number"`
	ClientID         *string    `json:"client_id,omitempty"`
	ClientName       string     `json:"client_name,omitempty"`
	Title            string     `json:"title"`
	Description      *string    `json:"description,omitempty"`
	Service          string     `json:"service"`
	CategoryCode     string     `json:"category_code"`
	PrestationCode   string     `json:"prestation_code"`
	Stage            string     `json:"stage,omitempty"`
	AssigneeIDs      []string   `json:"assignee_ids,omitempty"`
	SituationState   *string    `json:"situation_state,omitempty"`
	SituationActions *string    `json:"situation_actions,omitempty"`
	Billable         bool       `json:"billable"`
	Currency         string     `json:"currency,omitempty"`
	FeesAmount       *float64   `json:"fees_amount,omitempty"`
	InvoiceAmount    *float64   `json:"invoice_amount,omitempty"`
	RecoveryAmount   *float64   `json:"recovery_amount,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	PartnerID        *string    `json:"partner_id,omitempty"`
}

// UpdateMissionInput mirrors creation minus the identity fields. A nil
// AssigneeIDs leaves the assigned staff untouched; an empty slice clears it.
type UpdateMissionInput struct {
	DossierNumber    string     `json:"dossier_number"`
	ClientID         *string    `json:"client_id,omitempty"`
	ClientName       string     `json:"client_name,omitempty"`
	Title            string     `json:"title"`
	Description      *string    `json:"description,omitempty"`
	Service          string     `json:"service"`
	CategoryCode     string     `json:"category_code"`
	PrestationCode   string     `json:"prestation_code"`
	Stage            string     `json:"stage"`
	AssigneeIDs      *[]string  `json:"assignee_ids,omitempty"`
	SituationState   *string    `json:"situation_state,omitempty"`
	SituationActions *string    `json:"situation_actions,omitempty"`
	Billable         bool       `json:"billable"`
	Currency         string     `json:"currency,omitempty"`
	FeesAmount       *float64   `json:"fees_amount,omitempty"`
	InvoiceAmount    *float64   `json:"invoice_amount,omitempty"`
	RecoveryAmount   *float64   `json:"recovery_amount,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	PartnerID        *string    `json:"partner_id,omitempty"`
}

// Actor identifies who performs an operation: the creator collaborator id
// (nil when the auth account has no staff profile) and the grade driving the
// finance gate.
type Actor struct {
	CollaboratorID *string
	Grade          domain.Grade
}

// CanEditFinance reports whether the actor passes the finance gate
func (a Actor) CanEditFinance() bool {
	return domain.CanEditFinance(a.Grade)
}

// Create validates the input and performs the creation sequence: resolve or
// insert the client first, then the mission, then the collaborator links.
// The mission and its links are written in one transaction; a client insert
// failure aborts before the mission is attempted.
func (s *MissionService) Create(ctx context.Context, input *CreateMissionInput, actor Actor) (*models.Mission, error) {
	if strings.TrimSpace(input.DossierNumber) == "" {
		return nil, domain.ErrDossierRequired
	}
	if !catalog.Valid(input.CategoryCode, input.PrestationCode) {
		return nil, domain.ErrUnknownPrestation
	}

	// Pre-fill the title from the prestation label when left empty.
	title := strings.TrimSpace(input.Title)
	if title == "" {
		if p, ok := catalog.Lookup(input.CategoryCode, input.PrestationCode); ok {
			title = p.Label
		}
	}
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	svc := domain.ServiceLine(input.Service)
	if !svc.IsValid() {
		return nil, domain.ErrInvalidService
	}

	stage := domain.Stage(input.Stage)
	if stage == "" {
		stage = domain.StageOpportunite
	}
	if !stage.IsValid() {
		return nil, domain.ErrInvalidStage
	}

	client, err := s.resolveClient(ctx, input.ClientID, input.ClientName)
	if err != nil {
		return nil, err
	}

	internal := client.Name == domain.InternalClientName || catalog.IsInternal(input.CategoryCode)

	billable := input.Billable
	if internal {
		billable = false
	}

	partnerID := input.PartnerID
	if !internal {
		if partnerID == nil || *partnerID == "" {
			return nil, domain.ErrPartnerRequired
		}
		partner, err := s.collabRepo.GetByID(ctx, *partnerID)
		if err != nil {
			return nil, ErrPartnerNotFound
		}
		if domain.Grade(partner.Grade) != domain.GradePartner {
			return nil, ErrNotAPartner
		}
	} else if partnerID != nil && *partnerID == "" {
		partnerID = nil
	}

	currency := domain.Currency(input.Currency)
	if currency == "" {
		currency = domain.CurrencyGNF
	}
	if !currency.IsValid() {
		return nil, domain.ErrInvalidCurrency
	}

	fees, invoice, recovery, err := financeAmounts(billable, actor.CanEditFinance(),
		input.FeesAmount, input.InvoiceAmount, input.RecoveryAmount)
	if err != nil {
		return nil, err
	}

	mission := &models.Mission{
		DossierNumber:    strings.TrimSpace(input.DossierNumber),
		ClientID:         &client.ID,
		ClientName:       client.Name,
		Title:            title,
		Description:      input.Description,
		Service:          string(svc),
		CategoryCode:     input.CategoryCode,
		PrestationCode:   input.PrestationCode,
		Stage:            string(stage),
		SituationState:   input.SituationState,
		SituationActions: input.SituationActions,
		Billable:         billable,
		Currency:         string(currency),
		FeesAmount:       fees,
		InvoiceAmount:    invoice,
		RecoveryAmount:   recovery,
		DueDate:          input.DueDate,
		PartnerID:        partnerID,
		CreatedBy:        actor.CollaboratorID,
	}

	if err := s.missionRepo.Create(ctx, mission, input.AssigneeIDs); err != nil {
		return nil, err
	}
	return mission, nil
}

// resolveClient returns the referenced client, creating one when only a new
// trimmed name is supplied. This runs before the mission insert so a failure
// here leaves no orphaned mission.
func (s *MissionService) resolveClient(ctx context.Context, clientID *string, clientName string) (*models.Client, error) {
	if clientID != nil && *clientID != "" {
		client, err := s.clientRepo.GetByID(ctx, *clientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClientNotFound
			}
			return nil, err
		}
		return client, nil
	}

	name := strings.TrimSpace(clientName)
	if name == "" {
		return nil, domain.ErrClientRequired
	}

	client, err := s.clientRepo.GetByName(ctx, name)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = &models.Client{Name: name}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// financeAmounts decides which financial values get persisted. Non-billable
// missions store nothing; actors outside the finance tier cannot write
// amounts at all.
func financeAmounts(billable, canEdit bool, fees, invoice, recovery *float64) (*float64, *float64, *float64, error) {
	if !billable || !canEdit {
		return nil, nil, nil, nil
	}
	for _, v := range []*float64{fees, invoice, recovery} {
		if v != nil && *v < 0 {
			return nil, nil, nil, ErrNegativeAmount
		}
	}
	return fees, invoice, recovery, nil
}

// GetByID gets a mission by id. The response is shaped by the actor's
// finance capability.
func (s *MissionService) GetByID(ctx context.Context, id string, actor Actor) (*models.MissionResponse, error) {
	mission, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissionNotFound
		}
		return nil, err
	}
	return mission.ToResponse(actor.CanEditFinance()), nil
}

// ListInput represents list input
type ListInput struct {
	Filter *repositories.MissionFilter
	Offset int
	Limit  int
}

// List lists missions with filters pushed into the query
func (s *MissionService) List(ctx context.Context, input *ListInput, actor Actor) ([]*models.MissionResponse, int64, error) {
	missions, total, err := s.missionRepo.List(ctx, input.Filter, input.Offset, input.Limit)
	if err != nil {
		return nil, 0, err
	}

	withFinance := actor.CanEditFinance()
	out := make([]*models.MissionResponse, 0, len(missions))
	for _, m := range missions {
		out = append(out, m.ToResponse(withFinance))
	}
	return out, total, nil
}

// Update performs a full-record write; the last writer wins. Identity fields
// (id, created_by, created_at) never change. Actors outside the finance tier
// keep the stored financial values untouched.
func (s *MissionService) Update(ctx context.Context, id string, input *UpdateMissionInput, actor Actor) (*models.Mission, error) {
	mission, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissionNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(input.DossierNumber) == "" {
		return nil, domain.ErrDossierRequired
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrTitleRequired
	}
	if !catalog.Valid(input.CategoryCode, input.PrestationCode) {
		return nil, domain.ErrUnknownPrestation
	}
	svc := domain.ServiceLine(input.Service)
	if !svc.IsValid() {
		return nil, domain.ErrInvalidService
	}
	stage := domain.Stage(input.Stage)
	if !stage.IsValid() {
		return nil, domain.ErrInvalidStage
	}

	client, err := s.resolveClient(ctx, input.ClientID, input.ClientName)
	if err != nil {
		return nil, err
	}

	internal := client.Name == domain.InternalClientName || catalog.IsInternal(input.CategoryCode)
	billable := input.Billable
	if internal {
		billable = false
	}

	partnerID := input.PartnerID
	if !internal {
		if partnerID == nil || *partnerID == "" {
			return nil, domain.ErrPartnerRequired
		}
		partner, err := s.collabRepo.GetByID(ctx, *partnerID)
		if err != nil {
			return nil, ErrPartnerNotFound
		}
		if domain.Grade(partner.Grade) != domain.GradePartner {
			return nil, ErrNotAPartner
		}
	}

	currency := domain.Currency(input.Currency)
	if currency == "" {
		currency = domain.Currency(mission.Currency)
	}
	if !currency.IsValid() {
		return nil, domain.ErrInvalidCurrency
	}

	mission.DossierNumber = strings.TrimSpace(input.DossierNumber)
	mission.ClientID = &client.ID
	mission.ClientName = client.Name
	mission.Title = strings.TrimSpace(input.Title)
	mission.Description = input.Description
	mission.Service = string(svc)
	mission.CategoryCode = input.CategoryCode
	mission.PrestationCode = input.PrestationCode
	mission.Stage = string(stage)
	mission.SituationState = input.SituationState
	mission.SituationActions = input.SituationActions
	mission.Billable = billable
	mission.DueDate = input.DueDate
	mission.PartnerID = partnerID

	if actor.CanEditFinance() {
		fees, invoice, recovery, err := financeAmounts(billable, true,
			input.FeesAmount, input.InvoiceAmount, input.RecoveryAmount)
		if err != nil {
			return nil, err
		}
		mission.Currency = string(currency)
		mission.FeesAmount = fees
		mission.InvoiceAmount = invoice
		mission.RecoveryAmount = recovery
	} else if !billable {
		mission.FeesAmount = nil
		mission.InvoiceAmount = nil
		mission.RecoveryAmount = nil
	}

	// Preloaded relations must not be saved back.
	mission.Client = nil
	mission.Partner = nil
	mission.Creator = nil
	mission.Assignees = nil

	if err := s.missionRepo.Update(ctx, mission); err != nil {
		return nil, err
	}

	if input.AssigneeIDs != nil {
		if err := s.missionRepo.ReplaceLinks(ctx, mission.ID, *input.AssigneeIDs); err != nil {
			return nil, err
		}
	}

	return mission, nil
}

// Delete removes a mission together with its link and timesheet rows
func (s *MissionService) Delete(ctx context.Context, id string) error {
	if _, err := s.missionRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMissionNotFound
		}
		return err
	}
	return s.missionRepo.Delete(ctx, id)
}

// Duplicate copies a mission under a fresh id with a "-copy" dossier suffix.
// Links and timesheets are not copied.
func (s *MissionService) Duplicate(ctx context.Context, id string, actor Actor) (*models.Mission, error) {
	src, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissionNotFound
		}
		return nil, err
	}

	copyMission := *src
	copyMission.ID = ""
	copyMission.DossierNumber = src.DossierNumber + "-copy"
	copyMission.CreatedBy = actor.CollaboratorID
	copyMission.CreatedAt = time.Time{}
	copyMission.UpdatedAt = time.Time{}
	copyMission.Client = nil
	copyMission.Partner = nil
	copyMission.Creator = nil
	copyMission.Assignees = nil

	if err := s.missionRepo.Create(ctx, &copyMission, nil); err != nil {
		return nil, err
	}
	return &copyMission, nil
}

// stageLabels are the display labels used in situation mails
var stageLabels = map[domain.Stage]string{
	domain.StageOpportunite:     "Opportunité",
	domain.StageLettreEnvoyee:   "Lettre de mission envoyée",
	domain.StageLettreSignee:    "Lettre de mission signée",
	domain.StageStaffTraitement: "Traitement interne",
	domain.StageRevueManager:    "Revue manager",
	domain.StageRevueAssocies:   "Revue des associés",
	domain.StageLivrableEnvoye:  "Livrable envoyé",
	domain.StageSimpleSuivi:     "Suivi simple",
}

// SituationEmail is a composed status mail; the caller copies the body or
// opens the mailto link. Nothing is sent server-side.
type SituationEmail struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	MailtoURI string `json:"mailto_uri"`
}

// ComposeSituationEmail builds the templated status mail for a mission
func (s *MissionService) ComposeSituationEmail(ctx context.Context, id, recipient string) (*SituationEmail, error) {
	mission, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissionNotFound
		}
		return nil, err
	}

	subject := fmt.Sprintf("Point de situation – %s – %s", mission.DossierNumber, mission.ClientName)

	var b strings.Builder
	fmt.Fprintf(&b, "Mission : %s\n", mission.Title)
	fmt.Fprintf(&b, "Dossier : %s\n", mission.DossierNumber)
	fmt.Fprintf(&b, "Client : %s\n", mission.ClientName)
	fmt.Fprintf(&b, "Étape : %s\n", stageLabels[domain.Stage(mission.Stage)])
	if mission.SituationState != nil && *mission.SituationState != "" {
		fmt.Fprintf(&b, "\nSituation actuelle :\n%s\n", *mission.SituationState)
	}
	if mission.SituationActions != nil && *mission.SituationActions != "" {
		fmt.Fprintf(&b, "\nActions à prendre :\n%s\n", *mission.SituationActions)
	}
	body := b.String()

	mailto := fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		url.QueryEscape(recipient),
		url.QueryEscape(subject),
		url.QueryEscape(body),
	)

	return &SituationEmail{Subject: subject, Body: body, MailtoURI: mailto}, nil
}
