package models

import "time"

// CollaboratorResponse DTO
type CollaboratorResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Grade     string    `json:"grade"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Collaborator) ToResponse() *CollaboratorResponse {
	return &CollaboratorResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Grade:     c.Grade,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

// MissionResponse DTO. Financial fields are pointers so they can be omitted
// entirely for viewers that fail the finance gate.
type MissionResponse struct {
	ID               string     `json:"id"`
	DossierNumber    string     `json:"dossier_number"`
	ClientID         *string    `json:"client_id"`
	ClientName       string     `json:"client_name"`
	Title            string     `json:"title"`
	Description      *string    `json:"description"`
	Service          string     `json:"service"`
	CategoryCode     string     `json:"category_code,omitempty"`
	PrestationCode   string     `json:"prestation_code,omitempty"`
	Stage            string     `json:"stage"`
	SituationState   *string    `json:"situation_state"`
	SituationActions *string    `json:"situation_actions"`
	Billable         bool       `json:"billable"`
	Currency         string     `json:"currency,omitempty"`
	FeesAmount       *float64   `json:"fees_amount,omitempty"`
	InvoiceAmount    *float64   `json:"invoice_amount,omitempty"`
	RecoveryAmount   *float64   `json:"recovery_amount,omitempty"`
	DueDate          *time.Time `json:"due_date"`
	PartnerID        *string    `json:"partner_id"`
	PartnerName      string     `json:"partner_name,omitempty"`
	CreatedBy        *string    `json:"created_by"`
	CreatorName      string     `json:"creator_name,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Assignees []*CollaboratorResponse `json:"assignees,omitempty"`
}

// ToResponse builds the mission DTO. withFinance controls whether the
// financial section is exposed; non-billable missions never expose amounts
// regardless of what is stored.
func (m *Mission) ToResponse(withFinance bool) *MissionResponse {
	resp := &MissionResponse{
		ID:               m.ID,
		DossierNumber:    m.DossierNumber,
		ClientID:         m.ClientID,
		ClientName:       m.ClientName,
		Title:            m.Title,
		Description:      m.Description,
		Service:          m.Service,
		CategoryCode:     m.CategoryCode,
		PrestationCode:   m.PrestationCode,
		Stage:            m.Stage,
		SituationState:   m.SituationState,
		SituationActions: m.SituationActions,
		Billable:         m.Billable,
		DueDate:          m.DueDate,
		PartnerID:        m.PartnerID,
		CreatedBy:        m.CreatedBy,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	if m.Client != nil && resp.ClientName == "" {
		resp.ClientName = m.Client.Name
	}
	if m.Partner != nil {
		resp.PartnerName = m.Partner.FullName()
	}
	if m.Creator != nil {
		resp.CreatorName = m.Creator.FullName()
	}
	for _, a := range m.Assignees {
		resp.Assignees = append(resp.Assignees, a.ToResponse())
	}

	if withFinance && m.Billable {
		resp.Currency = m.Currency
		resp.FeesAmount = m.FeesAmount
		resp.InvoiceAmount = m.InvoiceAmount
		resp.RecoveryAmount = m.RecoveryAmount
	}

	return resp
}

// TimesheetResponse DTO with derived valuation fields
type TimesheetResponse struct {
	ID               string    `json:"id"`
	MissionID        string    `json:"mission_id"`
	CollaboratorID   string    `json:"collaborator_id"`
	CollaboratorName string    `json:"collaborator_name,omitempty"`
	Grade            string    `json:"grade,omitempty"`
	DateWorked       time.Time `json:"date_worked"`
	HoursWorked      float64   `json:"hours_worked"`
	HourlyRate       float64   `json:"hourly_rate"`
	Value            float64   `json:"value"`
}
