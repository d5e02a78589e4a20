package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"

	"gorm.io/gorm"
)

// TimesheetService handles time logging and valuation
type TimesheetService struct {
	timesheetRepo *repositories.TimesheetRepository
	missionRepo   *repositories.MissionRepository
	collabRepo    repositories.CollaboratorRepository
}

// NewTimesheetService creates a new timesheet service
func NewTimesheetService(
	timesheetRepo *repositories.TimesheetRepository,
	missionRepo *repositories.MissionRepository,
	collabRepo repositories.CollaboratorRepository,
) *TimesheetService {
	return &TimesheetService{
		timesheetRepo: timesheetRepo,
		missionRepo:   missionRepo,
		collabRepo:    collabRepo,
	}
}

// AddEntryInput represents an "add time" action; all fields are required
type AddEntryInput struct {
	MissionID      string    `json:"mission_id"`
	CollaboratorID string    `json:"collaborator_id"`
	DateWorked     time.Time `json:"date_worked"`
	HoursWorked    float64   `json:"hours_worked"`
}

// AddEntry validates and inserts a timesheet entry
func (s *TimesheetService) AddEntry(ctx context.Context, input *AddEntryInput) (*models.TimesheetEntry, error) {
	if input.MissionID == "" || input.CollaboratorID == "" || input.DateWorked.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if input.HoursWorked <= 0 {
		return nil, domain.ErrInvalidHours
	}

	if _, err := s.missionRepo.GetByID(ctx, input.MissionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissionNotFound
		}
		return nil, err
	}
	if _, err := s.collabRepo.GetByID(ctx, input.CollaboratorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollaboratorNotFound
		}
		return nil, err
	}

	entry := &models.TimesheetEntry{
		MissionID:      input.MissionID,
		CollaboratorID: input.CollaboratorID,
		DateWorked:     input.DateWorked,
		HoursWorked:    input.HoursWorked,
	}
	if err := s.timesheetRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes a timesheet entry by id
func (s *TimesheetService) DeleteEntry(ctx context.Context, id string) error {
	if _, err := s.timesheetRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTimesheetNotFound
		}
		return err
	}
	return s.timesheetRepo.Delete(ctx, id)
}

// MissionValuation is the derived time value of a mission, recomputed on
// every read and never persisted.
type MissionValuation struct {
	MissionID     string                      `json:"mission_id"`
	Entries       []*models.TimesheetResponse `json:"entries"`
	TotalHours    float64                     `json:"total_hours"`
	Valuation     float64                     `json:"valuation"`
	InvoiceAmount float64                     `json:"invoice_amount"`
	Variance      float64                     `json:"variance"`
}

// Valuation gathers a mission's timesheet entries and values each at the
// hourly rate of the collaborator's grade. Entries whose collaborator cannot
// be resolved bill at rate 0; that silent undercount is logged so the data
// gap is at least visible.
func (s *TimesheetService) Valuation(ctx context.Context, missionID string) (*MissionValuation, error) {
	mission, err := s.missionRepo.GetByID(ctx, missionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissionNotFound
		}
		return nil, err
	}

	entries, err := s.timesheetRepo.ListByMission(ctx, missionID)
	if err != nil {
		return nil, err
	}

	result := &MissionValuation{
		MissionID: missionID,
		Entries:   make([]*models.TimesheetResponse, 0, len(entries)),
	}

	for _, e := range entries {
		resp := &models.TimesheetResponse{
			ID:             e.ID,
			MissionID:      e.MissionID,
			CollaboratorID: e.CollaboratorID,
			DateWorked:     e.DateWorked,
			HoursWorked:    e.HoursWorked,
		}
		if e.Collaborator != nil {
			resp.CollaboratorName = e.Collaborator.FullName()
			resp.Grade = e.Collaborator.Grade
			resp.HourlyRate = domain.HourlyRate(domain.Grade(e.Collaborator.Grade))
		} else {
			log.Printf("warn: timesheet %s references unknown collaborator %s, valued at 0", e.ID, e.CollaboratorID)
		}
		resp.Value = resp.HoursWorked * resp.HourlyRate

		result.TotalHours += resp.HoursWorked
		result.Valuation += resp.Value
		result.Entries = append(result.Entries, resp)
	}

	if mission.InvoiceAmount != nil {
		result.InvoiceAmount = *mission.InvoiceAmount
	}
	result.Variance = result.Valuation - result.InvoiceAmount

	return result, nil
}
