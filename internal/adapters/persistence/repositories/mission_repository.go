package repositories

import (
	"context"
	"strings"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// MissionFilter narrows mission listings. All set fields compose with AND;
// Search matches client name, title and dossier number case-insensitively.
type MissionFilter struct {
	Search    string
	Service   string
	Stage     string
	CreatedBy string
	PartnerID string
	Billable  *bool
}

// MissionRepository handles mission data access
type MissionRepository struct {
	db *gorm.DB
}

// NewMissionRepository creates a new mission repository
func NewMissionRepository(db *gorm.DB) *MissionRepository {
	return &MissionRepository{db: db}
}

// Create inserts a mission and its collaborator links in one transaction.
// The mission id is known before the link rows are written, which the link
// insert relies on.
func (r *MissionRepository) Create(ctx context.Context, mission *models.Mission, assigneeIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mission).Error; err != nil {
			return err
		}
		if len(assigneeIDs) == 0 {
			return nil
		}
		links := make([]models.MissionCollaborator, 0, len(assigneeIDs))
		for _, id := range assigneeIDs {
			links = append(links, models.MissionCollaborator{
				MissionID:      mission.ID,
				CollaboratorID: id,
			})
		}
		return tx.Create(&links).Error
	})
}

// GetByID gets a mission by ID with relations
func (r *MissionRepository) GetByID(ctx context.Context, id string) (*models.Mission, error) {
	var mission models.Mission
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Partner").
		Preload("Creator").
		Preload("Assignees").
		First(&mission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

// List lists missions matching the filter, newest first
func (r *MissionRepository) List(ctx context.Context, filter *MissionFilter, offset, limit int) ([]*models.Mission, int64, error) {
	var missions []*models.Mission
	var total int64

	q := r.applyFilter(r.db.WithContext(ctx).Model(&models.Mission{}), filter)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = r.applyFilter(r.db.WithContext(ctx), filter).
		Preload("Client").
		Preload("Partner").
		Preload("Creator").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}

	err := q.Find(&missions).Error
	return missions, total, err
}

func (r *MissionRepository) applyFilter(q *gorm.DB, filter *MissionFilter) *gorm.DB {
	if filter == nil {
		return q
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(client_name) LIKE ? OR LOWER(title) LIKE ? OR LOWER(dossier_number) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Service != "" {
		q = q.Where("service = ?", filter.Service)
	}
	if filter.Stage != "" {
		q = q.Where("stage = ?", filter.Stage)
	}
	if filter.CreatedBy != "" {
		q = q.Where("created_by = ?", filter.CreatedBy)
	}
	if filter.PartnerID != "" {
		q = q.Where("partner_id = ?", filter.PartnerID)
	}
	if filter.Billable != nil {
		q = q.Where("billable = ?", *filter.Billable)
	}
	return q
}

// Update writes a full mission record (last writer wins)
func (r *MissionRepository) Update(ctx context.Context, mission *models.Mission) error {
	return r.db.WithContext(ctx).Save(mission).Error
}

// Delete removes the mission, its collaborator links and its timesheet rows
// in one transaction, so no link or timesheet row can reference a missing
// mission afterwards.
func (r *MissionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mission_id = ?", id).Delete(&models.MissionCollaborator{}).Error; err != nil {
			return err
		}
		if err := tx.Where("mission_id = ?", id).Delete(&models.TimesheetEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Mission{}, "id = ?", id).Error
	})
}

// GetLinks returns the collaborator link rows for a mission
func (r *MissionRepository) GetLinks(ctx context.Context, missionID string) ([]models.MissionCollaborator, error) {
	var links []models.MissionCollaborator
	err := r.db.WithContext(ctx).Where("mission_id = ?", missionID).Find(&links).Error
	return links, err
}

// ReplaceLinks rewrites the assigned collaborators of a mission
func (r *MissionRepository) ReplaceLinks(ctx context.Context, missionID string, assigneeIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mission_id = ?", missionID).Delete(&models.MissionCollaborator{}).Error; err != nil {
			return err
		}
		if len(assigneeIDs) == 0 {
			return nil
		}
		links := make([]models.MissionCollaborator, 0, len(assigneeIDs))
		for _, id := range assigneeIDs {
			links = append(links, models.MissionCollaborator{
				MissionID:      missionID,
				CollaboratorID: id,
			})
		}
		return tx.Create(&links).Error
	})
}

// CountByClient returns mission counts grouped by client id
func (r *MissionRepository) CountByClient(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "client_id")
}

// CountByCreator returns mission counts grouped by creator id
func (r *MissionRepository) CountByCreator(ctx context.Context) (map[string]int64, error) {
	return r.countBy(ctx, "created_by")
}

func (r *MissionRepository) countBy(ctx context.Context, column string) (map[string]int64, error) {
	// "key" would be the natural alias but is reserved in MySQL.
	type row struct {
		GrpID *string
		Cnt   int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Mission{}).
		Select(column + " AS grp_id, COUNT(*) AS cnt").
		Where(column + " IS NOT NULL").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		if rw.GrpID != nil {
			counts[*rw.GrpID] = rw.Cnt
		}
	}
	return counts, nil
}

// BulkInsert inserts imported missions as a whole; any failure rolls back
// the entire batch.
func (r *MissionRepository) BulkInsert(ctx context.Context, missions []*models.Mission) error {
	if len(missions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&missions).Error
	})
}
