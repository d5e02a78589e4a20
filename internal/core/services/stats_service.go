package services

import (
	"context"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
)

// StatsService computes mission statistics
type StatsService struct {
	missionRepo *repositories.MissionRepository
	clientRepo  repositories.ClientRepository
	collabRepo  repositories.CollaboratorRepository
}

// NewStatsService creates a new stats service
func NewStatsService(
	missionRepo *repositories.MissionRepository,
	clientRepo repositories.ClientRepository,
	collabRepo repositories.CollaboratorRepository,
) *StatsService {
	return &StatsService{
		missionRepo: missionRepo,
		clientRepo:  clientRepo,
		collabRepo:  collabRepo,
	}
}

// ClientStat is a mission count for one client
type ClientStat struct {
	ClientID     string `json:"client_id"`
	ClientName   string `json:"client_name"`
	MissionCount int64  `json:"mission_count"`
}

// CollaboratorStat is a created-missions count for one collaborator
type CollaboratorStat struct {
	CollaboratorID  string `json:"collaborator_id"`
	Name            string `json:"name"`
	MissionsCreated int64  `json:"missions_created"`
}

// MissionsPerClient counts missions grouped by client, zero-filled for
// clients with none.
func (s *StatsService) MissionsPerClient(ctx context.Context) ([]ClientStat, error) {
	counts, err := s.missionRepo.CountByClient(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]ClientStat, 0, len(clients))
	for _, c := range clients {
		stats = append(stats, ClientStat{
			ClientID:     c.ID,
			ClientName:   c.Name,
			MissionCount: counts[c.ID],
		})
	}
	return stats, nil
}

// MissionsPerCollaborator counts missions grouped by creator, zero-filled
// for collaborators who created none.
func (s *StatsService) MissionsPerCollaborator(ctx context.Context) ([]CollaboratorStat, error) {
	counts, err := s.missionRepo.CountByCreator(ctx)
	if err != nil {
		return nil, err
	}
	collabs, err := s.collabRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]CollaboratorStat, 0, len(collabs))
	for _, c := range collabs {
		stats = append(stats, CollaboratorStat{
			CollaboratorID:  c.ID,
			Name:            c.FullName(),
			MissionsCreated: counts[c.ID],
		})
	}
	return stats, nil
}
