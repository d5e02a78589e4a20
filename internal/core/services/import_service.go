package services

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"

	"github.com/xuri/excelize/v2"
)

// Import errors
var (
	ErrEmptySheet        = errors.New("the file contains no data rows")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// ImportService ingests mission spreadsheets. Column names follow the
// firm's historical export format; missing fields take creation defaults.
type ImportService struct {
	missionRepo *repositories.MissionRepository
}

// NewImportService creates a new import service
func NewImportService(missionRepo *repositories.MissionRepository) *ImportService {
	return &ImportService{missionRepo: missionRepo}
}

// ImportResult summarizes a bulk import
type ImportResult struct {
	Rows     int `json:"rows"`
	Imported int `json:"imported"`
}

// Import parses the upload by extension and bulk-inserts the missions as a
// whole batch; any insert failure rolls back the entire file.
func (s *ImportService) Import(ctx context.Context, filename string, r io.Reader) (*ImportResult, error) {
	var rows [][]string
	var err error

	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".xlsx"):
		rows, err = readXLSX(r)
	case strings.HasSuffix(strings.ToLower(filename), ".csv"):
		rows, err = readCSV(r)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	header := rows[0]
	missions := make([]*models.Mission, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := mapRow(header, row)
		if m == nil {
			continue
		}
		missions = append(missions, m)
	}
	if len(missions) == 0 {
		return nil, ErrEmptySheet
	}

	if err := s.missionRepo.BulkInsert(ctx, missions); err != nil {
		return nil, err
	}

	return &ImportResult{Rows: len(rows) - 1, Imported: len(missions)}, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	return f.GetRows(sheets[0])
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// columnAliases maps the historical export headers onto mission fields
var columnAliases = map[string][]string{
	"dossier":      {"Dossier", "Numéro"},
	"client":       {"Client", "Nom du client"},
	"title":        {"Titre", "Objet"},
	"service":      {"Service"},
	"fees":         {"Honoraires"},
	"invoiced":     {"Facturé"},
	"recovered":    {"Recouvré"},
	"due":          {"Échéance"},
	"observations": {"Observations"},
	"actions":      {"Actions"},
}

func mapRow(header, row []string) *models.Mission {
	cell := func(field string) string {
		for _, alias := range columnAliases[field] {
			for i, h := range header {
				if i < len(row) && strings.TrimSpace(h) == alias {
					return strings.TrimSpace(row[i])
				}
			}
		}
		return ""
	}

	dossier := cell("dossier")
	client := cell("client")
	if dossier == "" && client == "" {
		// Skip fully blank rows rather than importing empty shells.
		return nil
	}

	service := cell("service")
	if !domain.ServiceLine(service).IsValid() {
		service = string(domain.ServiceTLS)
	}

	m := &models.Mission{
		DossierNumber:  dossier,
		ClientName:     client,
		Title:          cell("title"),
		Service:        service,
		Stage:          string(domain.StageOpportunite),
		Billable:       true,
		Currency:       string(domain.CurrencyGNF),
		FeesAmount:     parseAmount(cell("fees")),
		InvoiceAmount:  parseAmount(cell("invoiced")),
		RecoveryAmount: parseAmount(cell("recovered")),
	}

	if obs := cell("observations"); obs != "" {
		m.SituationState = &obs
	}
	if actions := cell("actions"); actions != "" {
		m.SituationActions = &actions
	}
	if due := cell("due"); due != "" {
		if d, err := parseDate(due); err == nil {
			m.DueDate = &d
		} else {
			log.Printf("warn: unparseable due date %q, skipped", due)
		}
	}

	return m
}

func parseAmount(s string) *float64 {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 {
		return nil
	}
	return &v
}

var dateLayouts = []string{"2006-01-02", "02/01/2006", "2006-01-02T15:04:05Z07:00"}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
