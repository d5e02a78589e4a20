package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Auth tables
// ============================================================

// User represents an authentication account. Staff identity lives in
// collaborators; a user row only carries credentials and session state.
type User struct {
	ID        string         `gorm:"primaryKey;type:char(36)" json:"id"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the opaque id
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        string     `gorm:"primaryKey;type:char(36)" json:"id"`
	UserID    string     `gorm:"type:char(36);index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) BeforeCreate(_ *gorm.DB) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	return nil
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// LoginLog represents the login journal. Rows are written once per sign-in
// and never updated; visibility is gated to Manager and above.
type LoginLog struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	UserID    string    `gorm:"type:char(36);index;not null" json:"user_id"`
	LoginTime time.Time `gorm:"not null;index" json:"login_time"`
	UserAgent string    `gorm:"size:255" json:"user_agent"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (LoginLog) TableName() string {
	return "login_logs"
}

func (l *LoginLog) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Staff & clients
// ============================================================

// Collaborator represents collaborators table
type Collaborator struct {
	ID        string         `gorm:"primaryKey;type:char(36)" json:"id"`
	FirstName string         `gorm:"size:100;not null" json:"first_name"`
	LastName  string         `gorm:"size:100;not null" json:"last_name"`
	Grade     string         `gorm:"size:20;not null" json:"grade"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	AuthID    *string        `gorm:"type:char(36);uniqueIndex" json:"auth_id"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Collaborator) TableName() string {
	return "collaborators"
}

func (c *Collaborator) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// FullName returns the display name
func (c *Collaborator) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Client represents clients table. A client named INTERNE marks
// non-billable internal work.
type Client struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:200;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Client) TableName() string {
	return "clients"
}

func (c *Client) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Missions
// ============================================================

// Mission represents missions table
type Mission struct {
	ID               string     `gorm:"primaryKey;type:char(36)" json:"id"`
	DossierNumber    string     `gorm:"size:50;not null;index" json:"dossier_number"`
	ClientID         *string    `gorm:"type:char(36);index" json:"client_id"`
	ClientName       string     `gorm:"size:200" json:"client_name"`
	Title            string     `gorm:"size:200;not null" json:"title"`
	Description      *string    `gorm:"type:text" json:"description"`
	Service          string     `gorm:"size:20;not null" json:"service"`
	CategoryCode     string     `gorm:"size:5" json:"category_code"`
	PrestationCode   string     `gorm:"size:5" json:"prestation_code"`
	Stage            string     `gorm:"size:30;not null;default:'opportunite';index" json:"stage"`
	SituationState   *string    `gorm:"type:text" json:"situation_state"`
	SituationActions *string    `gorm:"type:text" json:"situation_actions"`
	Billable         bool       `gorm:"default:true" json:"billable"`
	Currency         string     `gorm:"size:3;default:'GNF'" json:"currency"`
	FeesAmount       *float64   `gorm:"type:decimal(15,2)" json:"fees_amount"`
	InvoiceAmount    *float64   `gorm:"type:decimal(15,2)" json:"invoice_amount"`
	RecoveryAmount   *float64   `gorm:"type:decimal(15,2)" json:"recovery_amount"`
	DueDate          *time.Time `gorm:"type:date" json:"due_date"`
	PartnerID        *string    `gorm:"type:char(36);index" json:"partner_id"`
	CreatedBy        *string    `gorm:"type:char(36);index" json:"created_by"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Client    *Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Partner   *Collaborator  `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	Creator   *Collaborator  `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Assignees []Collaborator `gorm:"many2many:mission_collaborators;joinForeignKey:MissionID;joinReferences:CollaboratorID" json:"assignees,omitempty"`
}

func (Mission) TableName() string {
	return "missions"
}

func (m *Mission) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MissionCollaborator represents mission_collaborators join table
type MissionCollaborator struct {
	MissionID      string `gorm:"primaryKey;type:char(36)" json:"mission_id"`
	CollaboratorID string `gorm:"primaryKey;type:char(36)" json:"collaborator_id"`
}

func (MissionCollaborator) TableName() string {
	return "mission_collaborators"
}

// TimesheetEntry represents mission_timesheets table
type TimesheetEntry struct {
	ID             string    `gorm:"primaryKey;type:char(36)" json:"id"`
	MissionID      string    `gorm:"type:char(36);not null;index" json:"mission_id"`
	CollaboratorID string    `gorm:"type:char(36);not null;index" json:"collaborator_id"`
	DateWorked     time.Time `gorm:"type:date;not null" json:"date_worked"`
	HoursWorked    float64   `gorm:"type:decimal(6,2);not null" json:"hours_worked"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	Mission      *Mission      `gorm:"foreignKey:MissionID" json:"mission,omitempty"`
	Collaborator *Collaborator `gorm:"foreignKey:CollaboratorID" json:"collaborator,omitempty"`
}

func (TimesheetEntry) TableName() string {
	return "mission_timesheets"
}

func (t *TimesheetEntry) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Auto migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&LoginLog{},
		&Collaborator{},
		&Client{},
		&Mission{},
		&MissionCollaborator{},
		&TimesheetEntry{},
	)
}
