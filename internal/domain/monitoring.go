package domain

import "time"

// The types below mirror the read models served by the upstream platform for
// the console's monitoring pages. The console never mutates them except where
// an explicit action exists (verification review, streakable item creation).

// VerificationStatus tracks organization/caregiver review outcomes.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// VerificationRequest is a pending identity-review item.
type VerificationRequest struct {
	ID                 string             `json:"id"`
	FullName           string             `json:"full_name"`
	Email              string             `json:"email"`
	PhoneNumber        string             `json:"phone_number,omitempty"`
	Role               Role               `json:"role"`
	OrganizationName   string             `json:"organization_name,omitempty"`
	OrganizationType   string             `json:"organization_type,omitempty"`
	MedicalLicense     string             `json:"medical_license,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	VerificationNote   string             `json:"verification_note,omitempty"`
	SubmittedAt        time.Time          `json:"submitted_at"`
	VerifiedAt         *time.Time         `json:"verified_at,omitempty"`
}

// PainLog is a single pain entry recorded by a warrior.
type PainLog struct {
	ID          string    `json:"id"`
	WarriorID   string    `json:"warrior_id"`
	WarriorName string    `json:"warrior_name,omitempty"`
	PainLevel   int       `json:"pain_level"`
	IsCrisis    bool      `json:"is_crisis"`
	Notes       string    `json:"notes,omitempty"`
	LoggedAt    time.Time `json:"logged_at"`
}

// TaskStatus tracks care-task progress.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskRejected   TaskStatus = "rejected"
)

// TaskRequest is a care task raised for a warrior.
type TaskRequest struct {
	ID            string     `json:"id"`
	WarriorID     string     `json:"warrior_id"`
	WarriorName   string     `json:"warrior_name,omitempty"`
	RequestType   string     `json:"request_type"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	PriorityLevel int        `json:"priority_level,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	TaskStatus    TaskStatus `json:"task_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ConnectionStatus tracks warrior/guardian/caregiver link requests.
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
)

// Connection links two platform accounts.
type Connection struct {
	ID             string           `json:"id"`
	RequesterID    string           `json:"requester_id"`
	RequesterName  string           `json:"requester_name,omitempty"`
	RequesterRole  Role             `json:"requester_role"`
	RecipientID    string           `json:"recipient_id"`
	RecipientName  string           `json:"recipient_name,omitempty"`
	RecipientRole  Role             `json:"recipient_role"`
	Status         ConnectionStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// StreakableItem is a repeatable habit item warriors can adopt.
type StreakableItem struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	FrequencyPerDay int       `json:"frequency_per_day"`
	IntervalDays    int       `json:"interval_days"`
	AdoptionCount   int       `json:"adoption_count,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Broadcast is a platform-wide announcement.
type Broadcast struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Priority       string     `json:"priority"`
	Audience       string     `json:"audience"`
	RecipientCount int        `json:"recipient_count"`
	ReadCount      int        `json:"read_count"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	CreatedBy      string     `json:"created_by"`
}

// DashboardStats is the overview page aggregate.
type DashboardStats struct {
	TotalUsers    int     `json:"totalUsers"`
	ActiveUsers   int     `json:"activeUsers"`
	VerifiedUsers int     `json:"verifiedUsers"`
	CrisisAlerts  int     `json:"crisisAlerts"`
	UserGrowth    float64 `json:"userGrowth"`
}

// PainTrendPoint is one day of aggregated pain data.
type PainTrendPoint struct {
	Date        string  `json:"date"`
	AvgPain     float64 `json:"avgPain"`
	CrisisCount int     `json:"crisisCount"`
}

// AnalyticsData aggregates platform health metrics for the analytics page.
type AnalyticsData struct {
	AvgPainLevel         float64          `json:"avgPainLevel"`
	TotalEntries         int              `json:"totalEntries"`
	MedicationAdherence  float64          `json:"medicationAdherence"`
	ActiveWarriors       int              `json:"activeWarriors"`
	PainTrends           []PainTrendPoint `json:"painTrends"`
}
