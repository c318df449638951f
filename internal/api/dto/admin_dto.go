package dto

// CreateRoleRequest payload for new role definitions.
type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

// CreateAdminRequest payload for new admin accounts.
type CreateAdminRequest struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber"`
	EmergencyContact string `json:"emergencyContact"`
	Password         string `json:"password"`
	Age              int    `json:"age"`
	RoleID           string `json:"roleId"`
}

// VerifyRequest payload for verification review decisions.
type VerifyRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// SendBroadcastRequest payload for announcements.
type SendBroadcastRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
	Audience string `json:"audience"`
}

// CreateStreakableItemRequest payload for habit items.
type CreateStreakableItemRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	FrequencyPerDay int    `json:"frequency_per_day,omitempty"`
	IntervalDays    int    `json:"interval_days,omitempty"`
}
