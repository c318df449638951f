package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
)

// ListParams are the common pagination/filter query parameters.
type ListParams struct {
	Limit  int
	Offset int
	Role   string
	Status string
	Search string
}

func (p ListParams) values() url.Values {
	query := url.Values{}
	if p.Limit > 0 {
		query.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		query.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Role != "" {
		query.Set("role", p.Role)
	}
	if p.Status != "" {
		query.Set("status", p.Status)
	}
	if p.Search != "" {
		query.Set("search", p.Search)
	}
	return query
}

// UserList is a paginated user page.
type UserList struct {
	Users []domain.Identity `json:"users"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// PainLogList is a paginated pain-log page.
type PainLogList struct {
	Logs  []domain.PainLog `json:"logs"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// TaskList is a paginated task page.
type TaskList struct {
	Tasks []domain.TaskRequest `json:"tasks"`
	Total int                  `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// ConnectionList is a paginated connection page.
type ConnectionList struct {
	Connections []domain.Connection `json:"connections"`
	Total       int                 `json:"total"`
	Page        int                 `json:"page"`
	Limit       int                 `json:"limit"`
}

// Stats fetches the overview aggregates.
func (c *Client) Stats(ctx context.Context, token string) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", token, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Users lists platform users.
func (c *Client) Users(ctx context.Context, token string, params ListParams) (*UserList, error) {
	var list UserList
	if err := c.do(ctx, http.MethodGet, "/admin/users", token, params.values(), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Verifications lists pending or filtered verification requests.
func (c *Client) Verifications(ctx context.Context, token, status string) ([]domain.VerificationRequest, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	var requests []domain.VerificationRequest
	if err := c.do(ctx, http.MethodGet, "/admin/verifications", token, query, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// Verify records a review decision on a verification request.
func (c *Client) Verify(ctx context.Context, token, id, status, note string) (*domain.VerificationRequest, error) {
	body := map[string]string{"status": status}
	if note != "" {
		body["note"] = note
	}
	var request domain.VerificationRequest
	if err := c.do(ctx, http.MethodPost, "/admin/verifications/"+id+"/verify", token, nil, body, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

// PainLogs lists pain entries.
func (c *Client) PainLogs(ctx context.Context, token string, params ListParams) (*PainLogList, error) {
	var list PainLogList
	if err := c.do(ctx, http.MethodGet, "/admin/pain-logs", token, params.values(), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Tasks lists care tasks.
func (c *Client) Tasks(ctx context.Context, token string, params ListParams) (*TaskList, error) {
	var list TaskList
	if err := c.do(ctx, http.MethodGet, "/admin/tasks", token, params.values(), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Connections lists account links.
func (c *Client) Connections(ctx context.Context, token string, params ListParams) (*ConnectionList, error) {
	var list ConnectionList
	if err := c.do(ctx, http.MethodGet, "/admin/connections", token, params.values(), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// StreakableItems lists habit items.
func (c *Client) StreakableItems(ctx context.Context, token string) ([]domain.StreakableItem, error) {
	var items []domain.StreakableItem
	if err := c.do(ctx, http.MethodGet, "/streakable-items", token, nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateStreakableItemRequest carries a new habit item.
type CreateStreakableItemRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	FrequencyPerDay int    `json:"frequency_per_day,omitempty"`
	IntervalDays    int    `json:"interval_days,omitempty"`
}

// CreateStreakableItem creates a habit item.
func (c *Client) CreateStreakableItem(ctx context.Context, token string, req CreateStreakableItemRequest) (*domain.StreakableItem, error) {
	var item domain.StreakableItem
	if err := c.do(ctx, http.MethodPost, "/streakable-items", token, nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Analytics fetches aggregated platform metrics for a date range.
func (c *Client) Analytics(ctx context.Context, token, startDate, endDate string) (*domain.AnalyticsData, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}
	var data domain.AnalyticsData
	if err := c.do(ctx, http.MethodGet, "/admin/analytics", token, query, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Broadcasts lists sent announcements.
func (c *Client) Broadcasts(ctx context.Context, token string) ([]domain.Broadcast, error) {
	var broadcasts []domain.Broadcast
	if err := c.do(ctx, http.MethodGet, "/admin/broadcasts", token, nil, nil, &broadcasts); err != nil {
		return nil, err
	}
	return broadcasts, nil
}

// SendBroadcastRequest carries a new announcement.
type SendBroadcastRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
	Audience string `json:"audience"`
}

// SendBroadcast publishes an announcement to the selected audience.
func (c *Client) SendBroadcast(ctx context.Context, token string, req SendBroadcastRequest) (*domain.Broadcast, error) {
	var broadcast domain.Broadcast
	if err := c.do(ctx, http.MethodPost, "/admin/broadcasts", token, nil, req, &broadcast); err != nil {
		return nil, err
	}
	return &broadcast, nil
}

// Roles lists role definitions.
func (c *Client) Roles(ctx context.Context, token string) ([]domain.RoleDefinition, error) {
	var roles []domain.RoleDefinition
	if err := c.do(ctx, http.MethodGet, "/admin/roles", token, nil, nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// CreateRoleRequest carries a new role definition.
type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

// CreateRole creates a role definition.
func (c *Client) CreateRole(ctx context.Context, token string, req CreateRoleRequest) (*domain.RoleDefinition, error) {
	var role domain.RoleDefinition
	if err := c.do(ctx, http.MethodPost, "/admin/roles", token, nil, req, &role); err != nil {
		return nil, err
	}
	return &role, nil
}

// CreateAdminRequest carries a new admin account bound to a role.
type CreateAdminRequest struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phoneNumber"`
	EmergencyContact string `json:"emergencyContact"`
	Password         string `json:"password"`
	Age              int    `json:"age"`
	RoleID           string `json:"roleId"`
}

// CreateAdmin creates an admin account.
func (c *Client) CreateAdmin(ctx context.Context, token string, req CreateAdminRequest) (*domain.Identity, error) {
	var identity domain.Identity
	if err := c.do(ctx, http.MethodPost, "/admin/admins", token, nil, req, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}
