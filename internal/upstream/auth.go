package upstream

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/spec-kit/warrior-admin-console/internal/domain"
	"github.com/spec-kit/warrior-admin-console/pkg/util"
)

// authPayload is the /auth/login response body.
type authPayload struct {
	User         *domain.Identity `json:"user"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
}

// Login exchanges credentials for an upstream session. Credential rejection
// and transport failure both come back as ErrAuthenticationFailed; the caller
// cannot tell them apart and the UI shows one generic failure message.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var payload authPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, body, &payload); err != nil {
		c.logger.Info("login failed", zap.String("email", email), zap.Error(err))
		return nil, util.ErrAuthenticationFailed
	}
	if payload.User == nil || payload.AccessToken == "" {
		c.logger.Warn("login response missing identity or token", zap.String("email", email))
		return nil, util.ErrAuthenticationFailed
	}

	return &domain.Session{
		User:         payload.User,
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
	}, nil
}

// tokenPair is the /auth/refresh response body.
type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Refresh trades a refresh token for a new token pair. The console does not
// schedule refreshes; an expired access token simply fails the next call and
// the UI redirects to login.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (access, refresh string, err error) {
	body := map[string]string{"refreshToken": refreshToken}

	var pair tokenPair
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", "", nil, body, &pair); err != nil {
		return "", "", err
	}
	return pair.AccessToken, pair.RefreshToken, nil
}

// ForgotPassword triggers the OTP email flow.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	var out map[string]any
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", "", nil, body, &out)
}

// ResetPassword completes the OTP reset flow.
func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	body := map[string]string{"email": email, "otp": otp, "newPassword": newPassword}
	var out map[string]any
	return c.do(ctx, http.MethodPost, "/auth/reset-password", "", nil, body, &out)
}

// ChangePassword updates the authenticated admin's password.
func (c *Client) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	body := map[string]string{"currentPassword": currentPassword, "newPassword": newPassword}
	var out map[string]any
	return c.do(ctx, http.MethodPost, "/auth/change-password", token, nil, body, &out)
}

// CurrentUser fetches the authenticated identity.
func (c *Client) CurrentUser(ctx context.Context, token string) (*domain.Identity, error) {
	var identity domain.Identity
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, nil, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// UpdateProfileRequest carries the mutable profile fields.
type UpdateProfileRequest struct {
	FullName         string `json:"full_name,omitempty"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

// UpdateUser patches a user record and returns the updated identity.
func (c *Client) UpdateUser(ctx context.Context, token, userID string, req UpdateProfileRequest) (*domain.Identity, error) {
	var identity domain.Identity
	if err := c.do(ctx, http.MethodPatch, "/users/"+userID, token, nil, req, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}
