package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/student-portal/internal/config"
	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/internal/utils"
	"github.com/MKhiriev/student-portal/models"
	"github.com/go-resty/resty/v2"
)

const (
	usersPath      = "/api/v1/users"
	singleUserPath = "/api/v1/users/{id}"

	requestIDHeader = "X-Request-ID"
)

type httpUsersAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPUsersAdapter constructs the HTTP/REST implementation of
// [UsersAdapter]. The base URL is normalised from cfg.HTTPAddress ("http://"
// is assumed when no scheme is given, trailing slashes are trimmed) and
// cfg.RequestTimeout is applied to every request.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPUsersAdapter(cfg config.ClientAdapter, logger *logger.Logger) (UsersAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetLogger(restyLogger{logger: logger})

	return &httpUsersAdapter{
		client: client,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidBaseURL)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidBaseURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// restyLogger routes resty's own diagnostics into the application log; the
// TUI owns the terminal, so resty must not print to stderr.
type restyLogger struct {
	logger *logger.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.logger.Error().Str("component", "resty").Msgf(format, v...)
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.logger.Warn().Str("component", "resty").Msgf(format, v...)
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.logger.Debug().Str("component", "resty").Msgf(format, v...)
}

// ListUsers implements [UsersAdapter].
func (h *httpUsersAdapter) ListUsers(ctx context.Context, q models.ListUsersQuery) (models.Envelope[[]models.User], error) {
	var out models.Envelope[[]models.User]

	req, log := h.request(ctx)
	req.SetQueryParam("adminId", q.AdminID)
	if q.Type != "" {
		req.SetQueryParam("type", string(q.Type))
	}

	resp, err := req.Get(usersPath)
	if err = settle(log, "list users", resp, err, &out); err != nil {
		return models.Envelope[[]models.User]{}, err
	}
	return out, nil
}

// GetUser implements [UsersAdapter].
func (h *httpUsersAdapter) GetUser(ctx context.Context, userID models.ID) (models.Envelope[models.User], error) {
	var out models.Envelope[models.User]
	if userID == "" {
		return out, fmt.Errorf("%w: get user: %w", ErrTransport, ErrMissingUserID)
	}

	req, log := h.request(ctx)
	resp, err := req.
		SetPathParam("id", userID.String()).
		Get(singleUserPath)
	if err = settle(log, "get user", resp, err, &out); err != nil {
		return models.Envelope[models.User]{}, err
	}
	return out, nil
}

// CreateUser implements [UsersAdapter].
func (h *httpUsersAdapter) CreateUser(ctx context.Context, adminID string, user models.User) (models.MutationResult, error) {
	var out models.MutationResult

	req, log := h.request(ctx)
	resp, err := req.
		SetQueryParam("adminId", adminID).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(usersPath)
	if err = settle(log, "create user", resp, err, &out); err != nil {
		return models.MutationResult{}, err
	}
	return out, nil
}

// UpdateUser implements [UsersAdapter].
func (h *httpUsersAdapter) UpdateUser(ctx context.Context, adminID string, user models.User) (models.MutationResult, error) {
	var out models.MutationResult
	if user.UserID == "" {
		return out, fmt.Errorf("%w: update user: %w", ErrTransport, ErrMissingUserID)
	}

	req, log := h.request(ctx)
	resp, err := req.
		SetPathParam("id", user.UserID.String()).
		SetQueryParam("adminId", adminID).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Put(singleUserPath)
	if err = settle(log, "update user", resp, err, &out); err != nil {
		return models.MutationResult{}, err
	}
	return out, nil
}

// DeleteUser implements [UsersAdapter].
func (h *httpUsersAdapter) DeleteUser(ctx context.Context, adminID string, userID models.ID) (models.MutationResult, error) {
	var out models.MutationResult
	if userID == "" {
		return out, fmt.Errorf("%w: delete user: %w", ErrTransport, ErrMissingUserID)
	}

	req, log := h.request(ctx)
	resp, err := req.
		SetPathParam("id", userID.String()).
		SetQueryParam("adminId", adminID).
		Delete(singleUserPath)
	if err = settle(log, "delete user", resp, err, &out); err != nil {
		return models.MutationResult{}, err
	}
	return out, nil
}

// request prepares a resty request tagged with a fresh X-Request-ID. The
// returned logger carries the same id.
func (h *httpUsersAdapter) request(ctx context.Context) (*resty.Request, *logger.Logger) {
	requestID := h.ids.Generate()
	ctx, log := h.logger.WithRequestID(ctx, requestID)

	return h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID), log
}

// settle turns the outcome of a resty call into an error and decodes the
// envelope into out. An empty 2xx body leaves out untouched.
func settle(log *logger.Logger, op string, resp *resty.Response, reqErr error, out any) error {
	if reqErr != nil {
		log.Err(reqErr).Str("op", op).Msg("users api request failed")
		return fmt.Errorf("%w: %s request: %w", ErrTransport, op, reqErr)
	}

	if err := mapHTTPError(resp); err != nil {
		log.Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("users api responded with error status")
		return fmt.Errorf("%s: %w", op, err)
	}

	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		log.Debug().Str("op", op).Int("status", resp.StatusCode()).Msg("users api responded with empty body")
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		log.Err(err).Str("op", op).Msg("failed to decode users api envelope")
		return fmt.Errorf("%w: %s: %w: %w", ErrTransport, op, ErrDecodeResponse, err)
	}

	log.Debug().Str("op", op).Int("status", resp.StatusCode()).Msg("users api call succeeded")
	return nil
}
