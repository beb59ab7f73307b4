package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/areawatch/areawatch-core/internal/infrastructure/config"
	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
	"github.com/areawatch/areawatch-core/internal/warning"
)

// RemoteRuleRepository implements warning.Repository against the upstream
// warning editor service, as a direct passthrough. It is selected instead
// of the local SQLite store when upstream.warning_url is configured.
type RemoteRuleRepository struct {
	client *resty.Client
	logger *logging.Logger
}

// compile-time interface check
var _ warning.Repository = (*RemoteRuleRepository)(nil)

// NewRemoteRuleRepository creates a passthrough rule repository bound to
// the upstream warning service.
func NewRemoteRuleRepository(cfg config.UpstreamConfig, logger *logging.Logger) *RemoteRuleRepository {
	return &RemoteRuleRepository{
		client: newService(cfg.WarningURL, time.Duration(cfg.RequestTimeout)*time.Second),
		logger: logger.With("component", "upstream-warnings"),
	}
}

// List retrieves all rules from the warning service.
func (r *RemoteRuleRepository) List(ctx context.Context) ([]warning.Rule, error) {
	var rules []warning.Rule
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&rules).
		Get("/warnings")
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: warnings answered %s", ErrStatus, resp.Status())
	}
	return rules, nil
}

// GetByID retrieves one rule from the warning service.
func (r *RemoteRuleRepository) GetByID(ctx context.Context, id string) (*warning.Rule, error) {
	var rule warning.Rule
	resp, err := r.client.R().
		SetContext(ctx).
		SetResult(&rule).
		SetPathParam("id", id).
		Get("/warnings/{id}")
	if err != nil {
		return nil, fmt.Errorf("fetching rule: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, warning.ErrRuleNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: warnings answered %s", ErrStatus, resp.Status())
	}
	return &rule, nil
}

// Create registers a new rule with the warning service.
func (r *RemoteRuleRepository) Create(ctx context.Context, rule *warning.Rule) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(rule).
		SetResult(rule).
		Post("/warnings")
	if err != nil {
		return fmt.Errorf("creating rule: %w", err)
	}
	if resp.StatusCode() == http.StatusConflict {
		return warning.ErrRuleExists
	}
	if resp.IsError() {
		return fmt.Errorf("%w: warnings answered %s", ErrStatus, resp.Status())
	}
	return nil
}

// Update replaces a rule's name, conditions, and messages.
func (r *RemoteRuleRepository) Update(ctx context.Context, rule *warning.Rule) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(rule).
		SetPathParam("id", rule.ID).
		Patch("/warnings/{id}")
	if err != nil {
		return fmt.Errorf("updating rule: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return warning.ErrRuleNotFound
	}
	if resp.IsError() {
		return fmt.Errorf("%w: warnings answered %s", ErrStatus, resp.Status())
	}
	return nil
}

// Delete removes a rule from the warning service.
func (r *RemoteRuleRepository) Delete(ctx context.Context, id string) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/warnings/{id}")
	if err != nil {
		return fmt.Errorf("deleting rule: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return warning.ErrRuleNotFound
	}
	if resp.IsError() {
		return fmt.Errorf("%w: warnings answered %s", ErrStatus, resp.Status())
	}
	return nil
}
