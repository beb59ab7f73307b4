package upstream

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/areawatch/areawatch-core/internal/infrastructure/config"
	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
	"github.com/areawatch/areawatch-core/internal/sensor"
	"github.com/areawatch/areawatch-core/internal/telemetry"
)

// Client talks to the upstream data platform. The platform is a set of
// small services, so each concern gets its own resty client bound to its
// base URL; paths under each base are fixed by the platform.
type Client struct {
	home     *resty.Client
	data     *resty.Client
	hardware *resty.Client
	accounts *resty.Client
	logger   *logging.Logger
}

// New creates an upstream client from the upstream configuration.
func New(cfg config.UpstreamConfig, logger *logging.Logger) *Client {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	return &Client{
		home:     newService(cfg.HomeURL, timeout),
		data:     newService(cfg.DataURL, timeout),
		hardware: newService(cfg.HardwareURL, timeout),
		accounts: newService(cfg.AccountsURL, timeout),
		logger:   logger.With("component", "upstream"),
	}
}

func newService(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

// defaultSiteContent is the built-in home payload used to backfill fields
// the upstream response omits.
func defaultSiteContent() *SiteContent {
	return &SiteContent{
		Config: DomainConfig{
			Domain:    "airport",
			LoginText: "Sign in to your monitoring console",
			Hero:      "Live visibility over every monitored area",
		},
		Theme: Theme{
			Primary:    "#1f6feb",
			Secondary:  "#30363d",
			Background: "#0d1117",
		},
	}
}

// FetchSiteContent retrieves the home payload and merges it over built-in
// defaults, so a sparse upstream answer still yields a usable config.
func (c *Client) FetchSiteContent(ctx context.Context) (*SiteContent, error) {
	var payload SiteContent
	resp, err := c.home.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/home")
	if err != nil {
		return nil, fmt.Errorf("fetching site content: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: home answered %s", ErrStatus, resp.Status())
	}

	merged := defaultSiteContent()
	if payload.Config.Domain != "" {
		merged.Config.Domain = payload.Config.Domain
	}
	if payload.Config.LoginText != "" {
		merged.Config.LoginText = payload.Config.LoginText
	}
	if payload.Config.Hero != "" {
		merged.Config.Hero = payload.Config.Hero
	}
	if len(payload.Features) > 0 {
		merged.Features = payload.Features
	}
	if len(payload.HowItWorks) > 0 {
		merged.HowItWorks = payload.HowItWorks
	}
	if payload.Theme.Primary != "" {
		merged.Theme = payload.Theme
	}

	c.logger.Debug("site content fetched", "domain", merged.Config.Domain)
	return merged, nil
}

// FetchDeviceConfigs retrieves the device configuration list.
//
// A payload without a configs field returns ErrNoDeviceConfigs so the
// caller can keep its last good catalog instead of wiping it.
func (c *Client) FetchDeviceConfigs(ctx context.Context) ([]sensor.DeviceConfig, error) {
	var payload configsResponse
	resp, err := c.hardware.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/configs")
	if err != nil {
		return nil, fmt.Errorf("fetching device configs: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: hardware answered %s", ErrStatus, resp.Status())
	}
	if payload.Configs == nil {
		return nil, ErrNoDeviceConfigs
	}

	configs := make([]sensor.DeviceConfig, 0, len(*payload.Configs))
	for _, wire := range *payload.Configs {
		configs = append(configs, sensor.DeviceConfig{
			DeviceID: wire.DeviceID,
			RawLabel: wire.ReadableLabel,
			Kind:     sensor.Kind(wire.DeviceKind),
			GroupID:  wire.GroupID,
		})
	}

	c.logger.Debug("device configs fetched", "count", len(configs))
	return configs, nil
}

// FetchSummary retrieves the latest telemetry summary as per-area
// snapshots keyed by area ID.
func (c *Client) FetchSummary(ctx context.Context) (map[string]*telemetry.AreaSnapshot, error) {
	var payload map[string]*telemetry.Tracker
	resp, err := c.data.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/summary")
	if err != nil {
		return nil, fmt.Errorf("fetching summary: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: data answered %s", ErrStatus, resp.Status())
	}

	snapshots := make(map[string]*telemetry.AreaSnapshot, len(payload))
	for areaID, tracker := range payload {
		snapshots[areaID] = &telemetry.AreaSnapshot{
			AreaID:  areaID,
			Tracker: tracker,
		}
	}
	return snapshots, nil
}

// FetchMessages retrieves messages left for operators.
func (c *Client) FetchMessages(ctx context.Context) ([]OperatorMessage, error) {
	var payload messagesResponse
	resp, err := c.accounts.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/get_messages")
	if err != nil {
		return nil, fmt.Errorf("fetching messages: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: accounts answered %s", ErrStatus, resp.Status())
	}
	return payload.Messages, nil
}

// ValidateSession asks the accounts service to validate a session token.
// Any rejection maps to ErrSessionInvalid; the caller defaults permissions
// to the most restrictive set.
func (c *Client) ValidateSession(ctx context.Context, token string) (*Session, error) {
	var payload Session
	resp, err := c.accounts.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetResult(&payload).
		Get("/validate_cookie")
	if err != nil {
		return nil, fmt.Errorf("validating session: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: accounts answered %s", ErrSessionInvalid, resp.Status())
	}
	if payload.UID == "" {
		return nil, ErrSessionInvalid
	}
	return &payload, nil
}
