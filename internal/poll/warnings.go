package poll

import (
	"context"
	"fmt"

	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
	"github.com/areawatch/areawatch-core/internal/notify"
	"github.com/areawatch/areawatch-core/internal/telemetry"
	"github.com/areawatch/areawatch-core/internal/warning"
)

// WarningPipeline is the warnings poll's tick: load the rule set and
// evaluate every rule against the latest cache snapshot, enqueueing
// whatever fires.
type WarningPipeline struct {
	rules  warning.Repository
	cache  *telemetry.Cache
	queue  *notify.Queue
	logger *logging.Logger
}

// NewWarningPipeline wires a warning pipeline.
func NewWarningPipeline(rules warning.Repository, cache *telemetry.Cache, queue *notify.Queue, logger *logging.Logger) *WarningPipeline {
	return &WarningPipeline{
		rules:  rules,
		cache:  cache,
		queue:  queue,
		logger: logger.With("component", "warning-pipeline"),
	}
}

// Tick runs one evaluation cycle. The snapshot is taken once per tick, so
// every rule in the set sees the same telemetry generation.
func (p *WarningPipeline) Tick(ctx context.Context) error {
	rules, err := p.rules.List(ctx)
	if err != nil {
		return fmt.Errorf("listing rules: %w", err)
	}
	if len(rules) == 0 {
		return nil
	}

	snapshot := p.cache.Snapshot()
	for _, rule := range rules {
		for _, alerts := range warning.Evaluate(snapshot, rule) {
			for _, msg := range alerts.Messages {
				if p.queue.Add(msg) {
					p.logger.Info("warning fired",
						"rule", rule.Name,
						"area_id", alerts.AreaID,
						"title", msg.Title,
					)
				}
			}
		}
	}
	return nil
}
