package strategy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/edgeguard/internal/dependencies/clock"
	"github.com/mcoot/edgeguard/internal/model"
)

// TurnParser turns a raw deploy-phase payload into a GameState
type TurnParser interface {
	ParseTurn(raw []byte) (GameState, error)
}

// TurnParserFunc adapts a function to TurnParser
type TurnParserFunc func(raw []byte) (GameState, error)

// ParseTurn implements TurnParser
func (f TurnParserFunc) ParseTurn(raw []byte) (GameState, error) {
	return f(raw)
}

// Recorder receives a record of every submitted turn
type Recorder interface {
	RecordTurn(ctx context.Context, rec model.TurnRecord) error
}

// Orchestrator runs the policy pipeline once per turn and submits the result.
// It keeps no state between turns beyond its construction-time bindings.
type Orchestrator struct {
	parser   TurnParser
	pipeline Pipeline
	bindings model.UnitBindings
	recorder Recorder
	clock    clock.Clock
	logger   *slog.Logger
}

// NewOrchestrator creates a new Orchestrator. recorder may be nil.
func NewOrchestrator(
	parser TurnParser,
	pipeline Pipeline,
	bindings model.UnitBindings,
	recorder Recorder,
	clk clock.Clock,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		parser:   parser,
		pipeline: pipeline,
		bindings: bindings,
		recorder: recorder,
		clock:    clk,
		logger:   logger.With(slog.String("component", "orchestrator")),
	}
}

// OnTurn parses a deploy-phase payload and plays the turn
func (o *Orchestrator) OnTurn(ctx context.Context, raw []byte) (model.TurnRecord, error) {
	gs, err := o.parser.ParseTurn(raw)
	if err != nil {
		return model.TurnRecord{}, fmt.Errorf("parse turn: %w", err)
	}
	return o.Play(ctx, gs)
}

// Play runs the pipeline over gs, submits the turn exactly once and records it
func (o *Orchestrator) Play(ctx context.Context, gs GameState) (model.TurnRecord, error) {
	rec := model.TurnRecord{
		Turn:       gs.TurnNumber(),
		Structural: gs.ResourceBalance(model.ResourceStructural),
		Mobile:     gs.ResourceBalance(model.ResourceMobile),
		Builds:     []model.Action{},
		Deploys:    []model.Action{},
	}

	o.logger.Info("performing turn",
		slog.Int("turn", rec.Turn),
		slog.Float64("structural", rec.Structural),
		slog.Float64("mobile", rec.Mobile),
	)

	for _, out := range o.pipeline.Run(gs) {
		if out.Step == StepDefense {
			rec.RebuildSignaled = out.Rebuild
		}
		for _, a := range out.Actions {
			if o.bindings.IsStationary(a.Kind) {
				rec.Builds = append(rec.Builds, a)
			} else {
				rec.Deploys = append(rec.Deploys, a)
			}
		}

		attrs := []any{
			slog.Int("turn", rec.Turn),
			slog.String("step", out.Step),
			slog.Int("actions", len(out.Actions)),
		}
		if out.Step == StepDefense {
			attrs = append(attrs, slog.Bool("rebuild", out.Rebuild))
		}
		if out.Skipped != "" {
			attrs = append(attrs, slog.String("skipped", out.Skipped))
		}
		o.logger.Debug("step complete", attrs...)
	}

	if err := gs.Submit(); err != nil {
		return rec, fmt.Errorf("submit turn %d: %w", rec.Turn, err)
	}
	rec.SubmittedAt = o.clock.Now()

	if o.recorder != nil {
		if err := o.recorder.RecordTurn(ctx, rec); err != nil {
			o.logger.Warn("failed to record turn",
				slog.Int("turn", rec.Turn),
				slog.String("error", err.Error()),
			)
		}
	}

	return rec, nil
}
