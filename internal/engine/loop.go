package engine

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
)

// maxLineSize bounds a single protocol line. Late-game frames with many
// units run to a few hundred kilobytes.
const maxLineSize = 1 << 20

// Handler reacts to the engine's messages
type Handler interface {
	GameStart(ctx context.Context, cfg *GameConfig) error
	Turn(ctx context.Context, raw []byte) error
	GameEnd(ctx context.Context, f *Frame) error
}

// Session binds a game config to the engine's output stream and issues a
// State for every deploy frame
type Session struct {
	config *GameConfig
	out    io.Writer
}

// NewSession creates a new Session
func NewSession(cfg *GameConfig, out io.Writer) *Session {
	return &Session{config: cfg, out: out}
}

// Config returns the session's game config
func (s *Session) Config() *GameConfig {
	return s.config
}

// NewState parses a deploy frame into a fresh State
func (s *Session) NewState(raw []byte) (*State, error) {
	f, err := ParseFrame(raw)
	if err != nil {
		return nil, err
	}
	if f.Phase != PhaseDeploy {
		return nil, fmt.Errorf("expected deploy frame, got %s", f.Phase)
	}
	return NewState(s.config, f, s.out), nil
}

// Run reads protocol lines from r until the game ends, r is exhausted or
// ctx is cancelled. The first non-frame line is the game config.
// Every document must fit on a single line.
//
// ctx is checked between lines only: a cancellation while blocked reading r
// is noticed when the next line arrives. Closing r ends the loop normally.
func Run(ctx context.Context, r io.Reader, h Handler, logger *slog.Logger) error {
	logger = logger.With(slog.String("component", "engine"))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	started := false
	actionFrames := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		if !IsFrame(line) {
			if started {
				logger.Warn("ignoring unexpected non-frame line", slog.Int("bytes", len(line)))
				continue
			}
			cfg, err := ParseConfig(line)
			if err != nil {
				return fmt.Errorf("game config: %w", err)
			}
			started = true
			logger.Info("game config received", slog.String("digest", cfg.Digest()))
			if err := h.GameStart(ctx, cfg); err != nil {
				return err
			}
			continue
		}

		f, err := ParseFrame(line)
		if err != nil {
			return err
		}
		switch f.Phase {
		case PhaseDeploy:
			if err := h.Turn(ctx, line); err != nil {
				return err
			}
		case PhaseAction:
			actionFrames++
		case PhaseEnd:
			logger.Info("game over",
				slog.Int("turn", f.Turn+1),
				slog.Int("action_frames", actionFrames),
			)
			return h.GameEnd(ctx, f)
		default:
			logger.Warn("unknown frame phase", slog.Int("phase", int(f.Phase)))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read engine input: %w", err)
	}
	return nil
}
