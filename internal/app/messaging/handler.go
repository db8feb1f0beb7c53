// Package messaging dispatches JSON action messages to the recoloring use cases.
package messaging

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/colorline/internal/application/port"
	"github.com/bnema/colorline/internal/application/usecase"
	"github.com/bnema/colorline/internal/domain/dom"
	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/infrastructure/selection"
	"github.com/bnema/colorline/internal/logging"
)

// ErrMissingMode is returned when a coloring or preview message has no mode.
var ErrMissingMode = errors.New("message has no mode")

// Result reports what a message did.
type Result struct {
	Action      string
	Units       int
	Characters  int
	Highlighted int
	Cleared     int
	// Saved holds the stored settings for saveSettings.
	Saved *entity.Settings
	// Ignored is set for unknown actions.
	Ignored bool
}

// Handler applies messages to a single document.
type Handler struct {
	doc       *dom.Document
	colorize  *usecase.ColorizeUseCase
	preview   *usecase.PreviewUseCase
	settings  *usecase.ManageSettingsUseCase
	defaults  entity.Settings
	selection port.SelectionSource
}

// NewHandler creates a handler for doc. settings may be nil, in which case
// messages are resolved against defaults and saveSettings fails.
func NewHandler(
	doc *dom.Document,
	colorize *usecase.ColorizeUseCase,
	preview *usecase.PreviewUseCase,
	settings *usecase.ManageSettingsUseCase,
	defaults entity.Settings,
) *Handler {
	return &Handler{
		doc:       doc,
		colorize:  colorize,
		preview:   preview,
		settings:  settings,
		defaults:  defaults.Merge(entity.DefaultSettings()),
		selection: selection.EmptySource{},
	}
}

// SetSelection sets the range used by messages that carry no selection.
func (h *Handler) SetSelection(source port.SelectionSource) {
	if source == nil {
		source = selection.EmptySource{}
	}
	h.selection = source
}

// Handle decodes and applies one message.
func (h *Handler) Handle(ctx context.Context, payload []byte) (*Result, error) {
	msg, err := ParseMessage(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return h.Dispatch(ctx, msg)
}

// Dispatch applies a decoded message. Unknown actions are logged and ignored.
func (h *Handler) Dispatch(ctx context.Context, msg Message) (*Result, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("action", msg.Action).Str("mode", msg.Mode).Msg("handling message")

	switch msg.Action {
	case ActionMakeColor:
		return h.handleMakeColor(ctx, msg)
	case ActionShowPreview:
		return h.handleShowPreview(ctx, msg)
	case ActionClearPreview:
		return &Result{Action: msg.Action, Cleared: h.preview.Clear(ctx, h.doc)}, nil
	case ActionUpdateStyles:
		return h.handleUpdateStyles(ctx, msg)
	case ActionSaveSettings:
		return h.handleSaveSettings(ctx, msg)
	default:
		log.Warn().Str("action", msg.Action).Msg("ignoring unknown message action")
		return &Result{Action: msg.Action, Ignored: true}, nil
	}
}

func (h *Handler) handleMakeColor(ctx context.Context, msg Message) (*Result, error) {
	mode, err := parseMode(msg.Mode)
	if err != nil {
		return nil, err
	}
	settings, err := h.resolveSettings(ctx, msg)
	if err != nil {
		return nil, err
	}

	out, err := h.colorize.Execute(ctx, usecase.ColorizeInput{
		Document:  h.doc,
		Selection: h.selectionFor(msg),
		Mode:      mode,
		Settings:  settings,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Action: msg.Action, Units: len(out.Units), Characters: out.Characters}, nil
}

func (h *Handler) handleShowPreview(ctx context.Context, msg Message) (*Result, error) {
	mode, err := parseMode(msg.Mode)
	if err != nil {
		return nil, err
	}
	settings, err := h.resolveSettings(ctx, msg)
	if err != nil {
		return nil, err
	}

	count, err := h.preview.Show(ctx, usecase.PreviewInput{
		Document:  h.doc,
		Selection: h.selectionFor(msg),
		Mode:      mode,
		Color:     settings.PreviewColor,
	})
	if err != nil {
		return nil, err
	}
	return &Result{Action: msg.Action, Highlighted: count}, nil
}

func (h *Handler) handleUpdateStyles(ctx context.Context, msg Message) (*Result, error) {
	settings, err := h.resolveSettings(ctx, msg)
	if err != nil {
		return nil, err
	}
	if err := h.colorize.UpdateStyles(ctx, h.doc, settings); err != nil {
		return nil, err
	}
	return &Result{Action: msg.Action}, nil
}

// handleSaveSettings stores the settings, then refreshes the page styles.
func (h *Handler) handleSaveSettings(ctx context.Context, msg Message) (*Result, error) {
	if h.settings == nil {
		return nil, errors.New("settings store is not configured")
	}
	settings, err := h.resolveSettings(ctx, msg)
	if err != nil {
		return nil, err
	}
	saved, err := h.settings.Save(ctx, settings)
	if err != nil {
		return nil, err
	}
	if err := h.colorize.UpdateStyles(ctx, h.doc, saved); err != nil {
		return nil, err
	}
	return &Result{Action: msg.Action, Saved: &saved}, nil
}

// resolveSettings overlays message fields on the stored profile.
func (h *Handler) resolveSettings(ctx context.Context, msg Message) (entity.Settings, error) {
	base := h.defaults
	if msg.Profile != "" {
		base.Profile = msg.Profile
	}
	if h.settings != nil {
		loaded, err := h.settings.Load(ctx, base.Profile)
		if err != nil {
			return entity.Settings{}, err
		}
		base = loaded
	}

	overlay := entity.Settings{
		StartColor:   msg.StartColor,
		EndColor:     msg.EndColor,
		PreviewColor: msg.PreviewColor,
		FontSize:     int(msg.FontSize),
		Steps:        int(msg.Steps),
	}
	return overlay.Merge(base), nil
}

func (h *Handler) selectionFor(msg Message) port.SelectionSource {
	if msg.Selection == nil {
		return h.selection
	}
	switch {
	case msg.Selection.Start != "":
		return selection.SelectorSource{Start: msg.Selection.Start, End: msg.Selection.End}
	case msg.Selection.Match != "":
		return selection.TextMatchSource{Start: msg.Selection.Match, End: msg.Selection.MatchEnd}
	default:
		return selection.EmptySource{}
	}
}

func parseMode(name string) (entity.SelectionMode, error) {
	if name == "" {
		return 0, ErrMissingMode
	}
	return entity.ParseSelectionMode(name)
}

// Replay applies a stream of newline-delimited JSON messages in order. A
// failing message is logged and skipped; every failure is returned joined.
func (h *Handler) Replay(ctx context.Context, r io.Reader) ([]*Result, error) {
	log := logging.FromContext(ctx)

	var (
		results []*Result
		errs    []error
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		payload := bytes.TrimSpace(scanner.Bytes())
		if len(payload) == 0 || payload[0] == '#' {
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := h.Handle(ctx, payload)
		if err != nil {
			log.Error().Err(err).Int("line", line).Msg("message failed")
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		results = append(results, res)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("failed to read messages: %w", err))
	}
	return results, errors.Join(errs...)
}
