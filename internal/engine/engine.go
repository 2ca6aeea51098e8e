package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/samber/lo"

	"github.com/pthm/uxtone/internal/analyzer"
	"github.com/pthm/uxtone/internal/lexicon"
	"github.com/pthm/uxtone/internal/profile"
	"github.com/pthm/uxtone/internal/rules"
)

// ErrEmptyInput is returned when a request carries no items
var ErrEmptyInput = errors.New("no text selected")

// Item is one text to analyze or convert
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// AnalyzeRequest asks for a tone profile of items
type AnalyzeRequest struct {
	Items []Item `json:"items"`
}

// AnalyzeResponse is the profile of a batch plus per-item suggestions
type AnalyzeResponse struct {
	Profile     *profile.Profile     `json:"profile"`
	Suggestions []profile.Suggestion `json:"suggestions"`
	ItemCount   int                  `json:"itemCount"`
}

// ApplyRequest asks for the selected rules to be applied to items
type ApplyRequest struct {
	Items            []Item   `json:"items"`
	SelectedPatterns []string `json:"selectedPatterns"`
}

// ConvertedItem is an item after conversion
type ConvertedItem struct {
	ID            string         `json:"id"`
	Original      string         `json:"original"`
	ConvertedText string         `json:"convertedText"`
	Changes       []rules.Change `json:"changes,omitempty"`
}

// Changed reports whether conversion altered the item
func (c ConvertedItem) Changed() bool {
	return c.ConvertedText != c.Original
}

// ApplyResponse is the result of an apply request. ConvertedItems holds only
// the items the selected rules changed. NoApplicableRules is set when no item
// changed, whether or not the selected patterns are in the rule table.
type ApplyResponse struct {
	ConvertedItems    []ConvertedItem  `json:"convertedItems"`
	ItemCount         int              `json:"itemCount"`
	ConvertedCount    int              `json:"convertedCount"`
	UpdatedProfile    *profile.Profile `json:"updatedProfile"`
	NoApplicableRules bool             `json:"noApplicableRules,omitempty"`
}

// Options configures an Engine
type Options struct {
	Rules   *rules.Table
	Lexicon *lexicon.Lexicon
	Logger  *slog.Logger
}

// Engine serves analyze and apply requests. It holds only immutable state
// and is safe for concurrent use.
type Engine struct {
	table    *rules.Table
	analyzer *analyzer.Analyzer
	builder  *profile.Builder
	logger   *slog.Logger
}

// New creates an engine. Zero options select the built-in rule table and
// lexicon and discard logs.
func New(opts Options) *Engine {
	table := opts.Rules
	if table == nil {
		table = rules.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := analyzer.New(opts.Lexicon)

	return &Engine{
		table:    table,
		analyzer: a,
		builder:  profile.NewBuilder(table, a),
		logger:   logger,
	}
}

// Rules returns the rule table
func (e *Engine) Rules() *rules.Table {
	return e.table
}

// Analyzer returns the analyzer the engine scores with
func (e *Engine) Analyzer() *analyzer.Analyzer {
	return e.analyzer
}

// Analyze builds the tone profile of the request items and a suggestion for
// every item and applicable rule that changes the item
func (e *Engine) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := e.builder.Build(texts(req.Items))
	suggestions := profile.Suggest(p, sources(req.Items))

	e.logger.DebugContext(ctx, "analyze",
		"items", len(req.Items),
		"applicable_rules", len(p.ApplicableRules),
		"suggestions", len(suggestions),
		"tone", p.CurrentTone,
	)

	return &AnalyzeResponse{
		Profile:     p,
		Suggestions: suggestions,
		ItemCount:   len(req.Items),
	}, nil
}

// Apply runs the selected rules, in table order, over every item. Patterns
// that are not in the table are ignored. The updated profile is rebuilt from
// the converted texts of all items, changed or not.
func (e *Engine) Apply(ctx context.Context, req ApplyRequest) (*ApplyResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	selected := e.table.Select(req.SelectedPatterns)
	resp := &ApplyResponse{
		ConvertedItems: []ConvertedItem{},
		ItemCount:      len(req.Items),
	}

	updated := make([]string, len(req.Items))
	for i, item := range req.Items {
		converted, changes := rules.Trace(item.Text, selected)
		updated[i] = converted

		ci := ConvertedItem{
			ID:            item.ID,
			Original:      item.Text,
			ConvertedText: converted,
			Changes:       changes,
		}
		if ci.Changed() {
			resp.ConvertedItems = append(resp.ConvertedItems, ci)
		}
	}
	resp.ConvertedCount = len(resp.ConvertedItems)
	resp.NoApplicableRules = resp.ConvertedCount == 0
	resp.UpdatedProfile = e.builder.Build(updated)

	e.logger.DebugContext(ctx, "apply",
		"items", len(req.Items),
		"selected", len(req.SelectedPatterns),
		"rules", len(selected),
		"converted", resp.ConvertedCount,
	)
	if resp.NoApplicableRules {
		e.logger.InfoContext(ctx, "no applicable rules", "patterns", req.SelectedPatterns)
	}

	return resp, nil
}

// Cancel acknowledges a cancelled conversion. Nothing is held between
// requests, so there is nothing to release.
func (e *Engine) Cancel(ctx context.Context) {
	e.logger.DebugContext(ctx, "cancel")
}

func texts(items []Item) []string {
	return lo.Map(items, func(item Item, _ int) string {
		return item.Text
	})
}

func sources(items []Item) []profile.Source {
	return lo.Map(items, func(item Item, _ int) profile.Source {
		return profile.Source{ID: item.ID, Text: item.Text}
	})
}
