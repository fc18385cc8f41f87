// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/walteh/typograph/pkg/typograph"
)

// 🎨 Display configuration
const (
	fileIndent    = 4  // spaces to indent document entries
	nameWidth     = 35 // Base width for document name
	languageWidth = 8  // Width for the language column
	statusWidth   = 28 // Width for status text
)

// 🎯 DocumentOperation represents one processed document for logging
type DocumentOperation struct {
	Path       string // Document name or path
	Languages  string // Pipelines used, e.g. "en", "ru" or "en+ru"
	Status     string // Summary or error text
	Changes    int    // Number of changes reported
	IsModified bool   // Whether the document was rewritten
	IsDryRun   bool   // Whether changes were found but not written
	IsFailed   bool   // Whether the document could not be processed
}

// 📦 RunOperation represents a batch of documents for logging
type RunOperation struct {
	Root      string // Directory the paths are relative to
	Mode      string // Count mode
	Documents int    // Number of documents in the run
	DryRun    bool   // Whether writes are suppressed
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentRun *RunOperation
	operations []DocumentOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context. Without one, output is
// discarded.
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return logger
	}
	return New(io.Discard, zerolog.Disabled)
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// Languages lists the pipelines a result used, in first-seen order. Blank
// lines are ignored; a document with only blank lines gives "-".
func Languages(res *typograph.Result) string {
	var seen []string
	for _, line := range res.Lines {
		if strings.TrimSpace(line.Original) == "" {
			continue
		}
		code := line.Language.Code()
		found := false
		for _, s := range seen {
			if s == code {
				found = true
				break
			}
		}
		if !found {
			seen = append(seen, code)
		}
	}
	if len(seen) == 0 {
		return "-"
	}
	return strings.Join(seen, "+")
}

// 📝 formatDocumentOperation formats a document operation for display
func (l *Logger) formatDocumentOperation(op DocumentOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case op.IsDryRun:
		symbol = '~'
		symbolColor = color.FgYellow
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	var langColor color.Attribute
	switch op.Languages {
	case "en":
		langColor = color.FgCyan
	case "ru":
		langColor = color.FgMagenta
	default:
		langColor = color.FgBlue
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, op.Path),
		color.New(langColor).Sprint(fmt.Sprintf("%-*s", languageWidth, op.Languages)),
		fmt.Sprintf("%-*s", statusWidth, op.Status))
}

// 📝 LogDocumentOperation logs a document operation
func (l *Logger) LogDocumentOperation(ctx context.Context, op DocumentOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	fmt.Fprintln(l.console, l.formatDocumentOperation(op))

	l.zlog.Info().
		Str("document", op.Path).
		Str("languages", op.Languages).
		Str("status", op.Status).
		Int("changes", op.Changes).
		Bool("is_modified", op.IsModified).
		Bool("is_dry_run", op.IsDryRun).
		Bool("is_failed", op.IsFailed).
		Msg("document operation")
}

// 📣 Notice reports the outcome of one document. It satisfies
// operation.Notifier.
func (l *Logger) Notice(ctx context.Context, name string, res *typograph.Result) {
	l.mu.Lock()
	dryRun := l.currentRun != nil && l.currentRun.DryRun
	l.mu.Unlock()

	l.LogDocumentOperation(ctx, DocumentOperation{
		Path:       name,
		Languages:  Languages(res),
		Status:     res.Summary(),
		Changes:    res.Changes,
		IsModified: res.Changed() && !dryRun,
		IsDryRun:   res.Changed() && dryRun,
	})
}

// 📝 LogFailure logs a document that could not be processed
func (l *Logger) LogFailure(ctx context.Context, name string, err error) {
	l.LogDocumentOperation(ctx, DocumentOperation{
		Path:      name,
		Languages: "-",
		Status:    err.Error(),
		IsFailed:  true,
	})
}

// 📝 StartRun starts a new batch of documents
func (l *Logger) StartRun(ctx context.Context, op RunOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentRun = &op
	l.operations = nil

	l.header(op.Root)

	suffix := ""
	if op.DryRun {
		suffix = " (dry run)"
	}
	fmt.Fprintf(l.console, "%s %s %s %s%s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(fmt.Sprintf("%d documents", op.Documents)),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.Mode),
		suffix)

	l.zlog.Info().
		Str("root", op.Root).
		Str("mode", op.Mode).
		Int("documents", op.Documents).
		Bool("dry_run", op.DryRun).
		Msg("starting run")
}

// 📝 EndRun ends the current run and returns the total number of changes
func (l *Logger) EndRun(ctx context.Context) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentRun == nil {
		return 0
	}

	total, failed, pending := 0, 0, 0
	for _, op := range l.operations {
		total += op.Changes
		if op.IsFailed {
			failed++
		}
		if op.IsDryRun {
			pending++
		}
	}

	if pending > 0 {
		l.warning(fmt.Sprintf("dry run: %d of %d documents would change", pending, len(l.operations)))
	}
	if failed > 0 {
		l.failure(fmt.Sprintf("%d of %d documents failed", failed, len(l.operations)))
	}

	l.zlog.Info().
		Str("root", l.currentRun.Root).
		Int("documents", len(l.operations)).
		Int("failed", failed).
		Int("changes", total).
		Msg("run complete")

	l.currentRun = nil
	l.operations = nil
	return total
}

// header, warning and failure each write one console line. Callers hold l.mu.
func (l *Logger) header(msg string) {
	name := color.New(color.Bold, color.FgCyan).Sprint("typograph")
	fmt.Fprintf(l.console, "%s %s\n", name, color.New(color.Faint).Sprint("• "+msg))
}

func (l *Logger) warning(msg string) {
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

func (l *Logger) failure(msg string) {
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}
