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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/typograph/pkg/typograph"
)

// 📄 Document is a piece of text the host lets us read and replace
type Document interface {
	// Name identifies the document in notices and logs
	Name() string
	// Text returns the full current content
	Text(ctx context.Context) (string, error)
	// Replace swaps the full content for text
	Replace(ctx context.Context, text string) error
}

// 📣 Notifier shows the user what happened to a document
type Notifier interface {
	Notice(ctx context.Context, name string, res *typograph.Result)
}

// 🚨 FailureNotifier is implemented by notifiers that also report documents
// that could not be processed
type FailureNotifier interface {
	LogFailure(ctx context.Context, name string, err error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Processor rewrites the document text
	Processor *typograph.Processor
	// Notifier receives one notice per processed document
	Notifier Notifier
	// DryRun processes and notifies without replacing anything
	DryRun bool
}

// 🎯 Operator applies the processor to documents
type Operator struct {
	processor *typograph.Processor
	notifier  Notifier
	dryRun    bool
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Processor == nil {
		return nil, errors.Errorf("processor is required")
	}
	if opts.Notifier == nil {
		return nil, errors.Errorf("notifier is required")
	}
	return &Operator{
		processor: opts.Processor,
		notifier:  opts.Notifier,
		dryRun:    opts.DryRun,
	}, nil
}

// DryRun reports whether the operator leaves documents untouched
func (op *Operator) DryRun() bool {
	return op.dryRun
}

// ✨ Apply reads the document, processes it, writes the result back when
// any change was reported and always sends a notice
func (op *Operator) Apply(ctx context.Context, doc Document) (*typograph.Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("document", doc.Name()).Logger()

	if err := ctx.Err(); err != nil {
		return nil, op.fail(ctx, doc, errors.Errorf("applying to %s: %w", doc.Name(), err))
	}

	text, err := doc.Text(ctx)
	if err != nil {
		return nil, op.fail(ctx, doc, errors.Errorf("reading document %s: %w", doc.Name(), err))
	}

	res := op.processor.Process(text)
	logger.Debug().Int("changes", res.Changes).Int("lines", len(res.Lines)).Msg("processed document")

	if res.Changed() && !op.dryRun {
		if err := doc.Replace(ctx, res.Text); err != nil {
			return nil, op.fail(ctx, doc, errors.Errorf("replacing document %s: %w", doc.Name(), err))
		}
		logger.Debug().Msg("replaced document text")
	}

	op.notifier.Notice(ctx, doc.Name(), res)

	return res, nil
}

func (op *Operator) fail(ctx context.Context, doc Document, err error) error {
	if fn, ok := op.notifier.(FailureNotifier); ok {
		fn.LogFailure(ctx, doc.Name(), err)
	}
	return err
}
