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
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/typograph/pkg/typograph"
)

// 📈 Progress receives batch progress, see status.Manager
type Progress interface {
	StartOperation(ctx context.Context, total int)
	UpdateProgress(ctx context.Context, processed int)
	FinishOperation(ctx context.Context)
}

// 📦 Outcome is the result of applying the operator to one document
type Outcome struct {
	Name   string
	Result *typograph.Result
	Err    error
}

// 🏃 Runner applies an operator to many documents at once
type Runner struct {
	op          *Operator
	concurrency int
	progress    Progress
}

// 🏗️ NewRunner creates a new runner. A concurrency below one means one.
func NewRunner(op *Operator, concurrency int) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		op:          op,
		concurrency: concurrency,
	}
}

// WithProgress reports progress to p while running
func (r *Runner) WithProgress(p Progress) *Runner {
	r.progress = p
	return r
}

// 🏃 Run applies the operator to docs, at most concurrency at a time.
// Outcomes are in the order of docs. A failing document does not stop the
// others; cancelling ctx stops scheduling and Run returns the context error.
func (r *Runner) Run(ctx context.Context, docs []Document) ([]Outcome, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Int("documents", len(docs)).Int("concurrency", r.concurrency).Msg("running documents")

	outcomes := make([]Outcome, len(docs))
	for i, doc := range docs {
		outcomes[i].Name = doc.Name()
	}

	if r.progress != nil {
		r.progress.StartOperation(ctx, len(docs))
	}

	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	scheduled := 0
	for i, doc := range docs {
		if gctx.Err() != nil {
			break
		}
		scheduled++

		g.Go(func() error {
			res, err := r.op.Apply(gctx, doc)
			outcomes[i].Result = res
			outcomes[i].Err = err

			if r.progress != nil {
				mu.Lock()
				done++
				r.progress.UpdateProgress(gctx, done)
				mu.Unlock()
			}
			return nil
		})
	}

	_ = g.Wait()

	// a cancelled run keeps its partial progress
	if r.progress != nil && ctx.Err() == nil {
		r.progress.FinishOperation(ctx)
	}

	if err := ctx.Err(); err != nil {
		for i := scheduled; i < len(outcomes); i++ {
			outcomes[i].Err = err
		}
		return outcomes, errors.Errorf("running documents: %w", err)
	}

	return outcomes, nil
}

// Failed returns the outcomes that carry an error
func Failed(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// TotalChanges sums the changes of all successful outcomes
func TotalChanges(outcomes []Outcome) int {
	total := 0
	for _, o := range outcomes {
		if o.Result != nil {
			total += o.Result.Changes
		}
	}
	return total
}
