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

package typograph

import (
	"fmt"
	"strings"

	"github.com/walteh/typograph/pkg/text"
	"golang.org/x/text/unicode/norm"
)

// 📝 LineResult is what happened to a single line
type LineResult struct {
	Number   int               // 1-based line number
	Language Language          // pipeline the line went through
	Original string            // line before processing, without terminator
	Text     string            // line after processing, without terminator
	Changes  int               // changes reported for this line
	Steps    []text.StepResult // per-rule changes, in order
}

// 📄 Result is the outcome of processing a whole document
type Result struct {
	Text    string
	Changes int
	Lines   []LineResult
}

// Changed reports whether any rule reported a change
func (r *Result) Changed() bool {
	return r.Changes > 0
}

// Summary returns the short message shown to the user after a run
func (r *Result) Summary() string {
	if !r.Changed() {
		return "No changes were necessary."
	}
	return fmt.Sprintf("%d changes applied.", r.Changes)
}

// 🔧 Option configures a Processor
type Option func(*Processor)

// WithCountMode selects faithful or corrected change counting
func WithCountMode(mode CountMode) Option {
	return func(p *Processor) {
		p.mode = mode
	}
}

// WithLanguage routes every line to one pipeline instead of detecting
func WithLanguage(lang Language) Option {
	return func(p *Processor) {
		p.forced = &lang
	}
}

// WithNFC composes each line to NFC before the rules run. A line that
// changes under composition counts as one change.
func WithNFC(enabled bool) Option {
	return func(p *Processor) {
		p.composeNFC = enabled
	}
}

// ⚙️ Processor applies the per-language pipelines to documents.
// It holds no mutable state and is safe for concurrent use.
type Processor struct {
	mode       CountMode
	forced     *Language
	composeNFC bool
	pipelines  [2]*text.Pipeline
}

// 🏭 New creates a processor
func New(opts ...Option) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	p.pipelines[English] = EnglishPipeline(p.mode)
	p.pipelines[Russian] = RussianPipeline(p.mode)
	return p
}

// Mode returns the count mode the processor was built with
func (p *Processor) Mode() CountMode {
	return p.mode
}

// Pipeline returns the pipeline used for lang
func (p *Processor) Pipeline(lang Language) *text.Pipeline {
	return p.pipelines[lang]
}

// Language returns the language a line will be processed as
func (p *Processor) Language(line string) Language {
	if p.forced != nil {
		return *p.forced
	}
	return Detect(line)
}

// ProcessLine runs a single line, which must not contain a line break
func (p *Processor) ProcessLine(line string) LineResult {
	res := LineResult{Original: line}

	var steps []text.StepResult
	if p.composeNFC {
		composed := norm.NFC.String(line)
		if composed != line {
			res.Changes++
			steps = append(steps, text.StepResult{Rule: "compose-nfc", Changes: 1})
			line = composed
		}
	}

	res.Language = p.Language(line)
	out := p.pipelines[res.Language].Apply(line)

	res.Text = out.Modified
	res.Changes += out.Changes
	res.Steps = append(steps, out.Steps...)
	return res
}

// 🏃 Process splits document into lines, runs each through its pipeline and
// joins them back with the original terminators.
func (p *Processor) Process(document string) *Result {
	lines, terms := splitLines(document)

	result := &Result{
		Lines: make([]LineResult, len(lines)),
	}

	var b strings.Builder
	b.Grow(len(document) + len(document)/8)

	for i, line := range lines {
		lr := p.ProcessLine(line)
		lr.Number = i + 1

		result.Lines[i] = lr
		result.Changes += lr.Changes

		b.WriteString(lr.Text)
		b.WriteString(terms[i])
	}

	result.Text = b.String()
	return result
}

// splitLines cuts doc at every "\n", keeping a preceding "\r" with the
// terminator. lines[i]+terms[i] concatenated give back doc. The last
// terminator is always "".
func splitLines(doc string) (lines, terms []string) {
	for {
		i := strings.IndexByte(doc, '\n')
		if i < 0 {
			return append(lines, doc), append(terms, "")
		}

		line, term := doc[:i], "\n"
		if strings.HasSuffix(line, "\r") {
			line, term = line[:len(line)-1], "\r\n"
		}

		lines = append(lines, line)
		terms = append(terms, term)
		doc = doc[i+1:]
	}
}
