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

package text

import (
	"gitlab.com/tozd/go/errors"
)

// 📊 StepResult records what one rule reported while running in a pipeline
type StepResult struct {
	Rule    string `json:"rule"`
	Changes int    `json:"changes"`
}

// 📄 Result is the outcome of running a pipeline over one line
type Result struct {
	Original string       // text before the first rule
	Modified string       // text after the last rule
	Changes  int          // sum of all step changes
	Steps    []StepResult // one entry per rule, in pipeline order
}

// 🔗 Pipeline is a named, ordered list of rules. Order matters: each rule sees
// the text produced by the rules before it.
type Pipeline struct {
	name  string
	rules []Rule
}

// 🏭 NewPipeline creates a pipeline that applies rules in the given order
func NewPipeline(name string, rules ...Rule) *Pipeline {
	return &Pipeline{
		name:  name,
		rules: append([]Rule(nil), rules...),
	}
}

// Name returns the pipeline name
func (p *Pipeline) Name() string {
	return p.name
}

// RuleNames returns the rule names in application order
func (p *Pipeline) RuleNames() []string {
	names := make([]string, len(p.rules))
	for i, rule := range p.rules {
		names[i] = rule.Name
	}
	return names
}

// 🏃 Apply runs every rule over s in order
func (p *Pipeline) Apply(s string) *Result {
	result := &Result{
		Original: s,
		Steps:    make([]StepResult, 0, len(p.rules)),
	}

	for _, rule := range p.rules {
		var n int
		s, n = rule.Apply(s)
		result.Changes += n
		result.Steps = append(result.Steps, StepResult{Rule: rule.Name, Changes: n})
	}

	result.Modified = s
	return result
}

// ✅ Validate checks that every rule is named, unique and runnable
func (p *Pipeline) Validate() error {
	seen := make(map[string]bool, len(p.rules))
	for i, rule := range p.rules {
		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if rule.Apply == nil {
			return errors.Errorf("rule %d (%s): apply func is required", i, rule.Name)
		}
		if seen[rule.Name] {
			return errors.Errorf("rule %d: duplicate name %q", i, rule.Name)
		}
		seen[rule.Name] = true
	}
	return nil
}
