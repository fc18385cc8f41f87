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
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// 🔄 Rule is a single named rewrite of a line of text.
// Apply returns the rewritten text and the number of changes it reports.
type Rule struct {
	Name  string
	Apply func(s string) (string, int)
}

// 🧮 CountPolicy controls how a literal rule reports its changes
type CountPolicy int

const (
	CountEach CountPolicy = iota // one per replacement
	CountNone                    // rewrite without reporting
	CountOnce                    // exactly one per application, even with no match
)

// String returns a string representation of CountPolicy
func (p CountPolicy) String() string {
	switch p {
	case CountEach:
		return "each"
	case CountNone:
		return "none"
	case CountOnce:
		return "once"
	default:
		return "unknown"
	}
}

// 🎯 Match is one regular expression match handed to a replacement func
type Match struct {
	Source string   // text being scanned
	Start  int      // byte offset of the match in Source
	End    int      // byte offset just past the match
	Groups []string // Groups[0] is the whole match
}

// Text returns the whole matched text
func (m Match) Text() string {
	return m.Groups[0]
}

// Group returns submatch i, or "" if it did not participate
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// AtWordStart reports whether the match begins a word, i.e. the rune before
// it is not a letter, digit or underscore. Unlike RE2's \b this is Unicode
// aware, so it works for Cyrillic.
func (m Match) AtWordStart() bool {
	if m.Start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(m.Source[:m.Start])
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}

// ReplaceFunc rewrites every non-overlapping match of re in s with the
// string returned by fn and sums the counts fn reports.
func ReplaceFunc(re *regexp.Regexp, s string, fn func(m Match) (string, int)) (string, int) {
	locs := re.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 {
		return s, 0
	}

	var b strings.Builder
	b.Grow(len(s))

	last, count := 0, 0
	for _, loc := range locs {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}

		repl, n := fn(Match{Source: s, Start: loc[0], End: loc[1], Groups: groups})
		b.WriteString(s[last:loc[0]])
		b.WriteString(repl)
		last = loc[1]
		count += n
	}
	b.WriteString(s[last:])

	return b.String(), count
}

// 🏭 Pattern creates a rule that rewrites every match of re and reports one
// change per match
func Pattern(name string, re *regexp.Regexp, repl func(m Match) string) Rule {
	return Rule{
		Name: name,
		Apply: func(s string) (string, int) {
			return ReplaceFunc(re, s, func(m Match) (string, int) {
				return repl(m), 1
			})
		},
	}
}

// 🏭 Literal creates a rule that replaces each old/new pair in order, the
// way strings.NewReplacer takes its arguments. Pairs are applied one after
// another, so later pairs see the output of earlier ones.
func Literal(name string, policy CountPolicy, oldnew ...string) Rule {
	if len(oldnew)%2 == 1 {
		panic("text.Literal: odd argument count")
	}
	return Rule{
		Name: name,
		Apply: func(s string) (string, int) {
			count := 0
			for i := 0; i < len(oldnew); i += 2 {
				from, to := oldnew[i], oldnew[i+1]
				if from == "" {
					continue
				}
				count += strings.Count(s, from)
				s = strings.ReplaceAll(s, from, to)
			}

			switch policy {
			case CountNone:
				return s, 0
			case CountOnce:
				return s, 1
			default:
				return s, count
			}
		},
	}
}
