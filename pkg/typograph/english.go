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
	"regexp"

	"github.com/walteh/typograph/pkg/text"
)

const nbsp = "\u00a0"

// space is ASCII whitespace plus the Unicode space separators, line and
// paragraph separators and the BOM. The no-break space is left out so a pair
// the rules already bound never matches again.
const space = `[\t\n\v\f\r \x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

// shared by both pipelines
var (
	directSpeech = regexp.MustCompile(`([:,])` + space + `*"([^"]*)"`)
	doubleQuoted = regexp.MustCompile(`"([^"]*)"`)
)

var (
	englishShortWords = regexp.MustCompile(`(?i)\b(and|the|a|an|to|at|in|on|by|of|for|from|as|with|but)` + space + `+`)
	englishUnits      = regexp.MustCompile(`(\d+)` + space + `+(cm|mm|m|km|kg|g|mg|lb|oz)`)
	curlyQuoted       = regexp.MustCompile(`“([^“”]*)”`)
	singleQuoted      = regexp.MustCompile(`'([^']*)'`)
)

// 🇬🇧 EnglishPipeline returns the English rules in application order.
// Direct speech must run before the generic double-quote rule, and nested
// single quotes only look inside quotes the generic rule already curled.
func EnglishPipeline(mode CountMode) *text.Pipeline {
	return text.NewPipeline("english",
		text.Pattern("short-word-nbsp", englishShortWords, func(m text.Match) string {
			return m.Group(1) + nbsp
		}),
		text.Pattern("number-unit-nbsp", englishUnits, func(m text.Match) string {
			return m.Group(1) + nbsp + m.Group(2)
		}),
		text.Pattern("direct-speech-quotes", directSpeech, func(m text.Match) string {
			return m.Group(1) + " ‘" + m.Group(2) + "’"
		}),
		text.Pattern("double-quotes", doubleQuoted, func(m text.Match) string {
			return "“" + m.Group(1) + "”"
		}),
		text.Rule{Name: "nested-single-quotes", Apply: curlNestedSingleQuotes},
		text.Literal("guillemet-arrows", mode.policy(text.CountNone), ">>", "»", "<<", "«"),
		text.Literal("em-dashes", mode.policy(text.CountNone), "--", "—", "-", "—"),
	)
}

// curlNestedSingleQuotes curls straight single quotes inside “…”. Only the
// inner pairs are counted.
func curlNestedSingleQuotes(s string) (string, int) {
	return text.ReplaceFunc(curlyQuoted, s, func(m text.Match) (string, int) {
		inner, n := text.ReplaceFunc(singleQuoted, m.Group(1), func(im text.Match) (string, int) {
			return "‘" + im.Group(1) + "’", 1
		})
		return "“" + inner + "”", n
	})
}
