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

var (
	russianNestedQuotes = regexp.MustCompile(`«([^«»][^„“]*)»`)
	russianPrepositions = regexp.MustCompile(`(?i)(в|и|к|с|у|о|на|по|за|от|для|до|со)` + space + `+`)
	russianUnits        = regexp.MustCompile(`(\d+)` + space + `+(см|мм|м|км|кг|г|мг|фунт|унц)`)
)

// 🇷🇺 RussianPipeline returns the Russian rules in application order.
// The nested-quote rule runs between direct speech and the generic quote
// rule, so it sees guillemets produced by the former but not the latter.
func RussianPipeline(mode CountMode) *text.Pipeline {
	return text.NewPipeline("russian",
		text.Pattern("direct-speech-quotes", directSpeech, func(m text.Match) string {
			return m.Group(1) + " «" + m.Group(2) + "»"
		}),
		text.Pattern("nested-quotes", russianNestedQuotes, func(m text.Match) string {
			return "„" + m.Group(1) + "“"
		}),
		text.Pattern("double-quotes", doubleQuoted, func(m text.Match) string {
			return "«" + m.Group(1) + "»"
		}),
		text.Literal("guillemet-arrows", mode.policy(text.CountOnce), ">>", "»", "<<", "«"),
		text.Rule{Name: "preposition-nbsp", Apply: bindPrepositions(mode)},
		text.Pattern("number-unit-nbsp", russianUnits, func(m text.Match) string {
			return m.Group(1) + nbsp + m.Group(2)
		}),
		text.Rule{Name: "em-dashes", Apply: russianDashes},
	)
}

// bindPrepositions glues short prepositions and conjunctions to the next
// word. Faithful matches them anywhere, so "лес дом" binds after its "с".
// Corrected only binds whole words; RE2 has no Unicode \b, so that check
// happens per match.
func bindPrepositions(mode CountMode) func(s string) (string, int) {
	return func(s string) (string, int) {
		return text.ReplaceFunc(russianPrepositions, s, func(m text.Match) (string, int) {
			if mode == Corrected && !m.AtWordStart() {
				return m.Text(), 0
			}
			return m.Group(1) + nbsp, 1
		})
	}
}
