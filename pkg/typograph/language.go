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

	"gitlab.com/tozd/go/errors"
)

// 🌐 Language selects the rule pipeline a line is run through
type Language int

const (
	English Language = iota
	Russian
)

var languageNames = [...]string{
	English: "English",
	Russian: "Russian",
}

var languageCodes = [...]string{
	English: "en",
	Russian: "ru",
}

// String returns the name of the language
func (l Language) String() string {
	if int(l) >= 0 && int(l) < len(languageNames) {
		return languageNames[l]
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// Code returns the ISO 639-1 code of the language
func (l Language) Code() string {
	if int(l) >= 0 && int(l) < len(languageCodes) {
		return languageCodes[l]
	}
	return ""
}

// ParseLanguage accepts a language name or code, in any case
func ParseLanguage(s string) (Language, error) {
	for i := range languageNames {
		if strings.EqualFold(s, languageNames[i]) || strings.EqualFold(s, languageCodes[i]) {
			return Language(i), nil
		}
	}
	return English, errors.Errorf("unknown language %q", s)
}

// IsCyrillic reports whether r is a letter of the Russian alphabet:
// а-я, А-Я, ё or Ё.
func IsCyrillic(r rune) bool {
	return (r >= 'а' && r <= 'я') || (r >= 'А' && r <= 'Я') || r == 'ё' || r == 'Ё'
}

// 🔍 Detect classifies a single line. Any Cyrillic letter makes the whole
// line Russian; everything else, including lines with no letters at all, is
// English.
func Detect(line string) Language {
	if strings.IndexFunc(line, IsCyrillic) >= 0 {
		return Russian
	}
	return English
}
