package typograph

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/typograph/pkg/text"
)

func TestProcessor_Process(t *testing.T) {
	tests := []struct {
		name        string
		opts        []Option
		document    string
		want        string
		wantChanges int
		wantLines   int
		wantSummary string
		check       func(t *testing.T, res *Result)
	}{
		{
			name:        "english_short_words",
			document:    "He went to the store.",
			want:        "He went to\u00a0the\u00a0store.",
			wantChanges: 2,
			wantLines:   1,
			wantSummary: "2 changes applied.",
		},
		{
			name:        "russian_preposition",
			document:    "Я пошёл в магазин.",
			want:        "Я пошёл в\u00a0магазин.",
			wantChanges: 2,
			wantLines:   1,
			check: func(t *testing.T, res *Result) {
				assert.Equal(t, Russian, res.Lines[0].Language)
			},
		},
		{
			name:        "digits_only_is_a_no_op",
			document:    "1234567890",
			want:        "1234567890",
			wantChanges: 0,
			wantLines:   1,
			wantSummary: "No changes were necessary.",
			check: func(t *testing.T, res *Result) {
				assert.Equal(t, English, res.Lines[0].Language)
				assert.False(t, res.Changed())
			},
		},
		{
			name:        "mixed_document",
			document:    "He went to the store.\nЯ пошёл в магазин.\n",
			want:        "He went to\u00a0the\u00a0store.\nЯ пошёл в\u00a0магазин.\n",
			wantChanges: 4,
			wantLines:   3,
			wantSummary: "4 changes applied.",
			check: func(t *testing.T, res *Result) {
				assert.Equal(t, English, res.Lines[0].Language)
				assert.Equal(t, Russian, res.Lines[1].Language)
				assert.Equal(t, 3, res.Lines[2].Number)
				assert.Equal(t, 0, res.Lines[2].Changes)
			},
		},
		{
			name:        "empty_document",
			document:    "",
			want:        "",
			wantChanges: 0,
			wantLines:   1,
			wantSummary: "No changes were necessary.",
		},
		{
			name:        "crlf_is_preserved",
			document:    "to be\r\nor not\r\n",
			want:        "to\u00a0be\r\nor not\r\n",
			wantChanges: 1,
			wantLines:   3,
		},
		{
			name:        "corrected_mode",
			opts:        []Option{WithCountMode(Corrected)},
			document:    "Я пошёл в магазин.\n<<a>> -- b",
			want:        "Я пошёл в\u00a0магазин.\n«a» — b",
			wantChanges: 4,
			wantLines:   2,
		},
		{
			name:        "forced_russian",
			opts:        []Option{WithLanguage(Russian)},
			document:    "1234567890",
			want:        "1234567890",
			wantChanges: 1,
			wantLines:   1,
			check: func(t *testing.T, res *Result) {
				assert.Equal(t, Russian, res.Lines[0].Language)
			},
		},
		{
			name:        "forced_english",
			opts:        []Option{WithLanguage(English)},
			document:    "что-то",
			want:        "что—то",
			wantChanges: 0,
			wantLines:   1,
		},
		{
			name:        "nfc_composition_counts",
			opts:        []Option{WithNFC(true), WithCountMode(Corrected)},
			document:    "е\u0308ж",
			want:        "ёж",
			wantChanges: 1,
			wantLines:   1,
			check: func(t *testing.T, res *Result) {
				require.NotEmpty(t, res.Lines[0].Steps)
				assert.Equal(t, text.StepResult{Rule: "compose-nfc", Changes: 1}, res.Lines[0].Steps[0])
			},
		},
		{
			name:        "nfc_disabled_leaves_text",
			opts:        []Option{WithCountMode(Corrected)},
			document:    "е\u0308ж",
			want:        "е\u0308ж",
			wantChanges: 0,
			wantLines:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := New(tt.opts...).Process(tt.document)

			require.NotNil(t, res)
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, tt.wantChanges, res.Changes)
			assert.Len(t, res.Lines, tt.wantLines)
			if tt.wantSummary != "" {
				assert.Equal(t, tt.wantSummary, res.Summary())
			}
			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestProcessor_PreservesLineStructure(t *testing.T) {
	documents := []string{
		"",
		"\n",
		"\n\n\n",
		"a line without terminator",
		"He said \"hi\".\r\nОн - человек\n\n- пункт\r\n",
		"trailing\r",
		"\r\n\r\n",
	}

	p := New()
	for _, doc := range documents {
		res := p.Process(doc)

		assert.Equal(t, strings.Count(doc, "\n"), strings.Count(res.Text, "\n"), "document %q", doc)
		assert.Equal(t, strings.Count(doc, "\r\n"), strings.Count(res.Text, "\r\n"), "document %q", doc)
		assert.Len(t, res.Lines, strings.Count(doc, "\n")+1, "document %q", doc)
	}
}

func TestProcessor_ChangesAreSumOfSteps(t *testing.T) {
	doc := "He said, \"go -- now\" to the <<end>>.\nОн сказал: \"привет\" - и ушёл в 5 км."

	for _, mode := range []CountMode{Faithful, Corrected} {
		res := New(WithCountMode(mode)).Process(doc)

		total := 0
		for _, line := range res.Lines {
			lineTotal := 0
			for _, step := range line.Steps {
				require.GreaterOrEqual(t, step.Changes, 0)
				lineTotal += step.Changes
			}
			assert.Equal(t, line.Changes, lineTotal, "mode %s line %d", mode, line.Number)
			total += lineTotal
		}
		assert.Equal(t, res.Changes, total, "mode %s", mode)
	}
}

func TestProcessor_ProcessLineSteps(t *testing.T) {
	p := New()

	en := p.ProcessLine("plain")
	assert.Equal(t, English, en.Language)
	require.Len(t, en.Steps, len(p.Pipeline(English).RuleNames()))
	for i, name := range p.Pipeline(English).RuleNames() {
		assert.Equal(t, name, en.Steps[i].Rule)
	}

	ru := p.ProcessLine("просто")
	assert.Equal(t, Russian, ru.Language)
	require.Len(t, ru.Steps, len(p.Pipeline(Russian).RuleNames()))
	assert.Equal(t, "guillemet-arrows", ru.Steps[3].Rule)
	assert.Equal(t, 1, ru.Steps[3].Changes)
}

func TestProcessor_ConcurrentUse(t *testing.T) {
	p := New(WithCountMode(Corrected))
	doc := "He went to the store.\nЯ пошёл в магазин.\n"
	want := p.Process(doc)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := p.Process(doc)
			assert.Equal(t, want.Text, got.Text)
			assert.Equal(t, want.Changes, got.Changes)
		}()
	}
	wg.Wait()
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantLines []string
		wantTerms []string
	}{
		{name: "empty", doc: "", wantLines: []string{""}, wantTerms: []string{""}},
		{name: "single", doc: "a", wantLines: []string{"a"}, wantTerms: []string{""}},
		{name: "lf", doc: "a\nb", wantLines: []string{"a", "b"}, wantTerms: []string{"\n", ""}},
		{name: "crlf", doc: "a\r\nb\r\n", wantLines: []string{"a", "b", ""}, wantTerms: []string{"\r\n", "\r\n", ""}},
		{name: "lone_cr_stays_in_line", doc: "a\rb", wantLines: []string{"a\rb"}, wantTerms: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, terms := splitLines(tt.doc)
			assert.Equal(t, tt.wantLines, lines)
			assert.Equal(t, tt.wantTerms, terms)

			var rebuilt strings.Builder
			for i := range lines {
				rebuilt.WriteString(lines[i] + terms[i])
			}
			assert.Equal(t, tt.doc, rebuilt.String())
		})
	}
}
