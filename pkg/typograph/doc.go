/*
Package typograph rewrites plain ASCII punctuation and spacing into
typographic forms for English and Russian prose.

	            +-------------+
	            |  Processor  |
	            | (Document)  |
	            +------+------+
	                   | Detect (per line)
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|  English  |           | Russian |
	| Pipeline  |           | Pipeline|
	+-----------+           +---------+

🎯 Purpose:
- Split a document into lines, keeping every line terminator
- Route each line to one pipeline: a line with any Cyrillic letter is Russian
- Run that pipeline's rules in their fixed order and sum the changes

🇬🇧 English rules, in order:
 1. non-breaking space after and, the, a, an, to, at, in, on, by, of, for,
    from, as, with, but
 2. non-breaking space between a number and cm, mm, m, km, kg, g, mg, lb, oz
 3. `, "x"` and `: "x"` become `, ‘x’`
 4. `"x"` becomes `“x”`
 5. `'x'` inside `“…”` becomes `‘x’`
 6. `>>` and `<<` become `»` and `«`
 7. `--` and `-` become `—`

🇷🇺 Russian rules, in order:
 1. `, "x"` and `: "x"` become `, «x»`
 2. `«x»` becomes `„x“`
 3. `"x"` becomes `«x»`
 4. `>>` and `<<` become `»` and `«`
 5. non-breaking space after в, и, к, с, у, о, на, по, за, от, для, до, со
 6. non-breaking space between a number and см, мм, м, км, кг, г, мг, фунт, унц
 7. `--` becomes `—`; a lone `-` becomes `—` unless it starts the line or
    touches a digit or Cyrillic letter

🧮 Counting:
Every rule reports how many changes it made. In Faithful mode (the default)
the guillemet-arrow and English dash rules keep their historical counts and
Russian prepositions also match word endings; see CountMode. The counts only
feed the summary message.

🔍 Example:

	p := typograph.New()
	res := p.Process("He went to the store.\nОн сказал \"привет\".")
	fmt.Println(res.Summary())
*/
package typograph
