/*
Package config loads typograph settings from .typograph.yaml, .yml, .json
or .hcl files.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |           |                       |
	+-----+-----+ +---+----+           +------+----+
	|   YAML    | |  JSON  |           |    HCL    |
	|  Parser   | | Parser |           | (+ env.*) |
	+-----------+ +--------+           +-----------+

🎯 Purpose:
- Pick a parser by file extension and decode strictly (unknown keys fail)
- Validate values and fill in defaults
- Turn the result into typograph.Option values

📝 Keys:

	count_mode   faithful | corrected      (default faithful)
	language     auto | en | ru           (default auto)
	compose_nfc  bool                     (default false)
	include      doublestar globs used when no paths are given
	exclude      doublestar globs removed from the matches
	concurrency  documents processed at once (default 4)

A missing default file is not an error: LoadOrDefault returns Default.

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, config.DefaultPath)
	if err != nil {
		return err
	}
	opts, err := cfg.ProcessorOptions()
	if err != nil {
		return err
	}
	proc := typograph.New(opts...)
*/
package config
