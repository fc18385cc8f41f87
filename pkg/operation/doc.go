/*
Package operation connects the typography processor to whatever holds the
text: files, buffers or anything else that implements Document.

	+-------------+
	|  Operator   |
	|   (Apply)   |
	+------+------+
	       |
	+------+------+
	|   Runner    |
	| (errgroup)  |
	+------+------+

🎯 Purpose:
- Read a document, run the processor, replace the text when anything changed
- Send one notice per document, also in dry-run mode
- Run many documents with bounded concurrency, keeping input order
- Expand include and exclude globs into the list of files to process

🔄 Flow:
1. ResolvePaths turns arguments or config globs into file paths
2. status.Manager opens each path as a Document
3. Runner calls Operator.Apply for each of them
4. The Notifier (log.Logger in the CLI) reports every result

🔍 Example:

	op, err := operation.New(operation.Options{
		Processor: typograph.New(),
		Notifier:  logger,
	})
	if err != nil {
		return err
	}
	res, err := op.Apply(ctx, status.NewBufferDocument("stdin", text))
*/
package operation
