/*
Package status reads and rewrites documents on disk and records what happened
to each of them.

	            +-------------+
	            |   Manager   |
	            |  (root dir) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+--------+        +-----+-----+
	| FileDocument |        | FileInfo  |
	| Text/Replace |        | (tracked) |
	+--------------+        +-----------+

🎯 Purpose:
- Hand out documents for files under a root directory
- Replace file content atomically, keeping the file mode
- Track size, checksum and status for every file touched
- Report progress for a batch of documents

BufferDocument is the in-memory counterpart used when text comes from stdin.

🔍 Example:

	mgr := status.New(".", zerolog.Ctx(ctx))
	doc := mgr.Open("README.md")

	res, err := op.Apply(ctx, doc)

	files, _ := mgr.ListFiles(ctx)
	for _, f := range files {
		fmt.Println(f.Path, f.Status)
	}
*/
package status
