package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/walteh/typograph/pkg/typograph"
)

// 📣 prefixNotifier prints the run summary with pterm prefix printers
type prefixNotifier struct {
	w io.Writer
}

// Notice prints the summary message for one document
func (n *prefixNotifier) Notice(ctx context.Context, name string, res *typograph.Result) {
	printSummary(n.w, res.Changes)
}

// LogFailure prints why a document could not be processed
func (n *prefixNotifier) LogFailure(ctx context.Context, name string, err error) {
	fmt.Fprint(n.w, pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Sprintln(err))
}

// printSummary prints the user-facing notice for a number of changes
func printSummary(w io.Writer, changes int) {
	msg := (&typograph.Result{Changes: changes}).Summary()
	if changes > 0 {
		fmt.Fprint(w, pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"}).Sprintln(msg))
		return
	}
	fmt.Fprint(w, pterm.Info.WithPrefix(pterm.Prefix{Text: "👍"}).Sprintln(msg))
}
