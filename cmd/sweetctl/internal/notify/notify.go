// Package notify prints transient user-facing messages ("toasts").
package notify

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

// Notifier writes toasts to a terminal.
type Notifier struct {
	out io.Writer
}

var _ router.Observer = (*Notifier)(nil)

// New returns a notifier writing to out, or stdout when out is nil.
func New(out io.Writer) *Notifier {
	if out == nil {
		out = os.Stdout
	}
	return &Notifier{out: out}
}

// Writer is where toasts and listings go.
func (n *Notifier) Writer() io.Writer {
	return n.out
}

func (n *Notifier) Success(format string, args ...any) {
	pterm.Success.WithWriter(n.out).Println(fmt.Sprintf(format, args...))
}

func (n *Notifier) Info(format string, args ...any) {
	pterm.Info.WithWriter(n.out).Println(fmt.Sprintf(format, args...))
}

func (n *Notifier) Warning(format string, args ...any) {
	pterm.Warning.WithWriter(n.out).Println(fmt.Sprintf(format, args...))
}

// Error shows the user-facing text for err, falling back to fallback when the
// API sent no message. Network failures name the cause so the user can act on it.
func (n *Notifier) Error(err error, fallback string) {
	msg := sdk.UserMessage(err, fallback)
	var netErr *sdk.NetworkError
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			msg = fmt.Sprintf("%s (request timed out)", msg)
		} else {
			msg = fmt.Sprintf("%s (cannot reach server)", msg)
		}
	}
	var redirect *router.RedirectError
	if errors.As(err, &redirect) {
		msg = redirect.Error()
	}
	pterm.Error.WithWriter(n.out).Println(msg)
}

// Hint suggests the next command to run.
func (n *Notifier) Hint(format string, args ...any) {
	pterm.Info.WithWriter(n.out).Println("Hint: " + fmt.Sprintf(format, args...))
}

// Redirected reports a guard redirect during navigation. Leaving the landing
// page for the dashboard is the normal signed-in start and is not reported.
func (n *Notifier) Redirected(from, to router.Path) {
	if from == router.PathLanding {
		return
	}
	pterm.Warning.WithWriter(n.out).Println((&router.RedirectError{From: from, To: to}).Error() + "; showing " + string(to))
}

// PageFailed reports an error raised by a page.
func (n *Notifier) PageFailed(_ router.Path, err error) {
	n.Error(err, "Something went wrong")
}
