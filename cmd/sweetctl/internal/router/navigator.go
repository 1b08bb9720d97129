package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
	"go.uber.org/zap"
)

// maxRedirects bounds redirect chains. The guard table never needs more than two hops.
const maxRedirects = 5

// Page is one screen of the storefront. Render returns where to go next;
// PathExit stops the navigator.
type Page interface {
	Render(ctx context.Context) (Path, error)
}

// PageFunc adapts a function to Page.
type PageFunc func(ctx context.Context) (Path, error)

func (f PageFunc) Render(ctx context.Context) (Path, error) {
	return f(ctx)
}

// abortError stops the navigator instead of re-entering the page.
type abortError struct {
	err error
}

func (e *abortError) Error() string { return e.err.Error() }

func (e *abortError) Unwrap() error { return e.err }

// Abort marks a page error as unrecoverable, e.g. the terminal went away.
// Run returns err unchanged.
func Abort(err error) error {
	if err == nil {
		return nil
	}
	return &abortError{err: err}
}

// IsAbort reports whether err was wrapped with Abort.
func IsAbort(err error) bool {
	var abort *abortError
	return errors.As(err, &abort)
}

// StateFunc derives the authorization state. It is called before every navigation.
type StateFunc func() sdk.AuthorizationState

// Observer is told about redirects and page failures so they can be shown to the user.
type Observer interface {
	Redirected(from, to Path)
	PageFailed(path Path, err error)
}

// Navigator runs pages, consulting Guard on every navigation.
type Navigator struct {
	pages    map[Path]Page
	state    StateFunc
	observer Observer
	logger   *zap.Logger
}

// NewNavigator creates a navigator. observer and logger may be nil.
func NewNavigator(state StateFunc, observer Observer, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{
		pages:    map[Path]Page{},
		state:    state,
		observer: observer,
		logger:   logger,
	}
}

// Handle registers page for path.
func (n *Navigator) Handle(path Path, page Page) {
	n.pages[Normalize(path)] = page
}

// Resolve applies the guard repeatedly until it allows a path.
func (n *Navigator) Resolve(path Path) (Path, error) {
	current := Normalize(path)
	for hops := 0; ; hops++ {
		decision := Guard(current, n.state())
		if decision.Allowed() {
			return current, nil
		}
		if hops >= maxRedirects {
			return PathExit, fmt.Errorf("too many redirects starting at %s", path)
		}
		n.logger.Debug("navigation redirected", zap.String("from", string(current)), zap.String("to", string(decision.RedirectTo)))
		if n.observer != nil {
			n.observer.Redirected(current, decision.RedirectTo)
		}
		current = decision.RedirectTo
	}
}

// Run navigates from start until a page returns PathExit or ctx is done.
// A failing page is reported to the observer and shown again, unless the
// error was wrapped with Abort.
func (n *Navigator) Run(ctx context.Context, start Path) error {
	next := start
	for next != PathExit {
		if err := ctx.Err(); err != nil {
			return err
		}

		path, err := n.Resolve(next)
		if err != nil {
			return err
		}
		page, ok := n.pages[path]
		if !ok {
			return fmt.Errorf("no page registered for %s", path)
		}

		n.logger.Debug("rendering page", zap.String("path", string(path)))
		target, err := page.Render(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			var abort *abortError
			if errors.As(err, &abort) {
				return abort.err
			}
			if n.observer != nil {
				n.observer.PageFailed(path, err)
			}
			next = path
			continue
		}
		next = target
	}
	return nil
}
