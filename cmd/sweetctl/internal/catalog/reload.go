package catalog

import "errors"

// ReloadError means the API applied a change but the follow-up reload failed.
// The local collection is stale until the next successful load.
type ReloadError struct {
	Err error
}

func (e *ReloadError) Error() string { return e.Err.Error() }

func (e *ReloadError) Unwrap() error { return e.Err }

// Reloaded wraps a failed reload that followed a successful mutation.
func Reloaded(err error) error {
	if err == nil {
		return nil
	}
	return &ReloadError{Err: err}
}

// IsReloadError reports whether err only failed to reload after the change was applied.
func IsReloadError(err error) bool {
	var reloadErr *ReloadError
	return errors.As(err, &reloadErr)
}
