// Package shell is the interactive storefront: a set of pages driven by router.Navigator.
package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/account"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/catalog"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/inventory"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/notify"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/prompt"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

// API is everything the storefront calls.
type API interface {
	account.API
	catalog.Source
	inventory.API
}

// Deps wires a Shell.
type Deps struct {
	Store    sdk.SessionStore
	API      API
	Prompter prompt.Prompter
	Notifier *notify.Notifier
	Logger   *zap.Logger
}

// Shell holds page state that survives navigation.
type Shell struct {
	store    sdk.SessionStore
	prompter prompt.Prompter
	notifier *notify.Notifier
	out      io.Writer
	logger   *zap.Logger

	account   *account.Service
	catalog   *catalog.Model
	inventory *inventory.Controller

	filter         catalog.Filter
	catalogStale   bool
	inventoryStale bool
}

// New creates a shell.
func New(deps Deps) *Shell {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.New(nil)
	}
	return &Shell{
		store:          deps.Store,
		prompter:       deps.Prompter,
		notifier:       notifier,
		out:            notifier.Writer(),
		logger:         logger,
		account:        account.NewService(deps.API, deps.Store, logger),
		catalog:        catalog.NewModel(deps.API, logger),
		inventory:      inventory.NewController(deps.API, logger),
		catalogStale:   true,
		inventoryStale: true,
	}
}

// Navigator registers every page on a new navigator.
func (s *Shell) Navigator() *router.Navigator {
	nav := router.NewNavigator(s.state, s.notifier, s.logger)
	nav.Handle(router.PathLanding, router.PageFunc(s.landing))
	nav.Handle(router.PathLogin, router.PageFunc(s.login))
	nav.Handle(router.PathRegister, router.PageFunc(s.register))
	nav.Handle(router.PathDashboard, router.PageFunc(s.dashboard))
	nav.Handle(router.PathAdmin, router.PageFunc(s.admin))
	return nav
}

// Run starts the storefront at start and returns when the user quits.
func (s *Shell) Run(ctx context.Context, start router.Path) error {
	return s.Navigator().Run(ctx, start)
}

func (s *Shell) state() sdk.AuthorizationState {
	return sdk.DeriveAuthorization(s.store)
}

func (s *Shell) heading(title string) {
	pterm.DefaultSection.WithWriter(s.out).Println(title)
}

// choose shows a menu. A prompter failure ends the shell.
func (s *Shell) choose(label string, options ...string) (string, error) {
	choice, err := s.prompter.Select(label, options)
	if err != nil {
		return "", router.Abort(fmt.Errorf("menu %q: %w", label, err))
	}
	return choice, nil
}

func (s *Shell) input(label, defaultValue string) (string, error) {
	v, err := s.prompter.Input(label, defaultValue)
	if err != nil {
		return "", router.Abort(fmt.Errorf("prompt %q: %w", label, err))
	}
	return v, nil
}

func (s *Shell) password(label string) (string, error) {
	v, err := s.prompter.Password(label)
	if err != nil {
		return "", router.Abort(fmt.Errorf("prompt %q: %w", label, err))
	}
	return v, nil
}

func (s *Shell) confirm(label string) (bool, error) {
	ok, err := s.prompter.Confirm(label, false)
	if err != nil {
		return false, router.Abort(fmt.Errorf("prompt %q: %w", label, err))
	}
	return ok, nil
}

// report shows err to the user. A rejected credential is cleared and the
// user is sent to sign in again; expired reports that case.
func (s *Shell) report(err error, fallback string) (expired bool) {
	if !sdk.IsAuthError(err) {
		s.notifier.Error(err, fallback)
		return false
	}
	if clearErr := s.store.Clear(); clearErr != nil {
		s.logger.Warn("failed to clear rejected credential", zap.Error(clearErr))
	}
	s.markStale()
	s.notifier.Warning("Session expired, please sign in again")
	return true
}

func (s *Shell) markStale() {
	s.catalogStale = true
	s.inventoryStale = true
}

func (s *Shell) logout() (router.Path, error) {
	if err := s.account.Logout(); err != nil {
		return router.PathExit, err
	}
	s.markStale()
	s.filter = catalog.Filter{}
	s.notifier.Success("Signed out")
	return router.PathLogin, nil
}
