package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/catalog"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/forms"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/router"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/view"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

// Menu entries.
const (
	optSignIn     = "Sign in"
	optRegister   = "Create account"
	optQuit       = "Quit"
	optSearch     = "Search"
	optCategory   = "Filter by category"
	optClear      = "Clear filters"
	optPurchase   = "Purchase"
	optRefresh    = "Refresh"
	optAdmin      = "Admin panel"
	optLogout     = "Log out"
	optAdd        = "Add sweet"
	optEdit       = "Edit sweet"
	optDelete     = "Delete sweet"
	optRestock    = "Restock sweet"
	optDashboard  = "Back to dashboard"
	allCategories = "All categories"
)

func (s *Shell) landing(context.Context) (router.Path, error) {
	s.heading("SweetShelf")
	fmt.Fprintln(s.out, "Browse and buy sweets from the shop's live inventory.")

	choice, err := s.choose("What would you like to do?", optSignIn, optRegister, optQuit)
	if err != nil {
		return router.PathExit, err
	}
	switch choice {
	case optSignIn:
		return router.PathLogin, nil
	case optRegister:
		return router.PathRegister, nil
	default:
		return router.PathExit, nil
	}
}

func (s *Shell) login(ctx context.Context) (router.Path, error) {
	s.heading("Sign in")
	email, err := s.input("Email (leave blank to go back)", "")
	if err != nil {
		return router.PathExit, err
	}
	if strings.TrimSpace(email) == "" {
		return router.PathLanding, nil
	}
	password, err := s.password("Password")
	if err != nil {
		return router.PathExit, err
	}

	state, err := s.account.Login(ctx, forms.Login{Email: email, Password: password})
	if err != nil {
		s.notifier.Error(err, "Login failed")
		return router.PathLogin, nil
	}
	s.markStale()
	s.notifier.Success("Welcome back! Signed in as %s", roleLabel(state))
	return router.PathDashboard, nil
}

func (s *Shell) register(ctx context.Context) (router.Path, error) {
	s.heading("Create account")
	name, err := s.input("Name (leave blank to go back)", "")
	if err != nil {
		return router.PathExit, err
	}
	if strings.TrimSpace(name) == "" {
		return router.PathLanding, nil
	}
	email, err := s.input("Email", "")
	if err != nil {
		return router.PathExit, err
	}
	password, err := s.password("Password (at least 6 characters)")
	if err != nil {
		return router.PathExit, err
	}
	confirm, err := s.password("Confirm password")
	if err != nil {
		return router.PathExit, err
	}

	_, err = s.account.Register(ctx, forms.Register{Name: name, Email: email, Password: password, ConfirmPassword: confirm})
	if err != nil {
		s.notifier.Error(err, "Registration failed")
		return router.PathRegister, nil
	}
	s.markStale()
	s.notifier.Success("Account created, you are signed in")
	return router.PathDashboard, nil
}

func (s *Shell) dashboard(ctx context.Context) (router.Path, error) {
	state := s.state()
	if s.catalogStale {
		if err := s.catalog.Load(ctx); err != nil {
			if s.report(err, "Failed to load sweets") {
				return router.PathLogin, nil
			}
		} else {
			s.catalogStale = false
		}
	}

	s.heading("Sweet shop")
	fmt.Fprintf(s.out, "Signed in as %s\n", roleLabel(state))
	if err := s.catalog.SetFilter(s.filter); err != nil {
		s.notifier.Error(err, "Invalid filter")
		s.filter = catalog.Filter{}
		_ = s.catalog.SetFilter(s.filter)
	}
	if desc := describeFilter(s.filter); desc != "" {
		fmt.Fprintln(s.out, desc)
	}
	visible := s.catalog.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(s.out, "No sweets found.")
	} else {
		view.Catalog(s.out, visible)
	}
	fmt.Fprintln(s.out, s.catalog.Summary())

	options := []string{optSearch, optCategory, optClear, optPurchase, optRefresh}
	if state.IsAdmin() {
		options = append(options, optAdmin)
	}
	options = append(options, optLogout, optQuit)

	choice, err := s.choose("Dashboard", options...)
	if err != nil {
		return router.PathExit, err
	}
	switch choice {
	case optSearch:
		term, err := s.input("Search by name or category", s.filter.Search)
		if err != nil {
			return router.PathExit, err
		}
		s.filter.Search = strings.TrimSpace(term)
	case optCategory:
		categories := append([]string{allCategories}, s.catalog.Categories()...)
		category, err := s.choose("Category", categories...)
		if err != nil {
			return router.PathExit, err
		}
		if category == allCategories {
			category = ""
		}
		s.filter.Category = category
	case optClear:
		s.filter = catalog.Filter{}
	case optPurchase:
		return s.purchase(ctx, visible)
	case optRefresh:
		s.catalogStale = true
	case optAdmin:
		s.inventoryStale = true
		return router.PathAdmin, nil
	case optLogout:
		return s.logout()
	default:
		return router.PathExit, nil
	}
	return router.PathDashboard, nil
}

func (s *Shell) purchase(ctx context.Context, visible []sdk.Sweet) (router.Path, error) {
	var options []string
	for _, sweet := range visible {
		if sweet.InStock() {
			options = append(options, view.Option(sweet))
		}
	}
	if len(options) == 0 {
		s.notifier.Info("Nothing in stock to purchase")
		return router.PathDashboard, nil
	}
	choice, err := s.choose("Purchase which sweet?", options...)
	if err != nil {
		return router.PathExit, err
	}
	id := view.IDFromOption(choice)
	sweet, _ := s.catalog.Find(id)

	err = s.catalog.Purchase(ctx, id)
	if err != nil && !catalog.IsReloadError(err) {
		if s.report(err, "Purchase failed") {
			return router.PathLogin, nil
		}
		return router.PathDashboard, nil
	}
	s.inventoryStale = true
	s.notifier.Success("Purchased %s", sweet.Name)
	if err != nil {
		s.markStale()
		if s.report(err, "Failed to load sweets") {
			return router.PathLogin, nil
		}
	}
	return router.PathDashboard, nil
}

func (s *Shell) admin(ctx context.Context) (router.Path, error) {
	if s.inventoryStale {
		if err := s.inventory.Refresh(ctx); err != nil {
			if s.report(err, "Failed to load sweets") {
				return router.PathLogin, nil
			}
		} else {
			s.inventoryStale = false
		}
	}

	s.heading("Inventory")
	if sweets := s.inventory.Sweets(); len(sweets) == 0 {
		fmt.Fprintln(s.out, "No sweets in inventory.")
	} else {
		view.Inventory(s.out, sweets)
	}

	choice, err := s.choose("Admin", optAdd, optEdit, optDelete, optRestock, optRefresh, optDashboard, optLogout, optQuit)
	if err != nil {
		return router.PathExit, err
	}

	var actionErr error
	var fallback string
	switch choice {
	case optAdd:
		actionErr, fallback = s.addSweet(ctx), "Failed to add sweet"
	case optEdit:
		actionErr, fallback = s.editSweet(ctx), "Failed to update sweet"
	case optDelete:
		actionErr, fallback = s.deleteSweet(ctx), "Failed to delete sweet"
	case optRestock:
		actionErr, fallback = s.restockSweet(ctx), "Failed to restock sweet"
	case optRefresh:
		s.inventoryStale = true
	case optDashboard:
		return router.PathDashboard, nil
	case optLogout:
		return s.logout()
	default:
		return router.PathExit, nil
	}

	if actionErr != nil {
		if router.IsAbort(actionErr) {
			return router.PathExit, actionErr
		}
		if catalog.IsReloadError(actionErr) {
			fallback = "Failed to load sweets"
		}
		if s.report(actionErr, fallback) {
			return router.PathLogin, nil
		}
	}
	return router.PathAdmin, nil
}

func (s *Shell) sweetForm(initial forms.Sweet) (forms.Sweet, error) {
	var f forms.Sweet
	var err error
	if f.Name, err = s.input("Name", initial.Name); err != nil {
		return f, err
	}
	if f.Category, err = s.input("Category", initial.Category); err != nil {
		return f, err
	}
	if f.Price, err = s.input("Price", initial.Price); err != nil {
		return f, err
	}
	if f.Quantity, err = s.input("Quantity", initial.Quantity); err != nil {
		return f, err
	}
	return f, nil
}

func (s *Shell) pickSweet(label string) (sdk.Sweet, bool, error) {
	sweets := s.inventory.Sweets()
	if len(sweets) == 0 {
		s.notifier.Info("No sweets in inventory")
		return sdk.Sweet{}, false, nil
	}
	options := make([]string, 0, len(sweets))
	for _, sweet := range sweets {
		options = append(options, view.Option(sweet))
	}
	choice, err := s.choose(label, options...)
	if err != nil {
		return sdk.Sweet{}, false, err
	}
	sweet, ok := s.inventory.Find(view.IDFromOption(choice))
	return sweet, ok, nil
}

func (s *Shell) addSweet(ctx context.Context) error {
	f, err := s.sweetForm(forms.Sweet{})
	if err != nil {
		return err
	}
	return s.applied(s.inventory.Create(ctx, f), "Added %s", strings.TrimSpace(f.Name))
}

func (s *Shell) editSweet(ctx context.Context) error {
	sweet, ok, err := s.pickSweet("Edit which sweet?")
	if err != nil || !ok {
		return err
	}
	f, err := s.sweetForm(forms.SweetFrom(sweet))
	if err != nil {
		return err
	}
	return s.applied(s.inventory.Update(ctx, sweet.ID, f), "Updated %s", strings.TrimSpace(f.Name))
}

func (s *Shell) deleteSweet(ctx context.Context) error {
	sweet, ok, err := s.pickSweet("Delete which sweet?")
	if err != nil || !ok {
		return err
	}
	confirmed, err := s.confirm(fmt.Sprintf("Delete %s? This cannot be undone", sweet.Name))
	if err != nil {
		return err
	}
	if !confirmed {
		s.notifier.Info("Delete cancelled")
		return nil
	}
	return s.applied(s.inventory.Delete(ctx, sweet.ID), "Deleted %s", sweet.Name)
}

func (s *Shell) restockSweet(ctx context.Context) error {
	sweet, ok, err := s.pickSweet("Restock which sweet?")
	if err != nil || !ok {
		return err
	}
	quantity, err := s.input("Quantity to add", "")
	if err != nil {
		return err
	}
	return s.applied(s.inventory.Restock(ctx, sweet.ID, quantity), "Restocked %s", sweet.Name)
}

// applied announces a change the API accepted. When only the reload after it
// failed, the views are marked stale and the reload error is still returned.
func (s *Shell) applied(err error, format string, args ...any) error {
	if err != nil && !catalog.IsReloadError(err) {
		return err
	}
	if err != nil {
		s.markStale()
	} else {
		s.catalogStale = true
	}
	s.notifier.Success(format, args...)
	return err
}

func roleLabel(state sdk.AuthorizationState) string {
	if state.Role == "" {
		return "a customer"
	}
	return strings.ToLower(state.Role)
}

func describeFilter(f catalog.Filter) string {
	var parts []string
	if f.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", f.Search))
	}
	if f.Category != "" {
		parts = append(parts, fmt.Sprintf("category %q", f.Category))
	}
	if len(parts) == 0 {
		return ""
	}
	return "Filtered by " + strings.Join(parts, " and ")
}
