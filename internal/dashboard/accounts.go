package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"nativoseo/internal/dashboard/view"
	"nativoseo/internal/errors"
	"nativoseo/pkg/client"
)

// AccountsPage lists the Business Profile accounts of the operator.
type AccountsPage struct {
	app *App

	Accounts []client.Account
	Fallback bool
	Banner   string
}

// Accounts opens the accounts page.
func (a *App) Accounts() *AccountsPage {
	return &AccountsPage{app: a}
}

// Load fetches the accounts, falling back to an example account.
func (p *AccountsPage) Load(ctx context.Context) error {
	accounts, err := p.app.api.Accounts(ctx)
	if err != nil {
		if err := p.app.Check(err); errors.Is(err, ErrLoginRequired) {
			return err
		}
		p.app.logger.Warn("Failed to load accounts", slog.Any("error", err))
		p.Fallback = true
		p.Banner = AccountsFallbackBanner
		p.Accounts = exampleAccounts()

		return nil
	}
	p.Accounts = accounts

	return nil
}

// Render writes the page.
func (p *AccountsPage) Render(w io.Writer) {
	var b strings.Builder
	b.WriteString(view.Title("Cuentas") + "\n")
	if p.Banner != "" {
		b.WriteString(view.Banner(p.Banner) + "\n")
	}
	if len(p.Accounts) == 0 {
		b.WriteString(view.Muted("No hay cuentas. Conecta tu cuenta de Google primero.") + "\n")
	}

	for _, a := range p.Accounts {
		lines := []string{"ID: " + a.ID()}
		if a.Type != "" {
			lines = append(lines, "Tipo: "+a.Type)
		}
		if a.Role != "" {
			lines = append(lines, "Rol: "+a.Role)
		}
		b.WriteString(view.Card(false, a.AccountName, lines...) + "\n")
	}

	_, _ = io.WriteString(w, b.String())
}

// HomePage is the dashboard summary: profile and counters.
type HomePage struct {
	app *App

	User            *client.User
	AccountCount    int
	ActiveLocations int
	Banner          string
}

// Home opens the dashboard summary.
func (a *App) Home() *HomePage {
	return &HomePage{app: a}
}

// Load refreshes the profile, then counts accounts and active locations. A failed
// profile fetch ends in the login redirect; counter failures show example numbers
// under a banner.
func (p *HomePage) Load(ctx context.Context) error {
	user, err := p.app.session.Current(ctx)
	if err != nil {
		// Current has already dropped the session, whatever the cause.
		if !errors.Is(err, ErrLoginRequired) {
			p.app.logger.Warn("Failed to refresh profile", slog.Any("error", err))
		}
		p.app.redirect()

		return ErrLoginRequired
	}
	p.User = user

	active, err := p.app.active.Load(ctx)
	if err != nil {
		return p.app.Check(err)
	}
	p.ActiveLocations = len(active)

	accounts, err := p.app.api.Accounts(ctx)
	if err != nil {
		if err := p.app.Check(err); errors.Is(err, ErrLoginRequired) {
			return err
		}
		p.app.logger.Warn("Failed to count accounts", slog.Any("error", err))
		p.Banner = ProfileFallbackBanner
		accounts = exampleAccounts()
	}
	p.AccountCount = len(accounts)

	return nil
}

// Render writes the page.
func (p *HomePage) Render(w io.Writer) {
	var b strings.Builder
	b.WriteString(view.Title("Panel") + "\n")
	if p.Banner != "" {
		b.WriteString(view.Banner(p.Banner) + "\n")
	}
	if p.User != nil {
		b.WriteString(view.Card(true, "Hola, "+p.User.Username, "Email: "+p.User.Email) + "\n")
	}
	fmt.Fprintf(&b, "Cuentas: %d\nUbicaciones activas: %d\n", p.AccountCount, p.ActiveLocations)

	for _, r := range Routes {
		if r.Protected && r.Path != "/" && r.Path != "/dashboard" {
			b.WriteString(view.Muted("  "+r.Path+"  "+r.Title) + "\n")
		}
	}

	_, _ = io.WriteString(w, b.String())
}
