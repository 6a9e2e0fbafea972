package dashboard

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"nativoseo/internal/dashboard/view"
	"nativoseo/internal/errors"
	"nativoseo/pkg/client"
)

const (
	msgLocationActivated   = "Ubicación activada correctamente"
	msgLocationDeactivated = "Ubicación desactivada correctamente"
	msgLocationFailed      = "Error al actualizar la ubicación. Intenta de nuevo."
	msgAllActivated        = "Todas las ubicaciones fueron activadas"
	msgAllDeactivated      = "Todas las ubicaciones fueron desactivadas"
	msgSomeFailed          = "Algunas ubicaciones no se pudieron actualizar. Intenta de nuevo."
)

// LocationCard is one location as shown on the locations page.
type LocationCard struct {
	Location    client.Location
	Active      bool
	StatusLabel string
	StatusColor view.Color
}

// ActionsEnabled reports whether the reviews and posts actions of the card are
// available. Only active locations get them.
func (c LocationCard) ActionsEnabled() bool { return c.Active }

// LocationsPage lists the locations of one account with their activation state.
type LocationsPage struct {
	app *App

	AccountID string
	Cards     []LocationCard
	Banner    string
	Notice    *Notice
}

// Locations opens the locations page of an account.
func (a *App) Locations(accountID string) *LocationsPage {
	return &LocationsPage{app: a, AccountID: accountID}
}

// Load fetches the locations and the active set. A failed location fetch shows
// example locations under a banner.
func (p *LocationsPage) Load(ctx context.Context) error {
	locs, err := p.app.api.Locations(ctx, p.AccountID)
	if err != nil {
		if err := p.app.Check(err); errors.Is(err, ErrLoginRequired) {
			return err
		}
		p.app.logger.Warn("Failed to load locations", slog.String("account_id", p.AccountID), slog.Any("error", err))
		locs = exampleLocations()
		p.Banner = LocationsFallbackBanner
	}

	active, err := p.app.active.Load(ctx)
	if err != nil {
		return p.app.Check(err)
	}

	p.Cards = make([]LocationCard, 0, len(locs))
	for _, loc := range locs {
		label, color := view.LocationStatus(loc.BusinessStatus)
		p.Cards = append(p.Cards, LocationCard{
			Location:    loc,
			Active:      active[loc.ID()],
			StatusLabel: label,
			StatusColor: color,
		})
	}

	return nil
}

// Activate activates the card with the given location id.
func (p *LocationsPage) Activate(ctx context.Context, locationID string) error {
	card := p.card(locationID)
	if card == nil {
		return errors.Errorf("unknown location %s", locationID)
	}

	if err := p.app.active.Activate(ctx, p.AccountID, card.Location); err != nil {
		return p.fail(err)
	}

	card.Active = true
	p.Notice = success(msgLocationActivated)

	return nil
}

// Deactivate deactivates the card with the given location id.
func (p *LocationsPage) Deactivate(ctx context.Context, locationID string) error {
	card := p.card(locationID)
	if card == nil {
		return errors.Errorf("unknown location %s", locationID)
	}

	if err := p.app.active.Deactivate(ctx, p.AccountID, locationID); err != nil {
		return p.fail(err)
	}

	card.Active = false
	p.Notice = success(msgLocationDeactivated)

	return nil
}

// ActivateAll activates every inactive card at once.
func (p *LocationsPage) ActivateAll(ctx context.Context) error {
	var locs []client.Location
	for _, c := range p.Cards {
		if !c.Active {
			locs = append(locs, c.Location)
		}
	}

	err := p.app.active.ActivateAll(ctx, p.AccountID, locs)

	return p.settle(err, msgAllActivated)
}

// DeactivateAll deactivates every active card at once.
func (p *LocationsPage) DeactivateAll(ctx context.Context) error {
	var ids []string
	for _, c := range p.Cards {
		if c.Active {
			ids = append(ids, c.Location.ID())
		}
	}

	err := p.app.active.DeactivateAll(ctx, p.AccountID, ids)

	return p.settle(err, msgAllDeactivated)
}

// settle refreshes the cards from the mirror, which holds exactly the
// acknowledged changes after a bulk call.
func (p *LocationsPage) settle(err error, ok string) error {
	active := toSet(p.app.store.ActiveLocations())
	for i := range p.Cards {
		p.Cards[i].Active = active[p.Cards[i].Location.ID()]
	}

	if err != nil {
		p.app.logger.Warn("Bulk location update partially failed", slog.Any("error", err))
		p.Notice = failure(msgSomeFailed)

		return p.app.Check(err)
	}
	p.Notice = success(ok)

	return nil
}

func (p *LocationsPage) fail(err error) error {
	p.app.logger.Warn("Failed to update location", slog.Any("error", err))
	p.Notice = failure(msgLocationFailed)

	return p.app.Check(err)
}

func (p *LocationsPage) card(locationID string) *LocationCard {
	for i := range p.Cards {
		if p.Cards[i].Location.ID() == locationID {
			return &p.Cards[i]
		}
	}

	return nil
}

// Render writes the page.
func (p *LocationsPage) Render(w io.Writer) {
	var b strings.Builder
	b.WriteString(view.Title("Ubicaciones") + "\n")
	if p.Banner != "" {
		b.WriteString(view.Banner(p.Banner) + "\n")
	}
	if len(p.Cards) == 0 {
		b.WriteString(view.Muted("No hay ubicaciones para esta cuenta.") + "\n")
	}

	for _, c := range p.Cards {
		badge := view.Badge("Inactiva", view.ColorDefault)
		actions := view.Muted("Activa la ubicación para gestionar reseñas y publicaciones")
		if c.Active {
			badge = view.Badge("Activa", view.ColorSuccess)
			actions = "Acciones: reseñas, publicaciones"
		}

		lines := []string{
			badge + " " + view.Badge(c.StatusLabel, c.StatusColor),
			"ID: " + c.Location.ID(),
		}
		if addr := c.Location.Address(); addr != "" {
			lines = append(lines, "Dirección: "+addr)
		}
		if phone := c.Location.Phone(); phone != "" {
			lines = append(lines, "Teléfono: "+phone)
		}
		if c.Location.WebsiteURI != "" {
			lines = append(lines, "Sitio web: "+c.Location.WebsiteURI)
		}
		lines = append(lines, actions)

		b.WriteString(view.Card(c.Active, c.Location.Title, lines...) + "\n")
	}

	if n := p.Notice.render(); n != "" {
		b.WriteString(n + "\n")
	}

	_, _ = io.WriteString(w, b.String())
}
