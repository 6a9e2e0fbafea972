package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"nativoseo/internal/dashboard/view"
	"nativoseo/internal/errors"
	"nativoseo/pkg/client"

	"golang.org/x/sync/errgroup"
)

const (
	msgLocationInactive = "Esta ubicación no está activa. Actívala en la página de ubicaciones para continuar."
	msgMoreReviewsFail  = "No se pudieron cargar más reseñas"
	msgReplyExample     = "No se puede responder a reseñas de ejemplo"
	msgReplyEmpty       = "La respuesta no puede estar vacía"
	msgReplySent        = "Respuesta enviada correctamente"
	msgReplyFailed      = "Error al enviar la respuesta"
)

// ReviewFilter narrows an already fetched review list.
type ReviewFilter struct {
	// MinRating keeps reviews rated at least this many stars; 1 or less keeps all.
	MinRating     int
	OnlyUnreplied bool
}

// FilterReviews applies f and sorts the result newest first. The input is not modified.
func FilterReviews(reviews []client.Review, f ReviewFilter) []client.Review {
	out := make([]client.Review, 0, len(reviews))
	for _, r := range reviews {
		if f.MinRating > 1 && r.Rating() < f.MinRating {
			continue
		}
		if f.OnlyUnreplied && r.HasReply() {
			continue
		}
		out = append(out, r)
	}

	slices.SortStableFunc(out, func(a, b client.Review) int {
		return b.Created().Compare(a.Created())
	})

	return out
}

// ReviewsPage shows the reviews of one active location.
type ReviewsPage struct {
	app *App
	now func() time.Time

	AccountID  string
	LocationID string
	Filter     ReviewFilter

	// Inactive is set when the location is not in the active set; nothing else is loaded then.
	Inactive      bool
	Reviews       []client.Review
	Stats         client.ReviewStats
	NextPageToken string
	Fallback      bool
	Banner        string
	Notice        *Notice
}

// Reviews opens the reviews page of a location.
func (a *App) Reviews(accountID, locationID string) *ReviewsPage {
	return &ReviewsPage{app: a, now: time.Now, AccountID: accountID, LocationID: locationID}
}

// Load checks the location is active, then fetches stats and the first page
// together. Any failure switches the page to example data.
func (p *ReviewsPage) Load(ctx context.Context) error {
	active, err := p.app.active.Load(ctx)
	if err != nil {
		return p.app.Check(err)
	}
	if !active[p.LocationID] {
		p.Inactive = true
		p.Notice = warning(msgLocationInactive)

		return nil
	}

	var (
		stats *client.ReviewStats
		page  *client.ReviewPage
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = p.app.api.ReviewStats(gctx, p.AccountID, p.LocationID)

		return err
	})
	g.Go(func() error {
		var err error
		page, err = p.app.api.Reviews(gctx, p.AccountID, p.LocationID, 0, "")

		return err
	})

	if err := g.Wait(); err != nil {
		if err := p.app.Check(err); errors.Is(err, ErrLoginRequired) {
			return err
		}
		p.app.logger.Warn("Failed to load reviews", slog.String("location_id", p.LocationID), slog.Any("error", err))
		p.useExamples()

		return nil
	}

	p.Reviews = page.Reviews
	p.NextPageToken = page.NextPageToken
	p.Stats = *stats

	return nil
}

func (p *ReviewsPage) useExamples() {
	p.Fallback = true
	p.Reviews = exampleReviews(p.now())
	p.Stats = exampleStats()
	p.NextPageToken = ""
	p.Banner = ReviewsFallbackBanner
}

// HasMore reports whether another page can be requested.
func (p *ReviewsPage) HasMore() bool {
	return !p.Fallback && !p.Inactive && p.NextPageToken != ""
}

// LoadMore appends the next page. On failure the current list is kept.
func (p *ReviewsPage) LoadMore(ctx context.Context) error {
	if !p.HasMore() {
		return nil
	}

	page, err := p.app.api.Reviews(ctx, p.AccountID, p.LocationID, 0, p.NextPageToken)
	if err != nil {
		p.app.logger.Warn("Failed to load more reviews", slog.Any("error", err))
		p.Notice = failure(msgMoreReviewsFail)

		return p.app.Check(err)
	}

	p.Reviews = append(p.Reviews, page.Reviews...)
	p.NextPageToken = page.NextPageToken

	return nil
}

// Reply answers a review and updates it in place.
func (p *ReviewsPage) Reply(ctx context.Context, reviewID, text string) error {
	if p.Fallback {
		p.Notice = warning(msgReplyExample)

		return nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		p.Notice = warning(msgReplyEmpty)

		return nil
	}

	idx := slices.IndexFunc(p.Reviews, func(r client.Review) bool { return r.ReviewID == reviewID })
	if idx < 0 {
		return errors.Errorf("unknown review %s", reviewID)
	}

	reply, err := p.app.api.ReplyToReview(ctx, p.AccountID, p.LocationID, reviewID, text)
	if err != nil {
		p.app.logger.Warn("Failed to reply to review", slog.String("review_id", reviewID), slog.Any("error", err))
		p.Notice = failure(msgReplyFailed)

		return p.app.Check(err)
	}

	if !p.Reviews[idx].Replied() && p.Stats.PendingReviews > 0 {
		p.Stats.PendingReviews--
	}
	if reply.Comment == "" {
		reply.Comment = text
	}
	p.Reviews[idx].ReviewReply = reply
	p.Notice = success(msgReplySent)

	return nil
}

// Visible is the filtered list in display order.
func (p *ReviewsPage) Visible() []client.Review {
	return FilterReviews(p.Reviews, p.Filter)
}

// Render writes the page.
func (p *ReviewsPage) Render(w io.Writer) {
	var b strings.Builder
	b.WriteString(view.Title("Reseñas") + "\n")

	if p.Inactive {
		b.WriteString(p.Notice.render() + "\n")
		_, _ = io.WriteString(w, b.String())

		return
	}
	if p.Banner != "" {
		b.WriteString(view.Banner(p.Banner) + "\n")
	}

	fmt.Fprintf(&b, "Total: %d  Promedio: %.1f  Pendientes: %d\n",
		p.Stats.TotalReviewCount, p.Stats.AverageRating, p.Stats.PendingReviews)

	visible := p.Visible()
	if len(visible) == 0 {
		b.WriteString(view.Muted("No hay reseñas que coincidan con los filtros.") + "\n")
	}
	for _, r := range visible {
		name := r.Reviewer.DisplayName
		if name == "" {
			name = "Anónimo"
		}
		lines := []string{view.Stars(r.Rating()) + "  " + view.Muted(r.ReviewID)}
		if created := r.Created(); !created.IsZero() {
			lines = append(lines, view.Muted(created.Local().Format("02/01/2006")))
		}
		if r.Comment != "" {
			lines = append(lines, r.Comment)
		}
		if r.Replied() {
			lines = append(lines, view.Badge("Respondida", view.ColorSuccess)+" "+r.ReviewReply.Comment)
		} else {
			lines = append(lines, view.Badge("Sin responder", view.ColorWarning))
		}
		b.WriteString(view.Card(false, name, lines...) + "\n")
	}

	if p.HasMore() {
		b.WriteString(view.Muted("Hay más reseñas disponibles (--more)") + "\n")
	}
	if n := p.Notice.render(); n != "" {
		b.WriteString(n + "\n")
	}

	_, _ = io.WriteString(w, b.String())
}
