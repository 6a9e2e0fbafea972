package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"nativoseo/internal/dashboard/view"
	"nativoseo/internal/errors"
	"nativoseo/pkg/client"

	"github.com/google/uuid"
)

const (
	msgPostCreated     = "Publicación creada exitosamente"
	msgPostCreatedDemo = "Publicación creada exitosamente (modo demo)"
	msgPostFailed      = "Error al crear la publicación: "
	msgPostIncomplete  = "Escribe el contenido y selecciona una ubicación"
	msgImageFailed     = "Error al subir la imagen"
	msgMorePostsFail   = "No se pudieron cargar más publicaciones"
)

const stateLive = "LIVE"

// ErrIncompleteForm is returned when a post form cannot be submitted.
var ErrIncompleteForm = errors.New("post form is incomplete")

// NormalizePosts makes the list safe to render: Media is never nil, State
// defaults to LIVE and CreateTime falls back to UpdateTime, then to now.
func NormalizePosts(posts []client.Post, now time.Time) []client.Post {
	out := make([]client.Post, len(posts))
	for i, p := range posts {
		if p.Media == nil {
			p.Media = []client.MediaItem{}
		}
		if p.State == "" {
			p.State = stateLive
		}
		if p.CreateTime == "" {
			p.CreateTime = p.UpdateTime
		}
		if p.CreateTime == "" {
			p.CreateTime = now.Format(time.RFC3339)
		}
		out[i] = p
	}

	return out
}

// DaysSinceLastPost is the smallest value reported across locations. Without any
// it is derived from the newest post, and 0 when there are no posts either.
func DaysSinceLastPost(locs []client.LocationPostSummary, posts []client.Post, now time.Time) int {
	days := -1
	for _, l := range locs {
		if l.DaysSinceLastPost != nil && (days < 0 || *l.DaysSinceLastPost < days) {
			days = *l.DaysSinceLastPost
		}
	}
	if days >= 0 {
		return days
	}

	var newest time.Time
	for _, p := range posts {
		if t, err := time.Parse(time.RFC3339, p.CreateTime); err == nil && t.After(newest) {
			newest = t
		}
	}
	if newest.IsZero() {
		return 0
	}

	return max(0, int(now.Sub(newest).Hours()/24))
}

// PostForm is the create post form.
type PostForm struct {
	LocationID string
	Summary    string

	// Image is uploaded before the post is created when set.
	Image            io.Reader
	ImageName        string
	ImageContentType string

	LanguageCode string
	TopicType    string
	CTAType      string
	CTAURL       string
}

// CanSubmit reports whether the form has a non blank summary and a location.
func (f PostForm) CanSubmit() bool {
	return strings.TrimSpace(f.Summary) != "" && f.LocationID != ""
}

func (f PostForm) extended() bool {
	return f.LanguageCode != "" || f.TopicType != "" || f.CTAType != "" || f.CTAURL != ""
}

// PostsPage lists posts across active locations and creates new ones.
type PostsPage struct {
	app *App
	now func() time.Time

	Posts             []client.Post
	Locations         []client.LocationPostSummary
	NextPageToken     string
	DaysSinceLastPost int
	Fallback          bool
	Banner            string
	Notice            *Notice
}

// Posts opens the posts page.
func (a *App) Posts() *PostsPage {
	return &PostsPage{app: a, now: time.Now}
}

// Load fetches the first page of posts. A failure shows example posts.
func (p *PostsPage) Load(ctx context.Context) error {
	page, err := p.app.api.ActivePosts(ctx, 0, "")
	if err != nil {
		if err := p.app.Check(err); errors.Is(err, ErrLoginRequired) {
			return err
		}
		p.app.logger.Warn("Failed to load posts", slog.Any("error", err))
		p.Fallback = true
		p.Banner = PostsFallbackBanner
		p.Posts = examplePosts(p.now())
		p.Locations = []client.LocationPostSummary{exampleLocationSummary()}
		p.NextPageToken = ""
		p.DaysSinceLastPost = DaysSinceLastPost(p.Locations, p.Posts, p.now())

		return nil
	}

	p.Posts = NormalizePosts(page.Posts, p.now())
	p.Locations = page.Locations
	p.NextPageToken = page.NextPageToken
	p.DaysSinceLastPost = DaysSinceLastPost(p.Locations, p.Posts, p.now())

	return nil
}

// LoadMore appends the next page; on failure the current list is kept.
func (p *PostsPage) LoadMore(ctx context.Context) error {
	if p.Fallback || p.NextPageToken == "" {
		return nil
	}

	page, err := p.app.api.ActivePosts(ctx, 0, p.NextPageToken)
	if err != nil {
		p.app.logger.Warn("Failed to load more posts", slog.Any("error", err))
		p.Notice = failure(msgMorePostsFail)

		return p.app.Check(err)
	}

	p.Posts = append(p.Posts, NormalizePosts(page.Posts, p.now())...)
	p.NextPageToken = page.NextPageToken

	return nil
}

// Create submits f. An incomplete form returns ErrIncompleteForm without calling
// the backend; on example data the post is only added locally.
func (p *PostsPage) Create(ctx context.Context, f PostForm) (*client.Post, error) {
	if !f.CanSubmit() {
		p.Notice = warning(msgPostIncomplete)

		return nil, ErrIncompleteForm
	}
	summary := strings.TrimSpace(f.Summary)

	if p.Fallback {
		post := client.Post{
			Name:       "demo-" + uuid.NewString(),
			Summary:    summary,
			State:      stateLive,
			CreateTime: p.now().Format(time.RFC3339),
			Media:      []client.MediaItem{},
			LocationInfo: &client.PostLocationInfo{
				LocationID:   f.LocationID,
				LocationName: p.locationName(f.LocationID),
			},
		}
		p.added(post)
		p.Notice = success(msgPostCreatedDemo)

		return &post, nil
	}

	in := client.NewPost{
		LocationID:   f.LocationID,
		Summary:      summary,
		LanguageCode: f.LanguageCode,
		TopicType:    f.TopicType,
		CTAType:      f.CTAType,
		CTAURL:       f.CTAURL,
	}

	if f.Image != nil {
		img, err := p.app.api.UploadImage(ctx, f.ImageName, f.ImageContentType, f.Image)
		if err != nil {
			p.app.logger.Warn("Failed to upload image", slog.Any("error", err))
			p.Notice = failure(Message(err, msgImageFailed))

			return nil, p.app.Check(err)
		}
		in.MediaURL = img.URL
	}

	create := p.app.api.CreatePost
	if f.extended() {
		create = p.app.api.CreateExtendedPost
	}

	post, err := create(ctx, in)
	if err != nil {
		p.app.logger.Warn("Failed to create post", slog.String("location_id", f.LocationID), slog.Any("error", err))
		p.Notice = failure(msgPostFailed + Message(err, err.Error()))

		return nil, p.app.Check(err)
	}

	created := NormalizePosts([]client.Post{*post}, p.now())[0]
	p.added(created)
	p.Notice = success(msgPostCreated)

	return &created, nil
}

func (p *PostsPage) added(post client.Post) {
	p.Posts = append([]client.Post{post}, p.Posts...)
	p.DaysSinceLastPost = 0

	for i := range p.Locations {
		if post.LocationInfo != nil && p.Locations[i].LocationID == post.LocationInfo.LocationID {
			zero := 0
			p.Locations[i].PostCount++
			p.Locations[i].DaysSinceLastPost = &zero
		}
	}
}

func (p *PostsPage) locationName(id string) string {
	for _, l := range p.Locations {
		if l.LocationID == id {
			return l.LocationName
		}
	}

	return id
}

// Render writes the page.
func (p *PostsPage) Render(w io.Writer) {
	var b strings.Builder
	b.WriteString(view.Title("Publicaciones") + "\n")
	if p.Banner != "" {
		b.WriteString(view.Banner(p.Banner) + "\n")
	}

	b.WriteString("Días desde la última publicación: " +
		view.Badge(fmt.Sprint(p.DaysSinceLastPost), view.DaysColor(p.DaysSinceLastPost)) + "\n")

	for _, l := range p.Locations {
		line := fmt.Sprintf("%s (%s): %d publicaciones", l.LocationName, l.LocationID, l.PostCount)
		if l.DaysSinceLastPost != nil {
			line += ", " + view.Badge(fmt.Sprintf("%d días", *l.DaysSinceLastPost), view.DaysColor(*l.DaysSinceLastPost))
		}
		b.WriteString(line + "\n")
	}

	if len(p.Posts) == 0 {
		b.WriteString(view.Muted("Todavía no hay publicaciones.") + "\n")
	}
	for _, post := range p.Posts {
		title := "Publicación"
		if post.LocationInfo != nil && post.LocationInfo.LocationName != "" {
			title = post.LocationInfo.LocationName
		}
		lines := []string{view.Badge(view.PostStateLabel(post.State), stateColor(post.State)), post.Summary}
		if img := post.ImageURL(); img != "" {
			lines = append(lines, "Imagen: "+img)
		}
		if post.CallToAction != nil && post.CallToAction.URL != "" {
			lines = append(lines, post.CallToAction.ActionType+": "+post.CallToAction.URL)
		}
		if t, err := time.Parse(time.RFC3339, post.CreateTime); err == nil {
			lines = append(lines, view.Muted(t.Local().Format("02/01/2006 15:04")))
		}
		b.WriteString(view.Card(false, title, lines...) + "\n")
	}

	if p.NextPageToken != "" && !p.Fallback {
		b.WriteString(view.Muted("Hay más publicaciones disponibles (--more)") + "\n")
	}
	if n := p.Notice.render(); n != "" {
		b.WriteString(n + "\n")
	}

	_, _ = io.WriteString(w, b.String())
}

func stateColor(state string) view.Color {
	if view.PostStateLabel(state) == "Activa" {
		return view.ColorSuccess
	}

	return view.ColorDefault
}
