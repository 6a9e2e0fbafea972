package dashboard

import (
	"fmt"
	"io"
	"log/slog"

	"nativoseo/internal/dashboard/localstore"
	"nativoseo/internal/dashboard/view"
	"nativoseo/internal/errors"
	"nativoseo/pkg/client"
)

// ErrLoginRequired is returned when a protected route is reached without a session
// or the backend rejected the stored token.
var ErrLoginRequired = errors.New("login required")

// LoginPath is where unauthenticated operators are sent.
const LoginPath = "/login"

// Route is one entry of the navigation table.
type Route struct {
	Path      string
	Title     string
	Protected bool
}

// Routes is the navigation table. Protected routes are reachable only with a session.
var Routes = []Route{
	{Path: LoginPath, Title: "Iniciar sesión"},
	{Path: "/register", Title: "Crear cuenta"},
	{Path: "/", Title: "Inicio", Protected: true},
	{Path: "/dashboard", Title: "Panel", Protected: true},
	{Path: "/accounts", Title: "Cuentas", Protected: true},
	{Path: "/locations", Title: "Ubicaciones", Protected: true},
	{Path: "/reviews", Title: "Reseñas", Protected: true},
	{Path: "/posts", Title: "Publicaciones", Protected: true},
	{Path: "/connect-google", Title: "Conectar Google", Protected: true},
}

// LookupRoute finds a route by path.
func LookupRoute(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}

	return Route{}, false
}

// App is the navigation shell shared by every page.
type App struct {
	api     API
	store   *localstore.Store
	out     io.Writer
	logger  *slog.Logger
	session *Session
	active  *ActiveSet
}

// NewApp wires the shell. The API should read its bearer token from store.
func NewApp(api API, store *localstore.Store, out io.Writer, logger *slog.Logger) *App {
	app := &App{
		api:    api,
		store:  store,
		out:    out,
		logger: logger,
	}
	app.session = &Session{api: api, store: store, logger: logger}
	app.active = &ActiveSet{api: api, store: store, logger: logger}

	return app
}

// Session returns the auth context.
func (a *App) Session() *Session { return a.session }

// Active returns the active location synchronizer.
func (a *App) Active() *ActiveSet { return a.active }

// Guard admits path when it is public or a session token is stored. Otherwise it
// prints the login redirect and returns ErrLoginRequired without calling the backend.
func (a *App) Guard(path string) error {
	route, ok := LookupRoute(path)
	if !ok {
		return errors.Errorf("unknown route %s", path)
	}
	if !route.Protected || a.session.Authenticated() {
		return nil
	}

	a.redirect()

	return ErrLoginRequired
}

// Check turns a backend 401 into a cleared session and a login redirect.
// Other errors pass through unchanged.
func (a *App) Check(err error) error {
	if err == nil || !client.IsUnauthorized(err) {
		return err
	}

	a.logger.Warn("Session rejected by backend", slog.Any("error", err))
	if clearErr := a.session.Logout(); clearErr != nil {
		a.logger.Error("Failed to clear session", slog.Any("error", clearErr))
	}
	a.redirect()

	return ErrLoginRequired
}

// Print writes a rendered block followed by a newline.
func (a *App) Print(block string) {
	fmt.Fprintln(a.out, block)
}

func (a *App) redirect() {
	a.Print(view.Redirect(LoginPath))
}

// Message picks the operator facing text for err: the backend detail when there
// is one, fallback otherwise.
func Message(err error, fallback string) string {
	if httpErr, ok := errors.AsType[*client.HTTPError](err); ok && httpErr.Detail != "" {
		return httpErr.Detail
	}

	return fallback
}

// Notice is a notification raised by a page action.
type Notice struct {
	Text  string
	Color view.Color
}

func (n *Notice) render() string {
	if n == nil {
		return ""
	}

	return view.Notice(n.Text, n.Color)
}

func success(text string) *Notice { return &Notice{Text: text, Color: view.ColorSuccess} }

func warning(text string) *Notice { return &Notice{Text: text, Color: view.ColorWarning} }

func failure(text string) *Notice { return &Notice{Text: text, Color: view.ColorError} }
