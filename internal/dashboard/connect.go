package dashboard

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"nativoseo/internal/dashboard/view"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/errors"
)

const (
	msgConnectFailed   = "No se pudo conectar con Google. Inténtalo de nuevo más tarde."
	msgTokensFailed    = "No se pudieron guardar los tokens de autenticación."
	msgTokensSaved     = "Cuenta de Google conectada correctamente"
	msgConnectScanHint = "Abre el enlace o escanea el código para autorizar el acceso a Google Business Profile."
)

// ConnectGooglePage starts the Google consent flow and stores the resulting tokens.
type ConnectGooglePage struct {
	app *App
	qr  service.QRCodeService

	AuthURL string
	QR      string
	Notice  *Notice
}

// ConnectGoogle opens the connect page. qr may be nil to skip the QR code.
func (a *App) ConnectGoogle(qr service.QRCodeService) *ConnectGooglePage {
	return &ConnectGooglePage{app: a, qr: qr}
}

// Start fetches the consent URL.
func (p *ConnectGooglePage) Start(ctx context.Context) error {
	authURL, err := p.app.api.GoogleAuthURL(ctx)
	if err != nil {
		p.app.logger.Warn("Failed to obtain consent URL", slog.Any("error", err))
		p.Notice = failure(msgConnectFailed)

		return p.app.Check(err)
	}
	p.AuthURL = authURL

	if p.qr != nil {
		qr, err := p.qr.GenerateTerminal(authURL)
		if err != nil {
			p.app.logger.Warn("Failed to render QR code", slog.Any("error", err))
		} else {
			p.QR = qr
		}
	}

	return nil
}

// SaveTokens stores tokens returned by the consent flow.
func (p *ConnectGooglePage) SaveTokens(ctx context.Context, accessToken, refreshToken string) error {
	if err := p.app.session.SaveGoogleToken(ctx, accessToken, refreshToken); err != nil {
		p.app.logger.Warn("Failed to save Google tokens", slog.Any("error", err))
		p.Notice = failure(msgTokensFailed)

		return p.app.Check(errors.WithStack(err))
	}
	p.Notice = success(msgTokensSaved)

	return nil
}

// Render writes the page.
func (p *ConnectGooglePage) Render(w io.Writer) {
	var b strings.Builder
	b.WriteString(view.Title("Conectar Google") + "\n")
	if p.AuthURL != "" {
		b.WriteString(msgConnectScanHint + "\n" + p.AuthURL + "\n")
	}
	if p.QR != "" {
		b.WriteString(p.QR + "\n")
	}
	if n := p.Notice.render(); n != "" {
		b.WriteString(n + "\n")
	}

	_, _ = io.WriteString(w, b.String())
}
