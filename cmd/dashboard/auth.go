package main

import (
	"nativoseo/internal/dashboard"
	"nativoseo/internal/dashboard/view"
	"nativoseo/pkg/client"

	"github.com/spf13/cobra"
)

func (c *cli) loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if username, err = c.prompt("Usuario", username); err != nil {
				return err
			}
			if password, err = c.prompt("Contraseña", password); err != nil {
				return err
			}

			user, err := c.app.Session().Login(cmd.Context(), username, password)
			if err != nil {
				c.app.Print(view.Notice(dashboard.Message(err, "No se pudo iniciar sesión"), view.ColorError))

				return err
			}
			c.app.Print(view.Notice("Bienvenido, "+user.Username, view.ColorSuccess))

			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "nombre de usuario")
	cmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (se pide si falta)")

	return cmd
}

func (c *cli) registerCmd() *cobra.Command {
	var in client.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Crear una cuenta e iniciar sesión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.Username, err = c.prompt("Usuario", in.Username); err != nil {
				return err
			}
			if in.Email, err = c.prompt("Email", in.Email); err != nil {
				return err
			}
			if in.Password, err = c.prompt("Contraseña", in.Password); err != nil {
				return err
			}

			user, err := c.app.Session().Register(cmd.Context(), in)
			if err != nil {
				c.app.Print(view.Notice(dashboard.Message(err, "No se pudo crear la cuenta"), view.ColorError))

				return err
			}
			c.app.Print(view.Notice("Cuenta creada. Bienvenido, "+user.Username, view.ColorSuccess))

			return nil
		},
	}
	cmd.Flags().StringVarP(&in.Username, "username", "u", "", "nombre de usuario")
	cmd.Flags().StringVarP(&in.Email, "email", "e", "", "email")
	cmd.Flags().StringVarP(&in.Password, "password", "p", "", "contraseña (se pide si falta)")

	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := c.app.Session().Logout(); err != nil {
				return err
			}
			c.app.Print(view.Notice("Sesión cerrada", view.ColorInfo))

			return nil
		},
	}
}

func (c *cli) connectGoogleCmd() *cobra.Command {
	var accessToken, refreshToken string
	var noQR bool

	cmd := &cobra.Command{
		Use:   "connect-google",
		Short: "Conectar la cuenta de Google Business Profile",
		Long: `Without flags prints the Google consent URL and a QR code. After authorizing,
pass the tokens shown on the callback page with --access-token and
--refresh-token to store them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Guard("/connect-google"); err != nil {
				return err
			}

			page := c.app.ConnectGoogle(c.qrService(noQR))
			var err error
			if accessToken != "" {
				err = page.SaveTokens(cmd.Context(), accessToken, refreshToken)
			} else {
				err = page.Start(cmd.Context())
			}
			page.Render(c.stdout)

			return err
		},
	}
	cmd.Flags().StringVar(&accessToken, "access-token", "", "token de acceso de Google")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "token de actualización de Google")
	cmd.Flags().BoolVar(&noQR, "no-qr", false, "no mostrar el código QR")

	return cmd
}
