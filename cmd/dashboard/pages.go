package main

import (
	"os"
	"path/filepath"

	"nativoseo/internal/dashboard"
	"nativoseo/internal/domain/service"
	"nativoseo/internal/errors"
	"nativoseo/internal/infra/qrcode"

	"github.com/spf13/cobra"
)

func (c *cli) qrService(disabled bool) service.QRCodeService {
	if disabled {
		return nil
	}

	return qrcode.NewQRCodeService(qrcode.DefaultSize, "L")
}

func (c *cli) runHome(cmd *cobra.Command) error {
	if err := c.app.Guard("/dashboard"); err != nil {
		return err
	}

	page := c.app.Home()
	if err := page.Load(cmd.Context()); err != nil {
		return err
	}
	page.Render(c.stdout)

	return nil
}

func (c *cli) homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Resumen de la cuenta",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runHome(cmd)
		},
	}
}

func (c *cli) accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Listar cuentas de Google Business Profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Guard("/accounts"); err != nil {
				return err
			}

			page := c.app.Accounts()
			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			page.Render(c.stdout)

			return nil
		},
	}
}

func (c *cli) locationsCmd() *cobra.Command {
	var activate, deactivate string
	var activateAll, deactivateAll bool

	cmd := &cobra.Command{
		Use:   "locations ACCOUNT_ID",
		Short: "Listar y activar ubicaciones de una cuenta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Guard("/locations"); err != nil {
				return err
			}

			page := c.app.Locations(args[0])
			if err := page.Load(cmd.Context()); err != nil {
				return err
			}

			var err error
			switch {
			case activate != "":
				err = page.Activate(cmd.Context(), activate)
			case deactivate != "":
				err = page.Deactivate(cmd.Context(), deactivate)
			case activateAll:
				err = page.ActivateAll(cmd.Context())
			case deactivateAll:
				err = page.DeactivateAll(cmd.Context())
			}
			page.Render(c.stdout)

			return err
		},
	}
	cmd.Flags().StringVar(&activate, "activate", "", "activar la ubicación con este id")
	cmd.Flags().StringVar(&deactivate, "deactivate", "", "desactivar la ubicación con este id")
	cmd.Flags().BoolVar(&activateAll, "activate-all", false, "activar todas las ubicaciones")
	cmd.Flags().BoolVar(&deactivateAll, "deactivate-all", false, "desactivar todas las ubicaciones")
	cmd.MarkFlagsMutuallyExclusive("activate", "deactivate", "activate-all", "deactivate-all")

	return cmd
}

func (c *cli) reviewsCmd() *cobra.Command {
	var (
		filter             dashboard.ReviewFilter
		more               int
		replyTo, replyText string
	)

	cmd := &cobra.Command{
		Use:   "reviews ACCOUNT_ID LOCATION_ID",
		Short: "Ver y responder reseñas de una ubicación activa",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Guard("/reviews"); err != nil {
				return err
			}

			page := c.app.Reviews(args[0], args[1])
			page.Filter = filter
			if err := page.Load(cmd.Context()); err != nil {
				return err
			}

			var err error
			for i := 0; i < more && page.HasMore() && err == nil; i++ {
				err = page.LoadMore(cmd.Context())
			}
			if err == nil && replyTo != "" && !page.Inactive {
				err = page.Reply(cmd.Context(), replyTo, replyText)
			}
			page.Render(c.stdout)

			return err
		},
	}
	cmd.Flags().IntVar(&filter.MinRating, "min-rating", 0, "mostrar solo reseñas con al menos estas estrellas")
	cmd.Flags().BoolVar(&filter.OnlyUnreplied, "unreplied", false, "mostrar solo reseñas sin respuesta")
	cmd.Flags().IntVar(&more, "more", 0, "cargar este número de páginas adicionales")
	cmd.Flags().StringVar(&replyTo, "reply-to", "", "id de la reseña a responder")
	cmd.Flags().StringVar(&replyText, "reply", "", "texto de la respuesta")
	cmd.MarkFlagsRequiredTogether("reply-to", "reply")

	return cmd
}

func (c *cli) postsCmd() *cobra.Command {
	var more int

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Ver publicaciones de las ubicaciones activas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Guard("/posts"); err != nil {
				return err
			}

			page := c.app.Posts()
			if err := page.Load(cmd.Context()); err != nil {
				return err
			}

			var err error
			for i := 0; i < more && page.NextPageToken != "" && err == nil; i++ {
				err = page.LoadMore(cmd.Context())
			}
			page.Render(c.stdout)

			return err
		},
	}
	cmd.Flags().IntVar(&more, "more", 0, "cargar este número de páginas adicionales")
	cmd.AddCommand(c.createPostCmd())

	return cmd
}

func (c *cli) createPostCmd() *cobra.Command {
	var form dashboard.PostForm
	var image string

	cmd := &cobra.Command{
		Use:   "create LOCATION_ID",
		Short: "Crear una publicación",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Guard("/posts"); err != nil {
				return err
			}
			form.LocationID = args[0]

			page := c.app.Posts()
			if err := page.Load(cmd.Context()); err != nil {
				return err
			}

			if image != "" && form.CanSubmit() {
				f, err := os.Open(image)
				if err != nil {
					return errors.Wrap(err, "open image")
				}
				defer f.Close()

				form.Image = f
				form.ImageName = filepath.Base(image)
			}

			_, err := page.Create(cmd.Context(), form)
			page.Render(c.stdout)

			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&form.Summary, "summary", "s", "", "texto de la publicación")
	flags.StringVar(&image, "image", "", "imagen a adjuntar")
	flags.StringVar(&form.ImageContentType, "image-type", "", "tipo MIME de la imagen (se deduce de la extensión)")
	flags.StringVar(&form.LanguageCode, "language", "", "código de idioma")
	flags.StringVar(&form.TopicType, "topic", "", "tipo de publicación (STANDARD, EVENT, OFFER)")
	flags.StringVar(&form.CTAType, "cta", "", "botón de acción (LEARN_MORE, BOOK, ORDER, SHOP, SIGN_UP, CALL)")
	flags.StringVar(&form.CTAURL, "cta-url", "", "URL del botón de acción")

	return cmd
}
