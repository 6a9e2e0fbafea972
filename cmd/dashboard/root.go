package main

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"nativoseo/config"
	"nativoseo/internal/dashboard"
	"nativoseo/internal/dashboard/localstore"
	"nativoseo/internal/errors"
	logs "nativoseo/internal/infra/log"
	"nativoseo/pkg/client"

	"github.com/spf13/cobra"
)

const (
	defaultAPIURL = "http://localhost:8000"
	apiURLEnv     = "NATIVOSEO_API_URL"
)

// cli carries what every subcommand needs once the root has set it up.
type cli struct {
	stdout io.Writer
	stderr io.Writer
	stdin  *bufio.Reader

	apiURL    string
	statePath string
	debug     bool

	logger *slog.Logger
	store  *localstore.Store
	app    *dashboard.App
}

func newRootCmd(stdout, stderr io.Writer, stdin io.Reader) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr, stdin: bufio.NewReader(stdin)}

	root := &cobra.Command{
		Use:   "nativoseo",
		Short: "Panel de Google Business Profile",
		Long: `nativoseo manages Google Business Profile accounts, locations, reviews and
posts through the NativoSEO backend.

Run "nativoseo login" first; the session is kept in a local state file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return c.setup() },
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runHome(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.apiURL, "api", envOr(apiURLEnv, defaultAPIURL), "backend base URL (env "+apiURLEnv+")")
	flags.StringVar(&c.statePath, "state", "", "session state file (default: user config dir)")
	flags.BoolVar(&c.debug, "debug", false, "log requests to stderr")

	root.AddCommand(
		c.loginCmd(),
		c.registerCmd(),
		c.logoutCmd(),
		c.homeCmd(),
		c.accountsCmd(),
		c.locationsCmd(),
		c.reviewsCmd(),
		c.postsCmd(),
		c.connectGoogleCmd(),
	)

	return root
}

func (c *cli) setup() error {
	level := "warn"
	if c.debug {
		level = "debug"
	}
	logger, err := logs.Build(config.Log{Pretty: true, Level: level}, c.stderr, "")
	if err != nil {
		return err
	}
	c.logger = logger

	path := c.statePath
	if path == "" {
		if path, err = localstore.DefaultPath(); err != nil {
			return err
		}
	}
	store, err := localstore.Open(path, logger)
	if err != nil {
		return err
	}
	c.store = store

	api, err := client.New(c.apiURL, client.WithTokenSource(store), client.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "invalid --api")
	}
	c.app = dashboard.NewApp(api, store, c.stdout, logger)

	return nil
}

// prompt reads one line from stdin when value is empty.
func (c *cli) prompt(label, value string) (string, error) {
	if value != "" {
		return value, nil
	}

	if _, err := io.WriteString(c.stderr, label+": "); err != nil {
		return "", errors.WithStack(err)
	}
	line, err := c.stdin.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", errors.Wrapf(err, "read %s", label)
	}

	return strings.TrimSpace(line), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
