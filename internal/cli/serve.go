package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/suffixlens/pkg/server"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes analysis over HTTP. The cache and history backends come
from the config file; SUFFIXLENS_REDIS_ADDR and SUFFIXLENS_MONGO_URI switch
them to Redis and MongoDB, SUFFIXLENS_ADDR sets the listen address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close(context.Background())
	}

	opts := cfg.PipelineOptions()
	opts.Logger = c.Logger

	srv := server.New(server.Config{
		Runner:       runner,
		Store:        st,
		Options:      opts,
		Logger:       c.Logger,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})
	return srv.ListenAndServe(ctx, addr, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
}
