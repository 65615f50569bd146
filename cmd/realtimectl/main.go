package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gs2io/gs2-realtime-go/client"
)

var (
	region   string
	endpoint string
	baseURL  string
	debug    bool
)

const callTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "realtimectl",
		Short: "Manage GS2 realtime gathering pools and gatherings",
		Long: `realtimectl calls the GS2 realtime API.

Credentials are read from GS2_CLIENT_ID and GS2_CLIENT_SECRET. A .env file in
the working directory is loaded first when present.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()

			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&region, "region", "", "Region, overrides GS2_REGION")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Endpoint name, overrides GS2_ENDPOINT")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Send requests to this URL instead of the regional endpoint")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output, including HTTP dumps")

	rootCmd.AddCommand(newListPoolsCmd())
	rootCmd.AddCommand(newCreatePoolCmd())
	rootCmd.AddCommand(newGetPoolCmd())
	rootCmd.AddCommand(newUpdatePoolCmd())
	rootCmd.AddCommand(newDeletePoolCmd())
	rootCmd.AddCommand(newListGatheringsCmd())
	rootCmd.AddCommand(newCreateGatheringCmd())
	rootCmd.AddCommand(newGetGatheringCmd())
	rootCmd.AddCommand(newDeleteGatheringCmd())
	rootCmd.AddCommand(newWaitGatheringCmd())

	return rootCmd
}

// newClient builds a client from GS2_* variables with flag overrides applied.
func newClient() (*client.Client, error) {
	cfg, err := client.LoadConfig()
	if err != nil {
		return nil, err
	}
	if region != "" {
		cfg.Region = region
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if debug {
		cfg.Debug = true
	}
	return client.NewFromConfig(cfg)
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func optional(cmd *cobra.Command, flag, value string) *string {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return client.String(value)
}

func newListPoolsCmd() *cobra.Command {
	var pageToken string
	var limit int
	var all bool

	cmd := &cobra.Command{
		Use:   "list-pools",
		Short: "List gathering pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			if all {
				var pools []client.GatheringPool
				err := c.WalkGatheringPools(ctx, limit, func(p client.GatheringPool) error {
					pools = append(pools, p)
					return nil
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, pools)
			}

			page, err := c.DescribeGatheringPool(ctx, pageToken, limit)
			if err != nil {
				return err
			}
			log.Debug().Int("items", len(page.Items)).Str("next_page_token", page.NextPageToken).Msg("listed gathering pools")
			return printJSON(cmd, page)
		},
	}

	cmd.Flags().StringVar(&pageToken, "page-token", "", "Token of the page to fetch")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (0 lets the service choose)")
	cmd.Flags().BoolVar(&all, "all", false, "Follow page tokens and print every pool")
	return cmd
}

func newCreatePoolCmd() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "create-pool",
		Short: "Create a gathering pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			start := time.Now()
			pool, err := c.CreateGatheringPool(ctx, &client.CreateGatheringPoolRequest{
				Name:        client.String(name),
				Description: optional(cmd, "description", description),
			})
			if err != nil {
				log.Error().Err(err).Str("name", name).Dur("elapsed", time.Since(start)).Msg("create gathering pool failed")
				return err
			}
			log.Debug().Str("gathering_pool_id", pool.GatheringPoolID).Dur("elapsed", time.Since(start)).Msg("create gathering pool completed")
			return printJSON(cmd, pool)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Pool name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Description (optional)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newGetPoolCmd() *cobra.Command {
	var pool string

	cmd := &cobra.Command{
		Use:   "get-pool",
		Short: "Show a gathering pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			p, err := c.GetGatheringPool(ctx, &client.GetGatheringPoolRequest{GatheringPoolName: pool})
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}

	cmd.Flags().StringVar(&pool, "pool", "", "Pool name (required)")
	_ = cmd.MarkFlagRequired("pool")
	return cmd
}

func newUpdatePoolCmd() *cobra.Command {
	var pool, description string

	cmd := &cobra.Command{
		Use:   "update-pool",
		Short: "Change the description of a gathering pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			p, err := c.UpdateGatheringPool(ctx, &client.UpdateGatheringPoolRequest{
				GatheringPoolName: pool,
				Description:       optional(cmd, "description", description),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	}

	cmd.Flags().StringVar(&pool, "pool", "", "Pool name (required)")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	_ = cmd.MarkFlagRequired("pool")
	return cmd
}

func newDeletePoolCmd() *cobra.Command {
	var pool string

	cmd := &cobra.Command{
		Use:   "delete-pool",
		Short: "Delete a gathering pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			if err := c.DeleteGatheringPool(ctx, &client.DeleteGatheringPoolRequest{GatheringPoolName: pool}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gathering pool deleted: %s\n", pool)
			return nil
		},
	}

	cmd.Flags().StringVar(&pool, "pool", "", "Pool name (required)")
	_ = cmd.MarkFlagRequired("pool")
	return cmd
}

func newListGatheringsCmd() *cobra.Command {
	var pool, pageToken string
	var limit int
	var all bool

	cmd := &cobra.Command{
		Use:   "list-gatherings",
		Short: "List the gatherings of a pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()
			req := &client.DescribeGatheringRequest{GatheringPoolName: pool}

			if all {
				var gs []client.Gathering
				err := c.WalkGatherings(ctx, req, limit, func(g client.Gathering) error {
					gs = append(gs, g)
					return nil
				})
				if err != nil {
					return err
				}
				return printJSON(cmd, gs)
			}

			page, err := c.DescribeGathering(ctx, req, pageToken, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd, page)
		},
	}

	cmd.Flags().StringVar(&pool, "pool", "", "Pool name (required)")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Token of the page to fetch")
	cmd.Flags().IntVar(&limit, "limit", 0, "Page size (0 lets the service choose)")
	cmd.Flags().BoolVar(&all, "all", false, "Follow page tokens and print every gathering")
	_ = cmd.MarkFlagRequired("pool")
	return cmd
}

func newCreateGatheringCmd() *cobra.Command {
	var pool, name, userIDs string
	var wait bool
	var waitTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "create-gathering",
		Short: "Create a gathering and boot its game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			req := &client.CreateGatheringRequest{
				GatheringPoolName: pool,
				Name:              optional(cmd, "name", name),
			}
			if cmd.Flags().Changed("user-ids") {
				req.UserIDs = client.ParseUserIDs(userIDs)
			}
			g, err := c.CreateGathering(ctx, req)
			if err != nil {
				return err
			}
			if wait && !g.Ready() {
				wctx, wcancel := context.WithTimeout(cmd.Context(), waitTimeout)
				defer wcancel()
				g, err = c.WaitGatheringReady(wctx, &client.GetGatheringRequest{GatheringPoolName: pool, GatheringName: g.Name})
				if err != nil {
					return err
				}
			}
			return printJSON(cmd, g)
		},
	}

	cmd.Flags().StringVar(&pool, "pool", "", "Pool name (required)")
	cmd.Flags().StringVar(&name, "name", "", "Gathering name (generated when omitted)")
	cmd.Flags().StringVar(&userIDs, "user-ids", "", "Comma-separated user IDs allowed to join")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait until the game server has an address")
	cmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 2*time.Minute, "Upper bound for --wait")
	_ = cmd.MarkFlagRequired("pool")
	return cmd
}

func newGetGatheringCmd() *cobra.Command {
	var pool, name string

	cmd := &cobra.Command{
		Use:   "get-gathering",
		Short: "Show a gathering",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			g, err := c.GetGathering(ctx, &client.GetGatheringRequest{GatheringPoolName: pool, GatheringName: name})
			if err != nil {
				return err
			}
			return printJSON(cmd, g)
		},
	}

	cmd.Flags().StringVar(&pool, "pool", "", "Pool name (required)")
	cmd.Flags().StringVar(&name, "name", "", "Gathering name (required)")
	_ = cmd.MarkFlagRequired("pool")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newDeleteGatheringCmd() *cobra.Command {
	var pool, name string

	cmd := &cobra.Command{
		Use:   "delete-gathering",
		Short: "Delete a gathering",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
			defer cancel()

			if err := c.DeleteGathering(ctx, &client.DeleteGatheringRequest{GatheringPoolName: pool, GatheringName: name}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gathering deleted: %s/%s\n", pool, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&pool, "pool", "", "Pool name (required)")
	cmd.Flags().StringVar(&name, "name", "", "Gathering name (required)")
	_ = cmd.MarkFlagRequired("pool")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newWaitGatheringCmd() *cobra.Command {
	var pool, name string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "wait-gathering",
		Short: "Block until a gathering's game server has an address",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			start := time.Now()
			g, err := c.WaitGatheringReady(ctx, &client.GetGatheringRequest{GatheringPoolName: pool, GatheringName: name})
			if err != nil {
				return err
			}
			log.Info().Str("addr", g.Addr()).Dur("elapsed", time.Since(start)).Msg("gathering ready")
			return printJSON(cmd, g)
		},
	}

	cmd.Flags().StringVar(&pool, "pool", "", "Pool name (required)")
	cmd.Flags().StringVar(&name, "name", "", "Gathering name (required)")
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Give up after this long")
	_ = cmd.MarkFlagRequired("pool")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
