package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/formsync/internal/client/watch"
)

func newPreviewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview FILE",
		Short: "Show the migration a form definition would cause",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runPreview(cmd.Context(), args[0])
		},
	}
}

func newApplyCommand(a *app) *cobra.Command {
	var opts applyOptions

	cmd := &cobra.Command{
		Use:   "apply FILE",
		Short: "Apply a form definition to its response store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runApply(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "confirm rewriting stored rows without prompting")
	cmd.Flags().StringVar(&opts.storeName, "store-name", "", "name for a store created when the linked one is missing")
	return cmd
}

func newWatchCommand(a *app) *cobra.Command {
	var opts watchOptions

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Preview the form again every time the file is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.debounce <= 0 && a.cfg != nil {
				opts.debounce = a.cfg.WatchDebounce
			}
			opts.gatherer = a.gatherer()
			return a.cli.runWatch(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().DurationVar(&opts.debounce, "debounce", 0, "quiet period before re-running the preview (default from config, "+watch.DefaultDebounce.String()+")")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve connector metrics on this address, e.g. :9100")
	return cmd
}

func newSubmitCommand(a *app) *cobra.Command {
	var opts submitOptions

	cmd := &cobra.Command{
		Use:   "submit FORM_ID",
		Short: "Record one response for an applied form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runSubmit(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.values, "value", "v", nil, "field value as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.ip, "ip", "", "submitter IP address")
	cmd.Flags().StringVar(&opts.userAgent, "user-agent", "", "submitter user agent")
	return cmd
}

func newFormsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List applied forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runForms(cmd.Context())
		},
	}
}

func newMetricsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show connector counters of this run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runMetrics()
		},
	}
}

func newStoreCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Create or link response stores",
	}

	var name, tab string
	create := &cobra.Command{
		Use:   "create FORM_ID",
		Short: "Create a store with the form header and link the form to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runStoreCreate(cmd.Context(), args[0], name, tab)
		},
	}
	create.Flags().StringVar(&name, "name", "", "store name")
	create.Flags().StringVar(&tab, "tab", "", "tab name (default chosen by the store)")
	_ = create.MarkFlagRequired("name")

	link := &cobra.Command{
		Use:   "link FORM_ID REFERENCE",
		Short: "Link a form to an existing store (id or URL, optional #tab=NAME)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runStoreLink(cmd.Context(), args[0], args[1])
		},
	}

	cmd.AddCommand(create, link)
	return cmd
}

func newTokenCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the table store access token",
	}

	var token string
	set := &cobra.Command{
		Use:   "set",
		Short: "Save an access token issued by the store operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runTokenSet(cmd.Context(), token, a.endpoint())
		},
	}
	set.Flags().StringVar(&token, "token", "", "token value (prompted when empty)")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the saved token subject and expiry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runTokenStatus(cmd.Context())
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runTokenClear(cmd.Context())
		},
	}

	cmd.AddCommand(set, status, clearCmd)
	return cmd
}
