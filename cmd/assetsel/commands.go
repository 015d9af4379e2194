package assetsel

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/assetsel/internal/version"
	"github.com/arthur-debert/assetsel/pkg/config"
	"github.com/arthur-debert/assetsel/pkg/conventions"
	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/framework"
	"github.com/arthur-debert/assetsel/pkg/logging"
	"github.com/arthur-debert/assetsel/pkg/output"
	"github.com/arthur-debert/assetsel/pkg/resolver"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	var (
		targetFramework string
		targetRuntime   string
		targetLocale    string
		categories      []string
		dir             string
		graphPath       string
		noGraph         bool
		format          string
	)

	cmd := &cobra.Command{
		Use:     "resolve [listing]",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.resolve")

			if graphPath != "" && noGraph {
				return errors.New(errors.ErrInvalidInput, MsgErrGraphFlags)
			}

			overrides := map[string]interface{}{}
			flags := cmd.Flags()
			if flags.Changed("framework") {
				overrides["target.framework"] = targetFramework
			}
			if flags.Changed("runtime") {
				overrides["target.runtime"] = targetRuntime
			}
			if flags.Changed("locale") {
				overrides["target.locale"] = targetLocale
			}
			if graphPath != "" {
				overrides["graph.path"] = graphPath
			}
			if noGraph {
				overrides["graph.path"] = ""
				overrides["graph.builtin"] = false
			}
			if flags.Changed("format") {
				overrides["output.format"] = format
			}

			cfg, err := loadConfig(opts, overrides)
			if err != nil {
				return err
			}
			if cfg.Target.Framework == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrNoFramework)
			}

			outputFormat, err := output.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}
			renderer, err := output.NewRenderer(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			result, err := runResolve(cmd, cfg, dir, args, categories)
			if err != nil {
				if !outputFormat.IsStructured() {
					return err
				}
				if renderErr := renderer.RenderError(err); renderErr != nil {
					return renderErr
				}
				return &reportedError{err: err}
			}

			logger.Info().Int("assets", result.Count()).Msg("Resolve finished")
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringVarP(&targetFramework, "framework", "f", "", MsgFlagFramework)
	cmd.Flags().StringVarP(&targetRuntime, "runtime", "r", "", MsgFlagRuntime)
	cmd.Flags().StringVarP(&targetLocale, "locale", "l", "", MsgFlagLocale)
	cmd.Flags().StringArrayVarP(&categories, "category", "c", nil, MsgFlagCategory)
	cmd.Flags().StringVar(&dir, "dir", "", MsgFlagDir)
	cmd.Flags().StringVar(&graphPath, "graph", "", MsgFlagGraph)
	cmd.Flags().BoolVar(&noGraph, "no-graph", false, MsgFlagNoGraph)
	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)

	_ = cmd.RegisterFlagCompletionFunc("category", categoryCompletion)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json", "xml", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runResolve(cmd *cobra.Command, cfg *config.Config, dir string, args, categories []string) (resolver.Result, error) {
	logger := logging.GetLogger("cmd.resolve")

	files, err := readListing(cmd.InOrStdin(), dir, args, cfg.Listing.Exclude)
	if err != nil {
		return resolver.Result{}, err
	}

	c, err := newConventions(cfg)
	if err != nil {
		return resolver.Result{}, err
	}

	ctx := resolver.Context{
		Framework:         framework.Parse(cfg.Target.Framework),
		RuntimeIdentifier: cfg.Target.Runtime,
		Locale:            cfg.Target.Locale,
	}

	logger.Info().
		Str("framework", ctx.Framework.String()).
		Str("runtime", ctx.RuntimeIdentifier).
		Str("locale", ctx.Locale).
		Int("files", len(files)).
		Strs("categories", categories).
		Msg("Resolving listing")

	return resolver.New(c).Resolve(ctx, files, categories...)
}

// categoryCompletion provides shell completion for category names
func categoryCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	c, err := conventions.New()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return c.CategoryNames(), cobra.ShellCompDirectiveNoFileComp
}

func newCategoriesCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:     "categories",
		Short:   MsgCategoriesShort,
		Long:    MsgCategoriesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := conventions.New()
			if err != nil {
				return err
			}

			content := output.CategoriesMarkdown(c.Categories()) + "\n" +
				output.PropertiesMarkdown(c.Properties().All())
			if !raw {
				if file, ok := cmd.OutOrStdout().(*os.File); ok && output.DetectFormat(file).IsStyled() {
					content = output.NewMarkdownRenderer().Render(content)
				}
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, MsgFlagRaw)
	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, nil)
			if err != nil {
				return err
			}

			data, err := cfg.ToTOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
