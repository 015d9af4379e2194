package assetsel

import (
	stderrors "errors"
	"io"
	"os"

	"github.com/arthur-debert/assetsel/pkg/cache"
	"github.com/arthur-debert/assetsel/pkg/config"
	"github.com/arthur-debert/assetsel/pkg/conventions"
	"github.com/arthur-debert/assetsel/pkg/errors"
	"github.com/arthur-debert/assetsel/pkg/framework"
	"github.com/arthur-debert/assetsel/pkg/listing"
	"github.com/arthur-debert/assetsel/pkg/logging"
	"github.com/arthur-debert/assetsel/pkg/runtimegraph"
)

// loadConfig loads the layered configuration for the current directory
func loadConfig(opts *rootOptions, overrides map[string]interface{}) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to get working directory")
	}

	src := config.DefaultSources(cwd)
	if opts.configFile != "" {
		src.UserFile = opts.configFile
	}
	src.Overrides = overrides
	return config.Load(src)
}

// newConventions builds the conventions described by cfg
func newConventions(cfg *config.Config) (*conventions.Conventions, error) {
	logger := logging.GetLogger("cmd.setup")

	var opts []conventions.Option
	switch {
	case cfg.Graph.Path != "":
		graph, err := runtimegraph.LoadFile(cfg.Graph.Path)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("path", cfg.Graph.Path).Int("runtimes", len(graph.Runtimes())).Msg("Loaded runtime graph")
		opts = append(opts, conventions.WithRuntimeGraph(graph))
	case cfg.Graph.Builtin:
		opts = append(opts, conventions.WithRuntimeGraph(runtimegraph.Default()))
	default:
		logger.Debug().Msg("Runtime graph disabled")
	}

	if cfg.Cache.Shared {
		opts = append(opts, conventions.WithFrameworkCache(cache.NewConcurrent[framework.Framework]()))
	} else {
		opts = append(opts, conventions.WithFrameworkCache(cache.NewMap[framework.Framework]()))
	}

	return conventions.New(opts...)
}

// readListing reads the listing from a directory, a file or stdin
func readListing(stdin io.Reader, dir string, args []string, excludes []string) ([]string, error) {
	filter, err := listing.NewFilter(excludes...)
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("cmd.setup")
	logger.Debug().Strs("excludes", filter.Excludes()).Msg("Listing filter ready")

	switch {
	case dir != "" && len(args) > 0:
		return nil, errors.New(errors.ErrInvalidInput, MsgErrListingSource)
	case dir != "":
		return listing.WalkDir(dir, filter)
	case len(args) == 0 || args[0] == "-":
		return listing.Read(stdin, filter)
	default:
		return listing.ReadFile(args[0], filter)
	}
}

// reportedError is a failure already written by the output renderer
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// IsReported reports whether err was already written to the command output
func IsReported(err error) bool {
	var reported *reportedError
	return stderrors.As(err, &reported)
}
