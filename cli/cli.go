package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/multierr"

	"github.com/philipp01105/apptemplate/config"
	"github.com/philipp01105/apptemplate/demo"
	"github.com/philipp01105/apptemplate/logger"
)

// CLI is the top-level command-line interface for apptemplate.
type CLI struct {
	Demo    bool             `help:"Run demonstration of application features."`
	Config  string           `help:"Read logging settings from a YAML file." type:"path" placeholder:"FILE"`
	Version kong.VersionFlag `help:"Show program version and exit."`
}

// Run executes the apptemplate CLI with the given context and arguments.
// The exit function is called when kong finishes early: with 0 after
// --help or --version, non-zero on a usage error. Run returns nil after a
// successful early exit.
func Run(
	ctx context.Context,
	exit func(code int),
	stdout, stderr io.Writer,
	args ...string,
) (err error) {
	if exit == nil {
		exit = os.Exit
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	// kong keeps parsing after an exit hook returns, so remember that one
	// ran and stop once Parse is done.
	exited := false
	onExit := func(code int) {
		exited = true
		exit(code)
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name(Name),
		kong.Description(Description),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(onExit),
		kong.Help(helpWithEpilog),
		kong.Vars{"version": Name + " " + Version()},
	)
	if err != nil {
		return err
	}

	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		parser.FatalIfErrorf(err)
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	reg := logger.NewRegistry(cfg, logger.WithConsoleWriter(stdout))
	logger.SetDefault(reg)
	defer func() {
		logger.SetDefault(nil)
		err = multierr.Append(err, reg.Close())
	}()

	return run(ctx, reg, cli)
}

func run(ctx context.Context, reg *logger.Registry, cli CLI) error {
	log := reg.Get("main")
	log.Info("Application started", logger.String("version", Version()))

	if cli.Demo {
		log.Info("Running demo mode...")
		if err := demo.New(reg).Run(ctx); err != nil {
			log.Error("Demo failed", logger.Err(err))
			return fmt.Errorf("running demo: %w", err)
		}
	}

	log.Info("Application finished")
	return nil
}

func helpWithEpilog(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintf(ctx.Stdout, "\n%s\n", Epilog)
	return err
}
