// Command unicleaner removes and substitutes Unicode characters that break
// script parsing, and inspects documents for them.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/dmitrymomot/unicleaner/pkg/config"
	"github.com/dmitrymomot/unicleaner/pkg/inspect"
)

var version = "dev"

// CLI defines the command-line interface.
type CLI struct {
	EnvFile []string `name:"env-file" help:"Load environment variables from these .env files instead of ./.env."`

	Clean       CleanCmd       `cmd:"" help:"Remove or substitute characters using presets and profiles"`
	CRLF        CRLFCmd        `cmd:"" name:"crlf" help:"Remove carriage returns"`
	InspectLine InspectLineCmd `cmd:"" name:"inspect-line" help:"Print every character of one line and flag the problematic ones"`
	Analyze     AnalyzeCmd     `cmd:"" help:"Summarize non-ASCII characters and suspicious lines"`
	Scan        ScanCmd        `cmd:"" help:"List characters known to break script parsing"`
	Presets     PresetsCmd     `cmd:"" help:"List built-in presets"`
	Version     VersionCmd     `cmd:"" help:"Print version information"`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("unicleaner"),
		kong.Description("Strip and substitute problematic Unicode characters in text files."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"analyze_limit": strconv.Itoa(inspect.DefaultLimit)},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = execute(ctx, kctx, &cli, os.Stdout, os.Stderr)
	stop()
	kctx.FatalIfErrorf(err)
}

// execute loads configuration and runs the selected command.
func execute(ctx context.Context, kctx *kong.Context, cli *CLI, out, errOut io.Writer) error {
	if len(cli.EnvFile) > 0 {
		if err := config.LoadEnv(cli.EnvFile...); err != nil {
			return err
		}
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	a, err := newApp(cfg, out, errOut)
	if err != nil {
		return err
	}

	kctx.BindTo(ctx, (*context.Context)(nil))
	return kctx.Run(a)
}
