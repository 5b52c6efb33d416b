package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/TwiN/go-color"
	"github.com/samber/lo"
	"github.com/sk9212k/opaltech-aws/internal/adapters/filesource"
	"github.com/sk9212k/opaltech-aws/internal/adapters/terminal"
	"github.com/sk9212k/opaltech-aws/internal/adapters/transport/httpupload"
	"github.com/sk9212k/opaltech-aws/internal/config"
	"github.com/sk9212k/opaltech-aws/internal/core/domain"
	"github.com/sk9212k/opaltech-aws/internal/core/service/uploadform"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "uploader",
		Usage:     "Upload XML, CSV, JSON and EDI files to the upload endpoint",
		ArgsUsage: "FILE... (use - to read one file from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "Base URL of the upload API (overrides UPLOADER_SERVER_URL)",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "Per file request timeout, 0 waits forever (overrides UPLOADER_TIMEOUT)",
			},
			&cli.StringFlag{
				Name:  "stdin-name",
				Usage: "File name given to the content read from stdin",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Print debug logs",
			},
		},
		Action: upload,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.InRed(err.Error()))
		os.Exit(1)
	}
}

func upload(c *cli.Context) error {
	if c.NArg() == 0 {
		_ = cli.ShowAppHelp(c)
		return cli.Exit("no files given", 2)
	}

	cfg, err := config.LoadUploader()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("server") {
		cfg.ServerURL = c.String("server")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = c.Duration("timeout")
	}

	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := c.Args().Slice()
	sources, unreadable := filesource.FromPaths(lo.Without(args, "-"))
	if lo.Contains(args, "-") {
		piped, err := filesource.FromReader(c.String("stdin-name"), os.Stdin)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		sources = append(sources, piped)
	}
	for path, readErr := range unreadable {
		fmt.Fprintf(os.Stderr, color.InRed("skipping %s")+": %v\n", path, readErr)
	}

	client, err := httpupload.NewClient(cfg.ServerURL, cfg.Timeout, logger)
	if err != nil {
		return err
	}

	view := terminal.NewProgressView(os.Stdout)
	form := uploadform.NewForm(client, view, logger)

	rejections, err := form.AcceptDrop(sources)
	if err != nil {
		return err
	}
	terminal.PrintRejections(os.Stdout, form.Message(), rejections)

	if !form.CanUpload() {
		return cli.Exit("nothing to upload", 1)
	}

	fmt.Printf(color.Ize(color.Cyan, "Uploading to ")+"%s\n", cfg.ServerURL)
	view.Track(form.Candidates())
	if err := form.StartUpload(ctx); err != nil {
		return err
	}
	fmt.Println(form.Message())

	candidates := form.Candidates()
	failed := lo.CountBy(candidates, func(candidate domain.UploadCandidate) bool {
		return candidate.Status == domain.CandidateStatusError
	})
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d uploads failed", failed, len(candidates)), 1)
	}

	fmt.Println(color.InGreen(fmt.Sprintf("%d file(s) uploaded", len(candidates))))
	return nil
}
