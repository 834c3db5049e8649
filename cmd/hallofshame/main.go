// Command hallofshame draws the hall of shame panel and places it onto a
// base image.
//
// The entry list is read from a JSON file. The panel is written on its own
// and, if a base image is given, copied onto it at the configured offset.
// An optional command runs afterwards, e.g. to regenerate derived tiles.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	render "github.com/cfpwastaken/wplace-hallofshame"
	"github.com/cfpwastaken/wplace-hallofshame/entries"
	"github.com/cfpwastaken/wplace-hallofshame/imageio"
	"github.com/cfpwastaken/wplace-hallofshame/internal/config"
	"github.com/cfpwastaken/wplace-hallofshame/internal/logger"
	"github.com/cfpwastaken/wplace-hallofshame/preview"
)

func main() {
	def := config.Default()
	configFile := flag.String("config", "", "settings file with \"key value\" lines")
	flag.String("entries", def.Entries, "JSON file with the entry list")
	flag.String("font", def.Font, "font sheet image (default: built-in glyphs)")
	flag.String("panel", def.Panel, "output file for the panel alone (empty to skip)")
	flag.String("base", def.Base, "image to place the panel onto (empty to skip)")
	flag.String("out", def.Out, "output file for the composite (default: overwrite -base)")
	flag.Int("x", def.X, "horizontal panel offset on the base image")
	flag.Int("y", def.Y, "vertical panel offset on the base image")
	flag.Int("per-row", def.PerRow, "entries per row")
	flag.Int("entry-width", def.EntryWidth, "cell width in pixels")
	flag.Int("entry-height", def.EntryHeight, "cell height in pixels")
	flag.Int("width", def.Width, "panel width in pixels (0: as narrow as possible)")
	flag.Int("scale", def.Scale, "enlargement factor for the stored panel")
	flag.Bool("preview", def.Preview, "print the panel to the terminal")
	flag.String("post", def.Post, "command to run after writing the composite")
	flag.String("post-dir", def.PostDir, "working directory for -post")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	var err error
	var l *zap.Logger
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck
	if *verbose {
		render.SetLogger(l.Named("render"))
	}

	cfg := def
	if *configFile != "" {
		cfg, err = config.Load(*configFile)
		if err != nil {
			l.Fatal("load config", zap.String("path", *configFile), zap.Error(err))
		}
	}
	// explicitly given flags take precedence over the config file
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" || f.Name == "v" || err != nil {
			return
		}
		err = cfg.Set(f.Name, f.Value.String())
	})
	if err != nil {
		l.Fatal("flags", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.NewContext(ctx, l)

	if err := run(ctx, cfg); err != nil {
		l.Fatal("hall of shame", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config) error {
	l := logger.L(ctx)

	labels, err := entries.ReadFile(cfg.Entries)
	if err != nil {
		return err
	}
	font, err := loadFont(cfg.Font)
	if err != nil {
		return err
	}

	l.Info("drawing hall of shame", zap.Int("entries", len(labels)))
	c := &render.Composer{
		Grid: render.GridSpec{
			PerRow:      cfg.PerRow,
			EntryWidth:  cfg.EntryWidth,
			EntryHeight: cfg.EntryHeight,
			Width:       cfg.Width,
		},
		Font:    font,
		Palette: render.DefaultPalette,
	}
	panel, err := c.Compose(labels)
	if err != nil {
		return err
	}

	if cfg.Preview {
		fmt.Println(preview.Render(panel))
	}
	if cfg.Panel != "" {
		if err := imageio.Save(cfg.Panel, imageio.Scale(panel, cfg.Scale)); err != nil {
			return fmt.Errorf("save panel: %w", err)
		}
		l.Info("saved panel", zap.String("path", cfg.Panel),
			zap.Int("width", panel.Width), zap.Int("height", panel.Height))
	}

	if cfg.Base == "" {
		return nil
	}
	l.Info("rendering panel onto base image", zap.String("base", cfg.Base),
		zap.Int("x", cfg.X), zap.Int("y", cfg.Y))
	base, err := imageio.Load(cfg.Base)
	if err != nil {
		return err
	}
	if err := render.CheckedOverlay(base, panel, cfg.X, cfg.Y); err != nil {
		return err
	}
	out := cfg.Output()
	if err := imageio.Save(out, base); err != nil {
		return fmt.Errorf("save composite: %w", err)
	}
	l.Info("saved final image", zap.String("path", out))

	if cfg.Post == "" {
		return nil
	}
	return runPost(ctx, cfg.Post, cfg.PostDir)
}

func loadFont(path string) (*render.Font, error) {
	if path == "" {
		return render.DefaultFont(), nil
	}
	sheet, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	font, err := render.NewFont(sheet, render.DefaultGlyphTable())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return font, nil
}

// runPost runs the post-processing command with the output connected to
// ours. The command line is split at white space.
func runPost(ctx context.Context, command, dir string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return errors.New("post: empty command")
	}
	logger.L(ctx).Info("running post command",
		zap.Strings("args", args), zap.String("dir", dir))

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("post %q: %w", args[0], err)
	}
	return nil
}
