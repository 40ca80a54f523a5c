// Command glprobe opens a hidden OpenGL 4.6 context and exercises glkit
// against the real driver.
//
//	glprobe info                 print the driver strings
//	glprobe check --width 512    run buffer, texture, framebuffer, shader,
//	                             draw and sync round trips
//
// Settings can also come from a TOML file passed with --config:
//
//	width = 512
//	height = 512
//	debug = true
//	cache_dir = "/tmp/glprobe-shaders"
//	lang = "de"
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/message"

	"github.com/gogpu/glkit/shadercache"
)

func init() {
	// GL contexts are bound to the thread that made them current.
	runtime.LockOSThread()
}

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "enable synchronous GL debug output and debug logging",
	}
	widthFlag = &cli.IntFlag{
		Name:  "width",
		Value: 256,
		Usage: "width of the window and probe resources",
	}
	heightFlag = &cli.IntFlag{
		Name:  "height",
		Value: 256,
		Usage: "height of the window and probe resources",
	}
	cacheDirFlag = &cli.StringFlag{
		Name:  "cache-dir",
		Usage: "shader binary cache directory (empty disables caching)",
	}
	langFlag = &cli.StringFlag{
		Name:  "lang",
		Value: "en",
		Usage: "language used to format numbers",
	}

	probeFlags = []cli.Flag{configFlag, debugFlag, widthFlag, heightFlag, cacheDirFlag, langFlag}
)

func main() {
	app := &cli.App{
		Name:  "glprobe",
		Usage: "OpenGL driver probe for glkit",
		Commands: []*cli.Command{
			{
				Name:   "info",
				Usage:  "print the driver strings",
				Flags:  probeFlags,
				Action: infoAction,
			},
			{
				Name:   "check",
				Usage:  "run resource round trips against the driver",
				Flags:  probeFlags,
				Action: checkAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "glprobe:", err)
		os.Exit(1)
	}
}

func infoAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	dev, closeFn, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	printInfo(ctx.App.Writer, message.NewPrinter(cfg.tag()), dev.Info())
	return nil
}

func checkAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	dev, closeFn, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	p := &probe{dev: dev, cfg: cfg}
	if cfg.CacheDir != "" {
		if p.cache, err = shadercache.Open(cfg.CacheDir); err != nil {
			return err
		}
	}

	printer := message.NewPrinter(cfg.tag())
	printInfo(ctx.App.Writer, printer, dev.Info())
	if failed := printReport(ctx.App.Writer, printer, runChecks(p)); failed > 0 {
		return cli.Exit(fmt.Sprintf("%d checks failed", failed), 1)
	}
	return nil
}
