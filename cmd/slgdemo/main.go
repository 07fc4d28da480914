// Command slgdemo exercises the slg logging facility from a terminal: it
// walks the severity scale over any combination of sinks so the routing,
// coloring, one-shot overrides and failure reporting can be observed.
package main

import (
	"fmt"
	"os"

	"github.com/abyssdigger/slg"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "slgdemo"
	app.Usage = "walk the severity scale over the configured sinks"
	app.ArgsUsage = "[message ...]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "program, p",
			Usage: "identity announced to the system log",
		},
		cli.StringFlag{
			Name:  "level, l",
			Value: "information",
			Usage: "least urgent severity still emitted",
		},
		cli.StringFlag{
			Name:  "output, o",
			Value: "console",
			Usage: "comma-separated sinks: system,console,file",
		},
		cli.StringFlag{
			Name:  "file, f",
			Usage: "destination for the file sink",
		},
		cli.BoolFlag{
			Name:  "color, c",
			Usage: "colorize console output",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level, err := slg.ParseSeverity(c.String("level"))
	if err != nil {
		return err
	}
	sinks, err := slg.ParseSinks(c.String("output"))
	if err != nil {
		return err
	}
	log := slg.InitWithParams(level, sinks).SetColor(c.Bool("color"))
	if p := c.String("program"); p != "" {
		log.SetProgram(p)
	}
	if f := c.String("file"); f != "" {
		log.SetFile(f)
	}
	defer log.Close()

	// with arguments: log them and exit, no tour
	if c.NArg() > 0 {
		for _, msg := range c.Args() {
			log.Notice(msg)
		}
		return nil
	}

	log.Information("information: routine operational message")
	log.Notice("notice: normal but significant event")
	log.Warning("warning: recoverable condition")
	log.Error("error: this one moves to the error stream")
	log.Critical("critical: failing component")
	log.Alert("alert: immediate attention required")
	log.Debugging("debugging: most verbose, shares the urgent stream")
	log.Now(slg.Sinks().Console()).Error("one-shot override: console only, whatever the defaults")
	fmt.Fprintf(log.Writer(slg.SEV_NOTICE), "notice via the io.Writer adapter, pid %d\n", os.Getpid())
	return nil
}
