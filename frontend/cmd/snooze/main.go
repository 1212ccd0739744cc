package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/itchan-dev/hackorsnooze/frontend/internal/apiclient"
	"github.com/itchan-dev/hackorsnooze/frontend/internal/model"
	"github.com/itchan-dev/hackorsnooze/shared/config"
	"github.com/itchan-dev/hackorsnooze/shared/logger"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: snooze [flags] <command> [args]\n\ncommands:\n")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(flag.CommandLine.Output(), "  %s\n", commands[name].usage)
	}
	fmt.Fprintf(flag.CommandLine.Output(), "\nflags:\n")
	flag.PrintDefaults()
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to yaml config (optional)")
	flag.Usage = usage
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger.Initialize(cfg.Log.Level, cfg.Log.JSON)

	if err := run(cfg, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "snooze:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("no command given")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		flag.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
	if len(args)-1 != cmd.args {
		return fmt.Errorf("usage: snooze %s", cmd.usage)
	}

	sessionPath := cfg.Client.SessionFile
	if sessionPath == "" {
		var err error
		if sessionPath, err = defaultSessionPath(); err != nil {
			return err
		}
	}
	stored, err := loadCredentials(sessionPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := model.NewSession(apiclient.New(cfg.Client.BaseURL, cfg.Client.Timeout))
	if err := session.Start(ctx, stored); err != nil {
		return err
	}
	if stored != nil && !session.Authenticated() {
		fmt.Fprintln(os.Stderr, "snooze: stored session expired, please log in again")
	}

	a := &app{session: session, out: os.Stdout}
	if err := cmd.run(ctx, a, args[1:]); err != nil {
		return err
	}
	return saveCredentials(sessionPath, session.Credentials())
}
