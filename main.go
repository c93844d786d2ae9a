package main

import (
	"fmt"
	"os"

	"git.lost.host/meutraa/maniaview/internal/config"
	"git.lost.host/meutraa/maniaview/internal/logger"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:]); nil != err {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	c, err := config.Parse(args, ".env")
	if nil != err {
		return err
	}

	lc := logger.Config{
		Level:      c.LogLevel,
		OutputPath: c.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}
	// the terminal previewer owns stdout and stderr
	if c.Output != "terminal" {
		lc.Console = os.Stderr
	}
	log, err := logger.New(lc)
	if nil != err {
		return err
	}
	defer log.Sync()

	p := &Program{Config: c, Log: log}
	if err := p.Init(); nil != err {
		log.Error("unable to start", zap.Error(err))
		return err
	}
	defer p.Deinit()

	switch c.Output {
	case "png":
		err = p.Export()
	default:
		err = p.Preview()
	}
	if nil != err {
		log.Error("stopped", zap.Error(err))
	}
	return err
}
