package main

import (
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// Args are command line arguments.
type Args struct {
	ConfigFile string `short:"c" long:"conf" description:"Configuration file." default:"config.toml"`
}

func getArgs() (Args, error) {
	var args Args
	if _, err := flags.Parse(&args); err != nil {
		return Args{}, errors.Wrap(err, "unable to parse arguments")
	}

	configPath, err := filepath.Abs(args.ConfigFile)
	if err != nil {
		return Args{}, errors.Wrap(err,
			"unable to determine path to the configuration file")
	}
	args.ConfigFile = configPath

	return args, nil
}
