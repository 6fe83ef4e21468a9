package main

import (
	"errors"

	"github.com/spf13/pflag"
)

const (
	FileKey    = "file"
	ForceKey   = "force"
	VerboseKey = "verbose"
)

var errNoFile = errors.New("--file is required")

func AddFlags(flags *pflag.FlagSet) {
	flags.String(FileKey, "", "YAML mapping of keys to values to load")
	flags.Bool(ForceKey, false, "Displace entries whose value is bound again instead of failing")
	flags.Bool(VerboseKey, false, "Log at debug level")
}

type Config struct {
	File    string
	Force   bool
	Verbose bool
}

func ParseFlags(flags *pflag.FlagSet) (*Config, error) {
	file, err := flags.GetString(FileKey)
	if err != nil {
		return nil, err
	}
	if file == "" {
		return nil, errNoFile
	}

	force, err := flags.GetBool(ForceKey)
	if err != nil {
		return nil, err
	}

	verbose, err := flags.GetBool(VerboseKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		File:    file,
		Force:   force,
		Verbose: verbose,
	}, nil
}
