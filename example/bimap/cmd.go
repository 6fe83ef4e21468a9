package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"

	"github.com/odysseythink/bimap/containers/maps/hashbidimap"
)

var errNotBound = errors.New("not bound")

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:           "bimap",
		Short:         "Queries a YAML mapping in both directions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	AddFlags(c.PersistentFlags())
	c.AddCommand(
		&cobra.Command{
			Use:   "lookup KEY...",
			Short: "Prints the value bound to each key",
			Args:  cobra.MinimumNArgs(1),
			RunE:  lookupFunc,
		},
		&cobra.Command{
			Use:   "reverse VALUE...",
			Short: "Prints the key bound to each value",
			Args:  cobra.MinimumNArgs(1),
			RunE:  reverseFunc,
		},
		&cobra.Command{
			Use:   "invert",
			Short: "Prints the inverted mapping as YAML",
			Args:  cobra.NoArgs,
			RunE:  invertFunc,
		},
	)
	return c
}

func lookupFunc(c *cobra.Command, args []string) error {
	m, log, err := open(c)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	for _, key := range args {
		value, found := m.Get(key)
		if !found {
			return fmt.Errorf("key %q: %w", key, errNotBound)
		}
		fmt.Fprintln(c.OutOrStdout(), value)
	}
	return nil
}

func reverseFunc(c *cobra.Command, args []string) error {
	m, log, err := open(c)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	inverse := m.Inverse()
	for _, value := range args {
		key, found := inverse.Get(value)
		if !found {
			return fmt.Errorf("value %q: %w", value, errNotBound)
		}
		fmt.Fprintln(c.OutOrStdout(), key)
	}
	return nil
}

func invertFunc(c *cobra.Command, _ []string) error {
	m, log, err := open(c)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	out, err := yaml.Marshal(m.Inverse())
	if err != nil {
		return err
	}
	_, err = c.OutOrStdout().Write(out)
	return err
}

func open(c *cobra.Command) (*hashbidimap.Map[string, string], *zap.Logger, error) {
	config, err := ParseFlags(c.Flags())
	if err != nil {
		return nil, nil, err
	}

	log, err := newLogger(config.Verbose)
	if err != nil {
		return nil, nil, err
	}

	m, err := load(log, config)
	if err != nil {
		log.Error("failed to load bimap",
			zap.String("file", config.File),
			zap.Error(err),
		)
		_ = log.Sync()
		return nil, nil, err
	}
	return m, log, nil
}

var newLogger = func(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return config.Build()
}

// load puts the entries of the file in key order.
func load(log *zap.Logger, config *Config) (*hashbidimap.Map[string, string], error) {
	data, err := os.ReadFile(config.File)
	if err != nil {
		return nil, err
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	m := hashbidimap.New[string, string]()
	for _, key := range slices.Sorted(maps.Keys(entries)) {
		value := entries[key]
		if !config.Force {
			if _, _, err := m.Put(key, value); err != nil {
				return nil, err
			}
			continue
		}
		if displaced, bound := m.GetKey(value); bound {
			log.Warn("displacing entry",
				zap.String("key", displaced),
				zap.String("value", value),
				zap.String("by", key),
			)
		}
		m.ForcePut(key, value)
	}
	log.Debug("loaded bimap",
		zap.String("file", config.File),
		zap.Int("size", m.Size()),
	)
	return m, nil
}
