// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config parses the purechance CLI invocation.
package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/purechance/purechance/chance"
	"github.com/purechance/purechance/version"
)

const (
	VersionKey = "version"
	SeedKey    = "seed"
	BiasKey    = "bias"
	SizeKey    = "size"
	ReplaceKey = "replace"
	LowerKey   = "lower"
	UpperKey   = "upper"
)

// Config is the result of parsing the CLI.
type Config struct {
	// If true, print the version and quit.
	DisplayVersion bool

	// Seeded reports whether --seed was given at all; an omitted seed means
	// fresh entropy rather than seed 0.
	Seeded bool
	Seed   int64

	Bias    float64
	Size    int
	Replace bool
	Lower   int64
	Upper   int64

	Command string
	Items   []string
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(version.Client, pflag.ContinueOnError)
	fs.Bool(VersionKey, false, "If true, print version and quit")
	fs.Int64(SeedKey, 0, "Integer seed for reproducible results; omit for fresh entropy")
	fs.Float64(BiasKey, 0.5, "Probability that flip reports heads")
	fs.Int(SizeKey, 1, "Number of elements to produce")
	fs.Bool(ReplaceKey, false, "If true, draw with replacement")
	fs.Int64(LowerKey, 0, "Inclusive lower bound for ints")
	fs.Int64(UpperKey, 0, "Exclusive upper bound for ints")
	return fs
}

// Parse returns the config for the given command line arguments.
func Parse(args []string) (Config, error) {
	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	cfg := Config{
		DisplayVersion: v.GetBool(VersionKey),
		Seeded:         fs.Changed(SeedKey),
		Seed:           v.GetInt64(SeedKey),
		Bias:           v.GetFloat64(BiasKey),
		Size:           v.GetInt(SizeKey),
		Replace:        v.GetBool(ReplaceKey),
		Lower:          v.GetInt64(LowerKey),
		Upper:          v.GetInt64(UpperKey),
	}

	if rest := fs.Args(); len(rest) > 0 {
		cfg.Command = rest[0]
		cfg.Items = rest[1:]
	}
	return cfg, nil
}

// ResolveSeed returns the chance.Seed this invocation asked for.
func (c Config) ResolveSeed() chance.Seed {
	if c.Seeded {
		return chance.IntSeed(c.Seed)
	}
	return chance.NoSeed()
}
