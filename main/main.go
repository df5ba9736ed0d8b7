// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/purechance/purechance/chance"
	"github.com/purechance/purechance/config"
	"github.com/purechance/purechance/version"
)

// GitCommit is set by the build script.
var GitCommit string

// main is the primary entry point to purechance.
func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.DisplayVersion {
		fmt.Print(version.String(GitCommit))
		os.Exit(0)
	}

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(cfg); err != nil {
		log.Fatal("command failed",
			zap.String("command", cfg.Command),
			zap.Error(err),
		)
	}
}

func run(cfg config.Config) error {
	seed := cfg.ResolveSeed()

	switch cfg.Command {
	case "flip":
		heads, err := chance.Coinflip(cfg.Bias, seed)
		if err != nil {
			return err
		}
		if heads {
			fmt.Println("heads")
		} else {
			fmt.Println("tails")
		}

	case "draw":
		drawn, err := chance.Draw(cfg.Items, cfg.Replace, cfg.Size, seed)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(drawn, " "))

	case "shuffle":
		shuffled, err := chance.Shuffle(cfg.Items, seed)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(shuffled, " "))

	case "ints":
		stream, err := chance.Integers(cfg.Size, cfg.Lower, cfg.Upper, seed)
		if err != nil {
			return err
		}
		values, err := stream.Collect()
		if err != nil {
			return err
		}
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = fmt.Sprint(v)
		}
		fmt.Println(strings.Join(out, " "))

	case "":
		return errors.New("missing command, expected one of flip, draw, shuffle, ints")

	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
	return nil
}
