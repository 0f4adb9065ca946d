/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// duocleanup tags "Generic Smartphone" entries in Duo with a first-seen
// timestamp and deletes them once the tag outlives the grace period.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/carverauto/duocleanup/pkg/duo"
	"github.com/carverauto/duocleanup/pkg/logger"
	"github.com/carverauto/duocleanup/pkg/sweep"
)

const (
	defaultGracePeriodMinutes = 10

	exitRunFailed = 1
	exitUsage     = 2
)

type options struct {
	ikey        string
	skey        string
	host        string
	gracePeriod int
	force       bool
	verbose     bool
	debug       bool
	users       []string
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("duocleanup", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: duocleanup [flags] [user ...]\n\n"+
			"Cleans up phones stuck in the \"Generic Smartphone\" limbo state in Duo.\n"+
			"The first time a phone is seen it is tagged with a timestamp; on a later\n"+
			"run, once the tag is older than the grace period, the phone is removed.\n\n"+
			"Every flag falls back to its DUO_* environment variable; a .env file in\n"+
			"the working directory is honored.\n\n")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.ikey, "ikey", os.Getenv("DUO_IKEY"), "Duo integration key (env DUO_IKEY)")
	fs.StringVar(&opts.skey, "skey", os.Getenv("DUO_SKEY"),
		"Duo secret key; guard it like any credential (env DUO_SKEY)")
	fs.StringVar(&opts.host, "host", os.Getenv("DUO_HOST"),
		"Duo Admin API host, e.g. api-XXXXXXXX.duosecurity.com (env DUO_HOST)")
	fs.IntVar(&opts.gracePeriod, "grace-period", envIntOrDefault("DUO_GRACE_PERIOD", defaultGracePeriodMinutes),
		"minutes a tagged Generic Smartphone may remain registered (env DUO_GRACE_PERIOD)")
	fs.BoolVar(&opts.force, "force", envTruthOrDefault("DUO_FORCE", true),
		"apply decisions without prompting (env DUO_FORCE)")

	noForce := fs.Bool("no-force", false, "prompt for confirmation before each write or delete")

	fs.BoolVar(&opts.verbose, "v", false, "verbose output (info level)")
	fs.BoolVar(&opts.debug, "vv", false, "debug output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *noForce {
		opts.force = false
	}

	opts.users = fs.Args()

	return opts, nil
}

func envIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}

	return defaultValue
}

func envTruthOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := sweep.ParseTruth(value); err == nil {
			return b
		}
	}

	return defaultValue
}

// redactSecret keeps the first and last characters so an operator can tell
// which key was loaded without the log ever holding the key itself.
func redactSecret(s string) string {
	if len(s) < 2 {
		return strings.Repeat("*", len(s))
	}

	return s[:1] + strings.Repeat("*", len(s)) + s[len(s)-1:]
}

func main() {
	// Missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		os.Exit(exitUsage)
	}

	logCfg := logger.DefaultConfig()
	if opts.debug {
		logCfg.Debug = true
	} else if opts.verbose {
		logCfg.Level = "info"
	}

	log, err := logger.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "duocleanup: failed to set up logging: %v\n", err)
		os.Exit(exitRunFailed)
	}

	if opts.ikey == "" || opts.skey == "" || opts.host == "" {
		fmt.Fprintln(os.Stderr,
			"duocleanup: -ikey, -skey and -host are required (or DUO_IKEY, DUO_SKEY, DUO_HOST)")
		os.Exit(exitUsage)
	}

	log.Debug().
		Str("ikey", opts.ikey).
		Str("skey", redactSecret(opts.skey)).
		Str("host", opts.host).
		Int("grace_period_minutes", opts.gracePeriod).
		Bool("force", opts.force).
		Strs("users", opts.users).
		Msg("Resolved configuration")

	log.Info().
		Str("field", "name").
		Msg("Using the phone name field to check and store cleanup timestamps")

	client := duo.NewAdminClient(opts.ikey, opts.skey, opts.host, nil, log)

	ctx := context.Background()

	devices, err := sweep.LoadSnapshot(ctx, client, log)
	if err != nil {
		log.Error().
			Err(err).
			Msg("Unknown problem fetching users from Duo; it may be unreachable or the credentials may be wrong")
		os.Exit(exitRunFailed)
	}

	runner := sweep.NewRunner(client, sweep.RunnerConfig{
		GracePeriod: time.Duration(opts.gracePeriod) * time.Minute,
		Force:       opts.force,
		Users:       opts.users,
	}, sweep.NewStdinConfirmer(os.Stdin, os.Stdout), log)

	tally, err := runner.Run(ctx, devices)
	if err != nil {
		log.Error().
			Err(err).
			Int("timestamped", tally.Timestamped).
			Int("removed", tally.Removed).
			Int("no_action", tally.NoAction).
			Msg("Run aborted partway through")
		os.Exit(exitRunFailed)
	}

	log.Info().
		Int("timestamped", tally.Timestamped).
		Int("removed", tally.Removed).
		Int("no_action", tally.NoAction).
		Msg("Processing complete")
}
