/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Seednode/truthordare/games/truthordare"
)

const envFile = ".env"

type Config struct {
	bind           string
	port           int
	prefix         string
	profile        bool
	prompts        string
	sessionTimeout time.Duration
	spinDuration   time.Duration
	tlsCert        string
	tlsKey         string
	turnTime       time.Duration
	verbose        bool
	version        bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.spinDuration <= 0 {
		return fmt.Errorf("invalid spin duration (must be positive): %s", c.spinDuration)
	}
	if c.turnTime < time.Second {
		return fmt.Errorf("invalid turn time (must be at least 1s): %s", c.turnTime)
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

// loadDotEnv exports the variables in ./.env, if there is one, so they can
// be picked up as TRUTHORDARE_* settings.
func loadDotEnv() error {
	err := godotenv.Load(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}
	return nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TRUTHORDARE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "truthordare",
		Short:         "Truth or Dare for a room full of people, served as a single webapp.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: TRUTHORDARE_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: TRUTHORDARE_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: TRUTHORDARE_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: TRUTHORDARE_PROFILE)")
	fs.StringVar(&cfg.prompts, "prompts", "", "yaml, json or toml file with extra built-in prompts (env: TRUTHORDARE_PROMPTS)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle game sessions are ended (env: TRUTHORDARE_SESSION_TIMEOUT)")
	fs.DurationVar(&cfg.spinDuration, "spin-duration", truthordare.DefaultSpinDuration, "time the pointer spins before a player is picked (env: TRUTHORDARE_SPIN_DURATION)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: TRUTHORDARE_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: TRUTHORDARE_TLS_KEY)")
	fs.DurationVar(&cfg.turnTime, "turn-time", truthordare.DefaultTurnTime, "countdown shown with each truth or dare (env: TRUTHORDARE_TURN_TIME)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: TRUTHORDARE_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: TRUTHORDARE_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("truthordare v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
