/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suparena/itemstore"
	"github.com/suparena/itemstore/internal/config"
	"github.com/suparena/itemstore/internal/session"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	cfg     config.Config
	logger  *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:               "itemstore",
		Short:             "An in-memory inventory registry",
		Long:              `itemstore adds, finds, removes and lists inventory items held in memory, driven by YAML operation scripts.`,
		Version:           itemstore.GetVersionInfo().Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScript(cmd, session.Demo(), false)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML)")
	pf.StringVar(&a.envFile, "env-file", "", "env file to load (default: .env if present)")
	pf.String("log-level", config.Defaults().Log.Level, "log level: debug, info, warn, error")
	pf.String("log-format", config.Defaults().Log.Format, "log format: text or json")
	pf.Bool("events", false, "log every registry event")

	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", pf.Lookup("log-format"))
	_ = a.v.BindPFlag("events", pf.Lookup("events"))

	rootCmd.AddCommand(
		newDemoCmd(a),
		newRunCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnvFile(a.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) newRegistry(out io.Writer) *itemstore.Registry {
	sinks := []itemstore.Sink{itemstore.WriterSink(out)}
	if a.cfg.Events {
		sinks = append(sinks, itemstore.NewLogSink(a.logger, slog.LevelInfo))
	}
	return itemstore.New(itemstore.WithSink(itemstore.MultiSink(sinks...)))
}

func (a *app) runScript(cmd *cobra.Command, s *session.Script, strict bool) error {
	out := cmd.OutOrStdout()
	runner := &session.Runner{
		Registry: a.newRegistry(out),
		Out:      out,
		Err:      cmd.ErrOrStderr(),
		Logger:   a.logger,
	}

	report := runner.Run(s)
	a.logger.Info("session complete", "script", s.Name, "steps", report.Steps, "failed", report.Failed)

	if strict && report.Failed > 0 {
		return fmt.Errorf("%d of %d steps failed", report.Failed, report.Steps)
	}
	return nil
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScript(cmd, session.Demo(), false)
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run a YAML script of add, find, remove and list steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("loading script: %w", err)
			}
			return a.runScript(cmd, s, strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero if any step fails")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), itemstore.GetVersionInfo())
		},
	}
}
