// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seb-eis/Mocassin-sub007/config"
	"github.com/seb-eis/Mocassin-sub007/logging"
	"github.com/seb-eis/Mocassin-sub007/project"
	"github.com/seb-eis/Mocassin-sub007/symmetry"
)

// app carries what PersistentPreRunE prepared for the subcommands.
type app struct {
	configPath string
	settings   config.Settings
	logger     *zap.Logger
	catalogue  *symmetry.Catalogue
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:           "groupstates",
		Short:         "Symmetry-reduced occupation states of group interactions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	d := config.Defaults()
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "settings file (YAML)")
	flags.String("catalogue", d.Catalogue, "space group catalogue file, embedded catalogue if empty")
	flags.Float64("tolerance", d.Tolerance, "geometric comparison tolerance")
	flags.Int("workers", d.Workers, "groups computed concurrently")
	flags.String("log.level", d.Log.Level, "log level: debug, info, warn, error")
	flags.String("log.format", d.Log.Format, "log format: console or json")

	root.AddCommand(newStatesCmd(a), newPairsCmd(a), newSiteSymCmd(a))

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	s, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(s.Log)
	if err != nil {
		return err
	}
	a.settings, a.logger = s, logger

	if s.Catalogue == "" {
		a.catalogue, err = symmetry.DefaultCatalogue()
		return err
	}
	f, err := os.Open(s.Catalogue)
	if err != nil {
		return fmt.Errorf("catalogue: %w", err)
	}
	defer f.Close()
	a.catalogue, err = symmetry.LoadCatalogue(f)

	return err
}

func (a *app) loadModel(path string) (*project.Model, error) {
	d, err := project.LoadFile(path)
	if err != nil {
		return nil, err
	}
	opts := append(a.settings.ServiceOptions(), symmetry.WithLogger(a.logger))

	return project.Build(d, a.catalogue, a.settings.Comparer(), opts...)
}
