package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/domonda/go-sparsetable/internal/config"
	"github.com/domonda/go-sparsetable/internal/log"
)

const version = "0.1.0"

type app struct {
	configPath string
	order      string
	sheet      string
	opts       *config.Options
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func newRootCmd() *cobra.Command {
	a := new(app)
	rootCmd := &cobra.Command{
		Use:           "sparsetable",
		Version:       version,
		Short:         "Inspect and convert sparse tables stored as CSV, Excel or cell lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path, default configuration if empty")
	rootCmd.PersistentFlags().StringVarP(&a.order, "order", "o", "", "Iteration order: row-major or column-major, overrides the config")
	rootCmd.PersistentFlags().StringVarP(&a.sheet, "sheet", "s", "", "Excel sheet name, first sheet if empty")

	var check bool
	statCmd := &cobra.Command{
		Use:   "stat FILE",
		Short: "Print the size and cell range of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.stat(cmd.OutOrStdout(), args[0], check)
		},
	}
	statCmd.Flags().BoolVar(&check, "check", false, "Audit the consistency of the table index")

	var fromCells bool
	convertCmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert a table to .csv, .html or .xlsx by the extension of OUT",
		Long: `Convert reads IN as .csv or .xlsx table and writes the populated range
of the table as dense .csv, .html or .xlsx file.
With --cells IN is read as cell list written by the cells command.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(args[0], args[1], fromCells)
		},
	}
	convertCmd.Flags().BoolVar(&fromCells, "cells", false, "Read IN as row;column;value cell list")

	cellsCmd := &cobra.Command{
		Use:   "cells IN OUT",
		Short: "Write all cells of a table as row;column;value CSV list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cells(args[0], args[1])
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration as YAML template",
		Args:  cobra.NoArgs,
		// no config or logging needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := config.Template()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(tmpl)
			return err
		},
	}

	rootCmd.AddCommand(statCmd, convertCmd, cellsCmd, configCmd)
	return rootCmd
}

func (a *app) init() (err error) {
	if a.configPath == "" {
		a.opts = config.NewDefault()
	} else {
		a.opts, err = config.Load(a.configPath)
		if err != nil {
			return fmt.Errorf("load config failed: %w", err)
		}
	}
	if a.order != "" {
		a.opts.Order = a.order
		if err = a.opts.Validate(); err != nil {
			return err
		}
	}
	if err = log.Init(a.opts.Log); err != nil {
		return fmt.Errorf("init log failed: %w", err)
	}
	log.Debugf("loaded config: %s", spew.Sdump(a.opts))
	return nil
}
