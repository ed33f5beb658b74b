package main

import (
	"os"

	"github.com/ldineshkumar-dev/oakzone/internal/server"
	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
	"github.com/spf13/cobra"
)

// lotFlags are the geometry inputs shared by analyze and value.
type lotFlags struct {
	area     float64
	frontage float64
	depth    float64
	corner   bool
	garage   bool
	height   float64
}

func (l *lotFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&l.area, "area", "a", 0, "lot area in square metres (required)")
	cmd.Flags().Float64VarP(&l.frontage, "frontage", "f", 0, "lot frontage in metres (required)")
	cmd.Flags().Float64Var(&l.depth, "depth", 0, "lot depth in metres (derived from area/frontage when omitted)")
	cmd.Flags().BoolVar(&l.corner, "corner", false, "corner lot")
	cmd.Flags().BoolVar(&l.garage, "garage", false, "attached garage")
	cmd.Flags().Float64Var(&l.height, "height", 0, "proposed building height in metres")
	cmd.MarkFlagRequired("area")
	cmd.MarkFlagRequired("frontage")
}

func main() {
	var tablesDir string
	var asJSON bool

	rootCmd := &cobra.Command{
		Use:   "oakzone",
		Short: "Oakville By-law 2014-014 zoning rule resolution and development potential engine",
	}
	rootCmd.PersistentFlags().StringVar(&tablesDir, "tables", ".", "directory containing bylaw.yaml regulation overrides")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "emit JSON instead of a text report")

	rootCmd.AddCommand(analyzeCmd(&tablesDir, &asJSON))
	rootCmd.AddCommand(zonesCmd(&tablesDir, &asJSON))
	rootCmd.AddCommand(validateCmd(&tablesDir))
	rootCmd.AddCommand(valueCmd(&tablesDir, &asJSON))
	rootCmd.AddCommand(serveCmd(&tablesDir))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func analyzeCmd(tablesDir *string, asJSON *bool) *cobra.Command {
	var lot lotFlags

	cmd := &cobra.Command{
		Use:   "analyze [zone-code]",
		Short: "Compute development potential for a lot under a zone designation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAnalyze(*tablesDir, args[0], lot, *asJSON)
		},
	}
	lot.register(cmd)
	return cmd
}

func zonesCmd(tablesDir *string, asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "zones [zone-code]",
		Short: "List regulation tables, or show one zone in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			code := ""
			if len(args) == 1 {
				code = args[0]
			}
			return runZones(*tablesDir, code, *asJSON)
		},
	}
}

func validateCmd(tablesDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Audit the loaded regulation tables",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runValidate(*tablesDir)
		},
	}
}

func valueCmd(tablesDir *string, asJSON *bool) *cobra.Command {
	var lot lotFlags
	var buildingArea float64
	var dwellingType string
	var ageYears int

	cmd := &cobra.Command{
		Use:   "value [zone-code]",
		Short: "Estimate property value and redevelopment pro-forma",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValue(*tablesDir, args[0], lot, buildingArea, dwellingType, ageYears, *asJSON)
		},
	}
	lot.register(cmd)
	cmd.Flags().Float64Var(&buildingArea, "building-area", 0, "existing building floor area in square metres")
	cmd.Flags().StringVar(&dwellingType, "dwelling-type", zoning.UseDetached, "existing dwelling type")
	cmd.Flags().IntVar(&ageYears, "age", 0, "building age in years")
	return cmd
}

func serveCmd(tablesDir *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the zoning analysis HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := zoning.LoadProject(*tablesDir)
			if err != nil {
				return err
			}
			srv, err := server.New(repo, port)
			if err != nil {
				return err
			}
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP server port")
	return cmd
}
