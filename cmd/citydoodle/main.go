package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "citydoodle",
		Short: "Procedural city road and district geometry engine",
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [project-file]",
		Short: "Run every placement through the engine and emit the city as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-file]",
		Short: "Check a project file and report generation findings without output",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func renderCmd() *cobra.Command {
	var out string
	var scale float64

	cmd := &cobra.Command{
		Use:   "render [project-file]",
		Short: "Generate the city and paint a debug PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRender(args[0], out, scale)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "city.png", "output PNG path")
	cmd.Flags().Float64Var(&scale, "scale", 2, "pixels per world unit")
	return cmd
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [project-file]",
		Short: "Generate the city and emit GeoJSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (stdout when empty)")
	return cmd
}
