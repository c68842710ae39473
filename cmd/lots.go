package cmd

import (
	"github.com/mouse-blink/parcel/internal/adapter"
	m "github.com/mouse-blink/parcel/internal/model"
	"github.com/spf13/cobra"
)

// defaultMethod is the subdivision method used when none is given.
const defaultMethod = "line"

func newSubdivideCmd() *cobra.Command {
	var (
		lots   int
		method string
	)

	cmd := &cobra.Command{
		Use:   "subdivide",
		Short: "Ask the backend to split the active terrain into lots",
		Long: `Sends the saved terrain and its polygon to the backend, which splits it
into the requested number of lots. Known methods are line, voronoi and
quadtree; the backend decides which ones it accepts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appFrom(cmd)
			if err := app.binder.Subdivide(cmd.Context(), lots, method); err != nil {
				return err
			}

			return app.ui.DisplayLots(app.binder.Lots())
		},
	}
	cmd.Flags().IntVarP(&lots, "lots", "l", 0, "number of lots to create")
	cmd.Flags().StringVarP(&method, "method", "m", defaultMethod, "subdivision method")

	return cmd
}

func newLotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lots",
		Short: "Show the lots of the last subdivision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appFrom(cmd)
			return app.ui.DisplayLots(app.binder.Lots())
		},
	}
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the lots as a GeoJSON FeatureCollection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			binder := appFrom(cmd).binder

			// Inside the shell the session already exists, so the flag is
			// applied here rather than through configuration.
			if cmd.Flags().Changed("dir") {
				dir, _ := cmd.Flags().GetString("dir")
				binder = binder.WithExports(adapter.NewLocalExportStore(m.Path(dir)))
			}

			_, err := binder.Export()

			return err
		},
	}
	cmd.Flags().String("dir", "", "directory the export file is written to (default is the current directory)")

	return cmd
}

func newSaveLotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save-lots",
		Short: "Save the lots of the last subdivision on the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return appFrom(cmd).binder.SaveLots(cmd.Context())
		},
	}
}
