package cmd

import (
	m "github.com/mouse-blink/parcel/internal/model"
	"github.com/spf13/cobra"
)

func newDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw <file|->",
		Short: "Set a newly drawn polygon as the active terrain",
		Long: `Reads a GeoJSON Polygon or MultiPolygon (bare geometry, Feature, or a
FeatureCollection with one feature) from a file or stdin ("-"). The terrain
becomes new and unsaved and any previous lots are discarded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFrom(cmd).binder.Draw(m.Path(args[0]))
		},
	}
}

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <file|->",
		Short: "Replace the active polygon with an edited version",
		Long:  "Replaces the active polygon keeping the terrain id and name. Previous lots are discarded.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appFrom(cmd).binder.Edit(m.Path(args[0]))
		},
	}
}

func newSaveCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the active polygon as a terrain of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return appFrom(cmd).binder.Save(cmd.Context(), name)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "terrain name (defaults to the current terrain name)")

	return cmd
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <id>",
		Short: "Load a saved terrain by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd)
			if err := app.binder.Load(cmd.Context(), args[0]); err != nil {
				return err
			}

			return app.ui.DisplayStatus(app.binder.Status())
		},
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop the active polygon, terrain and lots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appFrom(cmd).binder.Clear()
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active terrain and the lot summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return appFrom(cmd).binder.Refresh()
		},
	}
}
