package info

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/serioustools/wld"
	"github.com/serioustools/wld/format"
)

func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file.wld>",
		Short: "Print world metadata and geometry totals",
		Args:  cobra.ExactArgs(1),
		Example: heredoc.Doc(`
			$ wldinfo info Intro.wld
			$ wldinfo info --verbose Intro.wld
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sink format.LogFunc
			if viper.GetBool("verbose") {
				sink = wld.CharmSink(log.Default())
			}

			doc, err := wld.Load(args[0], sink)
			if err != nil {
				log.Error("load failed", "file", args[0], "err", err)
				return err
			}

			w := doc.World
			stats := wld.Collect(w)

			fmt.Printf("Document:    %s (%s)\n", doc.Name, doc.ID)
			if w.Description != "" {
				fmt.Printf("Description: %s\n", w.Description)
			}
			if w.EngineBuild != nil {
				fmt.Printf("Engine:      build %d", *w.EngineBuild)
				if w.EngineVersion != "" {
					fmt.Printf(" (%s)", w.EngineVersion)
				}
				fmt.Println()
			}
			fmt.Printf("Background:  #%08X\n", w.BackgroundColor)
			fmt.Printf("Spawn flags: 0x%08X\n", w.SpawnFlags)
			fmt.Printf("Brushes:     %d (%d mips, %d sectors)\n", stats.Brushes, stats.Mips, stats.Sectors)
			fmt.Printf("Geometry:    %d polygons, %d vertices, %d strip elements\n",
				stats.Polygons, stats.Vertices, stats.Elements)
			if stats.EmptyPolygons > 0 {
				fmt.Printf("             %d polygons without triangle data (fan-triangulated)\n", stats.EmptyPolygons)
			}
			if stats.HasBounds {
				fmt.Printf("Bounds:      (%.2f, %.2f, %.2f) .. (%.2f, %.2f, %.2f)\n",
					stats.BoundsMin.X, stats.BoundsMin.Y, stats.BoundsMin.Z,
					stats.BoundsMax.X, stats.BoundsMax.Y, stats.BoundsMax.Z)
			}

			warnings := 0
			for _, e := range doc.Log {
				if e.Level == format.LevelWarn {
					warnings++
				}
			}
			if warnings > 0 {
				log.Warn("parse finished with warnings", "count", warnings)
			}
			return nil
		},
	}
	return cmd
}
