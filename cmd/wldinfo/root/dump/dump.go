package dump

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/serioustools/wld"
	"github.com/serioustools/wld/format"
)

func NewDumpCmd() *cobra.Command {
	var maxPolygons int

	cmd := &cobra.Command{
		Use:   "dump <file.wld>",
		Short: "Print the brush / mip / sector tree",
		Args:  cobra.ExactArgs(1),
		Example: heredoc.Doc(`
			$ wldinfo dump Intro.wld
			$ wldinfo dump --max-polygons 10 Intro.wld
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

			for _, brush := range doc.World.Brushes {
				fmt.Printf("brush %d: %d mips\n", brush.ID, len(brush.Mips))
				for mi, mip := range brush.Mips {
					fmt.Printf("  mip %d: max distance %.1f, %d sectors\n", mi, mip.MaxDistance, len(mip.Sectors))
					for si, sector := range mip.Sectors {
						fmt.Printf("    sector %d %q: %d vertices, %d polygons, flags 0x%08X\n",
							si, sector.Name, len(sector.Vertices), len(sector.Polygons), sector.Flags)
						for pi, polygon := range sector.Polygons {
							if maxPolygons >= 0 && pi >= maxPolygons {
								fmt.Printf("      ... %d more polygons\n", len(sector.Polygons)-pi)
								break
							}
							fmt.Printf("      polygon %d: %d vertices, %d elements, color #%08X\n",
								pi, len(polygon.Vertices), len(polygon.Indices), polygon.Color)
						}
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxPolygons, "max-polygons", 20, "Polygons to print per sector (-1 for all)")
	return cmd
}
