package scan

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/serioustools/wld"
	"github.com/serioustools/wld/format"
)

func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <file.wld>",
		Short: "Print the full parse narrative",
		Long:  `Parse the file and print every decoder log event in visit order, the way the viewer console would show it. On a fatal parse the narrative up to the failure is still printed.`,
		Args:  cobra.ExactArgs(1),
		Example: heredoc.Doc(`
			$ wldinfo scan Intro.wld
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.Default()
			sink := func(level format.Level, msg string) {
				switch level {
				case format.LevelWarn:
					logger.Warn(msg)
				case format.LevelError:
					logger.Error(msg)
				case format.LevelSuccess:
					logger.Info("✓ " + msg)
				default:
					logger.Info(msg)
				}
			}

			if _, err := wld.Load(args[0], sink); err != nil {
				return err
			}
			return nil
		},
	}
	return cmd
}
