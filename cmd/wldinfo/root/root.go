package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/serioustools/wld/cmd/wldinfo/root/dump"
	"github.com/serioustools/wld/cmd/wldinfo/root/info"
	"github.com/serioustools/wld/cmd/wldinfo/root/scan"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wldinfo <command> <file.wld> [flags]",
		Short: "Serious Engine world file inspector",
		Long:  `Parse Serious Engine 1 WLD files and inspect their geometry and metadata.`,
		Example: heredoc.Doc(`
			$ wldinfo info Intro.wld
			$ wldinfo dump Intro.wld
			$ wldinfo scan Intro.wld
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Stream the parse log while loading")
	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	cmd.AddCommand(info.NewInfoCmd())
	cmd.AddCommand(dump.NewDumpCmd())
	cmd.AddCommand(scan.NewScanCmd())

	return cmd
}
