package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)
	qualityFlag(miniCmd)
}

// miniCmd asks for the URL and confirmation with line prompts.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch in mini mode",
	Long:  `Look up and open videos with plain line prompts instead of the full-screen interface.`,
	Run: func(cmd *cobra.Command, args []string) {
		q, err := quality(cmd)
		handleErr(err)

		options := mini.Options{
			Service:     newService(nil),
			Quality:     q,
			Open:        opener(),
			SaveHistory: viper.GetBool(key.HistorySave),
		}
		handleErr(mini.Run(&options))
	},
}
