// Package cmd implements the command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/color"
	"github.com/tubegrab/tubegrab/constant"
	"github.com/tubegrab/tubegrab/icon"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/log"
	"github.com/tubegrab/tubegrab/query"
	"github.com/tubegrab/tubegrab/style"
	"github.com/tubegrab/tubegrab/tui"
	"github.com/tubegrab/tubegrab/util"
	"github.com/tubegrab/tubegrab/version"
	"github.com/tubegrab/tubegrab/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Remember opened links")
	lo.Must0(viper.BindPFlag(key.HistorySave, rootCmd.PersistentFlags().Lookup("write-history")))

	qualityFlag(rootCmd)
	rootCmd.Flags().StringP("url", "u", "", "Video URL placed in the input on start")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("url", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	rootCmd.Flags().Bool("history", false, "Start on the history list")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Paste a YouTube link, pick a quality, get the MP4",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Paste a YouTube link, pick a quality, get the MP4"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		q, err := quality(cmd)
		handleErr(err)

		options := tui.Options{
			Service:     newService(nil),
			Quality:     q,
			URL:         lo.Must(cmd.Flags().GetString("url")),
			Open:        opener(),
			SaveHistory: viper.GetBool(key.HistorySave),
			ShowHistory: lo.Must(cmd.Flags().GetBool("history")),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute runs the command tree.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
