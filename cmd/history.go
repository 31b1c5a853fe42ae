package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tubegrab/tubegrab/color"
	"github.com/tubegrab/tubegrab/history"
	"github.com/tubegrab/tubegrab/icon"
	"github.com/tubegrab/tubegrab/style"
	"github.com/tubegrab/tubegrab/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().BoolP("clear", "c", false, "Forget every record")
	historyCmd.Flags().StringP("remove", "r", "", "Forget the record of a video id")
	historyCmd.MarkFlagsMutuallyExclusive("json", "clear", "remove")

	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously opened links",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			fmt.Printf("%s history cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		if id := lo.Must(cmd.Flags().GetString("remove")); id != "" {
			handleErr(history.Remove(id))
			fmt.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(id))
			return
		}

		records, err := history.Get()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		if len(records) == 0 {
			cmd.Println(style.Faint("No history yet"))
			return
		}

		for _, r := range records {
			cmd.Printf(
				"%s %s %s\n  %s\n",
				style.Fg(color.Purple)(r.ID),
				style.Bold(r.Title),
				style.Faint(fmt.Sprintf("%s, %s", r.Selected, r.SavedAt.Format("2006-01-02 15:04"))),
				r.URL,
			)
		}

		cmd.Println()
		cmd.Println(style.Faint(util.Quantify(len(records), "record", "records")))
	},
}
