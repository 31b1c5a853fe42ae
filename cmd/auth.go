package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/auth"
	"github.com/tubegrab/tubegrab/color"
	"github.com/tubegrab/tubegrab/icon"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the video API key stored in the system keyring",
}

func init() {
	authCmd.AddCommand(authSetCmd)
}

var authSetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store the API key in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var apiKey string

		if len(args) == 1 {
			apiKey = args[0]
		} else {
			handleErr(survey.AskOne(&survey.Password{
				Message: "RapidAPI key",
			}, &apiKey, survey.WithValidator(survey.Required)))
		}

		apiKey = strings.TrimSpace(apiKey)
		if apiKey == "" {
			handleErr(errors.New("key is empty"))
		}

		handleErr(auth.SetKey(apiKey))
		fmt.Printf("%s key saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authShowCmd)
	authShowCmd.Flags().Bool("reveal", false, "Print the key in full")
}

var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show which API key will be used",
	Run: func(cmd *cobra.Command, args []string) {
		source := "config"
		apiKey := viper.GetString(key.APIKey)
		if apiKey == "" {
			source = "keyring"
			apiKey = auth.ResolveKey("")
		}

		if apiKey == "" {
			fmt.Println(style.Fg(color.Red)("no key configured"))
			return
		}

		if reveal, _ := cmd.Flags().GetBool("reveal"); !reveal {
			apiKey = mask(apiKey)
		}

		fmt.Printf("%s %s\n", style.Fg(color.Yellow)(apiKey), style.Faint("("+source+")"))
	},
}

func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

func init() {
	authCmd.AddCommand(authDeleteCmd)
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the API key from the system keyring",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteKey())
		fmt.Printf("%s key deleted\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
