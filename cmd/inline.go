package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/constant"
	"github.com/tubegrab/tubegrab/filesystem"
	"github.com/tubegrab/tubegrab/inline"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/open"
	"github.com/tubegrab/tubegrab/query"
	"github.com/tubegrab/tubegrab/util"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringArrayP("url", "u", []string{}, "Video URL, repeat for several videos")
	qualityFlag(inlineCmd)
	inlineCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	inlineCmd.Flags().Bool("open", false, "Open every selected link with the system handler")
	inlineCmd.Flags().Bool("info", false, "Only look up metadata, do not select a link")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file")

	inlineCmd.MarkFlagsMutuallyExclusive("info", "open")
	lo.Must0(inlineCmd.MarkFlagRequired("url"))

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("url", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Launch in inline mode for scripting",
	Long: `Look up videos and print the selected MP4 links without any prompts.

Plain output prints one link per line and stops at the first failure.
JSON output reports every URL, failed ones included.`,
	Example: constant.App + ` inline --url https://youtu.be/dQw4w9WgXcQ --quality 1080 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		var writer io.Writer = os.Stdout

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			writer = file
		}

		q, err := quality(cmd)
		handleErr(err)

		urls := lo.Must(cmd.Flags().GetStringArray("url"))
		if len(lo.Compact(urls)) == 0 {
			handleErr(errors.New("at least one --url is required"))
		}

		options := &inline.Options{
			Out:      writer,
			Service:  newService(nil),
			URLs:     urls,
			Quality:  q,
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			InfoOnly: lo.Must(cmd.Flags().GetBool("info")),
			Open:     mo.None[inline.Opener](),
		}

		if lo.Must(cmd.Flags().GetBool("open")) {
			app := viper.GetString(key.DownloadApp)
			options.Open = mo.Some[inline.Opener](func(url string) error {
				return open.StartWith(url, app)
			})
		}

		if viper.GetBool(key.HistorySave) {
			options.OnSelected = saveHistory
		}

		handleErr(inline.Run(context.Background(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline JSON output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "variant", "output", "entry", "failure":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
