package cmd

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/history"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/log"
	"github.com/tubegrab/tubegrab/open"
	"github.com/tubegrab/tubegrab/rapidapi"
	"github.com/tubegrab/tubegrab/video"
)

func newService(observe func(string, error, time.Duration)) *downloader.Service {
	options := rapidapi.OptionsFromConfig()
	options.Observe = observe
	return downloader.New(rapidapi.New(options))
}

// opener returns nil when links should only be printed.
func opener() func(string) error {
	if !viper.GetBool(key.DownloadOpen) {
		return nil
	}

	app := viper.GetString(key.DownloadApp)
	return func(url string) error {
		return open.StartWith(url, app)
	}
}

func configuredQuality() (video.Quality, error) {
	q := video.Quality(viper.GetInt(key.DownloadDefaultQuality))
	if !q.Valid() {
		return 0, fmt.Errorf("invalid quality %d, available options are: %v", q, video.Qualities)
	}
	return q, nil
}

func qualityFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("quality", "q", "", "Minimum quality (720, 1080, 1440, 2160 or 4K)")
	lo.Must0(cmd.RegisterFlagCompletionFunc("quality", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(video.Qualities, func(q video.Quality, _ int) string {
			return q.String()
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// quality prefers the --quality flag over download.default_quality.
func quality(cmd *cobra.Command) (video.Quality, error) {
	raw := lo.Must(cmd.Flags().GetString("quality"))
	if raw == "" {
		return configuredQuality()
	}
	return video.ParseQuality(raw)
}

func saveHistory(id video.Reference, meta video.Metadata, q video.Quality, chosen video.Variant) {
	if err := history.Save(history.NewRecord(id, meta, q, chosen)); err != nil {
		log.Warnf("save history: %s", err)
	}
}
