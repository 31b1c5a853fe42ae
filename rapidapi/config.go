package rapidapi

import (
	"time"

	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/auth"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/network"
)

// OptionsFromConfig builds Options from the loaded configuration.
// The API key falls back to the keyring.
func OptionsFromConfig() Options {
	timeout := time.Duration(viper.GetInt(key.APITimeout)) * time.Second

	return Options{
		Credentials: Credentials{
			Host: viper.GetString(key.APIHost),
			Key:  auth.ResolveKey(viper.GetString(key.APIKey)),
		},
		BaseURL:          viper.GetString(key.APIBaseURL),
		DetailsPath:      viper.GetString(key.APIDetailsPath),
		VariantsPath:     viper.GetString(key.APIVariantsPath),
		VariantsJSONPath: viper.GetString(key.APIVariantsJSONPath),
		HTTPClient:       network.New(timeout, viper.GetBool(key.NetworkFingerprint)),
	}
}
