// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/constant"
	"github.com/tubegrab/tubegrab/filesystem"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/where"
)

// EnvKeyReplacer normalizes configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// envAliases lists the variable names used by existing RapidAPI setups, accepted next to the prefixed ones.
var envAliases = map[string][]string{
	key.APIHost: {"RAPIDAPI_HOST"},
	key.APIKey:  {"RAPIDAPI_KEY"},
}

// Setup initializes the global configuration state: .env files, environment bindings,
// factory defaults and the TOML file in the config directory.
func Setup() error {
	if err := loadDotEnv(where.DotEnv(), ".env"); err != nil {
		return err
	}

	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		if aliases, ok := envAliases[env]; ok {
			viper.MustBindEnv(append([]string{env, (&Field{Key: env}).Env()}, aliases...)...)
			continue
		}
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// loadDotEnv reads every existing file into the process environment.
// Variables that are already set are never overwritten.
func loadDotEnv(paths ...string) error {
	for _, path := range paths {
		exists, err := filesystem.API().Exists(path)
		if err != nil || !exists {
			continue
		}

		f, err := filesystem.API().Open(path)
		if err != nil {
			return err
		}

		vars, err := godotenv.Parse(f)
		_ = f.Close()
		if err != nil {
			return err
		}

		for k, v := range vars {
			if _, set := os.LookupEnv(k); !set {
				_ = os.Setenv(k, v)
			}
		}
	}

	return nil
}
