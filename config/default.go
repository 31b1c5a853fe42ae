package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/color"
	"github.com/tubegrab/tubegrab/constant"
	"github.com/tubegrab/tubegrab/key"
	"github.com/tubegrab/tubegrab/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes the current and default values next to the description.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.APIHost, constant.DefaultAPIHost, "Host of the video API.\nSent as the x-rapidapi-host header")
	register(key.APIKey, "", "Key of the video API.\nPrefer \"tubegrab auth set\" to keep it in the system keyring")
	register(key.APIBaseURL, "", "Overrides scheme and host of API requests (e.g. http://localhost:8080).\nEmpty means https://<api.host>")
	register(key.APIDetailsPath, constant.DefaultDetailsPath, "Path of the metadata endpoint")
	register(key.APIVariantsPath, constant.DefaultVariantsPath, "Path of the variant list endpoint")
	register(key.APIVariantsJSONPath, constant.DefaultVariantsJSONPath, "Location of the variant list inside the response body (gjson syntax)")
	register(key.APITimeout, 30, "Request timeout in seconds")
	register(key.DownloadDefaultQuality, 720, "Minimum quality preselected in the interface.\nAvailable options are: 720, 1080, 1440, 2160")
	register(key.DownloadOpen, true, "Open the selected link with the system handler")
	register(key.DownloadApp, "", "Application used to open links.\nEmpty means the system default")
	register(key.HistorySave, true, "Remember completed selections")
	register(key.SearchShowSuggestions, true, "Suggest previously looked up URLs")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.TUIInputPrompt, "> ", "Prompt string of the URL input")
	register(key.TUIShowURLs, true, "Show the selected link after opening it")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
	register(key.NetworkFingerprint, false, "Send API requests with a browser TLS fingerprint")
	register(key.ServePort, 8080, "Port of the HTTP mode")
	register(key.ServeToken, "", "Token required in the X-API-Key header of the HTTP mode.\nEmpty disables the check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
