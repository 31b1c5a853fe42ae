// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Video API - host, credentials and endpoint layout of the upstream metadata service.
const (
	APIHost             = "api.host"
	APIKey              = "api.key"
	APIBaseURL          = "api.base_url"
	APIDetailsPath      = "api.details_path"
	APIVariantsPath     = "api.variants_path"
	APIVariantsJSONPath = "api.variants_json_path"
	APITimeout          = "api.timeout"
)

// Download selection - these keys govern the quality threshold and how the chosen link is opened.
const (
	DownloadDefaultQuality = "download.default_quality"
	DownloadOpen           = "download.open"
	DownloadApp            = "download.app"
)

// History Tracking - persistence of completed selections.
const (
	HistorySave = "history.save"
)

// Search Interaction - suggestions of previously looked up URLs.
const (
	SearchShowSuggestions = "search.show_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI).
const (
	TUIInputPrompt = "tui.input_prompt"
	TUIShowURLs    = "tui.show_urls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Networking.
const (
	NetworkFingerprint = "network.fingerprint"
)

// HTTP mode.
const (
	ServePort  = "serve.port"
	ServeToken = "serve.token"
)
