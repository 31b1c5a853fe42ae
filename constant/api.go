package constant

// Video API defaults. The variants endpoint is a separate logical operation even though
// the upstream currently answers both on the same path.
const (
	DefaultAPIHost          = "youtube-media-downloader.p.rapidapi.com"
	DefaultDetailsPath      = "/v2/video/details"
	DefaultVariantsPath     = "/v2/video/details"
	DefaultVariantsJSONPath = "videos.items"
)

// Request headers carrying the API credentials.
const (
	HeaderAPIHost = "x-rapidapi-host"
	HeaderAPIKey  = "x-rapidapi-key"
)
