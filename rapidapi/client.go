// Package rapidapi talks to the RapidAPI hosted video-info service.
package rapidapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/mo"
	"github.com/tidwall/gjson"
	"github.com/tubegrab/tubegrab/constant"
	"github.com/tubegrab/tubegrab/network"
	"github.com/tubegrab/tubegrab/video"
)

// Credentials identify the caller to the service.
type Credentials struct {
	Host string
	Key  string
}

// Valid reports whether both values are set.
func (c Credentials) Valid() bool {
	return c.Host != "" && c.Key != ""
}

// Options configure a Client. Zero values fall back to the defaults in constant.
type Options struct {
	Credentials Credentials

	// BaseURL replaces "https://{host}".
	BaseURL string

	DetailsPath      string
	VariantsPath     string
	VariantsJSONPath string

	HTTPClient *http.Client

	// Observe, when set, is called after every request.
	Observe func(operation string, err error, elapsed time.Duration)
}

// Client issues one request per call and never retries.
type Client struct {
	opts Options
}

// New returns a client with defaults filled in.
func New(opts Options) *Client {
	if opts.DetailsPath == "" {
		opts.DetailsPath = constant.DefaultDetailsPath
	}
	if opts.VariantsPath == "" {
		opts.VariantsPath = constant.DefaultVariantsPath
	}
	if opts.VariantsJSONPath == "" {
		opts.VariantsJSONPath = constant.DefaultVariantsJSONPath
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = network.Client
	}

	return &Client{opts: opts}
}

const (
	opDetails  = "details"
	opVariants = "variants"
)

var (
	titlePaths     = []string{"title"}
	authorPaths    = []string{"author", "channel.name"}
	thumbnailPaths = []string{"thumbnail", "thumbnails.0.url"}
)

// Details fetches the title, author and thumbnail of a video.
func (c *Client) Details(ctx context.Context, id video.Reference) (video.Metadata, error) {
	body, err := c.get(ctx, opDetails, c.opts.DetailsPath, id)
	if err != nil {
		return video.Metadata{}, err
	}

	return video.Metadata{
		Title:     firstString(body, titlePaths),
		Author:    firstString(body, authorPaths),
		Thumbnail: firstString(body, thumbnailPaths),
	}, nil
}

// Variants fetches the downloadable encodings of a video. A missing list yields nil.
func (c *Client) Variants(ctx context.Context, id video.Reference) ([]video.Variant, error) {
	body, err := c.get(ctx, opVariants, c.opts.VariantsPath, id)
	if err != nil {
		return nil, err
	}

	items := body.Get(c.opts.VariantsJSONPath)
	if !items.IsArray() {
		return nil, nil
	}

	var variants []video.Variant
	items.ForEach(func(_, item gjson.Result) bool {
		variants = append(variants, video.Variant{
			Extension: item.Get("extension").String(),
			HasAudio:  item.Get("hasAudio").Type == gjson.True,
			Quality:   item.Get("quality").String(),
			URL:       item.Get("url").String(),
		})
		return true
	})

	return variants, nil
}

func (c *Client) endpoint(path string, id video.Reference) string {
	base := c.opts.BaseURL
	if base == "" {
		base = "https://" + c.opts.Credentials.Host
	}

	return strings.TrimRight(base, "/") + path + "?" + url.Values{"videoId": {id.String()}}.Encode()
}

func (c *Client) get(ctx context.Context, operation, path string, id video.Reference) (result gjson.Result, err error) {
	if c.opts.Observe != nil {
		start := time.Now()
		defer func() {
			c.opts.Observe(operation, err, time.Since(start))
		}()
	}

	if !c.opts.Credentials.Valid() {
		return gjson.Result{}, &video.UpstreamError{Message: "API credentials are not configured"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, id), nil)
	if err != nil {
		return gjson.Result{}, &video.UpstreamError{Err: err}
	}

	req.Header.Set(constant.HeaderAPIHost, c.opts.Credentials.Host)
	req.Header.Set(constant.HeaderAPIKey, c.opts.Credentials.Key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return gjson.Result{}, &video.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, &video.UpstreamError{Status: resp.StatusCode, Err: err}
	}

	body := gjson.ParseBytes(raw)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return gjson.Result{}, &video.UpstreamError{
			Message: serviceMessage(raw, body),
			Status:  resp.StatusCode,
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	if !gjson.ValidBytes(raw) || !body.IsObject() {
		return gjson.Result{}, &video.UpstreamError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("invalid JSON in %s response", operation),
		}
	}

	// The service reports some failures with a 200 and "status": false.
	if status := body.Get("status"); status.Exists() && status.Type == gjson.False {
		return gjson.Result{}, &video.UpstreamError{
			Message: serviceMessage(raw, body),
			Status:  resp.StatusCode,
			Err:     fmt.Errorf("%s rejected", operation),
		}
	}

	return body, nil
}

func serviceMessage(raw []byte, body gjson.Result) string {
	if !gjson.ValidBytes(raw) {
		return ""
	}

	for _, path := range []string{"message", "error", "errorId"} {
		if v := body.Get(path); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

func firstString(body gjson.Result, paths []string) mo.Option[string] {
	for _, path := range paths {
		if v := body.Get(path); v.Type == gjson.String && v.String() != "" {
			return mo.Some(v.String())
		}
	}
	return mo.None[string]()
}
