// Package version compares releases and tells the user about newer ones.
package version

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/tidwall/gjson"
	"github.com/tubegrab/tubegrab/constant"
	"github.com/tubegrab/tubegrab/filesystem"
	"github.com/tubegrab/tubegrab/network"
	"github.com/tubegrab/tubegrab/util"
	"github.com/tubegrab/tubegrab/where"
)

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

var latestURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

// Latest returns the newest released version without the "v" prefix.
// The answer is cached for two days.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release check returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	tag := gjson.GetBytes(body, "tag_name").String()
	if tag == "" {
		return "", errors.New("empty tag name")
	}

	version = strings.TrimPrefix(tag, "v")
	_ = versionCacher.Set(version)
	return version, nil
}
