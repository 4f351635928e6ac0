package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/kkdai/youtube/v2"
	"github.com/naozine/nz-html-fetch/pkg/htmlfetch"
)

// Importer resolves a video URL to a title so it can be added to the
// catalog. YouTube URLs are resolved through the YouTube client; any
// other page is fetched and its <title> element is used.
type Importer struct {
	yt      youtube.Client
	fetcher *htmlfetch.Fetcher
}

// NewImporter creates a new Importer. The page fetcher's browser is
// started lazily on the first non-YouTube URL.
func NewImporter() *Importer {
	return &Importer{yt: youtube.Client{}}
}

// Close shuts down the page fetcher if it was started.
func (i *Importer) Close() error {
	if i.fetcher != nil {
		return i.fetcher.Close()
	}
	return nil
}

var youtubeHosts = []string{"youtube.com", "youtu.be"}

// isYouTubeURL reports whether the URL points at YouTube.
func isYouTubeURL(url string) bool {
	for _, host := range youtubeHosts {
		if strings.Contains(url, host) {
			return true
		}
	}
	return false
}

// ResolveTitle returns a display title for the given video URL.
func (i *Importer) ResolveTitle(ctx context.Context, url string) (string, error) {
	if isYouTubeURL(url) {
		video, err := i.yt.GetVideo(url)
		if err != nil {
			return "", fmt.Errorf("failed to get video info: %w", err)
		}
		return video.Title, nil
	}
	return i.fetchPageTitle(ctx, url)
}

func (i *Importer) fetchPageTitle(ctx context.Context, url string) (string, error) {
	if i.fetcher == nil {
		f := htmlfetch.New(htmlfetch.WithStealth(true))
		if err := f.Start(); err != nil {
			return "", fmt.Errorf("failed to start fetcher: %w", err)
		}
		i.fetcher = f
	}

	result, err := i.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}

	title := extractTitle(result.HTML)
	if title == "" {
		return "", fmt.Errorf("no title found at %s", url)
	}
	return title, nil
}

var titleRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// extractTitle pulls the first <title> element out of an HTML document.
func extractTitle(html string) string {
	m := titleRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
