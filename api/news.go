package api

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

var NEWS_URL = "https://raw.githubusercontent.com/EndokRIPa/MGL2.0/main/news.txt"

// LoadNews fetches the news text, bypassing any caches on the way.
func LoadNews(ctx context.Context) (string, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetHeaders(map[string]string{
			"Accept":        "text/plain",
			"Cache-Control": "no-cache, no-store, must-revalidate",
			"Pragma":        "no-cache",
		}).
		SetQueryParam("t", strconv.FormatInt(time.Now().UnixMilli(), 10)).
		Get(NEWS_URL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch news: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to fetch news: HTTP status %d", resp.StatusCode())
	}
	log.Debug().Int("length", len(resp.Body())).Msg("news loaded")
	return resp.String(), nil
}

func FallbackNews(err error) string {
	return fmt.Sprintf("# Failed to load news\n%v\n\nCheck your internet connection or try again later.\n- URL: %s", err, NEWS_URL)
}
