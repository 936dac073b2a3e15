package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// oEmbed response subset; providers report duration in seconds when known.
type oEmbedResponse struct {
	Title    string `json:"title"`
	Duration int    `json:"duration"`
}

// FetchVideoDuration asks the noembed.com oEmbed gateway for video metadata
// and returns the duration in minutes. Best effort: any failure returns 0
// and the caller keeps going.
func FetchVideoDuration(videoURL string) int {
	if videoURL == "" {
		return 0
	}

	client := resty.New().SetTimeout(10 * time.Second)

	var meta oEmbedResponse
	resp, err := client.R().
		SetQueryParam("url", videoURL).
		SetResult(&meta).
		Get("https://noembed.com/embed")

	if err != nil {
		log.Printf("[VIDEO-META] Error fetching metadata for %s: %v", videoURL, err)
		return 0
	}
	if resp.StatusCode() != 200 {
		log.Printf("[VIDEO-META] Metadata lookup failed for %s, status %d", videoURL, resp.StatusCode())
		return 0
	}

	if meta.Duration <= 0 {
		return 0
	}
	return (meta.Duration + 59) / 60
}
