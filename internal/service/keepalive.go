package service

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const keepAliveInterval = 10 * time.Minute

// StartKeepAlive pings the service's own public URL on an interval so
// free-tier hosting does not idle the process. A blank URL disables it.
func StartKeepAlive(url string) {
	if url == "" {
		return
	}
	go func() {
		client := &http.Client{Timeout: 15 * time.Second}
		for {
			time.Sleep(keepAliveInterval)
			resp, err := client.Get(url)
			if err != nil {
				log.Warn().Err(err).Msg("keep-alive ping failed")
				continue
			}
			resp.Body.Close()
		}
	}()
	log.Info().Str("url", url).Msg("keep-alive ping enabled")
}
