package main

import (
	"context"
	"net/http"
	"time"

	"recipes/internal/ratelimiter"
)

// startBackground launches the periodic jobs; they stop when ctx is cancelled.
func (app *application) startBackground(ctx context.Context) {
	if rl, ok := app.rateLimiter.(*ratelimiter.FixedWindowRateLimiter); ok {
		go rl.Run(ctx)
	}

	if app.config.env == "production" && app.config.keepAlive.url != "" {
		go app.keepAlive(ctx, http.DefaultClient)
	}
}

// keepAlive pings the public health URL so free-tier hosts do not idle the instance.
func (app *application) keepAlive(ctx context.Context, client *http.Client) {
	ticker := time.NewTicker(app.config.keepAlive.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.pingKeepAlive(ctx, client)
		}
	}
}

func (app *application) pingKeepAlive(ctx context.Context, client *http.Client) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, app.config.keepAlive.url, nil)
	if err != nil {
		app.logger.Errorf("Error building keep-alive request: %v", err)
		return
	}

	resp, err := client.Do(req)
	if err != nil {
		app.logger.Errorf("Error sending keep-alive request: %v", err)
		return
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		app.logger.Warnw("keep-alive request failed", "status", resp.StatusCode)
		return
	}
	app.logger.Infof("Keep-alive request sent successfully at %s", time.Now().Format(time.RFC1123))
}
