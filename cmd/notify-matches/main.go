// Command notify-matches tells students about newly posted announcements
// whose poster is a strong academic match. It is intended to be invoked by
// an external cron job, not as an in-process goroutine. Each announcement is
// fanned out once; later runs skip it.
//
// Flags:
//
//	--lookback  how far back to look for new announcements (default: config)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/heartmarshall/roommatch-backend/internal/app"
)

func main() {
	lookback := flag.Duration("lookback", 0, "window of announcement creation times to scan (0 = configured default)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := app.NotifyRecentMatches(ctx, *lookback); err != nil {
		log.Fatalf("notify-matches: %v", err)
	}
}
