// Logs into BetBCK through a headless browser and prints the resulting
// session cookies. Handy when the plain HTTP login is rejected and the
// site insists on a browser handshake first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/oddscout/oddscout/internal/pkg/config"
)

func main() {
	var configPath string
	var timeout time.Duration

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = "configs/production.yaml"
	}
	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file")
	flag.DurationVar(&timeout, "timeout", 60*time.Second, "Overall timeout")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	bck := cfg.Betbck
	if bck.Username == "" || bck.Password == "" {
		log.Fatal("betbck credentials are required (config or BETBCK_USERNAME/BETBCK_PASSWORD)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()
	ctx, cancel = chromedp.NewContext(allocCtx)
	defer cancel()

	loginURL := bck.BaseURL + bck.LoginPagePath
	fmt.Printf("Logging into %s...\n", loginURL)

	var cookies []*network.Cookie
	err = chromedp.Run(ctx,
		chromedp.Navigate(loginURL),
		chromedp.WaitVisible(`input[name="customerID"]`, chromedp.ByQuery),
		chromedp.SendKeys(`input[name="customerID"]`, bck.Username, chromedp.ByQuery),
		chromedp.SendKeys(`input[name="password"]`, bck.Password, chromedp.ByQuery),
		chromedp.Submit(`input[name="password"]`, chromedp.ByQuery),
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			cookies, err = network.GetCookies().Do(ctx)
			return err
		}),
	)
	if err != nil {
		log.Fatalf("Browser login failed: %v", err)
	}

	if len(cookies) == 0 {
		log.Fatal("No cookies after login, check credentials")
	}
	fmt.Printf("Session cookies (%d):\n", len(cookies))
	for _, c := range cookies {
		fmt.Printf("  %s=%s; domain=%s; path=%s\n", c.Name, c.Value, c.Domain, c.Path)
	}
}
