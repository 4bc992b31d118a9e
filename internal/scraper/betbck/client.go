// Package betbck logs into BetBCK, searches for a game and parses its
// full-game board from the search results.
package betbck

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/oddscout/oddscout/internal/pkg/config"
	"github.com/oddscout/oddscout/internal/pkg/models"
)

type Scraper struct {
	cfg *config.BetbckConfig
}

func NewScraper(cfg *config.BetbckConfig) *Scraper {
	return &Scraper{cfg: cfg}
}

// session is one logged-in browsing session. BetBCK invalidates cookies
// aggressively, so every scrape starts fresh.
type session struct {
	cfg        *config.BetbckConfig
	httpClient *http.Client

	wagerNumber    string
	sportSelection string
}

// FetchGame runs the whole flow for one alerted pairing: login, search,
// parse. searchTerm overrides the derived search keyword when non-empty.
func (s *Scraper) FetchGame(ctx context.Context, homeTeam, awayTeam, searchTerm string) (*models.BetbckGame, error) {
	sess, err := s.newSession(ctx)
	if err != nil {
		return nil, err
	}

	if searchTerm == "" {
		searchTerm = DeriveSearchTerm(homeTeam, awayTeam)
	}
	slog.Debug("Searching betbck", "query", searchTerm, "home", homeTeam, "away", awayTeam)

	resultsHTML, err := sess.search(ctx, searchTerm)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", searchTerm, err)
	}

	game, err := ParseGame(resultsHTML, homeTeam, awayTeam)
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (s *Scraper) newSession(ctx context.Context) (*session, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	sess := &session{
		cfg:        s.cfg,
		httpClient: &http.Client{Timeout: s.cfg.Timeout, Jar: jar},
	}
	if err := sess.login(ctx); err != nil {
		return nil, fmt.Errorf("betbck login: %w", err)
	}
	if err := sess.loadSearchPrerequisites(ctx); err != nil {
		return nil, fmt.Errorf("betbck search prerequisites: %w", err)
	}
	return sess, nil
}

func (s *session) login(ctx context.Context) error {
	// Landing on the login page first sets the session cookie the login
	// POST is validated against.
	if _, err := s.get(ctx, s.cfg.BaseURL+s.cfg.LoginPagePath); err != nil {
		return err
	}

	form := url.Values{
		"customerID": {s.cfg.Username},
		"password":   {s.cfg.Password},
		"action":     {"Login"},
	}
	resp, body, err := s.postForm(ctx, s.cfg.BaseURL+s.cfg.LoginPath, form)
	if err != nil {
		return err
	}

	finalURL := resp.Request.URL.String()
	loggedIn := strings.Contains(finalURL, "StraightLoginSportSelection.php") ||
		strings.Contains(finalURL, "MainMenu.php")
	if !loggedIn || !strings.Contains(body, "Logout") {
		return fmt.Errorf("login rejected, landed on %s", finalURL)
	}
	slog.Debug("Betbck login ok")
	return nil
}

// loadSearchPrerequisites scrapes the hidden form fields the search endpoint
// requires from the main page.
func (s *session) loadSearchPrerequisites(ctx context.Context) error {
	body, err := s.get(ctx, s.cfg.BaseURL+s.cfg.MainPagePath)
	if err != nil {
		return err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return err
	}

	s.wagerNumber, _ = doc.Find("input[name='inetWagerNumber']").First().Attr("value")
	if s.wagerNumber == "" {
		return fmt.Errorf("inetWagerNumber not found on main page")
	}
	s.sportSelection, _ = doc.Find("input[name='inetSportSelection']").First().Attr("value")
	if s.sportSelection == "" {
		s.sportSelection = "sport"
	}
	return nil
}

func (s *session) search(ctx context.Context, query string) (string, error) {
	form := url.Values{
		"action":             {"Search"},
		"keyword_search":     {query},
		"inetWagerNumber":    {s.wagerNumber},
		"inetSportSelection": {s.sportSelection},
	}
	resp, body, err := s.postForm(ctx, s.cfg.BaseURL+s.cfg.SearchPath, form)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search status %d", resp.StatusCode)
	}
	return body, nil
}

func (s *session) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	s.setHeaders(req)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get %s: status %d", rawURL, resp.StatusCode)
	}
	return string(body), nil
}

func (s *session) postForm(ctx context.Context, rawURL string, form url.Values) (*http.Response, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, "", err
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return resp, string(body), nil
}

func (s *session) setHeaders(req *http.Request) {
	for k, v := range s.cfg.Headers {
		req.Header.Set(k, v)
	}
}
