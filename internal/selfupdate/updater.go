// Package selfupdate checks GitHub releases for a newer pathwise version.
package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var ErrDevBuild = errors.New("cannot check updates for a development build")

const (
	defaultOwner      = "abhisek"
	defaultRepo       = "pathwise"
	defaultAPIBaseURL = "https://api.github.com"
)

// Checker queries the GitHub releases API.
type Checker struct {
	owner      string
	repo       string
	apiBaseURL string
	httpClient *http.Client
}

// NewChecker creates a checker against the canonical release repo.
func NewChecker() *Checker {
	return &Checker{
		owner:      defaultOwner,
		repo:       defaultRepo,
		apiBaseURL: defaultAPIBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewCheckerForRepo creates a checker against a specific repo and API base.
// Used by tests to point at a stub server.
func NewCheckerForRepo(owner, repo, apiBaseURL string) *Checker {
	c := NewChecker()
	c.owner = owner
	c.repo = repo
	c.apiBaseURL = strings.TrimRight(apiBaseURL, "/")
	return c
}

// CheckResult describes the outcome of an update check.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it with the running
// version. Development builds can't be meaningfully compared.
func (c *Checker) Check(ctx context.Context, currentVersion string) (*CheckResult, error) {
	if currentVersion == "(devel)" || currentVersion == "" {
		return nil, ErrDevBuild
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch latest release: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release response: %w", err)
	}

	latest := canonical(release.TagName)
	current := canonical(currentVersion)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("invalid release tag: %q", release.TagName)
	}

	return &CheckResult{
		CurrentVersion:  currentVersion,
		LatestVersion:   release.TagName,
		UpdateAvailable: semver.IsValid(current) && semver.Compare(latest, current) > 0,
		ReleaseURL:      release.HTMLURL,
	}, nil
}

// canonical ensures the "v" prefix semver.Compare expects.
func canonical(version string) string {
	if version == "" {
		return version
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}
