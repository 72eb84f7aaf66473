package updater

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/go-github/v57/github"
	goversion "github.com/hashicorp/go-version"
	update "github.com/inconshreveable/go-update"
	"github.com/sirupsen/logrus"
)

// Updater checks GitHub releases for a newer build and swaps the
// running binary in place.
type Updater struct {
	owner   string
	repo    string
	current string
	gh      *github.Client
	rest    *resty.Client
}

func NewUpdater(owner, repo, currentVersion string) *Updater {
	return &Updater{
		owner:   owner,
		repo:    repo,
		current: currentVersion,
		gh:      github.NewClient(nil),
		rest:    resty.New(),
	}
}

// CheckForUpdate returns the latest release if it is newer than the
// running version, nil when already up to date. A development build
// has no comparable version and never reports an update.
func (u *Updater) CheckForUpdate(ctx context.Context) (*github.RepositoryRelease, error) {
	current, err := goversion.NewVersion(strings.TrimPrefix(u.current, "v"))
	if err != nil {
		logrus.WithField("version", u.current).Debugln("Not a release build, skipping update check")
		return nil, nil
	}

	release, _, err := u.gh.Repositories.GetLatestRelease(ctx, u.owner, u.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}

	latest, err := goversion.NewVersion(strings.TrimPrefix(release.GetTagName(), "v"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse release tag %q: %w", release.GetTagName(), err)
	}

	if latest.LessThanOrEqual(current) {
		return nil, nil
	}

	return release, nil
}

// Apply downloads the release asset for this platform and replaces the
// running executable.
func (u *Updater) Apply(ctx context.Context, release *github.RepositoryRelease) error {
	asset, err := selectAsset(release)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"asset": asset.GetName(),
		"tag":   release.GetTagName(),
	}).Debugln("Downloading release asset")

	res, err := u.rest.R().
		SetContext(ctx).
		Get(asset.GetBrowserDownloadURL())
	if err != nil {
		return fmt.Errorf("failed to download release asset: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("failed to download release asset: status %d", res.StatusCode())
	}

	if err := update.Apply(bytes.NewReader(res.Body()), update.Options{}); err != nil {
		if rollbackErr := update.RollbackError(err); rollbackErr != nil {
			return fmt.Errorf("failed to apply update and rollback failed: %w", rollbackErr)
		}
		return fmt.Errorf("failed to apply update: %w", err)
	}

	return nil
}

// selectAsset picks the release asset matching this OS and
// architecture by name.
func selectAsset(release *github.RepositoryRelease) (*github.ReleaseAsset, error) {
	for _, asset := range release.Assets {
		name := strings.ToLower(asset.GetName())
		if strings.Contains(name, runtime.GOOS) && strings.Contains(name, runtime.GOARCH) {
			return asset, nil
		}
	}
	return nil, fmt.Errorf("no release asset for %s/%s", runtime.GOOS, runtime.GOARCH)
}
