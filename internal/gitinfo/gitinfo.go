// Package gitinfo probes a local git checkout for the information needed to
// derive per-page edit links: the origin remote URL and the current branch.
package gitinfo

import (
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// RepoInfo describes the checkout the renderer runs inside.
type RepoInfo struct {
	RemoteURL string // normalized https URL of the origin remote
	Branch    string // current branch name ("" when detached)
}

// Detect opens the repository containing dir (searching parent directories)
// and reads its origin remote and HEAD branch. Returns an error when dir is
// not inside a git checkout or no origin remote exists.
func Detect(dir string) (*RepoInfo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return nil, fmt.Errorf("origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, fmt.Errorf("origin remote has no URL")
	}

	info := &RepoInfo{RemoteURL: NormalizeRemoteURL(urls[0])}

	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	return info, nil
}

// EditBaseURL builds the base URL for per-page edit links, e.g.
// "https://github.com/org/repo/edit/main". Empty when the remote is not a
// recognizable https-convertible URL.
func (r *RepoInfo) EditBaseURL() string {
	if r == nil || r.RemoteURL == "" {
		return ""
	}
	branch := r.Branch
	if branch == "" {
		branch = "main"
	}
	return r.RemoteURL + "/edit/" + branch
}

// NormalizeRemoteURL converts ssh-style remotes (git@host:org/repo.git) to
// https and strips a trailing ".git".
func NormalizeRemoteURL(raw string) string {
	url := strings.TrimSuffix(raw, ".git")
	if strings.HasPrefix(url, "git@") {
		rest := strings.TrimPrefix(url, "git@")
		if host, path, ok := strings.Cut(rest, ":"); ok {
			return "https://" + host + "/" + path
		}
	}
	if strings.HasPrefix(url, "ssh://git@") {
		return "https://" + strings.TrimPrefix(url, "ssh://git@")
	}
	return url
}
