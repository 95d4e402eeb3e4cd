package git

import "strings"

// NormalizeRemoteURL rewrites a git remote URL into a canonical https form
// so two URLs can be compared byte-for-byte. It strips a trailing ".git"
// and converts ssh-style references to their https equivalent:
//
//	git@github.com:owner/repo.git   -> https://github.com/owner/repo
//	ssh://git@github.com/owner/repo -> https://github.com/owner/repo
//	https://github.com/owner/repo   -> https://github.com/owner/repo
//
// Normalization is idempotent. Case is preserved.
func NormalizeRemoteURL(url string) string {
	u := strings.TrimSpace(url)

	if rest, ok := strings.CutPrefix(u, "ssh://"); ok {
		if i := strings.Index(rest, "@"); i >= 0 {
			rest = rest[i+1:]
		}
		u = "https://" + rest
	} else if !strings.Contains(u, "://") {
		// scp-like syntax: user@host:path
		if at := strings.Index(u, "@"); at >= 0 {
			if colon := strings.Index(u[at:], ":"); colon >= 0 {
				host := u[at+1 : at+colon]
				path := u[at+colon+1:]
				u = "https://" + host + "/" + path
			}
		}
	}

	u = strings.TrimSuffix(u, "/")
	u = strings.TrimSuffix(u, ".git")

	return u
}

// HostOf extracts the host from a normalized remote URL.
// Falls back to github.com when the URL has no recognizable host.
func HostOf(normalizedURL string) string {
	rest, ok := strings.CutPrefix(normalizedURL, "https://")
	if !ok {
		return "github.com"
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "github.com"
	}
	return rest
}
