// Package github resolves pull request metadata through the gh CLI.
// Authentication is the caller's concern; gh must already be logged in.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	prwterrors "github.com/prwt/prwt/internal/errors"
	prwtexec "github.com/prwt/prwt/internal/exec"
)

// PRMetadata holds the fields prwt needs from a pull request.
type PRMetadata struct {
	Number      int
	HeadRefName string
	HeadOwner   string
	HeadRepo    string
	BaseRefName string
}

// PRSummary is one row of `gh pr list`, used by the interactive picker.
type PRSummary struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	HeadRefName string `json:"headRefName"`
}

// Client runs gh commands in a repository directory.
type Client struct {
	dir       string
	commander prwtexec.Commander
}

// NewClient creates a Client for the repository at dir.
// If commander is nil, a RealCommander is used.
func NewClient(dir string, commander prwtexec.Commander) *Client {
	if commander == nil {
		commander = &prwtexec.RealCommander{}
	}
	return &Client{dir: dir, commander: commander}
}

// ViewPR fetches head branch, head repository owner/name, and base branch
// for the given PR number. A field that is absent, null, or empty in the gh
// response fails with ErrMetadataParseFailed naming the field.
func (c *Client) ViewPR(ctx context.Context, number int) (*PRMetadata, error) {
	output, err := c.commander.Run(ctx, c.dir, "gh", "pr", "view", strconv.Itoa(number),
		"--json", "headRefName,headRepositoryOwner,headRepository,baseRefName")
	if err != nil {
		return nil, fmt.Errorf("%w: PR #%d: %v", prwterrors.ErrPRFetchFailed, number, err)
	}

	// Pointer fields distinguish "absent or null" from "present"; the
	// emptiness check below then treats all three failure shapes the same.
	var raw struct {
		HeadRefName string `json:"headRefName"`
		BaseRefName string `json:"baseRefName"`
		HeadOwner   *struct {
			Login string `json:"login"`
		} `json:"headRepositoryOwner"`
		HeadRepo *struct {
			Name string `json:"name"`
		} `json:"headRepository"`
	}
	if err := json.Unmarshal(output, &raw); err != nil {
		return nil, fmt.Errorf("%w: decoding gh output: %v", prwterrors.ErrMetadataParseFailed, err)
	}

	meta := &PRMetadata{
		Number:      number,
		HeadRefName: raw.HeadRefName,
		BaseRefName: raw.BaseRefName,
	}
	if raw.HeadOwner != nil {
		meta.HeadOwner = raw.HeadOwner.Login
	}
	if raw.HeadRepo != nil {
		meta.HeadRepo = raw.HeadRepo.Name
	}

	required := []struct {
		field string
		value string
	}{
		{"headRefName", meta.HeadRefName},
		{"headRepositoryOwner.login", meta.HeadOwner},
		{"headRepository.name", meta.HeadRepo},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%w: field %s missing or null", prwterrors.ErrMetadataParseFailed, r.field)
		}
	}

	return meta, nil
}

// ListOpenPRs returns open PRs of the current repository for the picker.
func (c *Client) ListOpenPRs(ctx context.Context) ([]PRSummary, error) {
	output, err := c.commander.Run(ctx, c.dir, "gh", "pr", "list",
		"--state", "open",
		"--json", "number,title,headRefName",
		"--limit", "50")
	if err != nil {
		return nil, fmt.Errorf("%w: listing open PRs: %v", prwterrors.ErrPRFetchFailed, err)
	}

	var prs []PRSummary
	if err := json.Unmarshal(output, &prs); err != nil {
		return nil, fmt.Errorf("%w: decoding gh output: %v", prwterrors.ErrMetadataParseFailed, err)
	}

	return prs, nil
}
