package github

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prwterrors "github.com/prwt/prwt/internal/errors"
	prwtexec "github.com/prwt/prwt/internal/exec"
)

var viewArgs = []string{"pr", "view", "123", "--json", "headRefName,headRepositoryOwner,headRepository,baseRefName"}

func TestViewPR(t *testing.T) {
	mock := prwtexec.NewMockCommander()
	mock.SetResponse("gh", viewArgs, []byte(
		`{"headRefName":"feature-x","baseRefName":"main",`+
			`"headRepositoryOwner":{"login":"alice"},"headRepository":{"name":"widget"}}`), nil)

	client := NewClient("/repo", mock)
	meta, err := client.ViewPR(context.Background(), 123)

	require.NoError(t, err)
	assert.Equal(t, 123, meta.Number)
	assert.Equal(t, "feature-x", meta.HeadRefName)
	assert.Equal(t, "alice", meta.HeadOwner)
	assert.Equal(t, "widget", meta.HeadRepo)
	assert.Equal(t, "main", meta.BaseRefName)

	call := mock.LastCall()
	require.NotNil(t, call)
	assert.Equal(t, "/repo", call.Dir)
	assert.Equal(t, "gh", call.Command)
}

func TestViewPR_CommandFails(t *testing.T) {
	mock := prwtexec.NewMockCommander()
	mock.SetResponse("gh", viewArgs, nil, fmt.Errorf("exit status 1: no pull requests found"))

	client := NewClient("/repo", mock)
	_, err := client.ViewPR(context.Background(), 123)

	assert.True(t, errors.Is(err, prwterrors.ErrPRFetchFailed))
	assert.Contains(t, err.Error(), "#123")
}

func TestViewPR_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			"absent owner",
			`{"headRefName":"feature-x","baseRefName":"main","headRepository":{"name":"widget"}}`,
			"headRepositoryOwner.login",
		},
		{
			"null repository",
			`{"headRefName":"feature-x","baseRefName":"main","headRepositoryOwner":{"login":"alice"},"headRepository":null}`,
			"headRepository.name",
		},
		{
			"empty branch",
			`{"headRefName":"","baseRefName":"main","headRepositoryOwner":{"login":"alice"},"headRepository":{"name":"widget"}}`,
			"headRefName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := prwtexec.NewMockCommander()
			mock.SetResponse("gh", viewArgs, []byte(tt.body), nil)

			_, err := NewClient("/repo", mock).ViewPR(context.Background(), 123)

			assert.True(t, errors.Is(err, prwterrors.ErrMetadataParseFailed))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestViewPR_InvalidJSON(t *testing.T) {
	mock := prwtexec.NewMockCommander()
	mock.SetResponse("gh", viewArgs, []byte("not json"), nil)

	_, err := NewClient("/repo", mock).ViewPR(context.Background(), 123)
	assert.True(t, errors.Is(err, prwterrors.ErrMetadataParseFailed))
}

func TestListOpenPRs(t *testing.T) {
	mock := prwtexec.NewMockCommander()
	mock.SetResponse("gh",
		[]string{"pr", "list", "--state", "open", "--json", "number,title,headRefName", "--limit", "50"},
		[]byte(`[{"number":7,"title":"Fix crash","headRefName":"fix-crash"}]`), nil)

	prs, err := NewClient("/repo", mock).ListOpenPRs(context.Background())

	require.NoError(t, err)
	require.Len(t, prs, 1)
	assert.Equal(t, 7, prs[0].Number)
	assert.Equal(t, "Fix crash", prs[0].Title)
	assert.Equal(t, "fix-crash", prs[0].HeadRefName)
}

func TestCheckDependencies(t *testing.T) {
	original := prwtexec.LookPath
	defer func() { prwtexec.LookPath = original }()

	prwtexec.LookPath = func(name string) (string, error) {
		return "/usr/bin/" + name, nil
	}
	assert.NoError(t, CheckDependencies())

	prwtexec.LookPath = func(name string) (string, error) {
		if name == "gh" {
			return "", fmt.Errorf("not found")
		}
		return "/usr/bin/" + name, nil
	}
	err := CheckDependencies()
	assert.True(t, errors.Is(err, prwterrors.ErrMissingDependency))
	assert.Contains(t, err.Error(), "gh")
	assert.NotContains(t, err.Error(), "git")
}

func TestCheckDependencies_AllMissing(t *testing.T) {
	original := prwtexec.LookPath
	defer func() { prwtexec.LookPath = original }()

	prwtexec.LookPath = func(name string) (string, error) {
		return "", fmt.Errorf("not found")
	}

	err := CheckDependencies()
	assert.True(t, errors.Is(err, prwterrors.ErrMissingDependency))
	assert.Contains(t, err.Error(), "gh")
	assert.Contains(t, err.Error(), "git")
}
