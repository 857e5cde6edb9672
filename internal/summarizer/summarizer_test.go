package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitsumm/gitsumm/internal/provider/mock"
)

// fakeSource records calls and returns canned git text.
type fakeSource struct {
	recentN      int
	recentBranch string
	data         string
	err          error
}

func (f *fakeSource) RecentLog(ctx context.Context, n int, branch string) (string, error) {
	f.recentN = n
	f.recentBranch = branch
	return f.data, f.err
}

func (f *fakeSource) CommitDetails(ctx context.Context, ref string) (string, error) {
	return f.data, f.err
}

func (f *fakeSource) Compare(ctx context.Context, base, head string) (string, error) {
	return f.data, f.err
}

func (f *fakeSource) LogBetween(ctx context.Context, since, until, branch string) (string, error) {
	return f.data, f.err
}

func TestRecentCommitsPassesCountAndBranch(t *testing.T) {
	src := &fakeSource{data: "abc1234 Fix parser\n"}
	p := mock.New()
	s := New(src, p)

	out, err := s.RecentCommits(context.Background(), 10, "develop")
	require.NoError(t, err)
	assert.Equal(t, "Mock summary of changes", out)

	assert.Equal(t, 10, src.recentN)
	assert.Equal(t, "develop", src.recentBranch)
}

func TestPromptContainsGitData(t *testing.T) {
	src := &fakeSource{data: "abc1234 Fix parser\n"}
	p := mock.New()
	s := New(src, p)

	_, err := s.Commit(context.Background(), "abc1234")
	require.NoError(t, err)

	require.Len(t, p.Prompts, 1)
	assert.Contains(t, p.Prompts[0], "abc1234 Fix parser")
	assert.Contains(t, p.Prompts[0], "summarize the following git repository changes")
}

func TestEmptyGitDataSkipsProvider(t *testing.T) {
	src := &fakeSource{data: ""}
	p := mock.New()
	s := New(src, p)

	out, err := s.RecentCommits(context.Background(), 5, "")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, p.Prompts, "provider must not be called for empty git data")
}

func TestSourceErrorPropagates(t *testing.T) {
	src := &fakeSource{err: errors.New("ref not found")}
	p := mock.New()
	s := New(src, p)

	_, err := s.CompareBranches(context.Background(), "main", "feature")
	require.Error(t, err)
	assert.Empty(t, p.Prompts)
}

func TestProviderErrorPropagates(t *testing.T) {
	src := &fakeSource{data: "some log"}
	p := mock.New()
	p.GenerateFunc = func(ctx context.Context, prompt string) (string, error) {
		return "", errors.New("backend down")
	}
	s := New(src, p)

	_, err := s.TimeRange(context.Background(), "2026-01-01", "2026-02-01", "")
	require.Error(t, err)
}

func TestTruncateLongGitData(t *testing.T) {
	line := strings.Repeat("x", 100) + "\n"
	big := strings.Repeat(line, 1000) // ~100KB

	prompt := BuildPrompt(big)
	assert.Less(t, len(prompt), len(big), "prompt should be shorter than raw data")
	assert.Contains(t, prompt, "truncated")

	small := "just a little log\n"
	assert.NotContains(t, BuildPrompt(small), "truncated")
}
