// Package summarizer turns git history into LLM-generated summaries:
// collect git text, wrap it in the prompt template, invoke the provider.
package summarizer

import (
	"context"

	"github.com/gitsumm/gitsumm/internal/provider"
)

// Source supplies the git text to summarize. *git.Repository implements it;
// tests substitute a fake.
type Source interface {
	// RecentLog returns the last n commits with per-file stats.
	RecentLog(ctx context.Context, n int, branch string) (string, error)

	// CommitDetails returns metadata, stat, and patch for one commit.
	CommitDetails(ctx context.Context, ref string) (string, error)

	// Compare returns a textual comparison of two refs.
	Compare(ctx context.Context, base, head string) (string, error)

	// LogBetween returns commits authored between two YYYY-MM-DD dates.
	LogBetween(ctx context.Context, since, until, branch string) (string, error)
}

// Summarizer generates summaries of git history through an LLM provider.
// An empty summary with a nil error means there was nothing to summarize.
type Summarizer struct {
	source   Source
	provider provider.Provider
}

// New creates a Summarizer over the given git source and provider.
func New(source Source, p provider.Provider) *Summarizer {
	return &Summarizer{source: source, provider: p}
}

// RecentCommits summarizes the last n commits on the given branch
// (the current branch when empty).
func (s *Summarizer) RecentCommits(ctx context.Context, n int, branch string) (string, error) {
	data, err := s.source.RecentLog(ctx, n, branch)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, data)
}

// Commit summarizes a single commit.
func (s *Summarizer) Commit(ctx context.Context, ref string) (string, error) {
	data, err := s.source.CommitDetails(ctx, ref)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, data)
}

// CompareBranches summarizes the commits and diff between two refs.
func (s *Summarizer) CompareBranches(ctx context.Context, base, head string) (string, error) {
	data, err := s.source.Compare(ctx, base, head)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, data)
}

// TimeRange summarizes the commits authored between two dates.
func (s *Summarizer) TimeRange(ctx context.Context, since, until, branch string) (string, error) {
	data, err := s.source.LogBetween(ctx, since, until, branch)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, data)
}

func (s *Summarizer) generate(ctx context.Context, gitData string) (string, error) {
	if gitData == "" {
		return "", nil
	}
	return s.provider.Generate(ctx, BuildPrompt(gitData))
}
