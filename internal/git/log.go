package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// gitDateFormat is passed to git for human-readable commit dates.
const gitDateFormat = "--date=format:%Y-%m-%d %H:%M:%S"

// RecentLog returns the last n commits with per-file stats as plain text.
// When branch is non-empty it is validated and logged instead of HEAD.
func (r *Repository) RecentLog(ctx context.Context, n int, branch string) (string, error) {
	args := []string{"log", "-n", strconv.Itoa(n), "--stat", gitDateFormat}
	if branch != "" {
		if err := r.ValidateRef(ctx, branch); err != nil {
			return "", err
		}
		args = append(args, branch)
	}

	output, err := r.run(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("getting recent commits: %w", err)
	}
	return output, nil
}

// CommitDetails returns the metadata, stat, and patch for a single commit.
func (r *Repository) CommitDetails(ctx context.Context, ref string) (string, error) {
	output, err := r.run(ctx, "show", "--stat", "--patch", gitDateFormat, ref)
	if err != nil {
		return "", fmt.Errorf("getting commit %s: %w", ref, err)
	}
	return output, nil
}

// Compare returns a textual comparison of two refs: commits in base..head
// followed by the diff stat between them. An empty string means head has no
// commits beyond base.
func (r *Repository) Compare(ctx context.Context, base, head string) (string, error) {
	if err := r.ValidateRef(ctx, base); err != nil {
		return "", err
	}
	if err := r.ValidateRef(ctx, head); err != nil {
		return "", err
	}

	commits, err := r.CommitsBetween(ctx, base, head)
	if err != nil {
		return "", fmt.Errorf("comparing %s and %s: %w", base, head, err)
	}
	if len(commits) == 0 {
		return "", nil
	}

	stat, err := r.run(ctx, "diff", "--stat", base+".."+head)
	if err != nil {
		return "", fmt.Errorf("getting diff stat: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Branch comparison between %s and %s:\n\n", base, head)
	fmt.Fprintf(&b, "Number of commits ahead: %d\n\n", len(commits))
	b.WriteString("Commits:\n")
	for _, c := range commits {
		fmt.Fprintf(&b, "%s %s\n", c.ShortHash, c.Subject)
	}
	b.WriteString("\nDiff stats:\n")
	b.WriteString(stat)

	return b.String(), nil
}

// LogBetween returns the commits authored between two YYYY-MM-DD dates as
// plain text. An empty string means no commits fell in the range.
func (r *Repository) LogBetween(ctx context.Context, since, until, branch string) (string, error) {
	for _, d := range []string{since, until} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return "", fmt.Errorf("invalid date %q: use YYYY-MM-DD", d)
		}
	}

	extra := []string{"--since", since, "--until", until}
	if branch != "" {
		if err := r.ValidateRef(ctx, branch); err != nil {
			return "", err
		}
		extra = append(extra, branch)
	}

	commits, err := r.logCommits(ctx, extra...)
	if err != nil {
		return "", fmt.Errorf("getting commits between %s and %s: %w", since, until, err)
	}
	if len(commits) == 0 {
		return "", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Commits between %s and %s:\n\n", since, until)
	b.WriteString(FormatLog(commits))

	return b.String(), nil
}
