package git

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Delimiter used for parsing git log output.
const commitDelimiter = "|||COMMIT|||"

// prettyFormat is the git pretty-format producing delimiter-separated fields:
// hash, short hash, author, email, date, subject, body.
const prettyFormat = "%H" + commitDelimiter +
	"%h" + commitDelimiter +
	"%an" + commitDelimiter +
	"%ae" + commitDelimiter +
	"%aI" + commitDelimiter +
	"%s" + commitDelimiter +
	"%b" + commitDelimiter

// logCommits runs git log with the delimiter pretty-format plus the given
// extra arguments and parses the result.
func (r *Repository) logCommits(ctx context.Context, extra ...string) ([]Commit, error) {
	args := append([]string{"log", "--pretty=format:" + prettyFormat}, extra...)
	output, err := r.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return nil, nil
	}
	return parseCommits(output)
}

// CommitsBetween returns the commits reachable from head but not from base.
func (r *Repository) CommitsBetween(ctx context.Context, base, head string) ([]Commit, error) {
	return r.logCommits(ctx, base+".."+head)
}

// parseCommits parses delimiter-formatted git log output into Commit values.
// The date field comes from %aI, which is strict ISO 8601.
func parseCommits(output string) ([]Commit, error) {
	var commits []Commit

	entries := strings.Split(output, commitDelimiter+"\n")

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		// The last entry may keep its trailing delimiter.
		entry = strings.TrimSuffix(entry, commitDelimiter)

		parts := strings.Split(entry, commitDelimiter)
		if len(parts) < 6 {
			continue
		}

		date, err := time.Parse(time.RFC3339, parts[4])
		if err != nil {
			return nil, fmt.Errorf("parsing date of commit %s: %w", parts[1], err)
		}

		commit := Commit{
			Hash:        parts[0],
			ShortHash:   parts[1],
			Author:      parts[2],
			AuthorEmail: parts[3],
			Date:        date,
			Subject:     parts[5],
		}

		if len(parts) > 6 {
			commit.Body = strings.TrimSpace(parts[6])
		}

		commits = append(commits, commit)
	}

	return commits, nil
}
