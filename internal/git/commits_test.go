package git

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestCommitsBetween(t *testing.T) {
	dir := setupTestRepo(t)
	repo, err := NewRepository(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	base, err := repo.CurrentBranch(ctx)
	if err != nil {
		t.Fatal(err)
	}

	runGit(t, dir, "checkout", "-b", "topic")
	writeFile(t, dir, "one.txt", "1\n")
	runGit(t, dir, "add", "one.txt")
	runGit(t, dir, "commit", "-m", "First topic commit", "-m", "With a body line.")
	writeFile(t, dir, "two.txt", "2\n")
	runGit(t, dir, "add", "two.txt")
	runGit(t, dir, "commit", "-m", "Second topic commit")

	commits, err := repo.CommitsBetween(ctx, base, "topic")
	if err != nil {
		t.Fatalf("CommitsBetween failed: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(commits))
	}

	// Newest first.
	if commits[0].Subject != "Second topic commit" {
		t.Errorf("Subject = %q, want %q", commits[0].Subject, "Second topic commit")
	}
	if commits[1].Body != "With a body line." {
		t.Errorf("Body = %q, want %q", commits[1].Body, "With a body line.")
	}
	for _, c := range commits {
		if c.Hash == "" || c.ShortHash == "" {
			t.Errorf("commit missing hashes: %+v", c)
		}
		if c.Author != "Test User" || c.AuthorEmail != "test@example.com" {
			t.Errorf("unexpected author: %+v", c)
		}
		if c.Date.IsZero() {
			t.Errorf("commit date not parsed: %+v", c)
		}
	}
}

func TestParseCommits(t *testing.T) {
	d := commitDelimiter
	output := "abc123" + d + "abc" + d + "Alice" + d + "alice@example.com" + d +
		"2026-03-01T10:00:00+00:00" + d + "Fix parser" + d + "Longer explanation.\n" + d + "\n" +
		"def456" + d + "def" + d + "Bob" + d + "bob@example.com" + d +
		"2026-02-28T09:30:00+00:00" + d + "Add parser" + d + "" + d

	commits, err := parseCommits(output)
	if err != nil {
		t.Fatalf("parseCommits failed: %v", err)
	}
	if len(commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(commits))
	}

	if commits[0].Subject != "Fix parser" {
		t.Errorf("Subject = %q, want %q", commits[0].Subject, "Fix parser")
	}
	if commits[0].Body != "Longer explanation." {
		t.Errorf("Body = %q, want %q", commits[0].Body, "Longer explanation.")
	}
	if commits[1].Author != "Bob" {
		t.Errorf("Author = %q, want %q", commits[1].Author, "Bob")
	}
	if commits[1].Body != "" {
		t.Errorf("Body = %q, want empty", commits[1].Body)
	}
}

func TestParseCommits_BadDate(t *testing.T) {
	d := commitDelimiter
	output := "abc123" + d + "abc" + d + "Alice" + d + "alice@example.com" + d +
		"not a date" + d + "Fix parser" + d + "" + d

	_, err := parseCommits(output)
	if err == nil {
		t.Fatal("expected error for unparseable date")
	}
	if !strings.Contains(err.Error(), "abc") {
		t.Errorf("error should name the commit, got: %v", err)
	}
}

func TestCommitMessage(t *testing.T) {
	c := &Commit{Subject: "Subject line"}
	if c.Message() != "Subject line" {
		t.Errorf("Message() = %q", c.Message())
	}

	c.Body = "Body text"
	if c.Message() != "Subject line\n\nBody text" {
		t.Errorf("Message() = %q", c.Message())
	}
}

func TestFormatLog(t *testing.T) {
	date := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	commits := []Commit{
		{ShortHash: "abc1234", Subject: "Fix parser", Author: "Alice", AuthorEmail: "alice@example.com", Date: date},
	}

	out := FormatLog(commits)
	want := "abc1234 Fix parser\nAuthor: Alice <alice@example.com>\nDate:   2026-03-01 10:30:00\n\n"
	if out != want {
		t.Errorf("FormatLog() = %q, want %q", out, want)
	}

	if FormatLog(nil) != "" {
		t.Error("FormatLog(nil) should be empty")
	}

	if !strings.HasSuffix(out, "\n\n") {
		t.Error("expected blank line between commit blocks")
	}
}
