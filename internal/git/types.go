// Package git shells out to the git executable to collect commit and diff
// data as prompt-ready text.
package git

import (
	"fmt"
	"strings"
	"time"
)

// Commit represents a git commit with its metadata.
type Commit struct {
	// Hash is the full commit hash.
	Hash string

	// ShortHash is the abbreviated commit hash.
	ShortHash string

	// Author is the commit author name.
	Author string

	// AuthorEmail is the commit author email.
	AuthorEmail string

	// Date is the commit timestamp.
	Date time.Time

	// Subject is the first line of the commit message.
	Subject string

	// Body is the rest of the commit message (after the first line).
	Body string
}

// Message returns the full commit message (subject + body).
func (c *Commit) Message() string {
	if c.Body == "" {
		return c.Subject
	}
	return c.Subject + "\n\n" + c.Body
}

// FormatLog renders commits as a plain-text log listing, one block per
// commit, suitable for inclusion in a summarization prompt.
func FormatLog(commits []Commit) string {
	var b strings.Builder
	for _, c := range commits {
		fmt.Fprintf(&b, "%s %s\n", c.ShortHash, c.Subject)
		fmt.Fprintf(&b, "Author: %s <%s>\n", c.Author, c.AuthorEmail)
		fmt.Fprintf(&b, "Date:   %s\n\n", c.Date.Format("2006-01-02 15:04:05"))
	}
	return b.String()
}
