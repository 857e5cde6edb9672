package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNotARepository is returned when the path is not a git repository.
var ErrNotARepository = errors.New("not a git repository")

// CommandError reports a git invocation that failed: non-zero exit, missing
// ref, missing repository, or git itself not being runnable.
type CommandError struct {
	// Args are the git arguments that were run.
	Args []string

	// Stderr is the trimmed stderr output, if any.
	Stderr string

	// Err is the underlying execution error.
	Err error
}

func (e *CommandError) Error() string {
	msg := e.Stderr
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("git %s: %s", e.Args[0], msg)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Repository provides operations on a git repository.
type Repository struct {
	dir string
}

// NewRepository creates a Repository rooted at dir, or the current working
// directory when dir is empty. Returns ErrNotARepository if the directory is
// not inside a git repository.
func NewRepository(dir string) (*Repository, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	r := &Repository{dir: dir}
	if _, err := r.run(context.Background(), "rev-parse", "--git-dir"); err != nil {
		return nil, ErrNotARepository
	}

	return r, nil
}

// Dir returns the repository working directory.
func (r *Repository) Dir() string {
	return r.dir
}

// run executes a git command and returns its trimmed output.
func (r *Repository) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// CurrentBranch returns the name of the checked-out branch.
func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := r.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("getting current branch: %w", err)
	}
	return branch, nil
}

// ValidateRef checks that a branch or ref exists, suggesting similarly named
// branches when it does not.
func (r *Repository) ValidateRef(ctx context.Context, ref string) error {
	if _, err := r.run(ctx, "rev-parse", "--verify", ref); err != nil {
		branches, _ := r.listBranches(ctx)
		if suggestions := findSimilar(ref, branches); len(suggestions) > 0 {
			return fmt.Errorf("ref %q not found; did you mean: %s", ref, strings.Join(suggestions, ", "))
		}
		return fmt.Errorf("ref %q not found", ref)
	}
	return nil
}

// listBranches returns all local branch names.
func (r *Repository) listBranches(ctx context.Context) ([]string, error) {
	output, err := r.run(ctx, "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return nil, nil
	}
	return strings.Split(output, "\n"), nil
}

// findSimilar finds branch names similar to the target.
func findSimilar(target string, candidates []string) []string {
	target = strings.ToLower(target)
	var similar []string

	for _, c := range candidates {
		lower := strings.ToLower(c)
		if strings.Contains(lower, target) || strings.Contains(target, lower) {
			similar = append(similar, c)
		}
	}

	if len(similar) > 3 {
		similar = similar[:3]
	}

	return similar
}
