// Package hook applies the rewriter to the commit message file git hands to
// the prepare-commit-msg and commit-msg hooks.
package hook

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	domainErrors "github.com/thomas-vilte/devmoji/internal/errors"
	"github.com/thomas-vilte/devmoji/internal/logger"
)

// CommitMessageFile is the name git uses for the message being edited.
const CommitMessageFile = "COMMIT_EDITMSG"

// Rewriter rewrites a full commit message.
type Rewriter interface {
	Rewrite(message string) string
}

// RewriterFunc adapts a plain function to Rewriter.
type RewriterFunc func(message string) string

func (f RewriterFunc) Rewrite(message string) string {
	return f(message)
}

// Result describes one Apply call.
type Result struct {
	Path    string
	After   string
	Changed bool
}

// FirstLine returns the rewritten header.
func (r Result) FirstLine() string {
	line, _, _ := strings.Cut(r.After, "\n")
	return strings.TrimSuffix(line, "\r")
}

// Adapter rewrites commit message files in place.
type Adapter struct {
	rewriter Rewriter
}

func NewAdapter(rewriter Rewriter) *Adapter {
	return &Adapter{rewriter: rewriter}
}

// Apply reads the message at path, rewrites it and writes it back. The file
// is only touched when the content changed.
func (a *Adapter) Apply(ctx context.Context, path string) (Result, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, domainErrors.ErrReadMessageFile.WithError(err).WithContext("path", path)
	}

	before := string(data)
	after := a.rewriter.Rewrite(before)
	res := Result{
		Path:    path,
		After:   after,
		Changed: before != after,
	}

	if !res.Changed {
		log.Debug("commit message already up to date", "path", path)
		return res, nil
	}

	if err := writeMessage(path, []byte(after)); err != nil {
		return Result{}, domainErrors.ErrWriteMessageFile.WithError(err).WithContext("path", path)
	}

	log.Debug("commit message rewritten", "path", path, "bytes", len(after))
	return res, nil
}

// FindCommitMessageFile locates COMMIT_EDITMSG for the repository containing
// startDir. Worktrees and submodules, where .git is a file holding a
// "gitdir:" pointer, are followed.
func FindCommitMessageFile(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", domainErrors.ErrNotInGitRepo.WithError(err)
	}

	for {
		gitPath := filepath.Join(dir, ".git")
		info, err := os.Stat(gitPath)
		switch {
		case err == nil && info.IsDir():
			return filepath.Join(gitPath, CommitMessageFile), nil
		case err == nil:
			gitDir, err := readGitDirFile(gitPath)
			if err != nil {
				return "", domainErrors.ErrNotInGitRepo.WithError(err).WithContext("path", gitPath)
			}
			return filepath.Join(gitDir, CommitMessageFile), nil
		case !errors.Is(err, os.ErrNotExist):
			return "", domainErrors.ErrNotInGitRepo.WithError(err).WithContext("path", gitPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", domainErrors.ErrNotInGitRepo.WithContext("path", startDir)
		}
		dir = parent
	}
}

func readGitDirFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if rest, ok := strings.CutPrefix(line, "gitdir:"); ok {
			gitDir := strings.TrimSpace(rest)
			if !filepath.IsAbs(gitDir) {
				gitDir = filepath.Join(filepath.Dir(path), gitDir)
			}
			return filepath.Clean(gitDir), nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", errors.New("no gitdir line in " + path)
}
