package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	domainErrors "github.com/thomas-vilte/devmoji/internal/errors"
	"github.com/thomas-vilte/devmoji/internal/logger"
)

// DefaultEvaluationTimeout bounds a single script config evaluation.
const DefaultEvaluationTimeout = 10 * time.Second

// Evaluator loads a script config module and returns its default export as JSON.
type Evaluator interface {
	Evaluate(ctx context.Context, path string) ([]byte, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, path string) ([]byte, error)

func (f EvaluatorFunc) Evaluate(ctx context.Context, path string) ([]byte, error) {
	return f(ctx, path)
}

// NodeEvaluator evaluates configs with Node.js. TypeScript configs are tried
// with tsx first, then node --import tsx, then node --experimental-strip-types.
type NodeEvaluator struct {
	Node     string
	TSX      string
	Timeout  time.Duration
	UseCache bool
}

func NewNodeEvaluator() *NodeEvaluator {
	return &NodeEvaluator{
		Node:     "node",
		TSX:      "tsx",
		Timeout:  DefaultEvaluationTimeout,
		UseCache: true,
	}
}

func (e *NodeEvaluator) Evaluate(ctx context.Context, path string) ([]byte, error) {
	log := logger.FromContext(ctx)

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", path)
	}

	source, err := os.ReadFile(abs)
	if err != nil {
		return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", abs)
	}

	cache, hash := e.openCache(ctx, abs, source)
	if cache != nil {
		cached, found, err := cache.Get(hash)
		if err != nil {
			log.Debug("config cache read failed", "path", abs, "error", err)
		} else if found {
			log.Debug("config cache hit", "path", abs, "hash", hash[:12])
			return cached, nil
		}
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultEvaluationTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	var lastErr error
	for _, args := range e.attempts(abs) {
		stdout, stderr, runErr := run(ctx, filepath.Dir(abs), args)

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, domainErrors.ErrConfigTimeout.
				WithError(ctx.Err()).
				WithContext("path", abs).
				WithContext("timeout", timeout.String())
		}

		if runErr != nil {
			log.Debug("config evaluation attempt failed",
				"runtime", args[0],
				"error", runErr,
				"stderr", strings.TrimSpace(stderr))
			lastErr = domainErrors.ErrConfigEvaluation.
				WithError(runErr).
				WithContext("path", abs).
				WithContext("stderr", strings.TrimSpace(stderr))
			continue
		}

		out := bytes.TrimSpace(stdout)
		if !json.Valid(out) {
			return nil, domainErrors.ErrConfigDecode.
				WithError(fmt.Errorf("evaluator returned invalid JSON")).
				WithContext("path", abs)
		}

		log.Debug("config evaluated",
			"path", abs,
			"runtime", args[0],
			"duration_ms", time.Since(start).Milliseconds())

		if cache != nil {
			if err := cache.Set(hash, abs, out); err != nil {
				logger.Warn(ctx, "config cache write failed", "path", abs, "error", err)
			}
		}
		return out, nil
	}

	return nil, lastErr
}

func (e *NodeEvaluator) openCache(ctx context.Context, abs string, source []byte) (*Cache, string) {
	if !e.UseCache {
		return nil, ""
	}
	dir, ok := FindCacheDir(abs)
	if !ok {
		return nil, ""
	}
	cache, err := NewCache(dir, defaultCacheTTL)
	if err != nil {
		logger.Debug(ctx, "config cache unavailable", "dir", dir, "error", err)
		return nil, ""
	}
	return cache, cache.GenerateHash(source)
}

func (e *NodeEvaluator) attempts(abs string) [][]string {
	node := e.Node
	if node == "" {
		node = "node"
	}
	tsx := e.TSX
	if tsx == "" {
		tsx = "tsx"
	}

	script := loaderScript(abs)
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".ts", ".mts":
		return [][]string{
			{tsx, "--input-type=module", "--eval", script},
			{node, "--import", "tsx", "--input-type=module", "-e", script},
			{node, "--experimental-strip-types", "--disable-warning=ExperimentalWarning", "--input-type=module", "-e", script},
		}
	default:
		return [][]string{
			{node, "--input-type=module", "-e", script},
		}
	}
}

func run(ctx context.Context, dir string, args []string) ([]byte, string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	return stdout.Bytes(), stderr.String(), err
}

// loaderScript imports the config module and prints its default export as JSON.
func loaderScript(abs string) string {
	return fmt.Sprintf(
		`import(%q).then(m => { const c = m.default ?? m; process.stdout.write(JSON.stringify(c)); }).catch(e => { process.stderr.write(String(e && e.message ? e.message : e)); process.exit(1); })`,
		fileURL(abs),
	)
}

func fileURL(abs string) string {
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		// Windows drive paths: C:/x -> /C:/x
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
