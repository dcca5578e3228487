package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"idtab/internal/diag"
	"idtab/internal/trace"
)

const configFileName = "idtab.toml"

type projectConfig struct {
	Grammar grammarConfig `toml:"grammar"`
	Output  outputConfig  `toml:"output"`
	Trace   traceConfig   `toml:"trace"`
	Verify  verifyConfig  `toml:"verify"`
}

type grammarConfig struct {
	Files []string `toml:"files"`
}

type outputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type traceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
}

type verifyConfig struct {
	Snapshot       string `toml:"snapshot"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

// projectSettings is a loaded idtab.toml. Paths inside it are already
// resolved against Root.
type projectSettings struct {
	Path   string
	Root   string
	Config projectConfig
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadSettings reads explicit, or the nearest idtab.toml above startDir when
// explicit is empty. A missing file is not an error: the zero settings are
// returned with ok == false.
func loadSettings(explicit, startDir string, r diag.Reporter) (*projectSettings, bool, error) {
	path := explicit
	if path == "" {
		found, ok, err := findConfig(startDir)
		if err != nil || !ok {
			return &projectSettings{}, false, err
		}
		path = found
	}
	cfg, err := loadProjectConfig(path, r)
	if err != nil {
		return nil, true, err
	}
	root := filepath.Dir(path)
	for i, f := range cfg.Grammar.Files {
		cfg.Grammar.Files[i] = resolveFrom(root, f)
	}
	cfg.Verify.Snapshot = resolveFrom(root, cfg.Verify.Snapshot)
	if cfg.Trace.Output != "-" {
		cfg.Trace.Output = resolveFrom(root, cfg.Trace.Output)
	}
	return &projectSettings{Path: path, Root: root, Config: cfg}, true, nil
}

func resolveFrom(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, filepath.FromSlash(p))
}

// loadProjectConfig decodes path and reports every invalid value as CFG5001.
// The returned error is non-nil when the file cannot be parsed or any value
// is invalid.
func loadProjectConfig(path string, r diag.Reporter) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	cr := &diag.CountingReporter{Next: r}
	pos := diag.Pos{File: path}
	invalid := func(key, value, want string) {
		diag.ReportError(cr, diag.CfgInvalidValue, pos,
			fmt.Sprintf("%s = %q (expected %s)", key, value, want)).Emit()
	}

	for _, key := range meta.Undecoded() {
		diag.ReportWarning(cr, diag.CfgInvalidValue, pos, fmt.Sprintf("unknown key %s", key)).Emit()
	}
	if meta.IsDefined("output", "format") && !validTableFormat(cfg.Output.Format) {
		invalid("output.format", cfg.Output.Format, "pretty|json|msgpack")
	}
	if meta.IsDefined("output", "color") && !validColor(cfg.Output.Color) {
		invalid("output.color", cfg.Output.Color, "auto|on|off")
	}
	if meta.IsDefined("trace", "level") {
		if _, err := trace.ParseLevel(cfg.Trace.Level); err != nil {
			invalid("trace.level", cfg.Trace.Level, "off|error|phase|detail|debug")
		}
	}
	if cfg.Verify.MaxDiagnostics < 0 {
		invalid("verify.max_diagnostics", fmt.Sprint(cfg.Verify.MaxDiagnostics), "a non-negative number")
	}
	for _, f := range cfg.Grammar.Files {
		if strings.TrimSpace(f) == "" {
			invalid("grammar.files", f, "a file path")
		}
	}
	if cr.Errors > 0 {
		return projectConfig{}, fmt.Errorf("%s: %d invalid value(s)", path, cr.Errors)
	}
	return cfg, nil
}

func validTableFormat(s string) bool {
	switch strings.ToLower(s) {
	case "pretty", "json", "msgpack":
		return true
	}
	return false
}

func validColor(s string) bool {
	switch strings.ToLower(s) {
	case "auto", "on", "off":
		return true
	}
	return false
}
