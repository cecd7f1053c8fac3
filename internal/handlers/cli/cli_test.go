package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/AntonioJCosta/aliases/internal/adapters/aliastemplate"
	"github.com/AntonioJCosta/aliases/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/aliases/internal/adapters/shellscript"
	"github.com/AntonioJCosta/aliases/internal/config"
	"github.com/AntonioJCosta/aliases/internal/core/domain/alias"
	"github.com/AntonioJCosta/aliases/internal/core/ports"
	"github.com/AntonioJCosta/aliases/internal/core/services/aliasexec"
	"github.com/AntonioJCosta/aliases/internal/core/services/aliasinit"
	"github.com/AntonioJCosta/aliases/internal/core/services/aliasresolution"
	"github.com/AntonioJCosta/aliases/internal/core/services/directories"
	"github.com/AntonioJCosta/aliases/internal/core/services/rehash"
	"github.com/AntonioJCosta/aliases/internal/core/testutil"
	"github.com/AntonioJCosta/aliases/internal/repositories/aliasfile"
	"github.com/AntonioJCosta/aliases/internal/repositories/dirregistry"
	"github.com/fatih/color"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// confinedAliasFiles hides every alias file outside root, so files left in the
// system temp directory or its ancestors stay out of the resolution.
type confinedAliasFiles struct {
	ports.AliasFileRepository
	root string
}

func (c confinedAliasFiles) ReadAliasFile(path string) (alias.File, error) {
	if !strings.HasPrefix(path, c.root+string(filepath.Separator)) {
		return alias.File{Path: path}, fmt.Errorf("alias file %s: %w", path, fs.ErrNotExist)
	}
	return c.AliasFileRepository.ReadAliasFile(path)
}

// newServices wires the real components around cfg. runner may be nil.
// Resolution only sees the test's own temporary directories.
func newServices(cfg config.Config, runner ports.CommandRunner) Services {
	if runner == nil {
		runner = &testutil.MockCommandRunner{}
	}
	files := aliasfile.NewAliasFileRepository(nil)
	registry := dirregistry.NewYAMLDirectoryRegistry(dirregistry.DefaultPath(cfg.HomeDir), nil)
	resolver := aliasresolution.NewService(confinedAliasFiles{files, testRoot(cfg)}, cfg.HomeDir, nil)
	analyzer := commandanalysis.NewShellAnalyzer()

	return Services{
		Config:      cfg,
		Resolver:    resolver,
		Initializer: aliasinit.NewService(files, aliastemplate.NewProvider(cfg.TemplatePath, nil), registry, nil),
		Rehasher:    rehash.NewService(resolver, nil),
		Renderer:    shellscript.NewRenderer(analyzer, nil),
		Executor:    aliasexec.NewService(resolver, analyzer, runner, cfg.ShellPath, nil),
		Directories: directories.NewService(registry, files, nil),
		Executable:  "aliases",
	}
}

// run executes the root command with args and returns what it printed.
func run(t *testing.T, services Services, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand("test", services)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// testRoot is the directory holding both temporary directories of newConfig.
func testRoot(cfg config.Config) string {
	return filepath.Dir(cfg.HomeDir)
}

func newConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		HomeDir:   t.TempDir(),
		WorkDir:   t.TempDir(),
		ShellPath: "/bin/bash",
		LogLevel:  "warn",
	}
}

func writeAliasFile(t *testing.T, dir, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	path := filepath.Join(dir, alias.FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func bundledTemplate(t *testing.T) []byte {
	t.Helper()
	content, err := aliastemplate.NewProvider("", nil).Template()
	if err != nil {
		t.Fatalf("failed to load the bundled template: %v", err)
	}
	return content
}

func TestInitCommand(t *testing.T) {
	tests := []struct {
		name   string
		global bool
	}{
		{name: "current directory", global: false},
		{name: "home directory", global: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newConfig(t)
			services := newServices(cfg, nil)
			target := cfg.WorkDir
			args := []string{"init"}
			if tt.global {
				target = cfg.HomeDir
				args = append(args, "--global")
			}
			path := filepath.Join(target, alias.FileName)

			t.Run("creates the file from the template", func(t *testing.T) {
				stdout, _, err := run(t, services, args...)
				if err != nil {
					t.Fatalf("init unexpected error: %v", err)
				}
				got, err := os.ReadFile(path)
				if err != nil {
					t.Fatalf("init did not create %s: %v", path, err)
				}
				if !bytes.Equal(got, bundledTemplate(t)) {
					t.Errorf("created file differs from the template:\n%s", got)
				}
				if !strings.Contains(stdout, "Created") {
					t.Errorf("stdout = %q, want a confirmation", stdout)
				}
			})

			t.Run("leaves an existing file untouched", func(t *testing.T) {
				if err := os.WriteFile(path, []byte("g: git\n"), 0644); err != nil {
					t.Fatalf("failed to overwrite %s: %v", path, err)
				}

				stdout, _, err := run(t, services, args...)
				if err != nil {
					t.Fatalf("init unexpected error: %v", err)
				}
				if stdout != "Directory already initialized.\n" {
					t.Errorf("stdout = %q, want exactly %q", stdout, "Directory already initialized.\n")
				}
				got, _ := os.ReadFile(path)
				if string(got) != "g: git\n" {
					t.Errorf("existing file was modified: %q", got)
				}
			})
		})
	}
}

func TestInitCommand_GlobalDoesNotTouchWorkDir(t *testing.T) {
	cfg := newConfig(t)

	if _, _, err := run(t, newServices(cfg, nil), "init", "--global"); err != nil {
		t.Fatalf("init --global unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.WorkDir, alias.FileName)); !os.IsNotExist(err) {
		t.Errorf("init --global created a file in the working directory (stat err %v)", err)
	}
}

func TestInitCommand_BrokenTemplate(t *testing.T) {
	cfg := newConfig(t)
	cfg.TemplatePath = filepath.Join(t.TempDir(), "missing-template")

	_, _, err := run(t, newServices(cfg, nil), "init")
	if !errors.Is(err, ports.ErrTemplateUnavailable) {
		t.Fatalf("init error = %v, want ErrTemplateUnavailable", err)
	}
	if _, statErr := os.Stat(filepath.Join(cfg.WorkDir, alias.FileName)); !os.IsNotExist(statErr) {
		t.Error("init created a file without a template")
	}
}

func TestListCommand_OnlyNearestDirectory(t *testing.T) {
	cfg := newConfig(t)
	writeAliasFile(t, cfg.WorkDir, "server: bundle exec rails server\n")

	stdout, stderr, err := run(t, newServices(cfg, nil), "list")
	if err != nil {
		t.Fatalf("list unexpected error: %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want nothing", stderr)
	}
	if !regexp.MustCompile(`server.*bundle exec rails server`).MatchString(stdout) {
		t.Errorf("list output does not show the alias:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Local") {
		t.Errorf("list output does not tag the alias Local:\n%s", stdout)
	}
	for _, scope := range []string{"Parent", "Global"} {
		if strings.Contains(stdout, scope) {
			t.Errorf("list output contains %s entries:\n%s", scope, stdout)
		}
	}
}

func TestListCommand_IgnoresFilesOutsideTheTestTree(t *testing.T) {
	cfg := newConfig(t)
	writeAliasFile(t, testRoot(cfg), "stray: echo outside\n")
	writeAliasFile(t, cfg.WorkDir, "server: bundle exec rails server\n")

	stdout, _, err := run(t, newServices(cfg, nil), "list", "--all")
	if err != nil {
		t.Fatalf("list unexpected error: %v", err)
	}
	if strings.Contains(stdout, "stray") {
		t.Errorf("list output shows an alias from outside the test tree:\n%s", stdout)
	}
	if !strings.Contains(stdout, "server") {
		t.Errorf("list output does not show the alias:\n%s", stdout)
	}
}

func TestListCommand_AncestorDefinition(t *testing.T) {
	cfg := newConfig(t)
	project := cfg.WorkDir
	writeAliasFile(t, project, "server: bundle exec rails server\n")
	cfg.WorkDir = filepath.Join(project, "app", "models")
	if err := os.MkdirAll(cfg.WorkDir, 0755); err != nil {
		t.Fatalf("failed to create nested directory: %v", err)
	}

	stdout, _, err := run(t, newServices(cfg, nil), "list")
	if err != nil {
		t.Fatalf("list unexpected error: %v", err)
	}
	if !regexp.MustCompile(`Parent.*server.*bundle exec rails server`).MatchString(stdout) {
		t.Errorf("list output does not tag the ancestor alias Parent:\n%s", stdout)
	}
	if strings.Contains(stdout, "Local") {
		t.Errorf("list output contains Local entries:\n%s", stdout)
	}
}

func TestListCommand_HomeAndDisabled(t *testing.T) {
	cfg := newConfig(t)
	writeAliasFile(t, cfg.HomeDir, "gs: git status\n")
	writeAliasFile(t, cfg.WorkDir, "deploy:\n  command: cap production deploy\n  disabled: true\nbad name: oops\n")
	services := newServices(cfg, nil)

	stdout, stderr, err := run(t, services, "list")
	if err != nil {
		t.Fatalf("list unexpected error: %v", err)
	}
	if !regexp.MustCompile(`Global.*gs.*git status`).MatchString(stdout) {
		t.Errorf("list output does not show the home alias as Global:\n%s", stdout)
	}
	if strings.Contains(stdout, "deploy") {
		t.Errorf("list output shows a disabled alias without --all:\n%s", stdout)
	}
	if !strings.Contains(stderr, "Warning:") || !strings.Contains(stderr, "bad name") {
		t.Errorf("stderr = %q, want a warning for the malformed entry", stderr)
	}

	stdout, _, err = run(t, services, "list", "--all")
	if err != nil {
		t.Fatalf("list --all unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "cap production deploy (disabled)") {
		t.Errorf("list --all output does not show the disabled alias:\n%s", stdout)
	}
}

func TestListCommand_IsIdempotent(t *testing.T) {
	cfg := newConfig(t)
	writeAliasFile(t, cfg.WorkDir, "server: bundle exec rails server\nc: bundle exec rails console\n")
	writeAliasFile(t, cfg.HomeDir, "g: git\n")
	services := newServices(cfg, nil)

	first, _, err := run(t, services, "list")
	if err != nil {
		t.Fatalf("first list unexpected error: %v", err)
	}
	second, _, err := run(t, services, "list")
	if err != nil {
		t.Fatalf("second list unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("list output changed between runs:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestListCommand_NoAliases(t *testing.T) {
	stdout, _, err := run(t, newServices(newConfig(t), nil), "list")
	if err != nil {
		t.Fatalf("list unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "No aliases found") {
		t.Errorf("stdout = %q, want the empty message", stdout)
	}
}

func TestRehashCommand(t *testing.T) {
	cfg := newConfig(t)
	writeAliasFile(t, cfg.WorkDir, "server: bundle exec rails server\n")
	cfg.PreviousFunctions = []string{"old", "server"}

	stdout, _, err := run(t, newServices(cfg, nil), "rehash", "--shell", "bash")
	if err != nil {
		t.Fatalf("rehash unexpected error: %v", err)
	}
	for _, want := range []string{
		"unset -f old 2>/dev/null\n",
		"function server {\n  bundle exec rails server \"$@\"\n}\n",
		"export ALIASES_FUNCTIONS=server\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("rehash output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "unset -f server") {
		t.Errorf("rehash removed an alias that is still defined:\n%s", stdout)
	}
}

func TestRehashCommand_UsesConfiguredShell(t *testing.T) {
	cfg := newConfig(t)
	cfg.ShellPath = "/usr/bin/fish"
	writeAliasFile(t, cfg.WorkDir, "g: git\n")

	stdout, _, err := run(t, newServices(cfg, nil), "rehash")
	if err != nil {
		t.Fatalf("rehash unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "function g\n  git $argv\nend\n") {
		t.Errorf("rehash did not render fish code:\n%s", stdout)
	}
}

func TestRehashCommand_UnsupportedShell(t *testing.T) {
	_, _, err := run(t, newServices(newConfig(t), nil), "rehash", "--shell", "tcsh")
	if !errors.Is(err, ports.ErrUnsupportedShell) {
		t.Errorf("rehash error = %v, want ErrUnsupportedShell", err)
	}
}

func TestHookCommand(t *testing.T) {
	stdout, _, err := run(t, newServices(newConfig(t), nil), "hook", "--shell", "zsh")
	if err != nil {
		t.Fatalf("hook unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "chpwd_functions") || !strings.Contains(stdout, "aliases rehash --shell zsh") {
		t.Errorf("hook output is not a zsh integration:\n%s", stdout)
	}
}

func TestExecCommand(t *testing.T) {
	cfg := newConfig(t)
	writeAliasFile(t, cfg.WorkDir, "s: bin/rails server\nfail: exit 4\n")

	var gotLine, gotName string
	var gotArgs []string
	runner := &testutil.MockCommandRunner{
		RunFunc: func(_ context.Context, _, commandLine, name string, args []string) (int, error) {
			gotLine, gotName, gotArgs = commandLine, name, args
			if name == "fail" {
				return 4, nil
			}
			return 0, nil
		},
	}
	services := newServices(cfg, runner)

	t.Run("runs the alias with its arguments", func(t *testing.T) {
		if _, _, err := run(t, services, "exec", "s", "-p", "4000"); err != nil {
			t.Fatalf("exec unexpected error: %v", err)
		}
		if gotLine != `bin/rails server "$@"` || gotName != "s" || strings.Join(gotArgs, " ") != "-p 4000" {
			t.Errorf("runner got (%q, %q, %v)", gotLine, gotName, gotArgs)
		}
	})

	t.Run("propagates the exit code", func(t *testing.T) {
		_, _, err := run(t, services, "exec", "fail")
		var exitErr *ExitError
		if !errors.As(err, &exitErr) || exitErr.Code != 4 {
			t.Errorf("exec error = %v, want exit status 4", err)
		}
	})

	t.Run("unknown alias", func(t *testing.T) {
		_, _, err := run(t, services, "exec", "missing")
		if !errors.Is(err, ports.ErrAliasNotFound) {
			t.Errorf("exec error = %v, want ErrAliasNotFound", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		if _, _, err := run(t, services, "exec"); err == nil {
			t.Error("exec without a name expected an error")
		}
	})
}

func TestDirsCommand(t *testing.T) {
	cfg := newConfig(t)
	services := newServices(cfg, nil)

	stdout, _, err := run(t, services, "dirs")
	if err != nil {
		t.Fatalf("dirs unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "No initialized directories recorded.") {
		t.Errorf("dirs output = %q, want the empty message", stdout)
	}

	if _, _, err := run(t, services, "init"); err != nil {
		t.Fatalf("init unexpected error: %v", err)
	}
	stdout, _, err = run(t, services, "dirs")
	if err != nil {
		t.Fatalf("dirs unexpected error: %v", err)
	}
	if !strings.Contains(stdout, cfg.WorkDir) || !strings.Contains(stdout, "initialized") {
		t.Errorf("dirs output does not list the initialized directory:\n%s", stdout)
	}

	if err := os.Remove(filepath.Join(cfg.WorkDir, alias.FileName)); err != nil {
		t.Fatalf("failed to remove alias file: %v", err)
	}
	stdout, _, err = run(t, services, "dirs", "--prune")
	if err != nil {
		t.Fatalf("dirs --prune unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Removed "+cfg.WorkDir) {
		t.Errorf("dirs --prune output = %q, want the removed directory", stdout)
	}

	stdout, _, _ = run(t, services, "dirs")
	if strings.Contains(stdout, cfg.WorkDir) {
		t.Errorf("dirs still lists a pruned directory:\n%s", stdout)
	}
}

func TestRootCommand_MissingService(t *testing.T) {
	services := newServices(newConfig(t), nil)
	services.Resolver = nil

	_, _, err := run(t, services, "list")
	if err == nil || !strings.Contains(err.Error(), "not initialized for command list") {
		t.Errorf("list error = %v, want a missing service error", err)
	}
}
