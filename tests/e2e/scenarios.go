package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

const targetPath = "app/api/admin/parse-url/route.ts"

const successLine = "Smart quotes replaced in " + targetPath

// FindProjectBinary locates the quotefix binary built by `make build`.
func FindProjectBinary() (string, error) {
	if bin := os.Getenv("QUOTEFIX_BINARY"); bin != "" {
		return bin, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := wd; ; dir = filepath.Dir(dir) {
		candidate := filepath.Join(dir, "bin", "quotefix")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if filepath.Dir(dir) == dir {
			break
		}
	}
	return "", fmt.Errorf("quotefix binary not found; run 'make build' or set QUOTEFIX_BINARY")
}

// shellScript builds a shell line running quotefix with args from inside dir,
// since the target path is resolved against the working directory.
func shellScript(dir string, args ...string) (string, error) {
	bin, err := FindProjectBinary()
	if err != nil {
		return "", err
	}
	script := fmt.Sprintf("cd %q && %q", dir, bin)
	for _, a := range args {
		script += fmt.Sprintf(" %q", a)
	}
	return script, nil
}

// setupProject creates a project directory holding the target file.
func setupProject(content string) func(ctx *harness.Context) error {
	return func(ctx *harness.Context) error {
		projectDir := ctx.NewDir("project")
		if err := fs.CreateDir(filepath.Join(projectDir, filepath.Dir(targetPath))); err != nil {
			return err
		}
		if err := fs.WriteString(filepath.Join(projectDir, targetPath), content); err != nil {
			return fmt.Errorf("failed to write target: %w", err)
		}
		ctx.Set("project_dir", projectDir)
		return nil
	}
}

func readTarget(ctx *harness.Context) (string, error) {
	data, err := os.ReadFile(filepath.Join(ctx.GetString("project_dir"), targetPath))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// QuotefixRewriteScenario tests that a bare run rewrites smart quotes.
func QuotefixRewriteScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "quotefix-rewrite",
		Steps: []harness.Step{
			harness.NewStep("Setup project with smart quotes", setupProject("const a = “hello”;\nconst b = 'It’s a ‘test’';\n")),
			harness.NewStep("Run 'quotefix'", func(ctx *harness.Context) error {
				script, err := shellScript(ctx.GetString("project_dir"))
				if err != nil {
					return err
				}
				cmd := command.New("sh", "-c", script)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "quotefix should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, successLine, "Should print confirmation"); err != nil {
					return err
				}

				got, err := readTarget(ctx)
				if err != nil {
					return err
				}
				return assert.Equal("const a = \"hello\";\nconst b = 'It's a 'test'';\n", got, "Target should hold ASCII quotes")
			}),
		},
	}
}

// QuotefixCleanFileScenario tests that a file without smart quotes is left byte-identical.
func QuotefixCleanFileScenario() *harness.Scenario {
	const content = "export const x = \"plain\";\n"
	return &harness.Scenario{
		Name: "quotefix-clean-file",
		Steps: []harness.Step{
			harness.NewStep("Setup project without smart quotes", setupProject(content)),
			harness.NewStep("Run 'quotefix'", func(ctx *harness.Context) error {
				script, err := shellScript(ctx.GetString("project_dir"))
				if err != nil {
					return err
				}
				cmd := command.New("sh", "-c", script)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "quotefix should exit successfully"); err != nil {
					return err
				}
				got, err := readTarget(ctx)
				if err != nil {
					return err
				}
				return assert.Equal(content, got, "Target should be unchanged")
			}),
		},
	}
}

// QuotefixMissingTargetScenario tests the failure path when the target does not exist.
func QuotefixMissingTargetScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "quotefix-missing-target",
		Steps: []harness.Step{
			harness.NewStep("Run 'quotefix' in an empty directory", func(ctx *harness.Context) error {
				script, err := shellScript(ctx.NewDir("empty"))
				if err != nil {
					return err
				}
				cmd := command.New("sh", "-c", script)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode == 0 {
					return fmt.Errorf("quotefix should fail when the target is missing")
				}
				if err := assert.NotContains(result.Stdout, successLine, "Should not print confirmation"); err != nil {
					return err
				}
				return assert.Contains(result.Stderr, "file not found", "Should report the missing file")
			}),
		},
	}
}

// QuotefixCheckScenario tests 'quotefix check' as a read-only report.
func QuotefixCheckScenario() *harness.Scenario {
	const content = "“one” ‘two’"
	return &harness.Scenario{
		Name: "quotefix-check",
		Steps: []harness.Step{
			harness.NewStep("Setup project with smart quotes", setupProject(content)),
			harness.NewStep("Run 'quotefix check --format json'", func(ctx *harness.Context) error {
				script, err := shellScript(ctx.GetString("project_dir"), "check", "--format", "json")
				if err != nil {
					return err
				}
				cmd := command.New("sh", "-c", script)
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode != 0 {
					return fmt.Errorf("quotefix check failed: %s", result.Stderr)
				}

				var report struct {
					Total   int  `json:"total"`
					Written bool `json:"written"`
				}
				if err := json.Unmarshal([]byte(result.Stdout), &report); err != nil {
					return fmt.Errorf("failed to parse JSON output: %w", err)
				}
				if err := assert.Equal(4, report.Total, "Should count four smart quotes"); err != nil {
					return err
				}

				got, err := readTarget(ctx)
				if err != nil {
					return err
				}
				return assert.Equal(content, got, "check must not modify the target")
			}),
		},
	}
}
