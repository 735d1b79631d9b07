package git

import (
	"context"
	"os"
	"path/filepath"

	"github.com/docsmith/kb"
)

// preCommitHook validates staged markdown files before a commit is created.
const preCommitHook = `#!/bin/sh
#
# Pre-commit hook to validate markdown files
#

staged_md_files=$(git diff --cached --name-only --diff-filter=ACM | grep -E '\.md$')

if [ -n "$staged_md_files" ]; then
    echo "Running markdown lint on staged files..."
    npx markdownlint-cli $staged_md_files
    if [ $? -ne 0 ]; then
        echo "Markdown validation failed. Fix the issues before committing."
        exit 1
    fi
fi

exit 0
`

// postCommitHook rebuilds the site after commits on the main branch that
// touched markdown files.
const postCommitHook = `#!/bin/sh
#
# Post-commit hook to rebuild the documentation site
#

current_branch=$(git symbolic-ref --short HEAD)
if [ "$current_branch" != "main" ] && [ "$current_branch" != "master" ]; then
    exit 0
fi

md_files_changed=$(git diff-tree --no-commit-id --name-only -r HEAD | grep -E '\.md$')
if [ -z "$md_files_changed" ]; then
    exit 0
fi

echo "Markdown files changed, rebuilding documentation..."

if command -v mkdocs >/dev/null 2>&1; then
    mkdocs build
    echo "Documentation rebuilt successfully."
else
    echo "Warning: mkdocs not found, skipping documentation build."
fi

exit 0
`

// Ensure HookService implements kb.HookInstaller at compile time.
var _ kb.HookInstaller = (*HookService)(nil)

// HookService installs the knowledge-base git hooks.
type HookService struct{}

// NewHookService returns a new HookService.
func NewHookService() *HookService {
	return &HookService{}
}

// InstallHooks writes the pre-commit and post-commit hooks into
// repoDir/.git/hooks, overwriting existing hooks of the same name.
// Returns ENOTFOUND if repoDir is not a git repository.
func (s *HookService) InstallHooks(ctx context.Context, repoDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	gitDir := filepath.Join(repoDir, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return kb.Errorf(kb.ENOTFOUND, "not a git repository (or .git directory not found): %s", repoDir)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return err
	}

	hooks := map[string]string{
		"pre-commit":  preCommitHook,
		"post-commit": postCommitHook,
	}
	for name, content := range hooks {
		path := filepath.Join(hooksDir, name)
		if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
			return err
		}
	}
	return nil
}
