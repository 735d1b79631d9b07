package mock

import (
	"context"

	"github.com/docsmith/kb"
)

var _ kb.SiteBuilder = (*SiteBuilder)(nil)

// SiteBuilder is a mock implementation of kb.SiteBuilder.
type SiteBuilder struct {
	BuildFn  func(ctx context.Context) error
	ServeFn  func(ctx context.Context, port int) error
	DeployFn func(ctx context.Context) error
}

func (b *SiteBuilder) Build(ctx context.Context) error {
	return b.BuildFn(ctx)
}

func (b *SiteBuilder) Serve(ctx context.Context, port int) error {
	return b.ServeFn(ctx, port)
}

func (b *SiteBuilder) Deploy(ctx context.Context) error {
	return b.DeployFn(ctx)
}

var _ kb.HookInstaller = (*HookInstaller)(nil)

// HookInstaller is a mock implementation of kb.HookInstaller.
type HookInstaller struct {
	InstallHooksFn func(ctx context.Context, repoDir string) error
}

func (h *HookInstaller) InstallHooks(ctx context.Context, repoDir string) error {
	return h.InstallHooksFn(ctx, repoDir)
}

var _ kb.Archiver = (*Archiver)(nil)

// Archiver is a mock implementation of kb.Archiver.
type Archiver struct {
	CreateBackupFn func(ctx context.Context, srcDir, outDir string) (string, error)
}

func (a *Archiver) CreateBackup(ctx context.Context, srcDir, outDir string) (string, error) {
	return a.CreateBackupFn(ctx, srcDir, outDir)
}
