package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"storefront-pricing/internal/handler/middleware"
	"storefront-pricing/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies migrations/ with the Atlas CLI. The directory must carry an atlas.sum
// produced by `atlas migrate hash`.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(*dir)))
	if err != nil {
		logger.Error("マイグレーションディレクトリの準備に失敗しました", "dir", *dir, "error", err)
		os.Exit(1)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), *atlasBin)
	if err != nil {
		logger.Error("Atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DryRun: *dryRun,
	})
	if err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}

	logger.Info("マイグレーションが完了しました",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"dry_run", *dryRun)
}
