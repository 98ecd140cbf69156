package app

import (
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/fitdeck/fitdeck/internal/config"
	"github.com/fitdeck/fitdeck/store"
)

// migrate copies every known key from the configured store into the store
// described by dst.
func migrate(src, dst store.KV, w io.Writer) error {
	copied, err := store.Migrate(dst, src, store.Keys...)
	if err != nil {
		return err
	}

	return reportResult(w, nil, "Copied %d key(s): %s", len(copied), strings.Join(copied, ", "))
}

// migrateAction handles the store migrate command.
func migrateAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	srcOpts := cfg.StoreOptions()

	dstCfg := *cfg
	dstCfg.Store.Driver = ctx.String("to")
	dstCfg.Store.Path = ctx.String("to-path")

	if addr := ctx.String("to-redis-addr"); addr != "" {
		dstCfg.Store.RedisAddr = addr
	}

	dstOpts := dstCfg.StoreOptions()

	if dstOpts == srcOpts {
		return errSameDriver.Fmt(srcOpts.Driver)
	}

	src, err := store.Open(srcOpts)
	if err != nil {
		return errOpenStore.Wrap(err)
	}

	defer src.Close()

	dst, err := store.Open(dstOpts)
	if err != nil {
		return errOpenStore.Wrap(err)
	}

	defer dst.Close()

	return migrate(src, dst, config.Stdout)
}
