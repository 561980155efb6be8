package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/nexus/economy"
	"github.com/MixinNetwork/nexus/store"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type App struct {
	conf    *Configuration
	store   *store.BadgerStore
	economy *economy.Economy
}

type withApp func(cmd *cobra.Command, fn func(a *App) error) error

func rootCmd() *cobra.Command {
	var configPath, dataDir string

	cmd := &cobra.Command{
		Use:           "nexus",
		Short:         "Mint collectibles with tokens and resell them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "~/.nexus/config.toml", "configuration file path")
	cmd.PersistentFlags().StringVarP(&dataDir, "dir", "d", "", "database directory path, overrides the configuration")

	run := func(cmd *cobra.Command, fn func(a *App) error) error {
		a, err := openApp(cmd.Context(), configPath, dataDir)
		if err != nil {
			return err
		}
		defer a.store.Close()

		if cmd.Name() != "welcome" {
			a.greet(cmd)
		}
		return fn(a)
	}
	cmd.AddCommand(
		statusCmd(run),
		listCmd(run),
		generateCmd(run),
		resellCmd(run),
		welcomeCmd(run),
	)
	return cmd
}

func openApp(ctx context.Context, configPath, dataDir string) (*App, error) {
	conf, err := ReadConfiguration(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		conf.Store.Dir = dataDir
	}
	logger.SetLevel(conf.Log.Level)

	sc, err := conf.storeConfiguration()
	if err != nil {
		return nil, err
	}
	bs := store.NewBadger(sc)
	ecn := economy.New(bs, conf.buildGenerator(), conf.economyConfiguration())
	res := ecn.Load(ctx)
	if !res.OK() {
		bs.Close()
		return nil, fmt.Errorf("%s %v", res.Message, res.Err)
	}
	return &App{conf: conf, store: bs, economy: ecn}, nil
}
