/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/suparena/multitype"
	"github.com/suparena/multitype/internal/config"
	"github.com/suparena/multitype/internal/feed"
	"github.com/suparena/multitype/internal/log"
	"github.com/suparena/multitype/itemsource"
	"github.com/suparena/multitype/itemsource/cache"
	"github.com/suparena/multitype/itemsource/ddb"
	"github.com/suparena/multitype/itemsource/yamlfile"
	"github.com/suparena/multitype/registry"
)

// app carries state shared by the subcommands.
type app struct {
	cfgFile string
	debug   bool
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "multitype",
		Short:        "Render a heterogeneous item feed through type-dispatched handlers",
		Version:      multitype.GetVersionInfo().Version,
		SilenceUsage: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.init()
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./multitype.yaml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false,
		"enable debug logging")

	root.AddCommand(newRenderCmd(a), newInspectCmd(a), newVersionCmd())
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := log.ParseLevel(cfg.LogLevel)
	if a.debug {
		level = log.LevelDebug
	}
	log.Init(level)
	return nil
}

// source builds the item source selected by the configuration.
func (a *app) source(ctx context.Context) (itemsource.Source, error) {
	entities := registry.NewEntities()
	feed.RegisterEntities(entities)

	var (
		src itemsource.Source
		key string
	)
	switch a.cfg.Source {
	case config.SourceDynamoDB:
		dc := a.cfg.DynamoDB
		client, err := ddb.NewDynamoDBClient(ctx, ddb.ClientConfig{
			Region:          dc.Region,
			AccessKeyID:     dc.AccessKeyID,
			SecretAccessKey: dc.SecretAccessKey,
			Endpoint:        dc.Endpoint,
		})
		if err != nil {
			return nil, err
		}
		opts := []ddb.Option{ddb.WithMaxRetries(dc.MaxRetries)}
		if dc.SortKeyPrefix != "" {
			opts = append(opts, ddb.WithSortKeyPrefix(dc.SortKeyPrefix))
		}
		if dc.PageSize > 0 {
			opts = append(opts, ddb.WithPageSize(dc.PageSize))
		}
		if a.cfg.Strict {
			opts = append(opts, ddb.WithStrict())
		}
		src, err = ddb.NewSource(client, dc.Table, dc.Partition, entities, opts...)
		if err != nil {
			return nil, err
		}
		key = fmt.Sprintf("dynamodb:%s:%s", dc.Table, dc.Partition)
	default:
		src = yamlfile.New(a.cfg.File, entities, a.cfg.Strict)
		key = "file:" + a.cfg.File
	}

	if a.cfg.CacheTTL > 0 {
		src = cache.New(src, key, a.cfg.CacheTTL)
	}
	return src, nil
}

// adapter loads the feed and returns an adapter with the feed handlers registered.
func (a *app) adapter(ctx context.Context) (*multitype.Adapter, error) {
	src, err := a.source(ctx)
	if err != nil {
		return nil, err
	}
	items, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	log.Info(log.CatSource, "items loaded", "count", len(items), "source", a.cfg.Source)

	adapter := multitype.New(multitype.WithItems(items))
	feed.Register(adapter)
	return adapter, nil
}
