package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"

	"golang.org/x/xerrors"

	"github.com/greenbone-community/notus-metadata-loader/kb"
	"github.com/greenbone-community/notus-metadata-loader/notus"
	"github.com/greenbone-community/notus-metadata-loader/openvas"
)

const defaultRedisAddr = "localhost:6379"

var (
	target      = flag.String("target", "metadata", "what to run (metadata, families)")
	metadataDir = flag.String("path", "", "override the metadata directory")
	redisAddr   = flag.String("redis-addr", defaultRedisAddr, "address of the Redis KB")
	redisDB     = flag.Int("redis-db", 0, "Redis database holding the NVT cache")
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.Parse()

	settings, err := openvas.LoadScannerSettings()
	if err != nil {
		return xerrors.Errorf("failed to load scanner settings: %w", err)
	}

	store, err := kb.NewRedis(context.Background(), *redisAddr, *redisDB)
	if err != nil {
		return err
	}
	defer store.Close()

	handler := notus.NewHandler(store, settings,
		notus.WithMetadataDir(*metadataDir),
		notus.WithProgressBar(true))

	switch *target {
	case "metadata":
		if err := handler.UpdateMetadata(); err != nil {
			return xerrors.Errorf("error in Notus metadata update: %w", err)
		}
	case "families":
		linkers, err := handler.FamilyDriverLinkers()
		if err != nil {
			return xerrors.Errorf("error in family driver discovery: %w", err)
		}
		families := make([]string, 0, len(linkers))
		for family := range linkers {
			families = append(families, family)
		}
		sort.Strings(families)
		for _, family := range families {
			fmt.Printf("%s: %s\n", family, linkers[family])
		}
	default:
		return xerrors.New("unknown target")
	}
	return nil
}
