package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mvqn/ucrm-plugin-xero/core/config"
	"github.com/mvqn/ucrm-plugin-xero/core/storage"
)

// Prints a persisted correlation map with its per-side counts.
// Usage: debug_map [clients|invoices]
func main() {
	kind := "clients"
	if len(os.Args) > 1 {
		kind = os.Args[1]
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	store, err := cfg.Reconcile.OpenStore(kind, client, cfg.Storage.Bucket)
	if err != nil {
		log.Fatal(err)
	}

	m, err := store.Load(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== %s (%s) ===\n", kind, store.Location())
	for _, name := range m.Names() {
		fmt.Printf("%-40s %v\n", name, m[name])
	}

	fmt.Println("\n=== Summary ===")
	fmt.Printf("Entries:            %d\n", len(m))
	fmt.Printf("Missing in Xero:    %d\n", len(m.Pending("ucrmId", "xeroId")))
	fmt.Printf("Missing in UCRM:    %d\n", len(m.Pending("xeroId", "ucrmId")))
}
