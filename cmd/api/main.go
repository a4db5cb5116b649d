package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/marcelsud/fake-third-party/config"
	"github.com/marcelsud/fake-third-party/customer"
	chihandlers "github.com/marcelsud/fake-third-party/internal/http/chi"
	"github.com/marcelsud/fake-third-party/metrics"
	"github.com/marcelsud/fake-third-party/notifier"
	"github.com/marcelsud/fake-third-party/origin"
	"github.com/marcelsud/fake-third-party/seed"
	"github.com/marcelsud/fake-third-party/store"
)

const TIMEOUT = 30 * time.Second

/* main wires the whole process together: the single in-memory store, the
 * dispatcher, the business layer and the HTTP surface. All state is
 * volatile; restarting the process resets everything to the seed data.
 */
func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "fake-third-party").Logger()

	st := store.New(cfg.DefaultWebhookURL)
	if err := seedStore(ctx, st, cfg.SeedFile); err != nil {
		fmt.Println(err)
		return
	}

	dispatcher := notifier.NewDispatcher(st, st, cfg.WebhookTimeout(), log.With().Str("component", "dispatcher").Logger())
	s := customer.NewService(st, dispatcher)
	classifier := origin.NewClassifier(cfg.ConsoleOriginList())

	exporter, err := metrics.NewOTelExporter(metrics.NewStoreCollector(st))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer exporter.Shutdown(ctx)

	r := chihandlers.Handlers(ctx, s, st, classifier, cfg.ConsoleOriginList(), exporter.ServeHTTP())
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      r,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown)
	fmt.Printf("Listening on port %s\n", cfg.Port)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		fmt.Println(err)
		return
	}
	err = <-errShutdown
	if err != nil {
		fmt.Println(err)
		return
	}
}

// seedStore loads the demonstration customers into a fresh store
func seedStore(ctx context.Context, st *store.Store, seedFile string) error {
	customers := seed.Defaults()
	if seedFile != "" {
		var err error
		customers, err = seed.Load(seedFile)
		if err != nil {
			return fmt.Errorf("seeding store: %w", err)
		}
	}
	for _, c := range customers {
		archived := c.Archived
		term := c.PaymentTerm
		if _, _, err := st.Upsert(ctx, c.ID, customer.Update{
			Archived:    &archived,
			PaymentTerm: &term,
		}); err != nil {
			return fmt.Errorf("seeding store: %w", err)
		}
	}
	return nil
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		fmt.Printf("\nShutting down server...\n")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("Forcing closing the server")
	}
}
