package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	rankgin "github.com/fwojciec/rankcheck/gin"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled
// or an interrupt is received, then shuts the server down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gin.SetMode(gin.ReleaseMode)

	srv := rankgin.NewServer(deps.Searches, deps.Logger,
		rankgin.WithAddr(c.Addr),
		rankgin.WithAllowedOrigins(c.AllowOrigin...),
		rankgin.WithRateLimit(c.Rate, c.Burst),
	)
	if err := srv.Listen(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", srv.URL())

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return srv.Close()
	})
	return g.Wait()
}
