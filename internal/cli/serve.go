package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"quickconf/internal/adapters/render"
	httpdelivery "quickconf/internal/delivery/http"
	"quickconf/internal/delivery/http/controllers"
	"quickconf/internal/delivery/http/middleware"
	"quickconf/internal/repository/files"
	"quickconf/internal/schedule"
	"quickconf/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	var (
		port  string
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `serve loads the content directory and serves the schedule API, the HTML
schedule page and the iCalendar feed. With --watch, content changes are
reloaded without a restart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Port = port
			}
			handler, err := a.handler()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watch {
				go func() {
					err := a.content.Watch(ctx, files.DefaultDebounce, func(err error) {
						if err != nil {
							a.logger.ErrorContext(ctx, "content reload failed", "err", err)
						}
					})
					if err != nil {
						a.logger.ErrorContext(ctx, "content watcher stopped", "err", err)
					}
				}()
			}

			srv := &http.Server{
				Addr:              net.JoinHostPort("", a.cfg.Port),
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
				WriteTimeout:      a.cfg.RequestTimeout + 5*time.Second,
				BaseContext:       func(net.Listener) context.Context { return ctx },
			}
			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("server starting", "addr", srv.Addr, "env", a.cfg.Environment, "demo", a.cfg.DemoMode, "watch", watch)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			a.logger.Info("server shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload content when files change")
	return cmd
}

// handler wires services, controllers and middleware into the server handler.
func (a *app) handler() (http.Handler, error) {
	renderer, err := render.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	siteSvc := services.NewSiteService(a.site, renderer, a.logger)
	views := schedule.ViewOptions{Clock: a.clock, DemoMode: a.cfg.DemoMode}

	mux := httpdelivery.NewRouter(
		controllers.NewScheduleController(a.logger, a.schedule, views),
		controllers.NewTalkController(a.logger, a.schedule),
		controllers.NewSiteController(a.logger, siteSvc, a.schedule, renderer, views),
	)
	return middleware.CORS(a.cfg.AllowedOrigins, middleware.LoggingMiddleware(a.logger, mux)), nil
}
