// Package http runs the local payment-callback listener. The hosted
// checkout page redirects the shopper's browser here after payment, which
// lets the CLI learn the session id without the shopper copying anything.
package http

import (
	"context"
	"log/slog"
	"net"
	nethttp "net/http"
	"strconv"

	"shopmate/config"
	"shopmate/internal/delivery"
	deliverymiddleware "shopmate/internal/delivery/middleware"
	"shopmate/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// CallbackEvent is one shopper redirect from the hosted checkout page.
type CallbackEvent struct {
	SessionID string
	Cancelled bool
}

type CallbackParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type CallbackServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
	events chan CallbackEvent
}

// NewCallbackServer builds the listener. Events are buffered so a redirect
// arriving while nobody reads yet is not lost.
func NewCallbackServer(params CallbackParams) (*CallbackServer, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Use(middleware.Recover())
	echoServer.Use(deliverymiddleware.NewRequestIDMiddleware(params.Logger).Process)
	echoServer.Use(slogecho.New(params.Logger))

	srv := &CallbackServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
		events: make(chan CallbackEvent, 8),
	}

	echoServer.GET("/checkout/success", srv.handleSuccess)
	echoServer.GET("/checkout/cancel", srv.handleCancel)

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

var _ delivery.Delivery = (*CallbackServer)(nil)

// Serve blocks on the listener.
func (s *CallbackServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("127.0.0.1", strconv.Itoa(s.cfg.Payment.CallbackPort))
	s.logger.Info("payment callback listener starting", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve payment callbacks")
	}

	return nil
}

// Events yields the shopper redirects as they arrive.
func (s *CallbackServer) Events() <-chan CallbackEvent {
	return s.events
}

func (s *CallbackServer) handleSuccess(c echo.Context) error {
	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.String(nethttp.StatusBadRequest, "missing session_id")
	}

	s.publish(CallbackEvent{SessionID: sessionID})

	return c.HTML(nethttp.StatusOK,
		"<html><body><h2>Payment submitted</h2><p>You can close this tab and return to the terminal.</p></body></html>")
}

func (s *CallbackServer) handleCancel(c echo.Context) error {
	s.publish(CallbackEvent{SessionID: c.QueryParam("session_id"), Cancelled: true})

	return c.HTML(nethttp.StatusOK,
		"<html><body><h2>Payment cancelled</h2><p>Your cart is untouched. You can close this tab.</p></body></html>")
}

func (s *CallbackServer) publish(event CallbackEvent) {
	select {
	case s.events <- event:
	default:
		// A full buffer means nobody is consuming; drop rather than hang
		// the shopper's browser.
		s.logger.Warn("callback event dropped", slog.String("session_id", event.SessionID))
	}
}

func (s *CallbackServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("payment callback listener stopping")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
