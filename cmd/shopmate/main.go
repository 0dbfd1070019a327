package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"shopmate/config"
	deliveryhttp "shopmate/internal/delivery/http"
	"shopmate/internal/domain/repository"
	"shopmate/internal/domain/service"
	"shopmate/internal/infra/api"
	"shopmate/internal/infra/auth"
	logs "shopmate/internal/infra/log"
	"shopmate/internal/infra/qrcode"
	"shopmate/internal/infra/storage"
	"shopmate/internal/usecase"
	"shopmate/internal/usecase/impl"
	"shopmate/internal/validator"

	"go.uber.org/fx"
)

// Supported subcommands:
// - register, login, logout, whoami, reset-password
// - products, product, ratings, rate
// - cart (add, set, remove, show, clear)
// - profile, order, pay, orders, cancel
// - account (change-password, login-history, remove-address, delete)
// - support (open, list, show, reply, faqs)
// - admin (dashboard, products, users, orders, tickets, faqs)

type appDeps struct {
	fx.In

	Config   *config.Config
	Session  usecase.SessionUsecase
	AuthFlow usecase.AuthFlowUsecase
	Cart     usecase.CartUsecase
	Checkout usecase.CheckoutUsecase
	Payment  usecase.PaymentUsecase
	Catalog  usecase.CatalogUsecase
	Orders   usecase.OrderUsecase
	Profile  usecase.ProfileUsecase
	Support  usecase.SupportUsecase
	Admin    usecase.AdminUsecase
	QRCode   service.QRCodeService
	Callback *deliveryhttp.CallbackServer
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var deps appDeps
	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectGateways(),
		injectUsecase(),
		injectDelivery(),
		fx.Populate(&deps),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// One restore attempt per run; an invalid snapshot just means a
	// signed-out session.
	deps.Session.Restore(ctx)

	err := runSubcommand(ctx, os.Args[1], os.Args[2:], &deps)

	stopErr := app.Stop(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if stopErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", stopErr)
		os.Exit(1)
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		service.NewTokenHolder,
		validator.New,
		auth.NewJWTInspector,
		newQRCodeService,
		newSnapshotStore,
		func(s storage.Store) repository.TokenStore { return s },
		func(s storage.Store) repository.CartSnapshotStore { return s },
	)
}

// newSnapshotStore opens the local snapshot bucket and ties its release to
// the app lifecycle.
func newSnapshotStore(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (storage.Store, error) {
	store, err := storage.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error { return store.Close() },
	})

	return store, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectGateways() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewClient,
			api.NewAuthGateway,
			api.NewProfileGateway,
			api.NewCatalogGateway,
			api.NewOrderGateway,
			api.NewPaymentGateway,
			api.NewSupportGateway,
			api.NewAdminGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthFlowService,
			impl.NewCartService,
			impl.NewCheckoutService,
			newPaymentUsecase,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewProfileService,
			impl.NewSupportService,
			impl.NewAdminService,
		),
	)
}

// newPaymentUsecase feeds the poller its tuning from configuration.
func newPaymentUsecase(
	cfg *config.Config,
	gateway service.PaymentGateway,
	cart usecase.CartUsecase,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return impl.NewPaymentService(gateway, cart, cfg.Payment.PollInterval, cfg.Payment.MaxAttempts, logger)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			deliveryhttp.NewCallbackServer,
		),
	)
}

func runSubcommand(ctx context.Context, command string, args []string, deps *appDeps) error {
	switch command {
	case "register":
		return handleRegister(ctx, args, deps)
	case "login":
		return handleLogin(ctx, args, deps)
	case "logout":
		return handleLogout(ctx, deps)
	case "whoami":
		return handleWhoami(deps)
	case "reset-password":
		return handleResetPassword(ctx, args, deps)
	case "products":
		return handleProducts(ctx, args, deps)
	case "product":
		return handleProduct(ctx, args, deps)
	case "ratings":
		return handleRatings(ctx, args, deps)
	case "rate":
		return handleRate(ctx, args, deps)
	case "cart":
		return handleCart(ctx, args, deps)
	case "profile":
		return handleProfile(ctx, args, deps)
	case "order":
		return handleOrder(ctx, args, deps)
	case "pay":
		return handlePay(ctx, args, deps)
	case "orders":
		return handleOrders(ctx, deps)
	case "cancel":
		return handleCancel(ctx, args, deps)
	case "account":
		return handleAccount(ctx, args, deps)
	case "support":
		return handleSupport(ctx, args, deps)
	case "admin":
		return handleAdmin(ctx, args, deps)
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println(`ShopMate CLI

Usage:
  shopmate <command> [flags]

Account:
  register        Create an account (prompts for the emailed OTP)
  login           Sign in with email and password
  logout          Sign out and forget the stored token
  whoami          Show the current session
  reset-password  Recover a forgotten password via emailed OTP
  account         change-password | login-history | remove-address | delete

Shopping:
  products        List the catalog (-category, -search)
  product         Show one product (-id)
  ratings         Show a product's ratings (-id)
  rate            Rate a product (-id, -stars, -comment)
  cart            add | set | remove | show | clear
  profile         Show or save the delivery profile
  order           Place the order (-method cod|online)
  pay             Pay an online order and watch the payment settle
  orders          List your orders
  cancel          Cancel an order (-id)

Support:
  support         open | list | show | reply | faqs

Back office:
  admin           dashboard | products | users | orders | tickets | faqs`)
}
