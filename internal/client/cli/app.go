package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/novakart/storefront/internal/client/api"
	"github.com/novakart/storefront/internal/client/config"
	"github.com/novakart/storefront/internal/client/repositories/state"
	"github.com/novakart/storefront/internal/client/services"
	"github.com/novakart/storefront/internal/client/session"
	"github.com/novakart/storefront/internal/logging"

	_ "modernc.org/sqlite"
)

// App owns the wired-up client: configuration, session, services and the
// interactive reader.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store
	apiC    api.Client

	account  *services.AccountService
	catalog  *services.CatalogService
	cart     *services.CartService
	checkout *services.CheckoutService
	orders   *services.OrderService
	admin    *services.AdminService
	theme    *services.ThemeService

	reader *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := state.InitDatabase(ctx, c.StateDBPath)
	if err != nil {
		log.Error(ctx, "error initializing state database", "err", err)
		return nil, err
	}
	states := state.NewSQLiteRepository(db)

	sess := session.NewStore(states, log)

	apiClient := api.NewGraphQLClient(c.EndpointURL, c.RequestTimeout, log,
		api.WithTokenSource(sess.Token),
		api.WithUnauthenticatedHook(func() {
			sess.ForceLogout(context.Background())
		}),
	)

	guard := services.NewGuard(apiClient, sess, log)

	app := &App{
		config:   c,
		log:      log,
		session:  sess,
		apiC:     apiClient,
		account:  services.NewAccountService(apiClient, sess, states, guard, log, c.OTPCooldown, c.OTPResendCap),
		catalog:  services.NewCatalogService(apiClient, c.PageSize),
		cart:     services.NewCartService(apiClient, log),
		checkout: services.NewCheckoutService(apiClient, sess, states, guard, log, c.OTPCooldown, c.OTPResendCap),
		orders:   services.NewOrderService(apiClient, guard, log),
		admin:    services.NewAdminService(apiClient, sess, log),
		theme:    services.NewThemeService(states),
		reader:   bufio.NewReader(os.Stdin),
	}

	sess.SetOnForcedLogout(func() {
		fmt.Println("Your session has ended. Please log in again.")
	})

	return app, nil
}

// Run restores the session and enters the REPL. It blocks until the user
// exits.
func (a *App) Run(ctx context.Context) {
	defer a.apiC.Close()

	if err := a.session.Load(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "err", err)
	}
	a.session.Bootstrap(ctx, a.apiC)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.CurrentUser().IsAdmin()
}

func (a *App) getStatus() string {
	u := a.session.CurrentUser()
	if u == nil {
		if a.session.IsAuthenticated() {
			return "(signed in)"
		}
		return ""
	}
	s := u.Username
	if u.IsAdmin() {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}
