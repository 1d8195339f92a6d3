package service

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/harshadbhandure/money-matters/internal/auth"
	"github.com/harshadbhandure/money-matters/internal/metrics"
	"github.com/harshadbhandure/money-matters/internal/middleware"
	"github.com/harshadbhandure/money-matters/pkg/api/apiconnect"
)

// PublicProcedures can be called without an access token.
var PublicProcedures = []string{
	apiconnect.AuthServiceRegisterProcedure,
	apiconnect.AuthServiceLoginProcedure,
	apiconnect.AuthServiceRefreshProcedure,
}

// Directory is the group directory as used by the RPC layer.
type Directory interface {
	Groups
	UserSearcher
}

// Deps are the components behind the RPC services.
type Deps struct {
	Sessions     Sessions
	AccessTokens *auth.JWTManager
	Directory    Directory
	Ledger       Ledger
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// Mount registers every RPC service on mux. Calls pass through the metrics,
// auth and logging interceptors in that order.
func Mount(mux *http.ServeMux, deps Deps) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(deps.Metrics),
		middleware.RequireAuth(deps.AccessTokens, PublicProcedures...),
		middleware.LoggingInterceptor(logger),
	)

	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(deps.Sessions, logger), interceptors))
	mux.Handle(apiconnect.NewUserServiceHandler(NewUserService(deps.Sessions, deps.Directory, logger), interceptors))
	mux.Handle(apiconnect.NewGroupServiceHandler(NewGroupService(deps.Directory, logger), interceptors))
	mux.Handle(apiconnect.NewExpenseServiceHandler(NewExpenseService(deps.Ledger, logger), interceptors))
}
