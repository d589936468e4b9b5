package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/auth"
	analyticshandler "github.com/carson-networks/expense-server/internal/handlers/v1/analytics"
	authhandler "github.com/carson-networks/expense-server/internal/handlers/v1/auth"
	categoryhandler "github.com/carson-networks/expense-server/internal/handlers/v1/category"
	grouphandler "github.com/carson-networks/expense-server/internal/handlers/v1/group"
	"github.com/carson-networks/expense-server/internal/handlers/v1/status"
	transactionhandler "github.com/carson-networks/expense-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

// Serve builds the Huma API, registers every handler, and blocks on the
// HTTP listener.
func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaAPI := humago.New(mux, huma.DefaultConfig("expense-server", "1.0.0"))

	humaAPI.UseMiddleware(logging.Middleware(r.Logger))
	humaAPI.UseMiddleware(auth.Middleware(humaAPI, r.Service.Auth))

	status.NewHandler().Register(humaAPI)

	authhandler.NewSignUpHandler(r.Service.Auth).Register(humaAPI)
	authhandler.NewLoginHandler(r.Service.Auth).Register(humaAPI)

	categoryhandler.NewCreateCategoryHandler(r.Service.Category).Register(humaAPI)
	categoryhandler.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	categoryhandler.NewUpdateCategoryHandler(r.Service.Category).Register(humaAPI)
	categoryhandler.NewDeleteCategoryHandler(r.Service.Category).Register(humaAPI)

	transactionhandler.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transactionhandler.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)

	grouphandler.NewCreateGroupHandler(r.Operator).Register(humaAPI)
	grouphandler.NewGetGroupHandler(r.Service.Group).Register(humaAPI)
	grouphandler.NewListGroupsHandler(r.Service.Group).Register(humaAPI)
	grouphandler.NewUpdateGroupHandler(r.Service.Group).Register(humaAPI)
	grouphandler.NewDeleteGroupHandler(r.Service.Group).Register(humaAPI)
	grouphandler.NewAddMemberHandler(r.Service.Group).Register(humaAPI)
	grouphandler.NewRemoveMemberHandler(r.Service.Group).Register(humaAPI)
	grouphandler.NewGroupAnalyticsHandler(r.Service.Group, r.Service.Analytics).Register(humaAPI)

	analyticshandler.NewOverviewHandler(r.Service.Analytics).Register(humaAPI)
	analyticshandler.NewByCategoryHandler(r.Service.Analytics).Register(humaAPI)
	analyticshandler.NewByDateHandler(r.Service.Analytics).Register(humaAPI)
	analyticshandler.NewExportHandler(r.Service.Export).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
