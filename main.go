package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/api"
	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("expense-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage, envConfig.JWTSecret, envConfig.TokenExpiry)

	op := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	op.Start()
	defer op.Stop()

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Service:  svc,
			Operator: op,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
