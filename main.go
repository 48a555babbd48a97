package main

import (
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/savings-server/api"
	"github.com/carson-networks/savings-server/internal/config"
	"github.com/carson-networks/savings-server/internal/logging"
	"github.com/carson-networks/savings-server/internal/operator"
	"github.com/carson-networks/savings-server/internal/service"
	"github.com/carson-networks/savings-server/internal/storage"
)

const maxWriteWorkers = 4

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithFields(logrus.Fields{
		"name":        envConfig.Name,
		"environment": envConfig.Environment,
	}).Info("savings-server starting")

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, writeWorkers())
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.Port,
			Service: svc,
			Storage: dbStorage,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}

func writeWorkers() int {
	return min(maxWriteWorkers, max(1, runtime.NumCPU()))
}
