package main

import (
	"log"

	"github.com/lintang-b-s/nearest-pointset/pkg/di"

	"go.uber.org/zap"
)

func main() {
	server, cleanup, err := di.InitializePointSetService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	if err := server.Wait(); err != nil {
		server.Log.Error("API stopped", zap.Error(err))
		return
	}
	server.Log.Info("API stopped")
}
