package main

import (
	"os"

	"investorapi/cmd"
	"investorapi/internal/logger"
)

func main() {
	log := logger.New()
	defer log.Sync()

	log.Infow("starting investor api", "commitHash", os.Getenv("commit_hash"))
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	err = deps.ApiHandler().StartApi(deps.Config.Server.Port)
	if err != nil {
		log.Fatal(err)
	}
}
