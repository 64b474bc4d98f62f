package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/remindme-app/remindme/internal/api"
	"github.com/remindme-app/remindme/internal/config"
	"github.com/remindme-app/remindme/internal/db"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := db.Init(cfg.DataDir); err != nil {
		log.Fatalf("init db: %v", err)
	}
	defer db.Close()

	r := api.Routes(cfg)

	// Everything outside /api is the single-page app: the go-app handler
	// serves the page shell and loads web/app.wasm.
	r.Handle("/*", &app.Handler{
		Name:        "RemindMe",
		ShortName:   "RemindMe",
		Description: "Personal reminders with flexible schedules and email notifications.",
		Styles:      []string{"/web/app.css"},
	})

	log.Printf("RemindMe running on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
