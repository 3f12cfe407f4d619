package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"coalplan/internal/config"
	"coalplan/internal/ledger"
	"coalplan/internal/loader"
	"coalplan/internal/recorder"
	"coalplan/internal/scheduler"
	"coalplan/internal/simulator"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] coalplan starting...")

	daemon := flag.Bool("daemon", false, "re-run the planning pass on the configured cron schedule")
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Inputs are reloaded on every pass so a daemon picks up fresh tables.
	runOnce := func() error {
		port, err := loader.PortStock(cfg.Inputs.PortStock)
		if err != nil {
			return err
		}
		site, err := loader.SiteStock(cfg.Inputs.SiteStock)
		if err != nil {
			return err
		}
		plan, err := loader.GenerationPlan(cfg.Inputs.GenerationPlan)
		if err != nil {
			return err
		}

		var rec recorder.Recorder
		if cfg.Database.SQLitePath != "" {
			sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
			if err != nil {
				log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
				rec = recorder.NewNoopRecorder()
			} else {
				rec = sr
				defer sr.Close()
			}
		} else {
			rec = recorder.NewNoopRecorder()
		}

		sim := simulator.New(ledger.New(port, site), simulator.Params{
			Phase1GCV:        cfg.Plan.Phase1GCV,
			OtherGCV:         cfg.Plan.OtherGCV,
			SafetyStock:      cfg.Plan.SafetyStock,
			BulkSize:         cfg.Plan.BulkSize,
			SiteContribution: cfg.Plan.SiteContribution,
		}, rec)

		report, err := sim.Run(plan)
		if err != nil {
			return err
		}
		log.Printf("[INFO] horizon complete: %d days, %d blend solves", len(report.Days), len(report.Blends))
		return nil
	}

	if !*daemon {
		if err := runOnce(); err != nil {
			log.Fatalf("[FATAL] planning pass: %v", err)
		}
		log.Println("[INFO] coalplan finished")
		return
	}

	// Daemon mode: periodic re-planning.
	sched := scheduler.New(runOnce)
	if err := sched.Register(cfg.Schedule.PlanCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing planning pass now")
		go sched.RunNow()
	}

	log.Println("[INFO] coalplan is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] coalplan stopped")
}
