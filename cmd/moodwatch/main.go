package main

import (
	"fmt"
	"log"
	"time"

	"github.com/mathan44862/ai-recommendation-system/internal/app"
	"github.com/mathan44862/ai-recommendation-system/internal/config"
	"github.com/mathan44862/ai-recommendation-system/internal/server"
	"github.com/mathan44862/ai-recommendation-system/internal/tray"
)

func main() {
	fmt.Println("Mood Watcher - webcam mood sampling")

	cfg := config.Load()

	application := app.New(app.Config{
		CameraID:     cfg.CameraID,
		ModelDir:     cfg.ModelDir,
		PlayerSource: cfg.PlayerSource,
		SamplePeriod: cfg.SamplePeriod,
		GateDelay:    cfg.GateDelay,
		ResetPulse:   cfg.ResetPulse,
	})

	if err := application.Start(); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer application.Stop()

	srv := server.New(server.Config{
		App:    application,
		Camera: application.Camera(),
	})

	go func() {
		fmt.Printf("View available at http://localhost%s\n", cfg.ListenAddr)
		if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	t := tray.New()
	t.OnToggle(func(enabled bool) {
		application.SetEnabled(enabled)
	})
	t.OnQuit(func() {
		application.Stop()
	})

	// Mirror the display label into the tray at the sampling cadence.
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for range ticker.C {
			t.UpdateMood(application.State().Label)
		}
	}()

	t.Run()
}
