package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"MicCapture/cmd/miccapture/config"
	"MicCapture/internal/monitor"
)

func main() {

	filename := "config.yml"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	cfg, err := config.LoadConfig(filename)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Printf("Config: %+v\n", cfg)

	session, err := config.CreateSession(cfg)
	if err != nil {
		fmt.Printf("Error creating session: %v\n", err)
		return
	}

	stream, err := config.CreateStream(cfg)
	if err != nil {
		fmt.Printf("Error creating stream: %v\n", err)
		return
	}

	if err := session.Start(stream); err != nil {
		fmt.Printf("Error starting capture: %v\n", err)
		return
	}

	recorder := config.CreateRecorder(session)

	done := monitor.EnterKey()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	ticker := time.NewTicker(cfg.Monitor.PollInterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-done:
			break loop
		case <-interrupt:
			break loop
		case <-ticker.C:
			if recorder.Update() {
				sample, cycle := session.Snapshot()
				log.Printf("[%s] cycle %d: latest sample %d", session.State(), cycle, sample)
			}
		}
	}

	fmt.Println("Exiting...")
	session.Close()
	log.Printf("capture %s after %d cycles", session.State(), session.Cycles())

	log.Printf("recorded %d samples, missed %d cycles", len(recorder.Track), recorder.Missed)
	if cfg.Output.Path != "" {
		if err := recorder.Save(cfg.Output.Path); err != nil {
			fmt.Printf("Error saving track: %v\n", err)
			return
		}
		log.Printf("track written to %s", cfg.Output.Path)
	}
}
