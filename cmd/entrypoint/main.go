package main

import (
	"log"

	"finance-tracker/config"
	"finance-tracker/launcher"
)

// A tiny entrypoint that stages Firebase credentials, resolves the port and
// then execs Streamlit as PID 1.
func main() {
	cfg := config.LoadConfig()
	if err := launcher.New(cfg).Run(); err != nil {
		log.Fatalf("💥 [FATAL] Bootstrap failed: %v", err)
	}
}
