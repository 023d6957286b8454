package main

import (
	"log"

	httpapi "github.com/Matthewweb42/Tic-Tac-Move/internal/api/http"
	"github.com/Matthewweb42/Tic-Tac-Move/internal/api/ws"
	"github.com/Matthewweb42/Tic-Tac-Move/internal/config"
	"github.com/Matthewweb42/Tic-Tac-Move/internal/room"
	"github.com/Matthewweb42/Tic-Tac-Move/internal/store"
)

func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	hub := ws.NewHub()
	rm := room.NewManager(mem, cfg, hub)
	r := httpapi.NewRouter(rm, hub)

	log.Printf("listening on %s (board size %d)", cfg.HTTPAddr, cfg.BoardSize)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
