package deps

import (
	"log"

	"github.com/mkamau2/jiseti/config"
	"github.com/mkamau2/jiseti/internal/db"
	"github.com/mkamau2/jiseti/util/storage"
	"github.com/mkamau2/jiseti/util/websockets"
)

type Dependencies struct {
	DB         *db.DB
	Cloudinary *storage.Cloudinary
	WebSocket  *websockets.WebSocketManager
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	cloudinary := storage.NewCloudinary(cfg)
	websocket := websockets.NewWebSocketManager()

	deps := Dependencies{
		DB:         database,
		Cloudinary: cloudinary,
		WebSocket:  websocket,
	}
	return &deps
}
