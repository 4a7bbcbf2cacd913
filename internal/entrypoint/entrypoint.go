package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"versekeeper/internal/chat"
	"versekeeper/internal/config"
	"versekeeper/internal/corpus"
	"versekeeper/internal/daily"
	"versekeeper/internal/database"
	"versekeeper/internal/database/bookmarks"
	"versekeeper/internal/database/highlights"
	"versekeeper/internal/database/notes"
	http_controllers "versekeeper/internal/http"
	"versekeeper/internal/position"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting VerseKeeper v%s", version)

	// Load the scripture corpus; it is immutable for the process lifetime.
	if _, err := os.Stat(cfg.Corpus.Path); os.IsNotExist(err) {
		log.Fatalf("Corpus file %s does not exist. Set 'CORPUS_PATH' to a scripture JSON file.", cfg.Corpus.Path)
	}
	scripture, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		log.Fatalf("Failed to load corpus: %v", err)
	}
	log.Printf("Corpus loaded: %d books from %s", len(scripture.Books()), cfg.Corpus.Path)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	notesRepo := notes.NewRepository(db)
	bookmarksRepo := bookmarks.NewRepository(db)
	highlightsRepo := highlights.NewRepository(db)

	if err := highlightsRepo.EnsureDefaultColors(); err != nil {
		log.Fatalf("Failed to seed highlight palette: %v", err)
	}

	// Reading position lives in the composition, handed to whoever needs it.
	tracker := position.NewTracker()

	dailyVerse := daily.NewService(scripture)
	if err := dailyVerse.Start(cfg.DailyVerse.Schedule); err != nil {
		log.Fatalf("Failed to start daily verse scheduler: %v", err)
	}

	var conversation *chat.Conversation
	if cfg.Chat.APIKey != "" {
		client := chat.NewOpenRouterClient(cfg.Chat.BaseURL, cfg.Chat.APIKey, cfg.Chat.Model)
		conversation = chat.NewConversation(client)
	} else {
		log.Printf("WARNING: Chat API key is not set. Chat endpoints will be disabled. Set 'CHAT_API_KEY' environment variable to enable.")
	}

	routerCfg := http_controllers.RouterConfig{
		Corpus:          scripture,
		Database:        db,
		NotesStore:      notesRepo,
		BookmarksStore:  bookmarksRepo,
		HighlightsStore: highlightsRepo,
		Tracker:         tracker,
		DailyVerse:      dailyVerse,
		Conversation:    conversation,
		Version:         version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		dailyVerse.Stop()
	}

	Serve(router, cfg, onShutdown)
}
