package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/99designs/gqlgen/graphql/playground"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/rs/cors"

	"github.com/VitaminP8/blogql/graph"
	"github.com/VitaminP8/blogql/internal/auth"
	"github.com/VitaminP8/blogql/internal/comment"
	"github.com/VitaminP8/blogql/internal/config"
	"github.com/VitaminP8/blogql/internal/post"
	"github.com/VitaminP8/blogql/internal/storage/memory"
	"github.com/VitaminP8/blogql/internal/storage/postgres"
	"github.com/VitaminP8/blogql/internal/user"
)

func main() {
	storageType := flag.String("storage", "", "Тип хранилища: memory или postgres")
	flag.Parse()

	// конфигурация (в том числе секрет подписи) собирается один раз
	// и дальше только внедряется в конструкторы
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *storageType != "" {
		cfg.Storage = *storageType
	}

	var postStore post.PostStorage
	var commentStore comment.CommentStorage
	var userStore user.UserStorage

	switch cfg.Storage {
	case "postgres":
		db, err := postgres.Connect(cfg.DB)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := postgres.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		log.Println("Используется PostgreSQL хранилище")
		postStore = postgres.NewPostPostgresStorage(db)
		commentStore = postgres.NewCommentPostgresStorage(db)
		userStore = postgres.NewUserPostgresStorage(db)

	case "memory":
		log.Println("Используется in-memory хранилище")
		postStore = memory.NewPostMemoryStorage()
		commentStore = memory.NewCommentMemoryStorage(postStore)
		userStore = memory.NewUserMemoryStorage()

	default:
		log.Fatalf("неизвестный тип хранилища: %s", cfg.Storage)
	}

	tokens := auth.NewManager(cfg.JWTSecret)

	resolver := &graph.Resolver{
		UserStore:    userStore,
		PostStore:    postStore,
		CommentStore: commentStore,
		Tokens:       tokens,
		Gate:         auth.NewGate(tokens, userStore),
	}

	// схема разбирается и привязывается к резолверу при старте
	schema := graphql.MustParseSchema(graph.Schema, resolver, graphql.UseStringDescriptions())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
	})

	http.Handle("/query", c.Handler(&relay.Handler{Schema: schema}))
	// страница с тестовым интерфейсом Playground
	http.Handle("/", playground.Handler("GraphQL Playground", "/query"))

	server := &http.Server{
		Addr: ":" + cfg.Port,
	}

	go func() {
		log.Printf("Сервер запущен на http://localhost:%s/", cfg.Port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Завершение...")

	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatalf("Ошибка при завершении сервера: %v", err)
	}

	log.Println("Сервер остановлен корректно")
}
