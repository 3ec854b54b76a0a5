package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/screenlog/movie-catalog-backend/api/route"
	"github.com/screenlog/movie-catalog-backend/bootstrap"
	"github.com/screenlog/movie-catalog-backend/domain"
	"github.com/screenlog/movie-catalog-backend/repository"
)

func main() {
	app := bootstrap.App()
	env := app.Env
	defer app.CloseDBConnection()

	db := app.Mongo.Database(env.DBName)
	timeout := time.Duration(env.ContextTimeout) * time.Second

	// The unique title index backstops the populate race; create it before
	// serving traffic.
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if err := repository.NewMovieRepository(db, domain.CollectionMovie).EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()

	engine := gin.Default()
	route.Setup(env, timeout, db, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		log.Fatal(err)
	}
}
