package app

import (
	"github.com/ampeli/wineroulette/internal/config"
	http_catalog "github.com/ampeli/wineroulette/internal/delivery/http/catalog"
	http_init "github.com/ampeli/wineroulette/internal/delivery/http/init"
	http_access_middleware "github.com/ampeli/wineroulette/internal/delivery/http/middleware/access"
	http_session "github.com/ampeli/wineroulette/internal/delivery/http/session"
	http_voting "github.com/ampeli/wineroulette/internal/delivery/http/voting"
	ws_session "github.com/ampeli/wineroulette/internal/delivery/ws/session"
	infra_postgres_catalog "github.com/ampeli/wineroulette/internal/infra/postgres/catalog"
	infra_pg_init "github.com/ampeli/wineroulette/internal/infra/postgres/init"
	infra_postgres_roulette "github.com/ampeli/wineroulette/internal/infra/postgres/roulette"
	infra_postgres_session "github.com/ampeli/wineroulette/internal/infra/postgres/session"
	infra_postgres_vote "github.com/ampeli/wineroulette/internal/infra/postgres/vote"
	infra_redis_codeset "github.com/ampeli/wineroulette/internal/infra/redis/codeset"
	infra_redis_init "github.com/ampeli/wineroulette/internal/infra/redis/init"
	usecase_catalog "github.com/ampeli/wineroulette/internal/usecase/catalog"
	usecase_session "github.com/ampeli/wineroulette/internal/usecase/session"
	usecase_spin "github.com/ampeli/wineroulette/internal/usecase/spin"
	usecase_vote "github.com/ampeli/wineroulette/internal/usecase/vote"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	codeSet := infra_redis_codeset.New(redisConn, "active_join_codes")

	sessionRepo := infra_postgres_session.New(pgConn)
	rouletteRepo := infra_postgres_roulette.New(pgConn)
	voteRepo := infra_postgres_vote.New(pgConn)
	catalogRepo := infra_postgres_catalog.New(pgConn)

	sessionUC := usecase_session.New(sessionRepo, codeSet)
	spinUC := usecase_spin.New(rouletteRepo, catalogRepo)
	voteUC := usecase_vote.New(voteRepo, codeSet)
	catalogUC := usecase_catalog.New(catalogRepo)

	hub := ws_session.NewHub(sessionUC)
	go hub.Run()

	controllerPool := http_init.NewControllerPool(http_access_middleware.ReadOnly(cfg.HTTP.Mode))
	controllerPool.Add(http_session.New(sessionUC, hub))
	controllerPool.Add(http_voting.New(spinUC, voteUC, hub))
	controllerPool.Add(http_catalog.New(catalogUC))
	controllerPool.Add(ws_session.NewController(hub))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
