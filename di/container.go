package di

import (
	"stash/config"
	"stash/domain"
	"stash/driver/embedding"
	"stash/driver/stash_db"
	"stash/gateway/browse_gateway"
	"stash/gateway/domain_match_gateway"
	"stash/gateway/embedding_gateway"
	"stash/gateway/open_count_gateway"
	"stash/gateway/tag_match_gateway"
	"stash/gateway/vector_match_gateway"
	"stash/usecase/search_bookmark_usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	SearchBookmarkUsecase *search_bookmark_usecase.SearchBookmarkUsecase
	StashDBRepository     *stash_db.StashDBRepository
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	repository := stash_db.NewStashDBRepository(pool)
	policy := domain.DefaultScoringPolicy()

	embedder := embedding.NewOllamaEmbedder(cfg.Embedding.URL, cfg.Embedding.Model, cfg.Embedding.TimeoutSeconds)

	tagMatchGateway := tag_match_gateway.NewTagMatchGateway(repository, policy)
	domainMatchGateway := domain_match_gateway.NewDomainMatchGateway(repository, policy)
	vectorMatchGateway := vector_match_gateway.NewVectorMatchGateway(repository, policy, cfg.Search.VectorRowCap)
	embeddingGateway := embedding_gateway.NewEmbeddingGateway(embedder)
	openCountGateway := open_count_gateway.NewOpenCountGateway(repository)
	browseGateway := browse_gateway.NewBrowseGateway(repository)

	searchUsecase := search_bookmark_usecase.NewSearchBookmarkUsecase(
		tagMatchGateway,
		domainMatchGateway,
		vectorMatchGateway,
		embeddingGateway,
		openCountGateway,
		browseGateway,
		policy,
		search_bookmark_usecase.Options{
			DefaultLimit:            cfg.Search.DefaultLimit,
			MaxLimit:                cfg.Search.MaxLimit,
			DefaultMatchingDistance: cfg.Search.MatchingDistance,
			EmbedTimeout:            cfg.Search.EmbedTimeout,
		},
	)

	return &ApplicationComponents{
		SearchBookmarkUsecase: searchUsecase,
		StashDBRepository:     repository,
	}
}
