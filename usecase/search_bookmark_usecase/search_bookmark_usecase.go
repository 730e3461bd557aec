package search_bookmark_usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"stash/domain"
	"stash/port/browse_port"
	"stash/port/domain_match_port"
	"stash/port/embedding_port"
	"stash/port/open_count_port"
	"stash/port/tag_match_port"
	"stash/port/vector_match_port"
	"stash/utils/errors"
	"stash/utils/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// SearchParams carries the raw request from the boundary. Enum values
// arrive as strings and are validated here, not in the handler.
type SearchParams struct {
	Query            string   `json:"query"`
	Tags             []string `json:"tags"`
	Types            []string `json:"types"`
	SpecialFilters   []string `json:"special_filters"`
	Cursor           *string  `json:"cursor"`
	Limit            int      `json:"limit"`
	MatchingDistance float64  `json:"matching_distance"`
}

// Options bounds request shaping. MatchingDistance widens the vector
// result set relative to the best match; clients bump it by +0.1 for a
// "show more results" affordance.
type Options struct {
	DefaultLimit            int
	MaxLimit                int
	DefaultMatchingDistance float64
	EmbedTimeout            time.Duration
}

func DefaultOptions() Options {
	return Options{
		DefaultLimit:            20,
		MaxLimit:                100,
		DefaultMatchingDistance: 0.1,
		EmbedTimeout:            5 * time.Second,
	}
}

// SearchBookmarkUsecase runs the hybrid retrieval pipeline: classify the
// query, run the applicable matchers concurrently, fuse, boost by open
// counts, paginate. Requests are stateless and read-only.
type SearchBookmarkUsecase struct {
	tagMatchPort    tag_match_port.TagMatchPort
	domainMatchPort domain_match_port.DomainMatchPort
	vectorMatchPort vector_match_port.VectorMatchPort
	embeddingPort   embedding_port.EmbeddingPort
	openCountPort   open_count_port.OpenCountPort
	browsePort      browse_port.BrowsePort
	policy          domain.ScoringPolicy
	opts            Options
	logger          *slog.Logger
	contextLogger   *logger.ContextLogger
}

func NewSearchBookmarkUsecase(
	tagMatchPort tag_match_port.TagMatchPort,
	domainMatchPort domain_match_port.DomainMatchPort,
	vectorMatchPort vector_match_port.VectorMatchPort,
	embeddingPort embedding_port.EmbeddingPort,
	openCountPort open_count_port.OpenCountPort,
	browsePort browse_port.BrowsePort,
	policy domain.ScoringPolicy,
	opts Options,
) *SearchBookmarkUsecase {
	return &SearchBookmarkUsecase{
		tagMatchPort:    tagMatchPort,
		domainMatchPort: domainMatchPort,
		vectorMatchPort: vectorMatchPort,
		embeddingPort:   embeddingPort,
		openCountPort:   openCountPort,
		browsePort:      browsePort,
		policy:          policy,
		opts:            opts,
		logger:          slog.Default(),
		contextLogger:   logger.NewContextLogger(slog.Default()),
	}
}

type searchInput struct {
	query            string
	tags             []string
	types            []domain.BookmarkType
	specialFilters   []domain.SpecialFilter
	cursor           *string
	limit            int
	matchingDistance float64
}

func (u *SearchBookmarkUsecase) normalize(params SearchParams) (*searchInput, error) {
	limit := params.Limit
	if limit == 0 {
		limit = u.opts.DefaultLimit
	}
	if limit < 0 {
		return nil, errors.ValidationError("limit must be positive", map[string]interface{}{
			"limit": params.Limit,
		})
	}
	if limit > u.opts.MaxLimit {
		return nil, errors.ValidationError("limit exceeds maximum", map[string]interface{}{
			"limit": params.Limit,
			"max":   u.opts.MaxLimit,
		})
	}

	matchingDistance := params.MatchingDistance
	if matchingDistance == 0 {
		matchingDistance = u.opts.DefaultMatchingDistance
	}
	if matchingDistance < 0 || matchingDistance > 2 {
		return nil, errors.ValidationError("matching distance out of range", map[string]interface{}{
			"matching_distance": params.MatchingDistance,
		})
	}

	tags := make([]string, 0, len(params.Tags))
	for _, tag := range params.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}

	types := make([]domain.BookmarkType, 0, len(params.Types))
	for _, raw := range params.Types {
		parsed, err := domain.ParseBookmarkType(raw)
		if err != nil {
			return nil, errors.ValidationError("unknown bookmark type", map[string]interface{}{
				"type": raw,
			})
		}
		types = append(types, parsed)
	}

	specialFilters := make([]domain.SpecialFilter, 0, len(params.SpecialFilters))
	for _, raw := range params.SpecialFilters {
		parsed, err := domain.ParseSpecialFilter(raw)
		if err != nil {
			return nil, errors.ValidationError("unknown special filter", map[string]interface{}{
				"filter": raw,
			})
		}
		specialFilters = append(specialFilters, parsed)
	}

	return &searchInput{
		query:            strings.TrimSpace(params.Query),
		tags:             tags,
		types:            types,
		specialFilters:   specialFilters,
		cursor:           params.Cursor,
		limit:            limit,
		matchingDistance: matchingDistance,
	}, nil
}

func (u *SearchBookmarkUsecase) Execute(ctx context.Context, params SearchParams) (*domain.SearchPage, error) {
	user, err := domain.GetUserFromContext(ctx)
	if err != nil {
		u.logger.Error("user context not found", "error", err)
		return nil, err
	}

	input, err := u.normalize(params)
	if err != nil {
		return nil, err
	}

	// No query, no tags, no types: skip the ranking pipeline and page
	// straight out of storage.
	if input.query == "" && len(input.tags) == 0 && len(input.types) == 0 {
		ctx = context.WithValue(ctx, logger.OperationKey, "bookmark_browse")
		return u.browse(ctx, user.UserID, input)
	}
	ctx = context.WithValue(ctx, logger.OperationKey, "bookmark_search")

	classification := domain.ClassifyQuery(input.query)

	var tagResults, domainResults, vectorResults []*domain.SearchResult

	g, gctx := errgroup.WithContext(ctx)

	if len(input.tags) > 0 {
		g.Go(func() error {
			results, err := u.tagMatchPort.SearchByTags(gctx, user.UserID, input.tags, input.types, input.specialFilters)
			if err != nil {
				return err
			}
			tagResults = results
			return nil
		})
	}

	if classification.IsDomain {
		g.Go(func() error {
			results, err := u.domainMatchPort.SearchByDomain(gctx, user.UserID, classification.Domain, input.types, input.specialFilters)
			if err != nil {
				return err
			}
			domainResults = results
			return nil
		})
	}

	if input.query != "" {
		g.Go(func() error {
			// The vector branch depends on an external embedding call, so
			// it degrades to an empty contribution instead of failing the
			// whole request.
			vectorResults = u.vectorMatch(gctx, user.UserID, input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		u.contextLogger.LogError(ctx, "search_matchers", err)
		return nil, err
	}

	fused := fuseResults(u.policy, tagResults, domainResults, vectorResults)

	if err := u.applyOpenBoost(ctx, user.UserID, fused); err != nil {
		return nil, err
	}

	page := paginate(fused, input.cursor, input.limit)

	u.logger.Info("search completed",
		"user_id", user.UserID,
		"query", input.query,
		"tag_hits", len(tagResults),
		"domain_hits", len(domainResults),
		"vector_hits", len(vectorResults),
		"page_size", len(page.Bookmarks),
		"has_more", page.HasMore)

	return page, nil
}

func (u *SearchBookmarkUsecase) vectorMatch(ctx context.Context, userID uuid.UUID, input *searchInput) []*domain.SearchResult {
	embedCtx, cancel := context.WithTimeout(ctx, u.opts.EmbedTimeout)
	defer cancel()

	embedStart := time.Now()
	embedding, err := u.embeddingPort.EmbedQuery(embedCtx, input.query)
	if err != nil {
		u.logger.Warn("embedding failed, degrading to exact matchers only",
			"error", err,
			"user_id", userID)
		return nil
	}
	u.contextLogger.LogDuration(ctx, "embed_query", time.Since(embedStart))

	results, err := u.vectorMatchPort.SearchByVector(ctx, userID, embedding, input.tags, input.types, input.specialFilters, input.matchingDistance)
	if err != nil {
		u.logger.Warn("vector search failed, degrading to exact matchers only",
			"error", err,
			"user_id", userID)
		return nil
	}

	return results
}

// browse serves the default listing. Base score is zero, so after the
// popularity boost the in-page ordering stays the storage order (starred
// first, newest first); the boost only fills in open counts and scores
// for clients that display them.
func (u *SearchBookmarkUsecase) browse(ctx context.Context, userID uuid.UUID, input *searchInput) (*domain.SearchPage, error) {
	bookmarks, err := u.browsePort.FetchBookmarksCursor(ctx, userID, input.cursor, input.limit+1, input.specialFilters)
	if err != nil {
		return nil, err
	}

	hasMore := len(bookmarks) > input.limit
	if hasMore {
		bookmarks = bookmarks[:input.limit]
	}

	results := make([]*domain.SearchResult, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		hit := &domain.BookmarkHit{Bookmark: *bookmark}
		results = append(results, domain.NewSearchResult(hit, 0, ""))
	}

	if err := u.applyOpenBoost(ctx, userID, results); err != nil {
		return nil, err
	}

	var nextCursor *string
	if hasMore && len(results) > 0 {
		id := results[len(results)-1].ID
		nextCursor = &id
	}

	u.logger.Info("browse completed",
		"user_id", userID,
		"page_size", len(results),
		"has_more", hasMore)

	return &domain.SearchPage{
		Bookmarks:  results,
		NextCursor: nextCursor,
		HasMore:    hasMore,
	}, nil
}
