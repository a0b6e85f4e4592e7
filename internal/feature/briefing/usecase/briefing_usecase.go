package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"briefing_backend/internal/feature/briefing/domain/entity"
	newsentity "briefing_backend/internal/feature/news/domain/entity"
	quoteentity "briefing_backend/internal/feature/quote/domain/entity"
	trendingentity "briefing_backend/internal/feature/trending/domain/entity"
)

const (
	// MaxNewsItems はブリーフィングに含めるニュースの最大件数です。
	MaxNewsItems = 5
	// DefaultListLimit は一覧取得のデフォルト件数です。
	DefaultListLimit = 20
	// summaryPromptTemplate はニュース要約生成のプロンプトテンプレートです。
	summaryPromptTemplate = "Summarize the following news headlines about %s (%s) in two or three plain sentences for a daily stock briefing. Do not use markdown.\n\n%s"
)

// SnapshotFetcher は銘柄スナップショットの取得を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SnapshotFetcher interface {
	FetchSnapshot(ctx context.Context, ticker string) quoteentity.StockSnapshot
}

// NewsFetcher はベストエフォートのニュース取得を抽象化します。
type NewsFetcher interface {
	FetchNews(ctx context.Context, ticker string, limit int) []newsentity.NewsItem
}

// NewsSummarizer はニュース見出しの要約生成を抽象化します。
type NewsSummarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// BriefingRepository はブリーフィングの永続化レイヤーを抽象化します。
type BriefingRepository interface {
	Save(ctx context.Context, b entity.StoredBriefing) (uint, error)
	ListRecent(ctx context.Context, limit int) ([]entity.StoredBriefing, error)
	FindByID(ctx context.Context, id uint) (entity.StoredBriefing, error)
}

// briefingUsecase はブリーフィング組み立てのユースケースを定義します。
// summarizerとrepoはnil許容で、未設定の場合は該当機能が無効になります。
type briefingUsecase struct {
	quotes     SnapshotFetcher
	news       NewsFetcher
	summarizer NewsSummarizer
	repo       BriefingRepository
}

// NewBriefingUsecase はbriefingUsecaseの新しいインスタンスを生成します。
func NewBriefingUsecase(quotes SnapshotFetcher, news NewsFetcher, summarizer NewsSummarizer, repo BriefingRepository) *briefingUsecase {
	return &briefingUsecase{quotes: quotes, news: news, summarizer: summarizer, repo: repo}
}

// Assemble はスナップショットとニュースからブリーフィングレコードを組み立てます。
//
// 入力検証の失敗と解決不能な銘柄はErrValidationをラップしたエラーとして
// 同期的に返します。ニュース取得はベストエフォートであり、0件でも
// レコードは有効です。このレイヤーではリトライを行いません。
func (bu *briefingUsecase) Assemble(ctx context.Context, ticker string, category trendingentity.Category) (*entity.BriefingRecord, error) {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" {
		return nil, fmt.Errorf("%w: ticker must not be empty", ErrValidation)
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: invalid screener category %q, allowed values are %s",
			ErrValidation, category, trendingentity.AllowedCategoryNames())
	}

	slog.Info("assembling briefing", "ticker", t, "category", category)

	snap := bu.quotes.FetchSnapshot(ctx, t)
	if snap.Status == quoteentity.StatusError {
		return nil, fmt.Errorf("%w: cannot resolve %s: %s", ErrValidation, t, snap.ErrorMessage)
	}

	news := bu.news.FetchNews(ctx, t, MaxNewsItems)
	if len(news) > MaxNewsItems {
		news = news[:MaxNewsItems]
	}

	rec := &entity.BriefingRecord{
		Ticker:      t,
		Category:    category,
		GeneratedAt: time.Now(),
		Snapshot:    snap,
		News:        news,
	}

	// AI要約はオプション。失敗してもブリーフィング自体は成立させる。
	if bu.summarizer != nil && len(news) > 0 {
		summary, err := bu.summarizer.Summarize(ctx, buildSummaryPrompt(rec))
		if err != nil {
			slog.Warn("news summary generation failed", "ticker", t, "error", err)
		} else {
			rec.Summary = strings.TrimSpace(summary)
		}
	}

	slog.Info("briefing assembled", "ticker", t, "news_count", len(news))
	return rec, nil
}

// Generate はブリーフィングを組み立て、マークダウンに描画し、
// リポジトリが設定されていれば永続化します（永続化失敗は非致命）。
func (bu *briefingUsecase) Generate(ctx context.Context, ticker string, category trendingentity.Category) (*entity.BriefingRecord, string, error) {
	rec, err := bu.Assemble(ctx, ticker, category)
	if err != nil {
		return nil, "", err
	}

	content := RenderMarkdown(rec)

	if bu.repo != nil {
		stored := toStored(rec, content)
		if id, err := bu.repo.Save(ctx, stored); err != nil {
			slog.Warn("failed to persist briefing", "ticker", rec.Ticker, "error", err)
		} else {
			slog.Info("briefing persisted", "ticker", rec.Ticker, "id", id)
		}
	}

	return rec, content, nil
}

// ListRecent は保存済みブリーフィングを新しい順に返します。
func (bu *briefingUsecase) ListRecent(ctx context.Context, limit int) ([]entity.StoredBriefing, error) {
	if bu.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if limit <= 0 || limit > 100 {
		limit = DefaultListLimit
	}
	return bu.repo.ListRecent(ctx, limit)
}

// FindByID は保存済みブリーフィングをIDで取得します。
func (bu *briefingUsecase) FindByID(ctx context.Context, id uint) (entity.StoredBriefing, error) {
	if bu.repo == nil {
		return entity.StoredBriefing{}, ErrRepositoryNotConfigured
	}
	return bu.repo.FindByID(ctx, id)
}

func toStored(rec *entity.BriefingRecord, content string) entity.StoredBriefing {
	return entity.StoredBriefing{
		Ticker:        rec.Ticker,
		Category:      string(rec.Category),
		GeneratedAt:   rec.GeneratedAt,
		Price:         rec.Snapshot.Price,
		ChangePercent: rec.Snapshot.ChangePercent,
		Content:       content,
	}
}

// buildSummaryPrompt はニュース見出しから要約プロンプトを組み立てます。
func buildSummaryPrompt(rec *entity.BriefingRecord) string {
	var sb strings.Builder
	for i, n := range rec.News {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, n.Title)
	}
	return fmt.Sprintf(summaryPromptTemplate, rec.Snapshot.Name, rec.Ticker, sb.String())
}
