package service

import (
	"sort"
	"time"

	"inventix/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArticleSales aggregates sold quantity and revenue for one article.
type ArticleSales struct {
	ArticleID uuid.UUID       `json:"article_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// DashboardSummary is the per-period result set.
//
//	grossMargin = salesTTC − COGS
//	netResult   = grossMargin − purchasesTTC
type DashboardSummary struct {
	Year         int             `json:"year"`
	Month        int             `json:"month,omitempty"` // 0 = whole year
	SalesTTC     decimal.Decimal `json:"sales_ttc"`
	PurchasesTTC decimal.Decimal `json:"purchases_ttc"`
	COGS         decimal.Decimal `json:"cogs"`
	GrossMargin  decimal.Decimal `json:"gross_margin"`
	NetResult    decimal.Decimal `json:"net_result"`
	TopArticles  []ArticleSales  `json:"top_articles"`
}

type DashboardService interface {
	Summary(orgID uuid.UUID, year, month int) (*DashboardSummary, error)
}

type dashboardService struct {
	movementRepo repository.MovementRepository
	purchaseRepo repository.PurchaseRepository
}

func NewDashboardService(movementRepo repository.MovementRepository, purchaseRepo repository.PurchaseRepository) DashboardService {
	return &dashboardService{movementRepo: movementRepo, purchaseRepo: purchaseRepo}
}

// periodBounds returns [start, end) for a year or a single month of it.
func periodBounds(year, month int) (time.Time, time.Time) {
	if month >= 1 && month <= 12 {
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

func (s *dashboardService) Summary(orgID uuid.UUID, year, month int) (*DashboardSummary, error) {
	start, end := periodBounds(year, month)

	movements, err := s.movementRepo.FindSalesBetween(orgID, start, end)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.FindBetween(orgID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Year:         year,
		Month:        month,
		SalesTTC:     decimal.Zero,
		PurchasesTTC: decimal.Zero,
		COGS:         decimal.Zero,
	}

	byArticle := make(map[uuid.UUID]*ArticleSales)
	for _, m := range movements {
		revenue := m.UnitTTC.Mul(m.Quantity)
		summary.SalesTTC = summary.SalesTTC.Add(revenue)
		if m.Article != nil {
			summary.COGS = summary.COGS.Add(m.Article.PurchasePrice.Mul(m.Quantity))
		}

		agg, ok := byArticle[m.ArticleID]
		if !ok {
			agg = &ArticleSales{ArticleID: m.ArticleID, Quantity: decimal.Zero, Revenue: decimal.Zero}
			if m.Article != nil {
				agg.Code = m.Article.Code
				agg.Name = m.Article.Name
			}
			byArticle[m.ArticleID] = agg
		}
		agg.Quantity = agg.Quantity.Add(m.Quantity)
		agg.Revenue = agg.Revenue.Add(revenue)
	}

	for _, p := range purchases {
		summary.PurchasesTTC = summary.PurchasesTTC.Add(p.AmountTTC)
	}

	summary.GrossMargin = summary.SalesTTC.Sub(summary.COGS)
	summary.NetResult = summary.GrossMargin.Sub(summary.PurchasesTTC)

	summary.TopArticles = make([]ArticleSales, 0, len(byArticle))
	for _, agg := range byArticle {
		summary.TopArticles = append(summary.TopArticles, *agg)
	}
	sort.Slice(summary.TopArticles, func(i, j int) bool {
		return summary.TopArticles[i].Quantity.GreaterThan(summary.TopArticles[j].Quantity)
	})

	return summary, nil
}
