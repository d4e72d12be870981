package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/foodlens/backend/internal/domain"
)

// ProductFinder resolves a barcode and reports which source answered.
type ProductFinder interface {
	Lookup(ctx context.Context, barcode string) (*domain.Product, string, error)
}

// ReportService combines the rating, the personalized analysis, AI insights
// for free-text entries and the final verdict into one report.
type ReportService struct {
	products ProductFinder
	insights domain.InsightAnalyzer
	logger   *zap.Logger
}

// NewReportService creates a report service. insights may be nil, in which
// case free-text profile entries are ignored.
func NewReportService(products ProductFinder, insights domain.InsightAnalyzer, logger *zap.Logger) *ReportService {
	return &ReportService{
		products: products,
		insights: insights,
		logger:   logger,
	}
}

// BuildReport looks the barcode up and evaluates it for profile.
func (s *ReportService) BuildReport(
	ctx context.Context,
	barcode string,
	profile *domain.HealthProfile,
) (*domain.ProductReport, error) {
	product, source, err := s.products.Lookup(ctx, barcode)
	if err != nil {
		return nil, err
	}
	report := s.Evaluate(ctx, product, profile)
	report.Source = source
	return report, nil
}

// Evaluate rates a caller-supplied product and analyzes it for profile.
// Analysis and final verdict stay nil when the profile has no health data.
// An insights failure leaves Insights nil and the rule-based findings intact.
func (s *ReportService) Evaluate(
	ctx context.Context,
	product *domain.Product,
	profile *domain.HealthProfile,
) *domain.ProductReport {
	report := &domain.ProductReport{
		Product: domain.ProductSummary{
			Code:           product.Code,
			Name:           product.Name,
			Brand:          product.Brand,
			NovaGroup:      product.NovaGroup,
			NutritionGrade: product.NutritionGrade,
		},
		Rating: RateProduct(product),
		Source: SourceRequest,
	}

	if !profile.HasHealthData() {
		return report
	}

	analysis := AnalyzeProduct(product, profile)
	report.Analysis = analysis

	concerns := analysis.Concerns
	benefits := analysis.Benefits
	if insights := s.customInsights(ctx, product, profile); insights != nil {
		report.Insights = insights
		concerns = mergeFindings(concerns, insights.Concerns)
		benefits = mergeFindings(benefits, insights.Benefits)
	}

	verdict := ComputeFinalVerdict(concerns, benefits)
	report.FinalVerdict = &verdict
	return report
}

func (s *ReportService) customInsights(
	ctx context.Context,
	product *domain.Product,
	profile *domain.HealthProfile,
) *domain.CustomInsights {
	if s.insights == nil || !profile.HasCustomEntries() {
		return nil
	}

	insights, err := s.insights.AnalyzeCustom(ctx, product, profile.CustomHealthIssues, profile.CustomGoals)
	if err != nil {
		s.logger.Warn("custom insights unavailable, using rule-based findings only",
			zap.String("barcode", product.Code),
			zap.Error(err),
		)
		return nil
	}
	return insights
}

func mergeFindings(a, b []domain.Finding) []domain.Finding {
	out := make([]domain.Finding, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
