package services

import (
	"math"
	"sort"
	"time"

	"researchflow/models"
	"researchflow/repositories"
)

const (
	recentArticleCount = 5
	longestCyclesCount = 5
	monthLabelLayout   = "Jan 2006"
	hoursPerDay        = 24
)

type DashboardService interface {
	Overview() models.DashboardOverview
	Stats() models.DashboardStats
	Reviews() models.ReviewQueue
	Analytics() models.AnalyticsReport
}

type dashboardService struct {
	articleService ArticleService
	articleRepo    repositories.ArticleRepository
	eventRepo      repositories.LifecycleEventRepository
	now            func() time.Time
}

func NewDashboardService(articleService ArticleService, articleRepo repositories.ArticleRepository, eventRepo repositories.LifecycleEventRepository) DashboardService {
	return &dashboardService{
		articleService: articleService,
		articleRepo:    articleRepo,
		eventRepo:      eventRepo,
		now:            time.Now,
	}
}

func (s *dashboardService) Overview() models.DashboardOverview {
	return models.DashboardOverview{
		Stats:          s.Stats(),
		RecentArticles: s.articleService.RecentArticles(recentArticleCount),
	}
}

func (s *dashboardService) Stats() models.DashboardStats {
	distribution := s.articleRepo.CountByStatus()
	events := s.eventRepo.GetAll()

	return models.DashboardStats{
		TotalArticles:      s.articleRepo.Count(),
		ArticlesInReview:   distribution[models.StatusUnderReview],
		ArticlesPublished:  distribution[models.StatusPublished],
		AverageReviewTime:  AverageReviewDays(events),
		StatusDistribution: distribution,
		MonthlySubmissions: MonthlySubmissions(events),
		ReviewerDecisions:  ReviewerDecisions(events),
	}
}

func (s *dashboardService) Reviews() models.ReviewQueue {
	queue := s.articleService.ReviewQueue()
	events := s.eventRepo.GetAll()

	return models.ReviewQueue{
		Stats: models.ReviewStats{
			Pending:            len(queue),
			CompletedThisMonth: decisionsInMonth(events, s.now()),
			AverageDays:        AverageReviewDays(events),
		},
		Articles: queue,
	}
}

func (s *dashboardService) Analytics() models.AnalyticsReport {
	articles := s.articleRepo.GetAll()
	events := s.eventRepo.GetAll()

	return models.AnalyticsReport{
		Stats:               s.Stats(),
		AcceptanceRate:      AcceptanceRate(events),
		AverageVersions:     AverageVersions(articles),
		ActiveReviewers:     activeReviewers(events),
		LongestReviewCycles: LongestReviewCycles(articles, longestCyclesCount),
	}
}

// MonthlySubmissions counts events entering SUBMITTED per calendar month, oldest first.
func MonthlySubmissions(events []models.LifecycleEvent) []models.MonthlyCount {
	counts := make(map[time.Time]int)
	for _, e := range events {
		if e.NewState != models.StatusSubmitted {
			continue
		}
		ts := e.Timestamp.UTC()
		counts[time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)]++
	}

	months := make([]time.Time, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]models.MonthlyCount, 0, len(months))
	for _, m := range months {
		out = append(out, models.MonthlyCount{Month: m.Format(monthLabelLayout), Count: counts[m]})
	}
	return out
}

// ReviewerDecisions counts decision events, always listing the three decisions.
func ReviewerDecisions(events []models.LifecycleEvent) []models.DecisionCount {
	decisions := []models.ArticleStatus{models.StatusAccepted, models.StatusRevisionRequired, models.StatusRejected}
	counts := make(map[models.ArticleStatus]int, len(decisions))
	for _, e := range events {
		if e.NewState.IsDecision() {
			counts[e.NewState]++
		}
	}

	out := make([]models.DecisionCount, 0, len(decisions))
	for _, d := range decisions {
		out = append(out, models.DecisionCount{Decision: d.Label(), Count: counts[d]})
	}
	return out
}

// AverageReviewDays is the mean time, in days rounded to one decimal, from an article
// entering UNDER_REVIEW to the next decision on it. It is 0 when no round completed.
func AverageReviewDays(events []models.LifecycleEvent) float64 {
	byArticle := make(map[string][]models.LifecycleEvent)
	for _, e := range events {
		byArticle[e.ArticleID] = append(byArticle[e.ArticleID], e)
	}

	var total time.Duration
	rounds := 0
	for _, list := range byArticle {
		var started *time.Time
		for _, e := range SortEvents(list) {
			switch {
			case e.NewState == models.StatusUnderReview:
				ts := e.Timestamp
				started = &ts
			case e.NewState.IsDecision() && started != nil:
				total += e.Timestamp.Sub(*started)
				rounds++
				started = nil
			}
		}
	}
	if rounds == 0 {
		return 0
	}
	return roundTenth(total.Hours() / hoursPerDay / float64(rounds))
}

// AcceptanceRate is the share of accept decisions among accept and reject decisions,
// as a whole percentage.
func AcceptanceRate(events []models.LifecycleEvent) int {
	accepted, rejected := 0, 0
	for _, e := range events {
		switch e.NewState {
		case models.StatusAccepted:
			accepted++
		case models.StatusRejected:
			rejected++
		}
	}
	if accepted+rejected == 0 {
		return 0
	}
	return int(math.Round(float64(accepted) * 100 / float64(accepted+rejected)))
}

// AverageVersions is the mean current version number, rounded to one decimal.
func AverageVersions(articles []models.Article) float64 {
	if len(articles) == 0 {
		return 0
	}
	sum := 0
	for _, a := range articles {
		sum += a.CurrentVersionNumber
	}
	return roundTenth(float64(sum) / float64(len(articles)))
}

// LongestReviewCycles returns up to limit articles that went through more than one
// version, most versions first.
func LongestReviewCycles(articles []models.Article, limit int) []models.Article {
	out := []models.Article{}
	for _, a := range articles {
		if a.CurrentVersionNumber > 1 {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CurrentVersionNumber > out[j].CurrentVersionNumber
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func activeReviewers(events []models.LifecycleEvent) int {
	seen := make(map[string]bool)
	for _, e := range events {
		if e.ChangedByRole == models.RoleReviewer {
			seen[e.ChangedBy] = true
		}
	}
	return len(seen)
}

func decisionsInMonth(events []models.LifecycleEvent, now time.Time) int {
	now = now.UTC()
	count := 0
	for _, e := range events {
		ts := e.Timestamp.UTC()
		if e.NewState.IsDecision() && ts.Year() == now.Year() && ts.Month() == now.Month() {
			count++
		}
	}
	return count
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
