package services

import (
	goContext "context"
	"fmt"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/aroma-labs/aroma_api/analytics"
	"github.com/aroma-labs/aroma_api/dto"
	"github.com/aroma-labs/aroma_api/services/repositories"
	"github.com/aroma-labs/aroma_api/shared"
	log "github.com/sirupsen/logrus"
)

// ProgressService evaluates streaks, rolling averages, and achievement
// unlocks from the stored session history. Evaluation is idempotent: the
// persisted unlock ledger filters achievements already earned, so
// re-running over an unchanged history yields no new unlocks.
type ProgressService struct {
	context.DefaultService
	sqlSvc        *SqliteService
	redisSvc      *RedisService
	monitoringSvc *MonitoringService
	scentSvc      *ScentService
	baseURL       string

	sessionRepo     *repositories.SessionRepository
	achievementRepo *repositories.AchievementRepository
}

const PROGRESS_SVC = "progress_svc"

const statsCacheTTL = 5 * time.Minute

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Configure(ctx *context.Context) error {
	svc.baseURL = os.Getenv("SHARE_BASE_URL")
	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)
	svc.scentSvc = svc.Service(SCENT_SVC).(*ScentService)

	svc.sessionRepo = repositories.NewSessionRepository(svc.sqlSvc.Db())
	svc.achievementRepo = repositories.NewAchievementRepository(svc.sqlSvc.Db())
	return nil
}

// EvaluateProgress recomputes the user's stats, persists any newly crossed
// achievements, and invalidates the cached stats snapshot.
func (svc *ProgressService) EvaluateProgress(userID string) (*dto.ProgressResponse, error) {
	sessions, err := svc.loadSessions(userID)
	if err != nil {
		return nil, err
	}

	unlockedRows, err := svc.achievementRepo.ListUnlocked(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	unlocked := make(map[string]bool, len(unlockedRows))
	for _, row := range unlockedRows {
		unlocked[row.AchievementID] = true
	}

	stats, unlocks := analytics.Evaluate(sessions, unlocked, time.Now())

	resp := &dto.ProgressResponse{
		Stats:           stats,
		NewAchievements: make([]dto.AchievementResponse, 0, len(unlocks)),
	}

	for _, unlock := range unlocks {
		if err := svc.achievementRepo.RecordUnlock(userID, unlock.Achievement.ID, unlock.Value, unlock.UnlockedAt); err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}

		svc.monitoringSvc.RecordAchievementUnlocked(unlock.Achievement.ID)

		unlockedAt := unlock.UnlockedAt
		resp.NewAchievements = append(resp.NewAchievements, dto.AchievementResponse{
			ID:            unlock.Achievement.ID,
			Title:         unlock.Achievement.Title,
			Description:   unlock.Achievement.Description,
			Category:      unlock.Achievement.Category,
			Threshold:     unlock.Achievement.Threshold,
			ShareTemplate: unlock.Achievement.ShareTemplate,
			UnlockedAt:    &unlockedAt,
			Value:         unlock.Value,
		})
	}

	svc.invalidateStatsCache(userID)

	return resp, nil
}

// GetStats serves the stats snapshot, preferring the Redis cache.
func (svc *ProgressService) GetStats(userID string) (*analytics.Stats, error) {
	ctx := goContext.Background()
	cacheKey := svc.statsCacheKey(userID)

	if exists, err := svc.redisSvc.Exists(ctx, cacheKey); err == nil && exists {
		var cached analytics.Stats
		if err := svc.redisSvc.GetJSON(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	sessions, err := svc.loadSessions(userID)
	if err != nil {
		return nil, err
	}

	stats := analytics.ComputeStats(sessions, time.Now())

	if err := svc.redisSvc.Set(ctx, cacheKey, stats, statsCacheTTL); err != nil {
		log.Printf("Failed to cache stats for %s: %v", userID, err)
	}

	return &stats, nil
}

// GetAchievements returns the full catalog annotated with the user's
// unlock state.
func (svc *ProgressService) GetAchievements(userID string) (*dto.AchievementListResponse, error) {
	unlockedRows, err := svc.achievementRepo.ListUnlocked(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	unlockedByID := make(map[string]*dto.AchievementResponse, len(unlockedRows))
	for i := range unlockedRows {
		row := unlockedRows[i]
		unlockedByID[row.AchievementID] = &dto.AchievementResponse{
			UnlockedAt: &row.UnlockedAt,
			Value:      row.Value,
		}
	}

	resp := &dto.AchievementListResponse{
		Achievements: make([]dto.AchievementResponse, 0, len(analytics.Catalog)),
	}

	for _, achievement := range analytics.Catalog {
		entry := dto.AchievementResponse{
			ID:            achievement.ID,
			Title:         achievement.Title,
			Description:   achievement.Description,
			Category:      achievement.Category,
			Threshold:     achievement.Threshold,
			ShareTemplate: achievement.ShareTemplate,
		}

		if unlock, ok := unlockedByID[achievement.ID]; ok {
			entry.UnlockedAt = unlock.UnlockedAt
			entry.Value = unlock.Value
		}

		resp.Achievements = append(resp.Achievements, entry)
	}

	resp.Total = len(resp.Achievements)
	return resp, nil
}

// GetMoments derives per-scent progress moments from recent history.
func (svc *ProgressService) GetMoments(userID string) (*dto.MomentListResponse, error) {
	sessions, err := svc.loadSessions(userID)
	if err != nil {
		return nil, err
	}

	scentNames, err := svc.scentSvc.ScentNames()
	if err != nil {
		return nil, err
	}

	moments := analytics.ComputeMoments(sessions, scentNames, time.Now())

	return &dto.MomentListResponse{
		Moments: moments,
		Total:   len(moments),
	}, nil
}

// CreateShareContent renders shareable text for an achievement, the
// current streak, or the latest progress moment.
func (svc *ProgressService) CreateShareContent(userID string, req dto.ShareRequest) (*dto.ShareResponse, error) {
	platforms := []string{"instagram", "facebook", "x", "whatsapp"}

	switch req.Type {
	case shared.ShareTypeAchievement:
		if req.AchievementID == "" {
			return nil, shared.NewBadRequestError(nil, "Achievement id is required")
		}

		achievement, ok := analytics.CatalogByID(req.AchievementID)
		if !ok {
			return nil, shared.NewNotFoundError(nil, "Achievement not found")
		}

		unlockedRows, err := svc.achievementRepo.ListUnlocked(userID)
		if err != nil {
			return nil, svc.sqlSvc.HandleError(err)
		}

		var owned bool
		var value *float64
		for _, row := range unlockedRows {
			if row.AchievementID == achievement.ID {
				owned = true
				value = row.Value
				break
			}
		}

		if !owned {
			return nil, shared.NewBadRequestError(nil, "Achievement is not unlocked yet")
		}

		return &dto.ShareResponse{
			ShareText: analytics.RenderShareText(achievement, value),
			ShareURL:  fmt.Sprintf("%s/share/achievement/%s", svc.shareBaseURL(), achievement.ID),
			Platforms: platforms,
		}, nil

	case shared.ShareTypeStreak:
		stats, err := svc.GetStats(userID)
		if err != nil {
			return nil, err
		}

		if stats.CurrentStreak == 0 {
			return nil, shared.NewBadRequestError(nil, "No active streak to share")
		}

		return &dto.ShareResponse{
			ShareText: fmt.Sprintf("%d days of smell training in a row. Small steps, real progress.", stats.CurrentStreak),
			ShareURL:  fmt.Sprintf("%s/share/streak", svc.shareBaseURL()),
			Platforms: platforms,
		}, nil

	case shared.ShareTypeMoment:
		moments, err := svc.GetMoments(userID)
		if err != nil {
			return nil, err
		}

		if moments.Total == 0 {
			return nil, shared.NewBadRequestError(nil, "No progress moments to share")
		}

		return &dto.ShareResponse{
			ShareText: moments.Moments[0].Text,
			ShareURL:  fmt.Sprintf("%s/share/moment", svc.shareBaseURL()),
			Platforms: platforms,
		}, nil
	}

	return nil, shared.NewBadRequestError(nil, "Unsupported share type")
}

func (svc *ProgressService) loadSessions(userID string) ([]analytics.Session, error) {
	records, err := svc.sessionRepo.ListSessions(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	sessions := make([]analytics.Session, 0, len(records))
	for i := range records {
		session, err := analytics.FromRecord(&records[i])
		if err != nil {
			// A corrupt row should not take down analytics for the
			// whole history.
			log.Printf("Skipping session %s: %v", records[i].ID, err)
			continue
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (svc *ProgressService) statsCacheKey(userID string) string {
	return fmt.Sprintf("stats:%s", userID)
}

func (svc *ProgressService) invalidateStatsCache(userID string) {
	if err := svc.redisSvc.Delete(goContext.Background(), svc.statsCacheKey(userID)); err != nil {
		log.Printf("Failed to invalidate stats cache for %s: %v", userID, err)
	}
}

func (svc *ProgressService) shareBaseURL() string {
	if svc.baseURL != "" {
		return svc.baseURL
	}
	return "https://aroma.app"
}
