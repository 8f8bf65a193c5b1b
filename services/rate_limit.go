package services

import (
	goContext "context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/aroma-labs/aroma_api/shared"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// RateLimitService throttles request rates per identifier using Redis
// fixed windows. Counters live under "rl:<endpoint>:<identifier>" and
// expire with the window, so there is no cleanup job.
type RateLimitService struct {
	context.DefaultService

	configs map[string]*RateLimitConfig
	mutex   sync.RWMutex

	redisSvc *RedisService
}

// RateLimitConfig represents rate limiting configuration
type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	Description  string
	IsActive     bool
}

// RateLimitInfo describes the outcome of a rate limit check.
type RateLimitInfo struct {
	Allowed   bool       `json:"allowed"`
	Remaining int        `json:"remaining"`
	ResetTime *time.Time `json:"reset_time,omitempty"`
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	svc.configs = make(map[string]*RateLimitConfig)
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.initDefaultConfigs()

	return nil
}

func (svc *RateLimitService) initDefaultConfigs() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.configs = map[string]*RateLimitConfig{
		// Training endpoints
		"session_start": {
			EndpointType: "session_start",
			MaxRequests:  30,
			WindowSize:   time.Hour,
			Description:  "Training session start rate limit",
			IsActive:     true,
		},
		"session_complete": {
			EndpointType: "session_complete",
			MaxRequests:  30,
			WindowSize:   time.Hour,
			Description:  "Training session completion rate limit",
			IsActive:     true,
		},
		"share": {
			EndpointType: "share",
			MaxRequests:  20,
			WindowSize:   time.Hour,
			Description:  "Share content generation rate limit",
			IsActive:     true,
		},

		// API endpoints
		"api_general": {
			EndpointType: "api_general",
			MaxRequests:  1000,
			WindowSize:   time.Hour,
			Description:  "General API rate limit per IP",
			IsActive:     true,
		},
		"api_strict": {
			EndpointType: "api_strict",
			MaxRequests:  100,
			WindowSize:   10 * time.Minute,
			Description:  "Strict rate limit for abuse prevention",
			IsActive:     true,
		},
	}
}

// IsAllowed increments the window counter for the identifier and reports
// whether the request falls within the configured budget.
func (svc *RateLimitService) IsAllowed(identifier, endpointType string) (bool, *RateLimitInfo, error) {
	svc.mutex.RLock()
	config, exists := svc.configs[endpointType]
	svc.mutex.RUnlock()

	if !exists || !config.IsActive {
		// If no config exists or inactive, allow the request
		return true, &RateLimitInfo{
			Allowed:   true,
			Remaining: -1,
		}, nil
	}

	ctx := goContext.Background()
	key := fmt.Sprintf("rl:%s:%s", endpointType, identifier)

	count, err := svc.redisSvc.Increment(ctx, key)
	if err != nil {
		return false, nil, err
	}

	// First hit opens a new window.
	if count == 1 {
		if err := svc.redisSvc.Expire(ctx, key, config.WindowSize); err != nil {
			return false, nil, err
		}
	}

	ttl, err := svc.redisSvc.TTL(ctx, key)
	if err != nil {
		return false, nil, err
	}

	resetTime := time.Now().Add(ttl)
	remaining := config.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return int(count) <= config.MaxRequests, &RateLimitInfo{
		Allowed:   int(count) <= config.MaxRequests,
		Remaining: remaining,
		ResetTime: &resetTime,
	}, nil
}

// RateLimit creates a rate limiting middleware for specific endpoint types
func (svc *RateLimitService) RateLimit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identifier := svc.getIdentifier(c)

		allowed, info, err := svc.IsAllowed(identifier, endpointType)
		if err != nil {
			log.Printf("Rate limit check error for %s (%s): %v", endpointType, identifier, err)
			// Continue with request on error to avoid blocking users due to system issues
			return c.Next()
		}

		svc.addRateLimitHeaders(c, info)

		if !allowed {
			return svc.handleRateLimitExceeded(c, endpointType, info)
		}

		return c.Next()
	}
}

// IPRateLimit applies general rate limiting by IP address
func (svc *RateLimitService) IPRateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := getClientIP(c)

		allowed, info, err := svc.IsAllowed(ip, "api_general")
		if err != nil {
			log.Printf("IP rate limit check error for %s: %v", ip, err)
			return c.Next()
		}

		svc.addRateLimitHeaders(c, info)

		if !allowed {
			return svc.handleRateLimitExceeded(c, "api_general", info)
		}

		return c.Next()
	}
}

// StrictRateLimit applies strict rate limiting for sensitive endpoints
func (svc *RateLimitService) StrictRateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := getClientIP(c)

		allowed, info, err := svc.IsAllowed(ip, "api_strict")
		if err != nil {
			log.Printf("Strict rate limit check error for %s: %v", ip, err)
			return shared.ResponseJSON(c, http.StatusInternalServerError, "Rate limit service unavailable", nil)
		}

		if !allowed {
			return svc.handleRateLimitExceeded(c, "api_strict", info)
		}

		return c.Next()
	}
}

func (svc *RateLimitService) getIdentifier(c *fiber.Ctx) string {
	// Prefer the authenticated user, fall back to IP.
	userID := c.Locals(shared.UserID)
	if userID != nil {
		if userIDStr, ok := userID.(string); ok && userIDStr != "" {
			return userIDStr
		}
	}
	return getClientIP(c)
}

func (svc *RateLimitService) addRateLimitHeaders(c *fiber.Ctx, info *RateLimitInfo) {
	if info == nil {
		return
	}

	if info.Remaining >= 0 {
		c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	}

	if info.ResetTime != nil {
		c.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

func (svc *RateLimitService) handleRateLimitExceeded(c *fiber.Ctx, endpointType string, info *RateLimitInfo) error {
	message := svc.getRateLimitMessage(endpointType)

	response := map[string]interface{}{
		"error":   "Rate limit exceeded",
		"message": message,
	}

	if info != nil && info.ResetTime != nil {
		response["retry_after"] = int(time.Until(*info.ResetTime).Seconds())
	}

	return shared.ResponseJSON(c, http.StatusTooManyRequests, message, response)
}

func (svc *RateLimitService) getRateLimitMessage(endpointType string) string {
	messages := map[string]string{
		"session_start":    "Too many training sessions started. Please take a break.",
		"session_complete": "Too many session completions. Please take a break.",
		"share":            "Too many share requests. Please try again later.",
		"api_general":      "Too many requests. Please slow down.",
		"api_strict":       "Rate limit exceeded. Access temporarily blocked.",
	}

	if message, exists := messages[endpointType]; exists {
		return message
	}

	return "Too many requests. Please try again later."
}

func getClientIP(c *fiber.Ctx) string {
	// Check for forwarded IP first (for load balancers/proxies)
	forwarded := c.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if ip != "" {
				return ip
			}
		}
	}

	// Check for real IP header
	realIP := c.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Check Cloudflare header
	cfIP := c.Get("CF-Connecting-IP")
	if cfIP != "" {
		return cfIP
	}

	// Fall back to remote address
	ip, _, err := net.SplitHostPort(c.Context().RemoteAddr().String())
	if err != nil {
		return c.Context().RemoteAddr().String()
	}

	return ip
}
