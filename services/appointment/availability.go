package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"physiocare/config"
	"physiocare/models"
	"physiocare/utils"
)

// AvailableSlots returns the open slot labels for a physiotherapist on a
// date: the fixed working-day set minus non-cancelled appointments minus
// blocked slots. Plain set membership, no overlap detection. Snapshots are
// cached briefly in Redis and invalidated on every mutation.
func (s *DefaultAppointmentService) AvailableSlots(ctx context.Context, physioID, date string) ([]string, error) {
	logger := utils.GetLogger()
	cacheKey := availabilityKey(physioID, date)

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var slots []string
			if err := json.Unmarshal([]byte(cached), &slots); err == nil {
				return slots, nil
			}
			logger.Warn("availability: dropping corrupt cache entry", zap.String("key", cacheKey))
			s.Cache.Del(ctx, cacheKey)
		}
	}

	taken := make(map[string]bool)

	appts, err := s.Repo.GetByPhysiotherapistAndDate(ctx, physioID, date)
	if err != nil {
		return nil, fmt.Errorf("appointment: failed to load appointments for %s: %w", date, err)
	}
	for _, a := range appts {
		if a.Status != models.AppointmentCancelled {
			taken[a.TimeSlot] = true
		}
	}

	blocked, err := s.Repo.GetBlockedSlots(ctx, physioID, date)
	if err != nil {
		return nil, fmt.Errorf("appointment: failed to load blocked slots for %s: %w", date, err)
	}
	for _, b := range blocked {
		taken[b.TimeSlot] = true
	}

	available := make([]string, 0, len(models.WorkingTimeSlots))
	for _, slot := range models.WorkingTimeSlots {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	if s.Cache != nil {
		if data, err := json.Marshal(available); err == nil {
			ttl := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
			if err := s.Cache.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
				logger.Warn("availability: failed to cache snapshot", zap.Error(err))
			}
		}
	}
	return available, nil
}

func (s *DefaultAppointmentService) invalidateAvailability(ctx context.Context, physioID, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, availabilityKey(physioID, date)).Err(); err != nil {
		utils.GetLogger().Warn("availability: cache invalidation failed",
			zap.String("physioId", physioID), zap.String("date", date), zap.Error(err))
	}
}

func availabilityKey(physioID, date string) string {
	return utils.AvailabilityCachePrefix + physioID + ":" + date
}

func isWorkingSlot(label string) bool {
	for _, slot := range models.WorkingTimeSlots {
		if slot == label {
			return true
		}
	}
	return false
}
