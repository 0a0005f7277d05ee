package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"innkeep/shared/cache"
	"innkeep/shared/constant"
	"innkeep/shared/dto"
	"math"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix, suffix string) string {
	return fmt.Sprintf("%s:%s", prefix, suffix)
}

// BuildCacheKeyWithQuery derives a cache key from the query parameters and
// filters of a list request, so that distinct pages and filter combinations
// cache independently.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	encoded, err := json.Marshal(args)
	if err != nil {
		encoded = []byte(constant.Empty)
	}

	return fmt.Sprintf("%s:%d:%d:%s:%s:%s:%s", prefix, params.Page, params.Limit, params.SortBy, params.SortDir, where, encoded)
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}
