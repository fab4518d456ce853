package guestcart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"storefront-pricing/internal/infra"
	"storefront-pricing/internal/pkg/config"
	"storefront-pricing/internal/pkg/errs"
	"storefront-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each guest cart in one hash, product id -> quantity.
// Every write refreshes the key's TTL, so an idle cart expires as a whole.
type RedisStore struct {
	client     redis.UniversalClient
	ttl        time.Duration
	maxLines   int
	maxRetries int
	logger     *slog.Logger
}

func NewRedisStore(client redis.UniversalClient, cfg config.GuestCartConfig, logger *slog.Logger) *RedisStore {
	retries := cfg.MaxRetries
	if retries < 1 {
		retries = 1
	}
	return &RedisStore{
		client:     client,
		ttl:        cfg.TTL,
		maxLines:   cfg.MaxLines,
		maxRetries: retries,
		logger:     logger,
	}
}

// List returns lines ordered by product id; hash fields carry no insertion order.
func (s *RedisStore) List(ctx context.Context, guestID uuid.UUID) ([]shared.CartLineRecord, error) {
	fields, err := s.client.HGetAll(ctx, cartKey(guestID)).Result()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to read guest cart", err)
	}

	records := make([]shared.CartLineRecord, 0, len(fields))
	for field, raw := range fields {
		productID, err := uuid.Parse(field)
		if err != nil {
			s.logger.Warn("dropping malformed guest cart field",
				slog.String("guest_id", guestID.String()),
				slog.String("field", field))
			continue
		}
		quantity, err := strconv.Atoi(raw)
		if err != nil || quantity < 1 {
			s.logger.Warn("dropping malformed guest cart quantity",
				slog.String("guest_id", guestID.String()),
				slog.String("product_id", field),
				slog.String("value", raw))
			continue
		}
		records = append(records, shared.CartLineRecord{ProductID: productID, Quantity: quantity})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ProductID.String() < records[j].ProductID.String()
	})
	return records, nil
}

// Upsert applies fn inside WATCH/MULTI on the cart key and retries when another
// writer touched the cart in between.
func (s *RedisStore) Upsert(ctx context.Context, guestID, productID uuid.UUID, fn shared.QuantityFunc) (int, error) {
	key := cartKey(guestID)
	field := productID.String()

	var (
		result int
		fnErr  error
	)

	txf := func(tx *redis.Tx) error {
		current, err := readQuantity(ctx, tx, key, field)
		if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			fnErr = err
			return err
		}

		if current == 0 && next > 0 && s.maxLines > 0 {
			lines, err := tx.HLen(ctx, key).Result()
			if err != nil {
				return err
			}
			if lines >= int64(s.maxLines) {
				fnErr = shared.ErrCartLimitReached
				return fnErr
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if next <= 0 {
				pipe.HDel(ctx, key, field)
			} else {
				pipe.HSet(ctx, key, field, next)
			}
			pipe.Expire(ctx, key, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result = max(next, 0)
		return nil
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		fnErr = nil
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if fnErr != nil {
			return 0, fnErr
		}
		if errors.Is(err, redis.TxFailedErr) {
			s.logger.Debug("guest cart write conflict, retrying",
				slog.String("guest_id", guestID.String()),
				slog.Int("attempt", attempt+1))
			continue
		}
		return 0, infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to write guest cart", err)
	}

	return 0, errs.Mark(
		infra.WrapRepoErr(s.logger, infra.KindConflict, "guest cart write kept conflicting", redis.TxFailedErr),
		shared.ErrCartConflict,
	)
}

func (s *RedisStore) Remove(ctx context.Context, guestID, productID uuid.UUID) error {
	if err := s.client.HDel(ctx, cartKey(guestID), productID.String()).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to remove guest cart line", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, guestID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKey(guestID)).Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCacheFailure, "failed to clear guest cart", err)
	}
	return nil
}

func readQuantity(ctx context.Context, tx *redis.Tx, key, field string) (int, error) {
	raw, err := tx.HGet(ctx, key, field).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	quantity, err := strconv.Atoi(raw)
	if err != nil || quantity < 0 {
		// A corrupt value is overwritten by the write that follows.
		return 0, nil
	}
	return quantity, nil
}

func cartKey(guestID uuid.UUID) string {
	return fmt.Sprintf("guest_cart:%s", guestID)
}
