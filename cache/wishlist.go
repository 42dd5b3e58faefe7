package cache

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-redis/redis"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	cacheWishlist = "wishlist:%s"
)

// WishlistCache keeps each guest's wishlist as a Redis set. This is
// the server-side replacement for the browser local-storage wishlist.
type WishlistCache struct {
	cli    *redis.Client
	logger *log.Logger
	Tracer trace.Tracer
}

// Construct Redis client
func New(logger *log.Logger, tracer trace.Tracer) *WishlistCache {
	redisHost := os.Getenv("REDIS_HOST")
	redisPort := os.Getenv("REDIS_PORT")
	redisAddress := fmt.Sprintf("%s:%s", redisHost, redisPort)

	client := redis.NewClient(&redis.Options{
		Addr: redisAddress,
	})

	return &WishlistCache{
		cli:    client,
		logger: logger,
		Tracer: tracer,
	}
}

func (wc *WishlistCache) Ping() {
	val, _ := wc.cli.Ping().Result()
	wc.logger.Println(val)
}

func (wc *WishlistCache) AddItem(guestID, itemID string, ctx context.Context) error {
	ctx, span := wc.Tracer.Start(ctx, "WishlistCache.AddItem")
	defer span.End()

	key := constructWishlistKey(guestID)
	err := wc.cli.SAdd(key, itemID).Err()
	if err != nil {
		span.SetStatus(codes.Error, "Error adding item to Redis: "+err.Error())
		return err
	}
	return nil
}

func (wc *WishlistCache) RemoveItem(guestID, itemID string, ctx context.Context) error {
	ctx, span := wc.Tracer.Start(ctx, "WishlistCache.RemoveItem")
	defer span.End()

	key := constructWishlistKey(guestID)
	err := wc.cli.SRem(key, itemID).Err()
	if err != nil {
		span.SetStatus(codes.Error, "Error removing item from Redis: "+err.Error())
		return err
	}
	return nil
}

func (wc *WishlistCache) GetItems(guestID string, ctx context.Context) ([]string, error) {
	ctx, span := wc.Tracer.Start(ctx, "WishlistCache.GetItems")
	defer span.End()

	key := constructWishlistKey(guestID)
	items, err := wc.cli.SMembers(key).Result()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return items, nil
}

func (wc *WishlistCache) ItemExists(guestID, itemID string, ctx context.Context) bool {
	ctx, span := wc.Tracer.Start(ctx, "WishlistCache.ItemExists")
	defer span.End()

	key := constructWishlistKey(guestID)
	exists, err := wc.cli.SIsMember(key, itemID).Result()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return false
	}
	return exists
}

// Helper function to construct wishlist cache key
func constructWishlistKey(guestID string) string {
	return fmt.Sprintf(cacheWishlist, guestID)
}
