package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"lazshoppe/internal/models"
)

type Client struct {
	rdb *redis.Client
}

// SessionData is what a bearer token resolves to for the lifetime of a
// sign-in.
type SessionData struct {
	UserID    uint      `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Session management
func (c *Client) SetSession(token string, data *SessionData, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+token, jsonData, ttl).Err()
}

func (c *Client) GetSession(token string) (*SessionData, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteSession(token string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+token).Err()
}

// Cart mirror. The database rows are authoritative; this cache carries the
// last known cart per user so a mirror failure never fails the mutation.
func (c *Client) SetCart(userID uint, items []models.CartItem) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart items: %w", err)
	}

	key := fmt.Sprintf("cart:%d", userID)
	return c.rdb.Set(ctx, key, jsonData, 0).Err()
}

func (c *Client) DeleteCart(userID uint) error {
	ctx := context.Background()
	key := fmt.Sprintf("cart:%d", userID)
	return c.rdb.Del(ctx, key).Err()
}

// Checkout selection
func (c *Client) SetSelection(userID uint, productIDs []uint, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(productIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout selection: %w", err)
	}

	key := fmt.Sprintf("checkout:%d", userID)
	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) GetSelection(userID uint) ([]uint, error) {
	ctx := context.Background()
	key := fmt.Sprintf("checkout:%d", userID)
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("checkout selection not found")
		}
		return nil, fmt.Errorf("failed to get checkout selection: %w", err)
	}

	var productIDs []uint
	if err := json.Unmarshal([]byte(val), &productIDs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkout selection: %w", err)
	}

	return productIDs, nil
}

func (c *Client) ClearSelection(userID uint) error {
	ctx := context.Background()
	key := fmt.Sprintf("checkout:%d", userID)
	return c.rdb.Del(ctx, key).Err()
}

// Temporary data management
func (c *Client) SetTempData(key string, value interface{}, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal temp data: %w", err)
	}

	return c.rdb.Set(ctx, "temp:"+key, jsonData, ttl).Err()
}

func (c *Client) GetTempData(key string, dest interface{}) error {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "temp:"+key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("temp data not found")
		}
		return fmt.Errorf("failed to get temp data: %w", err)
	}

	return json.Unmarshal([]byte(val), dest)
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
