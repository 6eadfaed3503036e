// Copyright (c) 2026 Librate. All rights reserved.
// Author: dev@librate.app

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/librate/librate/internal/platform/apperr"
	"github.com/librate/librate/internal/platform/constants"
)

// RedisCodeRepository implements [CodeRepository] on Redis.
//
// Keys are namespaced under the signup-code prefix and carry the TTL set at
// write time, so expiry needs no sweeper.
type RedisCodeRepository struct {
	client *redis.Client
}

// NewCodeRepository creates a new Redis implementation of [CodeRepository].
func NewCodeRepository(client *redis.Client) *RedisCodeRepository {
	return &RedisCodeRepository{client: client}
}

// codeKey builds the namespaced Redis key for a username.
func codeKey(username string) string {
	return constants.RedisPrefixSignupCode + username
}

/*
Set stores the bcrypt hash of a confirmation code for a username.

Description: Unconditional SET — a pending code for the same username is
overwritten and its TTL restarted, which is the rotation behavior Signup
relies on.

Parameters:
  - context: context.Context
  - username: string
  - codeHash: string
  - ttl: time.Duration

Returns:
  - error: Storage failures
*/
func (repository *RedisCodeRepository) Set(context context.Context, username, codeHash string, ttl time.Duration) error {
	if err := repository.client.Set(context, codeKey(username), codeHash, ttl).Err(); err != nil {
		return fmt.Errorf("redis_code_repo_set_failed: %w", err)
	}
	return nil
}

/*
Get retrieves the stored hash for a username.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - string: The bcrypt hash
  - error: apperr.NotFound when no code is pending or it expired
*/
func (repository *RedisCodeRepository) Get(context context.Context, username string) (string, error) {
	codeHash, err := repository.client.Get(context, codeKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Confirmation code")
		}
		return "", fmt.Errorf("redis_code_repo_get_failed: %w", err)
	}
	return codeHash, nil
}

/*
Delete removes the pending code after successful use.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - error: Storage failures (a missing key is not an error)
*/
func (repository *RedisCodeRepository) Delete(context context.Context, username string) error {
	if err := repository.client.Del(context, codeKey(username)).Err(); err != nil {
		return fmt.Errorf("redis_code_repo_delete_failed: %w", err)
	}
	return nil
}
