package node

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/libsigmacurve/curve"
)

// NewRedisStore keeps control points as json strings. A positive ttl expires idle nodes.
func NewRedisStore(redisCli *redis.Client, redisKeyPre string, ttl time.Duration) Store {
	if ttl < 0 {
		ttl = 0
	}

	return &redisStoreImpl{
		redisCli:    redisCli,
		redisKeyPre: redisKeyPre,
		ttl:         ttl,
	}
}

type redisStoreImpl struct {
	redisCli    *redis.Client
	redisKeyPre string
	ttl         time.Duration
}

func (impl *redisStoreImpl) nodeRedisKey(nodeID string) string {
	redisKey := "cp:" + nodeID
	if impl.redisKeyPre != "" {
		redisKey = impl.redisKeyPre + ":" + redisKey
	}

	return redisKey
}

func (impl *redisStoreImpl) Load(nodeID string) (points []curve.ControlPoint, exists bool, err error) {
	d, err := impl.redisCli.Get(context.TODO(), impl.nodeRedisKey(nodeID)).Bytes()
	if errors.Is(err, redis.Nil) {
		err = nil

		return
	}

	if err != nil {
		return
	}

	err = json.Unmarshal(d, &points)
	if err != nil {
		return
	}

	exists = true

	return
}

func (impl *redisStoreImpl) Save(nodeID string, points []curve.ControlPoint) error {
	d, err := json.Marshal(points)
	if err != nil {
		return err
	}

	return impl.redisCli.Set(context.TODO(), impl.nodeRedisKey(nodeID), d, impl.ttl).Err()
}

func (impl *redisStoreImpl) Remove(nodeID string) error {
	return impl.redisCli.Del(context.TODO(), impl.nodeRedisKey(nodeID)).Err()
}
