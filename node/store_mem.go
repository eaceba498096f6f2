package node

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/libsigmacurve/curve"
)

// NewMemStore keeps control points in memory. Entries expire after ttl, never when ttl
// is not positive.
func NewMemStore(ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	cleanup := ttl
	if cleanup < time.Second {
		cleanup = time.Second
	}

	return &memStoreImpl{
		ds: cache.New(ttl, cleanup),
	}
}

type memStoreImpl struct {
	ds *cache.Cache
}

func (impl *memStoreImpl) Load(nodeID string) (points []curve.ControlPoint, exists bool, err error) {
	i, ok := impl.ds.Get(nodeID)
	if !ok {
		return
	}

	ps, ok := i.([]curve.ControlPoint)
	if !ok {
		return
	}

	points = append([]curve.ControlPoint{}, ps...)
	exists = true

	return
}

func (impl *memStoreImpl) Save(nodeID string, points []curve.ControlPoint) error {
	impl.ds.SetDefault(nodeID, append([]curve.ControlPoint{}, points...))

	return nil
}

func (impl *memStoreImpl) Remove(nodeID string) error {
	impl.ds.Delete(nodeID)

	return nil
}
