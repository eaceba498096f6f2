package node

import (
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/kv"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libsigmacurve/curve"
)

// NewKVStore keeps every node in a single kv file under dataRoot.
func NewKVStore(dataRoot string) Store {
	_ = pathutils.MustDirExists(dataRoot)

	return &kvStoreImpl{
		kv: mwf.NewKVEx("control-points.dat", rawfs.NewFSStorage(dataRoot)),
	}
}

type kvStoreImpl struct {
	kv kv.StorageTiny2
}

func (impl *kvStoreImpl) key(nodeID string) string {
	return "cp:" + nodeID
}

func (impl *kvStoreImpl) Load(nodeID string) (points []curve.ControlPoint, exists bool, err error) {
	exists, err = impl.kv.Get(impl.key(nodeID), &points)

	return
}

func (impl *kvStoreImpl) Save(nodeID string, points []curve.ControlPoint) error {
	return impl.kv.Set(impl.key(nodeID), points)
}

func (impl *kvStoreImpl) Remove(nodeID string) error {
	return impl.kv.Del(impl.key(nodeID))
}
