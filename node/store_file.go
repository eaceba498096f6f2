package node

import (
	"net/url"
	"os"
	"path"

	"github.com/sgostarter/libsigmacurve/curve"
	"gopkg.in/yaml.v3"
)

type fileRecord struct {
	NodeID        string               `yaml:"nodeID"`
	ControlPoints []curve.ControlPoint `yaml:"controlPoints"`
}

// NewFileStore keeps one yaml file per node under root.
func NewFileStore(root string) Store {
	return &fileStoreImpl{
		root: root,
	}
}

type fileStoreImpl struct {
	root string
}

func (impl *fileStoreImpl) fileNameByNodeID(nodeID string) string {
	return path.Join(impl.root, "cp_"+url.PathEscape(nodeID)+".yaml")
}

func (impl *fileStoreImpl) Load(nodeID string) (points []curve.ControlPoint, exists bool, err error) {
	d, err := os.ReadFile(impl.fileNameByNodeID(nodeID))
	if os.IsNotExist(err) {
		err = nil

		return
	}

	if err != nil {
		return
	}

	var record fileRecord

	err = yaml.Unmarshal(d, &record)
	if err != nil {
		return
	}

	points = record.ControlPoints
	exists = true

	return
}

func (impl *fileStoreImpl) Save(nodeID string, points []curve.ControlPoint) (err error) {
	_ = os.MkdirAll(impl.root, 0700)

	d, err := yaml.Marshal(&fileRecord{
		NodeID:        nodeID,
		ControlPoints: points,
	})
	if err != nil {
		return
	}

	err = os.WriteFile(impl.fileNameByNodeID(nodeID), d, 0600)

	return
}

func (impl *fileStoreImpl) Remove(nodeID string) error {
	err := os.Remove(impl.fileNameByNodeID(nodeID))
	if os.IsNotExist(err) {
		return nil
	}

	return err
}
