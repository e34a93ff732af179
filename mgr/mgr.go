package mgr

import (
	"fmt"
	"sync"

	"github.com/qiniu/x/log"

	"github.com/qiniu/convkit/transforms"
	. "github.com/qiniu/convkit/utils/models"
)

type ManagerConfig struct {
	BindHost   string                   `json:"bind_host" toml:"bind_host"`
	Transforms []map[string]interface{} `json:"transforms" toml:"transforms"`
}

// Manager 持有 transformer 链，所有 REST 请求共享同一条链
type Manager struct {
	ManagerConfig
	Version string

	lock         sync.RWMutex
	transformers []transforms.Transformer
	metrics      *Metrics
}

func NewManager(conf ManagerConfig) (*Manager, error) {
	m := &Manager{
		ManagerConfig: conf,
		metrics:       NewMetrics(),
	}
	if err := m.SetTransforms(conf.Transforms); err != nil {
		return nil, err
	}
	return m, nil
}

func createTransformers(confs []map[string]interface{}) ([]transforms.Transformer, error) {
	transformers := make([]transforms.Transformer, 0, len(confs))
	for idx := range confs {
		trans, err := transforms.Create(confs[idx])
		if err != nil {
			return nil, fmt.Errorf("transforms[%d]: %w", idx, err)
		}
		transformers = append(transformers, trans)
	}
	return transformers, nil
}

// SetTransforms 替换整条 transformer 链，配置有误时保留原来的链
func (m *Manager) SetTransforms(confs []map[string]interface{}) error {
	transformers, err := createTransformers(confs)
	if err != nil {
		return err
	}
	m.lock.Lock()
	defer m.lock.Unlock()
	m.transformers = transformers
	m.Transforms = confs
	log.Infof("transformer chain updated, %d transformers", len(transformers))
	return nil
}

func (m *Manager) TransformConfigs() []map[string]interface{} {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.Transforms
}

// Transform 依次执行每个 transformer，单个 transformer 出错不影响后续 transformer
func (m *Manager) Transform(datas []Data) ([]Data, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	var lastErr error
	for _, t := range m.transformers {
		before := t.Stats()
		var err error
		datas, err = t.Transform(datas)
		m.metrics.observeTransform(t.Type(), before, t.Stats())
		if err != nil {
			log.Debugf("transformer %v error: %v", t.Type(), err)
			lastErr = err
		}
	}
	return datas, lastErr
}

func (m *Manager) Status() []TransformStatus {
	m.lock.RLock()
	defer m.lock.RUnlock()
	status := make([]TransformStatus, 0, len(m.transformers))
	for _, t := range m.transformers {
		status = append(status, TransformStatus{Type: t.Type(), Stats: t.Stats()})
	}
	return status
}
