package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// loadProp 读取 gdata 对象属性并按 YAML 解码到 out
//
// 返回：
//   - bool: 属性存在且解码成功时为 true；manager 为 nil 或属性不存在时为 false
//   - error: 读取或解码失败
func loadProp(manager *gdata.Manager, object, prop string, out any) (bool, error) {
	if manager == nil || !manager.ObjectPropExists(object, prop) {
		return false, nil
	}

	data, err := manager.LoadObjectProp(object, prop)
	if err != nil {
		return false, fmt.Errorf("failed to load %s/%s: %w", object, prop, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s/%s: %w", object, prop, err)
	}
	return true, nil
}

// saveProp 把 in 编码为 YAML 写入 gdata 对象属性，manager 为 nil 时什么也不做
func saveProp(manager *gdata.Manager, object, prop string, in any) error {
	if manager == nil {
		return nil
	}

	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", object, prop, err)
	}
	if err := manager.SaveObjectProp(object, prop, data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", object, prop, err)
	}
	return nil
}
