package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList 字符串数组字段
// 以 JSON 文本形式落库，postgres 和 sqlite (测试) 都能存
type StringList []string

// Value 实现 driver.Valuer，写库时序列化
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan 实现 sql.Scanner，读库时反序列化
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("无法将 %T 转换为 StringList", value)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}
