// internal/scenario/loader.go
//
// 提供情境檔的讀取與解析：依副檔名選擇 YAML (.yaml/.yml) 或 JSON (.json)。
// 只讀不寫；情境是輸入資料，不是持久化狀態。

package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// 情境檔格式。
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// FormatOf 依副檔名推斷格式；無法辨識時回傳空字串。
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return ""
	}
}

// Load 讀取指定路徑的情境檔並解析。
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	s, err := Parse(data, FormatOf(path))
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse 以指定格式解析情境內容。
func Parse(data []byte, format string) (Scenario, error) {
	var s Scenario
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, err
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &s); err != nil {
			return s, err
		}
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return s, nil
}
