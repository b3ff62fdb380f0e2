// internal/scenario/loader_test.go
//
// 驗證情境檔的讀取：YAML 與 JSON 皆能解析成相同結構，未知副檔名回傳 ErrUnknownFormat。
// 使用 t.TempDir() 確保測試不汙染本機環境。

package scenario

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workshopYAML = `name: workshop
accounts:
  - id: account
    name: Celian
    balance: 1000
vehicles:
  - id: spaceship
    kind: vehicle
    max_speed: 1000
  - id: car
    kind: car
    max_speed: 200
steps:
  - {target: account, op: deposit, amount: 500}
  - {target: account, op: withdraw, amount: 200}
  - {target: account, op: display_balance}
  - {target: spaceship, op: speed_up, amount: 300}
  - {target: spaceship, op: print_speed}
  - {target: car, op: speed_up, amount: 30}
  - {target: car, op: print_speed}
  - {target: car, op: drift}
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// TestLoadYAML 驗證 YAML 情境與內建情境一致。
func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"workshop.yaml", "workshop.YML"} {
		path := writeFile(t, name, []byte(workshopYAML))
		s, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), s)
	}
}

// TestLoadJSON 驗證 JSON 情境可 round-trip 回內建情境。
func TestLoadJSON(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	s, err := Load(writeFile(t, "workshop.json", data))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

// TestLoadErrors 驗證各種讀取錯誤。
func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "workshop.toml", []byte("name = 1")))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(writeFile(t, "bad.json", []byte("{bad json}")))
	assert.Error(t, err)

	_, err = Parse([]byte("steps: [1, 2"), FormatYAML)
	assert.Error(t, err)
}

// TestFormatOf 驗證副檔名判斷。
func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatOf("a.yaml"))
	assert.Equal(t, FormatYAML, FormatOf("dir/a.yml"))
	assert.Equal(t, FormatJSON, FormatOf("a.JSON"))
	assert.Equal(t, "", FormatOf("a.txt"))
}
