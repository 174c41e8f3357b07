package utils

import (
	"testing"

	"github.com/gonewx/lanedefense/pkg/config"
)

// TestMouseToGridCoords 测试鼠标坐标到网格坐标的转换
func TestMouseToGridCoords(t *testing.T) {
	tests := []struct {
		name      string
		mouseX    int
		mouseY    int
		wantRow   int
		wantCol   int
		wantValid bool
	}{
		{"左上角第一个格子", 140, 100, 0, 0, true},
		{"右下角最后一个格子", 140 + 8*80 + 40, 100 + 4*90 + 45, 4, 8, true},
		{"格子边界属于右侧格子", 220, 190, 1, 1, true},
		{"网格左侧", 139, 150, 0, 0, false},
		{"网格上方", 200, 99, 0, 0, false},
		{"网格右边界之外", 140 + 9*80, 150, 0, 0, false},
		{"网格下边界之外", 200, 100 + 5*90, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, valid := MouseToGridCoords(tt.mouseX, tt.mouseY)
			if valid != tt.wantValid {
				t.Fatalf("valid = %v, want %v", valid, tt.wantValid)
			}
			if valid && (row != tt.wantRow || col != tt.wantCol) {
				t.Errorf("MouseToGridCoords(%d, %d) = (%d, %d), want (%d, %d)",
					tt.mouseX, tt.mouseY, row, col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

// TestGridRoundTrip 格子中心换算回来应得到同一个格子
func TestGridRoundTrip(t *testing.T) {
	for row := range config.GridRows {
		for col := range config.GridColumns {
			x, y := GridToScreenCoords(row, col)
			gotRow, gotCol, ok := MouseToGridCoords(int(x), int(y))
			if !ok || gotRow != row || gotCol != col {
				t.Errorf("cell (%d,%d) -> (%v,%v) -> (%d,%d,%v)", row, col, x, y, gotRow, gotCol, ok)
			}
		}
	}
}

func TestLaneToScreenX(t *testing.T) {
	if got := LaneToScreenX(0); got != GridStartX {
		t.Errorf("LaneToScreenX(0) = %v, want %v", got, GridStartX)
	}
	if got := LaneToScreenX(config.ZombieSpawnPosition); got != GridEndX() {
		t.Errorf("LaneToScreenX(spawn) = %v, want %v", got, GridEndX())
	}
	if GridEndX() > ScreenWidth || GridEndY() > ScreenHeight {
		t.Errorf("grid (%v, %v) does not fit the %dx%d screen", GridEndX(), GridEndY(), ScreenWidth, ScreenHeight)
	}
}
