package scenes

import (
	"testing"

	"github.com/automoto/pingpong/pong"
	"github.com/automoto/pingpong/systems"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestPongSceneFollowsLayout(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	scene := NewPongScene(log)

	scene.Layout(1200, 700)
	if err := scene.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	m := systems.GetMatch(scene.ecs)
	if got := m.Player(pong.PlayerTwo).Pos.X; got != 1200-pong.PaddleInset {
		t.Errorf("player two x = %v, want %v", got, 1200-pong.PaddleInset)
	}

	entry := hook.LastEntry()
	if entry == nil || entry.Message != "match started" {
		t.Fatalf("last log entry = %v, want match started", entry)
	}
	if entry.Level != logrus.InfoLevel || entry.Data["width"] != 1200 {
		t.Errorf("match started entry = %v %v", entry.Level, entry.Data)
	}
}
