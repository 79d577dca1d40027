package fsm

import (
	"sync"
	"testing"
)

func TestSynced_ConcurrentExecute(t *testing.T) {
	count := 0
	m := New[string, string]("s")
	m.AddTransitions(Transition[string, string]{
		From: "s", To: "s", Trigger: "tick",
		Action: func() { count++ },
	})

	sm := NewSynced(m)

	var wg sync.WaitGroup
	const n = 100
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if st := sm.Execute("tick"); st != Success {
				t.Errorf("期望 Success, got %v", st)
			}
		}()
	}
	wg.Wait()

	// 动作在锁内执行，计数不应丢失
	if count != n {
		t.Errorf("动作执行次数错误: got %d, want %d", count, n)
	}
	if sm.Current() != "s" {
		t.Errorf("状态错误: got %v, want s", sm.Current())
	}
}

func TestSynced_Surface(t *testing.T) {
	m := NewGated[string, string]("initial", "final")
	sm := NewSynced(m)
	sm.AddTransitions(Transition[string, string]{From: "initial", To: "final", Trigger: "go"})

	if st := sm.Execute("go"); st != NotInitialized {
		t.Fatalf("期望 NotInitialized, got %v", st)
	}

	sm.Init()
	if !sm.IsInitial() {
		t.Error("Init 后 IsInitial 应该返回 true")
	}
	if !sm.Can("go") {
		t.Error("应该可以触发 go 事件")
	}

	if st := sm.Execute("go"); st != Success {
		t.Fatalf("期望 Success, got %v", st)
	}
	if !sm.IsFinal() {
		t.Error("IsFinal 应该返回 true")
	}

	sm.Reset()
	if sm.Current() != "initial" {
		t.Errorf("重置后状态错误: got %v", sm.Current())
	}

	sm.ResetTo("final")
	if sm.Current() != "final" {
		t.Errorf("ResetTo 后状态错误: got %v", sm.Current())
	}
}

func TestGroup_AddRemoveCount(t *testing.T) {
	g := NewGroup[string, string]()

	if err := g.Add("auth", New[string, string]("logged_out")); err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if err := g.Add("payment", New[string, string]("unpaid")); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	if err := g.Add("auth", New[string, string]("logged_out")); err != ErrMachineExists {
		t.Errorf("期望 ErrMachineExists, got %v", err)
	}

	if g.Count() != 2 {
		t.Errorf("状态机数量错误: got %d, want 2", g.Count())
	}

	g.Remove("auth")
	if g.Count() != 1 {
		t.Errorf("状态机数量错误: got %d, want 1", g.Count())
	}
}

func TestGroup_Execute(t *testing.T) {
	g := NewGroup[string, string]()

	m := New[string, string]("idle")
	m.AddTransitions(Transition[string, string]{From: "idle", To: "running", Trigger: "start"})
	_ = g.Add("worker", m)

	st, err := g.Execute("worker", "start")
	if err != nil {
		t.Fatalf("触发失败: %v", err)
	}
	if st != Success {
		t.Errorf("期望 Success, got %v", st)
	}

	if _, err := g.Execute("nonexistent", "start"); err != ErrMachineNotFound {
		t.Errorf("期望 ErrMachineNotFound, got %v", err)
	}

	states := g.States()
	if states["worker"] != "running" {
		t.Errorf("worker 状态错误: got %v, want running", states["worker"])
	}
}

func TestGroup_ExecuteAll(t *testing.T) {
	g := NewGroup[string, string]()

	for _, name := range []string{"m1", "m2"} {
		m := New[string, string]("idle")
		m.AddTransitions(Transition[string, string]{From: "idle", To: "running", Trigger: "start"})
		_ = g.Add(name, m)
	}

	results := g.ExecuteAll("start")
	for name, st := range results {
		if st != Success {
			t.Errorf("%s 触发失败: %v", name, st)
		}
	}

	states := g.States()
	if states["m1"] != "running" || states["m2"] != "running" {
		t.Error("状态转换失败")
	}
}

func TestGroup_ResetAll(t *testing.T) {
	g := NewGroup[string, string]()

	m1 := New[string, string]("idle")
	m1.AddTransitions(Transition[string, string]{From: "idle", To: "running", Trigger: "start"})
	m2 := New[string, string]("stopped")
	m2.AddTransitions(Transition[string, string]{From: "stopped", To: "running", Trigger: "start"})

	_ = g.Add("m1", m1)
	_ = g.Add("m2", m2)

	_, _ = g.Execute("m1", "start")
	_, _ = g.Execute("m2", "start")

	g.ResetAll()

	states := g.States()
	if states["m1"] != "idle" {
		t.Errorf("m1 重置后状态错误: got %v, want idle", states["m1"])
	}
	if states["m2"] != "stopped" {
		t.Errorf("m2 重置后状态错误: got %v, want stopped", states["m2"])
	}
}

func TestGroup_Get(t *testing.T) {
	g := NewGroup[string, string]()
	_ = g.Add("m1", New[string, string]("idle"))

	sm, ok := g.Get("m1")
	if !ok || sm == nil {
		t.Fatal("Get 应该返回已注册的状态机")
	}
	if sm.Current() != "idle" {
		t.Errorf("状态错误: got %v, want idle", sm.Current())
	}

	if _, ok := g.Get("nonexistent"); ok {
		t.Error("未注册的名字应该返回 false")
	}
}
