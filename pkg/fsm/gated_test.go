package fsm

import "testing"

func TestGated_ExecuteBeforeInit(t *testing.T) {
	m := NewGated[string, string]("initial", "final")
	m.AddTransitions(Transition[string, string]{From: "initial", To: "final", Trigger: "go"})

	calls := 0
	m.SetDebugFn(func(from, to string, trigger string) { calls++ })

	if st := m.Execute("go"); st != NotInitialized {
		t.Errorf("期望 NotInitialized, got %v", st)
	}
	if m.Current() != "initial" {
		t.Errorf("未初始化时状态不应变化: got %v", m.Current())
	}
	if calls != 0 {
		t.Errorf("未初始化时不应触发调试回调: got %d", calls)
	}
}

func TestGated_InitThenExecute(t *testing.T) {
	m := NewGated[string, string]("initial", "final")
	m.AddTransitions(Transition[string, string]{From: "initial", To: "final", Trigger: "go"})

	m.Init()
	if m.Current() != "initial" {
		t.Fatalf("初始化后状态错误: got %v, want initial", m.Current())
	}
	if !m.IsInitial() {
		t.Error("初始化后 IsInitial 应该返回 true")
	}

	if st := m.Execute("go"); st != Success {
		t.Fatalf("期望 Success, got %v", st)
	}
	if !m.IsFinal() {
		t.Error("到达终止状态后 IsFinal 应该返回 true")
	}
}

func TestGated_InitIdempotent(t *testing.T) {
	m := NewGated[string, string]("initial", "final")
	m.AddTransitions(Transition[string, string]{From: "initial", To: "final", Trigger: "go"})

	m.Init()
	_ = m.Execute("go")

	// 再次 Init 是无操作，不应把状态拉回初始状态
	m.Init()
	if m.Current() != "final" {
		t.Errorf("重复 Init 不应改变状态: got %v, want final", m.Current())
	}
}

func TestGated_ResetRequiresReinit(t *testing.T) {
	m := NewGated[string, string]("initial", "final")
	m.AddTransitions(Transition[string, string]{From: "initial", To: "final", Trigger: "go"})

	m.Init()
	_ = m.Execute("go")

	m.Reset()
	if m.Current() != "initial" {
		t.Errorf("重置后状态错误: got %v, want initial", m.Current())
	}

	// 重置后回到未初始化，必须重新 Init
	if st := m.Execute("go"); st != NotInitialized {
		t.Errorf("重置后未 Init 期望 NotInitialized, got %v", st)
	}

	m.Init()
	if st := m.Execute("go"); st != Success {
		t.Errorf("重新 Init 后期望 Success, got %v", st)
	}
}

func TestGated_EagerMachineIsFinalAlwaysFalse(t *testing.T) {
	m := New[string, string]("initial")
	m.AddTransitions(Transition[string, string]{From: "initial", To: "done", Trigger: "go"})
	_ = m.Execute("go")

	// 急切模式未配置终止状态，IsFinal 恒为 false
	if m.IsFinal() {
		t.Error("未配置终止状态时 IsFinal 应该返回 false")
	}
}

func TestLegacy_Sentinels(t *testing.T) {
	const (
		stateA = 1
		trigGo = 10
		trigOk = 11
	)

	m := NewLegacy()
	m.AddTransitions(
		Transition[int, int]{From: SentinelInitial, To: stateA, Trigger: trigGo},
		Transition[int, int]{From: stateA, To: SentinelFinal, Trigger: trigOk},
	)

	if st := m.Execute(trigGo); st != NotInitialized {
		t.Fatalf("未初始化期望 NotInitialized, got %v", st)
	}

	m.Init()
	if m.Current() != SentinelInitial {
		t.Fatalf("初始状态应为哨兵初始状态: got %v", m.Current())
	}

	if st := m.Execute(trigGo); st != Success {
		t.Fatalf("触发失败: %v", st)
	}
	if m.Current() != stateA {
		t.Errorf("状态错误: got %v, want %v", m.Current(), stateA)
	}

	if st := m.Execute(trigOk); st != Success {
		t.Fatalf("触发失败: %v", st)
	}
	if !m.IsFinal() {
		t.Error("到达哨兵终止状态后 IsFinal 应该返回 true")
	}

	m.Reset()
	if !m.IsInitial() {
		t.Error("重置后 IsInitial 应该返回 true")
	}
}
