package fsm

import "sync"

// Group 具名状态机注册表，统一管理多台同类型状态机
// 注册进来的状态机自动套上 Synced 包装器
type Group[S, T comparable] struct {
	mu       sync.RWMutex
	machines map[string]*Synced[S, T]
}

// NewGroup 创建状态机注册表
func NewGroup[S, T comparable]() *Group[S, T] {
	return &Group[S, T]{
		machines: make(map[string]*Synced[S, T]),
	}
}

// Add 注册状态机
func (g *Group[S, T]) Add(name string, m *Machine[S, T]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.machines[name]; exists {
		return ErrMachineExists
	}
	g.machines[name] = NewSynced(m)
	return nil
}

// Remove 移除状态机
func (g *Group[S, T]) Remove(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.machines, name)
}

// Get 获取状态机
func (g *Group[S, T]) Get(name string) (*Synced[S, T], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, exists := g.machines[name]
	return m, exists
}

// Execute 向指定状态机投递触发器
func (g *Group[S, T]) Execute(name string, trigger T) (Status, error) {
	g.mu.RLock()
	m, exists := g.machines[name]
	g.mu.RUnlock()

	if !exists {
		return NoMatchingTrigger, ErrMachineNotFound
	}
	return m.Execute(trigger), nil
}

// ExecuteAll 向所有状态机投递同一触发器，返回各自的执行结果
func (g *Group[S, T]) ExecuteAll(trigger T) map[string]Status {
	g.mu.RLock()
	machines := make(map[string]*Synced[S, T], len(g.machines))
	for name, m := range g.machines {
		machines[name] = m
	}
	g.mu.RUnlock()

	results := make(map[string]Status, len(machines))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for name, m := range machines {
		wg.Add(1)
		go func(n string, sm *Synced[S, T]) {
			defer wg.Done()
			st := sm.Execute(trigger)
			mu.Lock()
			results[n] = st
			mu.Unlock()
		}(name, m)
	}

	wg.Wait()
	return results
}

// States 获取所有状态机的当前状态
func (g *Group[S, T]) States() map[string]S {
	g.mu.RLock()
	defer g.mu.RUnlock()

	states := make(map[string]S, len(g.machines))
	for name, m := range g.machines {
		states[name] = m.Current()
	}
	return states
}

// ResetAll 重置所有状态机
func (g *Group[S, T]) ResetAll() {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, m := range g.machines {
		m.Reset()
	}
}

// Count 返回状态机数量
func (g *Group[S, T]) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.machines)
}
