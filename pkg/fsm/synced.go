package fsm

import "sync"

// Synced 给单个状态机加互斥锁的包装器
//
// 引擎本体不做内部加锁；跨协程共享同一实例时，由本包装器对所有访问
// 做串行化，相当于"一台状态机一把锁"。守卫、动作和调试回调都在锁内
// 执行，因此它们不得再调用同一包装器的任何方法
type Synced[S, T comparable] struct {
	mu sync.Mutex
	m  *Machine[S, T]
}

// NewSynced 创建线程安全包装器，此后应只通过包装器访问该状态机
func NewSynced[S, T comparable](m *Machine[S, T]) *Synced[S, T] {
	return &Synced[S, T]{m: m}
}

// AddTransitions 追加转换规则
func (s *Synced[S, T]) AddTransitions(trs ...Transition[S, T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.AddTransitions(trs...)
}

// SetDebugFn 设置或替换调试回调
func (s *Synced[S, T]) SetDebugFn(fn DebugFunc[S, T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.SetDebugFn(fn)
}

// Init 显式初始化（门控模式）
func (s *Synced[S, T]) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Init()
}

// Execute 消费一个触发器
func (s *Synced[S, T]) Execute(trigger T) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Execute(trigger)
}

// Can 判断当前状态是否存在匹配该触发器的出边
func (s *Synced[S, T]) Can(trigger T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Can(trigger)
}

// Current 返回当前状态
func (s *Synced[S, T]) Current() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Current()
}

// Reset 回到初始状态
func (s *Synced[S, T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.Reset()
}

// ResetTo 将当前状态直接置为指定状态
func (s *Synced[S, T]) ResetTo(state S) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m.ResetTo(state)
}

// IsInitial 判断当前状态是否为初始状态
func (s *Synced[S, T]) IsInitial() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.IsInitial()
}

// IsFinal 判断当前状态是否为终止状态
func (s *Synced[S, T]) IsFinal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.IsFinal()
}
