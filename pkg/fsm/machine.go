package fsm

// Machine 通用有限状态机执行引擎
//
// 引擎是纯被动组件：不做任何 I/O、调度和计时，由调用方逐个投递触发器驱动。
// 状态与触发器类型由调用方选定，要求支持相等比较。
//
// 引擎内部不加锁，单实例默认单线程使用；跨协程共享同一实例时必须由
// 持有方串行化所有访问（见 Synced）。守卫和动作中不得重入同一实例。
type Machine[S, T comparable] struct {
	current     S
	initial     S
	final       S
	hasFinal    bool
	gated       bool
	initialized bool
	table       *transitionTable[S, T]
	debugFn     DebugFunc[S, T]
}

// New 创建急切模式状态机：构造后立即处于初始状态，无需单独激活
func New[S, T comparable](initial S) *Machine[S, T] {
	return &Machine[S, T]{
		current:     initial,
		initial:     initial,
		initialized: true,
		table:       newTransitionTable[S, T](),
	}
}

// NewGated 创建门控模式状态机：构造后处于未初始化状态，
// 必须先调用 Init，Execute 才会真正工作
// final 为引擎识别的终止状态，用于 IsFinal 判断
func NewGated[S, T comparable](initial, final S) *Machine[S, T] {
	return &Machine[S, T]{
		current:  initial,
		initial:  initial,
		final:    final,
		hasFinal: true,
		gated:    true,
		table:    newTransitionTable[S, T](),
	}
}

// AddTransitions 向状态机追加一条或多条转换规则
// 可多次调用且效果累积；规则只增不减，重复或冲突的规则同样被接受，
// 本方法永不失败
func (m *Machine[S, T]) AddTransitions(trs ...Transition[S, T]) {
	m.table.add(trs...)
}

// SetDebugFn 设置或替换调试回调，传 nil 关闭通知，立即生效
// 回调只在 Execute 内实际发生转换时触发，Init/Reset 不触发
func (m *Machine[S, T]) SetDebugFn(fn DebugFunc[S, T]) {
	m.debugFn = fn
}

// Init 显式初始化门控模式状态机：首次调用进入初始状态并解除门控，
// 后续调用为无操作；急切模式状态机天然已初始化，调用本方法无效果
func (m *Machine[S, T]) Init() {
	if m.gated && !m.initialized {
		m.initialized = true
		m.current = m.initial
	}
}

// Execute 消费一个触发器，按声明顺序扫描当前状态的出边并至多执行一次转换
//
// 匹配语义：同一触发器命中多条候选转换时，取声明顺序中第一条守卫通过
// （或无守卫）的转换，确定性的先声明者优先；只要有任意转换的触发器匹配过，
// 即使全部守卫拒绝、状态未变化，也返回 Success
//
// 任何返回值之后状态机都处于确定、可继续使用的状态；
// 守卫或动作自身的 panic 原样向调用方传播，引擎不拦截
func (m *Machine[S, T]) Execute(trigger T) Status {
	if m.gated && !m.initialized {
		return NotInitialized
	}

	result := NoMatchingTrigger

	for _, idx := range m.table.bucket(m.current) {
		tr := m.table.at(idx)
		if tr.Trigger != trigger {
			continue
		}
		result = Success

		if tr.Guard != nil && !tr.Guard() {
			continue
		}

		if tr.Action != nil {
			tr.Action()
		}
		from := m.current
		m.current = tr.To
		if m.debugFn != nil {
			m.debugFn(from, tr.To, trigger)
		}
		// 每次 Execute 至多发生一次转换
		break
	}

	return result
}

// Can 判断当前状态是否存在匹配该触发器的出边，不评估守卫
func (m *Machine[S, T]) Can(trigger T) bool {
	for _, idx := range m.table.bucket(m.current) {
		if m.table.at(idx).Trigger == trigger {
			return true
		}
	}
	return false
}

// Current 返回当前状态
func (m *Machine[S, T]) Current() S {
	return m.current
}

// Reset 回到初始状态；门控模式下同时回到未初始化状态，需再次 Init
func (m *Machine[S, T]) Reset() {
	m.current = m.initial
	if m.gated {
		m.initialized = false
	}
}

// ResetTo 将当前状态直接置为指定状态，任何时候都可调用
func (m *Machine[S, T]) ResetTo(s S) {
	m.current = s
}

// IsInitial 判断当前状态是否为初始状态
func (m *Machine[S, T]) IsInitial() bool {
	return m.current == m.initial
}

// IsFinal 判断当前状态是否为终止状态；未配置终止状态时恒为 false
func (m *Machine[S, T]) IsFinal() bool {
	return m.hasFinal && m.current == m.final
}
