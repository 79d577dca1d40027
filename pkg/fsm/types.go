package fsm

// Status 表示一次 Execute 调用的执行结果
type Status int

const (
	// Success 表示触发器与当前状态的某条转换匹配
	// 注意：即使所有匹配转换的守卫都拒绝、状态未发生变化，也返回 Success
	Success Status = iota

	// NoMatchingTrigger 表示当前状态没有任何转换匹配该触发器
	NoMatchingTrigger

	// NotInitialized 表示门控模式下尚未调用 Init
	NotInitialized
)

// String 返回状态码的可读名称
func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case NoMatchingTrigger:
		return "NoMatchingTrigger"
	case NotInitialized:
		return "NotInitialized"
	default:
		return "Unknown"
	}
}

// GuardFunc 转换的守卫条件，nil 视为恒真
// 守卫必须幂等：在状态未变化的前提下重复调用须返回相同结果
type GuardFunc func() bool

// ActionFunc 转换动作，副作用仅对调用方可见，nil 视为无操作
type ActionFunc func()

// DebugFunc 调试回调，在每次实际发生的转换后调用
// 参数依次为转换前状态、转换后状态和刚被消费的触发器
type DebugFunc[S, T comparable] func(from, to S, trigger T)
