package fsm

// 旧版引擎使用固定的 int 状态/触发器表示和引擎内置的哨兵初始/终止状态，
// 并要求显式初始化。这里通过门控模式复刻该行为。

const (
	// SentinelInitial 旧版引擎内置的初始状态
	SentinelInitial int = -1
	// SentinelFinal 旧版引擎内置的终止状态
	SentinelFinal int = -2
)

// LegacyMachine 旧版兼容状态机：int 状态、int 触发器、哨兵初始/终止状态
type LegacyMachine = Machine[int, int]

// NewLegacy 创建旧版兼容状态机，门控模式，需先 Init 再 Execute
func NewLegacy() *LegacyMachine {
	return NewGated[int, int](SentinelInitial, SentinelFinal)
}
