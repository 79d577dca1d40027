package fsm

// Transition 定义两个状态之间的一条转换规则
// 加入状态机后由转换表独占持有一份拷贝，调用方无法再修改或移除
type Transition[S, T comparable] struct {
	From    S          // 源状态
	To      S          // 目标状态
	Trigger T          // 触发器
	Guard   GuardFunc  // 守卫条件（可选）
	Action  ActionFunc // 转换动作（可选）
}
