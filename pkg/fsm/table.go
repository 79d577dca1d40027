package fsm

// transitionTable 按源状态分桶的转换表
// 所有转换集中存放在 arena 中，桶内只保存下标，
// 查找时先按源状态取桶，再对桶做一次短线性扫描，
// 避免每次触发都遍历全部转换
type transitionTable[S, T comparable] struct {
	arena   []Transition[S, T]
	buckets map[S][]int
}

func newTransitionTable[S, T comparable]() *transitionTable[S, T] {
	return &transitionTable[S, T]{
		buckets: make(map[S][]int),
	}
}

// add 追加转换并保持输入顺序
// 可多次调用；已加入的转换永不失效，重复或冲突的规则同样被接受
// 桶内顺序即声明顺序，先声明者先匹配
func (t *transitionTable[S, T]) add(trs ...Transition[S, T]) {
	for _, tr := range trs {
		idx := len(t.arena)
		t.arena = append(t.arena, tr)
		t.buckets[tr.From] = append(t.buckets[tr.From], idx)
	}
}

// bucket 返回指定状态的出边下标列表，未声明过的状态返回空
func (t *transitionTable[S, T]) bucket(s S) []int {
	return t.buckets[s]
}

func (t *transitionTable[S, T]) at(i int) *Transition[S, T] {
	return &t.arena[i]
}
