package fsm

import (
	"encoding/json"
	"time"
)

// Entry 一次实际发生的转换记录
type Entry[S, T comparable] struct {
	From    S         `json:"from"`
	To      S         `json:"to"`
	Trigger T         `json:"trigger"`
	At      time.Time `json:"at"`
}

// Snapshot 当前状态快照
type Snapshot[S comparable] struct {
	State    S                      `json:"state"`
	At       time.Time              `json:"at"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Recorder 通过调试回调记录转换历史
// 只记录实际发生的转换；守卫拒绝或触发器不匹配时不产生记录
// 与状态机本体一样不做内部加锁
type Recorder[S, T comparable] struct {
	entries []Entry[S, T]
}

// NewRecorder 创建转换历史记录器
func NewRecorder[S, T comparable]() *Recorder[S, T] {
	return &Recorder[S, T]{
		entries: make([]Entry[S, T], 0),
	}
}

// Hook 返回可传给 SetDebugFn 的调试回调
func (r *Recorder[S, T]) Hook() DebugFunc[S, T] {
	return func(from, to S, trigger T) {
		r.entries = append(r.entries, Entry[S, T]{
			From:    from,
			To:      to,
			Trigger: trigger,
			At:      time.Now(),
		})
	}
}

// Entries 返回历史记录的拷贝
func (r *Recorder[S, T]) Entries() []Entry[S, T] {
	return append([]Entry[S, T]{}, r.entries...)
}

// Clear 清空历史记录
func (r *Recorder[S, T]) Clear() {
	r.entries = r.entries[:0]
}

// MarshalJSON 序列化历史记录
func (r *Recorder[S, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.entries)
}

// TakeSnapshot 抓取状态机的当前状态快照
func TakeSnapshot[S, T comparable](m *Machine[S, T], metadata map[string]interface{}) *Snapshot[S] {
	return &Snapshot[S]{
		State:    m.Current(),
		At:       time.Now(),
		Metadata: metadata,
	}
}

// RestoreSnapshot 将状态机恢复到快照中的状态
// 只恢复当前状态，不涉及转换表
func RestoreSnapshot[S, T comparable](m *Machine[S, T], snap *Snapshot[S]) {
	m.ResetTo(snap.State)
}
