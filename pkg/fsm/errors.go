package fsm

import "fmt"

var (
	// ErrMachineExists 当注册表中已存在同名状态机时返回
	ErrMachineExists = fmt.Errorf("machine already exists")

	// ErrMachineNotFound 当注册表中不存在该状态机时返回
	ErrMachineNotFound = fmt.Errorf("machine not found")
)
