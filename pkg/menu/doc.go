// Package menu 实现街机菜单的核心：选择状态机、布局计算、帧合成以及
// “挂起-执行外部命令-恢复”的生命周期。
//
// 图形、音频、输入、进程执行均通过接口注入（见 capabilities.go），
// 因此整个菜单循环可以在没有真实窗口和声卡的情况下进行测试。
// 所有状态只由循环所在的单一线程修改，不需要任何锁。
package menu
