package tutor

import "slices"

// Task selects the instructional template used for a request.
type Task string

const (
	TaskExplain   Task = "Explain"
	TaskSolve     Task = "Solve"
	TaskDebug     Task = "Debug"
	TaskTestCases Task = "TestCases"
)

// Tasks returns the recognized task kinds in display order.
func Tasks() []Task {
	return []Task{TaskExplain, TaskSolve, TaskDebug, TaskTestCases}
}

// Valid reports whether t is one of the recognized task kinds.
// Matching is exact: "explain" is not a valid task.
func (t Task) Valid() bool {
	return slices.Contains(Tasks(), t)
}
