package plugin

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/stewardhq/steward/core"
)

var (
	addTaskPattern      = regexp.MustCompile(`(?i)add task (.+)`)
	completeTaskPattern = regexp.MustCompile(`(?i)complete task (\d+)`)
	removeTaskPattern   = regexp.MustCompile(`(?i)remove task (\d+)`)
)

// taskKeywords are the substrings that make the tracker claim an input.
var taskKeywords = []string{"task", "todo", "to-do", "remind", "remember"}

type task struct {
	ID          int
	Description string
	Created     time.Time
	Completed   bool
	CompletedAt time.Time
}

// TaskTracker manages personal tasks and to-do items. Task state lives only
// in memory and is owned exclusively by the plugin instance; it is not safe
// for concurrent use, matching the single-caller model of the assistant core.
type TaskTracker struct {
	enabled bool
	nextID  int
	tasks   []task
}

// TaskTrackerOptions configures a TaskTracker from its configuration fragment.
type TaskTrackerOptions struct {
	// Enabled controls routing participation; defaults to true.
	Enabled bool
}

// NewTaskTracker constructs a task tracker with optional overrides.
func NewTaskTracker(optFns ...func(o *TaskTrackerOptions)) *TaskTracker {
	opts := TaskTrackerOptions{Enabled: true}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &TaskTracker{enabled: opts.Enabled, nextID: 1}
}

// Name implements core.Plugin.
func (t *TaskTracker) Name() string { return "tasks" }

// Enabled implements core.Plugin.
func (t *TaskTracker) Enabled() bool { return t.enabled }

// CanHandle claims inputs mentioning tasks, to-dos or reminders.
func (t *TaskTracker) CanHandle(input string) bool {
	lower := strings.ToLower(input)
	for _, kw := range taskKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Capabilities implements core.Plugin.
func (t *TaskTracker) Capabilities() core.Capability {
	return core.Capability{
		Name:        "Task Management",
		Description: "Manage personal tasks and to-do items",
		Commands: []string{
			"add task [description]",
			"list tasks",
			"complete task [id]",
			"remove task [id]",
		},
		Version: "1.0.0",
	}
}

// Execute dispatches the input to the matching task command, falling back to
// usage help. All faults are rendered into the response string.
func (t *TaskTracker) Execute(input string, rc *core.RequestContext) string {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "add") && strings.Contains(lower, "task"):
		return t.addTask(input)
	case strings.Contains(lower, "list") && strings.Contains(lower, "task"):
		return t.listTasks()
	case strings.Contains(lower, "complete") && strings.Contains(lower, "task"):
		return t.completeTask(input)
	case strings.Contains(lower, "remove") && strings.Contains(lower, "task"):
		return t.removeTask(input)
	default:
		return t.usage()
	}
}

func (t *TaskTracker) addTask(input string) string {
	m := addTaskPattern.FindStringSubmatch(input)
	if m == nil {
		return "Please provide a task description. Example: 'add task buy groceries'"
	}

	description := strings.TrimSpace(m[1])
	t.tasks = append(t.tasks, task{ID: t.nextID, Description: description, Created: time.Now()})
	t.nextID++

	return fmt.Sprintf("Added task: %s", description)
}

func (t *TaskTracker) listTasks() string {
	if len(t.tasks) == 0 {
		return "No tasks found. Add a task with 'add task [description]'"
	}

	var b strings.Builder
	b.WriteString("Your tasks:\n")
	for _, tk := range t.tasks {
		if tk.Completed {
			continue
		}
		fmt.Fprintf(&b, "  %d. %s\n", tk.ID, tk.Description)
	}
	done := false
	for _, tk := range t.tasks {
		if !tk.Completed {
			continue
		}
		if !done {
			b.WriteString("Completed:\n")
			done = true
		}
		fmt.Fprintf(&b, "  [x] %d. %s\n", tk.ID, tk.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (t *TaskTracker) completeTask(input string) string {
	m := completeTaskPattern.FindStringSubmatch(input)
	if m == nil {
		return "Please specify a task ID. Example: 'complete task 1'"
	}

	id, _ := strconv.Atoi(m[1])
	tk := t.findTask(id)
	if tk == nil {
		return fmt.Sprintf("Task %d not found", id)
	}
	if tk.Completed {
		return fmt.Sprintf("Task %d is already completed", id)
	}

	tk.Completed = true
	tk.CompletedAt = time.Now()
	return fmt.Sprintf("Completed task: %s", tk.Description)
}

func (t *TaskTracker) removeTask(input string) string {
	m := removeTaskPattern.FindStringSubmatch(input)
	if m == nil {
		return "Please specify a task ID. Example: 'remove task 1'"
	}

	id, _ := strconv.Atoi(m[1])
	for i, tk := range t.tasks {
		if tk.ID == id {
			t.tasks = append(t.tasks[:i], t.tasks[i+1:]...)
			return fmt.Sprintf("Removed task: %s", tk.Description)
		}
	}
	return fmt.Sprintf("Task %d not found", id)
}

func (t *TaskTracker) findTask(id int) *task {
	for i := range t.tasks {
		if t.tasks[i].ID == id {
			return &t.tasks[i]
		}
	}
	return nil
}

func (t *TaskTracker) usage() string {
	return "I can help you manage tasks! Try:\n" +
		"  'add task [description]' - Add a new task\n" +
		"  'list tasks' - Show all tasks\n" +
		"  'complete task [id]' - Mark task as done\n" +
		"  'remove task [id]' - Delete a task"
}
