package asana

// Workspace is an Asana workspace the user belongs to.
type Workspace struct {
	GID  string `json:"gid"`
	Name string `json:"name"`
}

// Project is an Asana project.
type Project struct {
	GID  string `json:"gid"`
	Name string `json:"name"`
}

// UserTaskList is the container behind a user's "My Tasks" view.
type UserTaskList struct {
	GID  string `json:"gid"`
	Name string `json:"name"`
}

// Section is a section within a project.
type Section struct {
	GID  string `json:"gid"`
	Name string `json:"name"`
}

// UserTask is a task from the user's task list.
type UserTask struct {
	GID       string    `json:"gid"`
	Name      string    `json:"name"`
	CreatedAt Timestamp `json:"created_at"`
	DueOn     Date      `json:"due_on"`
}

// TaskCustomField is a numeric custom field attached to a task.
type TaskCustomField struct {
	GID         string `json:"gid"`
	NumberValue *int   `json:"number_value"`
}

// FocusTask is a task inside the focus project, carrying the notes body
// and the custom fields the stats live in.
type FocusTask struct {
	GID          string            `json:"gid"`
	Name         string            `json:"name"`
	Notes        string            `json:"notes"`
	CustomFields []TaskCustomField `json:"custom_fields"`
}

// Subtask is a child task of a focus day.
type Subtask struct {
	GID       string `json:"gid"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}
