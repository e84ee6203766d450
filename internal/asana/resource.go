package asana

import "net/url"

// Resource describes one readable API collection: how to build its URL
// path from a parameter, which fields to request, and any extra query
// parameters. The Fields list must stay in lock-step with the decodable
// attributes of the response type R.
type Resource[P, R any] struct {
	// Segments yields the path components under the API base URL.
	Segments func(P) []string
	// Fields is sent as opt_fields; dot-qualified for nested selections.
	Fields []string
	// Params yields additional query parameters. May be nil.
	Params func(P) url.Values
}

// UserTaskListParam identifies a user's task list within a workspace.
type UserTaskListParam struct {
	UserGID      string
	WorkspaceGID string
}

// NoParam is used by descriptors whose path takes no input.
type NoParam struct{}

var (
	// Workspaces lists the workspaces the authenticated user belongs to.
	Workspaces = Resource[NoParam, []Workspace]{
		Segments: func(NoParam) []string { return []string{"workspaces"} },
		Fields:   []string{"name"},
	}

	// Projects lists projects visible to the authenticated user.
	Projects = Resource[NoParam, []Project]{
		Segments: func(NoParam) []string { return []string{"projects"} },
		Fields:   []string{"name"},
	}

	// UserTaskLists resolves the "My Tasks" list for a user in a workspace.
	UserTaskLists = Resource[UserTaskListParam, UserTaskList]{
		Segments: func(p UserTaskListParam) []string {
			return []string{"users", p.UserGID, "user_task_list"}
		},
		Fields: []string{"name"},
		Params: func(p UserTaskListParam) url.Values {
			return url.Values{"workspace": {p.WorkspaceGID}}
		},
	}

	// UserTasks lists the incomplete tasks of a user task list.
	UserTasks = Resource[string, []UserTask]{
		Segments: func(listGID string) []string {
			return []string{"user_task_lists", listGID, "tasks"}
		},
		Fields: []string{"name", "created_at", "due_on"},
		Params: func(string) url.Values {
			return url.Values{"completed_since": {"now"}}
		},
	}

	// Sections lists the sections of a project.
	Sections = Resource[string, []Section]{
		Segments: func(projectGID string) []string {
			return []string{"projects", projectGID, "sections"}
		},
		Fields: []string{"name"},
	}

	// SectionTasks lists the tasks of a section, including the numeric
	// custom fields stats are stored in.
	SectionTasks = Resource[string, []FocusTask]{
		Segments: func(sectionGID string) []string {
			return []string{"sections", sectionGID, "tasks"}
		},
		Fields: []string{"name", "notes", "custom_fields.gid", "custom_fields.number_value"},
	}

	// Subtasks lists the child tasks of a task.
	Subtasks = Resource[string, []Subtask]{
		Segments: func(taskGID string) []string {
			return []string{"tasks", taskGID, "subtasks"}
		},
		Fields: []string{"name", "completed"},
	}
)

// Membership places a task into a section of a project.
type Membership struct {
	Project string `json:"project"`
	Section string `json:"section"`
}

// CreateSectionRequest creates a section in a project. InsertBefore is
// omitted when the section should land in the server's default position.
type CreateSectionRequest struct {
	Name         string `json:"name"`
	InsertBefore string `json:"insert_before,omitempty"`
}

// CreateSectionTaskRequest creates a task directly inside a section.
type CreateSectionTaskRequest struct {
	Name        string       `json:"name"`
	Projects    []string     `json:"projects"`
	Memberships []Membership `json:"memberships"`
}

// AddTaskToSectionRequest repositions a task within a section.
type AddTaskToSectionRequest struct {
	Task        string `json:"task"`
	InsertAfter string `json:"insert_after,omitempty"`
}

// CreateSubtaskRequest creates a child task.
type CreateSubtaskRequest struct {
	Name     string `json:"name"`
	Assignee string `json:"assignee"`
	DueOn    Date   `json:"due_on"`
}

// CreateTaskRequest creates a standalone task in a workspace.
type CreateTaskRequest struct {
	Name      string `json:"name"`
	Notes     string `json:"notes,omitempty"`
	Assignee  string `json:"assignee"`
	Workspace string `json:"workspace"`
	DueOn     Date   `json:"due_on"`
}

// CompleteTaskRequest marks a task complete or incomplete.
type CompleteTaskRequest struct {
	Completed bool `json:"completed"`
}

// UpdateFocusRequest writes the diary text and filled stats of a focus
// day back to its task.
type UpdateFocusRequest struct {
	Notes        string         `json:"notes"`
	CustomFields map[string]int `json:"custom_fields,omitempty"`
}
