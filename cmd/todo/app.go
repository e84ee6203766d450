package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/focusly/todo/internal/asana"
	"github.com/focusly/todo/internal/authlock"
	"github.com/focusly/todo/internal/cache"
	"github.com/focusly/todo/internal/config"
	"github.com/focusly/todo/internal/debug"
	"github.com/focusly/todo/internal/focus"
)

// cacheMaxAge is how old the snapshot may be before cache-only mode
// warns that the background update is not keeping up.
const cacheMaxAge = 3 * time.Minute

// App holds the state shared by all commands: cache, config, the
// authenticated client, and the memoized task list.
type App struct {
	CachePath  string
	ConfigPath string
	Cache      cache.Cache
	Config     config.Config
	Client     *asana.Client
	UseCache   bool
	Now        time.Time
	Today      asana.Date

	taskList *asana.UserTaskList
	tasks    []asana.UserTask
}

func newApp(ctx context.Context) (*App, error) {
	cachePath, err := expandHomeDir(cachePathFlag)
	if err != nil {
		return nil, err
	}
	configPath, err := expandHomeDir(configPathFlag)
	if err != nil {
		return nil, err
	}

	c, err := cache.Load(cachePath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	a := &App{
		CachePath:  cachePath,
		ConfigPath: configPath,
		Cache:      c,
		Config:     cfg,
		UseCache:   useCache,
		Now:        now,
		Today:      asana.DateOf(now),
	}

	if a.UseCache && a.Cache.Stale(a.Now, cacheMaxAge) {
		if a.Cache.LastUpdated == nil {
			color.Red("Warning: cache has never been updated, is caching working? See the README.md")
		} else {
			color.Red("Warning: cache has not been updated in more than 3 minutes, is the update command in the background? See the README.md")
		}
	}

	creds, err := a.obtainCredentials(ctx)
	if err != nil {
		return nil, err
	}

	a.Client = asana.NewClient(creds)
	a.Client.AuthorizeFunc = a.lockedAuthorizationFlow
	return a, nil
}

// obtainCredentials resolves credentials from the cache, falling back
// to the requested interactive flow. New credentials are persisted
// immediately.
func (a *App) obtainCredentials(ctx context.Context) (asana.Credentials, error) {
	if usePAT {
		if a.Cache.Creds.PersonalAccessToken != "" {
			debug.Logf("using cached personal access token")
			return asana.Credentials{PersonalAccessToken: a.Cache.Creds.PersonalAccessToken}, nil
		}
		creds, err := a.runLocked(func() (asana.Credentials, error) {
			return asana.AskForPAT()
		})
		if err != nil {
			return asana.Credentials{}, err
		}
		return creds, a.storeCredentials(creds)
	}

	if a.Cache.Creds.OAuth2 != nil {
		debug.Logf("using cached OAuth2 credentials")
		return asana.Credentials{OAuth2: a.Cache.Creds.OAuth2}, nil
	}

	creds, err := a.lockedAuthorizationFlow(ctx)
	if err != nil {
		return asana.Credentials{}, err
	}
	return creds, a.storeCredentials(creds)
}

// lockedAuthorizationFlow runs the interactive OAuth flow under the
// cross-process auth lock, so concurrent invocations (say, a cron
// update and an interactive session) don't both open consent pages.
func (a *App) lockedAuthorizationFlow(ctx context.Context) (asana.Credentials, error) {
	return a.runLocked(func() (asana.Credentials, error) {
		return asana.ExecuteAuthorizationFlow(ctx)
	})
}

func (a *App) runLocked(flow func() (asana.Credentials, error)) (asana.Credentials, error) {
	guard, err := authlock.Acquire(cache.LockPath(a.CachePath))
	if errors.Is(err, authlock.ErrAlreadyLocked) {
		return asana.Credentials{}, fmt.Errorf("another authorization is already in progress; try again in a few minutes")
	}
	if err != nil {
		return asana.Credentials{}, err
	}
	defer guard.Release()
	return flow()
}

func (a *App) storeCredentials(creds asana.Credentials) error {
	a.Cache.Creds = creds
	return cache.Save(a.CachePath, a.Cache)
}

// PersistCredentials saves the client's credentials when they differ
// from the cached ones.
func (a *App) PersistCredentials() error {
	current := a.Client.Credentials()
	if current.Token() == a.Cache.Creds.Token() {
		return nil
	}
	debug.Logf("credentials changed, updating cache")
	return a.storeCredentials(current)
}

// Workspace returns the configured workspace GID, autodetecting the
// first workspace from the API when unset.
func (a *App) Workspace(ctx context.Context) (string, error) {
	if a.Config.WorkspaceGID != "" {
		return a.Config.WorkspaceGID, nil
	}

	debug.Logf("no workspace configured, autodetecting")
	workspaces, err := asana.Fetch(ctx, a.Client, asana.Workspaces, asana.NoParam{})
	if err != nil {
		return "", fmt.Errorf("failed to fetch workspaces: %w", err)
	}
	if len(workspaces) == 0 {
		return "", fmt.Errorf("no workspaces available for this account")
	}
	debug.Logf("using workspace %s (%s)", workspaces[0].Name, workspaces[0].GID)
	return workspaces[0].GID, nil
}

// UserTaskList resolves the user's "My Tasks" list, memoized and
// cache-aware.
func (a *App) UserTaskList(ctx context.Context) (asana.UserTaskList, error) {
	if a.taskList != nil {
		return *a.taskList, nil
	}
	if a.UseCache && a.Cache.UserTaskList != nil {
		debug.Logf("using cached user task list")
		a.taskList = a.Cache.UserTaskList
		return *a.taskList, nil
	}

	workspace, err := a.Workspace(ctx)
	if err != nil {
		return asana.UserTaskList{}, err
	}
	list, err := asana.Fetch(ctx, a.Client, asana.UserTaskLists, asana.UserTaskListParam{
		UserGID:      "me",
		WorkspaceGID: workspace,
	})
	if err != nil {
		return asana.UserTaskList{}, fmt.Errorf("failed to fetch user task list: %w", err)
	}

	a.taskList = &list
	a.Cache.UserTaskList = &list
	if err := cache.Save(a.CachePath, a.Cache); err != nil {
		return asana.UserTaskList{}, err
	}
	return list, nil
}

// Tasks returns the incomplete tasks of the user's task list, memoized
// and cache-aware.
func (a *App) Tasks(ctx context.Context) ([]asana.UserTask, error) {
	if a.tasks != nil {
		return a.tasks, nil
	}
	if a.UseCache && a.Cache.Tasks != nil {
		debug.Logf("using cached tasks")
		a.tasks = a.Cache.Tasks
		return a.tasks, nil
	}

	list, err := a.UserTaskList(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := asana.Fetch(ctx, a.Client, asana.UserTasks, list.GID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	a.tasks = tasks
	a.Cache.Tasks = tasks
	if err := cache.Save(a.CachePath, a.Cache); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Resolver builds the focus resolver from the configuration. Focus
// commands need focus_project_gid set.
func (a *App) Resolver() (*focus.Resolver, error) {
	if !a.Config.FocusEnabled() {
		return nil, fmt.Errorf("focus is not configured: set focus_project_gid in %s", a.ConfigPath)
	}
	statFields, err := a.Config.StatFields()
	if err != nil {
		return nil, err
	}
	return &focus.Resolver{
		Client:     a.Client,
		ProjectGID: a.Config.FocusProjectGID,
		StatFields: statFields,
	}, nil
}

// TaskListURL is the Asana web URL of the user's task list.
func (a *App) TaskListURL(ctx context.Context) (string, error) {
	list, err := a.UserTaskList(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://app.asana.com/0/%s/list", list.GID), nil
}
