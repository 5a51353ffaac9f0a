package service

import (
	"context"
	"sync"
	"time"

	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

// memStore is an in-memory double satisfying UserStore, ProjectStore and
// TaskStore. It returns the same sentinel errors as the repository package so
// the services' error translation is exercised for real.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	users    map[string]*model.User
	projects map[int64]*model.Project
	tasks    map[int64]*model.Task
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*model.User),
		projects: make(map[int64]*model.Project),
		tasks:    make(map[int64]*model.Task),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) Create(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}

	user.ID = m.id()
	user.CreatedAt = time.Now()
	cp := *user
	m.users[user.Email] = &cp
	return nil
}

func (m *memStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *memStore) CreateProject(ctx context.Context, project *model.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	project.ID = m.id()
	project.CreatedAt = time.Now()
	cp := *project
	m.projects[project.ID] = &cp
	return nil
}

func (m *memStore) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	project, ok := m.projects[id]
	if !ok || project.OwnerID != ownerID {
		return nil, repository.ErrProjectNotFound
	}
	cp := *project
	return &cp, nil
}

func (m *memStore) ListByOwner(ctx context.Context, ownerID int64) ([]model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var projects []model.Project
	for _, p := range m.projects {
		if p.OwnerID == ownerID {
			projects = append(projects, *p)
		}
	}
	return projects, nil
}

func (m *memStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return repository.ErrProjectNotFound
	}
	for taskID, t := range m.tasks {
		if t.ProjectID == id {
			delete(m.tasks, taskID)
		}
	}
	delete(m.projects, id)
	return nil
}

func (m *memStore) CreateTask(ctx context.Context, task *model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	task.ID = m.id()
	task.CreatedAt = time.Now()
	cp := *task
	m.tasks[task.ID] = &cp
	return nil
}

func (m *memStore) GetByIDAndProject(ctx context.Context, id, projectID int64) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok || task.ProjectID != projectID {
		return nil, repository.ErrTaskNotFound
	}
	cp := *task
	return &cp, nil
}

func (m *memStore) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var tasks []model.Task
	for _, t := range m.tasks {
		if t.ProjectID == projectID {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

func (m *memStore) UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return repository.ErrTaskNotFound
	}
	task.Status = status
	return nil
}

func (m *memStore) DeleteTask(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *memStore) CountByProject(ctx context.Context, projectID int64) (total, completed int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == model.StatusCompleted {
			completed++
		}
	}
	return total, completed, nil
}

// projectStoreAdapter and taskStoreAdapter rename the Create/Delete methods so
// one memStore can satisfy all three store interfaces despite the overlapping
// method names.
type projectStoreAdapter struct{ *memStore }

func (a projectStoreAdapter) Create(ctx context.Context, p *model.Project) error {
	return a.memStore.CreateProject(ctx, p)
}

type taskStoreAdapter struct{ *memStore }

func (a taskStoreAdapter) Create(ctx context.Context, t *model.Task) error {
	return a.memStore.CreateTask(ctx, t)
}

func (a taskStoreAdapter) Delete(ctx context.Context, id int64) error {
	return a.memStore.DeleteTask(ctx, id)
}

// testEnv bundles the services wired against one shared memStore.
type testEnv struct {
	store    *memStore
	auth     *AuthService
	resolver *OwnershipResolver
	projects *ProjectService
	tasks    *TaskService
}

func newTestEnv() *testEnv {
	store := newMemStore()
	projects := projectStoreAdapter{store}
	tasks := taskStoreAdapter{store}

	resolver := NewOwnershipResolver(store, projects, tasks)
	return &testEnv{
		store:    store,
		auth:     NewAuthService(store, "test-secret", time.Hour),
		resolver: resolver,
		projects: NewProjectService(resolver, projects, tasks),
		tasks:    NewTaskService(resolver, tasks),
	}
}

// seedUser registers a user directly in the store, skipping the slow password
// hash for tests that never log in.
func (e *testEnv) seedUser(email, name string) *model.User {
	user := &model.User{Email: email, Name: name, PasswordHash: "x"}
	if err := e.store.Create(context.Background(), user); err != nil {
		panic(err)
	}
	return user
}

func (e *testEnv) seedProject(ownerID int64, title string) *model.Project {
	project := &model.Project{Title: title, OwnerID: ownerID}
	if err := e.store.CreateProject(context.Background(), project); err != nil {
		panic(err)
	}
	return project
}

func (e *testEnv) seedTask(projectID int64, title string, status model.TaskStatus) *model.Task {
	task := &model.Task{Title: title, Status: status, ProjectID: projectID}
	if err := e.store.CreateTask(context.Background(), task); err != nil {
		panic(err)
	}
	return task
}
