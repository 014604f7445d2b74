// Package tasklist implements the task-list state machine: an ordered task
// sequence plus the single active compose or edit draft.
package tasklist

import (
	"fmt"
	"strings"

	"github.com/dolist/dolist/internal/domain"
)

// Controller owns the ordered task sequence and the active draft. It is
// single-threaded by construction: one owner, invoked synchronously per UI
// event or CLI invocation.
//
// Holding the draft here rather than as a per-task flag makes the
// "one draft at a time" invariant structural: starting a compose while an
// edit is active (or vice versa) fails with ErrBusy instead of silently
// discarding unsaved text.
type Controller struct {
	store  domain.TaskStore
	tasks  []domain.Task
	edit   domain.EditState
	path   string
	nextID int
}

// New creates an empty Controller backed by store.
func New(store domain.TaskStore) *Controller {
	return &Controller{store: store, nextID: 1}
}

// Tasks returns a copy of the ordered task sequence.
func (c *Controller) Tasks() []domain.Task {
	out := make([]domain.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Len returns the number of tasks.
func (c *Controller) Len() int {
	return len(c.tasks)
}

// Get returns the task with the given id.
func (c *Controller) Get(id int) (domain.Task, bool) {
	if i := c.index(id); i >= 0 {
		return c.tasks[i], true
	}
	return domain.Task{}, false
}

// EditState returns the current draft state.
func (c *Controller) EditState() domain.EditState {
	return c.edit
}

// CurrentPath returns the file used by the last successful save or load,
// or "" if the list has no file yet.
func (c *Controller) CurrentPath() string {
	return c.path
}

// BeginCompose starts a new-task draft. Fails with ErrBusy while another
// compose or edit is in progress.
func (c *Controller) BeginCompose() error {
	if c.edit.Active() {
		return domain.ErrBusy
	}
	c.edit = domain.EditState{Mode: domain.EditComposing}
	return nil
}

// BeginEdit starts a draft over an existing task's description.
func (c *Controller) BeginEdit(id int) error {
	if c.edit.Active() {
		return domain.ErrBusy
	}
	i := c.index(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	c.edit = domain.EditState{
		Mode:   domain.EditEditing,
		TaskID: id,
		Draft:  c.tasks[i].Description,
	}
	return nil
}

// UpdateDraft replaces the active draft text.
func (c *Controller) UpdateDraft(text string) error {
	if !c.edit.Active() {
		return domain.ErrNoDraft
	}
	c.edit.Draft = text
	return nil
}

// CommitCompose appends a new task built from the draft and returns its id.
// A draft that is empty after trimming appends nothing and returns 0; the
// draft is discarded either way.
func (c *Controller) CommitCompose() (int, error) {
	if c.edit.Mode != domain.EditComposing {
		return 0, domain.ErrNoDraft
	}
	text := strings.TrimSpace(c.edit.Draft)
	c.edit = domain.EditState{}
	if text == "" {
		return 0, nil
	}
	id := c.nextID
	c.nextID++
	c.tasks = append(c.tasks, domain.Task{ID: id, Description: text})
	return id, nil
}

// CancelCompose discards the compose draft.
func (c *Controller) CancelCompose() error {
	if c.edit.Mode != domain.EditComposing {
		return domain.ErrNoDraft
	}
	c.edit = domain.EditState{}
	return nil
}

// CommitEdit stores the draft as the edited task's description and returns
// the task id. Unlike compose, an empty draft is committed verbatim.
func (c *Controller) CommitEdit() (int, error) {
	if c.edit.Mode != domain.EditEditing {
		return 0, domain.ErrNoDraft
	}
	id := c.edit.TaskID
	i := c.index(id)
	if i < 0 {
		// Delete already resets the draft when the edited task vanishes;
		// this only guards direct misuse.
		c.edit = domain.EditState{}
		return 0, domain.ErrTaskNotFound
	}
	c.tasks[i].Description = c.edit.Draft
	c.edit = domain.EditState{}
	return id, nil
}

// CancelEdit discards the edit draft, leaving the task unchanged.
func (c *Controller) CancelEdit() error {
	if c.edit.Mode != domain.EditEditing {
		return domain.ErrNoDraft
	}
	c.edit = domain.EditState{}
	return nil
}

// Toggle flips the completed flag of the given task. Independent of the
// draft state.
func (c *Controller) Toggle(id int) error {
	i := c.index(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	c.tasks[i].Completed = !c.tasks[i].Completed
	return nil
}

// Delete removes the given task. Deleting the task currently being edited
// resets the draft state to idle.
func (c *Controller) Delete(id int) error {
	i := c.index(id)
	if i < 0 {
		return domain.ErrTaskNotFound
	}
	c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
	if c.edit.Mode == domain.EditEditing && c.edit.TaskID == id {
		c.edit = domain.EditState{}
	}
	return nil
}

// Save persists the task sequence to path. On success the path becomes the
// current file. A save never modifies the sequence or the draft.
func (c *Controller) Save(path string) error {
	if err := c.store.Write(path, c.tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	c.path = path
	return nil
}

// Load replaces the task sequence wholesale from path and re-seeds the id
// counter above the largest loaded id, preserving id uniqueness for tasks
// added afterwards. A completed load is the authority: any in-flight draft
// is discarded. On failure nothing changes.
func (c *Controller) Load(path string) error {
	tasks, err := c.store.Read(path)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	c.tasks = tasks
	c.edit = domain.EditState{}
	c.nextID = maxID(tasks) + 1
	c.path = path
	return nil
}

func (c *Controller) index(id int) int {
	for i, t := range c.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func maxID(tasks []domain.Task) int {
	m := 0
	for _, t := range tasks {
		if t.ID > m {
			m = t.ID
		}
	}
	return m
}
