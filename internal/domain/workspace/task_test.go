package workspace

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	boardID := uuid.New()
	creatorID := uuid.New()

	t.Run("creates task with workflow defaults", func(t *testing.T) {
		task, err := NewTask(boardID, creatorID, "Write report")
		require.NoError(t, err)

		assert.Equal(t, TaskStatusToDo, task.Status)
		assert.Equal(t, TaskPriorityMedium, task.Priority)
		assert.Nil(t, task.DueDate)
		assert.Nil(t, task.AssigneeID)
		assert.Equal(t, creatorID, task.CreatorID)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewTask(boardID, creatorID, "   ")
		assert.Error(t, err)
	})

	t.Run("rejects missing board", func(t *testing.T) {
		_, err := NewTask(uuid.Nil, creatorID, "Write report")
		assert.Error(t, err)
	})
}

func TestTaskStatusTransitions(t *testing.T) {
	task, err := NewTask(uuid.New(), uuid.New(), "Write report")
	require.NoError(t, err)

	t.Run("valid transition", func(t *testing.T) {
		require.NoError(t, task.SetStatus(TaskStatusCompleted))
		assert.True(t, task.IsCompleted())
	})

	t.Run("unknown status rejected on write", func(t *testing.T) {
		err := task.SetStatus("Done-ish")
		assert.Error(t, err)
		assert.Equal(t, TaskStatusCompleted, task.Status)
	})

	t.Run("unknown priority rejected on write", func(t *testing.T) {
		err := task.SetPriority("Critical")
		assert.Error(t, err)
		assert.Equal(t, TaskPriorityMedium, task.Priority)
	})
}

func TestParseTaskEnums(t *testing.T) {
	t.Run("known values round-trip", func(t *testing.T) {
		assert.Equal(t, TaskStatusUnderReview, ParseTaskStatus("Under Review"))
		assert.Equal(t, TaskPriorityUrgent, ParseTaskPriority("Urgent"))
	})

	t.Run("legacy values collapse to unspecified", func(t *testing.T) {
		assert.Equal(t, TaskStatusUnspecified, ParseTaskStatus("done"))
		assert.Equal(t, TaskStatusUnspecified, ParseTaskStatus("QA"))
		assert.Equal(t, TaskPriorityUnspecified, ParseTaskPriority("P0"))
	})

	t.Run("case sensitive", func(t *testing.T) {
		assert.Equal(t, TaskStatusUnspecified, ParseTaskStatus("completed"))
	})
}

func TestParseProjectStatus(t *testing.T) {
	assert.Equal(t, ProjectStatusOnHold, ParseProjectStatus("On Hold"))
	assert.Equal(t, ProjectStatusUnspecified, ParseProjectStatus("paused"))
}

func TestProjectOwnership(t *testing.T) {
	ownerID := uuid.New()
	project, err := NewProject(ownerID, "Launch", "Q2 launch plan")
	require.NoError(t, err)

	assert.True(t, project.IsOwnedBy(ownerID))
	assert.False(t, project.IsOwnedBy(uuid.New()))
	assert.Equal(t, ProjectStatusNotStarted, project.Status)
}

func TestNewProjectMember(t *testing.T) {
	t.Run("defaults role to member", func(t *testing.T) {
		m, err := NewProjectMember(uuid.New(), uuid.New(), "")
		require.NoError(t, err)
		assert.Equal(t, "member", m.Role)
	})

	t.Run("keeps explicit role", func(t *testing.T) {
		m, err := NewProjectMember(uuid.New(), uuid.New(), "admin")
		require.NoError(t, err)
		assert.Equal(t, "admin", m.Role)
	})
}
