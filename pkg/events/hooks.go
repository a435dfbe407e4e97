/**
 *
 * (c) Copyright ClickUp Relay Authors 2025
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package events

import "context"

// Hook interfaces let a single value handle several webhook kinds by
// declaring only the methods it cares about. RegisterHooks inspects a value
// against every hook interface and registers exactly the ones it implements,
// so a value with no hook methods produces no registrations and independent
// values never affect each other's registrations.

type TaskCreatedHook interface {
	OnTaskCreated(ctx context.Context, event *Event) error
}

type TaskUpdatedHook interface {
	OnTaskUpdated(ctx context.Context, event *Event) error
}

type TaskDeletedHook interface {
	OnTaskDeleted(ctx context.Context, event *Event) error
}

type TaskStatusUpdatedHook interface {
	OnTaskStatusUpdated(ctx context.Context, event *Event) error
}

type TaskAssigneeUpdatedHook interface {
	OnTaskAssigneeUpdated(ctx context.Context, event *Event) error
}

type TaskDueDateUpdatedHook interface {
	OnTaskDueDateUpdated(ctx context.Context, event *Event) error
}

type TaskTagUpdatedHook interface {
	OnTaskTagUpdated(ctx context.Context, event *Event) error
}

type TaskMovedHook interface {
	OnTaskMoved(ctx context.Context, event *Event) error
}

type TaskCommentPostedHook interface {
	OnTaskCommentPosted(ctx context.Context, event *Event) error
}

type TaskCommentUpdatedHook interface {
	OnTaskCommentUpdated(ctx context.Context, event *Event) error
}

type TaskTimeEstimateUpdatedHook interface {
	OnTaskTimeEstimateUpdated(ctx context.Context, event *Event) error
}

type TaskTimeTrackedUpdatedHook interface {
	OnTaskTimeTrackedUpdated(ctx context.Context, event *Event) error
}

type TaskPriorityUpdatedHook interface {
	OnTaskPriorityUpdated(ctx context.Context, event *Event) error
}

type ListCreatedHook interface {
	OnListCreated(ctx context.Context, event *Event) error
}

type ListUpdatedHook interface {
	OnListUpdated(ctx context.Context, event *Event) error
}

type ListDeletedHook interface {
	OnListDeleted(ctx context.Context, event *Event) error
}

type FolderCreatedHook interface {
	OnFolderCreated(ctx context.Context, event *Event) error
}

type FolderUpdatedHook interface {
	OnFolderUpdated(ctx context.Context, event *Event) error
}

type FolderDeletedHook interface {
	OnFolderDeleted(ctx context.Context, event *Event) error
}

type SpaceCreatedHook interface {
	OnSpaceCreated(ctx context.Context, event *Event) error
}

type SpaceUpdatedHook interface {
	OnSpaceUpdated(ctx context.Context, event *Event) error
}

type SpaceDeletedHook interface {
	OnSpaceDeleted(ctx context.Context, event *Event) error
}

type GoalCreatedHook interface {
	OnGoalCreated(ctx context.Context, event *Event) error
}

type GoalUpdatedHook interface {
	OnGoalUpdated(ctx context.Context, event *Event) error
}

type GoalDeletedHook interface {
	OnGoalDeleted(ctx context.Context, event *Event) error
}

type KeyResultCreatedHook interface {
	OnKeyResultCreated(ctx context.Context, event *Event) error
}

type KeyResultUpdatedHook interface {
	OnKeyResultUpdated(ctx context.Context, event *Event) error
}

type KeyResultDeletedHook interface {
	OnKeyResultDeleted(ctx context.Context, event *Event) error
}

// resolveHook returns the hook method of v matching the event type, if v
// implements it.
func resolveHook(v interface{}, t Type) (Handler, bool) {
	switch t {
	case TaskCreated:
		if h, ok := v.(TaskCreatedHook); ok {
			return h.OnTaskCreated, true
		}
	case TaskUpdated:
		if h, ok := v.(TaskUpdatedHook); ok {
			return h.OnTaskUpdated, true
		}
	case TaskDeleted:
		if h, ok := v.(TaskDeletedHook); ok {
			return h.OnTaskDeleted, true
		}
	case TaskStatusUpdated:
		if h, ok := v.(TaskStatusUpdatedHook); ok {
			return h.OnTaskStatusUpdated, true
		}
	case TaskAssigneeUpdated:
		if h, ok := v.(TaskAssigneeUpdatedHook); ok {
			return h.OnTaskAssigneeUpdated, true
		}
	case TaskDueDateUpdated:
		if h, ok := v.(TaskDueDateUpdatedHook); ok {
			return h.OnTaskDueDateUpdated, true
		}
	case TaskTagUpdated:
		if h, ok := v.(TaskTagUpdatedHook); ok {
			return h.OnTaskTagUpdated, true
		}
	case TaskMoved:
		if h, ok := v.(TaskMovedHook); ok {
			return h.OnTaskMoved, true
		}
	case TaskCommentPosted:
		if h, ok := v.(TaskCommentPostedHook); ok {
			return h.OnTaskCommentPosted, true
		}
	case TaskCommentUpdated:
		if h, ok := v.(TaskCommentUpdatedHook); ok {
			return h.OnTaskCommentUpdated, true
		}
	case TaskTimeEstimateUpdated:
		if h, ok := v.(TaskTimeEstimateUpdatedHook); ok {
			return h.OnTaskTimeEstimateUpdated, true
		}
	case TaskTimeTrackedUpdated:
		if h, ok := v.(TaskTimeTrackedUpdatedHook); ok {
			return h.OnTaskTimeTrackedUpdated, true
		}
	case TaskPriorityUpdated:
		if h, ok := v.(TaskPriorityUpdatedHook); ok {
			return h.OnTaskPriorityUpdated, true
		}
	case ListCreated:
		if h, ok := v.(ListCreatedHook); ok {
			return h.OnListCreated, true
		}
	case ListUpdated:
		if h, ok := v.(ListUpdatedHook); ok {
			return h.OnListUpdated, true
		}
	case ListDeleted:
		if h, ok := v.(ListDeletedHook); ok {
			return h.OnListDeleted, true
		}
	case FolderCreated:
		if h, ok := v.(FolderCreatedHook); ok {
			return h.OnFolderCreated, true
		}
	case FolderUpdated:
		if h, ok := v.(FolderUpdatedHook); ok {
			return h.OnFolderUpdated, true
		}
	case FolderDeleted:
		if h, ok := v.(FolderDeletedHook); ok {
			return h.OnFolderDeleted, true
		}
	case SpaceCreated:
		if h, ok := v.(SpaceCreatedHook); ok {
			return h.OnSpaceCreated, true
		}
	case SpaceUpdated:
		if h, ok := v.(SpaceUpdatedHook); ok {
			return h.OnSpaceUpdated, true
		}
	case SpaceDeleted:
		if h, ok := v.(SpaceDeletedHook); ok {
			return h.OnSpaceDeleted, true
		}
	case GoalCreated:
		if h, ok := v.(GoalCreatedHook); ok {
			return h.OnGoalCreated, true
		}
	case GoalUpdated:
		if h, ok := v.(GoalUpdatedHook); ok {
			return h.OnGoalUpdated, true
		}
	case GoalDeleted:
		if h, ok := v.(GoalDeletedHook); ok {
			return h.OnGoalDeleted, true
		}
	case KeyResultCreated:
		if h, ok := v.(KeyResultCreatedHook); ok {
			return h.OnKeyResultCreated, true
		}
	case KeyResultUpdated:
		if h, ok := v.(KeyResultUpdatedHook); ok {
			return h.OnKeyResultUpdated, true
		}
	case KeyResultDeleted:
		if h, ok := v.(KeyResultDeletedHook); ok {
			return h.OnKeyResultDeleted, true
		}
	}

	return nil, false
}

// RegisterHooks registers every hook method v implements into the registry
// and reports how many registrations were made.
func RegisterHooks(registry *Registry, v interface{}) int {
	registered := 0
	for _, t := range Types {
		handler, ok := resolveHook(v, t)
		if !ok {
			continue
		}
		registry.Register(t, handler)
		registered++
	}
	return registered
}

// HooksHandler wraps v into a single handler that resolves the matching hook
// at dispatch time. Events whose hook v does not implement are ignored. Use
// it when the whole value, not its individual methods, should be registered.
func HooksHandler(v interface{}) Handler {
	return func(ctx context.Context, event *Event) error {
		handler, ok := resolveHook(v, event.Type)
		if !ok {
			return nil
		}
		return handler(ctx, event)
	}
}
