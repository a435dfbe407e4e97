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

// Type identifies a kind of ClickUp webhook notification. The underlying
// string is the wire value ClickUp sends in the payload's "event" field and
// must stay stable across releases.
type Type string

const (
	TaskCreated             Type = "taskCreated"
	TaskUpdated             Type = "taskUpdated"
	TaskDeleted             Type = "taskDeleted"
	TaskStatusUpdated       Type = "taskStatusUpdated"
	TaskAssigneeUpdated     Type = "taskAssigneeUpdated"
	TaskDueDateUpdated      Type = "taskDueDateUpdated"
	TaskTagUpdated          Type = "taskTagUpdated"
	TaskMoved               Type = "taskMoved"
	TaskCommentPosted       Type = "taskCommentPosted"
	TaskCommentUpdated      Type = "taskCommentUpdated"
	TaskTimeEstimateUpdated Type = "taskTimeEstimateUpdated"
	TaskTimeTrackedUpdated  Type = "taskTimeTrackedUpdated"
	TaskPriorityUpdated     Type = "taskPriorityUpdated"
	ListCreated             Type = "listCreated"
	ListUpdated             Type = "listUpdated"
	ListDeleted             Type = "listDeleted"
	FolderCreated           Type = "folderCreated"
	FolderUpdated           Type = "folderUpdated"
	FolderDeleted           Type = "folderDeleted"
	SpaceCreated            Type = "spaceCreated"
	SpaceUpdated            Type = "spaceUpdated"
	SpaceDeleted            Type = "spaceDeleted"
	GoalCreated             Type = "goalCreated"
	GoalUpdated             Type = "goalUpdated"
	GoalDeleted             Type = "goalDeleted"
	KeyResultCreated        Type = "keyResultCreated"
	KeyResultUpdated        Type = "keyResultUpdated"
	KeyResultDeleted        Type = "keyResultDeleted"
)

// Types lists every webhook kind in declaration order.
var Types = []Type{
	TaskCreated,
	TaskUpdated,
	TaskDeleted,
	TaskStatusUpdated,
	TaskAssigneeUpdated,
	TaskDueDateUpdated,
	TaskTagUpdated,
	TaskMoved,
	TaskCommentPosted,
	TaskCommentUpdated,
	TaskTimeEstimateUpdated,
	TaskTimeTrackedUpdated,
	TaskPriorityUpdated,
	ListCreated,
	ListUpdated,
	ListDeleted,
	FolderCreated,
	FolderUpdated,
	FolderDeleted,
	SpaceCreated,
	SpaceUpdated,
	SpaceDeleted,
	GoalCreated,
	GoalUpdated,
	GoalDeleted,
	KeyResultCreated,
	KeyResultUpdated,
	KeyResultDeleted,
}

// aliases maps snake_case names onto types for alias based registration.
var aliases = map[string]Type{
	"task_created":               TaskCreated,
	"task_updated":               TaskUpdated,
	"task_deleted":               TaskDeleted,
	"task_status_updated":        TaskStatusUpdated,
	"task_assignee_updated":      TaskAssigneeUpdated,
	"task_due_date_updated":      TaskDueDateUpdated,
	"task_tag_updated":           TaskTagUpdated,
	"task_moved":                 TaskMoved,
	"task_comment_posted":        TaskCommentPosted,
	"task_comment_updated":       TaskCommentUpdated,
	"task_time_estimate_updated": TaskTimeEstimateUpdated,
	"task_time_tracked_updated":  TaskTimeTrackedUpdated,
	"task_priority_updated":      TaskPriorityUpdated,
	"list_created":               ListCreated,
	"list_updated":               ListUpdated,
	"list_deleted":               ListDeleted,
	"folder_created":             FolderCreated,
	"folder_updated":             FolderUpdated,
	"folder_deleted":             FolderDeleted,
	"space_created":              SpaceCreated,
	"space_updated":              SpaceUpdated,
	"space_deleted":              SpaceDeleted,
	"goal_created":               GoalCreated,
	"goal_updated":               GoalUpdated,
	"goal_deleted":               GoalDeleted,
	"key_result_created":         KeyResultCreated,
	"key_result_updated":         KeyResultUpdated,
	"key_result_deleted":         KeyResultDeleted,
}

var wireTypes = buildWireIndex()

func buildWireIndex() map[string]Type {
	index := make(map[string]Type, len(Types))
	for _, t := range Types {
		index[string(t)] = t
	}
	return index
}

func (t Type) String() string {
	return string(t)
}

// ParseType resolves a wire string into a Type.
func ParseType(value string) (Type, error) {
	if t, ok := wireTypes[value]; ok {
		return t, nil
	}
	return "", &UnknownEventTypeError{Value: value}
}
