package memory

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/belli/taskify/internal/domain"
	"github.com/belli/taskify/internal/platform/logger"
	"github.com/belli/taskify/internal/store"
)

// DefaultShardCount is used when NewTaskStore is given a non-positive count.
const DefaultShardCount = 16

// taskShard guards one partition of the id space.
type taskShard struct {
	mu    sync.RWMutex
	tasks map[int64]domain.Task
}

// TaskStore implements store.TaskStore in memory.
//
// Records are spread over a fixed set of shards keyed by id, so operations on
// ids in different shards never contend. Ids come from an atomic counter and
// are never reused. Values are stored and returned as copies.
type TaskStore struct {
	shards []*taskShard
	lastID atomic.Int64
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty TaskStore with the given number of shards.
func NewTaskStore(shardCount int, log *slog.Logger) *TaskStore {
	if shardCount <= 0 {
		shardCount = DefaultShardCount
	}
	if log == nil {
		log = slog.Default()
	}

	shards := make([]*taskShard, shardCount)
	for i := range shards {
		shards[i] = &taskShard{tasks: make(map[int64]domain.Task)}
	}

	return &TaskStore{
		shards: shards,
		logger: log.With(slog.String("component", "memory_task_store")),
	}
}

func (s *TaskStore) shardFor(id int64) *taskShard {
	// ids are positive once assigned; negative lookups still need a valid index.
	idx := id % int64(len(s.shards))
	if idx < 0 {
		idx = -idx
	}
	return s.shards[idx]
}

// Create assigns the next id and stores the task.
func (s *TaskStore) Create(ctx context.Context, fields domain.TaskFields) domain.Task {
	task := domain.NewTask(s.lastID.Add(1), fields)

	shard := s.shardFor(task.ID)
	shard.mu.Lock()
	shard.tasks[task.ID] = task
	shard.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("task created", slog.Int64("task_id", task.ID))
	return task
}

// GetByID returns the stored task or store.ErrTaskNotFound.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	shard := s.shardFor(id)
	shard.mu.RLock()
	task, ok := shard.tasks[id]
	shard.mu.RUnlock()

	if !ok {
		return domain.Task{}, store.NewStoreError("task", "get", fmt.Sprintf("id %d", id), store.ErrTaskNotFound)
	}
	return task, nil
}

// GetAll takes every shard's read lock in index order before copying, so the
// result is a point-in-time view. Writers hold at most one shard lock, which
// keeps the ordering deadlock free.
func (s *TaskStore) GetAll(ctx context.Context) []domain.Task {
	for _, shard := range s.shards {
		shard.mu.RLock()
	}

	total := 0
	for _, shard := range s.shards {
		total += len(shard.tasks)
	}

	tasks := make([]domain.Task, 0, total)
	for _, shard := range s.shards {
		for _, task := range shard.tasks {
			tasks = append(tasks, task)
		}
	}

	for i := len(s.shards) - 1; i >= 0; i-- {
		s.shards[i].mu.RUnlock()
	}

	slices.SortFunc(tasks, func(a, b domain.Task) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return tasks
}

// Update replaces the mutable fields of an existing task under the shard's
// write lock.
func (s *TaskStore) Update(ctx context.Context, id int64, fields domain.TaskFields) (domain.Task, error) {
	shard := s.shardFor(id)
	shard.mu.Lock()
	if _, ok := shard.tasks[id]; !ok {
		shard.mu.Unlock()
		return domain.Task{}, store.NewStoreError("task", "update", fmt.Sprintf("id %d", id), store.ErrTaskNotFound)
	}
	task := domain.NewTask(id, fields)
	shard.tasks[id] = task
	shard.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("task updated", slog.Int64("task_id", id))
	return task, nil
}

// Delete removes the task if present.
func (s *TaskStore) Delete(ctx context.Context, id int64) {
	shard := s.shardFor(id)
	shard.mu.Lock()
	_, existed := shard.tasks[id]
	delete(shard.tasks, id)
	shard.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("task delete",
		slog.Int64("task_id", id),
		slog.Bool("existed", existed))
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len(ctx context.Context) int {
	n := 0
	for _, shard := range s.shards {
		shard.mu.RLock()
		n += len(shard.tasks)
		shard.mu.RUnlock()
	}
	return n
}
