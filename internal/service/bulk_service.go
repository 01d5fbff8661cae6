package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	dom "Taskboard/internal/domain"
	"Taskboard/internal/repo"
	"Taskboard/internal/utils"

	"golang.org/x/sync/errgroup"
)

type BulkOp string

const (
	BulkComplete   BulkOp = "complete"
	BulkIncomplete BulkOp = "incomplete"
	BulkDelete     BulkOp = "delete"
	BulkUpdate     BulkOp = "update"
)

const msgBulkFailed = "bulk operation failed"

// bulkParallelism bounds concurrent store calls of one best-effort batch.
const bulkParallelism = 8

// BulkRequest applies one operation to many todos.
type BulkRequest struct {
	Op  BulkOp
	IDs []string
	// Priority, CategoryID and ClearCategory are used by BulkUpdate.
	Priority      *dom.Priority
	CategoryID    *string
	ClearCategory bool
	// Atomic runs the batch in one transaction: all ids change or none do.
	Atomic bool
}

// BulkResult reports the outcome per id.
type BulkResult struct {
	Succeeded []string
	Failed    map[string]string
}

// BulkService coordinates operations over a selection of todos.
type BulkService struct {
	todos *TodoService
	log   *slog.Logger
}

func NewBulkService(todos *TodoService, log *slog.Logger) *BulkService {
	return &BulkService{todos: todos, log: log}
}

// Apply runs req. In best-effort mode every id is attempted concurrently and
// mutations that succeeded are kept even when others fail; the returned error
// is then non-nil and the result lists what failed.
func (s *BulkService) Apply(ctx context.Context, userID string, req BulkRequest) (BulkResult, error) {
	ids, patch, err := s.validate(ctx, userID, req)
	if err != nil {
		return BulkResult{}, err
	}
	defer s.todos.invalidateCache(context.WithoutCancel(ctx), userID)

	if req.Atomic {
		return s.applyAtomic(ctx, userID, req.Op, ids, patch)
	}

	var (
		mu  sync.Mutex
		res = BulkResult{Succeeded: make([]string, 0, len(ids)), Failed: map[string]string{}}
		g   errgroup.Group
	)
	g.SetLimit(bulkParallelism)
	for _, id := range ids {
		g.Go(func() error {
			err := s.applyOne(ctx, userID, req.Op, id, patch)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed[id] = Message(err, msgBulkFailed)
				return err
			}
			res.Succeeded = append(res.Succeeded, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Warn("bulk operation", "user_id", userID, "op", req.Op, "failed", len(res.Failed), "error", err)
		kind := ErrInternal
		if s.allNotFound(res) {
			kind = ErrNotFound
		}
		return res, &Error{Kind: kind, Msg: msgBulkFailed, Cause: err}
	}
	return res, nil
}

func (s *BulkService) applyOne(ctx context.Context, userID string, op BulkOp, id string, patch dom.TodoPatch) error {
	if op == BulkDelete {
		if _, err := s.todos.todos.Delete(ctx, userID, id); err != nil {
			return internal("failed to delete todo", err)
		}
		return nil
	}
	if _, err := s.todos.todos.Update(ctx, userID, id, patch); err != nil {
		return fromRepo(err, "todo not found", "", "failed to update todo")
	}
	return nil
}

func (s *BulkService) applyAtomic(ctx context.Context, userID string, op BulkOp, ids []string, patch dom.TodoPatch) (BulkResult, error) {
	var err error
	if op == BulkDelete {
		err = s.todos.todos.BulkDelete(ctx, userID, ids)
	} else {
		err = s.todos.todos.BulkUpdate(ctx, userID, ids, patch)
	}
	if err != nil {
		failed := make(map[string]string, len(ids))
		msg := msgBulkFailed
		if errors.Is(err, repo.ErrNotFound) {
			msg = "todo not found"
		}
		for _, id := range ids {
			failed[id] = msg
		}
		return BulkResult{Succeeded: []string{}, Failed: failed}, fromRepo(err, msgBulkFailed, msgBulkFailed, msgBulkFailed)
	}
	return BulkResult{Succeeded: ids, Failed: map[string]string{}}, nil
}

func (s *BulkService) validate(ctx context.Context, userID string, req BulkRequest) ([]string, dom.TodoPatch, error) {
	var patch dom.TodoPatch
	ids := utils.Dedupe(req.IDs)
	if len(ids) == 0 {
		return nil, patch, invalid("ids are required")
	}
	for _, id := range ids {
		if !validID(id) {
			return nil, patch, invalid("invalid todo id")
		}
	}
	switch req.Op {
	case BulkComplete, BulkIncomplete:
		done := req.Op == BulkComplete
		patch.Completed = &done
	case BulkDelete:
	case BulkUpdate:
		patch.Priority = req.Priority
		patch.CategoryID = req.CategoryID
		patch.ClearCategory = req.ClearCategory
		if patch.IsZero() {
			return nil, patch, invalid("priority or category is required")
		}
		var err error
		if patch, err = s.todos.validatePatch(ctx, userID, patch); err != nil {
			return nil, patch, err
		}
	default:
		return nil, patch, invalid("op must be one of complete, incomplete, delete, update")
	}
	return ids, patch, nil
}

func (s *BulkService) allNotFound(res BulkResult) bool {
	for _, msg := range res.Failed {
		if msg != "todo not found" {
			return false
		}
	}
	return len(res.Failed) > 0
}
