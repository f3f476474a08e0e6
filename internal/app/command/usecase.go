// Package command is the single write path of the engine: it loads a
// session, runs the interpreter on one raw command string, and persists the
// outcome. Commands within one session are processed strictly one at a
// time; sessions are independent.
package command

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"phoenixcore/internal/app/ports"
	"phoenixcore/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid command request")

type UseCase struct {
	TxManager   ports.TxManager
	SessionRepo ports.SessionRepository
	CommandRepo ports.CommandExecutionRepository
	EventRepo   ports.EventRepository
	World       ports.WorldProvider
	Metrics     ports.CommandMetrics
	Now         func() time.Time

	// sessionLocks serializes command processing per session so two
	// concurrent commands never interleave partial state.
	sessionLocks sync.Map
}

func (u *UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.IdempotencyKey = strings.TrimSpace(req.IdempotencyKey)
	if req.SessionID == "" {
		return Response{}, ErrInvalidRequest
	}

	lock := u.sessionLock(req.SessionID)
	lock.Lock()
	defer lock.Unlock()

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	def := u.World.Definition()
	interp := game.Interpreter{World: def}

	var out Response
	replayed := false
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if u.CommandRepo != nil && req.IdempotencyKey != "" {
			exec, err := u.CommandRepo.GetByIdempotencyKey(txCtx, req.SessionID, req.IdempotencyKey)
			if err == nil && exec != nil {
				out = Response{
					Message:   exec.Result.Message,
					GameState: exec.Result.Session.State,
					Visited:   exec.Result.Session.Visited,
					Unlocked:  exec.Result.Session.Unlocked,
					Events:    exec.Result.Events,
				}
				replayed = true
				return nil
			}
			if err != nil && !errors.Is(err, ports.ErrNotFound) {
				return err
			}
		}

		sess, err := u.SessionRepo.GetBySessionID(txCtx, req.SessionID)
		created := false
		if errors.Is(err, ports.ErrNotFound) {
			sess = game.NewSession(def, req.SessionID, req.PlayerName)
			created = true
		} else if err != nil {
			return err
		}

		completedBefore := sess.State.GameCompleted
		result, next := interp.Execute(sess, req.Command, nowFn())

		expectedVersion := sess.Version
		if created {
			expectedVersion = 0
		}
		if err := u.SessionRepo.SaveWithVersion(txCtx, next, expectedVersion); err != nil {
			return err
		}

		for i := range result.Events {
			if result.Events[i].Payload == nil {
				result.Events[i].Payload = map[string]any{}
			}
			result.Events[i].Payload["session_id"] = req.SessionID
		}
		if err := u.EventRepo.Append(txCtx, req.SessionID, result.Events); err != nil {
			return err
		}

		if u.CommandRepo != nil && req.IdempotencyKey != "" {
			execution := ports.CommandExecutionRecord{
				SessionID:      req.SessionID,
				IdempotencyKey: req.IdempotencyKey,
				Command:        req.Command,
				Result: ports.CommandResult{
					Message: result.Message,
					Session: next,
					Events:  result.Events,
				},
				AppliedAt: nowFn(),
			}
			if err := u.CommandRepo.SaveExecution(txCtx, execution); err != nil {
				return err
			}
		}

		if u.Metrics != nil && next.State.GameCompleted && !completedBefore {
			u.Metrics.RecordCompletion()
		}
		out = Response{
			Message:   result.Message,
			GameState: next.State,
			Visited:   next.Visited,
			Unlocked:  next.Unlocked,
			Events:    result.Events,
		}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			u.Metrics.RecordFailure()
		}
		return Response{}, err
	}
	// A replay served the stored response; counting it again would inflate
	// the per-verb KPIs.
	if u.Metrics != nil && !replayed {
		u.Metrics.RecordCommand(game.Verb(req.Command))
	}
	return out, nil
}

func (u *UseCase) sessionLock(sessionID string) *sync.Mutex {
	v, _ := u.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	return v.(*sync.Mutex)
}
