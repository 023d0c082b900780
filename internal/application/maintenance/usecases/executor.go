package usecases

import (
	"context"

	"github.com/gearguard/gearguard/internal/domain/maintenance"
)

// CommandExecutor runs one lifecycle command as an atomic unit per request id:
// lock, transaction with equipment effects, audit entries, unlock.
type CommandExecutor struct {
	locker  *RequestLocker
	tx      TransactionRunner
	effects *EffectRunner
}

func NewCommandExecutor(locker *RequestLocker, tx TransactionRunner, effects *EffectRunner) *CommandExecutor {
	return &CommandExecutor{
		locker:  locker,
		tx:      tx,
		effects: effects,
	}
}

// Run calls mutate inside a transaction while holding the lock for requestID.
// It returns the notification effects, which the caller delivers after Run returns.
func (x *CommandExecutor) Run(
	ctx context.Context,
	requestID uint,
	actorID *uint,
	mutate func(ctx context.Context) ([]maintenance.SideEffect, error),
) ([]maintenance.SideEffect, error) {
	unlock := x.locker.Lock(requestID)
	defer unlock()

	var committed []maintenance.SideEffect
	err := x.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		produced, err := mutate(txCtx)
		if err != nil {
			return err
		}
		committed, err = x.effects.ApplyInTx(txCtx, produced)
		return err
	})
	if err != nil {
		return nil, err
	}

	return x.effects.RecordAudits(ctx, committed, actorID), nil
}
